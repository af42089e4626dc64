package place

import (
	"github.com/gofiber/fiber/v2"
	"github.com/yaksok/yaksok/internal/webserver/model"
)

// Final returns the committed place, or a null place while the round is
// still running.
func (p *Controller) Final(c *fiber.Ctx) error {
	session := c.Locals("Session").(model.Session)

	schedule, err := p.loadSchedule(c, session)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"decided":     schedule.FinalPlace != nil,
		"final_place": schedule.FinalPlace,
	})
}
