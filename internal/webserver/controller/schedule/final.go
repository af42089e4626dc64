package schedule

import (
	"github.com/gofiber/fiber/v2"
	"github.com/yaksok/yaksok/internal/webserver/model"
)

// Final returns the committed outcome of the coordination rounds. Fields stay
// null until their round has finished.
func (s *Controller) Final(c *fiber.Ctx) error {
	session := c.Locals("Session").(model.Session)

	schedule, err := s.repository.FindByUuid(c.Params("uuid"))
	if err != nil {
		return fiber.ErrInternalServerError
	}
	if schedule == nil {
		return fiber.ErrNotFound
	}
	if !schedule.IsParticipant(session.ID) {
		return fiber.ErrForbidden
	}

	return c.JSON(fiber.Map{
		"decided":        schedule.FinalDate != nil && schedule.FinalLocation != nil,
		"final_date":     schedule.FinalDate,
		"final_location": schedule.FinalLocation,
		"final_place":    schedule.FinalPlace,
	})
}
