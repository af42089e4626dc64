package invitation

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/yaksok/yaksok/internal/webserver/model"
	"gorm.io/gorm"
)

// Accept joins the signed-in user to the schedule they were invited to.
func (i *Controller) Accept(c *fiber.Ctx) error {
	session := c.Locals("Session").(model.Session)

	schedule, err := i.schedules.FindByUuid(c.Params("uuid"))
	if err != nil {
		return fiber.ErrInternalServerError
	}
	if schedule == nil {
		return fiber.ErrNotFound
	}

	if err := i.repository.Accept(schedule.ID, session.ID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.ErrNotFound
		}
		return fiber.ErrInternalServerError
	}

	return c.SendStatus(fiber.StatusNoContent)
}
