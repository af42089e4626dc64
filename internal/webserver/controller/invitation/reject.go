package invitation

import (
	"github.com/gofiber/fiber/v2"
	"github.com/yaksok/yaksok/internal/webserver/model"
)

// Reject discards the invitation. The row is deleted, so the schedule simply
// stops waiting for this user; rejecting twice changes nothing.
func (i *Controller) Reject(c *fiber.Ctx) error {
	session := c.Locals("Session").(model.Session)

	schedule, err := i.schedules.FindByUuid(c.Params("uuid"))
	if err != nil {
		return fiber.ErrInternalServerError
	}
	if schedule == nil {
		return fiber.ErrNotFound
	}

	if err := i.repository.Delete(schedule.ID, session.ID); err != nil {
		return fiber.ErrInternalServerError
	}

	return c.SendStatus(fiber.StatusNoContent)
}
