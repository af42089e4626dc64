package invitation

import (
	"github.com/gofiber/fiber/v2"
	"github.com/yaksok/yaksok/internal/webserver/model"
)

// Stage records the flow page the user last visited. The write is best
// effort: resuming at an older page is annoying, not wrong, so a failed
// update never surfaces to the client.
func (i *Controller) Stage(c *fiber.Ctx) error {
	session := c.Locals("Session").(model.Session)

	schedule, err := i.schedules.FindByUuid(c.Params("uuid"))
	if err != nil {
		return fiber.ErrInternalServerError
	}
	if schedule == nil {
		return fiber.ErrNotFound
	}

	stage := c.FormValue("stage")
	if !model.ValidStage(stage) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"errors": fiber.Map{"stage": "Unknown stage"},
		})
	}

	_ = i.repository.RecordLastStage(schedule.ID, session.ID, stage)

	return c.SendStatus(fiber.StatusNoContent)
}
