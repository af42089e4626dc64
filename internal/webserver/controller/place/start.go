package place

import (
	"github.com/gofiber/fiber/v2"
	"github.com/yaksok/yaksok/internal/pubsub"
	"github.com/yaksok/yaksok/internal/webserver/model"
)

// StartVoting opens the place-vote round. Only the organizer can do it and
// only once there is at least one hearted place to vote on; starting an
// already started round changes nothing.
func (p *Controller) StartVoting(c *fiber.Ctx) error {
	session := c.Locals("Session").(model.Session)

	schedule, err := p.loadSchedule(c, session)
	if err != nil {
		return err
	}

	if schedule.CreatedBy != session.ID {
		return fiber.ErrForbidden
	}

	if p.hearts.Total(schedule.ID) == 0 {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error": "Heart at least one place before starting the vote",
		})
	}

	if err := p.schedules.StartVoting(schedule.ID); err != nil {
		return fiber.ErrInternalServerError
	}

	p.events.Publish(schedule.ID, pubsub.EventPlaceVote)

	return c.SendStatus(fiber.StatusNoContent)
}
