package invitation

import (
	"github.com/gofiber/fiber/v2"
	"github.com/yaksok/yaksok/internal/webserver/model"
)

// List returns the signed-in user's pending invitations, newest first.
func (i *Controller) List(c *fiber.Ctx) error {
	return i.list(c, model.InvitationPending)
}

// InProgress returns the schedules the user has joined, with the stage they
// last visited so the client can resume the flow where they left it.
func (i *Controller) InProgress(c *fiber.Ctx) error {
	return i.list(c, model.InvitationAccepted)
}

func (i *Controller) list(c *fiber.Ctx, status string) error {
	session := c.Locals("Session").(model.Session)

	invitations, err := i.repository.ByUserAndStatus(session.ID, status)
	if err != nil {
		return fiber.ErrInternalServerError
	}

	entries := make([]fiber.Map, 0, len(invitations))
	for _, invitation := range invitations {
		schedule, err := i.schedules.FindByID(invitation.ScheduleID)
		if err != nil {
			return fiber.ErrInternalServerError
		}
		if schedule == nil {
			continue
		}

		organizers, err := i.users.FindByIDs([]uint{schedule.CreatedBy})
		if err != nil {
			return fiber.ErrInternalServerError
		}
		organizer := ""
		if len(organizers) > 0 {
			organizer = organizers[0].Name
		}

		entries = append(entries, fiber.Map{
			"uuid":       schedule.Uuid,
			"plan_name":  schedule.PlanName,
			"month":      schedule.Month,
			"organizer":  organizer,
			"last_stage": invitation.LastStage,
			"decided":    schedule.FinalDate != nil && schedule.FinalLocation != nil,
		})
	}

	return c.JSON(fiber.Map{"invitations": entries})
}
