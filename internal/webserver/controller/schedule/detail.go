package schedule

import (
	"github.com/gofiber/fiber/v2"
	"github.com/yaksok/yaksok/internal/webserver/model"
)

// Detail returns the full schedule as seen by one of its participants.
func (s *Controller) Detail(c *fiber.Ctx) error {
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

	participants, err := s.users.FindByIDs(schedule.AllParticipants())
	if err != nil {
		return fiber.ErrInternalServerError
	}

	names := make([]string, 0, len(participants))
	organizer := ""
	for _, participant := range participants {
		names = append(names, participant.Username)
		if participant.ID == schedule.CreatedBy {
			organizer = participant.Username
		}
	}

	return c.JSON(fiber.Map{
		"uuid":           schedule.Uuid,
		"plan_name":      schedule.PlanName,
		"month":          schedule.Month,
		"dates":          schedule.Dates,
		"locations":      schedule.Locations,
		"organizer":      organizer,
		"participants":   names,
		"voting_started": schedule.VotingStarted,
		"final_date":     schedule.FinalDate,
		"final_location": schedule.FinalLocation,
		"final_place":    schedule.FinalPlace,
	})
}
