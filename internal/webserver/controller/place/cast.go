package place

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/yaksok/yaksok/internal/pubsub"
	"github.com/yaksok/yaksok/internal/tally"
	"github.com/yaksok/yaksok/internal/webserver/model"
)

type castRequest struct {
	Choices []string `json:"choices"`
}

// Cast records a ballot of one or two hearted places. The last ballot in
// triggers the count and commits the winning place.
func (p *Controller) Cast(c *fiber.Ctx) error {
	session := c.Locals("Session").(model.Session)

	schedule, err := p.loadSchedule(c, session)
	if err != nil {
		return err
	}

	if !schedule.VotingStarted {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error": "Voting has not started yet",
		})
	}
	if schedule.FinalPlace != nil {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error": "The place has already been decided",
		})
	}

	var request castRequest
	if err := c.BodyParser(&request); err != nil {
		return fiber.ErrBadRequest
	}

	if errs := p.validateChoices(schedule.ID, request.Choices); len(errs) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": errs})
	}

	if existing, err := p.votes.FindByScheduleAndUser(schedule.ID, session.ID); err != nil {
		return fiber.ErrInternalServerError
	} else if existing != nil {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error": "You have already voted for a place",
		})
	}

	vote := model.PlaceVote{
		ScheduleID: schedule.ID,
		UserID:     session.ID,
		Choices:    request.Choices,
	}
	if err := p.votes.Create(&vote); err != nil {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error": "You have already voted for a place",
		})
	}

	p.events.Publish(schedule.ID, pubsub.EventPlaceVote)

	voters, err := p.votes.UserIDsBySchedule(schedule.ID)
	if err != nil {
		return fiber.ErrInternalServerError
	}

	if !tally.Complete(voters, schedule.AllParticipants()) {
		return c.Status(fiber.StatusCreated).JSON(fiber.Map{
			"complete": false,
		})
	}

	result, err := p.resolve(schedule.ID)
	if err != nil {
		return fiber.ErrInternalServerError
	}

	winner, err := p.hearts.FindByTitle(schedule.ID, result.Winner)
	if err != nil || winner == nil {
		return fiber.ErrInternalServerError
	}

	if err := p.schedules.FinalizePlace(schedule.ID, winner.Location()); err != nil {
		return fiber.ErrInternalServerError
	}

	p.events.Publish(schedule.ID, pubsub.EventFinalized)

	decided, err := p.schedules.FindByID(schedule.ID)
	if err != nil || decided == nil {
		return fiber.ErrInternalServerError
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"complete":    true,
		"final_place": decided.FinalPlace,
		"tie":         result.Tied,
		"tied":        result.Tie(),
	})
}

func (p *Controller) validateChoices(scheduleID uint, choices []string) map[string]string {
	errs := map[string]string{}

	if len(choices) == 0 {
		errs["choices"] = "Pick at least one place"
		return errs
	}
	if len(choices) > model.MaxPlaceChoices {
		errs["choices"] = fmt.Sprintf("Pick at most %d places", model.MaxPlaceChoices)
		return errs
	}
	if len(choices) == 2 && choices[0] == choices[1] {
		errs["choices"] = "Cannot pick the same place twice"
		return errs
	}

	for _, choice := range choices {
		heart, err := p.hearts.FindByTitle(scheduleID, choice)
		if err != nil || heart == nil {
			errs["choices"] = fmt.Sprintf("%q is not a hearted place", choice)
			return errs
		}
	}
	return errs
}
