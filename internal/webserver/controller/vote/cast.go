package vote

import (
	"github.com/gofiber/fiber/v2"
	"github.com/yaksok/yaksok/internal/pubsub"
	"github.com/yaksok/yaksok/internal/tally"
	"github.com/yaksok/yaksok/internal/webserver/model"
)

type castRequest struct {
	VotedDate     string         `json:"voted_date"`
	VotedLocation model.Location `json:"voted_location"`
}

// Cast records the participant's pick among the candidate sets. The last vote
// in triggers the majority count and commits the winning date and location;
// once committed they never change, a tie is broken by taking the first
// candidate in lexical order and reported as such.
func (v *Controller) Cast(c *fiber.Ctx) error {
	session := c.Locals("Session").(model.Session)

	schedule, err := v.loadSchedule(c, session)
	if err != nil {
		return err
	}

	if schedule.FinalDate != nil && schedule.FinalLocation != nil {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error": "This schedule has already been decided",
		})
	}

	if ready, err := v.availabilityComplete(schedule.ID); err != nil {
		return fiber.ErrInternalServerError
	} else if !ready {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error": "The availability round is still open",
		})
	}

	var request castRequest
	if err := c.BodyParser(&request); err != nil {
		return fiber.ErrBadRequest
	}

	options, index, err := v.candidates(schedule.ID)
	if err != nil {
		return fiber.ErrInternalServerError
	}
	if len(options.BestDates()) == 0 || len(options.BestLocations()) == 0 {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error": "There are no candidates to vote on yet",
		})
	}

	errs := map[string]string{}
	if !contains(options.BestDates(), request.VotedDate) {
		errs["voted_date"] = "Voted date is not among the candidates"
	}
	if !contains(options.BestLocations(), request.VotedLocation.Key()) {
		errs["voted_location"] = "Voted location is not among the candidates"
	}
	if len(errs) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": errs})
	}

	if existing, err := v.repository.FindByScheduleAndUser(schedule.ID, session.ID); err != nil {
		return fiber.ErrInternalServerError
	} else if existing != nil {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error": "You have already voted on this schedule",
		})
	}

	vote := model.Vote{
		ScheduleID:    schedule.ID,
		UserID:        session.ID,
		VotedDate:     request.VotedDate,
		VotedLocation: request.VotedLocation.Key(),
	}
	if err := v.repository.Create(&vote); err != nil {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error": "You have already voted on this schedule",
		})
	}

	v.events.Publish(schedule.ID, pubsub.EventVote)

	voters, err := v.repository.UserIDsBySchedule(schedule.ID)
	if err != nil {
		return fiber.ErrInternalServerError
	}

	if !tally.Complete(voters, schedule.AllParticipants()) {
		return c.Status(fiber.StatusCreated).JSON(fiber.Map{
			"complete":   false,
			"next_stage": model.StageWaitingForVotes,
		})
	}

	dates, locations, err := v.resolve(schedule.ID)
	if err != nil {
		return fiber.ErrInternalServerError
	}

	winner, ok := index[locations.Winner]
	if !ok {
		return fiber.ErrInternalServerError
	}

	// Concurrent completions race to this point; the conditional update
	// makes sure only the first one writes, so report what actually landed.
	if err := v.schedules.FinalizeDate(schedule.ID, dates.Winner); err != nil {
		return fiber.ErrInternalServerError
	}
	if err := v.schedules.FinalizeLocation(schedule.ID, winner); err != nil {
		return fiber.ErrInternalServerError
	}

	v.events.Publish(schedule.ID, pubsub.EventFinalized)

	decided, err := v.schedules.FindByID(schedule.ID)
	if err != nil || decided == nil {
		return fiber.ErrInternalServerError
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"complete":       true,
		"next_stage":     model.StageFinal,
		"final_date":     decided.FinalDate,
		"final_location": decided.FinalLocation,
		"date_tie":       dates.Tied,
		"location_tie":   tiedLocations(locations.Tied, index),
		"tied":           dates.Tie() || locations.Tie(),
	})
}

// resolve runs the majority count over every cast ballot.
func (v *Controller) resolve(scheduleID uint) (tally.Result, tally.Result, error) {
	votes, err := v.repository.BySchedule(scheduleID)
	if err != nil {
		return tally.Result{}, tally.Result{}, err
	}

	dates := make([]string, 0, len(votes))
	locations := make([]string, 0, len(votes))
	for _, vote := range votes {
		dates = append(dates, vote.VotedDate)
		locations = append(locations, vote.VotedLocation)
	}

	return tally.Majority(dates), tally.Majority(locations), nil
}

func contains(values []string, value string) bool {
	for _, v := range values {
		if v == value {
			return true
		}
	}
	return false
}
