package vote

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/yaksok/yaksok/internal/tally"
	"github.com/yaksok/yaksok/internal/webserver/model"
)

const waitTimeout = 25 * time.Second

// Status reports who the coordination vote is still waiting on and, once the
// round is over, the committed outcome with any tie that had to be broken.
func (v *Controller) Status(c *fiber.Ctx) error {
	session := c.Locals("Session").(model.Session)

	schedule, err := v.loadSchedule(c, session)
	if err != nil {
		return err
	}

	voters, err := v.repository.UserIDsBySchedule(schedule.ID)
	if err != nil {
		return fiber.ErrInternalServerError
	}

	complete := tally.Complete(voters, schedule.AllParticipants())
	if !complete && c.QueryBool("wait") {
		events, cancel := v.events.Subscribe(schedule.ID)
		defer cancel()

		select {
		case <-events:
		case <-time.After(waitTimeout):
		case <-c.Context().Done():
			return nil
		}

		if voters, err = v.repository.UserIDsBySchedule(schedule.ID); err != nil {
			return fiber.ErrInternalServerError
		}
		complete = tally.Complete(voters, schedule.AllParticipants())
	}

	pending, err := v.pendingUsernames(schedule.AllParticipants(), voters)
	if err != nil {
		return fiber.ErrInternalServerError
	}

	result := fiber.Map{
		"complete": complete,
		"pending":  pending,
	}

	if complete {
		decided, err := v.schedules.FindByID(schedule.ID)
		if err != nil || decided == nil {
			return fiber.ErrInternalServerError
		}
		dates, locations, err := v.resolve(schedule.ID)
		if err != nil {
			return fiber.ErrInternalServerError
		}
		_, index, err := v.candidates(schedule.ID)
		if err != nil {
			return fiber.ErrInternalServerError
		}
		result["final_date"] = decided.FinalDate
		result["final_location"] = decided.FinalLocation
		result["date_tie"] = dates.Tied
		result["location_tie"] = tiedLocations(locations.Tied, index)
		result["tied"] = dates.Tie() || locations.Tie()
	}

	return c.JSON(result)
}

func (v *Controller) pendingUsernames(participants, voters []uint) ([]string, error) {
	voted := make(map[uint]struct{}, len(voters))
	for _, id := range voters {
		voted[id] = struct{}{}
	}

	pendingIDs := []uint{}
	for _, id := range participants {
		if _, ok := voted[id]; !ok {
			pendingIDs = append(pendingIDs, id)
		}
	}

	users, err := v.users.FindByIDs(pendingIDs)
	if err != nil {
		return nil, err
	}

	usernames := make([]string, 0, len(users))
	for _, user := range users {
		usernames = append(usernames, user.Username)
	}
	return usernames, nil
}
