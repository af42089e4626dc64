package place

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/yaksok/yaksok/internal/tally"
	"github.com/yaksok/yaksok/internal/webserver/model"
)

const waitTimeout = 25 * time.Second

// Status reports the state of the place-vote round: whether it is open, who
// has not voted yet and, when everybody has, the committed winner.
func (p *Controller) Status(c *fiber.Ctx) error {
	session := c.Locals("Session").(model.Session)

	schedule, err := p.loadSchedule(c, session)
	if err != nil {
		return err
	}

	voters, err := p.votes.UserIDsBySchedule(schedule.ID)
	if err != nil {
		return fiber.ErrInternalServerError
	}

	complete := schedule.VotingStarted && tally.Complete(voters, schedule.AllParticipants())
	if !complete && c.QueryBool("wait") {
		events, cancel := p.events.Subscribe(schedule.ID)
		defer cancel()

		select {
		case <-events:
		case <-time.After(waitTimeout):
		case <-c.Context().Done():
			return nil
		}

		if schedule, err = p.schedules.FindByID(schedule.ID); err != nil || schedule == nil {
			return fiber.ErrInternalServerError
		}
		if voters, err = p.votes.UserIDsBySchedule(schedule.ID); err != nil {
			return fiber.ErrInternalServerError
		}
		complete = schedule.VotingStarted && tally.Complete(voters, schedule.AllParticipants())
	}

	pending, err := p.pendingUsernames(schedule.AllParticipants(), voters)
	if err != nil {
		return fiber.ErrInternalServerError
	}

	result := fiber.Map{
		"voting_started": schedule.VotingStarted,
		"complete":       complete,
		"pending":        pending,
	}

	if complete {
		decided, err := p.schedules.FindByID(schedule.ID)
		if err != nil || decided == nil {
			return fiber.ErrInternalServerError
		}
		count, err := p.resolve(schedule.ID)
		if err != nil {
			return fiber.ErrInternalServerError
		}
		result["final_place"] = decided.FinalPlace
		result["tie"] = count.Tied
		result["tied"] = count.Tie()
	}

	return c.JSON(result)
}

func (p *Controller) pendingUsernames(participants, voters []uint) ([]string, error) {
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

	users, err := p.users.FindByIDs(pendingIDs)
	if err != nil {
		return nil, err
	}

	usernames := make([]string, 0, len(users))
	for _, user := range users {
		usernames = append(usernames, user.Username)
	}
	return usernames, nil
}
