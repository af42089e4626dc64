package response

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/yaksok/yaksok/internal/webserver/model"
)

const waitTimeout = 25 * time.Second

// Status reports who the availability round is still waiting on. With
// ?wait=true the request parks until another participant's write lands or the
// timeout expires, then reports the fresh state. Waking up late or not at all
// only delays the client, the state is recomputed on every request.
func (r *Controller) Status(c *fiber.Ctx) error {
	session := c.Locals("Session").(model.Session)

	schedule, err := r.loadSchedule(c, session)
	if err != nil {
		return err
	}

	complete, pending, err := r.pendingUsernames(schedule.ID)
	if err != nil {
		return fiber.ErrInternalServerError
	}

	if !complete && c.QueryBool("wait") {
		events, cancel := r.events.Subscribe(schedule.ID)
		defer cancel()

		select {
		case <-events:
		case <-time.After(waitTimeout):
		case <-c.Context().Done():
			return nil
		}

		complete, pending, err = r.pendingUsernames(schedule.ID)
		if err != nil {
			return fiber.ErrInternalServerError
		}
	}

	return c.JSON(fiber.Map{
		"complete": complete,
		"pending":  pending,
	})
}

// complete is true once every invitation has been accepted and every accepted
// participant has submitted their availability.
func (r *Controller) complete(scheduleID uint) (bool, error) {
	complete, _, err := r.pendingState(scheduleID)
	return complete, err
}

func (r *Controller) pendingState(scheduleID uint) (bool, []uint, error) {
	invitations, err := r.invitations.BySchedule(scheduleID)
	if err != nil {
		return false, nil, err
	}

	responded, err := r.repository.UserIDsBySchedule(scheduleID)
	if err != nil {
		return false, nil, err
	}

	hasResponded := make(map[uint]struct{}, len(responded))
	for _, id := range responded {
		hasResponded[id] = struct{}{}
	}

	pending := []uint{}
	for _, invitation := range invitations {
		if invitation.Status != model.InvitationAccepted {
			pending = append(pending, invitation.UserID)
			continue
		}
		if _, ok := hasResponded[invitation.UserID]; !ok {
			pending = append(pending, invitation.UserID)
		}
	}

	return len(pending) == 0, pending, nil
}

func (r *Controller) pendingUsernames(scheduleID uint) (bool, []string, error) {
	complete, pendingIDs, err := r.pendingState(scheduleID)
	if err != nil {
		return false, nil, err
	}

	users, err := r.users.FindByIDs(pendingIDs)
	if err != nil {
		return false, nil, err
	}

	usernames := make([]string, 0, len(users))
	for _, user := range users {
		usernames = append(usernames, user.Username)
	}
	return complete, usernames, nil
}
