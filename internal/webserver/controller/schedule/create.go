package schedule

import (
	"fmt"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/yaksok/yaksok/internal/webserver/model"
)

type createRequest struct {
	PlanName     string           `json:"plan_name"`
	Month        string           `json:"month"`
	Dates        []string         `json:"dates"`
	Locations    []model.Location `json:"locations"`
	Participants []string         `json:"participants"`
}

// Create stores a new schedule and invites every listed participant. The
// organizer joins with an already accepted invitation; everybody else starts
// pending and gets an email pointing them at the invite.
func (s *Controller) Create(c *fiber.Ctx) error {
	session := c.Locals("Session").(model.Session)

	var request createRequest
	if err := c.BodyParser(&request); err != nil {
		return fiber.ErrBadRequest
	}

	invitees, err := s.users.FindByUsernames(request.Participants)
	if err != nil {
		return fiber.ErrInternalServerError
	}

	schedule := model.Schedule{
		Uuid:      uuid.NewString(),
		PlanName:  request.PlanName,
		Month:     request.Month,
		Dates:     request.Dates,
		Locations: request.Locations,
		CreatedBy: session.ID,
	}

	errs := schedule.Validate()
	if len(invitees) != len(request.Participants) {
		errs["participants"] = "One or more participants do not exist"
	}
	if len(errs) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": errs})
	}

	for _, invitee := range invitees {
		if invitee.ID != session.ID {
			schedule.Participants = append(schedule.Participants, invitee.ID)
		}
	}

	if err := s.repository.Create(&schedule); err != nil {
		return fiber.ErrInternalServerError
	}

	// The organizer never has to accept their own plan.
	if err := s.invitations.Create(&model.Invitation{
		ScheduleID: schedule.ID,
		UserID:     session.ID,
		Status:     model.InvitationAccepted,
		LastStage:  model.StageInvited,
	}); err != nil {
		return fiber.ErrInternalServerError
	}

	for _, invitee := range invitees {
		if invitee.ID == session.ID {
			continue
		}
		if err := s.invitations.Create(&model.Invitation{
			ScheduleID: schedule.ID,
			UserID:     invitee.ID,
			Status:     model.InvitationPending,
			LastStage:  model.StageInvited,
		}); err != nil {
			return fiber.ErrInternalServerError
		}
		s.notify(invitee, schedule, session.Name)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"uuid": schedule.Uuid})
}

// Email delivery is best effort, a failed send never fails the request.
func (s *Controller) notify(invitee model.User, schedule model.Schedule, organizer string) {
	subject := fmt.Sprintf("%s invited you to \"%s\"", organizer, schedule.PlanName)
	body := fmt.Sprintf("%s wants to meet up in %s. Sign in to accept or reject the invitation to \"%s\".",
		organizer, schedule.Month, schedule.PlanName)
	if err := s.sender.Send(invitee.Email, subject, body); err != nil {
		log.Printf("error sending invitation email to %s: %s\n", invitee.Email, err)
	}
}
