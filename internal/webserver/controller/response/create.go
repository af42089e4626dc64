package response

import (
	"github.com/gofiber/fiber/v2"
	"github.com/yaksok/yaksok/internal/pubsub"
	"github.com/yaksok/yaksok/internal/webserver/model"
)

type createRequest struct {
	SelectedDates     []string         `json:"selected_dates"`
	SelectedLocations []model.Location `json:"selected_locations"`
}

// Create stores the participant's availability. One submission per user,
// written once; a second attempt is rejected instead of merged.
func (r *Controller) Create(c *fiber.Ctx) error {
	session := c.Locals("Session").(model.Session)

	schedule, err := r.loadSchedule(c, session)
	if err != nil {
		return err
	}

	invitation, err := r.invitations.FindByScheduleAndUser(schedule.ID, session.ID)
	if err != nil {
		return fiber.ErrInternalServerError
	}
	if invitation == nil || invitation.Status != model.InvitationAccepted {
		return fiber.ErrForbidden
	}

	var request createRequest
	if err := c.BodyParser(&request); err != nil {
		return fiber.ErrBadRequest
	}

	if existing, err := r.repository.FindByScheduleAndUser(schedule.ID, session.ID); err != nil {
		return fiber.ErrInternalServerError
	} else if existing != nil {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error": "You have already responded to this schedule",
		})
	}

	response := model.Response{
		ScheduleID:        schedule.ID,
		UserID:            session.ID,
		SelectedDates:     request.SelectedDates,
		SelectedLocations: request.SelectedLocations,
	}
	if err := r.repository.Create(&response); err != nil {
		// A concurrent duplicate trips the unique index, treat it as the
		// same conflict a pre-existing row would be.
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error": "You have already responded to this schedule",
		})
	}

	r.events.Publish(schedule.ID, pubsub.EventResponse)

	complete, err := r.complete(schedule.ID)
	if err != nil {
		return fiber.ErrInternalServerError
	}

	next := model.StageWaitingForResponses
	if complete {
		next = model.StageCoordinate
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"complete":   complete,
		"next_stage": next,
	})
}
