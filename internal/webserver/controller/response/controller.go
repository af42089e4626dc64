package response

import (
	"github.com/gofiber/fiber/v2"
	"github.com/yaksok/yaksok/internal/webserver/model"
)

type responseRepository interface {
	Create(response *model.Response) error
	FindByScheduleAndUser(scheduleID, userID uint) (*model.Response, error)
	BySchedule(scheduleID uint) ([]model.Response, error)
	UserIDsBySchedule(scheduleID uint) ([]uint, error)
}

type scheduleRepository interface {
	FindByUuid(uuid string) (*model.Schedule, error)
}

type invitationRepository interface {
	BySchedule(scheduleID uint) ([]model.Invitation, error)
	FindByScheduleAndUser(scheduleID, userID uint) (*model.Invitation, error)
}

type userRepository interface {
	FindByIDs(ids []uint) ([]model.User, error)
}

type events interface {
	Publish(scheduleID uint, event string)
	Subscribe(scheduleID uint) (<-chan string, func())
}

type Controller struct {
	repository  responseRepository
	schedules   scheduleRepository
	invitations invitationRepository
	users       userRepository
	events      events
}

func NewController(repository responseRepository, schedules scheduleRepository, invitations invitationRepository, users userRepository, events events) *Controller {
	return &Controller{
		repository:  repository,
		schedules:   schedules,
		invitations: invitations,
		users:       users,
		events:      events,
	}
}

func (r *Controller) loadSchedule(c *fiber.Ctx, session model.Session) (*model.Schedule, error) {
	schedule, err := r.schedules.FindByUuid(c.Params("uuid"))
	if err != nil {
		return nil, fiber.ErrInternalServerError
	}
	if schedule == nil {
		return nil, fiber.ErrNotFound
	}
	if !schedule.IsParticipant(session.ID) {
		return nil, fiber.ErrForbidden
	}
	return schedule, nil
}
