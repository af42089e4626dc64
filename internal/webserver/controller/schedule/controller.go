package schedule

import (
	"github.com/yaksok/yaksok/internal/webserver/model"
)

type scheduleRepository interface {
	Create(schedule *model.Schedule) error
	FindByUuid(uuid string) (*model.Schedule, error)
}

type userRepository interface {
	FindByUsernames(usernames []string) ([]model.User, error)
	FindByIDs(ids []uint) ([]model.User, error)
}

type invitationRepository interface {
	Create(invitation *model.Invitation) error
}

type scheduleEmail interface {
	Send(address, subject, body string) error
}

type Controller struct {
	repository  scheduleRepository
	users       userRepository
	invitations invitationRepository
	sender      scheduleEmail
}

func NewController(repository scheduleRepository, users userRepository, invitations invitationRepository, sender scheduleEmail) *Controller {
	return &Controller{
		repository:  repository,
		users:       users,
		invitations: invitations,
		sender:      sender,
	}
}
