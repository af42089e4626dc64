package invitation

import (
	"github.com/yaksok/yaksok/internal/webserver/model"
)

type invitationRepository interface {
	ByUserAndStatus(userID uint, status string) ([]model.Invitation, error)
	Accept(scheduleID, userID uint) error
	Delete(scheduleID, userID uint) error
	RecordLastStage(scheduleID, userID uint, stage string) error
}

type scheduleRepository interface {
	FindByID(id uint) (*model.Schedule, error)
	FindByUuid(uuid string) (*model.Schedule, error)
}

type userRepository interface {
	FindByIDs(ids []uint) ([]model.User, error)
}

type Controller struct {
	repository invitationRepository
	schedules  scheduleRepository
	users      userRepository
}

func NewController(repository invitationRepository, schedules scheduleRepository, users userRepository) *Controller {
	return &Controller{
		repository: repository,
		schedules:  schedules,
		users:      users,
	}
}
