package auth

import (
	"time"

	"github.com/yaksok/yaksok/internal/webserver/model"
)

type authRepository interface {
	FindByUsername(username string) (*model.User, error)
	FindByEmail(email string) (*model.User, error)
	Create(user *model.User) error
}

type Controller struct {
	repository authRepository
	config     Config
}

type Config struct {
	Secret            []byte
	MinPasswordLength int
	SessionTimeout    time.Duration
}

func NewController(repository authRepository, cfg Config) *Controller {
	return &Controller{
		repository: repository,
		config:     cfg,
	}
}
