package webserver

import (
	"github.com/gofiber/fiber/v2"
	"github.com/yaksok/yaksok/internal/pubsub"
	"github.com/yaksok/yaksok/internal/webserver/controller/auth"
	"github.com/yaksok/yaksok/internal/webserver/controller/invitation"
	"github.com/yaksok/yaksok/internal/webserver/controller/place"
	"github.com/yaksok/yaksok/internal/webserver/controller/response"
	"github.com/yaksok/yaksok/internal/webserver/controller/schedule"
	"github.com/yaksok/yaksok/internal/webserver/controller/vote"
	"github.com/yaksok/yaksok/internal/webserver/model"
	"gorm.io/gorm"
)

type Controllers struct {
	Auth                                  *auth.Controller
	Schedules                             *schedule.Controller
	Invitations                           *invitation.Controller
	Responses                             *response.Controller
	Votes                                 *vote.Controller
	Places                                *place.Controller
	AllowIfNotLoggedInMiddleware          func(c *fiber.Ctx) error
	AlwaysRequireAuthenticationMiddleware func(c *fiber.Ctx) error
}

func SetupControllers(cfg Config, db *gorm.DB, sender Sender, hub *pubsub.Hub) Controllers {
	usersRepository := &model.UserRepository{DB: db}
	schedulesRepository := &model.ScheduleRepository{DB: db}
	invitationsRepository := &model.InvitationRepository{DB: db}
	responsesRepository := &model.ResponseRepository{DB: db}
	votesRepository := &model.VoteRepository{DB: db}
	heartsRepository := &model.HeartedLocationRepository{DB: db}
	placeVotesRepository := &model.PlaceVoteRepository{DB: db}

	authCfg := auth.Config{
		Secret:            cfg.JwtSecret,
		MinPasswordLength: cfg.MinPasswordLength,
		SessionTimeout:    cfg.SessionTimeout,
	}

	return Controllers{
		Auth:        auth.NewController(usersRepository, authCfg),
		Schedules:   schedule.NewController(schedulesRepository, usersRepository, invitationsRepository, sender),
		Invitations: invitation.NewController(invitationsRepository, schedulesRepository, usersRepository),
		Responses:   response.NewController(responsesRepository, schedulesRepository, invitationsRepository, usersRepository, hub),
		Votes:       vote.NewController(votesRepository, schedulesRepository, responsesRepository, invitationsRepository, usersRepository, hub),
		Places:      place.NewController(heartsRepository, placeVotesRepository, schedulesRepository, usersRepository, hub),

		AllowIfNotLoggedInMiddleware:          AllowIfNotLoggedIn(cfg.JwtSecret),
		AlwaysRequireAuthenticationMiddleware: AlwaysRequireAuthentication(cfg.JwtSecret),
	}
}
