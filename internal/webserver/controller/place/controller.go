package place

import (
	"github.com/gofiber/fiber/v2"
	"github.com/yaksok/yaksok/internal/tally"
	"github.com/yaksok/yaksok/internal/webserver/model"
)

type heartRepository interface {
	Create(heart *model.HeartedLocation) error
	BySchedule(scheduleID uint) ([]model.HeartedLocation, error)
	Total(scheduleID uint) int64
	FindByTitle(scheduleID uint, title string) (*model.HeartedLocation, error)
}

type placeVoteRepository interface {
	Create(vote *model.PlaceVote) error
	FindByScheduleAndUser(scheduleID, userID uint) (*model.PlaceVote, error)
	BySchedule(scheduleID uint) ([]model.PlaceVote, error)
	UserIDsBySchedule(scheduleID uint) ([]uint, error)
}

type scheduleRepository interface {
	FindByUuid(uuid string) (*model.Schedule, error)
	FindByID(id uint) (*model.Schedule, error)
	StartVoting(scheduleID uint) error
	FinalizePlace(scheduleID uint, place model.Location) error
}

type userRepository interface {
	FindByIDs(ids []uint) ([]model.User, error)
}

type events interface {
	Publish(scheduleID uint, event string)
	Subscribe(scheduleID uint) (<-chan string, func())
}

type Controller struct {
	hearts    heartRepository
	votes     placeVoteRepository
	schedules scheduleRepository
	users     userRepository
	events    events
}

func NewController(hearts heartRepository, votes placeVoteRepository, schedules scheduleRepository, users userRepository, events events) *Controller {
	return &Controller{
		hearts:    hearts,
		votes:     votes,
		schedules: schedules,
		users:     users,
		events:    events,
	}
}

func (p *Controller) loadSchedule(c *fiber.Ctx, session model.Session) (*model.Schedule, error) {
	schedule, err := p.schedules.FindByUuid(c.Params("uuid"))
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

// resolve counts every choice on every ballot; a two-place ballot backs both
// its places with full weight.
func (p *Controller) resolve(scheduleID uint) (tally.Result, error) {
	votes, err := p.votes.BySchedule(scheduleID)
	if err != nil {
		return tally.Result{}, err
	}

	choices := []string{}
	for _, vote := range votes {
		choices = append(choices, vote.Choices...)
	}

	return tally.Majority(choices), nil
}
