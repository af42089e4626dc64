package vote

import (
	"github.com/gofiber/fiber/v2"
	"github.com/yaksok/yaksok/internal/tally"
	"github.com/yaksok/yaksok/internal/webserver/model"
)

type voteRepository interface {
	Create(vote *model.Vote) error
	FindByScheduleAndUser(scheduleID, userID uint) (*model.Vote, error)
	BySchedule(scheduleID uint) ([]model.Vote, error)
	UserIDsBySchedule(scheduleID uint) ([]uint, error)
}

type scheduleRepository interface {
	FindByUuid(uuid string) (*model.Schedule, error)
	FindByID(id uint) (*model.Schedule, error)
	FinalizeDate(scheduleID uint, date string) error
	FinalizeLocation(scheduleID uint, location model.Location) error
}

type responseRepository interface {
	BySchedule(scheduleID uint) ([]model.Response, error)
	UserIDsBySchedule(scheduleID uint) ([]uint, error)
}

type invitationRepository interface {
	BySchedule(scheduleID uint) ([]model.Invitation, error)
}

type userRepository interface {
	FindByIDs(ids []uint) ([]model.User, error)
}

type events interface {
	Publish(scheduleID uint, event string)
	Subscribe(scheduleID uint) (<-chan string, func())
}

type Controller struct {
	repository  voteRepository
	schedules   scheduleRepository
	responses   responseRepository
	invitations invitationRepository
	users       userRepository
	events      events
}

func NewController(repository voteRepository, schedules scheduleRepository, responses responseRepository, invitations invitationRepository, users userRepository, events events) *Controller {
	return &Controller{
		repository:  repository,
		schedules:   schedules,
		responses:   responses,
		invitations: invitations,
		users:       users,
		events:      events,
	}
}

func (v *Controller) loadSchedule(c *fiber.Ctx, session model.Session) (*model.Schedule, error) {
	schedule, err := v.schedules.FindByUuid(c.Params("uuid"))
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

// availabilityComplete mirrors the response round's completeness rule: no
// invitation still pending and every accepted participant has responded.
// Votes before that point would run against candidate sets that later
// responses could still change.
func (v *Controller) availabilityComplete(scheduleID uint) (bool, error) {
	invitations, err := v.invitations.BySchedule(scheduleID)
	if err != nil {
		return false, err
	}

	responded, err := v.responses.UserIDsBySchedule(scheduleID)
	if err != nil {
		return false, err
	}

	hasResponded := make(map[uint]struct{}, len(responded))
	for _, id := range responded {
		hasResponded[id] = struct{}{}
	}

	for _, invitation := range invitations {
		if invitation.Status != model.InvitationAccepted {
			return false, nil
		}
		if _, ok := hasResponded[invitation.UserID]; !ok {
			return false, nil
		}
	}
	return true, nil
}

// candidates are recomputed from the stored availability, never trusted from
// the client. The returned index maps each location key back to the location
// it was built from, so committed values never have to be parsed out of a key.
func (v *Controller) candidates(scheduleID uint) (tally.Options, map[string]model.Location, error) {
	responses, err := v.responses.BySchedule(scheduleID)
	if err != nil {
		return tally.Options{}, nil, err
	}

	index := map[string]model.Location{}
	submissions := make([]tally.Submission, 0, len(responses))
	for _, response := range responses {
		for _, location := range response.SelectedLocations {
			index[location.Key()] = location
		}
		submissions = append(submissions, tally.Submission{
			Dates:     response.SelectedDates,
			Locations: model.LocationKeys(response.SelectedLocations),
		})
	}

	return tally.Aggregate(submissions), index, nil
}

func tiedLocations(keys []string, index map[string]model.Location) []model.Location {
	result := make([]model.Location, 0, len(keys))
	for _, key := range keys {
		result = append(result, index[key])
	}
	return result
}
