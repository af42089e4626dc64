package response

import (
	"github.com/gofiber/fiber/v2"
	"github.com/yaksok/yaksok/internal/tally"
	"github.com/yaksok/yaksok/internal/webserver/model"
)

// Options returns the candidate sets computed from everybody's availability:
// the dates and locations everyone can make, and the ones at least two people
// picked as a fallback when nothing is unanimous.
func (r *Controller) Options(c *fiber.Ctx) error {
	session := c.Locals("Session").(model.Session)

	schedule, err := r.loadSchedule(c, session)
	if err != nil {
		return err
	}

	complete, err := r.complete(schedule.ID)
	if err != nil {
		return fiber.ErrInternalServerError
	}

	options, index, err := r.options(schedule.ID)
	if err != nil {
		return fiber.ErrInternalServerError
	}

	return c.JSON(fiber.Map{
		"complete":            complete,
		"unanimous":           options.Unanimous(),
		"common_dates":        options.CommonDates,
		"plurality_dates":     options.PluralityDates,
		"common_locations":    asLocations(options.CommonLocations, index),
		"plurality_locations": asLocations(options.PluralityLocations, index),
		"best_dates":          options.BestDates(),
		"best_locations":      asLocations(options.BestLocations(), index),
	})
}

// options aggregates the stored submissions and keeps an index from location
// key back to the submitted location, so keys never have to be parsed apart.
func (r *Controller) options(scheduleID uint) (tally.Options, map[string]model.Location, error) {
	responses, err := r.repository.BySchedule(scheduleID)
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

func asLocations(keys []string, index map[string]model.Location) []model.Location {
	result := make([]model.Location, 0, len(keys))
	for _, key := range keys {
		result = append(result, index[key])
	}
	return result
}
