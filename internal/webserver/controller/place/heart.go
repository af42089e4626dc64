package place

import (
	"github.com/gofiber/fiber/v2"
	"github.com/yaksok/yaksok/internal/webserver/model"
)

// Heart saves a place as a candidate for the final place vote. Hearting the
// same place again is a no-op, any participant can do it and it carries no
// vote weight on its own.
func (p *Controller) Heart(c *fiber.Ctx) error {
	session := c.Locals("Session").(model.Session)

	schedule, err := p.loadSchedule(c, session)
	if err != nil {
		return err
	}

	if schedule.VotingStarted {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error": "Voting has already started, the candidate list is closed",
		})
	}

	var location model.Location
	if err := c.BodyParser(&location); err != nil {
		return fiber.ErrBadRequest
	}

	errs := map[string]string{}
	if location.Title == "" {
		errs["title"] = "Title cannot be empty"
	}
	if location.Address == "" {
		errs["address"] = "Address cannot be empty"
	}
	if len(errs) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": errs})
	}

	heart := model.HeartedLocation{
		ScheduleID: schedule.ID,
		Title:      location.Title,
		Address:    location.Address,
	}
	if err := p.hearts.Create(&heart); err != nil {
		return fiber.ErrInternalServerError
	}

	return c.Status(fiber.StatusCreated).JSON(heart.Location())
}

// Hearts lists the hearted places of a schedule in title order.
func (p *Controller) Hearts(c *fiber.Ctx) error {
	session := c.Locals("Session").(model.Session)

	schedule, err := p.loadSchedule(c, session)
	if err != nil {
		return err
	}

	hearts, err := p.hearts.BySchedule(schedule.ID)
	if err != nil {
		return fiber.ErrInternalServerError
	}

	places := make([]model.Location, 0, len(hearts))
	for _, heart := range hearts {
		places = append(places, heart.Location())
	}

	return c.JSON(fiber.Map{
		"voting_started": schedule.VotingStarted,
		"places":         places,
	})
}
