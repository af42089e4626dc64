package auth

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/yaksok/yaksok/internal/webserver/model"
)

// Register creates a new account and returns its public profile.
func (a *Controller) Register(c *fiber.Ctx) error {
	user := model.User{
		Name:     c.FormValue("name"),
		Username: c.FormValue("username"),
		Email:    c.FormValue("email"),
		Password: c.FormValue("password"),
	}

	errs := user.Validate(a.config.MinPasswordLength)
	errs = user.ConfirmPassword(c.FormValue("confirm-password"), errs)

	if existing, err := a.repository.FindByUsername(user.Username); err != nil {
		return fiber.ErrInternalServerError
	} else if existing != nil {
		errs["username"] = "A user with this username already exists"
	}

	if existing, err := a.repository.FindByEmail(user.Email); err != nil {
		return fiber.ErrInternalServerError
	} else if existing != nil {
		errs["email"] = "A user with this email already exists"
	}

	if len(errs) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": errs})
	}

	user.Uuid = uuid.NewString()
	user.Password = model.Hash(user.Password)
	if err := a.repository.Create(&user); err != nil {
		return fiber.ErrInternalServerError
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"uuid":     user.Uuid,
		"name":     user.Name,
		"username": user.Username,
	})
}
