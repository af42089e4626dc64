package auth

import (
	"github.com/gofiber/fiber/v2"
)

// Logs out user and removes their JWT.
func (a *Controller) SignOut(c *fiber.Ctx) error {
	c.Cookie(&fiber.Cookie{
		Name:     "yaksok",
		Value:    "void",
		Path:     "/",
		MaxAge:   -1,
		Secure:   false,
		HTTPOnly: true,
	})

	return c.SendStatus(fiber.StatusNoContent)
}
