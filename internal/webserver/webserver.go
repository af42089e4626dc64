package webserver

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/yaksok/yaksok/internal/pubsub"
	"gorm.io/gorm"
)

// New builds a new Fiber application and sets up the required routes
func New(cfg Config, db *gorm.DB, sender Sender) *fiber.App {
	hub := pubsub.NewHub()
	controllers := SetupControllers(cfg, db, sender, hub)

	app := fiber.New(fiber.Config{
		AppName: cfg.Version,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			message := "Internal Server Error"

			var fiberError *fiber.Error
			if errors.As(err, &fiberError) {
				code = fiberError.Code
				message = fiberError.Message
			}

			return c.Status(code).JSON(fiber.Map{"error": message})
		},
	})

	routes(app, controllers)

	return app
}
