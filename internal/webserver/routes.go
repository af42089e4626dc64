package webserver

import (
	"github.com/gofiber/fiber/v2"
)

func routes(app *fiber.App, controllers Controllers) {
	app.Post("/register", controllers.AllowIfNotLoggedInMiddleware, controllers.Auth.Register)
	app.Post("/login", controllers.AllowIfNotLoggedInMiddleware, controllers.Auth.SignIn)
	app.Get("/logout", controllers.Auth.SignOut)

	// Everything below requires a signed-in user
	app.Use(controllers.AlwaysRequireAuthenticationMiddleware)

	app.Get("/invitations", controllers.Invitations.List)
	app.Get("/invitations/in-progress", controllers.Invitations.InProgress)

	app.Post("/schedules", controllers.Schedules.Create)
	app.Get("/schedules/:uuid<guid>", controllers.Schedules.Detail)
	app.Get("/schedules/:uuid<guid>/final", controllers.Schedules.Final)

	app.Post("/schedules/:uuid<guid>/invitation/accept", controllers.Invitations.Accept)
	app.Post("/schedules/:uuid<guid>/invitation/reject", controllers.Invitations.Reject)
	app.Post("/schedules/:uuid<guid>/stage", controllers.Invitations.Stage)

	app.Post("/schedules/:uuid<guid>/responses", controllers.Responses.Create)
	app.Get("/schedules/:uuid<guid>/responses/status", controllers.Responses.Status)
	app.Get("/schedules/:uuid<guid>/options", controllers.Responses.Options)

	app.Post("/schedules/:uuid<guid>/votes", controllers.Votes.Cast)
	app.Get("/schedules/:uuid<guid>/votes/status", controllers.Votes.Status)

	app.Post("/schedules/:uuid<guid>/hearts", controllers.Places.Heart)
	app.Get("/schedules/:uuid<guid>/hearts", controllers.Places.Hearts)
	app.Post("/schedules/:uuid<guid>/place-votes/start", controllers.Places.StartVoting)
	app.Post("/schedules/:uuid<guid>/place-votes", controllers.Places.Cast)
	app.Get("/schedules/:uuid<guid>/place-votes/status", controllers.Places.Status)
	app.Get("/schedules/:uuid<guid>/place", controllers.Places.Final)
}
