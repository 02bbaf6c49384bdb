package timetable

import (
	"github.com/dghimirey/edVance/app/models"
	"github.com/dghimirey/edVance/app/routes/auth"
	"github.com/gofiber/fiber/v2"
)

func SetupTimetableRoutes(app *fiber.App) {
	api := app.Group("/api/timetable")
	api.Use(auth.AuthMiddleware)
	api.Get("/", GetTimetableAPI)
	api.Post("/", auth.RoleMiddleware(models.RoleAdmin), CreateEntryAPI)
	api.Delete("/:id", auth.RoleMiddleware(models.RoleAdmin), DeleteEntryAPI)
}
