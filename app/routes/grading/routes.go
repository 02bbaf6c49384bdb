package grading

import (
	"github.com/dghimirey/edVance/app/models"
	"github.com/dghimirey/edVance/app/routes/auth"
	"github.com/gofiber/fiber/v2"
)

func SetupGradingRoutes(app *fiber.App) {
	api := app.Group("/api/grading")
	api.Use(auth.AuthMiddleware)
	api.Get("/scales", GetScalesAPI)
	api.Post("/scales", auth.RoleMiddleware(models.RoleAdmin), CreateScaleAPI)
	api.Delete("/scales/:id", auth.RoleMiddleware(models.RoleAdmin), DeleteScaleAPI)
	api.Get("/scales/:id/entries", GetScaleEntriesAPI)
	api.Post("/scales/:id/entries", auth.RoleMiddleware(models.RoleAdmin), AddScaleEntryAPI)
	api.Delete("/entries/:id", auth.RoleMiddleware(models.RoleAdmin), DeleteScaleEntryAPI)
}
