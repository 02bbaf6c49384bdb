package marks

import (
	"github.com/dghimirey/edVance/app/models"
	"github.com/dghimirey/edVance/app/routes/auth"
	"github.com/gofiber/fiber/v2"
)

func SetupMarksRoutes(app *fiber.App) {
	api := app.Group("/api/marks")
	api.Use(auth.AuthMiddleware)
	api.Get("/roster", auth.RoleMiddleware(models.RoleAdmin, models.RoleTeacher), GetRosterAPI)
	api.Post("/batch", auth.RoleMiddleware(models.RoleAdmin, models.RoleTeacher), BatchSaveMarksAPI)
}
