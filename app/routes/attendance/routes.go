package attendance

import (
	"github.com/dghimirey/edVance/app/models"
	"github.com/dghimirey/edVance/app/routes/auth"
	"github.com/gofiber/fiber/v2"
)

func SetupAttendanceRoutes(app *fiber.App) {
	api := app.Group("/api/attendance")
	api.Use(auth.AuthMiddleware)
	api.Get("/register", auth.RoleMiddleware(models.RoleAdmin, models.RoleTeacher), GetRegisterAPI)
	api.Post("/batch", auth.RoleMiddleware(models.RoleAdmin, models.RoleTeacher), BatchSaveAttendanceAPI)
}
