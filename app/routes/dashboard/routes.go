package dashboard

import (
	"github.com/dghimirey/edVance/app/models"
	"github.com/dghimirey/edVance/app/routes/auth"
	"github.com/gofiber/fiber/v2"
)

func SetupDashboardRoutes(app *fiber.App) {
	pages := app.Group("/dashboard")
	pages.Use(auth.AuthMiddleware)
	pages.Get("/", DashboardPage)

	api := app.Group("/api/dashboard")
	api.Use(auth.AuthMiddleware)
	api.Get("/admin", auth.RoleMiddleware(models.RoleAdmin), GetAdminStatsAPI)
	api.Get("/teacher", auth.RoleMiddleware(models.RoleAdmin, models.RoleTeacher), GetTeacherStatsAPI)
	api.Get("/student", auth.RoleMiddleware(models.RoleStudent), GetStudentStatsAPI)
}
