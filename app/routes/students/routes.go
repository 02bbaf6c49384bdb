package students

import (
	"github.com/dghimirey/edVance/app/models"
	"github.com/dghimirey/edVance/app/routes/auth"
	"github.com/gofiber/fiber/v2"
)

func SetupStudentsRoutes(app *fiber.App) {
	api := app.Group("/api/students")
	api.Use(auth.AuthMiddleware)
	api.Get("/", auth.RoleMiddleware(models.RoleAdmin, models.RoleTeacher), GetStudentsAPI)
	api.Get("/:id", auth.RoleMiddleware(models.RoleAdmin, models.RoleTeacher), GetStudentByIDAPI)
	api.Post("/", auth.RoleMiddleware(models.RoleAdmin, models.RoleTeacher), CreateStudentAPI)
}
