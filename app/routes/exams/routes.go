package exams

import (
	"github.com/dghimirey/edVance/app/models"
	"github.com/dghimirey/edVance/app/routes/auth"
	"github.com/gofiber/fiber/v2"
)

func SetupExamsRoutes(app *fiber.App) {
	api := app.Group("/api/exams")
	api.Use(auth.AuthMiddleware)
	api.Get("/", GetExamsAPI)
	api.Post("/", auth.RoleMiddleware(models.RoleAdmin, models.RoleTeacher), CreateExamAPI)
	api.Get("/:id", GetExamByIDAPI)
	api.Get("/:id/subjects", GetExamSubjectsAPI)
	api.Post("/:id/subjects", auth.RoleMiddleware(models.RoleAdmin, models.RoleTeacher), AddExamSubjectAPI)
}
