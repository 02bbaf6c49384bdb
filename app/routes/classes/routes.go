package classes

import (
	"github.com/dghimirey/edVance/app/models"
	"github.com/dghimirey/edVance/app/routes/auth"
	"github.com/gofiber/fiber/v2"
)

func SetupClassesRoutes(app *fiber.App) {
	api := app.Group("/api/classes")
	api.Use(auth.AuthMiddleware)
	api.Get("/", GetClassesAPI)
	api.Post("/", auth.RoleMiddleware(models.RoleAdmin), CreateClassAPI)
	api.Get("/:id/students", auth.RoleMiddleware(models.RoleAdmin, models.RoleTeacher), GetClassStudentsAPI)
	api.Post("/:id/students", auth.RoleMiddleware(models.RoleAdmin, models.RoleTeacher), EnrollStudentAPI)
}
