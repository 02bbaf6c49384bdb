package subjects

import (
	"github.com/dghimirey/edVance/app/models"
	"github.com/dghimirey/edVance/app/routes/auth"
	"github.com/gofiber/fiber/v2"
)

func SetupSubjectsRoutes(app *fiber.App) {
	api := app.Group("/api/subjects")
	api.Use(auth.AuthMiddleware)
	api.Get("/", GetSubjectsAPI)
	api.Post("/", auth.RoleMiddleware(models.RoleAdmin), CreateSubjectAPI)
	api.Put("/:id", auth.RoleMiddleware(models.RoleAdmin), UpdateSubjectAPI)
	api.Delete("/:id", auth.RoleMiddleware(models.RoleAdmin), DeleteSubjectAPI)
}
