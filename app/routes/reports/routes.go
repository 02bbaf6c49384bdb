package reports

import (
	"github.com/dghimirey/edVance/app/routes/auth"
	"github.com/gofiber/fiber/v2"
)

func SetupReportsRoutes(app *fiber.App) {
	api := app.Group("/api/reports")
	api.Use(auth.AuthMiddleware)
	api.Get("/:studentId", GetReportCardAPI)

	pages := app.Group("/reports")
	pages.Use(auth.AuthMiddleware)
	pages.Get("/:studentId", ReportCardPage)
}
