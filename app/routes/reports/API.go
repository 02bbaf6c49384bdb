package reports

import (
	"database/sql"
	"log"

	"github.com/dghimirey/edVance/app/config"
	"github.com/dghimirey/edVance/app/grading"
	"github.com/dghimirey/edVance/app/models"
	"github.com/gofiber/fiber/v2"
)

// buildReportCard runs the shared fetch + aggregation for both the JSON
// endpoint and the printable page.
func buildReportCard(db *sql.DB, examID, studentID string) (*models.Exam, *models.ReportCard, error) {
	exam, err := getExam(db, examID)
	if err != nil {
		return nil, nil, err
	}

	subjects, err := getExamSubjects(db, examID)
	if err != nil {
		return nil, nil, err
	}
	marks, err := getStudentMarks(db, examID, studentID)
	if err != nil {
		return nil, nil, err
	}
	entries, err := getScaleEntries(db, exam.AcademicYear)
	if err != nil {
		return nil, nil, err
	}

	return exam, grading.BuildReportCard(subjects, marks, entries), nil
}

// canViewReport lets staff see any report but students only their own.
func canViewReport(c *fiber.Ctx, studentID string) bool {
	user, ok := c.Locals("user").(*models.User)
	if !ok {
		return false
	}
	return user.IsStaff() || user.ID == studentID
}

func GetReportCardAPI(c *fiber.Ctx) error {
	studentID := c.Params("studentId")
	examID := c.Query("exam")
	if examID == "" {
		return c.Status(400).JSON(fiber.Map{"error": "exam query parameter is required"})
	}
	if !canViewReport(c, studentID) {
		return c.Status(403).JSON(fiber.Map{"error": "Insufficient permissions"})
	}

	exam, card, err := buildReportCard(config.GetDB(), examID, studentID)
	if err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "Exam not found"})
		}
		log.Printf("Failed to build report card: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "Failed to build report card"})
	}

	return c.JSON(fiber.Map{
		"exam":        exam,
		"student_id":  studentID,
		"report_card": card,
	})
}

func ReportCardPage(c *fiber.Ctx) error {
	studentID := c.Params("studentId")
	examID := c.Query("exam")
	if examID == "" {
		return c.Status(400).Render("error", fiber.Map{
			"Title":        "Report Card - edVance",
			"ErrorCode":    "400",
			"ErrorTitle":   "Missing Exam",
			"ErrorMessage": "An exam must be selected to view a report card.",
			"user":         c.Locals("user"),
		})
	}
	if !canViewReport(c, studentID) {
		return c.Status(403).Render("error", fiber.Map{
			"Title":        "Access Forbidden - edVance",
			"ErrorCode":    "403",
			"ErrorTitle":   "Access Forbidden",
			"ErrorMessage": "You don't have permission to view this report card.",
			"user":         c.Locals("user"),
		})
	}

	db := config.GetDB()
	exam, card, err := buildReportCard(db, examID, studentID)
	if err != nil {
		log.Printf("Failed to build report card: %v", err)
		return c.Status(500).Render("error", fiber.Map{
			"Title":        "Error - edVance",
			"ErrorCode":    "500",
			"ErrorTitle":   "Something Went Wrong",
			"ErrorMessage": "Failed to load the report card. Please try again later.",
			"user":         c.Locals("user"),
		})
	}

	studentName, err := getStudentName(db, studentID)
	if err != nil {
		studentName = ""
	}

	return c.Render("reports/card", fiber.Map{
		"Title":       "Report Card - edVance",
		"exam":        exam,
		"card":        card,
		"StudentName": studentName,
		"user":        c.Locals("user"),
	})
}
