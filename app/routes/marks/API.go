package marks

import (
	"database/sql"
	"errors"
	"log"

	"github.com/dghimirey/edVance/app/config"
	"github.com/dghimirey/edVance/app/database"
	"github.com/dghimirey/edVance/app/models"
	"github.com/dghimirey/edVance/app/reconcile"
	"github.com/gofiber/fiber/v2"
)

// GetRosterAPI returns the class roster for an exam subject with any marks
// already entered, so a marks-entry sheet can be pre-filled.
func GetRosterAPI(c *fiber.Ctx) error {
	examSubjectID := c.Query("exam_subject_id")
	if examSubjectID == "" {
		return c.Status(400).JSON(fiber.Map{"error": "exam_subject_id is required"})
	}

	db := config.GetDB()
	es, classID, err := getExamSubject(db, examSubjectID)
	if err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "Exam subject not found"})
		}
		log.Printf("Failed to fetch exam subject: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch roster"})
	}

	students, err := database.GetClassStudents(db, classID)
	if err != nil {
		log.Printf("Failed to fetch class students: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch roster"})
	}

	existing, err := getExistingMarks(db, examSubjectID)
	if err != nil {
		log.Printf("Failed to fetch existing marks: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch roster"})
	}

	type rosterRow struct {
		Student *models.User        `json:"student"`
		Mark    *models.StudentMark `json:"mark"`
	}
	roster := make([]rosterRow, 0, len(students))
	for _, s := range students {
		roster = append(roster, rosterRow{Student: s, Mark: existing[s.ID]})
	}

	return c.JSON(fiber.Map{
		"exam_subject": es,
		"roster":       roster,
	})
}

// BatchSaveMarksAPI validates a submitted marks batch and upserts it in one
// transaction. Any out-of-range mark rejects the whole batch.
func BatchSaveMarksAPI(c *fiber.Ctx) error {
	type batchRequest struct {
		ExamSubjectID string                `json:"exam_subject_id"`
		Entries       []reconcile.MarkEntry `json:"entries"`
	}

	var req batchRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	if req.ExamSubjectID == "" {
		return c.Status(400).JSON(fiber.Map{"error": "exam_subject_id is required"})
	}

	db := config.GetDB()
	es, _, err := getExamSubject(db, req.ExamSubjectID)
	if err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "Exam subject not found"})
		}
		log.Printf("Failed to fetch exam subject: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "Failed to save marks"})
	}

	enteredBy, _ := c.Locals("user_id").(string)
	writes, err := reconcile.PlanMarks(es, req.Entries, enteredBy)
	if err != nil {
		var verr *reconcile.ValidationError
		if errors.As(err, &verr) {
			return c.Status(400).JSON(fiber.Map{"error": verr.Error()})
		}
		return c.Status(400).JSON(fiber.Map{"error": "Invalid marks batch"})
	}

	if err := upsertMarks(db, writes); err != nil {
		log.Printf("Failed to upsert marks: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "Failed to save marks"})
	}

	return c.JSON(fiber.Map{
		"message": "Marks saved successfully",
		"saved":   len(writes),
	})
}
