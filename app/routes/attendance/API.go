package attendance

import (
	"errors"
	"log"
	"time"

	"github.com/dghimirey/edVance/app/config"
	"github.com/dghimirey/edVance/app/database"
	"github.com/dghimirey/edVance/app/models"
	"github.com/dghimirey/edVance/app/reconcile"
	"github.com/gofiber/fiber/v2"
)

// GetRegisterAPI returns the class roster for a date with any statuses
// already recorded, so the register can be corrected and re-saved.
func GetRegisterAPI(c *fiber.Ctx) error {
	classID := c.Query("class_id")
	dateStr := c.Query("date")
	if classID == "" || dateStr == "" {
		return c.Status(400).JSON(fiber.Map{"error": "class_id and date are required"})
	}
	date, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "date must be YYYY-MM-DD"})
	}

	db := config.GetDB()
	students, err := database.GetClassStudents(db, classID)
	if err != nil {
		log.Printf("Failed to fetch class students: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch register"})
	}

	existing, err := getRegister(db, classID, date)
	if err != nil {
		log.Printf("Failed to fetch attendance: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch register"})
	}

	type registerRow struct {
		Student    *models.User       `json:"student"`
		Attendance *models.Attendance `json:"attendance"`
	}
	register := make([]registerRow, 0, len(students))
	for _, s := range students {
		register = append(register, registerRow{Student: s, Attendance: existing[s.ID]})
	}

	return c.JSON(fiber.Map{
		"class_id": classID,
		"date":     dateStr,
		"register": register,
	})
}

// BatchSaveAttendanceAPI validates a submitted register and upserts it in
// one transaction. Rows without a status are skipped; an unknown status
// rejects the whole batch.
func BatchSaveAttendanceAPI(c *fiber.Ctx) error {
	type batchRequest struct {
		ClassID string                      `json:"class_id"`
		Date    string                      `json:"date"`
		Entries []reconcile.AttendanceEntry `json:"entries"`
	}

	var req batchRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	if req.ClassID == "" || req.Date == "" {
		return c.Status(400).JSON(fiber.Map{"error": "class_id and date are required"})
	}
	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "date must be YYYY-MM-DD"})
	}

	markedBy, _ := c.Locals("user_id").(string)
	writes, err := reconcile.PlanAttendance(req.ClassID, date, markedBy, req.Entries)
	if err != nil {
		var verr *reconcile.ValidationError
		if errors.As(err, &verr) {
			return c.Status(400).JSON(fiber.Map{"error": verr.Error()})
		}
		return c.Status(400).JSON(fiber.Map{"error": "Invalid attendance batch"})
	}

	if err := upsertAttendance(config.GetDB(), writes); err != nil {
		log.Printf("Failed to upsert attendance: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "Failed to save attendance"})
	}

	return c.JSON(fiber.Map{
		"message": "Attendance saved successfully",
		"saved":   len(writes),
	})
}
