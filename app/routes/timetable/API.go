package timetable

import (
	"database/sql"
	"log"

	"github.com/dghimirey/edVance/app/config"
	"github.com/dghimirey/edVance/app/models"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

func GetTimetableAPI(c *fiber.Ctx) error {
	entries, err := getEntries(config.GetDB(), c.Query("class_id"))
	if err != nil {
		log.Printf("Failed to fetch timetable: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch timetable"})
	}
	return c.JSON(fiber.Map{"entries": entries})
}

func CreateEntryAPI(c *fiber.Ctx) error {
	type createEntryRequest struct {
		ClassID   string  `json:"class_id" validate:"required,uuid"`
		SubjectID string  `json:"subject_id" validate:"required,uuid"`
		TeacherID *string `json:"teacher_id,omitempty" validate:"omitempty,uuid"`
		DayOfWeek string  `json:"day_of_week" validate:"required,oneof=monday tuesday wednesday thursday friday saturday sunday"`
		StartTime string  `json:"start_time" validate:"required"`
		EndTime   string  `json:"end_time" validate:"required"`
	}

	var req createEntryRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	if err := validate.Struct(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "class_id, subject_id, a valid day_of_week and times are required"})
	}
	if req.EndTime <= req.StartTime {
		return c.Status(400).JSON(fiber.Map{"error": "end_time must be after start_time"})
	}

	e := &models.TimetableEntry{
		ClassID:   req.ClassID,
		SubjectID: req.SubjectID,
		TeacherID: req.TeacherID,
		DayOfWeek: models.DayOfWeek(req.DayOfWeek),
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
	}
	if err := createEntry(config.GetDB(), e); err != nil {
		log.Printf("Failed to create timetable entry: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create timetable entry"})
	}
	return c.Status(201).JSON(fiber.Map{"entry": e})
}

func DeleteEntryAPI(c *fiber.Ctx) error {
	if err := deleteEntry(config.GetDB(), c.Params("id")); err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "Timetable entry not found"})
		}
		log.Printf("Failed to delete timetable entry: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "Failed to delete timetable entry"})
	}
	return c.JSON(fiber.Map{"message": "Timetable entry deleted"})
}
