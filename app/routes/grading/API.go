package grading

import (
	"database/sql"
	"log"

	"github.com/dghimirey/edVance/app/config"
	"github.com/dghimirey/edVance/app/models"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

func GetScalesAPI(c *fiber.Ctx) error {
	scales, err := getScales(config.GetDB())
	if err != nil {
		log.Printf("Failed to fetch grading scales: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch grading scales"})
	}
	return c.JSON(fiber.Map{"scales": scales})
}

func CreateScaleAPI(c *fiber.Ctx) error {
	type createScaleRequest struct {
		Name         string  `json:"name" validate:"required"`
		AcademicYear *string `json:"academic_year,omitempty"`
	}

	var req createScaleRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	if err := validate.Struct(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "name is required"})
	}

	s := &models.GradingScale{Name: req.Name, AcademicYear: req.AcademicYear}
	if err := createScale(config.GetDB(), s); err != nil {
		log.Printf("Failed to create grading scale: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create grading scale"})
	}
	return c.Status(201).JSON(fiber.Map{"scale": s})
}

func DeleteScaleAPI(c *fiber.Ctx) error {
	if err := deleteScale(config.GetDB(), c.Params("id")); err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "Grading scale not found"})
		}
		log.Printf("Failed to delete grading scale: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "Failed to delete grading scale"})
	}
	return c.JSON(fiber.Map{"message": "Grading scale deleted"})
}

func GetScaleEntriesAPI(c *fiber.Ctx) error {
	entries, err := getScaleEntries(config.GetDB(), c.Params("id"))
	if err != nil {
		log.Printf("Failed to fetch scale entries: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch scale entries"})
	}
	return c.JSON(fiber.Map{"entries": entries})
}

func AddScaleEntryAPI(c *fiber.Ctx) error {
	type addEntryRequest struct {
		Grade         string   `json:"grade" validate:"required"`
		MinPercentage float64  `json:"min_percentage" validate:"gte=0"`
		MaxPercentage float64  `json:"max_percentage" validate:"gte=0"`
		GradePoint    *float64 `json:"grade_point,omitempty"`
	}

	var req addEntryRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	if err := validate.Struct(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "grade is required and percentages must be non-negative"})
	}
	if req.MaxPercentage < req.MinPercentage {
		return c.Status(400).JSON(fiber.Map{"error": "max_percentage cannot be below min_percentage"})
	}

	e := &models.GradingScaleEntry{
		ScaleID:       c.Params("id"),
		Grade:         req.Grade,
		MinPercentage: req.MinPercentage,
		MaxPercentage: req.MaxPercentage,
		GradePoint:    req.GradePoint,
	}
	if err := addScaleEntry(config.GetDB(), e); err != nil {
		log.Printf("Failed to add scale entry: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "Failed to add scale entry"})
	}
	return c.Status(201).JSON(fiber.Map{"entry": e})
}

func DeleteScaleEntryAPI(c *fiber.Ctx) error {
	if err := deleteScaleEntry(config.GetDB(), c.Params("id")); err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "Scale entry not found"})
		}
		log.Printf("Failed to delete scale entry: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "Failed to delete scale entry"})
	}
	return c.JSON(fiber.Map{"message": "Scale entry deleted"})
}
