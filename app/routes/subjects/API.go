package subjects

import (
	"database/sql"
	"log"

	"github.com/dghimirey/edVance/app/config"
	"github.com/dghimirey/edVance/app/models"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

type subjectRequest struct {
	Name string `json:"name" validate:"required"`
	Code string `json:"code" validate:"required"`
}

func GetSubjectsAPI(c *fiber.Ctx) error {
	subjects, err := getSubjects(config.GetDB())
	if err != nil {
		log.Printf("Failed to fetch subjects: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch subjects"})
	}
	return c.JSON(fiber.Map{"subjects": subjects})
}

func CreateSubjectAPI(c *fiber.Ctx) error {
	var req subjectRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	if err := validate.Struct(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "name and code are required"})
	}

	s := &models.Subject{Name: req.Name, Code: req.Code}
	if err := createSubject(config.GetDB(), s); err != nil {
		log.Printf("Failed to create subject: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create subject"})
	}
	return c.Status(201).JSON(fiber.Map{"subject": s})
}

func UpdateSubjectAPI(c *fiber.Ctx) error {
	var req subjectRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	if err := validate.Struct(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "name and code are required"})
	}

	s := &models.Subject{ID: c.Params("id"), Name: req.Name, Code: req.Code}
	if err := updateSubject(config.GetDB(), s); err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "Subject not found"})
		}
		log.Printf("Failed to update subject: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "Failed to update subject"})
	}
	return c.JSON(fiber.Map{"message": "Subject updated"})
}

func DeleteSubjectAPI(c *fiber.Ctx) error {
	if err := deleteSubject(config.GetDB(), c.Params("id")); err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "Subject not found"})
		}
		log.Printf("Failed to delete subject: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "Failed to delete subject"})
	}
	return c.JSON(fiber.Map{"message": "Subject deleted"})
}
