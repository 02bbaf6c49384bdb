package classes

import (
	"log"

	"github.com/dghimirey/edVance/app/config"
	"github.com/dghimirey/edVance/app/database"
	"github.com/dghimirey/edVance/app/models"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

func GetClassesAPI(c *fiber.Ctx) error {
	classes, err := getClasses(config.GetDB())
	if err != nil {
		log.Printf("Failed to fetch classes: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch classes"})
	}
	return c.JSON(fiber.Map{"classes": classes})
}

func CreateClassAPI(c *fiber.Ctx) error {
	type createClassRequest struct {
		Name         string  `json:"name" validate:"required"`
		Section      *string `json:"section,omitempty"`
		AcademicYear string  `json:"academic_year" validate:"required"`
		TeacherID    *string `json:"teacher_id,omitempty" validate:"omitempty,uuid"`
	}

	var req createClassRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	if err := validate.Struct(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "name and academic_year are required"})
	}

	cl := &models.Class{
		Name:         req.Name,
		Section:      req.Section,
		AcademicYear: req.AcademicYear,
		TeacherID:    req.TeacherID,
	}
	if err := createClass(config.GetDB(), cl); err != nil {
		log.Printf("Failed to create class: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create class"})
	}

	return c.Status(201).JSON(fiber.Map{"class": cl})
}

func GetClassStudentsAPI(c *fiber.Ctx) error {
	students, err := database.GetClassStudents(config.GetDB(), c.Params("id"))
	if err != nil {
		log.Printf("Failed to fetch class students: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch class students"})
	}
	return c.JSON(fiber.Map{"students": students})
}

func EnrollStudentAPI(c *fiber.Ctx) error {
	type enrollRequest struct {
		StudentID string `json:"student_id" validate:"required,uuid"`
	}

	var req enrollRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	if err := validate.Struct(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "student_id is required"})
	}

	classID := c.Params("id")
	exists, err := classExists(config.GetDB(), classID)
	if err != nil {
		log.Printf("Failed to check class: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "Failed to enroll student"})
	}
	if !exists {
		return c.Status(404).JSON(fiber.Map{"error": "Class not found"})
	}

	if err := database.EnrollStudent(config.GetDB(), req.StudentID, classID); err != nil {
		log.Printf("Failed to enroll student: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "Failed to enroll student"})
	}

	return c.JSON(fiber.Map{"message": "Student enrolled"})
}
