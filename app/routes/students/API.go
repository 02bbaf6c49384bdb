package students

import (
	"database/sql"
	"log"
	"strings"
	"time"

	"github.com/dghimirey/edVance/app/config"
	"github.com/dghimirey/edVance/app/database"
	"github.com/dghimirey/edVance/app/models"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

var validate = validator.New()

func GetStudentsAPI(c *fiber.Ctx) error {
	students, err := getStudents(config.GetDB(), c.Query("search"))
	if err != nil {
		log.Printf("Failed to fetch students: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch students"})
	}
	return c.JSON(fiber.Map{"students": students})
}

func GetStudentByIDAPI(c *fiber.Ctx) error {
	student, err := getStudentByID(config.GetDB(), c.Params("id"))
	if err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "Student not found"})
		}
		log.Printf("Failed to fetch student: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch student"})
	}
	return c.JSON(fiber.Map{"student": student})
}

type createStudentRequest struct {
	FullName    string  `json:"full_name" validate:"required"`
	Email       string  `json:"email" validate:"required,email"`
	Phone       *string `json:"phone,omitempty"`
	DateOfBirth *string `json:"date_of_birth,omitempty"`
	Address     *string `json:"address,omitempty"`
	ClassID     *string `json:"class_id,omitempty" validate:"omitempty,uuid"`
}

// tempPassword builds a strong one-time password for a freshly provisioned
// account. The "Aa1!" suffix guarantees every character class is present.
func tempPassword() string {
	raw := strings.ReplaceAll(uuid.New().String(), "-", "")
	return raw[:12] + "Aa1!"
}

// CreateStudentAPI provisions a student account: user record with a
// generated temp password, student role, profile details, and an optional
// class enrollment. Steps run sequentially and the first failure is
// returned as-is; earlier steps are not rolled back.
func CreateStudentAPI(c *fiber.Ctx) error {
	var req createStudentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	if err := validate.Struct(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "full_name and a valid email are required"})
	}

	db := config.GetDB()

	exists, err := database.EmailExists(db, req.Email)
	if err != nil {
		log.Printf("Failed to check email: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create student"})
	}
	if exists {
		return c.Status(400).JSON(fiber.Map{"error": "A user with this email already exists"})
	}

	var dob *time.Time
	if req.DateOfBirth != nil && *req.DateOfBirth != "" {
		parsed, err := time.Parse("2006-01-02", *req.DateOfBirth)
		if err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "date_of_birth must be YYYY-MM-DD"})
		}
		dob = &parsed
	}

	plain := tempPassword()
	hashed, err := database.HashPassword(plain)
	if err != nil {
		log.Printf("Failed to hash password: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create student"})
	}

	user := &models.User{
		Email:    req.Email,
		Password: hashed,
		FullName: req.FullName,
		Status:   models.StatusApproved,
	}
	if err := database.CreateUser(db, user); err != nil {
		log.Printf("Failed to create user: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create student"})
	}

	if err := database.AssignRole(db, user.ID, models.RoleStudent); err != nil {
		log.Printf("Failed to assign role to %s: %v", user.ID, err)
		return c.Status(500).JSON(fiber.Map{"error": "Failed to assign student role"})
	}

	if err := database.UpdateUserProfile(db, user.ID, req.Phone, req.Address, dob, models.StatusApproved); err != nil {
		log.Printf("Failed to update profile for %s: %v", user.ID, err)
		return c.Status(500).JSON(fiber.Map{"error": "Failed to save student profile"})
	}

	if req.ClassID != nil && *req.ClassID != "" {
		if err := database.EnrollStudent(db, user.ID, *req.ClassID); err != nil {
			log.Printf("Failed to enroll %s in class %s: %v", user.ID, *req.ClassID, err)
			return c.Status(500).JSON(fiber.Map{"error": "Student created but enrollment failed"})
		}
	}

	return c.Status(201).JSON(fiber.Map{
		"message":       "Student created successfully",
		"user_id":       user.ID,
		"temp_password": plain,
	})
}
