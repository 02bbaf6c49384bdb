package exams

import (
	"database/sql"
	"log"
	"time"

	"github.com/dghimirey/edVance/app/config"
	"github.com/dghimirey/edVance/app/models"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

func GetExamsAPI(c *fiber.Ctx) error {
	exams, err := getExams(config.GetDB(), c.Query("class_id"))
	if err != nil {
		log.Printf("Failed to fetch exams: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch exams"})
	}
	return c.JSON(fiber.Map{"exams": exams})
}

func GetExamByIDAPI(c *fiber.Ctx) error {
	exam, err := getExamByID(config.GetDB(), c.Params("id"))
	if err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "Exam not found"})
		}
		log.Printf("Failed to fetch exam: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch exam"})
	}
	return c.JSON(fiber.Map{"exam": exam})
}

func CreateExamAPI(c *fiber.Ctx) error {
	type createExamRequest struct {
		Name         string  `json:"name" validate:"required"`
		ClassID      string  `json:"class_id" validate:"required,uuid"`
		AcademicYear string  `json:"academic_year" validate:"required"`
		StartDate    *string `json:"start_date,omitempty"`
		EndDate      *string `json:"end_date,omitempty"`
	}

	var req createExamRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	if err := validate.Struct(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "name, class_id and academic_year are required"})
	}

	e := &models.Exam{
		Name:         req.Name,
		ClassID:      req.ClassID,
		AcademicYear: req.AcademicYear,
	}
	var err error
	if e.StartDate, err = parseDate(req.StartDate); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "start_date must be YYYY-MM-DD"})
	}
	if e.EndDate, err = parseDate(req.EndDate); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "end_date must be YYYY-MM-DD"})
	}

	if err := createExam(config.GetDB(), e); err != nil {
		log.Printf("Failed to create exam: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create exam"})
	}
	return c.Status(201).JSON(fiber.Map{"exam": e})
}

func GetExamSubjectsAPI(c *fiber.Ctx) error {
	subjects, err := getExamSubjects(config.GetDB(), c.Params("id"))
	if err != nil {
		log.Printf("Failed to fetch exam subjects: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch exam subjects"})
	}
	return c.JSON(fiber.Map{"exam_subjects": subjects})
}

func AddExamSubjectAPI(c *fiber.Ctx) error {
	type addSubjectRequest struct {
		SubjectID    string  `json:"subject_id" validate:"required,uuid"`
		MaxMarks     float64 `json:"max_marks" validate:"required,gt=0"`
		PassingMarks float64 `json:"passing_marks" validate:"gte=0"`
		ExamDate     *string `json:"exam_date,omitempty"`
	}

	var req addSubjectRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	if err := validate.Struct(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "subject_id is required and max_marks must be positive"})
	}
	if req.PassingMarks > req.MaxMarks {
		return c.Status(400).JSON(fiber.Map{"error": "passing_marks cannot exceed max_marks"})
	}

	es := &models.ExamSubject{
		ExamID:       c.Params("id"),
		SubjectID:    req.SubjectID,
		MaxMarks:     req.MaxMarks,
		PassingMarks: req.PassingMarks,
	}
	var err error
	if es.ExamDate, err = parseDate(req.ExamDate); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "exam_date must be YYYY-MM-DD"})
	}

	if err := addExamSubject(config.GetDB(), es); err != nil {
		log.Printf("Failed to add exam subject: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "Failed to add exam subject"})
	}
	return c.Status(201).JSON(fiber.Map{"exam_subject": es})
}

func parseDate(s *string) (*time.Time, error) {
	if s == nil || *s == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", *s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
