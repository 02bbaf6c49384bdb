package exams

import (
	"database/sql"
	"fmt"

	"github.com/dghimirey/edVance/app/models"
)

func getExams(db *sql.DB, classID string) ([]*models.Exam, error) {
	query := `
		SELECT id, name, class_id, academic_year, start_date, end_date, created_at, updated_at
		FROM exams WHERE deleted_at IS NULL
	`
	args := []interface{}{}
	if classID != "" {
		query += ` AND class_id = $1`
		args = append(args, classID)
	}
	query += ` ORDER BY start_date DESC NULLS LAST, name`

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch exams: %w", err)
	}
	defer rows.Close()

	var exams []*models.Exam
	for rows.Next() {
		e := &models.Exam{}
		err := rows.Scan(
			&e.ID, &e.Name, &e.ClassID, &e.AcademicYear,
			&e.StartDate, &e.EndDate, &e.CreatedAt, &e.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		exams = append(exams, e)
	}
	return exams, rows.Err()
}

func getExamByID(db *sql.DB, examID string) (*models.Exam, error) {
	e := &models.Exam{}
	query := `
		SELECT id, name, class_id, academic_year, start_date, end_date, created_at, updated_at
		FROM exams WHERE id = $1 AND deleted_at IS NULL
	`
	err := db.QueryRow(query, examID).Scan(
		&e.ID, &e.Name, &e.ClassID, &e.AcademicYear,
		&e.StartDate, &e.EndDate, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return e, nil
}

func createExam(db *sql.DB, e *models.Exam) error {
	query := `INSERT INTO exams (name, class_id, academic_year, start_date, end_date)
			  VALUES ($1, $2, $3, $4, $5)
			  RETURNING id, created_at, updated_at`
	err := db.QueryRow(query, e.Name, e.ClassID, e.AcademicYear, e.StartDate, e.EndDate).Scan(
		&e.ID, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create exam: %w", err)
	}
	return nil
}

func getExamSubjects(db *sql.DB, examID string) ([]*models.ExamSubject, error) {
	query := `
		SELECT es.id, es.exam_id, es.subject_id, es.max_marks, es.passing_marks,
			   es.exam_date, es.created_at, es.updated_at, s.name, s.code
		FROM exam_subjects es
		JOIN subjects s ON s.id = es.subject_id
		WHERE es.exam_id = $1
		ORDER BY s.name
	`
	rows, err := db.Query(query, examID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch exam subjects: %w", err)
	}
	defer rows.Close()

	var subjects []*models.ExamSubject
	for rows.Next() {
		es := &models.ExamSubject{Subject: &models.Subject{}}
		err := rows.Scan(
			&es.ID, &es.ExamID, &es.SubjectID, &es.MaxMarks, &es.PassingMarks,
			&es.ExamDate, &es.CreatedAt, &es.UpdatedAt,
			&es.Subject.Name, &es.Subject.Code,
		)
		if err != nil {
			return nil, err
		}
		es.Subject.ID = es.SubjectID
		subjects = append(subjects, es)
	}
	return subjects, rows.Err()
}

func addExamSubject(db *sql.DB, es *models.ExamSubject) error {
	query := `INSERT INTO exam_subjects (exam_id, subject_id, max_marks, passing_marks, exam_date)
			  VALUES ($1, $2, $3, $4, $5)
			  ON CONFLICT (exam_id, subject_id) DO UPDATE
			  SET max_marks = EXCLUDED.max_marks,
				  passing_marks = EXCLUDED.passing_marks,
				  exam_date = EXCLUDED.exam_date,
				  updated_at = NOW()
			  RETURNING id, created_at, updated_at`
	err := db.QueryRow(query, es.ExamID, es.SubjectID, es.MaxMarks, es.PassingMarks, es.ExamDate).Scan(
		&es.ID, &es.CreatedAt, &es.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to add exam subject: %w", err)
	}
	return nil
}
