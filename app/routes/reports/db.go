package reports

import (
	"database/sql"
	"fmt"

	"github.com/dghimirey/edVance/app/models"
)

func getExamSubjects(db *sql.DB, examID string) ([]*models.ExamSubject, error) {
	query := `
		SELECT es.id, es.exam_id, es.subject_id, es.max_marks, es.passing_marks, s.name, s.code
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

// getStudentMarks returns a student's marks for one exam, keyed by
// exam_subject_id.
func getStudentMarks(db *sql.DB, examID, studentID string) (map[string]*models.StudentMark, error) {
	query := `
		SELECT sm.id, sm.exam_subject_id, sm.student_id, sm.marks_obtained, sm.remarks
		FROM student_marks sm
		JOIN exam_subjects es ON es.id = sm.exam_subject_id
		WHERE es.exam_id = $1 AND sm.student_id = $2
	`
	rows, err := db.Query(query, examID, studentID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch marks: %w", err)
	}
	defer rows.Close()

	marks := make(map[string]*models.StudentMark)
	for rows.Next() {
		m := &models.StudentMark{}
		if err := rows.Scan(&m.ID, &m.ExamSubjectID, &m.StudentID, &m.MarksObtained, &m.Remarks); err != nil {
			return nil, err
		}
		marks[m.ExamSubjectID] = m
	}
	return marks, rows.Err()
}

// getScaleEntries picks the grading scale for an academic year, falling back
// to the most recent scale, and returns its entries ordered by min_percentage
// descending. No scale at all yields an empty slice and "N/A" grades.
func getScaleEntries(db *sql.DB, academicYear string) ([]*models.GradingScaleEntry, error) {
	var scaleID string
	err := db.QueryRow(`
		SELECT id FROM grading_scales
		WHERE academic_year = $1
		ORDER BY created_at DESC LIMIT 1
	`, academicYear).Scan(&scaleID)
	if err == sql.ErrNoRows {
		err = db.QueryRow(`SELECT id FROM grading_scales ORDER BY created_at DESC LIMIT 1`).Scan(&scaleID)
	}
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to pick grading scale: %w", err)
	}

	rows, err := db.Query(`
		SELECT id, scale_id, grade, min_percentage, max_percentage, grade_point, created_at
		FROM grading_scale_entries
		WHERE scale_id = $1
		ORDER BY min_percentage DESC
	`, scaleID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch scale entries: %w", err)
	}
	defer rows.Close()

	var entries []*models.GradingScaleEntry
	for rows.Next() {
		e := &models.GradingScaleEntry{}
		err := rows.Scan(&e.ID, &e.ScaleID, &e.Grade, &e.MinPercentage, &e.MaxPercentage, &e.GradePoint, &e.CreatedAt)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func getExam(db *sql.DB, examID string) (*models.Exam, error) {
	e := &models.Exam{}
	err := db.QueryRow(`
		SELECT id, name, class_id, academic_year, start_date, end_date
		FROM exams WHERE id = $1 AND deleted_at IS NULL
	`, examID).Scan(&e.ID, &e.Name, &e.ClassID, &e.AcademicYear, &e.StartDate, &e.EndDate)
	if err != nil {
		return nil, err
	}
	return e, nil
}

func getStudentName(db *sql.DB, studentID string) (string, error) {
	var name string
	err := db.QueryRow(`SELECT full_name FROM users WHERE id = $1`, studentID).Scan(&name)
	return name, err
}
