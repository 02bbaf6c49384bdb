package marks

import (
	"database/sql"
	"fmt"

	"github.com/dghimirey/edVance/app/models"
)

// getExamSubject loads one exam subject along with its exam's class id,
// which the roster fetch needs.
func getExamSubject(db *sql.DB, examSubjectID string) (*models.ExamSubject, string, error) {
	es := &models.ExamSubject{}
	var classID string
	query := `
		SELECT es.id, es.exam_id, es.subject_id, es.max_marks, es.passing_marks, e.class_id
		FROM exam_subjects es
		JOIN exams e ON e.id = es.exam_id
		WHERE es.id = $1 AND e.deleted_at IS NULL
	`
	err := db.QueryRow(query, examSubjectID).Scan(
		&es.ID, &es.ExamID, &es.SubjectID, &es.MaxMarks, &es.PassingMarks, &classID,
	)
	if err != nil {
		return nil, "", err
	}
	return es, classID, nil
}

// getExistingMarks returns the marks already entered for an exam subject,
// keyed by student id.
func getExistingMarks(db *sql.DB, examSubjectID string) (map[string]*models.StudentMark, error) {
	query := `
		SELECT id, exam_subject_id, student_id, marks_obtained, remarks, entered_by, created_at, updated_at
		FROM student_marks WHERE exam_subject_id = $1
	`
	rows, err := db.Query(query, examSubjectID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch marks: %w", err)
	}
	defer rows.Close()

	existing := make(map[string]*models.StudentMark)
	for rows.Next() {
		m := &models.StudentMark{}
		err := rows.Scan(
			&m.ID, &m.ExamSubjectID, &m.StudentID, &m.MarksObtained,
			&m.Remarks, &m.EnteredBy, &m.CreatedAt, &m.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		existing[m.StudentID] = m
	}
	return existing, rows.Err()
}

// upsertMarks writes a planned batch in one transaction. The natural key
// keeps created_at from the first save; only marks, remarks, entered_by and
// updated_at move on re-save.
func upsertMarks(db *sql.DB, writes []*models.StudentMark) error {
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(`
		INSERT INTO student_marks (exam_subject_id, student_id, marks_obtained, remarks, entered_by)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (exam_subject_id, student_id) DO UPDATE
		SET marks_obtained = EXCLUDED.marks_obtained,
			remarks = EXCLUDED.remarks,
			entered_by = EXCLUDED.entered_by,
			updated_at = NOW()
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare upsert: %w", err)
	}
	defer stmt.Close()

	for _, w := range writes {
		if _, err := stmt.Exec(w.ExamSubjectID, w.StudentID, w.MarksObtained, w.Remarks, w.EnteredBy); err != nil {
			return fmt.Errorf("failed to save marks for student %s: %w", w.StudentID, err)
		}
	}

	return tx.Commit()
}
