package attendance

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/dghimirey/edVance/app/models"
)

// getRegister returns the attendance rows already recorded for a class on a
// date, keyed by student id.
func getRegister(db *sql.DB, classID string, date time.Time) (map[string]*models.Attendance, error) {
	query := `
		SELECT id, student_id, class_id, date, status, remarks, marked_by, created_at, updated_at
		FROM attendance WHERE class_id = $1 AND date = $2
	`
	rows, err := db.Query(query, classID, date)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch attendance: %w", err)
	}
	defer rows.Close()

	register := make(map[string]*models.Attendance)
	for rows.Next() {
		a := &models.Attendance{}
		err := rows.Scan(
			&a.ID, &a.StudentID, &a.ClassID, &a.Date, &a.Status,
			&a.Remarks, &a.MarkedBy, &a.CreatedAt, &a.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		register[a.StudentID] = a
	}
	return register, rows.Err()
}

// upsertAttendance writes a planned register in one transaction, keyed by
// (student_id, class_id, date) so a re-save updates rather than duplicates.
func upsertAttendance(db *sql.DB, writes []*models.Attendance) error {
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(`
		INSERT INTO attendance (student_id, class_id, date, status, remarks, marked_by)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (student_id, class_id, date) DO UPDATE
		SET status = EXCLUDED.status,
			remarks = EXCLUDED.remarks,
			marked_by = EXCLUDED.marked_by,
			updated_at = NOW()
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare upsert: %w", err)
	}
	defer stmt.Close()

	for _, w := range writes {
		if _, err := stmt.Exec(w.StudentID, w.ClassID, w.Date, w.Status, w.Remarks, w.MarkedBy); err != nil {
			return fmt.Errorf("failed to save attendance for student %s: %w", w.StudentID, err)
		}
	}

	return tx.Commit()
}
