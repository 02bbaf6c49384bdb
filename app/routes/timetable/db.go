package timetable

import (
	"database/sql"
	"fmt"

	"github.com/dghimirey/edVance/app/models"
)

func getEntries(db *sql.DB, classID string) ([]*models.TimetableEntryResponse, error) {
	query := `
		SELECT t.id, t.class_id, t.subject_id, t.teacher_id, t.day_of_week,
			   t.start_time, t.end_time, t.created_at, t.updated_at,
			   c.name, s.name, COALESCE(u.full_name, '')
		FROM timetable_entries t
		JOIN classes c ON c.id = t.class_id
		JOIN subjects s ON s.id = t.subject_id
		LEFT JOIN users u ON u.id = t.teacher_id
		WHERE t.deleted_at IS NULL
	`
	args := []interface{}{}
	if classID != "" {
		query += ` AND t.class_id = $1`
		args = append(args, classID)
	}
	query += ` ORDER BY t.day_of_week, t.start_time`

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch timetable: %w", err)
	}
	defer rows.Close()

	var entries []*models.TimetableEntryResponse
	for rows.Next() {
		e := &models.TimetableEntryResponse{}
		err := rows.Scan(
			&e.ID, &e.ClassID, &e.SubjectID, &e.TeacherID, &e.DayOfWeek,
			&e.StartTime, &e.EndTime, &e.CreatedAt, &e.UpdatedAt,
			&e.ClassName, &e.SubjectName, &e.TeacherName,
		)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func createEntry(db *sql.DB, e *models.TimetableEntry) error {
	query := `INSERT INTO timetable_entries (class_id, subject_id, teacher_id, day_of_week, start_time, end_time)
			  VALUES ($1, $2, $3, $4, $5, $6)
			  RETURNING id, created_at, updated_at`
	err := db.QueryRow(query, e.ClassID, e.SubjectID, e.TeacherID, e.DayOfWeek, e.StartTime, e.EndTime).Scan(
		&e.ID, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create timetable entry: %w", err)
	}
	return nil
}

func deleteEntry(db *sql.DB, entryID string) error {
	res, err := db.Exec(
		`UPDATE timetable_entries SET deleted_at = NOW() WHERE id = $1 AND deleted_at IS NULL`,
		entryID,
	)
	if err != nil {
		return fmt.Errorf("failed to delete timetable entry: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}
