package grading

import (
	"database/sql"
	"fmt"

	"github.com/dghimirey/edVance/app/models"
)

func getScales(db *sql.DB) ([]*models.GradingScale, error) {
	rows, err := db.Query(`
		SELECT id, name, academic_year, created_at, updated_at
		FROM grading_scales ORDER BY created_at
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch grading scales: %w", err)
	}
	defer rows.Close()

	var scales []*models.GradingScale
	for rows.Next() {
		s := &models.GradingScale{}
		if err := rows.Scan(&s.ID, &s.Name, &s.AcademicYear, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, err
		}
		scales = append(scales, s)
	}
	return scales, rows.Err()
}

func createScale(db *sql.DB, s *models.GradingScale) error {
	query := `INSERT INTO grading_scales (name, academic_year) VALUES ($1, $2)
			  RETURNING id, created_at, updated_at`
	err := db.QueryRow(query, s.Name, s.AcademicYear).Scan(&s.ID, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create grading scale: %w", err)
	}
	return nil
}

func deleteScale(db *sql.DB, scaleID string) error {
	res, err := db.Exec(`DELETE FROM grading_scales WHERE id = $1`, scaleID)
	if err != nil {
		return fmt.Errorf("failed to delete grading scale: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// getScaleEntries returns a scale's entries ordered by min_percentage
// descending, the order the resolver scans them in.
func getScaleEntries(db *sql.DB, scaleID string) ([]*models.GradingScaleEntry, error) {
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

func addScaleEntry(db *sql.DB, e *models.GradingScaleEntry) error {
	query := `INSERT INTO grading_scale_entries (scale_id, grade, min_percentage, max_percentage, grade_point)
			  VALUES ($1, $2, $3, $4, $5)
			  RETURNING id, created_at`
	err := db.QueryRow(query, e.ScaleID, e.Grade, e.MinPercentage, e.MaxPercentage, e.GradePoint).Scan(&e.ID, &e.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to add scale entry: %w", err)
	}
	return nil
}

func deleteScaleEntry(db *sql.DB, entryID string) error {
	res, err := db.Exec(`DELETE FROM grading_scale_entries WHERE id = $1`, entryID)
	if err != nil {
		return fmt.Errorf("failed to delete scale entry: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}
