package subjects

import (
	"database/sql"
	"fmt"

	"github.com/dghimirey/edVance/app/models"
)

func getSubjects(db *sql.DB) ([]*models.Subject, error) {
	rows, err := db.Query(`
		SELECT id, name, code, created_at, updated_at
		FROM subjects WHERE deleted_at IS NULL
		ORDER BY name
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch subjects: %w", err)
	}
	defer rows.Close()

	var subjects []*models.Subject
	for rows.Next() {
		s := &models.Subject{}
		if err := rows.Scan(&s.ID, &s.Name, &s.Code, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, err
		}
		subjects = append(subjects, s)
	}
	return subjects, rows.Err()
}

func createSubject(db *sql.DB, s *models.Subject) error {
	query := `INSERT INTO subjects (name, code) VALUES ($1, $2)
			  RETURNING id, created_at, updated_at`
	err := db.QueryRow(query, s.Name, s.Code).Scan(&s.ID, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create subject: %w", err)
	}
	return nil
}

func updateSubject(db *sql.DB, s *models.Subject) error {
	res, err := db.Exec(
		`UPDATE subjects SET name = $1, code = $2, updated_at = NOW()
		 WHERE id = $3 AND deleted_at IS NULL`,
		s.Name, s.Code, s.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update subject: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func deleteSubject(db *sql.DB, subjectID string) error {
	res, err := db.Exec(
		`UPDATE subjects SET deleted_at = NOW() WHERE id = $1 AND deleted_at IS NULL`,
		subjectID,
	)
	if err != nil {
		return fmt.Errorf("failed to delete subject: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}
