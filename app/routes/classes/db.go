package classes

import (
	"database/sql"
	"fmt"

	"github.com/dghimirey/edVance/app/models"
)

func getClasses(db *sql.DB) ([]*models.Class, error) {
	query := `
		SELECT c.id, c.name, c.section, c.academic_year, c.teacher_id, c.is_active,
			   c.created_at, c.updated_at,
			   (SELECT COUNT(*) FROM student_classes sc WHERE sc.class_id = c.id) AS student_count
		FROM classes c
		WHERE c.deleted_at IS NULL
		ORDER BY c.academic_year DESC, c.name
	`
	rows, err := db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch classes: %w", err)
	}
	defer rows.Close()

	var classes []*models.Class
	for rows.Next() {
		cl := &models.Class{}
		err := rows.Scan(
			&cl.ID, &cl.Name, &cl.Section, &cl.AcademicYear, &cl.TeacherID,
			&cl.IsActive, &cl.CreatedAt, &cl.UpdatedAt, &cl.StudentCount,
		)
		if err != nil {
			return nil, err
		}
		classes = append(classes, cl)
	}
	return classes, rows.Err()
}

func createClass(db *sql.DB, cl *models.Class) error {
	query := `INSERT INTO classes (name, section, academic_year, teacher_id)
			  VALUES ($1, $2, $3, $4)
			  RETURNING id, is_active, created_at, updated_at`
	err := db.QueryRow(query, cl.Name, cl.Section, cl.AcademicYear, cl.TeacherID).Scan(
		&cl.ID, &cl.IsActive, &cl.CreatedAt, &cl.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create class: %w", err)
	}
	return nil
}

func classExists(db *sql.DB, classID string) (bool, error) {
	var exists bool
	err := db.QueryRow(
		`SELECT EXISTS (SELECT 1 FROM classes WHERE id = $1 AND deleted_at IS NULL)`,
		classID,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check class: %w", err)
	}
	return exists, nil
}
