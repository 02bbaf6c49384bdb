package students

import (
	"database/sql"
	"fmt"

	"github.com/dghimirey/edVance/app/models"
)

func getStudents(db *sql.DB, search string) ([]*models.User, error) {
	query := `
		SELECT u.id, u.email, u.full_name, u.phone, u.address, u.date_of_birth,
			   u.status, u.is_active, u.created_at, u.updated_at
		FROM users u
		JOIN user_roles r ON r.user_id = u.id
		WHERE r.role = 'student' AND u.is_active = true AND u.deleted_at IS NULL
	`
	args := []interface{}{}
	if search != "" {
		query += ` AND (u.full_name ILIKE $1 OR u.email ILIKE $1)`
		args = append(args, "%"+search+"%")
	}
	query += ` ORDER BY u.full_name`

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch students: %w", err)
	}
	defer rows.Close()

	var students []*models.User
	for rows.Next() {
		s := &models.User{Role: models.RoleStudent}
		err := rows.Scan(
			&s.ID, &s.Email, &s.FullName, &s.Phone, &s.Address, &s.DateOfBirth,
			&s.Status, &s.IsActive, &s.CreatedAt, &s.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		students = append(students, s)
	}
	return students, rows.Err()
}

func getStudentByID(db *sql.DB, studentID string) (*models.User, error) {
	s := &models.User{Role: models.RoleStudent}
	query := `
		SELECT u.id, u.email, u.full_name, u.phone, u.address, u.date_of_birth,
			   u.status, u.is_active, u.created_at, u.updated_at
		FROM users u
		JOIN user_roles r ON r.user_id = u.id
		WHERE u.id = $1 AND r.role = 'student' AND u.deleted_at IS NULL
	`
	err := db.QueryRow(query, studentID).Scan(
		&s.ID, &s.Email, &s.FullName, &s.Phone, &s.Address, &s.DateOfBirth,
		&s.Status, &s.IsActive, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return s, nil
}
