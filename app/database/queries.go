package database

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/dghimirey/edVance/app/models"
	"golang.org/x/crypto/bcrypt"
)

// HashPassword hashes a password using bcrypt.
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), 14)
	return string(bytes), err
}

// CheckPassword compares a bcrypt hash against a candidate password.
func CheckPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

func GetUserByEmail(db *sql.DB, email string) (*models.User, error) {
	user := &models.User{}
	query := `SELECT u.id, u.email, u.password, u.full_name, u.phone, u.address,
				  u.date_of_birth, u.status, COALESCE(r.role, ''), u.is_active, u.created_at, u.updated_at
			  FROM users u
			  LEFT JOIN user_roles r ON r.user_id = u.id
			  WHERE u.email = $1 AND u.is_active = true AND u.deleted_at IS NULL`

	err := db.QueryRow(query, email).Scan(
		&user.ID, &user.Email, &user.Password, &user.FullName, &user.Phone,
		&user.Address, &user.DateOfBirth, &user.Status, &user.Role,
		&user.IsActive, &user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return user, nil
}

func GetUserByID(db *sql.DB, userID string) (*models.User, error) {
	user := &models.User{}
	query := `SELECT u.id, u.email, u.password, u.full_name, u.phone, u.address,
				  u.date_of_birth, u.status, COALESCE(r.role, ''), u.is_active, u.created_at, u.updated_at
			  FROM users u
			  LEFT JOIN user_roles r ON r.user_id = u.id
			  WHERE u.id = $1 AND u.is_active = true AND u.deleted_at IS NULL`

	err := db.QueryRow(query, userID).Scan(
		&user.ID, &user.Email, &user.Password, &user.FullName, &user.Phone,
		&user.Address, &user.DateOfBirth, &user.Status, &user.Role,
		&user.IsActive, &user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return user, nil
}

// EmailExists reports whether a live user row already uses the email.
func EmailExists(db *sql.DB, email string) (bool, error) {
	var exists bool
	err := db.QueryRow(
		`SELECT EXISTS (SELECT 1 FROM users WHERE email = $1 AND deleted_at IS NULL)`,
		email,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check email: %w", err)
	}
	return exists, nil
}

// CreateUser inserts a user with an already-hashed password and fills in the
// generated id and timestamps.
func CreateUser(db *sql.DB, user *models.User) error {
	query := `INSERT INTO users (email, password, full_name, phone, address, date_of_birth, status, is_active)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, true)
			  RETURNING id, created_at, updated_at`

	err := db.QueryRow(query,
		user.Email, user.Password, user.FullName, user.Phone,
		user.Address, user.DateOfBirth, user.Status,
	).Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

// AssignRole sets the user's single role, replacing any previous one.
func AssignRole(db *sql.DB, userID, role string) error {
	query := `INSERT INTO user_roles (user_id, role) VALUES ($1, $2)
			  ON CONFLICT (user_id) DO UPDATE SET role = EXCLUDED.role`
	if _, err := db.Exec(query, userID, role); err != nil {
		return fmt.Errorf("failed to assign role: %w", err)
	}
	return nil
}

// UpdateUserProfile sets the optional profile fields and approval status.
func UpdateUserProfile(db *sql.DB, userID string, phone, address *string, dob *time.Time, status models.ProfileStatus) error {
	query := `UPDATE users SET phone = $1, address = $2, date_of_birth = $3, status = $4, updated_at = NOW()
			  WHERE id = $5`
	if _, err := db.Exec(query, phone, address, dob, status, userID); err != nil {
		return fmt.Errorf("failed to update profile: %w", err)
	}
	return nil
}

func UpdateUserPassword(db *sql.DB, userID, hashedPassword string) error {
	query := `UPDATE users SET password = $1, updated_at = NOW() WHERE id = $2`
	_, err := db.Exec(query, hashedPassword, userID)
	return err
}

// EnrollStudent links a student to a class. Re-enrolling is a no-op.
func EnrollStudent(db *sql.DB, studentID, classID string) error {
	query := `INSERT INTO student_classes (student_id, class_id) VALUES ($1, $2)
			  ON CONFLICT (student_id, class_id) DO NOTHING`
	if _, err := db.Exec(query, studentID, classID); err != nil {
		return fmt.Errorf("failed to enroll student: %w", err)
	}
	return nil
}

// GetClassStudents returns the active students enrolled in a class, ordered
// by name so registers and mark sheets render in a stable order.
func GetClassStudents(db *sql.DB, classID string) ([]*models.User, error) {
	query := `
		SELECT u.id, u.email, u.full_name, u.status, u.is_active, u.created_at, u.updated_at
		FROM users u
		JOIN student_classes sc ON sc.student_id = u.id
		WHERE sc.class_id = $1 AND u.is_active = true AND u.deleted_at IS NULL
		ORDER BY u.full_name
	`
	rows, err := db.Query(query, classID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch class students: %w", err)
	}
	defer rows.Close()

	var students []*models.User
	for rows.Next() {
		s := &models.User{Role: models.RoleStudent}
		if err := rows.Scan(&s.ID, &s.Email, &s.FullName, &s.Status, &s.IsActive, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, err
		}
		students = append(students, s)
	}
	return students, rows.Err()
}
