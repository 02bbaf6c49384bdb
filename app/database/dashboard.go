package database

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/dghimirey/edVance/app/models"
	"github.com/lib/pq"
)

// Row fetches backing the dashboard aggregations. The reductions themselves
// live in routes/dashboard/stats.go so they stay testable without a database.

// GetUserRoleRows returns one role string per active user, in creation order.
// Users without a role row come back as "".
func GetUserRoleRows(db *sql.DB) ([]string, error) {
	query := `
		SELECT COALESCE(r.role, '')
		FROM users u
		LEFT JOIN user_roles r ON r.user_id = u.id
		WHERE u.is_active = true AND u.deleted_at IS NULL
		ORDER BY u.created_at
	`
	rows, err := db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch user roles: %w", err)
	}
	defer rows.Close()

	var roles []string
	for rows.Next() {
		var role string
		if err := rows.Scan(&role); err != nil {
			return nil, err
		}
		roles = append(roles, role)
	}
	return roles, rows.Err()
}

// GetAttendanceStatuses returns every attendance status recorded on a date,
// optionally limited to one class.
func GetAttendanceStatuses(db *sql.DB, date time.Time, classID string) ([]models.AttendanceStatus, error) {
	query := `SELECT status FROM attendance WHERE date = $1`
	args := []interface{}{date}
	if classID != "" {
		query += ` AND class_id = $2`
		args = append(args, classID)
	}

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch attendance: %w", err)
	}
	defer rows.Close()

	var statuses []models.AttendanceStatus
	for rows.Next() {
		var s models.AttendanceStatus
		if err := rows.Scan(&s); err != nil {
			return nil, err
		}
		statuses = append(statuses, s)
	}
	return statuses, rows.Err()
}

// GetStudentAttendanceStatuses returns a student's full attendance history.
func GetStudentAttendanceStatuses(db *sql.DB, studentID string) ([]models.AttendanceStatus, error) {
	rows, err := db.Query(`SELECT status FROM attendance WHERE student_id = $1`, studentID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch student attendance: %w", err)
	}
	defer rows.Close()

	var statuses []models.AttendanceStatus
	for rows.Next() {
		var s models.AttendanceStatus
		if err := rows.Scan(&s); err != nil {
			return nil, err
		}
		statuses = append(statuses, s)
	}
	return statuses, rows.Err()
}

func CountPendingApprovals(db *sql.DB) (int, error) {
	var n int
	err := db.QueryRow(`
		SELECT COUNT(*) FROM users
		WHERE status = 'pending' AND is_active = true AND deleted_at IS NULL
	`).Scan(&n)
	return n, err
}

func CountActiveClasses(db *sql.DB) (int, error) {
	var n int
	err := db.QueryRow(`SELECT COUNT(*) FROM classes WHERE is_active = true AND deleted_at IS NULL`).Scan(&n)
	return n, err
}

// CountUpcomingExams counts exams starting on or after the given day.
func CountUpcomingExams(db *sql.DB, from time.Time) (int, error) {
	var n int
	err := db.QueryRow(`
		SELECT COUNT(*) FROM exams
		WHERE start_date >= $1 AND deleted_at IS NULL
	`, from).Scan(&n)
	return n, err
}

// CountUpcomingExamsForClasses counts upcoming exams scoped to a set of
// classes, for teacher and student dashboards.
func CountUpcomingExamsForClasses(db *sql.DB, from time.Time, classIDs []string) (int, error) {
	if len(classIDs) == 0 {
		return 0, nil
	}
	var n int
	err := db.QueryRow(`
		SELECT COUNT(*) FROM exams
		WHERE start_date >= $1 AND deleted_at IS NULL AND class_id = ANY($2)
	`, from, pq.Array(classIDs)).Scan(&n)
	return n, err
}

func CountTeacherClasses(db *sql.DB, teacherID string) (int, error) {
	var n int
	err := db.QueryRow(`
		SELECT COUNT(*) FROM classes
		WHERE teacher_id = $1 AND is_active = true AND deleted_at IS NULL
	`, teacherID).Scan(&n)
	return n, err
}

func CountTeacherStudents(db *sql.DB, teacherID string) (int, error) {
	var n int
	err := db.QueryRow(`
		SELECT COUNT(DISTINCT sc.student_id)
		FROM student_classes sc
		JOIN classes c ON c.id = sc.class_id
		WHERE c.teacher_id = $1 AND c.is_active = true AND c.deleted_at IS NULL
	`, teacherID).Scan(&n)
	return n, err
}

// GetStudentClassIDs returns the ids of classes a student is enrolled in.
func GetStudentClassIDs(db *sql.DB, studentID string) ([]string, error) {
	rows, err := db.Query(`
		SELECT sc.class_id
		FROM student_classes sc
		JOIN classes c ON c.id = sc.class_id
		WHERE sc.student_id = $1 AND c.is_active = true AND c.deleted_at IS NULL
	`, studentID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch enrollments: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

// GetTeacherClassIDs returns the ids of classes a teacher is assigned to.
func GetTeacherClassIDs(db *sql.DB, teacherID string) ([]string, error) {
	rows, err := db.Query(`
		SELECT id FROM classes
		WHERE teacher_id = $1 AND is_active = true AND deleted_at IS NULL
	`, teacherID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch teacher classes: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

// CountRecentMarks counts marks entered for a student in the last 30 days.
func CountRecentMarks(db *sql.DB, studentID string) (int, error) {
	var n int
	err := db.QueryRow(`
		SELECT COUNT(*) FROM student_marks
		WHERE student_id = $1 AND marks_obtained IS NOT NULL
		AND updated_at >= NOW() - INTERVAL '30 days'
	`, studentID).Scan(&n)
	return n, err
}
