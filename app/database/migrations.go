package database

import (
	"database/sql"
	"fmt"
	"log"
)

// RunMigrations creates the schema if it does not exist yet. Every statement
// is idempotent so the call is safe on every startup.
func RunMigrations(db *sql.DB) error {
	log.Println("Running database migrations...")

	statements := []struct {
		name  string
		query string
	}{
		{"users", `
			CREATE TABLE IF NOT EXISTS users (
				id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
				email VARCHAR(255) UNIQUE NOT NULL,
				password VARCHAR(255) NOT NULL,
				full_name VARCHAR(255) NOT NULL,
				phone VARCHAR(50),
				address TEXT,
				date_of_birth DATE,
				status VARCHAR(20) NOT NULL DEFAULT 'pending',
				is_active BOOLEAN NOT NULL DEFAULT true,
				created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
				updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
				deleted_at TIMESTAMPTZ
			)`},
		{"user_roles", `
			CREATE TABLE IF NOT EXISTS user_roles (
				user_id UUID PRIMARY KEY REFERENCES users(id) ON DELETE CASCADE,
				role VARCHAR(20) NOT NULL CHECK (role IN ('admin', 'teacher', 'student')),
				created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
			)`},
		{"classes", `
			CREATE TABLE IF NOT EXISTS classes (
				id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
				name VARCHAR(100) NOT NULL,
				section VARCHAR(20),
				academic_year VARCHAR(20) NOT NULL,
				teacher_id UUID REFERENCES users(id),
				is_active BOOLEAN NOT NULL DEFAULT true,
				created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
				updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
				deleted_at TIMESTAMPTZ
			)`},
		{"student_classes", `
			CREATE TABLE IF NOT EXISTS student_classes (
				student_id UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
				class_id UUID NOT NULL REFERENCES classes(id) ON DELETE CASCADE,
				created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
				PRIMARY KEY (student_id, class_id)
			)`},
		{"subjects", `
			CREATE TABLE IF NOT EXISTS subjects (
				id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
				name VARCHAR(100) NOT NULL,
				code VARCHAR(20) UNIQUE NOT NULL,
				created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
				updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
				deleted_at TIMESTAMPTZ
			)`},
		{"exams", `
			CREATE TABLE IF NOT EXISTS exams (
				id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
				name VARCHAR(100) NOT NULL,
				class_id UUID NOT NULL REFERENCES classes(id),
				academic_year VARCHAR(20) NOT NULL,
				start_date DATE,
				end_date DATE,
				created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
				updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
				deleted_at TIMESTAMPTZ
			)`},
		{"exam_subjects", `
			CREATE TABLE IF NOT EXISTS exam_subjects (
				id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
				exam_id UUID NOT NULL REFERENCES exams(id) ON DELETE CASCADE,
				subject_id UUID NOT NULL REFERENCES subjects(id),
				max_marks NUMERIC(7,2) NOT NULL CHECK (max_marks > 0),
				passing_marks NUMERIC(7,2) NOT NULL DEFAULT 0 CHECK (passing_marks >= 0),
				exam_date DATE,
				created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
				updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
				UNIQUE (exam_id, subject_id)
			)`},
		{"student_marks", `
			CREATE TABLE IF NOT EXISTS student_marks (
				id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
				exam_subject_id UUID NOT NULL REFERENCES exam_subjects(id) ON DELETE CASCADE,
				student_id UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
				marks_obtained NUMERIC(7,2),
				remarks TEXT,
				entered_by UUID REFERENCES users(id),
				created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
				updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
				UNIQUE (exam_subject_id, student_id)
			)`},
		{"attendance", `
			CREATE TABLE IF NOT EXISTS attendance (
				id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
				student_id UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
				class_id UUID NOT NULL REFERENCES classes(id) ON DELETE CASCADE,
				date DATE NOT NULL,
				status VARCHAR(20) NOT NULL CHECK (status IN ('present', 'absent', 'late', 'excused')),
				remarks TEXT,
				marked_by UUID REFERENCES users(id),
				created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
				updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
				UNIQUE (student_id, class_id, date)
			)`},
		{"grading_scales", `
			CREATE TABLE IF NOT EXISTS grading_scales (
				id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
				name VARCHAR(100) NOT NULL,
				academic_year VARCHAR(20),
				created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
				updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
			)`},
		{"grading_scale_entries", `
			CREATE TABLE IF NOT EXISTS grading_scale_entries (
				id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
				scale_id UUID NOT NULL REFERENCES grading_scales(id) ON DELETE CASCADE,
				grade VARCHAR(10) NOT NULL,
				min_percentage NUMERIC(5,2) NOT NULL CHECK (min_percentage >= 0),
				max_percentage NUMERIC(5,2) NOT NULL CHECK (max_percentage >= min_percentage),
				grade_point NUMERIC(4,2),
				created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
			)`},
		{"timetable_entries", `
			CREATE TABLE IF NOT EXISTS timetable_entries (
				id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
				class_id UUID NOT NULL REFERENCES classes(id) ON DELETE CASCADE,
				subject_id UUID NOT NULL REFERENCES subjects(id),
				teacher_id UUID REFERENCES users(id),
				day_of_week VARCHAR(10) NOT NULL,
				start_time VARCHAR(5) NOT NULL,
				end_time VARCHAR(5) NOT NULL,
				created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
				updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
				deleted_at TIMESTAMPTZ
			)`},
		{"attendance date index", `
			CREATE INDEX IF NOT EXISTS idx_attendance_class_date ON attendance (class_id, date)`},
		{"marks student index", `
			CREATE INDEX IF NOT EXISTS idx_student_marks_student ON student_marks (student_id)`},
	}

	for _, stmt := range statements {
		if _, err := db.Exec(stmt.query); err != nil {
			log.Printf("Failed to run migration for %s: %v", stmt.name, err)
			return fmt.Errorf("failed to migrate %s: %w", stmt.name, err)
		}
	}

	if err := seedDefaultGradingScale(db); err != nil {
		return err
	}

	log.Println("Database migrations completed successfully")
	return nil
}

// seedDefaultGradingScale inserts a standard A-F scale the first time the
// database comes up, so report cards resolve grades out of the box.
func seedDefaultGradingScale(db *sql.DB) error {
	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM grading_scales").Scan(&count); err != nil {
		return fmt.Errorf("failed to check grading scales: %w", err)
	}
	if count > 0 {
		return nil
	}

	var scaleID string
	err := db.QueryRow(`INSERT INTO grading_scales (name) VALUES ('Default Scale') RETURNING id`).Scan(&scaleID)
	if err != nil {
		return fmt.Errorf("failed to seed grading scale: %w", err)
	}

	entries := []struct {
		grade    string
		min, max float64
		point    float64
	}{
		{"A+", 90, 100, 4.0},
		{"A", 80, 89.99, 3.7},
		{"B", 70, 79.99, 3.0},
		{"C", 60, 69.99, 2.0},
		{"D", 50, 59.99, 1.0},
		{"F", 0, 49.99, 0.0},
	}
	for _, e := range entries {
		_, err := db.Exec(`
			INSERT INTO grading_scale_entries (scale_id, grade, min_percentage, max_percentage, grade_point)
			VALUES ($1, $2, $3, $4, $5)`,
			scaleID, e.grade, e.min, e.max, e.point)
		if err != nil {
			return fmt.Errorf("failed to seed grading scale entry %s: %w", e.grade, err)
		}
	}

	log.Println("Seeded default grading scale")
	return nil
}
