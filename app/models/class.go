package models

import "time"

// Class represents a class (grade/section pairing) students enrol into.
type Class struct {
	ID           string     `json:"id" validate:"required,uuid"`
	Name         string     `json:"name" validate:"required"`
	Section      *string    `json:"section,omitempty"`
	AcademicYear string     `json:"academic_year" validate:"required"`
	TeacherID    *string    `json:"teacher_id,omitempty" validate:"omitempty,uuid"`
	IsActive     bool       `json:"is_active"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
	DeletedAt    *time.Time `json:"deleted_at,omitempty"`
	Teacher      *User      `json:"teacher,omitempty"`
	StudentCount int        `json:"student_count"`
}
