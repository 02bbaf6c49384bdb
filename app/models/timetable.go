package models

import "time"

// TimetableEntry is one scheduled period for a class.
type TimetableEntry struct {
	ID        string     `json:"id" validate:"required,uuid"`
	ClassID   string     `json:"class_id" validate:"required,uuid"`
	SubjectID string     `json:"subject_id" validate:"required,uuid"`
	TeacherID *string    `json:"teacher_id,omitempty" validate:"omitempty,uuid"`
	DayOfWeek DayOfWeek  `json:"day_of_week" validate:"required,oneof=monday tuesday wednesday thursday friday saturday sunday"`
	StartTime string     `json:"start_time" validate:"required"`
	EndTime   string     `json:"end_time" validate:"required"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
	DeletedAt *time.Time `json:"deleted_at,omitempty"`
}

// TimetableEntryResponse extends the base entry with display details.
type TimetableEntryResponse struct {
	TimetableEntry
	ClassName   string `json:"class_name"`
	SubjectName string `json:"subject_name"`
	TeacherName string `json:"teacher_name"`
}
