package models

import "time"

// Attendance represents a student's attendance in a class on a given date.
// Uniqueness: one row per (student_id, class_id, date).
type Attendance struct {
	ID        string           `json:"id" validate:"required,uuid"`
	StudentID string           `json:"student_id" validate:"required,uuid"`
	ClassID   string           `json:"class_id" validate:"required,uuid"`
	Date      time.Time        `json:"date" validate:"required"`
	Status    AttendanceStatus `json:"status" validate:"required,oneof=present absent late excused"`
	Remarks   *string          `json:"remarks,omitempty"`
	MarkedBy  *string          `json:"marked_by,omitempty"`
	CreatedAt time.Time        `json:"created_at"`
	UpdatedAt time.Time        `json:"updated_at"`
	Student   *User            `json:"student,omitempty"`
}
