package models

import "time"

// StudentMark stores a student's marks for one exam subject.
// Uniqueness: one row per (exam_subject_id, student_id). A nil MarksObtained
// never reaches the database; absence of a row means "not yet entered".
type StudentMark struct {
	ID            string    `json:"id" validate:"required,uuid"`
	ExamSubjectID string    `json:"exam_subject_id" validate:"required,uuid"`
	StudentID     string    `json:"student_id" validate:"required,uuid"`
	MarksObtained *float64  `json:"marks_obtained" validate:"omitempty,gte=0"`
	Remarks       *string   `json:"remarks,omitempty"`
	EnteredBy     *string   `json:"entered_by,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
	Student       *User     `json:"student,omitempty"`
}
