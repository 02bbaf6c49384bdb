package models

import "time"

// Exam represents an exam event for a class.
type Exam struct {
	ID           string     `json:"id" validate:"required,uuid"`
	Name         string     `json:"name" validate:"required"`
	ClassID      string     `json:"class_id" validate:"required,uuid"`
	AcademicYear string     `json:"academic_year" validate:"required"`
	StartDate    *time.Time `json:"start_date,omitempty"`
	EndDate      *time.Time `json:"end_date,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
	DeletedAt    *time.Time `json:"deleted_at,omitempty"`
	Class        *Class     `json:"class,omitempty"`
}

// ExamSubject is a (subject, exam) pairing carrying the marking bounds.
// One row per subject per exam.
type ExamSubject struct {
	ID           string     `json:"id" validate:"required,uuid"`
	ExamID       string     `json:"exam_id" validate:"required,uuid"`
	SubjectID    string     `json:"subject_id" validate:"required,uuid"`
	MaxMarks     float64    `json:"max_marks" validate:"required,gt=0"`
	PassingMarks float64    `json:"passing_marks" validate:"gte=0"`
	ExamDate     *time.Time `json:"exam_date,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
	Subject      *Subject   `json:"subject,omitempty"`
}
