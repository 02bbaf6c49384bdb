package models

import "time"

// GradingScale groups an ordered set of percentage-to-grade mappings.
type GradingScale struct {
	ID           string               `json:"id" validate:"required,uuid"`
	Name         string               `json:"name" validate:"required"`
	AcademicYear *string              `json:"academic_year,omitempty"`
	CreatedAt    time.Time            `json:"created_at"`
	UpdatedAt    time.Time            `json:"updated_at"`
	Entries      []*GradingScaleEntry `json:"entries,omitempty"`
}

// GradingScaleEntry maps a percentage band to a grade label.
// Bands should be non-overlapping and cover [0,100], but the resolver
// tolerates misconfiguration (see grading.ResolveGrade).
type GradingScaleEntry struct {
	ID            string    `json:"id" validate:"required,uuid"`
	ScaleID       string    `json:"scale_id" validate:"required,uuid"`
	Grade         string    `json:"grade" validate:"required"`
	MinPercentage float64   `json:"min_percentage" validate:"gte=0"`
	MaxPercentage float64   `json:"max_percentage" validate:"gte=0"`
	GradePoint    *float64  `json:"grade_point,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}
