package models

// SubjectResult is a derived view of one subject's outcome on a report card.
// It is computed on read and never persisted.
type SubjectResult struct {
	SubjectName   string   `json:"subject_name"`
	SubjectCode   string   `json:"subject_code"`
	MaxMarks      float64  `json:"max_marks"`
	PassingMarks  float64  `json:"passing_marks"`
	MarksObtained *float64 `json:"marks_obtained"`
	Percentage    *float64 `json:"percentage"`
	Grade         string   `json:"grade"`
	Passed        bool     `json:"passed"`
}

// Overall outcome values for a report card.
const (
	OutcomePass       = "PASS"
	OutcomeFail       = "FAIL"
	OutcomeIncomplete = "INCOMPLETE"
)

// ReportCard aggregates per-subject results plus totals for one student
// and one exam. Derived on read, never persisted.
type ReportCard struct {
	Subjects          []SubjectResult `json:"subjects"`
	TotalObtained     float64         `json:"total_obtained"`
	TotalMax          float64         `json:"total_max"`
	OverallPercentage float64         `json:"overall_percentage"`
	OverallGrade      string          `json:"overall_grade"`
	Outcome           string          `json:"outcome"`
	AllPassed         bool            `json:"all_passed"`
	HasMarks          bool            `json:"has_marks"`
}

// RoleCount is one slice of the users-by-role distribution.
type RoleCount struct {
	Role  string `json:"role"`
	Count int    `json:"count"`
}

// AdminStats backs the admin dashboard.
type AdminStats struct {
	TotalUsers          int         `json:"total_users"`
	TotalStudents       int         `json:"total_students"`
	TotalTeachers       int         `json:"total_teachers"`
	ActiveUsers         int         `json:"active_users"`
	PendingApprovals    int         `json:"pending_approvals"`
	TotalClasses        int         `json:"total_classes"`
	TodayAttendanceRate *float64    `json:"today_attendance_rate"`
	UpcomingExams       int         `json:"upcoming_exams"`
	RoleDistribution    []RoleCount `json:"role_distribution"`
}

// TeacherStats backs the teacher dashboard.
type TeacherStats struct {
	MyClasses           int      `json:"my_classes"`
	TotalStudents       int      `json:"total_students"`
	TodayAttendanceRate *float64 `json:"today_attendance_rate"`
	UpcomingExams       int      `json:"upcoming_exams"`
}

// StudentStats backs the student dashboard.
type StudentStats struct {
	EnrolledClasses int      `json:"enrolled_classes"`
	AttendanceRate  *float64 `json:"attendance_rate"`
	UpcomingExams   int      `json:"upcoming_exams"`
	RecentMarks     int      `json:"recent_marks"`
}
