package models

// AttendanceStatus defines the possible status values for attendance.
type AttendanceStatus string

const (
	Present AttendanceStatus = "present"
	Absent  AttendanceStatus = "absent"
	Late    AttendanceStatus = "late"
	Excused AttendanceStatus = "excused"
)

// IsValid reports whether the status is one of the known attendance values.
func (s AttendanceStatus) IsValid() bool {
	switch s {
	case Present, Absent, Late, Excused:
		return true
	}
	return false
}

// Role names a user can hold. Each user holds exactly one role.
const (
	RoleAdmin   = "admin"
	RoleTeacher = "teacher"
	RoleStudent = "student"
)

// ProfileStatus defines the approval workflow states for a user profile.
type ProfileStatus string

const (
	StatusPending  ProfileStatus = "pending"
	StatusApproved ProfileStatus = "approved"
	StatusRejected ProfileStatus = "rejected"
)

// DayOfWeek defines the days of the week for timetable entries.
type DayOfWeek string

const (
	Monday    DayOfWeek = "monday"
	Tuesday   DayOfWeek = "tuesday"
	Wednesday DayOfWeek = "wednesday"
	Thursday  DayOfWeek = "thursday"
	Friday    DayOfWeek = "friday"
	Saturday  DayOfWeek = "saturday"
	Sunday    DayOfWeek = "sunday"
)
