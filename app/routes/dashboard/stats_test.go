package dashboard

import (
	"reflect"
	"testing"

	"github.com/dghimirey/edVance/app/models"
)

func TestCountRolesFirstSeenOrder(t *testing.T) {
	roles := []string{"admin", "student", "teacher", "student", "student", "teacher"}

	got := CountRoles(roles)
	want := []models.RoleCount{
		{Role: "admin", Count: 1},
		{Role: "student", Count: 3},
		{Role: "teacher", Count: 2},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("CountRoles = %v, want %v", got, want)
	}
}

func TestCountRolesUnassigned(t *testing.T) {
	got := CountRoles([]string{"student", "", "student"})
	want := []models.RoleCount{
		{Role: "student", Count: 2},
		{Role: "unassigned", Count: 1},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("CountRoles = %v, want %v", got, want)
	}
}

func TestCountRolesEmpty(t *testing.T) {
	if got := CountRoles(nil); len(got) != 0 {
		t.Errorf("CountRoles(nil) = %v, want empty", got)
	}
}

func TestAttendanceRate(t *testing.T) {
	tests := []struct {
		name     string
		statuses []models.AttendanceStatus
		want     float64
	}{
		{"all present", []models.AttendanceStatus{models.Present, models.Present}, 100},
		{"late counts as attended", []models.AttendanceStatus{models.Present, models.Late, models.Absent}, 67},
		{"excused not attended", []models.AttendanceStatus{models.Excused, models.Absent}, 0},
		{"rounds to whole percent", []models.AttendanceStatus{models.Present, models.Absent, models.Absent}, 33},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AttendanceRate(tt.statuses)
			if got == nil {
				t.Fatal("rate is nil for non-empty input")
			}
			if *got != tt.want {
				t.Errorf("AttendanceRate = %v, want %v", *got, tt.want)
			}
		})
	}
}

// Zero records means the rate is unknown; reporting 0% would read as a day
// where everyone was absent.
func TestAttendanceRateNoRecords(t *testing.T) {
	if got := AttendanceRate(nil); got != nil {
		t.Errorf("AttendanceRate(nil) = %v, want nil", *got)
	}
}
