package reconcile

import (
	"errors"
	"testing"
	"time"

	"github.com/dghimirey/edVance/app/models"
)

func TestPlanAttendanceRegister(t *testing.T) {
	date := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	incoming := []AttendanceEntry{
		{StudentID: "s1", Status: models.Present},
		{StudentID: "s2", Status: models.Absent},
		{StudentID: "s3", Status: models.Late},
	}

	writes, err := PlanAttendance("c1", date, "teacher1", incoming)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(writes) != 3 {
		t.Fatalf("got %d writes, want 3", len(writes))
	}
	for _, w := range writes {
		if w.ClassID != "c1" || !w.Date.Equal(date) {
			t.Errorf("write keyed to (%s, %v), want (c1, %v)", w.ClassID, w.Date, date)
		}
		if w.MarkedBy == nil || *w.MarkedBy != "teacher1" {
			t.Error("marked_by not carried onto write")
		}
	}
}

// Re-saving a register with one status changed must update just that row's
// status and never grow the row count past the distinct students submitted.
func TestPlanAttendanceResaveChangesOneRow(t *testing.T) {
	date := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	first := []AttendanceEntry{
		{StudentID: "s1", Status: models.Present},
		{StudentID: "s2", Status: models.Absent},
		{StudentID: "s3", Status: models.Late},
	}
	second := []AttendanceEntry{
		{StudentID: "s1", Status: models.Present},
		{StudentID: "s2", Status: models.Excused}, // changed
		{StudentID: "s3", Status: models.Late},
	}

	before, err := PlanAttendance("c1", date, "t1", first)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	after, err := PlanAttendance("c1", date, "t1", second)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(after) != len(before) {
		t.Fatalf("row count changed: %d -> %d", len(before), len(after))
	}
	for i := range after {
		if after[i].StudentID != before[i].StudentID {
			t.Fatalf("student order changed at %d", i)
		}
		want := before[i].Status
		if after[i].StudentID == "s2" {
			want = models.Excused
		}
		if after[i].Status != want {
			t.Errorf("student %s status = %q, want %q", after[i].StudentID, after[i].Status, want)
		}
	}
}

func TestPlanAttendanceRejectsUnknownStatus(t *testing.T) {
	incoming := []AttendanceEntry{
		{StudentID: "s1", Status: models.Present},
		{StudentID: "s2", StudentName: "John Smith", Status: "asleep"},
	}

	writes, err := PlanAttendance("c1", time.Now(), "t1", incoming)
	if err == nil {
		t.Fatal("expected validation error")
	}
	if writes != nil {
		t.Error("a failed batch must produce no writes")
	}
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("error type %T, want *ValidationError", err)
	}
	if verr.StudentID != "s2" {
		t.Errorf("error names student %q, want s2", verr.StudentID)
	}
}

func TestPlanAttendanceSkipsUnfilledRows(t *testing.T) {
	incoming := []AttendanceEntry{
		{StudentID: "s1", Status: models.Present},
		{StudentID: "s2", Status: ""},
	}

	writes, err := PlanAttendance("c1", time.Now(), "t1", incoming)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(writes) != 1 || writes[0].StudentID != "s1" {
		t.Fatalf("unfilled row must be skipped, got %d writes", len(writes))
	}
}

func TestPlanAttendanceDuplicateStudentLastWins(t *testing.T) {
	incoming := []AttendanceEntry{
		{StudentID: "s1", Status: models.Absent},
		{StudentID: "s1", Status: models.Present},
	}

	writes, err := PlanAttendance("c1", time.Now(), "t1", incoming)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(writes) != 1 || writes[0].Status != models.Present {
		t.Fatalf("duplicate submission must collapse to the last row")
	}
}
