package reconcile

import (
	"errors"
	"reflect"
	"testing"

	"github.com/dghimirey/edVance/app/models"
)

func f(v float64) *float64 { return &v }

func testExamSubject() *models.ExamSubject {
	return &models.ExamSubject{ID: "es1", MaxMarks: 100, PassingMarks: 40}
}

func TestPlanMarksExcludesBlankEntries(t *testing.T) {
	incoming := []MarkEntry{
		{StudentID: "s1", Marks: f(85)},
		{StudentID: "s2", Marks: nil}, // left blank, must not become a zero-mark row
		{StudentID: "s3", Marks: f(40)},
	}

	writes, err := PlanMarks(testExamSubject(), incoming, "teacher1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(writes) != 2 {
		t.Fatalf("got %d writes, want 2", len(writes))
	}
	for _, w := range writes {
		if w.StudentID == "s2" {
			t.Error("blank entry must be excluded from the write set")
		}
		if w.ExamSubjectID != "es1" {
			t.Errorf("write keyed to %q, want es1", w.ExamSubjectID)
		}
	}
}

func TestPlanMarksRejectsOutOfRange(t *testing.T) {
	tests := []struct {
		name  string
		marks float64
	}{
		{"above max", 150},
		{"negative", -5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			incoming := []MarkEntry{
				{StudentID: "s1", Marks: f(50)},
				{StudentID: "s2", StudentName: "Jane Doe", Marks: f(tt.marks)},
			}
			writes, err := PlanMarks(testExamSubject(), incoming, "teacher1")
			if err == nil {
				t.Fatal("expected validation error")
			}
			if writes != nil {
				t.Error("a failed batch must produce no writes at all")
			}
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("error type %T, want *ValidationError", err)
			}
			if verr.StudentID != "s2" {
				t.Errorf("error names student %q, want s2", verr.StudentID)
			}
		})
	}
}

func TestPlanMarksValidationErrorNamesStudent(t *testing.T) {
	_, err := PlanMarks(testExamSubject(), []MarkEntry{
		{StudentID: "s9", StudentName: "Jane Doe", Marks: f(150)},
	}, "")
	if err == nil {
		t.Fatal("expected error")
	}
	if got := err.Error(); got != "Jane Doe: marks must be between 0 and 100" {
		t.Errorf("error = %q", got)
	}
}

func TestPlanMarksIdempotent(t *testing.T) {
	incoming := []MarkEntry{
		{StudentID: "s1", Marks: f(85)},
		{StudentID: "s2", Marks: f(42.5)},
	}

	first, err := PlanMarks(testExamSubject(), incoming, "teacher1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := PlanMarks(testExamSubject(), incoming, "teacher1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Error("re-planning the same batch must yield the same write set")
	}
}

func TestPlanMarksDuplicateStudentLastWins(t *testing.T) {
	incoming := []MarkEntry{
		{StudentID: "s1", Marks: f(60)},
		{StudentID: "s1", Marks: f(70)},
	}

	writes, err := PlanMarks(testExamSubject(), incoming, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(writes) != 1 {
		t.Fatalf("got %d writes, want 1", len(writes))
	}
	if *writes[0].MarksObtained != 70 {
		t.Errorf("marks = %v, want 70 (last submission wins)", *writes[0].MarksObtained)
	}
}

func TestPlanMarksBoundaryValues(t *testing.T) {
	incoming := []MarkEntry{
		{StudentID: "s1", Marks: f(0)},
		{StudentID: "s2", Marks: f(100)},
	}
	writes, err := PlanMarks(testExamSubject(), incoming, "")
	if err != nil {
		t.Fatalf("bounds are inclusive, got error: %v", err)
	}
	if len(writes) != 2 {
		t.Fatalf("got %d writes, want 2", len(writes))
	}
}
