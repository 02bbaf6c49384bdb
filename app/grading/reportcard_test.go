package grading

import (
	"testing"

	"github.com/dghimirey/edVance/app/models"
)

func examSubject(id string, max, passing float64, name, code string) *models.ExamSubject {
	return &models.ExamSubject{
		ID:           id,
		MaxMarks:     max,
		PassingMarks: passing,
		Subject:      &models.Subject{Name: name, Code: code},
	}
}

func mark(examSubjectID string, obtained float64) *models.StudentMark {
	return &models.StudentMark{ExamSubjectID: examSubjectID, MarksObtained: &obtained}
}

func TestBuildReportCardSingleSubject(t *testing.T) {
	scale := []*models.GradingScaleEntry{
		entry("A+", 90, 100),
		entry("A", 80, 89.99),
		entry("F", 0, 39.99),
	}
	subjects := []*models.ExamSubject{examSubject("es1", 100, 40, "Mathematics", "MATH")}
	marks := map[string]*models.StudentMark{"es1": mark("es1", 85)}

	card := BuildReportCard(subjects, marks, scale)

	sr := card.Subjects[0]
	if sr.Percentage == nil || *sr.Percentage != 85.00 {
		t.Fatalf("subject percentage = %v, want 85.00", sr.Percentage)
	}
	if sr.Grade != "A" {
		t.Errorf("subject grade = %q, want A", sr.Grade)
	}
	if !sr.Passed {
		t.Error("subject should be passed")
	}
	if card.Outcome != models.OutcomePass || !card.AllPassed {
		t.Errorf("outcome = %q allPassed = %v, want PASS/true", card.Outcome, card.AllPassed)
	}
	if card.OverallGrade != "A" {
		t.Errorf("overall grade = %q, want A", card.OverallGrade)
	}
}

func TestBuildReportCardUngradedSubject(t *testing.T) {
	// Two subjects of 50 each, one ungraded: the missing subject counts
	// zero obtained but its max still counts toward the denominator.
	subjects := []*models.ExamSubject{
		examSubject("es1", 50, 20, "Physics", "PHY"),
		examSubject("es2", 50, 20, "Chemistry", "CHE"),
	}
	marks := map[string]*models.StudentMark{"es1": mark("es1", 45)}

	card := BuildReportCard(subjects, marks, defaultScale())

	if card.TotalObtained != 45 || card.TotalMax != 100 {
		t.Fatalf("totals = %v/%v, want 45/100", card.TotalObtained, card.TotalMax)
	}
	if card.OverallPercentage != 45.00 {
		t.Errorf("overall percentage = %v, want 45.00", card.OverallPercentage)
	}
	if card.AllPassed {
		t.Error("allPassed must be false with an ungraded subject")
	}
	if card.Outcome != models.OutcomeIncomplete {
		t.Errorf("outcome = %q, want INCOMPLETE", card.Outcome)
	}

	ungraded := card.Subjects[1]
	if ungraded.MarksObtained != nil || ungraded.Percentage != nil {
		t.Error("ungraded subject must have nil marks and percentage")
	}
	if ungraded.Grade != GradeNotEntered {
		t.Errorf("ungraded grade = %q, want %q", ungraded.Grade, GradeNotEntered)
	}
	if ungraded.Passed {
		t.Error("ungraded subject must not count as passed")
	}
}

func TestBuildReportCardZeroSubjects(t *testing.T) {
	card := BuildReportCard(nil, nil, defaultScale())

	if card.OverallPercentage != 0 {
		t.Errorf("overall percentage = %v, want 0", card.OverallPercentage)
	}
	if card.Outcome != models.OutcomeIncomplete {
		t.Errorf("outcome = %q, want INCOMPLETE for zero subjects", card.Outcome)
	}
	if card.AllPassed {
		t.Error("zero subjects must not report a vacuous pass")
	}
	if card.HasMarks {
		t.Error("zero subjects cannot have marks")
	}
}

func TestBuildReportCardFailedSubject(t *testing.T) {
	subjects := []*models.ExamSubject{
		examSubject("es1", 100, 40, "History", "HIS"),
		examSubject("es2", 100, 40, "Geography", "GEO"),
	}
	marks := map[string]*models.StudentMark{
		"es1": mark("es1", 75),
		"es2": mark("es2", 30),
	}

	card := BuildReportCard(subjects, marks, defaultScale())

	if card.Outcome != models.OutcomeFail {
		t.Errorf("outcome = %q, want FAIL", card.Outcome)
	}
	if card.AllPassed {
		t.Error("allPassed must be false when a subject is failed")
	}
	if !card.Subjects[0].Passed || card.Subjects[1].Passed {
		t.Error("per-subject pass flags wrong")
	}
}

func TestBuildReportCardRoundingConsistency(t *testing.T) {
	// 1/3 of the marks in each of three subjects; subject and overall
	// percentages must round the same way.
	subjects := []*models.ExamSubject{
		examSubject("es1", 30, 10, "S1", "S1"),
		examSubject("es2", 30, 10, "S2", "S2"),
		examSubject("es3", 30, 10, "S3", "S3"),
	}
	marks := map[string]*models.StudentMark{
		"es1": mark("es1", 10),
		"es2": mark("es2", 10),
		"es3": mark("es3", 10),
	}

	card := BuildReportCard(subjects, marks, defaultScale())

	for i, sr := range card.Subjects {
		if sr.Percentage == nil || *sr.Percentage != 33.33 {
			t.Errorf("subject %d percentage = %v, want 33.33", i, sr.Percentage)
		}
	}
	if card.OverallPercentage != 33.33 {
		t.Errorf("overall percentage = %v, want 33.33", card.OverallPercentage)
	}
}

func TestBuildReportCardExtraCredit(t *testing.T) {
	// Extra-credit scoring can push a percentage past 100; the builder
	// must not reject it, the grade just may not resolve.
	subjects := []*models.ExamSubject{examSubject("es1", 50, 20, "Music", "MUS")}
	marks := map[string]*models.StudentMark{"es1": mark("es1", 52)}

	card := BuildReportCard(subjects, marks, defaultScale())

	if got := card.Subjects[0]; got.Percentage == nil || *got.Percentage != 104.00 {
		t.Fatalf("percentage = %v, want 104.00", got.Percentage)
	}
	if card.Subjects[0].Grade != GradeNotAvailable {
		t.Errorf("grade = %q, want %q", card.Subjects[0].Grade, GradeNotAvailable)
	}
	if card.Outcome != models.OutcomePass {
		t.Errorf("outcome = %q, want PASS", card.Outcome)
	}
}
