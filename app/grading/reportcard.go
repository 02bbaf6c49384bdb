package grading

import "github.com/dghimirey/edVance/app/models"

// BuildReportCard aggregates a student's marks across an exam's subjects
// into a report card. marks is keyed by exam_subject_id; a missing key means
// the subject has not been graded yet.
//
// Totals run over every configured subject: an ungraded subject contributes
// zero obtained marks but its max still counts, so a half-graded exam reads
// low rather than misleadingly high. The overall outcome is INCOMPLETE, not
// PASS, when the subject list is empty or any subject is ungraded — a
// vacuous pass would mislead the reader.
func BuildReportCard(subjects []*models.ExamSubject, marks map[string]*models.StudentMark, entries []*models.GradingScaleEntry) *models.ReportCard {
	card := &models.ReportCard{Subjects: make([]models.SubjectResult, 0, len(subjects))}

	graded := 0
	failed := 0
	for _, es := range subjects {
		sr := models.SubjectResult{
			MaxMarks:     es.MaxMarks,
			PassingMarks: es.PassingMarks,
			Grade:        GradeNotEntered,
		}
		if es.Subject != nil {
			sr.SubjectName = es.Subject.Name
			sr.SubjectCode = es.Subject.Code
		}

		if m, ok := marks[es.ID]; ok && m != nil && m.MarksObtained != nil {
			obtained := *m.MarksObtained
			pct := Round2(obtained / es.MaxMarks * 100)
			sr.MarksObtained = &obtained
			sr.Percentage = &pct
			sr.Grade = ResolveGrade(entries, pct)
			sr.Passed = obtained >= es.PassingMarks

			card.TotalObtained += obtained
			card.HasMarks = true
			graded++
			if !sr.Passed {
				failed++
			}
		}

		card.TotalMax += es.MaxMarks
		card.Subjects = append(card.Subjects, sr)
	}

	if card.TotalMax > 0 {
		card.OverallPercentage = Round2(card.TotalObtained / card.TotalMax * 100)
	}
	card.OverallGrade = ResolveGrade(entries, card.OverallPercentage)

	switch {
	case len(subjects) == 0 || graded < len(subjects):
		card.Outcome = models.OutcomeIncomplete
	case failed > 0:
		card.Outcome = models.OutcomeFail
	default:
		card.Outcome = models.OutcomePass
	}
	card.AllPassed = card.Outcome == models.OutcomePass

	return card
}
