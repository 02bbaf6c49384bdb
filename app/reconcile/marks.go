package reconcile

import (
	"fmt"

	"github.com/dghimirey/edVance/app/models"
)

// MarkEntry is one submitted row of a marks-entry sheet. A nil Marks means
// the teacher left the cell blank; the student stays "not yet entered".
type MarkEntry struct {
	StudentID   string   `json:"student_id" validate:"required,uuid"`
	StudentName string   `json:"student_name,omitempty"`
	Marks       *float64 `json:"marks_obtained"`
	Remarks     *string  `json:"remarks,omitempty"`
}

// PlanMarks validates a submitted batch against the exam subject's bounds
// and produces the rows to upsert, keyed by (exam_subject_id, student_id).
//
// Rules:
//   - every provided mark must satisfy 0 <= marks <= max_marks; the first
//     violation rejects the whole batch with a *ValidationError and no
//     writes are produced;
//   - blank entries are excluded from the write set so partial submissions
//     never create zero-mark rows or clobber prior state;
//   - duplicate student ids in one batch collapse to the last occurrence.
//
// Re-planning the same batch yields the same write set, so a double save
// changes nothing but row timestamps.
func PlanMarks(es *models.ExamSubject, incoming []MarkEntry, enteredBy string) ([]*models.StudentMark, error) {
	for _, in := range incoming {
		if in.Marks == nil {
			continue
		}
		if *in.Marks < 0 {
			return nil, &ValidationError{
				StudentID:   in.StudentID,
				StudentName: in.StudentName,
				Message:     "marks cannot be negative",
			}
		}
		if *in.Marks > es.MaxMarks {
			return nil, &ValidationError{
				StudentID:   in.StudentID,
				StudentName: in.StudentName,
				Message:     fmt.Sprintf("marks must be between 0 and %g", es.MaxMarks),
			}
		}
	}

	index := make(map[string]int)
	writes := make([]*models.StudentMark, 0, len(incoming))
	for _, in := range incoming {
		if in.Marks == nil {
			continue
		}
		obtained := *in.Marks
		row := &models.StudentMark{
			ExamSubjectID: es.ID,
			StudentID:     in.StudentID,
			MarksObtained: &obtained,
			Remarks:       in.Remarks,
		}
		if enteredBy != "" {
			by := enteredBy
			row.EnteredBy = &by
		}
		if i, seen := index[in.StudentID]; seen {
			writes[i] = row // last submission for a student wins
			continue
		}
		index[in.StudentID] = len(writes)
		writes = append(writes, row)
	}

	return writes, nil
}
