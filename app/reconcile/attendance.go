package reconcile

import (
	"time"

	"github.com/dghimirey/edVance/app/models"
)

// AttendanceEntry is one submitted row of a class register. An empty Status
// means the row was not filled in and is left out of the write set.
type AttendanceEntry struct {
	StudentID   string                  `json:"student_id" validate:"required,uuid"`
	StudentName string                  `json:"student_name,omitempty"`
	Status      models.AttendanceStatus `json:"status"`
	Remarks     *string                 `json:"remarks,omitempty"`
}

// PlanAttendance validates a register submission for one (class, date) and
// produces the rows to upsert, keyed by (student_id, class_id, date).
// Unknown status values reject the whole batch; duplicate student ids
// collapse to the last occurrence. Saving an unchanged register again
// produces the same write set — the operation is idempotent.
func PlanAttendance(classID string, date time.Time, markedBy string, incoming []AttendanceEntry) ([]*models.Attendance, error) {
	for _, in := range incoming {
		if in.Status == "" {
			continue
		}
		if !in.Status.IsValid() {
			return nil, &ValidationError{
				StudentID:   in.StudentID,
				StudentName: in.StudentName,
				Message:     "status must be present, absent, late, or excused",
			}
		}
	}

	index := make(map[string]int)
	writes := make([]*models.Attendance, 0, len(incoming))
	for _, in := range incoming {
		if in.Status == "" {
			continue
		}
		row := &models.Attendance{
			StudentID: in.StudentID,
			ClassID:   classID,
			Date:      date,
			Status:    in.Status,
			Remarks:   in.Remarks,
		}
		if markedBy != "" {
			by := markedBy
			row.MarkedBy = &by
		}
		if i, seen := index[in.StudentID]; seen {
			writes[i] = row
			continue
		}
		index[in.StudentID] = len(writes)
		writes = append(writes, row)
	}

	return writes, nil
}
