// Package reconcile turns submitted mark and attendance batches into
// idempotent write sets keyed by their natural composite keys. Validation
// runs over the whole batch before any write is produced: one bad record
// rejects the batch, so persistence never sees a partial save.
package reconcile

import "fmt"

// ValidationError identifies the record that failed batch validation.
type ValidationError struct {
	StudentID   string
	StudentName string
	Message     string
}

func (e *ValidationError) Error() string {
	who := e.StudentName
	if who == "" {
		who = e.StudentID
	}
	return fmt.Sprintf("%s: %s", who, e.Message)
}
