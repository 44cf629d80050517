package session

import "fmt"

// InvalidStateError indicates an operation that is not allowed in the
// current phase, e.g. submitting without an active question.
type InvalidStateError struct {
	Op    string
	Phase Phase
}

func (e *InvalidStateError) Error() string {
	return fmt.Sprintf("%s not allowed in phase %s", e.Op, e.Phase)
}
