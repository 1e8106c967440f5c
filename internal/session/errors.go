package session

import (
	"errors"
	"fmt"
)

// ErrEmptyCompletion is returned when the model answers with no usable text.
var ErrEmptyCompletion = errors.New("model returned an empty completion")

// ValidationError reports a malformed session request. It is raised
// before the orchestrator runs, never by the orchestrator itself.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

// GenerationError reports a failed completion call from either generator
// role. Stage is "question" or "answer".
type GenerationError struct {
	Stage string
	Err   error
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("failed to generate %s: %v", e.Stage, e.Err)
}

func (e *GenerationError) Unwrap() error {
	return e.Err
}
