package fingerprint

import (
	"errors"
	"fmt"
)

// ErrMissingInput marks failures caused by an absent required input. These
// are operator-recoverable, unlike I/O faults.
var ErrMissingInput = errors.New("missing required input")

// MissingInputError identifies the required input that could not be found.
type MissingInputError struct {
	Input  Input
	Path   string
	Reason string
}

func (e *MissingInputError) Error() string {
	return fmt.Sprintf("%s: %s", e.Reason, e.Path)
}

func (e *MissingInputError) Unwrap() error {
	return ErrMissingInput
}

// Hint returns the corrective hint for the missing input.
func (e *MissingInputError) Hint() string {
	return e.Input.Hint
}

func missingFile(in Input, abs string) error {
	return &MissingInputError{Input: in, Path: abs, Reason: "required file not found"}
}

func missingDir(in Input, abs string) error {
	return &MissingInputError{Input: in, Path: abs, Reason: "templates directory not found"}
}

func noMatches(in Input, abs string) error {
	return &MissingInputError{
		Input:  in,
		Path:   abs,
		Reason: fmt.Sprintf("no %s templates found", in.Ext),
	}
}
