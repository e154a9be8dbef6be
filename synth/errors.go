package synth

import "fmt"

// DuplicateError is returned when a resource or data block with the same
// type and name is synthesized twice in one session.
type DuplicateError struct {
	Kind Kind
	Type string
	Name string
}

func (e DuplicateError) Error() string {
	return fmt.Sprintf("%s %s.%s already synthesized", e.Kind, e.Type, e.Name)
}

// SynthError wraps errors that occurred while building a block body.
type SynthError struct {
	Kind Kind
	Type string
	Name string
	Err  error
}

func (e SynthError) Error() string {
	return fmt.Sprintf("synthesize %s %s.%s: %v", e.Kind, e.Type, e.Name, e.Err)
}

// Cause implements the causer interface for pkg/errors.
func (e SynthError) Cause() error { return e.Err }
