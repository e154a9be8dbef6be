package resource

import "fmt"

// NotSupportedError is returned when a resource type has not been
// registered.
type NotSupportedError struct {
	Type       string // Requested type name.
	Suggestion string // Close match, if any.
}

func (e NotSupportedError) Error() string {
	if e.Suggestion != "" {
		return fmt.Sprintf("resource type %q is not supported, did you mean %q?", e.Type, e.Suggestion)
	}
	return fmt.Sprintf("resource type %q is not supported", e.Type)
}

// ValidationError is returned when a resource's attributes fail validation.
// Err aggregates every failing attribute.
type ValidationError struct {
	Type string
	Name string
	Err  error
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("validate %s.%s: %v", e.Type, e.Name, e.Err)
}

// Cause implements the causer interface for pkg/errors.
func (e ValidationError) Cause() error { return e.Err }
