package pedigree

import "fmt"

// InvalidPedigreeError is the single error kind the compiler ever raises for
// a malformed pedigree, somatic-tree failure, or inheritance-model
// violation. Every condition in the error-handling design maps to one of
// these; callers should not attempt to recover a partially built graph from
// a Construct call that returned one.
type InvalidPedigreeError struct {
	Message string
}

func (e *InvalidPedigreeError) Error() string { return e.Message }

// Invalidf constructs an InvalidPedigreeError with a formatted message.
func Invalidf(format string, args ...any) error {
	return &InvalidPedigreeError{Message: fmt.Sprintf(format, args...)}
}
