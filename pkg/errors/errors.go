package errors

import (
	"fmt"
)

// ParseError represents a rules or fleet file that could not be read or
// decoded, with optional line metadata.
type ParseError struct {
	Path    string
	Line    int
	Message string
	Err     error
}

// NewParseError constructs a ParseError.
func NewParseError(path string, line int, err error) error {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &ParseError{Path: path, Line: line, Message: message, Err: err}
}

func (e *ParseError) Error() string {
	if e == nil {
		return ""
	}

	if e.Line > 0 {
		return fmt.Sprintf("parse error: %s:%d: %s", e.Path, e.Line, e.Message)
	}
	return fmt.Sprintf("parse error: %s: %s", e.Path, e.Message)
}

// Unwrap exposes the underlying error.
func (e *ParseError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ValidationError captures a structurally invalid directive or aircraft
// record rejected at the model-construction boundary.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

// NewValidationError constructs a ValidationError.
func NewValidationError(field, message string, err error) error {
	return &ValidationError{Field: field, Message: message, Err: err}
}

func (e *ValidationError) Error() string {
	if e == nil {
		return ""
	}
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// Unwrap exposes the underlying error.
func (e *ValidationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// EvaluationError represents a malformed constraint discovered while
// evaluating a directive. It is distinct from any compliance verdict: a
// "not applicable" or "not affected" outcome is never an error.
type EvaluationError struct {
	DirectiveID string
	Err         error
}

// NewEvaluationError constructs an EvaluationError for the given directive.
func NewEvaluationError(directiveID string, err error) error {
	return &EvaluationError{DirectiveID: directiveID, Err: err}
}

func (e *EvaluationError) Error() string {
	if e == nil {
		return ""
	}
	if e.DirectiveID != "" {
		return fmt.Sprintf("evaluation error on directive %s: %v", e.DirectiveID, e.Err)
	}
	return fmt.Sprintf("evaluation error: %v", e.Err)
}

// Unwrap exposes the root error.
func (e *EvaluationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}
