// Package errors defines the structured errors raised while scaffolding.
//
// A ScaffoldError records which pipeline step failed and the path it was
// working on, so the operator can tell exactly how far a partial scaffold
// got. The underlying cause is always kept and reachable through Unwrap.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// ErrorType represents different categories of errors.
type ErrorType string

const (
	ErrorTypeIO       ErrorType = "io"
	ErrorTypeTemplate ErrorType = "template"
	ErrorTypeFormat   ErrorType = "format"
	ErrorTypeConfig   ErrorType = "config"
	ErrorTypeCanceled ErrorType = "canceled"
)

// Error codes attached to scaffold failures.
const (
	CodeMkdir        = "ERR_MKDIR"
	CodeWriteFile    = "ERR_WRITE_FILE"
	CodeReadTemplate = "ERR_READ_TEMPLATE"
	CodeFormat       = "ERR_FORMAT"
	CodeConfig       = "ERR_CONFIG"
	CodeCanceled     = "ERR_CANCELED"
)

// ScaffoldError is a structured error type with step and path context.
type ScaffoldError struct {
	Type    ErrorType
	Code    string
	Step    string
	Path    string
	Message string
	Cause   error
}

// Error implements the error interface.
func (e *ScaffoldError) Error() string {
	var parts []string

	if e.Code != "" {
		parts = append(parts, fmt.Sprintf("[%s]", e.Code))
	}
	if e.Step != "" {
		parts = append(parts, "step:"+e.Step)
	}
	if e.Path != "" {
		parts = append(parts, e.Path)
	}
	parts = append(parts, e.Message)

	result := strings.Join(parts, " ")
	if e.Cause != nil {
		result += fmt.Sprintf(": %v", e.Cause)
	}

	return result
}

// Unwrap returns the underlying cause error.
func (e *ScaffoldError) Unwrap() error {
	return e.Cause
}

// Is implements error comparison.
func (e *ScaffoldError) Is(target error) bool {
	var t *ScaffoldError
	if errors.As(target, &t) {
		return e.Type == t.Type && e.Code == t.Code
	}

	return false
}

// NewIOError creates an I/O error for a filesystem step.
func NewIOError(code, step, path string, cause error) *ScaffoldError {
	msg := "failed to write file"
	if code == CodeMkdir {
		msg = "failed to create directory"
	}
	return &ScaffoldError{
		Type:    ErrorTypeIO,
		Code:    code,
		Step:    step,
		Path:    path,
		Message: msg,
		Cause:   cause,
	}
}

// NewTemplateError creates an error for a template that could not be loaded.
func NewTemplateError(step, path string, cause error) *ScaffoldError {
	return &ScaffoldError{
		Type:    ErrorTypeTemplate,
		Code:    CodeReadTemplate,
		Step:    step,
		Path:    path,
		Message: "failed to load template",
		Cause:   cause,
	}
}

// NewFormatError creates an error for formatter output that failed.
func NewFormatError(step, path string, cause error) *ScaffoldError {
	return &ScaffoldError{
		Type:    ErrorTypeFormat,
		Code:    CodeFormat,
		Step:    step,
		Path:    path,
		Message: "failed to format source",
		Cause:   cause,
	}
}

// NewConfigError creates a configuration error.
func NewConfigError(message string, cause error) *ScaffoldError {
	return &ScaffoldError{
		Type:    ErrorTypeConfig,
		Code:    CodeConfig,
		Message: message,
		Cause:   cause,
	}
}

// NewCanceledError records that the pipeline stopped before step ran.
func NewCanceledError(step string, cause error) *ScaffoldError {
	return &ScaffoldError{
		Type:    ErrorTypeCanceled,
		Code:    CodeCanceled,
		Step:    step,
		Message: "scaffolding interrupted",
		Cause:   cause,
	}
}

// StepOf returns the failed step recorded in err, if any.
func StepOf(err error) (string, bool) {
	var se *ScaffoldError
	if errors.As(err, &se) && se.Step != "" {
		return se.Step, true
	}
	return "", false
}

// IsIOError checks if an error is a filesystem failure.
func IsIOError(err error) bool {
	var se *ScaffoldError
	if errors.As(err, &se) {
		return se.Type == ErrorTypeIO
	}

	return false
}
