package errors

import (
	"fmt"
)

// ParseError represents a failure to read or decode a configuration or
// shorthand value, with optional line metadata when the source is YAML.
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

// ValidationError captures theme or animation table validation issues.
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

// ScanError represents a failure while scanning content paths for
// utility class usage.
type ScanError struct {
	Path string
	Err  error
}

// NewScanError constructs a ScanError.
func NewScanError(path string, err error) error {
	return &ScanError{Path: path, Err: err}
}

func (e *ScanError) Error() string {
	if e == nil {
		return ""
	}
	if e.Path != "" {
		return fmt.Sprintf("scan error: %s: %v", e.Path, e.Err)
	}
	return fmt.Sprintf("scan error: %v", e.Err)
}

// Unwrap exposes the root error.
func (e *ScanError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// GenerateError indicates a failure while producing the output stylesheet.
type GenerateError struct {
	Target  string
	Message string
	Err     error
}

// NewGenerateError constructs a GenerateError for the given output target.
func NewGenerateError(target string, err error) error {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &GenerateError{Target: target, Message: message, Err: err}
}

func (e *GenerateError) Error() string {
	if e == nil {
		return ""
	}
	if e.Target != "" {
		return fmt.Sprintf("generate error [%s]: %s", e.Target, e.Message)
	}
	return fmt.Sprintf("generate error: %s", e.Message)
}

// Unwrap exposes the underlying error.
func (e *GenerateError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}
