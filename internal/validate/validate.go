// SPDX-License-Identifier: MIT

// Package validate provides configuration validation utilities for pairsum.
package validate

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Error represents a validation error
type Error struct {
	Field   string      // Field name that failed validation
	Value   interface{} // The invalid value
	Message string      // Human-readable error message
}

// Error implements the error interface
func (e Error) Error() string {
	return fmt.Sprintf("validation failed for %s: %s", e.Field, e.Message)
}

// Validator accumulates validation errors and can produce a ValidationError when invalid.
type Validator struct {
	errors []Error
}

// ValidationError bundles multiple validation errors into a single error value.
type ValidationError struct {
	errors []Error
}

// New creates a new validator
func New() *Validator {
	return &Validator{
		errors: make([]Error, 0),
	}
}

// AddError adds a validation error
func (v *Validator) AddError(field, message string, value interface{}) {
	v.errors = append(v.errors, Error{
		Field:   field,
		Value:   value,
		Message: message,
	})
}

// IsValid returns true if no errors have been accumulated
func (v *Validator) IsValid() bool {
	return len(v.errors) == 0
}

// Errors returns all accumulated validation errors
func (v *Validator) Errors() []Error {
	return v.errors
}

// Err converts the accumulated validation errors into an error value.
func (v *Validator) Err() error {
	if v.IsValid() {
		return nil
	}

	copied := make([]Error, len(v.errors))
	copy(copied, v.errors)

	return ValidationError{errors: copied}
}

// Errors returns the individual validation errors making up the validation failure.
func (e ValidationError) Errors() []Error {
	return e.errors
}

// Error implements the error interface for ValidationError.
func (e ValidationError) Error() string {
	if len(e.errors) == 0 {
		return ""
	}

	if len(e.errors) == 1 {
		return e.errors[0].Error()
	}

	msgs := make([]string, len(e.errors))
	for i, err := range e.errors {
		msgs[i] = err.Error()
	}
	return strings.Join(msgs, "; ")
}

// Range validates that an integer is within a specified range (inclusive)
func (v *Validator) Range(field string, value, minVal, maxVal int) {
	if value < minVal || value > maxVal {
		v.AddError(field,
			fmt.Sprintf("value must be between %d and %d, got %d", minVal, maxVal, value),
			value)
	}
}

// NotEmpty validates that a string is not empty or whitespace-only
func (v *Validator) NotEmpty(field, value string) {
	if strings.TrimSpace(value) == "" {
		v.AddError(field, "value cannot be empty", value)
	}
}

// Level validates that a string names a supported log level
func (v *Validator) Level(field, value string) {
	if _, err := ParseLogLevel(value); err != nil {
		v.AddError(field,
			fmt.Sprintf("%s, got %q", ErrInvalidLogLevel.Message, value),
			value)
	}
}

// SingleLine validates that a string holds no line breaks
func (v *Validator) SingleLine(field, value string) {
	if strings.ContainsAny(value, "\r\n") {
		v.AddError(field, "value must not contain line breaks", value)
	}
}

// Custom allows custom validation logic
// The validator function should return an error if validation fails
func (v *Validator) Custom(field string, value interface{}, validator func(interface{}) error) {
	if err := validator(value); err != nil {
		v.AddError(field, err.Error(), value)
	}
}

// WritableFile validates a path a file will be written to.
// Empty paths are allowed (optional fields). The path must not name a
// directory and its parent directory must exist.
func (v *Validator) WritableFile(field, path string) {
	if path == "" {
		return
	}

	cleaned := filepath.Clean(path)
	if info, err := os.Stat(cleaned); err == nil && info.IsDir() {
		v.AddError(field, "path points to directory, expected file", path)
		return
	}

	parent := filepath.Dir(cleaned)
	info, err := os.Stat(parent)
	if err != nil {
		if os.IsNotExist(err) {
			v.AddError(field, fmt.Sprintf("parent directory does not exist: %s", parent), path)
			return
		}
		v.AddError(field, fmt.Sprintf("cannot access parent directory: %v", err), path)
		return
	}
	if !info.IsDir() {
		v.AddError(field, fmt.Sprintf("parent is not a directory: %s", parent), path)
	}
}

// ReadableFile validates a path a file will be read from.
// Empty paths are allowed (optional fields).
func (v *Validator) ReadableFile(field, path string) {
	if path == "" {
		return
	}

	info, err := os.Stat(filepath.Clean(path))
	if err != nil {
		if os.IsNotExist(err) {
			v.AddError(field, "file does not exist", path)
			return
		}
		v.AddError(field, fmt.Sprintf("cannot access file: %v", err), path)
		return
	}
	if info.IsDir() {
		v.AddError(field, "path points to directory, expected file", path)
	}
}
