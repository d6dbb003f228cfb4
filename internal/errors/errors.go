// Package errors provides custom error types for domain-specific errors.
package errors

import (
	"errors"
	"fmt"
)

// Standard sentinel errors
var (
	ErrMatrixKeyMissing  = errors.New("decision matrix key missing")
	ErrAssessmentAborted = errors.New("assessment aborted")
	ErrInputValidation   = errors.New("input validation failed")
	ErrConfigInvalid     = errors.New("invalid configuration")
	ErrDataNotFound      = errors.New("data not found")
	ErrDatabaseError     = errors.New("database error")
)

// MatrixError reports a decision-matrix lookup miss. A miss indicates a
// programming or catalog defect, never a runtime condition to recover
// from: the assessment must abort rather than substitute a default.
type MatrixError struct {
	Category string
	Horizon  string
	Lumpsum  bool
}

func (e *MatrixError) Error() string {
	return fmt.Sprintf("decision matrix has no entry for (%s, %s, lumpsum=%t)", e.Category, e.Horizon, e.Lumpsum)
}

func (e *MatrixError) Unwrap() error {
	return ErrMatrixKeyMissing
}

// NewMatrixError creates a new MatrixError.
func NewMatrixError(category, horizon string, lumpsum bool) *MatrixError {
	return &MatrixError{
		Category: category,
		Horizon:  horizon,
		Lumpsum:  lumpsum,
	}
}

// ValidationError represents a validation error at the input boundary.
type ValidationError struct {
	Field   string
	Value   interface{}
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error: %s (%v): %s", e.Field, e.Value, e.Message)
}

func (e *ValidationError) Unwrap() error {
	return ErrInputValidation
}

// NewValidationError creates a new ValidationError.
func NewValidationError(field string, value interface{}, message string) *ValidationError {
	return &ValidationError{
		Field:   field,
		Value:   value,
		Message: message,
	}
}

// StoreError represents a persistence error.
type StoreError struct {
	Operation string
	Err       error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("store error [%s]: %v", e.Operation, e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

// NewStoreError creates a new StoreError.
func NewStoreError(operation string, err error) *StoreError {
	return &StoreError{
		Operation: operation,
		Err:       err,
	}
}

// Wrap wraps an error with additional context.
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// Wrapf wraps an error with formatted context.
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), err)
}

// Is reports whether any error in err's chain matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}
