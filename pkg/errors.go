package pkg

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"syscall"
)

// ErrType represents different categories of errors
type ErrType string

const (
	ErrTypeInput         ErrType = "input"
	ErrTypeEntry         ErrType = "entry"
	ErrTypeValidation    ErrType = "validation"
	ErrTypeConfiguration ErrType = "configuration"
	ErrTypeOutput        ErrType = "output"
)

// AppError represents a domain-specific error with additional context
type AppError struct {
	Type     ErrType
	Op       string // operation that failed
	Resource string // path or option involved
	Err      error  // underlying error
	Message  string // user-friendly message
}

func (e *AppError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Resource != "" {
		return fmt.Sprintf("%s failed for %s: %v", e.Op, e.Resource, e.Err)
	}
	return fmt.Sprintf("%s failed: %v", e.Op, e.Err)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func (e *AppError) Is(target error) bool {
	var appErr *AppError
	if errors.As(target, &appErr) {
		return e.Type == appErr.Type
	}
	return false
}

// Sentinels for errors.Is checks against a category
var (
	ErrInput = &AppError{Type: ErrTypeInput}
	ErrEntry = &AppError{Type: ErrTypeEntry}
)

// NewInputError creates an error for a target that cannot be scanned at all
func NewInputError(op, path string, err error) *AppError {
	return &AppError{
		Type:     ErrTypeInput,
		Op:       op,
		Resource: path,
		Err:      err,
	}
}

// NewEntryError creates an error for a single directory entry that is skipped
func NewEntryError(op, path string, err error) *AppError {
	return &AppError{
		Type:     ErrTypeEntry,
		Op:       op,
		Resource: path,
		Err:      err,
	}
}

// NewValidationError creates a new validation error
func NewValidationError(op, resource, message string) *AppError {
	return &AppError{
		Type:     ErrTypeValidation,
		Op:       op,
		Resource: resource,
		Message:  message,
	}
}

// NewConfigurationError creates a new configuration error
func NewConfigurationError(op, message string) *AppError {
	return &AppError{
		Type:    ErrTypeConfiguration,
		Op:      op,
		Message: message,
	}
}

// NewOutputError creates an error for a failed write to the output stream
func NewOutputError(op string, err error) *AppError {
	return &AppError{
		Type: ErrTypeOutput,
		Op:   op,
		Err:  err,
	}
}

// EnhanceError provides user-friendly messages for a target directory that
// cannot be scanned. The context is "<op> <path>".
func EnhanceError(err error, context string) error {
	if err == nil {
		return nil
	}

	var appErr *AppError
	if errors.As(err, &appErr) && appErr.Message != "" {
		return err
	}

	// Extract operation and resource from context
	parts := strings.SplitN(context, " ", 2)
	op := parts[0]
	resource := ""
	if len(parts) > 1 {
		resource = parts[1]
	}

	switch {
	case errors.Is(err, syscall.ENOTDIR):
		message := fmt.Sprintf("The path: %q is not a directory", resource)
		return NewInputError(op, resource, err).withMessage(message)
	case errors.Is(err, fs.ErrNotExist):
		message := fmt.Sprintf("The path: %q does not exist. Check the path is correct", resource)
		return NewInputError(op, resource, err).withMessage(message)
	case errors.Is(err, fs.ErrPermission):
		message := fmt.Sprintf("access denied for %q. Check the directory permissions", resource)
		return NewInputError(op, resource, err).withMessage(message)
	}

	// Return original error with context if no specific handling applies
	return NewInputError(op, resource, err)
}

// withMessage is a helper method to set custom message on AppError
func (e *AppError) withMessage(msg string) *AppError {
	e.Message = msg
	return e
}

// IsFatal reports whether err should stop the program before any output
func IsFatal(err error) bool {
	return err != nil && !errors.Is(err, ErrEntry)
}
