// Package errors provides custom error types for the booktracker system.
// These errors enable programmatic error checking across the load, search,
// add and persist steps of a run.
package errors

import (
	"errors"
	"fmt"
)

// New returns an error that formats as the given text.
// It's an alias for the standard library errors.New for convenience.
var New = errors.New

// Is and As forward to the standard library so callers need a single errors import.
var (
	Is = errors.Is
	As = errors.As
)

// Common sentinel errors for the booktracker system
var (
	// ErrUsage indicates that the command line was invalid
	ErrUsage = errors.New("usage error")

	// ErrInvalidInput indicates that a record failed a domain rule
	ErrInvalidInput = errors.New("invalid input")

	// ErrInvalidISBN indicates that an ISBN is not exactly 13 decimal digits
	ErrInvalidISBN = errors.New("invalid ISBN")

	// ErrInvalidCopyCount indicates that a copy count is not a non-negative integer
	ErrInvalidCopyCount = errors.New("invalid copy count")

	// ErrMalformedEntry indicates that a line does not split into the expected fields
	ErrMalformedEntry = errors.New("malformed entry")

	// ErrIO indicates a file create, read or write failure
	ErrIO = errors.New("io failure")

	// ErrDuplicateISBN indicates that more than one record shares an ISBN
	ErrDuplicateISBN = errors.New("duplicate ISBN")
)

// UsageError represents bad or missing command-line arguments
type UsageError struct {
	Usage   string
	Message string
}

// Error implements the error interface
func (e *UsageError) Error() string {
	if e.Usage != "" {
		return fmt.Sprintf("%s (usage: %s)", e.Message, e.Usage)
	}
	return e.Message
}

// Is implements errors.Is support
func (e *UsageError) Is(target error) bool {
	return target == ErrUsage
}

// NewUsageError creates a new UsageError
func NewUsageError(usage, message string) *UsageError {
	return &UsageError{Usage: usage, Message: message}
}

// ValidationKind identifies the rule a ValidationError broke
type ValidationKind int

const (
	// KindUnknown is a validation failure without a specific rule
	KindUnknown ValidationKind = iota
	// KindInvalidISBN is an ISBN that is not 13 decimal digits
	KindInvalidISBN
	// KindInvalidCopyCount is a copy count that is not a non-negative integer
	KindInvalidCopyCount
)

// String returns the name of the rule
func (k ValidationKind) String() string {
	switch k {
	case KindInvalidISBN:
		return "InvalidISBN"
	case KindInvalidCopyCount:
		return "InvalidCopyCount"
	default:
		return "ValidationError"
	}
}

// ValidationError represents a validation failure
type ValidationError struct {
	Kind    ValidationKind
	Field   string
	Value   any
	Message string
	Err     error
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation failed for field %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation failed: %s", e.Message)
}

// Unwrap implements errors.Unwrap
func (e *ValidationError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is support
func (e *ValidationError) Is(target error) bool {
	switch target {
	case ErrInvalidInput:
		return true
	case ErrInvalidISBN:
		return e.Kind == KindInvalidISBN
	case ErrInvalidCopyCount:
		return e.Kind == KindInvalidCopyCount
	}
	return false
}

// NewValidationError creates a new ValidationError
func NewValidationError(field string, value any, message string) *ValidationError {
	return &ValidationError{Field: field, Value: value, Message: message}
}

// NewInvalidISBNError creates a ValidationError for a bad ISBN
func NewInvalidISBNError(isbn string) *ValidationError {
	return &ValidationError{
		Kind:    KindInvalidISBN,
		Field:   "isbn",
		Value:   isbn,
		Message: "ISBN must be exactly 13 digits",
	}
}

// NewInvalidCopyCountError creates a ValidationError for a bad copy count
func NewInvalidCopyCountError(copies string, err error) *ValidationError {
	message := "copies must be a non-negative integer"
	if err != nil {
		message = fmt.Sprintf("%s: %v", message, err)
	}
	return &ValidationError{
		Kind:    KindInvalidCopyCount,
		Field:   "copies",
		Value:   copies,
		Message: message,
		Err:     err,
	}
}

// MalformedEntryError represents a line with the wrong number of fields
type MalformedEntryError struct {
	Line   string
	Fields int
	Want   int
}

// Error implements the error interface
func (e *MalformedEntryError) Error() string {
	return fmt.Sprintf("malformed entry %q: got %d fields, want %d", e.Line, e.Fields, e.Want)
}

// Is implements errors.Is support
func (e *MalformedEntryError) Is(target error) bool {
	return target == ErrMalformedEntry
}

// NewMalformedEntryError creates a new MalformedEntryError
func NewMalformedEntryError(line string, fields, want int) *MalformedEntryError {
	return &MalformedEntryError{Line: line, Fields: fields, Want: want}
}

// IOError represents an error during I/O operations
type IOError struct {
	Operation string // "create", "open", "read", "write"
	Path      string
	Message   string
	Err       error
}

// Error implements the error interface
func (e *IOError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("IO error during %s of %s: %s", e.Operation, e.Path, e.Message)
	}
	return fmt.Sprintf("IO error during %s: %s", e.Operation, e.Message)
}

// Unwrap implements errors.Unwrap
func (e *IOError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is support
func (e *IOError) Is(target error) bool {
	return target == ErrIO
}

// NewIOError creates a new IOError
func NewIOError(operation, path string, err error) *IOError {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &IOError{
		Operation: operation,
		Path:      path,
		Message:   message,
		Err:       err,
	}
}

// DuplicateISBNError reports that several records share one ISBN
type DuplicateISBNError struct {
	ISBN  string
	Count int
}

// Error implements the error interface
func (e *DuplicateISBNError) Error() string {
	return fmt.Sprintf("ISBN %s is shared by %d records", e.ISBN, e.Count)
}

// Is implements errors.Is support
func (e *DuplicateISBNError) Is(target error) bool {
	return target == ErrDuplicateISBN
}

// NewDuplicateISBNError creates a new DuplicateISBNError
func NewDuplicateISBNError(isbn string, count int) *DuplicateISBNError {
	return &DuplicateISBNError{ISBN: isbn, Count: count}
}

// Helper functions for error checking

// IsUsage checks if an error is a usage error
func IsUsage(err error) bool {
	return errors.Is(err, ErrUsage)
}

// IsValidationError checks if an error is a validation error
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}

// IsInvalidISBN checks if an error is an ISBN validation error
func IsInvalidISBN(err error) bool {
	return errors.Is(err, ErrInvalidISBN)
}

// IsInvalidCopyCount checks if an error is a copy count validation error
func IsInvalidCopyCount(err error) bool {
	return errors.Is(err, ErrInvalidCopyCount)
}

// IsMalformedEntry checks if an error is a malformed entry error
func IsMalformedEntry(err error) bool {
	return errors.Is(err, ErrMalformedEntry)
}

// IsIO checks if an error is an I/O error
func IsIO(err error) bool {
	return errors.Is(err, ErrIO)
}

// IsDuplicateISBN checks if an error is a duplicate ISBN condition
func IsDuplicateISBN(err error) bool {
	return errors.Is(err, ErrDuplicateISBN)
}

// Describe returns the short "<Type>: <message>" form used in the error log.
func Describe(err error) string {
	if err == nil {
		return ""
	}
	var (
		usage      *UsageError
		validation *ValidationError
		malformed  *MalformedEntryError
		ioErr      *IOError
		duplicate  *DuplicateISBNError
	)
	switch {
	case errors.As(err, &validation):
		return validation.Kind.String() + ": " + validation.Message
	case errors.As(err, &malformed):
		return "MalformedEntry: " + malformed.Line
	case errors.As(err, &usage):
		return "UsageError: " + err.Error()
	case errors.As(err, &ioErr):
		return "IOError: " + err.Error()
	case errors.As(err, &duplicate):
		return "DuplicateISBN: " + err.Error()
	default:
		return err.Error()
	}
}

// Helper wrapping functions for common patterns

// WrapIO wraps an error as an IOError
func WrapIO(operation, path string, err error) error {
	if err == nil {
		return nil
	}
	return NewIOError(operation, path, err)
}
