// Package errors provides custom error types for the sheetfuse system.
// These errors enable better error handling, programmatic error checking,
// and improved debugging throughout the application.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// New returns an error that formats as the given text.
// It's an alias for the standard library errors.New for convenience.
var New = errors.New

// Common sentinel errors for the sheetfuse system
var (
	// ErrInvalidKey indicates that a merge key column does not exist in its dataset
	ErrInvalidKey = errors.New("invalid key column")

	// ErrAmbiguousMatch indicates that a key matched multiple reference rows in strict mode
	ErrAmbiguousMatch = errors.New("ambiguous match")

	// ErrInvalidInput indicates that provided input was invalid
	ErrInvalidInput = errors.New("invalid input")

	// ErrSheetNotFound indicates that a requested worksheet does not exist
	ErrSheetNotFound = errors.New("sheet not found")

	// ErrColumnNotFound indicates that a requested column does not exist
	ErrColumnNotFound = errors.New("column not found")

	// ErrUnsupportedFormat indicates a file extension with no registered reader or writer
	ErrUnsupportedFormat = errors.New("unsupported format")

	// ErrUnsupportedEncoding indicates a declared text encoding that is not recognized
	ErrUnsupportedEncoding = errors.New("unsupported encoding")

	// ErrEmptyFile indicates a file with no header row
	ErrEmptyFile = errors.New("empty file")

	// ErrCanceled indicates that an operation was canceled
	ErrCanceled = errors.New("operation canceled")
)

// InvalidKeyError reports a merge key column that is absent from its dataset.
// Side identifies which dataset the column was looked up in ("primary" or
// "reference"); Columns carries the columns that do exist so the caller can
// present a correction.
type InvalidKeyError struct {
	Side    string
	Column  string
	Columns []string
}

// Error implements the error interface
func (e *InvalidKeyError) Error() string {
	if len(e.Columns) > 0 {
		return fmt.Sprintf("key column %q not found in %s dataset (columns: %s)",
			e.Column, e.Side, strings.Join(e.Columns, ", "))
	}
	return fmt.Sprintf("key column %q not found in %s dataset", e.Column, e.Side)
}

// Is implements errors.Is support
func (e *InvalidKeyError) Is(target error) bool {
	return target == ErrInvalidKey
}

// NewInvalidKeyError creates a new InvalidKeyError
func NewInvalidKeyError(side, column string, columns []string) *InvalidKeyError {
	return &InvalidKeyError{Side: side, Column: column, Columns: columns}
}

// AmbiguousMatchError reports a key value that matched more than one
// reference row while the merge was configured to treat that as fatal.
type AmbiguousMatchError struct {
	Key        string
	PrimaryRow int
	Matches    int
}

// Error implements the error interface
func (e *AmbiguousMatchError) Error() string {
	return fmt.Sprintf("key %q at primary row %d matched %d reference rows", e.Key, e.PrimaryRow, e.Matches)
}

// Is implements errors.Is support
func (e *AmbiguousMatchError) Is(target error) bool {
	return target == ErrAmbiguousMatch
}

// NewAmbiguousMatchError creates a new AmbiguousMatchError
func NewAmbiguousMatchError(key string, primaryRow, matches int) *AmbiguousMatchError {
	return &AmbiguousMatchError{Key: key, PrimaryRow: primaryRow, Matches: matches}
}

// ValidationError represents a validation failure
type ValidationError struct {
	Field   string
	Value   interface{}
	Message string
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation failed for field %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation failed: %s", e.Message)
}

// Is implements errors.Is support
func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}

// NewValidationError creates a new ValidationError
func NewValidationError(field string, value interface{}, message string) *ValidationError {
	return &ValidationError{Field: field, Value: value, Message: message}
}

// SheetError reports an operation against a worksheet that does not exist.
type SheetError struct {
	File   string
	Sheet  string
	Sheets []string
}

// Error implements the error interface
func (e *SheetError) Error() string {
	if len(e.Sheets) > 0 {
		return fmt.Sprintf("sheet %q not found in %s (sheets: %s)", e.Sheet, e.File, strings.Join(e.Sheets, ", "))
	}
	return fmt.Sprintf("sheet %q not found in %s", e.Sheet, e.File)
}

// Is implements errors.Is support
func (e *SheetError) Is(target error) bool {
	return target == ErrSheetNotFound
}

// NewSheetError creates a new SheetError
func NewSheetError(file, sheet string, sheets []string) *SheetError {
	return &SheetError{File: file, Sheet: sheet, Sheets: sheets}
}

// FormatError reports a file whose extension maps to no supported format.
type FormatError struct {
	Path      string
	Extension string
}

// Error implements the error interface
func (e *FormatError) Error() string {
	if e.Extension != "" {
		return fmt.Sprintf("unsupported file format %q for %s", e.Extension, e.Path)
	}
	return fmt.Sprintf("unsupported file format for %s", e.Path)
}

// Is implements errors.Is support
func (e *FormatError) Is(target error) bool {
	return target == ErrUnsupportedFormat
}

// NewFormatError creates a new FormatError
func NewFormatError(path, extension string) *FormatError {
	return &FormatError{Path: path, Extension: extension}
}

// ConfigError represents a configuration error
type ConfigError struct {
	Component string
	Message   string
	Err       error
}

// Error implements the error interface
func (e *ConfigError) Error() string {
	if e.Component != "" {
		return fmt.Sprintf("configuration error in %s: %s", e.Component, e.Message)
	}
	return fmt.Sprintf("configuration error: %s", e.Message)
}

// Unwrap implements errors.Unwrap
func (e *ConfigError) Unwrap() error {
	return e.Err
}

// NewConfigError creates a new ConfigError
func NewConfigError(component, message string, err error) *ConfigError {
	return &ConfigError{
		Component: component,
		Message:   message,
		Err:       err,
	}
}

// ParseError represents an error when parsing data formats
type ParseError struct {
	Format  string // "csv", "xlsx", "yaml", etc.
	File    string
	Line    int
	Column  int
	Message string
	Err     error
}

// Error implements the error interface
func (e *ParseError) Error() string {
	if e.File != "" && e.Line > 0 {
		return fmt.Sprintf("parse error in %s at %s:%d:%d: %s", e.Format, e.File, e.Line, e.Column, e.Message)
	}
	if e.File != "" {
		return fmt.Sprintf("parse error in %s file %s: %s", e.Format, e.File, e.Message)
	}
	return fmt.Sprintf("%s parse error: %s", e.Format, e.Message)
}

// Unwrap implements errors.Unwrap
func (e *ParseError) Unwrap() error {
	return e.Err
}

// NewParseError creates a new ParseError
func NewParseError(format, file string, message string, err error) *ParseError {
	return &ParseError{
		Format:  format,
		File:    file,
		Message: message,
		Err:     err,
	}
}

// IOError represents an error during I/O operations
type IOError struct {
	Operation string // "read", "write", "create", "delete", "open", "close"
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

// Helper functions for error checking

// IsInvalidKey checks if an error is an invalid key column error
func IsInvalidKey(err error) bool {
	return errors.Is(err, ErrInvalidKey)
}

// IsAmbiguousMatch checks if an error is an ambiguous match error
func IsAmbiguousMatch(err error) bool {
	return errors.Is(err, ErrAmbiguousMatch)
}

// IsValidationError checks if an error is a validation error
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}

// IsSheetNotFound checks if an error reports a missing worksheet
func IsSheetNotFound(err error) bool {
	return errors.Is(err, ErrSheetNotFound)
}

// IsUnsupportedFormat checks if an error reports an unsupported file format
func IsUnsupportedFormat(err error) bool {
	return errors.Is(err, ErrUnsupportedFormat)
}

// IsCanceled checks if an error is a cancellation error
func IsCanceled(err error) bool {
	return errors.Is(err, ErrCanceled)
}

// Helper wrapping functions for common patterns

// WrapValidation wraps an error as a ValidationError
func WrapValidation(field string, err error) error {
	if err == nil {
		return nil
	}
	return &ValidationError{Field: field, Message: err.Error()}
}

// WrapIO wraps an error as an IOError
func WrapIO(operation, path string, err error) error {
	if err == nil {
		return nil
	}
	return NewIOError(operation, path, err)
}

// WrapParse wraps an error as a ParseError
func WrapParse(format, file string, err error) error {
	if err == nil {
		return nil
	}
	return NewParseError(format, file, err.Error(), err)
}
