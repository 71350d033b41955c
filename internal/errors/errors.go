// Package errors provides typed errors for ArixEncryptor operations.
// This enables callers to use errors.Is() and errors.As() for specific error handling.
package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for common error conditions.
// Use errors.Is(err, errors.ErrAlreadyEncrypted) to check for specific errors.
var (
	// Input validation errors
	ErrFileNotFound     = errors.New("file not found")
	ErrAlreadyEncrypted = errors.New("file is already an encrypted container")
	ErrNotEncrypted     = errors.New("file is not an encrypted container")
	ErrNoInputFile      = errors.New("no input file specified")

	// Container format errors
	ErrNotContainer     = errors.New("missing container magic tag")
	ErrTruncated        = errors.New("container is truncated")
	ErrExtensionTooLong = errors.New("extension exceeds 255 bytes")

	// Crypto errors
	ErrRandFailure    = errors.New("crypto/rand failure")
	ErrKeyDerivation  = errors.New("key derivation failed")
	ErrInvalidPadding = errors.New("invalid padding")
	ErrCorruptData    = errors.New("ciphertext corrupted")

	// Post-decryption verification
	ErrIntegrity = errors.New("integrity tag mismatch")

	// Operation errors
	ErrCancelled = errors.New("operation cancelled")
)

// FileError represents an error during file operations.
type FileError struct {
	Op   string // Operation: "open", "read", "write", "stat", "create", "rename", "remove"
	Path string // File path
	Err  error  // Underlying error
}

func (e *FileError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
	}
	return fmt.Sprintf("%s %s failed", e.Op, e.Path)
}

func (e *FileError) Unwrap() error {
	return e.Err
}

// NewFileError creates a new FileError.
func NewFileError(op, path string, err error) *FileError {
	return &FileError{Op: op, Path: path, Err: err}
}

// HeaderError represents an error in container header parsing or construction.
type HeaderError struct {
	Field string // Header field that caused the error
	Err   error  // Underlying error
}

func (e *HeaderError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("header %s: %v", e.Field, e.Err)
	}
	return fmt.Sprintf("header %s invalid", e.Field)
}

func (e *HeaderError) Unwrap() error {
	return e.Err
}

// NewHeaderError creates a new HeaderError.
func NewHeaderError(field string, err error) *HeaderError {
	return &HeaderError{Field: field, Err: err}
}

// Is checks if target matches any of our sentinel errors.
// This is a convenience function for common error checks.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
func As(err error, target any) bool {
	return errors.As(err, target)
}

// New returns an error with the given text.
func New(text string) error {
	return errors.New(text)
}

// Wrap wraps an error with additional context.
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// IsCryptoFailure reports whether the error indicates a cryptographic fault
// during decryption. Wrong password and corrupted ciphertext are deliberately
// indistinguishable here.
func IsCryptoFailure(err error) bool {
	return errors.Is(err, ErrKeyDerivation) ||
		errors.Is(err, ErrInvalidPadding) ||
		errors.Is(err, ErrCorruptData)
}

// IsIntegrityFailure reports whether the error indicates a plaintext
// integrity tag mismatch after decryption.
func IsIntegrityFailure(err error) bool {
	return errors.Is(err, ErrIntegrity)
}

// IsCancelled checks if the error indicates a cancelled operation.
func IsCancelled(err error) bool {
	return errors.Is(err, ErrCancelled)
}
