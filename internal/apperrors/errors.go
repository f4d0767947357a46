package apperrors

import (
	"errors"
	"fmt"
)

// Lookup errors indicate a requested object does not exist.
var (
	// ErrNotFound indicates a workspace, document or bin item could not be located.
	ErrNotFound = errors.New("not found")

	// ErrDuplicateName indicates a create or rename would violate name uniqueness.
	ErrDuplicateName = errors.New("duplicate name")
)

// Cryptographic errors.
var (
	// ErrDecryptionFailed indicates a wrong password or corrupted ciphertext.
	// The two cases are deliberately indistinguishable: after the fact they
	// look identical, and reporting which one occurred would leak information.
	ErrDecryptionFailed = errors.New("wrong password or corrupted data")
)

// ErrIO indicates an underlying storage read or write failure (disk full,
// permission denied). A failed save never disturbs the previous document;
// the caller keeps the in-memory mutation and may retry.
var ErrIO = errors.New("i/o failure")

// IO wraps err as an ErrIO for the given operation.
func IO(op string, err error) error {
	return fmt.Errorf("%s: %w: %w", op, ErrIO, err)
}

// MalformedError indicates a plaintext document whose structure does not
// match the expected shape. Path names the offending field.
type MalformedError struct {
	Path string
	Err  error
}

func (e *MalformedError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("malformed document: %v", e.Err)
	}
	return fmt.Sprintf("malformed document at %q: %v", e.Path, e.Err)
}

func (e *MalformedError) Unwrap() error { return e.Err }

// Malformed wraps err as a MalformedError at the given field path.
func Malformed(path string, err error) error {
	return &MalformedError{Path: path, Err: err}
}

// IsMalformed reports whether err is (or wraps) a MalformedError.
func IsMalformed(err error) bool {
	var me *MalformedError
	return errors.As(err, &me)
}
