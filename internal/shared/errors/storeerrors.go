package errors

import (
	stderrors "errors"
	"fmt"
)

// PersistenceError wraps a store failure with the operation and entity it happened on.
// The cause is kept for logs; responses only expose the error kind.
type PersistenceError struct {
	Op     string
	Entity string
	Err    error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("persistence: %s %s: %v", e.Op, e.Entity, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}

// NewPersistenceError creates a PersistenceError for op on entity.
func NewPersistenceError(op, entity string, err error) *PersistenceError {
	return &PersistenceError{Op: op, Entity: entity, Err: err}
}

// GetPersistenceError extracts a PersistenceError from the error chain.
func GetPersistenceError(err error) *PersistenceError {
	var pErr *PersistenceError
	if stderrors.As(err, &pErr) {
		return pErr
	}
	return nil
}

// IsPersistenceError checks if the error chain contains a PersistenceError
func IsPersistenceError(err error) bool {
	return GetPersistenceError(err) != nil
}

// CredentialFormatError reports a stored password hash that cannot be decoded.
// It is distinct from a password mismatch.
type CredentialFormatError struct {
	Reason string
}

func (e *CredentialFormatError) Error() string {
	return "malformed credential record: " + e.Reason
}

// NewCredentialFormatError creates a CredentialFormatError
func NewCredentialFormatError(reason string) *CredentialFormatError {
	return &CredentialFormatError{Reason: reason}
}

// IsCredentialFormatError checks if the error chain contains a CredentialFormatError
func IsCredentialFormatError(err error) bool {
	var cErr *CredentialFormatError
	return stderrors.As(err, &cErr)
}

// SinkError reports a notification delivery failure. It is logged by the
// dispatcher and never returned to request handlers.
type SinkError struct {
	Sink      string
	Recipient string
	Err       error
}

func (e *SinkError) Error() string {
	return fmt.Sprintf("notification sink %s: deliver to %s: %v", e.Sink, e.Recipient, e.Err)
}

func (e *SinkError) Unwrap() error {
	return e.Err
}

// NewSinkError creates a SinkError
func NewSinkError(sink, recipient string, err error) *SinkError {
	return &SinkError{Sink: sink, Recipient: recipient, Err: err}
}

// IsSinkError checks if the error chain contains a SinkError
func IsSinkError(err error) bool {
	var sErr *SinkError
	return stderrors.As(err, &sErr)
}
