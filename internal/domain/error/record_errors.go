// Package error defines domain-specific errors for the Vault application.
package error

import "errors"

// Record store domain errors, shared by every entity collection.
var (
	// ErrRecordNotFound is returned when a record is not found in its collection.
	ErrRecordNotFound = errors.New("record not found")

	// ErrUnauthorizedRecordAccess is returned when a record belongs to another user.
	ErrUnauthorizedRecordAccess = errors.New("unauthorized access to record")

	// ErrInvalidAmount is returned when a monetary field is negative where a
	// non-negative magnitude is required.
	ErrInvalidAmount = errors.New("amount must not be negative")
)

// RecordErrorKind classifies a record error per the failure taxonomy:
// fetch failures block rendering of a collection, mutation failures are
// returned to the caller without touching cached state, and validation
// failures are rejected before the store is contacted.
type RecordErrorKind string

const (
	RecordErrorFetch      RecordErrorKind = "fetch"
	RecordErrorMutation   RecordErrorKind = "mutation"
	RecordErrorValidation RecordErrorKind = "validation"
)

// RecordErrorCode defines error codes for record errors.
// Format: REC-XXYYYY where XX is category and YYYY is specific error.
type RecordErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeRecordMissingFields RecordErrorCode = "REC-010001"
	ErrCodeRecordInvalidAmount RecordErrorCode = "REC-010002"
	ErrCodeRecordInvalidEnum   RecordErrorCode = "REC-010003"
	ErrCodeRecordInvalidDate   RecordErrorCode = "REC-010004"

	// Access errors (02XXXX)
	ErrCodeRecordNotFound     RecordErrorCode = "REC-020001"
	ErrCodeRecordUnauthorized RecordErrorCode = "REC-020002"

	// Store errors (03XXXX)
	ErrCodeRecordFetchFailed    RecordErrorCode = "REC-030001"
	ErrCodeRecordMutationFailed RecordErrorCode = "REC-030002"
)

// RecordError represents a record store error with kind, code and message.
type RecordError struct {
	Kind    RecordErrorKind
	Code    RecordErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *RecordError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *RecordError) Unwrap() error {
	return e.Err
}

// NewRecordError creates a new RecordError.
func NewRecordError(kind RecordErrorKind, code RecordErrorCode, message string, err error) *RecordError {
	return &RecordError{
		Kind:    kind,
		Code:    code,
		Message: message,
		Err:     err,
	}
}
