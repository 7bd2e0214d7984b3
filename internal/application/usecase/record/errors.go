package record

import (
	domainerror "github.com/vault-finance/backend/internal/domain/error"
)

// FetchError wraps a store read failure in the record error taxonomy.
func FetchError(message string, err error) error {
	return domainerror.NewRecordError(
		domainerror.RecordErrorFetch,
		domainerror.ErrCodeRecordFetchFailed,
		message,
		err,
	)
}

// MutationError wraps a store write failure in the record error taxonomy.
// Callers return it without touching cached state.
func MutationError(message string, err error) error {
	return domainerror.NewRecordError(
		domainerror.RecordErrorMutation,
		domainerror.ErrCodeRecordMutationFailed,
		message,
		err,
	)
}

// NotFound reports a record missing from its collection.
func NotFound(message string) error {
	return domainerror.NewRecordError(
		domainerror.RecordErrorFetch,
		domainerror.ErrCodeRecordNotFound,
		message,
		domainerror.ErrRecordNotFound,
	)
}

// Unauthorized reports a record owned by another user.
func Unauthorized(message string) error {
	return domainerror.NewRecordError(
		domainerror.RecordErrorFetch,
		domainerror.ErrCodeRecordUnauthorized,
		message,
		domainerror.ErrUnauthorizedRecordAccess,
	)
}

// Validation rejects invalid input before the store is contacted.
func Validation(code domainerror.RecordErrorCode, message string) error {
	return domainerror.NewRecordError(
		domainerror.RecordErrorValidation,
		code,
		message,
		nil,
	)
}

// InvalidAmount rejects a negative monetary magnitude.
func InvalidAmount(message string) error {
	return domainerror.NewRecordError(
		domainerror.RecordErrorValidation,
		domainerror.ErrCodeRecordInvalidAmount,
		message,
		domainerror.ErrInvalidAmount,
	)
}
