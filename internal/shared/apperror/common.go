package apperror

import "net/http"

var (
	ErrNotFound = New(
		CodeNotFound,
		"Resource not found",
		http.StatusNotFound,
	)

	ErrForbidden = New(
		CodeForbidden,
		"You do not have permission to perform this operation",
		http.StatusForbidden,
	)

	ErrUnauthorized = New(
		CodeUnauthorized,
		"Authentication is required",
		http.StatusUnauthorized,
	)

	ErrInvalidInput = New(
		CodeInvalidInput,
		"The provided input is invalid",
		http.StatusBadRequest,
	)

	ErrStorageFailure = New(
		CodeStorageFailure,
		"The storage layer rejected the operation",
		http.StatusInternalServerError,
	)

	// ErrIrrecoverableState marks a failed compensating action after a
	// partial multi-step failure. Data may be inconsistent; callers must not
	// retry blindly.
	ErrIrrecoverableState = New(
		CodeIrrecoverableState,
		"The system may be in an inconsistent state",
		http.StatusInternalServerError,
	)

	ErrInternal = New(
		CodeInternalError,
		"An unexpected error occurred",
		http.StatusInternalServerError,
	)
)

func InvalidValue(what, value string) *AppError {
	return New(CodeInvalidInput, what+" "+value+" is not supported", http.StatusBadRequest)
}
