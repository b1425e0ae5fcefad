package apperror

const (
	// Client errors (4xx)
	CodeInvalidInput = "INVALID_INPUT"
	CodeUnauthorized = "UNAUTHORIZED"
	CodeForbidden    = "FORBIDDEN"
	CodeNotFound     = "NOT_FOUND"
	CodeConflict     = "CONFLICT"

	// Server errors (5xx)
	CodeStorageFailure     = "STORAGE_FAILURE"
	CodeIrrecoverableState = "IRRECOVERABLE_STATE"
	CodeInternalError      = "INTERNAL_ERROR"
)
