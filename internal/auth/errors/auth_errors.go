package autherrors

import (
	"net/http"

	"github.com/AvihaiAdler/onereport/internal/shared/apperror"
)

var (
	ErrUnknownIdentity = apperror.New(
		apperror.CodeUnauthorized,
		"No account is registered for this identity",
		http.StatusUnauthorized,
	)

	ErrAccountInactive = apperror.New(
		apperror.CodeUnauthorized,
		"This account has been deactivated",
		http.StatusUnauthorized,
	)

	ErrInvalidToken = apperror.New(
		apperror.CodeUnauthorized,
		"Invalid token",
		http.StatusUnauthorized,
	)

	ErrTokenExpired = apperror.New(
		apperror.CodeUnauthorized,
		"Token has expired",
		http.StatusUnauthorized,
	)

	ErrTokenGenerationFailed = apperror.New(
		apperror.CodeInternalError,
		"Could not generate a session token",
		http.StatusInternalServerError,
	)
)
