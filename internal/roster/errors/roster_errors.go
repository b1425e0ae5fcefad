package rostererrors

import (
	"net/http"

	"github.com/AvihaiAdler/onereport/internal/shared/apperror"
)

var (
	ErrPersonnelNotFound = apperror.New(
		apperror.CodeNotFound,
		"Personnel number is not in the roster",
		http.StatusNotFound,
	)
	ErrUserNotFound = apperror.New(
		apperror.CodeNotFound,
		"No account exists for this email",
		http.StatusNotFound,
	)
	ErrPersonnelAlreadyRegistered = apperror.New(
		apperror.CodeConflict,
		"An active roster entry with this personnel number already exists",
		http.StatusConflict,
	)
	ErrEmailAlreadyRegistered = apperror.New(
		apperror.CodeConflict,
		"An active account with this email is already registered",
		http.StatusConflict,
	)
	ErrRoleTooPrivileged = apperror.New(
		apperror.CodeForbidden,
		"You may not assign a role more privileged than your own",
		http.StatusForbidden,
	)
	ErrSelfDeactivation = apperror.New(
		apperror.CodeForbidden,
		"You may not deactivate yourself",
		http.StatusForbidden,
	)
	ErrSelfRoleChange = apperror.New(
		apperror.CodeForbidden,
		"You may not change your own role",
		http.StatusForbidden,
	)
	ErrSelfDemotion = apperror.New(
		apperror.CodeForbidden,
		"You may not demote yourself",
		http.StatusForbidden,
	)

	// Compensation after a partial promotion/demotion failed as well. The
	// identity may exist as neither a roster entry nor an account.
	ErrPromotionInterrupted = apperror.New(
		apperror.CodeIrrecoverableState,
		"Promotion failed and the previous roster entry could not be restored",
		http.StatusInternalServerError,
	)
	ErrDemotionInterrupted = apperror.New(
		apperror.CodeIrrecoverableState,
		"Demotion failed and the previous account could not be restored",
		http.StatusInternalServerError,
	)
)
