package roster

import (
	"errors"
	"net/http"

	rostererrors "github.com/AvihaiAdler/onereport/internal/roster/errors"
	"github.com/AvihaiAdler/onereport/internal/shared/apperror"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

func mapStorageError(err error, notFound *apperror.AppError) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return notFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		switch pgErr.ConstraintName {
		case "uq_users_email":
			return rostererrors.ErrEmailAlreadyRegistered
		case "personnel_pkey", "users_pkey":
			return apperror.New(
				apperror.CodeConflict,
				"An identity with this personnel number already exists",
				http.StatusConflict,
			)
		}
	}

	return apperror.Wrap(err, apperror.CodeStorageFailure,
		"The storage layer rejected the operation", http.StatusInternalServerError)
}
