package report

import (
	"errors"
	"net/http"

	reporterrors "github.com/AvihaiAdler/onereport/internal/report/errors"
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
	if errors.As(err, &pgErr) && pgErr.Code == "23505" && pgErr.ConstraintName == "uq_reports_date_company" {
		return reporterrors.ErrReportAlreadyOpen
	}

	return apperror.Wrap(err, apperror.CodeStorageFailure,
		"The storage layer rejected the operation", http.StatusInternalServerError)
}

// isDuplicateReport spots the unique-index collision raised when two callers
// open the same (date, company) report at once.
func isDuplicateReport(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505" && pgErr.ConstraintName == "uq_reports_date_company"
}
