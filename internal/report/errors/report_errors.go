package reporterrors

import (
	"net/http"

	"github.com/AvihaiAdler/onereport/internal/shared/apperror"
)

var (
	ErrReportNotFound = apperror.New(
		apperror.CodeNotFound,
		"Report not found",
		http.StatusNotFound,
	)

	ErrNoReportsForDate = apperror.New(
		apperror.CodeNotFound,
		"No reports were submitted for this date",
		http.StatusNotFound,
	)

	ErrNoPersonnelForDate = apperror.New(
		apperror.CodeNotFound,
		"No personnel were registered as of this date",
		http.StatusNotFound,
	)

	ErrReportAlreadyOpen = apperror.New(
		apperror.CodeConflict,
		"A report for this date and company already exists",
		http.StatusConflict,
	)
)
