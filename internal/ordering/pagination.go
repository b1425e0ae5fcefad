package ordering

import (
	"strconv"

	"github.com/AvihaiAdler/onereport/internal/shared/apperror"
)

const (
	DefaultPage    = 1
	DefaultPerPage = 20
)

type Pagination struct {
	Page    int
	PerPage int
}

func (p Pagination) Offset() int {
	return (p.Page - 1) * p.PerPage
}

// ParsePagination validates page/per_page request values. Empty strings fall
// back to the defaults; anything non-numeric or non-positive is rejected,
// never silently clamped.
func ParsePagination(page, perPage string) (Pagination, error) {
	p := Pagination{Page: DefaultPage, PerPage: DefaultPerPage}

	if page != "" {
		n, err := strconv.Atoi(page)
		if err != nil || n <= 0 {
			return Pagination{}, apperror.InvalidValue("page", page)
		}
		p.Page = n
	}

	if perPage != "" {
		n, err := strconv.Atoi(perPage)
		if err != nil || n <= 0 {
			return Pagination{}, apperror.InvalidValue("per_page", perPage)
		}
		p.PerPage = n
	}

	return p, nil
}

// Page is one page of a list query together with the information the
// presentation layer needs to render pagination controls.
type Page[T any] struct {
	Items   []T
	Page    int
	PerPage int
	Total   int64
}
