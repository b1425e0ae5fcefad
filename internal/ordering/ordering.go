package ordering

import (
	"strings"

	"github.com/AvihaiAdler/onereport/internal/shared/apperror"
)

// Direction is the two-valued sort direction shared by every list query.
type Direction string

const (
	Asc  Direction = "ASC"
	Desc Direction = "DESC"
)

func ParseDirection(s string) (Direction, error) {
	switch Direction(strings.ToUpper(s)) {
	case Asc:
		return Asc, nil
	case Desc:
		return Desc, nil
	}
	return "", apperror.InvalidValue("order", s)
}

// Ordering is a validated sort specification. Column is the case-normalized
// database column; the primary key is always appended as a stable tie-break
// so equal sort keys still yield a deterministic order.
type Ordering struct {
	Column    string
	Direction Direction
	tieBreak  string
}

// Clause renders the ORDER BY expression, tie-break included.
func (o Ordering) Clause() string {
	clause := o.Column + " " + string(o.Direction)
	if o.tieBreak != "" && o.tieBreak != o.Column {
		clause += ", " + o.tieBreak + " ASC"
	}
	return clause
}

// PersonnelKey is the closed set of roster sort keys.
type PersonnelKey string

const (
	PersonnelByID        PersonnelKey = "ID"
	PersonnelByFirstName PersonnelKey = "FIRST_NAME"
	PersonnelByLastName  PersonnelKey = "LAST_NAME"
	PersonnelByCompany   PersonnelKey = "COMPANY"
	PersonnelByPlatoon   PersonnelKey = "PLATOON"
)

func ParsePersonnelOrdering(key, direction string) (Ordering, error) {
	k := PersonnelKey(strings.ToUpper(key))
	switch k {
	case PersonnelByID, PersonnelByFirstName, PersonnelByLastName, PersonnelByCompany, PersonnelByPlatoon:
	default:
		return Ordering{}, apperror.InvalidValue("order_by", key)
	}

	dir, err := ParseDirection(direction)
	if err != nil {
		return Ordering{}, err
	}
	return Ordering{Column: strings.ToLower(string(k)), Direction: dir, tieBreak: "id"}, nil
}

// UserKey is the closed set of account sort keys.
type UserKey string

const (
	UserByEmail     UserKey = "EMAIL"
	UserByFirstName UserKey = "FIRST_NAME"
	UserByLastName  UserKey = "LAST_NAME"
	UserByCompany   UserKey = "COMPANY"
)

func ParseUserOrdering(key, direction string) (Ordering, error) {
	k := UserKey(strings.ToUpper(key))
	switch k {
	case UserByEmail, UserByFirstName, UserByLastName, UserByCompany:
	default:
		return Ordering{}, apperror.InvalidValue("order_by", key)
	}

	dir, err := ParseDirection(direction)
	if err != nil {
		return Ordering{}, err
	}
	return Ordering{Column: strings.ToLower(string(k)), Direction: dir, tieBreak: "id"}, nil
}

// ParseReportOrdering validates the report listing order. Reports are only
// ever ordered by date; the surrogate id breaks ties.
func ParseReportOrdering(direction string) (Ordering, error) {
	dir, err := ParseDirection(direction)
	if err != nil {
		return Ordering{}, err
	}
	return Ordering{Column: "date", Direction: dir, tieBreak: "id"}, nil
}
