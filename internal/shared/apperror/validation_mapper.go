package apperror

import (
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

func formatFieldName(s string) string {
	s = strings.ReplaceAll(s, "_", " ")
	caser := cases.Title(language.English)
	return caser.String(s)
}

// MapValidationError turns a gin binding error into an InvalidInput AppError
// keyed on the first failing field.
func MapValidationError(err error) error {
	if errs, ok := err.(validator.ValidationErrors); ok {
		e := errs[0]
		field := formatFieldName(e.Field())

		switch e.Tag() {
		case "required":
			return New(CodeInvalidInput, field+" is required", http.StatusBadRequest)
		default:
			return New(CodeInvalidInput, field+" is invalid", http.StatusBadRequest)
		}
	}

	return New(CodeInvalidInput, "Invalid input", http.StatusBadRequest)
}
