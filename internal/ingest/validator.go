package ingest

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Row is a validated intake record. Skills stays a raw comma-separated
// string here; extraction happens in a later step.
type Row struct {
	Name       string `validate:"required,min=1"`
	Email      string `validate:"required,email"`
	Position   string `validate:"required,min=1"`
	Skills     string `validate:"required,min=1"`
	Experience string
}

// RowError reports which field of a row failed validation. One row's error
// never affects the rest of a batch.
type RowError struct {
	Field   string
	Message string
}

func (e *RowError) Error() string {
	return fmt.Sprintf("invalid row: %s %s", strings.ToLower(e.Field), e.Message)
}

var rowValidator = validator.New()

// ValidateRecord normalizes one parsed record into a Row or returns a
// *RowError describing the first failing field.
func ValidateRecord(rec Record) (Row, error) {
	row := Row{
		Name:       strings.TrimSpace(rec["name"]),
		Email:      strings.TrimSpace(rec["email"]),
		Position:   strings.TrimSpace(rec["position"]),
		Skills:     strings.TrimSpace(rec["skills"]),
		Experience: strings.TrimSpace(rec["experience"]),
	}

	if err := rowValidator.Struct(row); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			fe := verrs[0]
			return Row{}, &RowError{Field: fe.Field(), Message: messageForTag(fe)}
		}
		return Row{}, &RowError{Field: "row", Message: err.Error()}
	}

	return row, nil
}

func messageForTag(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required", "min":
		return "is required"
	case "email":
		return "must be a valid email address"
	default:
		return fmt.Sprintf("failed %s validation", fe.Tag())
	}
}
