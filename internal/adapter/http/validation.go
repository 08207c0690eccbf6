package http

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/rifky200804/ez-request-web/internal/domain/request"
)

// ErrorResponse is the uniform error payload: a summary plus optional
// field-level details.
type ErrorResponse struct {
	Error   string               `json:"error"`
	Details []request.FieldError `json:"details,omitempty"`
}

type CustomValidator struct{ v *validator.Validate }

func NewValidator() *CustomValidator {
	v := validator.New()

	// Report fields under their json names, not Go struct names.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return fld.Name
		}
		return name
	})

	return &CustomValidator{v: v}
}

func (cv *CustomValidator) Validate(i any) error { return cv.v.Struct(i) }

// ToFieldErrors maps validator.ValidationErrors to readable messages.
func ToFieldErrors(err error) []request.FieldError {
	ve, ok := err.(validator.ValidationErrors)
	if !ok {
		return []request.FieldError{{Field: "_", Message: err.Error()}}
	}
	out := make([]request.FieldError, 0, len(ve))
	for _, e := range ve {
		field := e.Field()
		switch e.Tag() {
		case "required":
			out = append(out, request.FieldError{Field: field, Message: "is required"})
		case "uuid4":
			out = append(out, request.FieldError{Field: field, Message: "must be a UUID"})
		case "datetime":
			out = append(out, request.FieldError{Field: field, Message: "must be a date in YYYY-MM-DD format"})
		case "oneof":
			out = append(out, request.FieldError{Field: field, Message: "must be one of: " + e.Param()})
		case "url":
			out = append(out, request.FieldError{Field: field, Message: "must be a valid URL"})
		case "max":
			out = append(out, request.FieldError{Field: field, Message: "must be at most " + e.Param() + " characters"})
		default:
			out = append(out, request.FieldError{Field: field, Message: e.Tag() + " validation failed"})
		}
	}
	return out
}
