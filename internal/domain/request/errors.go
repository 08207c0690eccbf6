package request

import (
	"errors"
	"strings"
)

var (
	ErrNotFound = errors.New("service request not found")

	// Authorization: the actor has no business acting here.
	ErrNotApprover  = errors.New("employee is not an assigned approver for this request")
	ErrCannotSubmit = errors.New("directors and admins cannot submit requests")
	ErrNotOwner     = errors.New("request belongs to another employee")

	// State conflicts: right actor, wrong moment. The record is never
	// mutated on these.
	ErrStageDecided   = errors.New("approval stage already decided")
	ErrManagerPending = errors.New("manager approval is pending")
	ErrNotPending     = errors.New("cannot modify a processed request")
)

// IsAuthorization reports whether err is an actor-permission failure.
func IsAuthorization(err error) bool {
	return errors.Is(err, ErrNotApprover) ||
		errors.Is(err, ErrCannotSubmit) ||
		errors.Is(err, ErrNotOwner)
}

// IsStateConflict reports whether err means the request is not in a
// state that permits the attempted action.
func IsStateConflict(err error) bool {
	return errors.Is(err, ErrStageDecided) ||
		errors.Is(err, ErrManagerPending) ||
		errors.Is(err, ErrNotPending)
}

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError accumulates field-level problems so the caller sees
// every bad field at once, not just the first.
type ValidationError struct {
	Fields []FieldError `json:"fields"`
}

func (e *ValidationError) Add(field, message string) {
	e.Fields = append(e.Fields, FieldError{Field: field, Message: message})
}

func (e *ValidationError) Empty() bool { return len(e.Fields) == 0 }

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return "validation failed"
	}
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Field+": "+f.Message)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// AsValidation unwraps err into a *ValidationError if it is one.
func AsValidation(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}
