package calendar

import (
	"errors"
	"fmt"
)

// Validation error kinds, matched with errors.Is
var (
	ErrInvalidYear      = errors.New("invalid year")
	ErrInvalidPaperSize = errors.New("invalid paper size")
	ErrInvalidEventSpec = errors.New("invalid event spec")
)

// ValidationError reports which input was rejected by BuildCalendar
type ValidationError struct {
	Kind  error  // one of the Err* kinds above
	Field string // input name, e.g. "year" or "events[2].date"
	Value any
	Err   error // underlying parse error, if any
}

func (e *ValidationError) Error() string {
	msg := fmt.Sprintf("%v: %s=%v", e.Kind, e.Field, e.Value)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Unwrap exposes both the kind and the underlying cause to errors.Is/As
func (e *ValidationError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}
