package pricing

import (
	"errors"
	"fmt"
)

// ErrorKind classifies a pricing calculation failure
type ErrorKind string

const (
	// KindUnknownVehicleCategory means the trip names a category with no
	// configured rates. Fatal: there is no safe fallback price.
	KindUnknownVehicleCategory ErrorKind = "unknown_vehicle_category"
	// KindUnknownCode means an airport or zone code has no fee entry.
	// Non-fatal: the fee is treated as zero so quoting stays available
	// while reference data lags the UI.
	KindUnknownCode ErrorKind = "unknown_airport_or_zone_code"
	// KindInvalidReturnSpacing means the return leg is scheduled closer
	// than the configured minimum gap.
	KindInvalidReturnSpacing ErrorKind = "invalid_return_leg_spacing"
	// KindInvalidRounding means the rounding direction in config is not
	// up, down or nearest. Treated as config corruption.
	KindInvalidRounding ErrorKind = "invalid_rounding_direction"
	// KindNegativeInput means distance, duration or waiting time is below zero.
	KindNegativeInput ErrorKind = "negative_input_value"
	// KindInvalidHours means an hourly trip is outside the configured
	// maximum hours, or a fleet booking has no vehicles.
	KindInvalidHours ErrorKind = "invalid_hours"
)

// Error is a typed pricing calculation error
type Error struct {
	Kind    ErrorKind
	Field   string
	Message string
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s: %s (%s)", e.Kind, e.Message, e.Field)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func newError(kind ErrorKind, field, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Field: field, Message: fmt.Sprintf(format, args...)}
}

// IsKind reports whether err is a pricing Error of the given kind
func IsKind(err error, kind ErrorKind) bool {
	var pe *Error
	if errors.As(err, &pe) {
		return pe.Kind == kind
	}
	return false
}
