package estimator

import (
	"errors"
	"fmt"
)

// InvalidGeometryError reports a room or opening input that is not usable.
type InvalidGeometryError struct {
	Field  string
	Value  any
	Reason string
}

func (e *InvalidGeometryError) Error() string {
	reason := e.Reason
	if reason == "" {
		reason = "must be greater than 0"
	}
	return fmt.Sprintf("invalid geometry: %s %s (got %v)", e.Field, reason, e.Value)
}

// InvalidSpecError reports a block spec or option that cannot produce a count:
// non-positive volume or area, unknown unit, or a missing wall thickness.
type InvalidSpecError struct {
	Field  string
	Value  any
	Reason string
}

func (e *InvalidSpecError) Error() string {
	reason := e.Reason
	if reason == "" {
		reason = "must be greater than 0"
	}
	return fmt.Sprintf("invalid block spec: %s %s (got %v)", e.Field, reason, e.Value)
}

// IsInvalidGeometry reports whether err wraps an InvalidGeometryError.
func IsInvalidGeometry(err error) bool {
	var ge *InvalidGeometryError
	return errors.As(err, &ge)
}

// IsInvalidSpec reports whether err wraps an InvalidSpecError.
func IsInvalidSpec(err error) bool {
	var se *InvalidSpecError
	return errors.As(err, &se)
}
