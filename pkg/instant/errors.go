// SPDX-License-Identifier: MPL-2.0

package instant

import (
	"errors"
	"fmt"

	"github.com/tzkit/tzkit/pkg/tz"
)

var (
	// ErrAmbiguousTime is the sentinel error wrapped by AmbiguousTimeError.
	ErrAmbiguousTime = errors.New("ambiguous local time")
	// ErrNonexistentTime is the sentinel error wrapped by NonexistentTimeError.
	ErrNonexistentTime = errors.New("nonexistent local time")
	// ErrNaiveConversion is the sentinel error wrapped by NaiveConversionError.
	ErrNaiveConversion = errors.New("naive instant has no epoch representation")
	// ErrNaiveProjection is the sentinel error wrapped by NaiveProjectionError.
	ErrNaiveProjection = errors.New("naive instant cannot be projected")
	// ErrTypeMismatch is the sentinel error wrapped by TypeMismatchError.
	ErrTypeMismatch = errors.New("epoch value is not numeric")
	// ErrInvalidFields is the sentinel error wrapped by InvalidFieldsError.
	ErrInvalidFields = errors.New("invalid calendar fields")
	// ErrNonUTCNow is returned by Now when a zone other than UTC is requested.
	ErrNonUTCNow = errors.New("current-time reads support UTC only")
)

type (
	// AmbiguousTimeError is returned when local fields without an explicit
	// offset map to two distinct instants on the given zone (a DST fall-back
	// duplicate). Recoverable by supplying an explicit offset or by opting
	// into guess mode. It wraps ErrAmbiguousTime.
	AmbiguousTimeError struct {
		Fields Fields
		Zone   tz.Zone
	}

	// NonexistentTimeError is returned when local fields correspond to no
	// instant on the given zone (a DST spring-forward gap). Never recoverable
	// by guessing. It wraps ErrNonexistentTime.
	NonexistentTimeError struct {
		Fields Fields
		Zone   tz.Zone
	}

	// NaiveConversionError is returned when an operation that requires a
	// physical instant receives a naive value. It wraps ErrNaiveConversion.
	NaiveConversionError struct {
		Op string
	}

	// NaiveProjectionError is returned when a naive instant, or the naive
	// marker as a target, is passed to ProjectToZone. There is no instant to
	// re-express. It wraps ErrNaiveProjection.
	NaiveProjectionError struct {
		Target tz.Zone
	}

	// TypeMismatchError is returned by EpochValue for values that cannot be
	// coerced to epoch seconds. It wraps ErrTypeMismatch.
	TypeMismatchError struct {
		Value any
	}

	// InvalidFieldsError is returned when calendar fields are out of range.
	// It wraps ErrInvalidFields.
	InvalidFieldsError struct {
		Fields Fields
		Reason string
	}
)

// Error implements the error interface.
func (e *AmbiguousTimeError) Error() string {
	return fmt.Sprintf("time %s is ambiguous on time zone %s without an offset", e.Fields, e.Zone)
}

// Unwrap returns ErrAmbiguousTime for errors.Is() compatibility.
func (e *AmbiguousTimeError) Unwrap() error { return ErrAmbiguousTime }

// Error implements the error interface.
func (e *NonexistentTimeError) Error() string {
	return fmt.Sprintf("time %s does not exist on time zone %s", e.Fields, e.Zone)
}

// Unwrap returns ErrNonexistentTime for errors.Is() compatibility.
func (e *NonexistentTimeError) Unwrap() error { return ErrNonexistentTime }

// Error implements the error interface.
func (e *NaiveConversionError) Error() string {
	return fmt.Sprintf("cannot perform %s on a naive instant", e.Op)
}

// Unwrap returns ErrNaiveConversion for errors.Is() compatibility.
func (e *NaiveConversionError) Unwrap() error { return ErrNaiveConversion }

// Error implements the error interface.
func (e *NaiveProjectionError) Error() string {
	if e.Target.IsNaive() {
		return "cannot project an instant onto the naive marker"
	}
	return fmt.Sprintf("cannot project a naive instant onto time zone %s", e.Target)
}

// Unwrap returns ErrNaiveProjection for errors.Is() compatibility.
func (e *NaiveProjectionError) Unwrap() error { return ErrNaiveProjection }

// Error implements the error interface.
func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("epoch value must be numeric, got %T", e.Value)
}

// Unwrap returns ErrTypeMismatch for errors.Is() compatibility.
func (e *TypeMismatchError) Unwrap() error { return ErrTypeMismatch }

// Error implements the error interface.
func (e *InvalidFieldsError) Error() string {
	return fmt.Sprintf("invalid calendar fields %s: %s", e.Fields, e.Reason)
}

// Unwrap returns ErrInvalidFields for errors.Is() compatibility.
func (e *InvalidFieldsError) Unwrap() error { return ErrInvalidFields }
