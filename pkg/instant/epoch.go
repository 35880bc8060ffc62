// SPDX-License-Identifier: MPL-2.0

package instant

import (
	"math"
	"strconv"

	"github.com/tzkit/tzkit/pkg/tz"
)

// ToEpoch converts an instant to signed, possibly-fractional epoch seconds
// (seconds since 1970-01-01T00:00:00 UTC, proleptic Gregorian, no leap
// seconds). The fractional part encodes the microseconds. Fails with
// NaiveConversionError on naive instants; the computation relies only on the
// instant's own zone and offset, never the process's local zone setting.
func ToEpoch(i Instant) (float64, error) {
	if i.IsNaive() {
		return 0, &NaiveConversionError{Op: "epoch conversion"}
	}
	sec, usec := i.unixParts()
	if usec == 0 {
		return float64(sec), nil
	}
	return float64(sec) + float64(usec)/1e6, nil
}

// ToEpochIn is ToEpoch with a zone override: the instant's fields are first
// localized onto z via the zone database's forward rule, then converted. The
// naive marker as override behaves like plain ToEpoch.
func ToEpochIn(i Instant, z tz.Zone) (float64, error) {
	if z.IsNaive() {
		return ToEpoch(i)
	}
	return ToEpoch(localize(i.fields, z))
}

// FromEpoch converts epoch seconds to an instant on the given zone: the value
// is broken down as a UTC calendar datetime, tagged UTC, then projected onto
// z. The naive marker defaults to UTC. The microsecond part is recovered by
// rounding the fractional seconds.
func FromEpoch(s float64, z tz.Zone) Instant {
	sec := int64(math.Floor(s))
	usec := int(math.Round((s - math.Floor(s)) * 1e6))
	if usec == 1e6 {
		sec++
		usec = 0
	}
	return fromUnixParts(sec, usec, z)
}

// EpochValue coerces a dynamically-typed value (a decoded JSON number, a CLI
// argument) to epoch seconds. Numeric types and numeric strings are accepted;
// anything else fails with TypeMismatchError.
func EpochValue(v any) (float64, error) {
	switch n := v.(type) {
	case float64:
		return n, nil
	case float32:
		return float64(n), nil
	case int:
		return float64(n), nil
	case int8:
		return float64(n), nil
	case int16:
		return float64(n), nil
	case int32:
		return float64(n), nil
	case int64:
		return float64(n), nil
	case uint:
		return float64(n), nil
	case uint8:
		return float64(n), nil
	case uint16:
		return float64(n), nil
	case uint32:
		return float64(n), nil
	case uint64:
		return float64(n), nil
	case string:
		f, err := strconv.ParseFloat(n, 64)
		if err != nil {
			return 0, &TypeMismatchError{Value: v}
		}
		return f, nil
	default:
		return 0, &TypeMismatchError{Value: v}
	}
}
