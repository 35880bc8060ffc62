// SPDX-License-Identifier: MPL-2.0

package tz

import (
	"errors"
	"fmt"
	"sync"
	"time"
)

// ErrUnknownZone is the sentinel error wrapped by UnknownZoneError.
var ErrUnknownZone = errors.New("unknown time zone")

type (
	// Kind discriminates the zone variants. The zero value is Naive.
	Kind uint8

	// Zone is a resolved, immutable time-zone handle. The zero value is the
	// naive marker: calendar fields tagged with it have no physical meaning.
	// Zones are small values and safe to copy and compare.
	Zone struct {
		kind   Kind
		name   string
		offset int
		loc    *time.Location
	}

	// UnknownZoneError is returned when a zone identifier is not found in the
	// zone database. It wraps ErrUnknownZone for errors.Is() compatibility.
	UnknownZoneError struct {
		Name string
	}
)

const (
	// Naive marks the absence of a zone.
	Naive Kind = iota
	// Named marks a zone resolved from an IANA identifier.
	Named
	// Fixed marks a constant UTC offset with no transition rules.
	Fixed
)

// Error implements the error interface.
func (e *UnknownZoneError) Error() string {
	return fmt.Sprintf("unknown time zone %q", e.Name)
}

// Unwrap returns ErrUnknownZone so callers can use errors.Is for programmatic detection.
func (e *UnknownZoneError) Unwrap() error { return ErrUnknownZone }

// UTC is the canonical UTC handle. All UTC comparisons in this module are by
// identity against this handle's location, never by string equality.
var UTC = Zone{kind: Named, name: "UTC", loc: time.UTC}

// cache holds resolved named zones for the process lifetime.
var cache sync.Map // string -> Zone

// Resolve looks an IANA zone identifier up in the zone database.
// It fails with UnknownZoneError when the identifier is not found. Resolved
// handles are cached, so resolving the same identifier twice yields handles
// backed by the same *time.Location.
//
// "Local" is rejected deliberately: every computation in this module must be
// independent of the process's local zone setting.
func Resolve(name string) (Zone, error) {
	if name == "UTC" {
		return UTC, nil
	}
	if name == "" || name == "Local" {
		return Zone{}, &UnknownZoneError{Name: name}
	}
	if cached, ok := cache.Load(name); ok {
		return cached.(Zone), nil
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return Zone{}, &UnknownZoneError{Name: name}
	}
	z := Zone{kind: Named, name: name, loc: loc}
	actual, _ := cache.LoadOrStore(name, z)
	return actual.(Zone), nil
}

// MustResolve is like Resolve but panics on failure. Intended for zone
// identifiers known valid at compile time (tests, defaults).
func MustResolve(name string) Zone {
	z, err := Resolve(name)
	if err != nil {
		panic(err)
	}
	return z
}

// FixedOffset returns a zone pinned to a constant UTC offset, in seconds
// east of UTC.
func FixedOffset(seconds int) Zone {
	return Zone{
		kind:   Fixed,
		name:   offsetName(seconds),
		offset: seconds,
		loc:    time.FixedZone(offsetName(seconds), seconds),
	}
}

// Kind returns the variant tag of the zone.
func (z Zone) Kind() Kind { return z.kind }

// IsNaive reports whether the zone is the naive marker.
func (z Zone) IsNaive() bool { return z.kind == Naive }

// IsUTC reports whether the zone is canonical UTC. The comparison is by
// location identity, not by name.
func (z Zone) IsUTC() bool { return z.loc == time.UTC }

// Location returns the underlying *time.Location, or nil for the naive marker.
func (z Zone) Location() *time.Location { return z.loc }

// FixedOffsetSeconds returns the offset of a Fixed zone and true, or 0 and
// false for the other variants.
func (z Zone) FixedOffsetSeconds() (int, bool) {
	if z.kind != Fixed {
		return 0, false
	}
	return z.offset, true
}

// String returns the zone identifier for named zones, a UTC±HH:MM label for
// fixed offsets, and "naive" for the naive marker.
func (z Zone) String() string {
	switch z.kind {
	case Named:
		return z.name
	case Fixed:
		return z.name
	default:
		return "naive"
	}
}

// offsetName renders a fixed offset as a UTC±HH:MM label.
func offsetName(seconds int) string {
	sign := "+"
	if seconds < 0 {
		sign = "-"
		seconds = -seconds
	}
	return fmt.Sprintf("UTC%s%02d:%02d", sign, seconds/3600, (seconds%3600)/60)
}
