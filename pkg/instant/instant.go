// SPDX-License-Identifier: MPL-2.0

package instant

import (
	"fmt"
	"time"

	"github.com/tzkit/tzkit/pkg/tz"
)

// Instant is an immutable zoned datetime: calendar fields on a specific
// zone's wall clock, together with the UTC offset resolved at construction
// time. The zero value is the naive instant with all-zero fields.
//
// Naive instants (zone absent) carry local fields only; every operation that
// needs a physical point in time fails on them. Any correction or projection
// produces a new Instant, never a mutation.
type Instant struct {
	fields Fields
	zone   tz.Zone
	offset int // seconds east of UTC; meaningful only when the zone is not naive
}

// Fields returns the instant's calendar fields.
func (i Instant) Fields() Fields { return i.fields }

// Zone returns the instant's zone handle (the naive marker for naive instants).
func (i Instant) Zone() tz.Zone { return i.zone }

// IsNaive reports whether the instant has no zone.
func (i Instant) IsNaive() bool { return i.zone.IsNaive() }

// OffsetString renders the instant's UTC offset as ±HH:MM, or "" for naive
// instants.
func (i Instant) OffsetString() string {
	if i.IsNaive() {
		return ""
	}
	off := i.offset
	sign := "+"
	if off < 0 {
		sign = "-"
		off = -off
	}
	return fmt.Sprintf("%s%02d:%02d", sign, off/3600, (off%3600)/60)
}

// String renders the instant as its wall-clock fields plus the offset, or the
// bare fields for naive instants.
func (i Instant) String() string {
	if i.IsNaive() {
		return i.fields.String()
	}
	return i.fields.String() + " " + i.OffsetString()
}

// unixParts returns the instant's whole epoch seconds and the microsecond
// remainder. Exact integer arithmetic; the fractional float form is derived
// from this at the public boundary.
func (i Instant) unixParts() (int64, int) {
	return unixSeconds(i.fields, i.offset), i.fields.Microsecond
}

// unixSeconds computes whole epoch seconds for fields at a given UTC offset
// using the proleptic Gregorian calendar, ignoring leap seconds. The
// computation never consults the process's local zone.
func unixSeconds(f Fields, offsetSec int) int64 {
	t := time.Date(f.Year, time.Month(f.Month), f.Day, f.Hour, f.Minute, f.Second, 0, time.UTC)
	return t.Unix() - int64(offsetSec)
}

// localize attaches a zone's forward localization rule to fields, resolving
// the UTC offset the zone database assigns to that wall-clock time. For gap
// times the database picks a neighboring offset; the original fields are kept
// so the inconsistency check can detect the mismatch.
func localize(f Fields, zone tz.Zone) Instant {
	if off, ok := zone.FixedOffsetSeconds(); ok {
		return Instant{fields: f, zone: zone, offset: off}
	}
	t := time.Date(f.Year, time.Month(f.Month), f.Day, f.Hour, f.Minute, f.Second, f.Microsecond*1000, zone.Location())
	_, off := t.Zone()
	return Instant{fields: f, zone: zone, offset: off}
}

// fromUnixParts breaks an exact epoch second + microsecond pair down on the
// given zone's wall clock. The naive marker defaults to UTC.
func fromUnixParts(sec int64, usec int, zone tz.Zone) Instant {
	if zone.IsNaive() {
		zone = tz.UTC
	}
	t := time.Unix(sec, 0).In(zone.Location())
	_, off := t.Zone()
	y, m, d := t.Date()
	hh, mm, ss := t.Clock()
	return Instant{
		fields: Fields{Year: y, Month: int(m), Day: d, Hour: hh, Minute: mm, Second: ss, Microsecond: usec},
		zone:   zone,
		offset: off,
	}
}
