// SPDX-License-Identifier: MPL-2.0

package instant

import (
	"math"

	"github.com/tzkit/tzkit/pkg/tz"
)

type (
	// Option configures a single Construct call.
	Option func(*settings)

	settings struct {
		zone       tz.Zone
		offsetSec  *int
		skipChecks bool
		allowGuess bool
		warner     Warner
	}
)

// WithZone localizes the fields onto the given zone. The naive marker is
// equivalent to omitting the option.
func WithZone(z tz.Zone) Option {
	return func(s *settings) { s.zone = z }
}

// WithOffset tags the fields with an explicit UTC offset, in seconds. The
// explicit offset disambiguates DST duplicates, so the ambiguity check does
// not apply on this path. Combined with WithZone, the instant is re-projected
// onto the zone after being built from the offset.
func WithOffset(seconds int) Option {
	return func(s *settings) { s.offsetSec = &seconds }
}

// SkipChecks disables the ambiguity and consistency checks. For callers with
// known-valid fields, or on hot paths.
func SkipChecks() Option {
	return func(s *settings) { s.skipChecks = true }
}

// AllowGuess downgrades an ambiguous local time from an error to a warning
// naming the assumed UTC offset. Nonexistent times still fail: there is no
// valid resolution to guess.
func AllowGuess() Option {
	return func(s *settings) { s.allowGuess = true }
}

// WithWarner routes this call's warnings to w instead of the process-wide
// collaborator.
func WithWarner(w Warner) Option {
	return func(s *settings) { s.warner = w }
}

// Construct builds a zoned datetime from calendar fields.
//
// Policy, in order: an explicit offset wins over zone-implied disambiguation;
// without zone or offset the instant is naive and taken verbatim; otherwise
// the fields are localized onto the zone and, unless SkipChecks is given,
// validated against the zone's transition rules. UTC is exempt from both
// checks by construction, as are naive instants.
func Construct(f Fields, opts ...Option) (Instant, error) {
	if err := f.Validate(); err != nil {
		return Instant{}, err
	}

	s := settings{warner: currentWarner()}
	for _, opt := range opts {
		opt(&s)
	}

	var inst Instant
	switch {
	case s.offsetSec != nil:
		inst = Instant{fields: f, zone: tz.FixedOffset(*s.offsetSec), offset: *s.offsetSec}
		if !s.zone.IsNaive() {
			var err error
			inst, err = ProjectToZone(inst, s.zone)
			if err != nil {
				return Instant{}, err
			}
		}
	case s.zone.IsNaive():
		return Instant{fields: f}, nil
	default:
		inst = localize(f, s.zone)
	}

	if s.skipChecks || s.zone.IsNaive() || s.zone.IsUTC() {
		return inst, nil
	}

	if s.offsetSec == nil && IsAmbiguousWithoutOffset(inst) {
		if !s.allowGuess {
			return Instant{}, &AmbiguousTimeError{Fields: f, Zone: s.zone}
		}
		s.warner.Warnf("time %s is ambiguous on time zone %s, assuming %s UTC offset", f, s.zone, inst.OffsetString())
	}

	if IsInconsistent(inst) {
		return Instant{}, &NonexistentTimeError{Fields: f, Zone: s.zone}
	}

	return inst, nil
}

// CorrectDST rebuilds an instant from its own fields and zone through the
// standard construction path, forcing DST recomputation after arithmetic has
// drifted the internal offset out of sync with the fields. No-op on naive
// instants.
func CorrectDST(i Instant) (Instant, error) {
	if i.IsNaive() {
		return i, nil
	}
	return Construct(i.fields, WithZone(i.zone))
}

// ProjectToZone re-expresses the same physical instant on the target zone's
// wall clock. It fails with NaiveProjectionError when the instant is naive or
// the target is the naive marker: in either case there is no instant to
// re-express.
func ProjectToZone(i Instant, target tz.Zone) (Instant, error) {
	if i.IsNaive() || target.IsNaive() {
		return Instant{}, &NaiveProjectionError{Target: target}
	}
	sec, usec := i.unixParts()
	return fromUnixParts(sec, usec, target), nil
}

// TZOffsetSeconds returns the signed offset, in seconds, between the
// instant's wall clock and UTC, computed by comparing the instant's epoch
// seconds against the epoch seconds of the same fields forcibly tagged UTC.
func TZOffsetSeconds(i Instant) (int, error) {
	if i.IsNaive() {
		return 0, &NaiveConversionError{Op: "offset computation"}
	}
	asUTC := float64(unixSeconds(i.fields, 0)) + float64(i.fields.Microsecond)/1e6
	own, err := ToEpoch(i)
	if err != nil {
		return 0, err
	}
	return int(math.Round(asUTC - own)), nil
}
