// SPDX-License-Identifier: MPL-2.0

package iso8601

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/tzkit/tzkit/pkg/instant"
	"github.com/tzkit/tzkit/pkg/tz"
)

// ErrMalformedString is the sentinel error wrapped by MalformedStringError.
var ErrMalformedString = errors.New("malformed ISO-8601 string")

// MalformedStringError is returned when an input matches none of the
// supported grammar forms. It wraps ErrMalformedString.
type MalformedStringError struct {
	Input  string
	Reason string
}

// Error implements the error interface.
func (e *MalformedStringError) Error() string {
	return fmt.Sprintf("cannot parse %q as ISO-8601: %s", e.Input, e.Reason)
}

// Unwrap returns ErrMalformedString for errors.Is() compatibility.
func (e *MalformedStringError) Unwrap() error { return ErrMalformedString }

// Parse converts an ISO-8601 string to an instant. Strings with a Z or
// numeric offset produce a zoned instant via the explicit-offset path;
// strings without an offset marker produce a naive instant.
func Parse(s string) (instant.Instant, error) {
	return ParseInZone(s, tz.Zone{})
}

// ParseInZone is Parse with a zone: naive-form strings are localized onto the
// zone (subject to the factory's ambiguity and consistency checks), and
// offset-form strings are re-projected onto it. The naive marker behaves like
// plain Parse. Extra options (e.g. instant.AllowGuess) are forwarded to the
// factory.
func ParseInZone(s string, zone tz.Zone, extra ...instant.Option) (instant.Instant, error) {
	datePart, timePart, err := splitDateTime(s)
	if err != nil {
		return instant.Instant{}, err
	}

	var offsetSec *int
	switch {
	case strings.HasSuffix(timePart, "Z"):
		zone = tz.UTC
		zero := 0
		offsetSec = &zero
		timePart = strings.TrimSuffix(timePart, "Z")
	case strings.Contains(timePart, "+"):
		var off string
		timePart, off, _ = strings.Cut(timePart, "+")
		sec, err := parseOffset(s, off)
		if err != nil {
			return instant.Instant{}, err
		}
		offsetSec = &sec
	case strings.Contains(timePart, "-"):
		var off string
		timePart, off, _ = strings.Cut(timePart, "-")
		sec, err := parseOffset(s, off)
		if err != nil {
			return instant.Instant{}, err
		}
		sec = -sec
		offsetSec = &sec
	}

	f, err := parseFields(s, datePart, timePart)
	if err != nil {
		return instant.Instant{}, err
	}

	var opts []instant.Option
	if !zone.IsNaive() {
		opts = append(opts, instant.WithZone(zone))
	}
	if offsetSec != nil {
		opts = append(opts, instant.WithOffset(*offsetSec))
	}
	opts = append(opts, extra...)
	return instant.Construct(f, opts...)
}

// Format renders an instant in its canonical ISO-8601 form.
func Format(i instant.Instant) string {
	f := i.Fields()
	s := fmt.Sprintf("%04d-%02d-%02dT%02d:%02d:%02d", f.Year, f.Month, f.Day, f.Hour, f.Minute, f.Second)
	if f.Microsecond != 0 {
		s += fmt.Sprintf(".%06d", f.Microsecond)
	}
	switch {
	case i.IsNaive():
		return s
	case i.Zone().IsUTC():
		return s + "Z"
	default:
		return s + i.OffsetString()
	}
}

// splitDateTime splits on 'T', then on a single space.
func splitDateTime(s string) (datePart, timePart string, err error) {
	if date, t, ok := strings.Cut(s, "T"); ok {
		return date, t, nil
	}
	if date, t, ok := strings.Cut(s, " "); ok {
		return date, t, nil
	}
	return "", "", &MalformedStringError{Input: s, Reason: `no date/time separator (looking for "T" or " ")`}
}

// parseOffset converts an "HH:MM" offset body (sign already stripped) to
// unsigned total seconds.
func parseOffset(input, off string) (int, error) {
	hh, mm, ok := strings.Cut(off, ":")
	if !ok {
		return 0, &MalformedStringError{Input: input, Reason: "offset must be ±HH:MM"}
	}
	h, err1 := strconv.Atoi(hh)
	m, err2 := strconv.Atoi(mm)
	if err1 != nil || err2 != nil || h < 0 || m < 0 {
		return 0, &MalformedStringError{Input: input, Reason: "offset must be ±HH:MM"}
	}
	return (h*60 + m) * 60, nil
}

// parseFields converts the date and time bodies (offset marker already
// stripped) to calendar fields.
func parseFields(input, datePart, timePart string) (instant.Fields, error) {
	dateBits := strings.Split(datePart, "-")
	if len(dateBits) != 3 {
		return instant.Fields{}, &MalformedStringError{Input: input, Reason: "date must be YYYY-MM-DD"}
	}
	timeBits := strings.Split(timePart, ":")
	if len(timeBits) != 3 {
		return instant.Fields{}, &MalformedStringError{Input: input, Reason: "time must be hh:mm:ss"}
	}

	secondBody, fraction, hasFraction := strings.Cut(timeBits[2], ".")

	ints := make([]int, 5)
	for i, bit := range []string{dateBits[0], dateBits[1], dateBits[2], timeBits[0], timeBits[1]} {
		n, err := strconv.Atoi(bit)
		if err != nil {
			return instant.Fields{}, &MalformedStringError{Input: input, Reason: fmt.Sprintf("component %q is not an integer", bit)}
		}
		ints[i] = n
	}
	second, err := strconv.Atoi(secondBody)
	if err != nil {
		return instant.Fields{}, &MalformedStringError{Input: input, Reason: fmt.Sprintf("component %q is not an integer", secondBody)}
	}

	usec := 0
	if hasFraction {
		usec, err = parseFraction(input, fraction)
		if err != nil {
			return instant.Fields{}, err
		}
	}

	return instant.Fields{
		Year:        ints[0],
		Month:       ints[1],
		Day:         ints[2],
		Hour:        ints[3],
		Minute:      ints[4],
		Second:      second,
		Microsecond: usec,
	}, nil
}

// parseFraction scales a 1-6 digit fractional-second body to microseconds.
func parseFraction(input, fraction string) (int, error) {
	if len(fraction) == 0 || len(fraction) > 6 {
		return 0, &MalformedStringError{Input: input, Reason: "fractional seconds must be 1-6 digits"}
	}
	n, err := strconv.Atoi(fraction)
	if err != nil || n < 0 {
		return 0, &MalformedStringError{Input: input, Reason: fmt.Sprintf("component %q is not an integer", fraction)}
	}
	for i := len(fraction); i < 6; i++ {
		n *= 10
	}
	return n, nil
}
