// SPDX-License-Identifier: MPL-2.0

package instant

import (
	"fmt"
	"time"
)

// Fields holds calendar wall-clock fields with no inherent zone. Meaningless
// as a physical instant until paired with a zone handle or an explicit offset.
type Fields struct {
	Year        int
	Month       int
	Day         int
	Hour        int
	Minute      int
	Second      int
	Microsecond int
}

// Validate returns an InvalidFieldsError if any field is out of its calendar
// range. The day is checked against the actual length of the month.
func (f Fields) Validate() error {
	switch {
	case f.Month < 1 || f.Month > 12:
		return &InvalidFieldsError{Fields: f, Reason: "month out of range"}
	case f.Day < 1 || f.Day > daysIn(f.Year, f.Month):
		return &InvalidFieldsError{Fields: f, Reason: "day out of range"}
	case f.Hour < 0 || f.Hour > 23:
		return &InvalidFieldsError{Fields: f, Reason: "hour out of range"}
	case f.Minute < 0 || f.Minute > 59:
		return &InvalidFieldsError{Fields: f, Reason: "minute out of range"}
	case f.Second < 0 || f.Second > 59:
		return &InvalidFieldsError{Fields: f, Reason: "second out of range"}
	case f.Microsecond < 0 || f.Microsecond > 999999:
		return &InvalidFieldsError{Fields: f, Reason: "microsecond out of range"}
	}
	return nil
}

// String renders the fields as a zone-less wall-clock timestamp, with the
// microsecond part included only when nonzero.
func (f Fields) String() string {
	s := fmt.Sprintf("%04d-%02d-%02d %02d:%02d:%02d", f.Year, f.Month, f.Day, f.Hour, f.Minute, f.Second)
	if f.Microsecond != 0 {
		s += fmt.Sprintf(".%06d", f.Microsecond)
	}
	return s
}

// daysIn returns the number of days in the given month. Day zero of the next
// month is the last day of this one.
func daysIn(year, month int) int {
	return time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
