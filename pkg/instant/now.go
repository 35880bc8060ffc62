// SPDX-License-Identifier: MPL-2.0

package instant

import (
	"time"

	"github.com/tzkit/tzkit/pkg/tz"
)

// NowEpoch returns the current time as epoch seconds, at whole-second
// resolution.
func NowEpoch() float64 {
	return float64(time.Now().Unix())
}

// NowUTC returns the current time as a UTC instant, with microseconds.
func NowUTC() Instant {
	t := time.Now().UTC()
	y, m, d := t.Date()
	hh, mm, ss := t.Clock()
	return Instant{
		fields: Fields{Year: y, Month: int(m), Day: d, Hour: hh, Minute: mm, Second: ss, Microsecond: t.Nanosecond() / 1000},
		zone:   tz.UTC,
	}
}

// Now returns the current time on the given zone. Only UTC is supported;
// any other zone fails with ErrNonUTCNow. Callers wanting a local view
// should project the UTC instant explicitly.
func Now(z tz.Zone) (Instant, error) {
	if !z.IsUTC() {
		return Instant{}, ErrNonUTCNow
	}
	return NowUTC(), nil
}
