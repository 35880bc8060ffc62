// SPDX-License-Identifier: MPL-2.0

package instant

// IsInconsistent reports whether an instant's fields never corresponded to a
// real wall-clock moment on its zone (a DST spring-forward gap). The check is
// semantic: the instant's epoch seconds are broken back down on its own zone,
// and the resulting UTC offset is compared with the one resolved at
// construction. Always false for naive instants, which have no physical
// meaning to validate.
func IsInconsistent(i Instant) bool {
	if i.IsNaive() {
		return false
	}
	sec, usec := i.unixParts()
	recreated := fromUnixParts(sec, usec, i.zone)
	return recreated.offset != i.offset
}

// IsAmbiguousWithoutOffset reports whether two distinct instants share the
// instant's local hour on its zone (a DST fall-back duplicate). The epoch
// value is shifted by exactly one hour in each direction and each neighbor is
// projected back onto the zone's wall clock; a neighbor landing on the same
// local hour means the hour occurs twice.
//
// The one-hour window is a deliberate simplification, not a transition-table
// scan: real-world DST shifts are at most one hour. Always false for naive
// instants.
func IsAmbiguousWithoutOffset(i Instant) bool {
	if i.IsNaive() {
		return false
	}
	sec, usec := i.unixParts()
	for _, shift := range []int64{-3600, 3600} {
		neighbor := fromUnixParts(sec+shift, usec, i.zone)
		if neighbor.fields.Hour == i.fields.Hour {
			return true
		}
	}
	return false
}
