// SPDX-License-Identifier: MPL-2.0

// Package instant constructs and converts zoned calendar datetimes with
// explicit handling of DST edge cases.
//
// The central type is Instant: immutable calendar fields paired with a zone
// handle and a resolved UTC offset. Construct applies a validation policy
// around the two failure modes that naive datetime handling gets wrong:
//
//   - an ambiguous local time (a "fall back" transition makes one wall-clock
//     hour occur twice) fails with AmbiguousTimeError unless the caller
//     supplies an explicit offset or opts into guessing;
//   - a nonexistent local time (a "spring forward" transition skips a
//     wall-clock hour) always fails with NonexistentTimeError, because there
//     is no valid resolution to guess.
//
// Epoch conversion is bidirectional and microsecond-exact for consistent,
// unambiguous instants, computed independently of the process's local zone
// setting. Naive instants (no zone) support only local-field operations and
// fail every operation that requires a physical point in time.
package instant
