// SPDX-License-Identifier: MPL-2.0

// Package tz resolves time-zone references into immutable zone handles.
//
// A Zone is a tagged variant: a named IANA zone, a fixed UTC offset, or the
// naive marker (the zero value). Classification happens exactly once, at
// resolution time; downstream code switches over the variant instead of
// inspecting values structurally.
//
// Named lookups go against the IANA zone database shipped with the Go
// toolchain (or embedded via time/tzdata) and are cached for the process
// lifetime, so repeated resolutions of the same identifier return the same
// handle.
package tz
