// SPDX-License-Identifier: MPL-2.0

// Package iso8601 parses and formats zoned datetimes in a restricted
// ISO-8601 grammar.
//
// Accepted forms (the date/time separator is either 'T' or a single space):
//
//	YYYY-MM-DDThh:mm:ssZ
//	YYYY-MM-DDThh:mm:ss.uuuuuuZ
//	YYYY-MM-DDThh:mm:ss±HH:MM
//	YYYY-MM-DDThh:mm:ss.uuuuuu±HH:MM
//	YYYY-MM-DDThh:mm:ss            (naive; no offset marker)
//
// Parsed fields are handed to the instant factory: the explicit-offset path
// when an offset or Z is present, the naive path otherwise. Formatting is
// canonical: Z for canonical-UTC instants, a numeric ±HH:MM offset otherwise,
// no marker for naive instants, and the microsecond part printed as exactly
// six digits only when nonzero.
package iso8601
