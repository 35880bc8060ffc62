// SPDX-License-Identifier: MPL-2.0

// Package config loads and validates the tzkit CLI configuration.
//
// Configuration lives in a TOML file under the platform config directory
// (~/.config/tzkit/config.toml on Linux) and controls defaults that the
// command layer applies to library calls: the default zone, the ambiguity
// guess policy, and output preferences. Unknown keys are rejected rather
// than ignored, so a typo cannot silently change construction behavior.
package config
