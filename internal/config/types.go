// SPDX-License-Identifier: MPL-2.0

package config

import (
	"errors"
	"fmt"
)

const (
	// ColorSchemeAuto detects the terminal color scheme automatically.
	ColorSchemeAuto ColorScheme = "auto"
	// ColorSchemeDark forces dark color scheme.
	ColorSchemeDark ColorScheme = "dark"
	// ColorSchemeLight forces light color scheme.
	ColorSchemeLight ColorScheme = "light"
)

var (
	// ErrUnknownOption is the sentinel error wrapped by UnknownOptionError.
	ErrUnknownOption = errors.New("unknown configuration option")
	// ErrInvalidColorScheme is the sentinel error wrapped by InvalidColorSchemeError.
	ErrInvalidColorScheme = errors.New("invalid color scheme")
	// ErrInvalidConfig is returned when the config file cannot be read or decoded.
	ErrInvalidConfig = errors.New("invalid config")
)

type (
	// Config is the root CLI configuration.
	Config struct {
		// DefaultZone is the IANA identifier applied when a command is run
		// without --zone. Empty means no default (naive parsing).
		DefaultZone string `mapstructure:"default_zone" toml:"default_zone"`

		// AllowGuess downgrades ambiguous-time errors to warnings, as if
		// --allow-guess was passed to every command.
		AllowGuess bool `mapstructure:"allow_guess" toml:"allow_guess"`

		// ColorScheme selects the terminal color scheme for rendered output.
		ColorScheme ColorScheme `mapstructure:"color_scheme" toml:"color_scheme"`

		// UI holds output-related settings.
		UI UIConfig `mapstructure:"ui" toml:"ui"`
	}

	// UIConfig holds output-related settings.
	UIConfig struct {
		// Verbose enables verbose output without passing --verbose.
		Verbose bool `mapstructure:"verbose" toml:"verbose"`
	}

	// ColorScheme specifies the terminal color scheme preference.
	ColorScheme string

	// UnknownOptionError is returned when the config file contains a key
	// this version does not recognize. It wraps ErrUnknownOption.
	UnknownOptionError struct {
		Key string
	}

	// InvalidColorSchemeError is returned when a ColorScheme value is not
	// recognized. It wraps ErrInvalidColorScheme.
	InvalidColorSchemeError struct {
		Value ColorScheme
	}
)

// Error implements the error interface.
func (e *UnknownOptionError) Error() string {
	return fmt.Sprintf("unknown configuration option %q", e.Key)
}

// Unwrap returns ErrUnknownOption for errors.Is() compatibility.
func (e *UnknownOptionError) Unwrap() error { return ErrUnknownOption }

// Error implements the error interface.
func (e *InvalidColorSchemeError) Error() string {
	return fmt.Sprintf("invalid color scheme %q (must be auto, dark, or light)", e.Value)
}

// Unwrap returns ErrInvalidColorScheme for errors.Is() compatibility.
func (e *InvalidColorSchemeError) Unwrap() error { return ErrInvalidColorScheme }

// Validate returns an error if the ColorScheme is not a recognized value.
func (s ColorScheme) Validate() error {
	switch s {
	case ColorSchemeAuto, ColorSchemeDark, ColorSchemeLight:
		return nil
	default:
		return &InvalidColorSchemeError{Value: s}
	}
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		DefaultZone: "UTC",
		ColorScheme: ColorSchemeAuto,
	}
}
