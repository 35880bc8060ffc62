// SPDX-License-Identifier: MPL-2.0

package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"

	"github.com/tzkit/tzkit/pkg/tz"
)

const (
	// AppName is the application name.
	AppName = "tzkit"
	// ConfigFileName is the name of the config file (without extension).
	ConfigFileName = "config"
	// ConfigFileExt is the config file extension.
	ConfigFileExt = "toml"
)

// knownKeys is the exhaustive set of recognized config keys, in viper's
// flattened dotted form.
var knownKeys = map[string]bool{
	"default_zone": true,
	"allow_guess":  true,
	"color_scheme": true,
	"ui.verbose":   true,
}

// ConfigDir returns the tzkit configuration directory using platform-specific
// conventions: Windows uses %APPDATA%, macOS uses ~/Library/Application
// Support, and Linux/others use $XDG_CONFIG_HOME (defaulting to ~/.config).
//
//nolint:revive // ConfigDir is more descriptive than Dir for external callers
func ConfigDir() (string, error) {
	// Allow tests to override the config directory
	if configDirOverride != "" {
		return configDirOverride, nil
	}

	var configDir string

	switch runtime.GOOS {
	case "windows":
		configDir = os.Getenv("APPDATA")
		if configDir == "" {
			configDir = filepath.Join(os.Getenv("USERPROFILE"), "AppData", "Roaming")
		}
	case "darwin":
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		configDir = filepath.Join(home, "Library", "Application Support")
	default: // Linux and others
		configDir = os.Getenv("XDG_CONFIG_HOME")
		if configDir == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				return "", fmt.Errorf("failed to get home directory: %w", err)
			}
			configDir = filepath.Join(home, ".config")
		}
	}

	return filepath.Join(configDir, AppName), nil
}

// FilePath returns the full path of the config file.
func FilePath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, ConfigFileName+"."+ConfigFileExt), nil
}

// Load reads the config file, falling back to DefaultConfig when no file
// exists. A file with unknown keys or invalid values fails loudly.
func Load() (*Config, error) {
	dir, err := ConfigDir()
	if err != nil {
		return nil, err
	}

	v := viper.New()
	v.SetConfigName(ConfigFileName)
	v.SetConfigType(ConfigFileExt)
	v.AddConfigPath(dir)

	defaults := DefaultConfig()
	v.SetDefault("default_zone", defaults.DefaultZone)
	v.SetDefault("allow_guess", defaults.AllowGuess)
	v.SetDefault("color_scheme", string(defaults.ColorScheme))
	v.SetDefault("ui.verbose", defaults.UI.Verbose)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return defaults, nil
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	if err := validateKeys(v.ConfigFileUsed()); err != nil {
		return nil, err
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks field values against their domains. The default zone must
// resolve against the zone database.
func (c *Config) Validate() error {
	if err := c.ColorScheme.Validate(); err != nil {
		return err
	}
	if c.DefaultZone != "" {
		if _, err := tz.Resolve(c.DefaultZone); err != nil {
			return err
		}
	}
	return nil
}

// WriteDefault writes the default config file, creating the directory if
// needed. It refuses to overwrite an existing file. Returns the written path.
func WriteDefault() (string, error) {
	path, err := FilePath()
	if err != nil {
		return "", err
	}
	if _, err := os.Stat(path); err == nil {
		return "", fmt.Errorf("config file already exists at %s", path)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", fmt.Errorf("failed to create config directory: %w", err)
	}
	data, err := toml.Marshal(DefaultConfig())
	if err != nil {
		return "", fmt.Errorf("failed to encode default config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write config file: %w", err)
	}
	return path, nil
}

// validateKeys decodes the raw file and rejects keys this version does not
// recognize. viper merges defaults into its key set, so the check has to run
// against the file contents, not viper's view.
func validateKeys(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	raw := map[string]any{}
	if err := toml.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return checkKeys("", raw)
}

// checkKeys walks nested tables, building dotted key paths.
func checkKeys(prefix string, m map[string]any) error {
	for k, val := range m {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}
		if nested, ok := val.(map[string]any); ok {
			if err := checkKeys(key, nested); err != nil {
				return err
			}
			continue
		}
		if !knownKeys[key] {
			return &UnknownOptionError{Key: key}
		}
	}
	return nil
}
