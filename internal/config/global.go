// SPDX-License-Identifier: MPL-2.0

package config

// configDirOverride allows tests and the --config flag to override the
// config directory. os.UserHomeDir() doesn't reliably respect the HOME
// environment variable on all platforms (e.g., macOS in CI).
var configDirOverride string

// Reset clears overrides. Call from test cleanup to restore defaults.
func Reset() {
	configDirOverride = ""
}

// SetConfigDirOverride sets a custom config directory path.
func SetConfigDirOverride(dir string) {
	configDirOverride = dir
}
