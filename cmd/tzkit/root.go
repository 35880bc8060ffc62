// SPDX-License-Identifier: MPL-2.0

package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/tzkit/tzkit/internal/config"
	"github.com/tzkit/tzkit/internal/issue"
	"github.com/tzkit/tzkit/pkg/instant"
	"github.com/tzkit/tzkit/pkg/tz"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"
)

var (
	// Version is the semantic version (set via -ldflags).
	Version = "dev"
	// Commit is the git commit hash (set via -ldflags).
	Commit = "unknown"
	// BuildDate is the build timestamp (set via -ldflags).
	BuildDate = "unknown"

	// verbose enables verbose output
	verbose bool
	// cfgDir allows specifying a custom config directory
	cfgDir string
	// allowGuess lets ambiguous local times resolve with a warning
	allowGuess bool

	// loadedCfg holds the effective configuration; defaults until
	// initRootConfig runs.
	loadedCfg = config.DefaultConfig()

	// rootCmd represents the base command when called without any subcommands
	rootCmd = &cobra.Command{
		Use:   "tzkit",
		Short: "Strict timestamp parsing with honest DST handling",
		Long: TitleStyle.Render("tzkit") + SubtitleStyle.Render(" - strict timestamps, honest DST") + `

tzkit parses, converts, and checks timestamps without papering over
daylight-saving-time transitions: wall-clock times that occur twice
(fall-back fold) or never (spring-forward gap) are reported instead of
being silently shifted to a neighboring instant.

` + SubtitleStyle.Render("Examples:") + `
  tzkit parse "2023-06-01T10:00:00" --zone Europe/Rome
  tzkit convert 1685613600 --zone Asia/Tokyo
  tzkit check "2021-10-31T02:30:00" --zone Europe/Rome
  tzkit now --epoch
  tzkit config show`,
	}
)

func init() {
	cobra.OnInitialize(initRootConfig)

	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().StringVar(&cfgDir, "config", "", "config directory (default is the platform config dir)")
	rootCmd.PersistentFlags().BoolVar(&allowGuess, "allow-guess", false, "resolve ambiguous local times by picking a side and warning")

	// Add subcommands
	rootCmd.AddCommand(parseCmd)
	rootCmd.AddCommand(convertCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(nowCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(completionCmd)
}

// getVersionString returns a formatted version string for display.
func getVersionString() string {
	if Version == "dev" {
		return "dev (built from source)"
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildDate)
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	// fang overrides rootCmd.Version, so the version goes through fang.WithVersion.
	if err := fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithVersion(getVersionString()),
		fang.WithNotifySignal(os.Interrupt),
	); err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.Code)
		}
		os.Exit(1)
	}
}

// initRootConfig reads in the config file, if one exists.
func initRootConfig() {
	if cfgDir != "" {
		config.SetConfigDirOverride(cfgDir)
	}

	cfg, err := config.Load()
	if err != nil {
		// A broken config must never block the command; warn and run on defaults.
		fmt.Fprintln(os.Stderr, WarningStyle.Render("Warning: ")+formatErrorForDisplay(err, verbose))
		return
	}
	loadedCfg = cfg

	// Flags win over config.
	if !verbose {
		verbose = cfg.UI.Verbose
	}
	if !allowGuess {
		allowGuess = cfg.AllowGuess
	}
}

// formatErrorForDisplay formats an error for user display.
// If the error is an ActionableError, it uses the Format method.
// In verbose mode, shows the full error chain.
func formatErrorForDisplay(err error, verboseMode bool) string {
	var ae *issue.ActionableError
	if errors.As(err, &ae) {
		return ae.Format(verboseMode)
	}
	return err.Error()
}

// zoneFromFlag resolves an explicit --zone value. An empty value means the
// caller gets the naive marker and the input decides its own zone.
func zoneFromFlag(name string) (tz.Zone, error) {
	if name == "" {
		return tz.Zone{}, nil
	}
	return tz.Resolve(name)
}

// zoneOrDefault resolves --zone, falling back to the configured default_zone.
func zoneOrDefault(name string) (tz.Zone, error) {
	if name == "" {
		name = loadedCfg.DefaultZone
	}
	return tz.Resolve(name)
}

// constructOpts maps the effective flags to instant factory options.
func constructOpts() []instant.Option {
	var opts []instant.Option
	if allowGuess {
		opts = append(opts, instant.AllowGuess())
	}
	return opts
}
