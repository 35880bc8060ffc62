// SPDX-License-Identifier: MPL-2.0

package main

import (
	"fmt"
	"os"

	"github.com/tzkit/tzkit/internal/config"
	"github.com/tzkit/tzkit/internal/issue"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage tzkit configuration",
	Long: `Manage tzkit configuration.

Configuration is stored in:
  - Linux: ~/.config/tzkit/config.toml
  - macOS: ~/Library/Application Support/tzkit/config.toml
  - Windows: %APPDATA%\tzkit\config.toml`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

func init() {
	configCmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			return showConfig()
		},
	})

	configCmd.AddCommand(&cobra.Command{
		Use:   "init",
		Short: "Create default configuration file",
		RunE: func(cmd *cobra.Command, args []string) error {
			return initConfigFile()
		},
	})

	configCmd.AddCommand(&cobra.Command{
		Use:   "path",
		Short: "Show configuration file path",
		RunE: func(cmd *cobra.Command, args []string) error {
			return showConfigPath()
		},
	})
}

func showConfig() error {
	cfg, err := config.Load()
	if err != nil {
		rendered, _ := issue.Get(issue.ConfigLoadFailedId).Render(glamourStyle())
		fmt.Fprint(os.Stderr, rendered)
		return err
	}

	fmt.Println(TitleStyle.Render("Current Configuration"))
	fmt.Println()

	path, pathErr := config.FilePath()
	if pathErr == nil && fileExistsCheck(path) {
		fmt.Printf("%s: %s\n", ValueStyle.Render("Config file"), path)
	} else {
		fmt.Printf("%s: %s\n", ValueStyle.Render("Config file"), SubtitleStyle.Render("(using defaults)"))
	}
	fmt.Println()

	fmt.Printf("%s: %s\n", ValueStyle.Render("default_zone"), SuccessStyle.Render(cfg.DefaultZone))
	fmt.Printf("%s: %s\n", ValueStyle.Render("allow_guess"), SuccessStyle.Render(fmt.Sprintf("%v", cfg.AllowGuess)))
	fmt.Printf("%s: %s\n", ValueStyle.Render("color_scheme"), SuccessStyle.Render(string(cfg.ColorScheme)))

	fmt.Println()
	fmt.Printf("%s:\n", ValueStyle.Render("ui"))
	fmt.Printf("  verbose: %s\n", SuccessStyle.Render(fmt.Sprintf("%v", cfg.UI.Verbose)))

	return nil
}

func initConfigFile() error {
	path, err := config.WriteDefault()
	if err != nil {
		return fmt.Errorf("failed to create config: %w", err)
	}

	fmt.Printf("%s Created default configuration at %s\n", SuccessStyle.Render("✓"), path)
	return nil
}

func showConfigPath() error {
	dir, err := config.ConfigDir()
	if err != nil {
		return err
	}
	path, err := config.FilePath()
	if err != nil {
		return err
	}

	fmt.Printf("Config directory: %s\n", dir)
	fmt.Printf("Config file: %s\n", path)
	return nil
}

// fileExistsCheck checks if a file exists and is not a directory.
func fileExistsCheck(path string) bool {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return false
	}
	return err == nil && !info.IsDir()
}
