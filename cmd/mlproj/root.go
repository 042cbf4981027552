// SPDX-License-Identifier: MPL-2.0

// Package cmd contains all CLI commands for mlproj.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"

	"mlproj-cli/internal/config"
	"mlproj-cli/internal/issue"
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
	// cfgFile allows specifying a custom config file
	cfgFile string
	// manifestFile allows specifying a custom manifest path
	manifestFile string

	// loadedCfg is the configuration loaded at startup; never nil after
	// initRootConfig (falls back to defaults on load failure).
	loadedCfg = config.DefaultConfig()

	// rootCmd represents the base command when called without any subcommands
	rootCmd = &cobra.Command{
		Use:   "mlproj",
		Short: "Run ML project entry points",
		Long: TitleStyle.Render("mlproj") + SubtitleStyle.Render(" - run ML project entry points") + `

mlproj loads a project manifest declaring named entry points (training,
benchmarking, ...), resolves an entry point plus parameter overrides into a
concrete command line, and launches it as a subprocess.

Manifests are written in CUE ('projectfile.cue'); the MLflow 'MLproject'
YAML format is accepted for compatibility.

` + SubtitleStyle.Render("Examples:") + `
  mlproj entrypoints              List declared entry points
  mlproj run main                 Run 'main' with declared defaults
  mlproj run main -P run_name=r1  Override a parameter
  mlproj resolve fasttext         Print the resolved command line
  mlproj init                     Create a starter projectfile.cue`,
	}
)

func init() {
	cobra.OnInitialize(initRootConfig)

	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/mlproj/config.cue)")
	rootCmd.PersistentFlags().StringVarP(&manifestFile, "file", "f", "", "project manifest (default: ./projectfile.cue or ./MLproject)")

	// Add subcommands
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(resolveCmd)
	rootCmd.AddCommand(entrypointsCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(initCmd)
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
	// fang.Execute for enhanced Cobra styling; version goes through
	// fang.WithVersion() since fang overrides rootCmd.Version.
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

// initRootConfig reads the config file if set.
func initRootConfig() {
	if cfgFile != "" {
		config.SetConfigFilePathOverride(cfgFile)
	}

	cfg, err := config.Load()
	if err != nil {
		// Surface config loading errors but keep running on defaults.
		fmt.Fprintln(os.Stderr, WarningStyle.Render("Warning: ")+formatErrorForDisplay(err, verbose))
		return
	}

	loadedCfg = cfg
	if !verbose {
		verbose = cfg.UI.Verbose
	}
}

// formatErrorForDisplay formats an error for user display.
// ActionableErrors render their suggestions; verbose mode shows the full chain.
func formatErrorForDisplay(err error, verboseMode bool) string {
	var ae *issue.ActionableError
	if errors.As(err, &ae) {
		return ae.Format(verboseMode)
	}
	return err.Error()
}
