// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

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
)

// NewRootCommand builds the glbench command tree around app.
func NewRootCommand(app *App) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "glbench",
		Short: "Benchmark harness for the GL/EGL binding layer",
		Long: TitleStyle.Render("glbench") + SubtitleStyle.Render(" - benchmark harness for the GL/EGL binding layer") + `

glbench times the benchmark operations registered in its suites. Each
benchmark runs its declared number of repetitions back to back and prints
one line with the total elapsed time:

  clear: 12 [ms]

` + SubtitleStyle.Render("Examples:") + `
  glbench list                      List suites and their operations
  glbench run                       Run every suite
  glbench run offscreen --prefix Run  Run offscreen benchmarks starting with "Run"
  glbench run --plan bench.toml     Run the steps of a plan file
  glbench config show               Show current configuration`,
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().BoolVarP(&app.verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().StringVar(&app.configFile, "config", "", "config file (default is $XDG_CONFIG_HOME/glbench/config.cue)")

	rootCmd.AddCommand(
		newRunCommand(app),
		newListCommand(app),
		newConfigCommand(app),
	)

	return rootCmd
}

// getVersionString returns a formatted version string for display.
func getVersionString() string {
	if Version == "dev" {
		return "dev (built from source)"
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildDate)
}

// Execute runs the CLI and exits with its status. It is called by main.main().
func Execute() {
	os.Exit(Run(context.Background()))
}

// Run executes the command tree with the process arguments and returns the
// exit status: the code carried by an ExitError, ExitUsage for other errors.
func Run(ctx context.Context) int {
	app := NewApp(Dependencies{})

	err := fang.Execute(
		ctx,
		NewRootCommand(app),
		fang.WithVersion(getVersionString()),
		fang.WithNotifySignal(os.Interrupt),
	)
	if err == nil {
		return 0
	}

	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitUsage
}
