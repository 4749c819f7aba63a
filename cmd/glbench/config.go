// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/glbench/glbench/internal/config"
	"github.com/glbench/glbench/internal/issue"

	"github.com/spf13/cobra"
)

// newConfigCommand creates the `glbench config` command tree.
func newConfigCommand(app *App) *cobra.Command {
	cfgCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage glbench configuration",
		Long: `Manage glbench configuration.

Configuration is stored in:
  - Linux: ~/.config/glbench/config.cue
  - macOS: ~/Library/Application Support/glbench/config.cue
  - Windows: %APPDATA%\glbench\config.cue

A config.cue in the current directory is used when the file above does not
exist. Every key can be overridden with a GLBENCH_ environment variable, e.g.
GLBENCH_OFFSCREEN_WIDTH=512 or GLBENCH_RUN_SUITES=glerr,glinfo.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			return showConfig(cmd.Context(), app)
		},
	})

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "init",
		Short: "Create default configuration file",
		RunE: func(cmd *cobra.Command, args []string) error {
			return initConfig(app)
		},
	})

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "path",
		Short: "Show configuration file path",
		RunE: func(cmd *cobra.Command, args []string) error {
			return showConfigPath(app)
		},
	})

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "dump",
		Short: "Output effective configuration as CUE",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := app.loadConfig(cmd.Context())
			if err != nil {
				return err
			}

			fmt.Fprint(app.stdout, config.GenerateCUE(cfg))
			return nil
		},
	})

	return cfgCmd
}

func showConfig(ctx context.Context, app *App) error {
	cfg, err := app.loadConfig(ctx)
	if err != nil {
		return err
	}

	keyStyle := CmdStyle
	valueStyle := SuccessStyle
	w := app.stdout

	fmt.Fprintln(w, TitleStyle.Render("Current Configuration"))
	fmt.Fprintln(w)

	path, err := config.ResolvePath(config.LoadOptions{ConfigFilePath: app.configFile})
	if err != nil || path == "" {
		fmt.Fprintf(w, "%s: %s\n", keyStyle.Render("Config file"), SubtitleStyle.Render("(using defaults)"))
	} else {
		fmt.Fprintf(w, "%s: %s\n", keyStyle.Render("Config file"), path)
	}

	fmt.Fprintln(w)
	fmt.Fprintf(w, "%s:\n", keyStyle.Render("offscreen"))
	fmt.Fprintf(w, "  width: %s\n", valueStyle.Render(fmt.Sprint(cfg.Offscreen.Width)))
	fmt.Fprintf(w, "  height: %s\n", valueStyle.Render(fmt.Sprint(cfg.Offscreen.Height)))

	fmt.Fprintln(w)
	fmt.Fprintf(w, "%s:\n", keyStyle.Render("run"))
	if cfg.Run.Prefix == "" {
		fmt.Fprintf(w, "  prefix: %s\n", SubtitleStyle.Render("(none)"))
	} else {
		fmt.Fprintf(w, "  prefix: %s\n", valueStyle.Render(cfg.Run.Prefix))
	}
	if len(cfg.Run.Suites) == 0 {
		fmt.Fprintf(w, "  suites: %s\n", SubtitleStyle.Render("(all)"))
	} else {
		fmt.Fprintf(w, "  suites: %s\n", valueStyle.Render(strings.Join(cfg.Run.Suites, ", ")))
	}

	fmt.Fprintln(w)
	fmt.Fprintf(w, "%s:\n", keyStyle.Render("ui"))
	fmt.Fprintf(w, "  color_scheme: %s\n", valueStyle.Render(cfg.UI.ColorScheme.String()))
	fmt.Fprintf(w, "  verbose: %s\n", valueStyle.Render(fmt.Sprint(cfg.UI.Verbose)))

	fmt.Fprintln(w)
	fmt.Fprintf(w, "%s:\n", keyStyle.Render("log"))
	fmt.Fprintf(w, "  level: %s\n", valueStyle.Render(cfg.Log.Level.String()))

	return nil
}

func initConfig(app *App) error {
	path, err := config.FilePath()
	if err != nil {
		return err
	}

	created, err := config.CreateDefaultConfig()
	if err != nil {
		return app.fail(nil, ExitUsage, issue.ConfigLoadFailedId, issue.NewErrorContext().
			WithOperation("create configuration").
			WithResource(path).
			WithSuggestion("Check that the configuration directory is writable").
			Wrap(err).
			BuildError())
	}

	if !created {
		fmt.Fprintf(app.stdout, "%s Configuration already exists at %s\n", WarningStyle.Render("!"), path)
		return nil
	}
	fmt.Fprintf(app.stdout, "%s Created default configuration at %s\n", SuccessStyle.Render("✓"), path)
	return nil
}

func showConfigPath(app *App) error {
	cfgDir, err := config.ConfigDir()
	if err != nil {
		return err
	}
	path, err := config.FilePath()
	if err != nil {
		return err
	}

	fmt.Fprintf(app.stdout, "Config directory: %s\n", cfgDir)
	fmt.Fprintf(app.stdout, "Config file: %s\n", path)
	return nil
}
