// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/glbench/glbench/internal/config"
	"github.com/glbench/glbench/internal/issue"
	"github.com/glbench/glbench/internal/offscreen"
	"github.com/glbench/glbench/internal/suites"

	"github.com/charmbracelet/log"
)

type (
	// ConfigProvider loads configuration using explicit options.
	ConfigProvider interface {
		Load(ctx context.Context, opts config.LoadOptions) (*config.Config, error)
	}

	// CatalogFactory builds the suite catalog for one invocation. The caller
	// closes the catalog.
	CatalogFactory func(opts suites.Options) (*suites.Catalog, error)

	// App wires CLI services and shared dependencies. Every command handler
	// receives the App and reads configuration, suites and streams through it.
	App struct {
		Config   ConfigProvider
		Catalogs CatalogFactory
		stdout   io.Writer
		stderr   io.Writer

		// Global flags, bound by NewRootCommand.
		verbose    bool
		configFile string
	}

	// Dependencies defines the injection points for building an App. Nil fields
	// are replaced with production defaults by NewApp.
	Dependencies struct {
		Config   ConfigProvider
		Catalogs CatalogFactory
		Stdout   io.Writer
		Stderr   io.Writer
	}
)

// NewApp creates an App, filling unset dependencies with production defaults.
func NewApp(deps Dependencies) *App {
	if deps.Config == nil {
		deps.Config = config.NewProvider()
	}
	if deps.Catalogs == nil {
		deps.Catalogs = suites.Default
	}
	if deps.Stdout == nil {
		deps.Stdout = os.Stdout
	}
	if deps.Stderr == nil {
		deps.Stderr = os.Stderr
	}

	return &App{
		Config:   deps.Config,
		Catalogs: deps.Catalogs,
		stdout:   deps.Stdout,
		stderr:   deps.Stderr,
	}
}

// loadConfig loads the configuration selected by the --config flag. The
// --verbose flag wins over ui.verbose.
func (a *App) loadConfig(ctx context.Context) (*config.Config, error) {
	cfg, err := a.Config.Load(ctx, config.LoadOptions{ConfigFilePath: a.configFile})
	if err != nil {
		return nil, a.fail(nil, ExitUsage, issue.ConfigLoadFailedId, err)
	}
	if a.verbose {
		cfg.UI.Verbose = true
	}
	return cfg, nil
}

// logger returns a stderr logger honoring log.level, or debug when verbose.
func (a *App) logger(cfg *config.Config) *log.Logger {
	level, err := cfg.Log.Level.Level()
	if err != nil {
		level = log.InfoLevel
	}
	if cfg.UI.Verbose {
		level = log.DebugLevel
	}
	return log.NewWithOptions(a.stderr, log.Options{Prefix: "glbench", Level: level})
}

// openCatalog builds the catalog with the configured offscreen surface.
func (a *App) openCatalog(cfg *config.Config) (*suites.Catalog, error) {
	catalog, err := a.Catalogs(suites.Options{Offscreen: offscreen.Config{
		Width:  cfg.Offscreen.Width,
		Height: cfg.Offscreen.Height,
	}})
	if err != nil {
		return nil, a.fail(cfg, ExitUsage, issue.ContextCreateFailedId,
			issue.NewErrorContext().
				WithOperation("create offscreen context").
				WithResource(fmt.Sprintf("%dx%d", cfg.Offscreen.Width, cfg.Offscreen.Height)).
				WithSuggestion("Set offscreen.width and offscreen.height between 1 and 16384").
				Wrap(err).
				BuildError())
	}
	return catalog, nil
}

// fail prints the guidance for err to stderr and wraps it with an exit code.
// fang prints the error message itself; fail adds the suggestions, and in
// verbose mode the catalogued issue and the full error chain.
func (a *App) fail(cfg *config.Config, code int, id issue.Id, err error) error {
	verbose := a.verbose || (cfg != nil && cfg.UI.Verbose)
	if verbose {
		scheme := config.ColorSchemeAuto
		if cfg != nil {
			scheme = cfg.UI.ColorScheme
		}
		if rendered, renderErr := issue.Get(id).Render(scheme.String()); renderErr == nil {
			fmt.Fprint(a.stderr, rendered)
		}
		fmt.Fprintln(a.stderr, VerboseStyle.Render(formatErrorForDisplay(err, true)))
	} else {
		var ae *issue.ActionableError
		if errors.As(err, &ae) && ae.HasSuggestions() {
			for _, suggestion := range ae.Suggestions {
				fmt.Fprintln(a.stderr, SubtitleStyle.Render("  • "+suggestion))
			}
		}
	}
	return &ExitError{Code: code, Err: err}
}

// formatErrorForDisplay renders an ActionableError with its suggestions.
func formatErrorForDisplay(err error, verbose bool) string {
	var ae *issue.ActionableError
	if errors.As(err, &ae) {
		return ae.Format(verbose)
	}
	return err.Error()
}
