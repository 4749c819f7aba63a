// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"
	"fmt"

	"github.com/glbench/glbench/internal/benchmark"
	"github.com/glbench/glbench/internal/config"
	"github.com/glbench/glbench/internal/issue"
	"github.com/glbench/glbench/internal/plan"
	"github.com/glbench/glbench/internal/suites"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	errPlanWithSuites = errors.New("suite arguments cannot be combined with --plan")
	errPlanWithPrefix = errors.New("--prefix cannot be combined with --plan; set prefix per [[run]] step")
)

type runFlags struct {
	prefix   string
	planFile string
}

func newRunCommand(app *App) *cobra.Command {
	var flags runFlags

	runCmd := &cobra.Command{
		Use:   "run [suite...]",
		Short: "Run benchmark suites",
		Long: `Run the benchmarks of the given suites, in order.

Without suite arguments the suites listed in run.suites are used, or every
registered suite when that list is empty. Only operations declared as
benchmarks run; operations whose id does not start with --prefix are skipped.
The run stops at the first failing benchmark.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if flags.planFile != "" && len(args) > 0 {
				return &ExitError{Code: ExitUsage, Err: errPlanWithSuites}
			}
			if flags.planFile != "" && cmd.Flags().Changed("prefix") {
				return &ExitError{Code: ExitUsage, Err: errPlanWithPrefix}
			}

			cfg, err := app.loadConfig(cmd.Context())
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("prefix") {
				flags.prefix = cfg.Run.Prefix
			}

			catalog, err := app.openCatalog(cfg)
			if err != nil {
				return err
			}
			defer func() {
				if closeErr := catalog.Close(); closeErr != nil {
					app.logger(cfg).Warn("failed to release suite fixtures", "err", closeErr)
				}
			}()

			if flags.planFile != "" {
				return runPlan(app, cfg, catalog, flags.planFile)
			}

			names := args
			if len(names) == 0 {
				names = cfg.Run.Suites
			}
			return runSuites(app, cfg, catalog, names, flags.prefix)
		},
	}

	runCmd.Flags().StringVarP(&flags.prefix, "prefix", "p", "", "only run operations whose id starts with this prefix (case-sensitive)")
	runCmd.Flags().StringVar(&flags.planFile, "plan", "", "TOML run plan listing suites and prefixes; excludes suite arguments and --prefix")

	return runCmd
}

// newRunner builds a runner writing report lines to stdout. In verbose mode
// reports are also logged.
func (a *App) newRunner(cfg *config.Config, logger *log.Logger) *benchmark.Runner {
	var sink benchmark.Sink = benchmark.NewWriterSink(a.stdout)
	if cfg.UI.Verbose {
		sink = benchmark.MultiSink{sink, benchmark.NewLogSink(logger)}
	}
	return benchmark.NewRunner(benchmark.WithSink(sink), benchmark.WithLogger(logger))
}

func runSuites(app *App, cfg *config.Config, catalog *suites.Catalog, names []string, prefix string) error {
	selected, err := catalog.Resolve(names...)
	if err != nil {
		return app.fail(cfg, ExitUsage, issue.SuiteNotFoundId, err)
	}

	logger := app.logger(cfg)
	runner := app.newRunner(cfg, logger)

	total := 0
	for _, suite := range selected {
		reports, err := runner.RunBenchmarks(suite, prefix)
		total += len(reports)
		if err != nil {
			return app.benchmarkFailure(cfg, suite.Name(), err)
		}
	}

	fmt.Fprintf(app.stderr, "%s %d benchmark(s) in %d suite(s)\n", SuccessStyle.Render("✓"), total, len(selected))
	return nil
}

func runPlan(app *App, cfg *config.Config, catalog *suites.Catalog, path string) error {
	p, err := plan.Load(path)
	if err != nil {
		return app.fail(cfg, ExitUsage, issue.PlanParseErrorId, issue.NewErrorContext().
			WithOperation("load run plan").
			WithResource(path).
			WithSuggestion("Each step needs a [[run]] table with a suite key").
			Wrap(err).
			BuildError())
	}

	logger := app.logger(cfg)
	results, err := plan.Execute(p, catalog, app.newRunner(cfg, logger))

	total := 0
	for _, r := range results {
		total += len(r.Reports)
	}

	if err != nil {
		if errors.Is(err, suites.ErrSuiteNotFound) {
			return app.fail(cfg, ExitUsage, issue.SuiteNotFoundId, err)
		}
		failed := ""
		if len(results) > 0 {
			failed = results[len(results)-1].Step.Suite
		}
		return app.benchmarkFailure(cfg, failed, err)
	}

	fmt.Fprintf(app.stderr, "%s %d benchmark(s) in %d step(s)\n", SuccessStyle.Render("✓"), total, len(results))
	return nil
}

func (a *App) benchmarkFailure(cfg *config.Config, suite string, err error) error {
	return a.fail(cfg, ExitBenchmarkFailed, issue.BenchmarkFailedId, issue.NewErrorContext().
		WithOperation("run suite").
		WithResource(suite).
		WithSuggestion("Re-run with --verbose to see the full error chain").
		Wrap(err).
		BuildError())
}
