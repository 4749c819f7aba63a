// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/glbench/glbench/internal/benchmark"
	"github.com/glbench/glbench/internal/issue"

	"github.com/spf13/cobra"
)

func newListCommand(app *App) *cobra.Command {
	var prefix string

	listCmd := &cobra.Command{
		Use:   "list [suite...]",
		Short: "List suites and their operations",
		Long: `List the registered suites and their operations in registration order.

Benchmarks show their report name and repetition count; operations that
are not declared as benchmarks are listed but never run.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := app.loadConfig(cmd.Context())
			if err != nil {
				return err
			}

			catalog, err := app.openCatalog(cfg)
			if err != nil {
				return err
			}
			defer func() { _ = catalog.Close() }()

			selected, err := catalog.Resolve(args...)
			if err != nil {
				return app.fail(cfg, ExitUsage, issue.SuiteNotFoundId, err)
			}

			for i, suite := range selected {
				if i > 0 {
					fmt.Fprintln(app.stdout)
				}
				writeSuite(app.stdout, suite, prefix)
			}
			return nil
		},
	}

	listCmd.Flags().StringVarP(&prefix, "prefix", "p", "", "only list operations whose id starts with this prefix")

	return listCmd
}

// writeSuite prints one suite: a title line, then one line per operation.
func writeSuite(w io.Writer, suite *benchmark.Suite, prefix string) {
	ops := suite.Operations()

	width := 0
	for _, op := range ops {
		width = max(width, len(op.ID))
	}

	fmt.Fprintln(w, TitleStyle.Render(suite.Name()))
	for _, op := range ops {
		if !strings.HasPrefix(op.ID, prefix) {
			continue
		}
		id := CmdStyle.Render(fmt.Sprintf("%-*s", width, op.ID))
		if op.Spec == nil {
			fmt.Fprintf(w, "  %s  %s\n", id, SubtitleStyle.Render("(not a benchmark)"))
			continue
		}
		fmt.Fprintf(w, "  %s  %s ×%d\n", id, SuccessStyle.Render(op.Spec.Name()), op.Repetitions)
	}
}
