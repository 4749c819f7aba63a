// SPDX-License-Identifier: MPL-2.0

package plan

import (
	"fmt"

	"github.com/glbench/glbench/internal/benchmark"
)

type (
	// SuiteLookup resolves suite names; *suites.Catalog satisfies it.
	SuiteLookup interface {
		Lookup(name string) (*benchmark.Suite, error)
	}

	// StepResult holds the reports produced by one step.
	StepResult struct {
		Step    Step
		Reports []benchmark.Report
	}
)

// Execute runs the steps in order with runner and stops at the first step that
// fails. Results of completed steps, plus the partial reports of the failing
// step, are returned alongside the error.
func Execute(p *Plan, lookup SuiteLookup, runner *benchmark.Runner) ([]StepResult, error) {
	results := make([]StepResult, 0, len(p.Steps))
	for i, step := range p.Steps {
		suite, err := lookup.Lookup(step.Suite)
		if err != nil {
			return results, fmt.Errorf("run[%d]: %w", i, err)
		}

		reports, err := runner.RunBenchmarks(suite, step.Prefix)
		results = append(results, StepResult{Step: step, Reports: reports})
		if err != nil {
			return results, fmt.Errorf("run[%d]: %w", i, err)
		}
	}
	return results, nil
}
