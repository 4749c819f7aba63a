// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/glbench/glbench/internal/benchmark"
	"github.com/glbench/glbench/internal/config"
	"github.com/glbench/glbench/internal/suites"
	"github.com/glbench/glbench/internal/testutil"
)

var (
	errVertexLost = errors.New("vertex buffer lost")
	errNoConfig   = errors.New("config unavailable")
)

type (
	staticConfig struct {
		cfg *config.Config
		err error
	}

	// harness is an App wired to in-memory suites and buffers.
	harness struct {
		app    *App
		stdout bytes.Buffer
		stderr bytes.Buffer

		draw, blit, reset, parse, broken testutil.Counter
		catalogOpts                      suites.Options
	}
)

func (s staticConfig) Load(context.Context, config.LoadOptions) (*config.Config, error) {
	if s.err != nil {
		return nil, s.err
	}
	cfg := *s.cfg
	return &cfg, nil
}

func newHarness(t *testing.T, cfg *config.Config) *harness {
	t.Helper()

	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	h := &harness{}
	h.app = NewApp(Dependencies{
		Config: staticConfig{cfg: cfg},
		Catalogs: func(opts suites.Options) (*suites.Catalog, error) {
			h.catalogOpts = opts
			c := suites.NewCatalog()
			for _, s := range []*benchmark.Suite{
				benchmark.NewSuite("render").
					MustAdd("RunDraw", h.draw.Op(), benchmark.MustSpec("draw", benchmark.WithRepetitions(3))).
					MustAdd("RunBlit", h.blit.Op(), benchmark.MustSpec("blit")).
					MustAdd("ResetState", h.reset.Op(), nil),
				benchmark.NewSuite("info").
					MustAdd("RunParse", h.parse.Op(), benchmark.MustSpec("parse", benchmark.WithRepetitions(2))),
				benchmark.NewSuite("broken").
					MustAdd("RunBroken", h.broken.FailingOp(2, errVertexLost), benchmark.MustSpec("broken", benchmark.WithRepetitions(4))),
			} {
				if err := c.Register(s); err != nil {
					return nil, err
				}
			}
			return c, nil
		},
		Stdout: &h.stdout,
		Stderr: &h.stderr,
	})
	return h
}

func (h *harness) run(args ...string) error {
	root := NewRootCommand(h.app)
	root.SetArgs(args)
	root.SetOut(&h.stdout)
	root.SetErr(&h.stderr)
	return root.ExecuteContext(context.Background())
}

// reportNames extracts the names of "<name>: <ms> [ms]" lines, failing on any other line.
func reportNames(t *testing.T, out string) []string {
	t.Helper()

	line := regexp.MustCompile(`^(.+): \d+ \[ms\]$`)
	var names []string
	for _, l := range strings.Split(strings.TrimSpace(out), "\n") {
		if l == "" {
			continue
		}
		m := line.FindStringSubmatch(l)
		if m == nil {
			t.Fatalf("unexpected output line %q", l)
		}
		names = append(names, m[1])
	}
	return names
}

func wantExitCode(t *testing.T, err error, code int) *ExitError {
	t.Helper()

	var exitErr *ExitError
	if !errors.As(err, &exitErr) {
		t.Fatalf("error = %v, want *ExitError", err)
	}
	if exitErr.Code != code {
		t.Errorf("exit code = %d, want %d (err: %v)", exitErr.Code, code, exitErr.Err)
	}
	return exitErr
}

func TestRun_AllSuitesStopsAtFailure(t *testing.T) {
	t.Parallel()

	h := newHarness(t, nil)
	err := h.run("run")

	exitErr := wantExitCode(t, err, ExitBenchmarkFailed)
	if !errors.Is(exitErr, errVertexLost) || !errors.Is(exitErr, benchmark.ErrBenchmarkFailed) {
		t.Errorf("error = %v, want benchmark failure wrapping errVertexLost", exitErr)
	}

	if got := reportNames(t, h.stdout.String()); strings.Join(got, ",") != "draw,blit,parse" {
		t.Errorf("reports = %v, want draw,blit,parse", got)
	}
	if h.draw.Calls != 3 || h.blit.Calls != 1 || h.parse.Calls != 2 || h.reset.Calls != 0 {
		t.Errorf("calls draw=%d blit=%d parse=%d reset=%d", h.draw.Calls, h.blit.Calls, h.parse.Calls, h.reset.Calls)
	}
	if h.broken.Calls != 2 {
		t.Errorf("broken invoked %d times, want 2", h.broken.Calls)
	}
	if !strings.Contains(h.stderr.String(), "--verbose") {
		t.Errorf("stderr should carry the suggestion, got:\n%s", h.stderr.String())
	}
}

func TestRun_SelectedSuitesAndPrefix(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		args []string
		want string
	}{
		{name: "suite order follows arguments", args: []string{"run", "info", "render"}, want: "parse,draw,blit"},
		{name: "prefix", args: []string{"run", "render", "--prefix", "RunB"}, want: "blit"},
		{name: "prefix is case-sensitive", args: []string{"run", "render", "-p", "runb"}, want: ""},
		{name: "prefix matching only helpers", args: []string{"run", "render", "--prefix", "Reset"}, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			h := newHarness(t, nil)
			if err := h.run(tt.args...); err != nil {
				t.Fatalf("run error: %v", err)
			}
			if got := strings.Join(reportNames(t, h.stdout.String()), ","); got != tt.want {
				t.Errorf("reports = %q, want %q", got, tt.want)
			}
			if h.reset.Calls != 0 {
				t.Error("unmarked operation was invoked")
			}
		})
	}
}

func TestRun_ConfigDefaults(t *testing.T) {
	t.Parallel()

	cfg := config.DefaultConfig()
	cfg.Run.Suites = []string{"render"}
	cfg.Run.Prefix = "RunD"
	cfg.Offscreen = config.OffscreenConfig{Width: 64, Height: 32}

	h := newHarness(t, cfg)
	if err := h.run("run"); err != nil {
		t.Fatalf("run error: %v", err)
	}
	if got := strings.Join(reportNames(t, h.stdout.String()), ","); got != "draw" {
		t.Errorf("reports = %q, want draw", got)
	}
	if h.catalogOpts.Offscreen.Width != 64 || h.catalogOpts.Offscreen.Height != 32 {
		t.Errorf("offscreen options = %+v, want 64x32", h.catalogOpts.Offscreen)
	}

	// An explicit empty --prefix overrides run.prefix.
	h2 := newHarness(t, cfg)
	if err := h2.run("run", "--prefix", ""); err != nil {
		t.Fatalf("run error: %v", err)
	}
	if got := strings.Join(reportNames(t, h2.stdout.String()), ","); got != "draw,blit" {
		t.Errorf("reports = %q, want draw,blit", got)
	}
}

func TestRun_UnknownSuite(t *testing.T) {
	t.Parallel()

	h := newHarness(t, nil)
	err := h.run("run", "render", "shaders")

	wantExitCode(t, err, ExitUsage)
	if !errors.Is(err, suites.ErrSuiteNotFound) {
		t.Errorf("error = %v, want ErrSuiteNotFound", err)
	}
	if h.draw.Calls != 0 {
		t.Error("suites should not run when a name does not resolve")
	}
}

func TestRun_VerboseRendersIssue(t *testing.T) {
	t.Parallel()

	h := newHarness(t, nil)
	err := h.run("run", "broken", "--verbose")

	wantExitCode(t, err, ExitBenchmarkFailed)
	stderr := h.stderr.String()
	for _, want := range []string{"Error chain:", "repetition 2/4", "vertex buffer lost"} {
		if !strings.Contains(stderr, want) {
			t.Errorf("verbose stderr missing %q:\n%s", want, stderr)
		}
	}
}

func TestRun_Plan(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "bench.toml")
	planFile := `
[[run]]
suite = "info"

[[run]]
suite = "render"
prefix = "RunB"
`
	if err := os.WriteFile(path, []byte(planFile), 0o644); err != nil {
		t.Fatal(err)
	}

	h := newHarness(t, nil)
	if err := h.run("run", "--plan", path); err != nil {
		t.Fatalf("run --plan error: %v", err)
	}
	if got := strings.Join(reportNames(t, h.stdout.String()), ","); got != "parse,blit" {
		t.Errorf("reports = %q, want parse,blit", got)
	}
	if !strings.Contains(h.stderr.String(), "2 step(s)") {
		t.Errorf("stderr summary = %q", h.stderr.String())
	}
}

func TestRun_PlanErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		plan    string
		args    []string
		code    int
		wantErr error
	}{
		{name: "invalid plan", plan: "[[run]]\nprefix = \"Run\"\n", code: ExitUsage},
		{name: "unknown suite", plan: "[[run]]\nsuite = \"shaders\"\n", code: ExitUsage},
		{name: "failing step", plan: "[[run]]\nsuite = \"broken\"\n", code: ExitBenchmarkFailed},
		{name: "suites with plan", plan: "[[run]]\nsuite = \"info\"\n", args: []string{"info"}, code: ExitUsage, wantErr: errPlanWithSuites},
		{name: "prefix with plan", plan: "[[run]]\nsuite = \"info\"\n", args: []string{"--prefix", "Run"}, code: ExitUsage, wantErr: errPlanWithPrefix},
		{name: "empty prefix with plan", plan: "[[run]]\nsuite = \"info\"\n", args: []string{"--prefix="}, code: ExitUsage, wantErr: errPlanWithPrefix},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			path := filepath.Join(t.TempDir(), "bench.toml")
			if err := os.WriteFile(path, []byte(tt.plan), 0o644); err != nil {
				t.Fatal(err)
			}

			h := newHarness(t, nil)
			args := append([]string{"run", "--plan", path}, tt.args...)
			err := h.run(args...)
			wantExitCode(t, err, tt.code)
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Errorf("error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestRun_ConfigLoadFailure(t *testing.T) {
	t.Parallel()

	h := newHarness(t, nil)
	h.app.Config = staticConfig{err: errNoConfig}

	err := h.run("run", "-v")
	wantExitCode(t, err, ExitUsage)
	if !errors.Is(err, errNoConfig) {
		t.Errorf("error = %v, want errNoConfig", err)
	}
	if !strings.Contains(h.stderr.String(), "Failed to load configuration") {
		t.Errorf("verbose stderr should render the config issue:\n%s", h.stderr.String())
	}
}

func TestRun_CatalogFailure(t *testing.T) {
	t.Parallel()

	h := newHarness(t, nil)
	h.app.Catalogs = suites.Default

	cfg := config.DefaultConfig()
	cfg.Offscreen.Width = 0
	h.app.Config = staticConfig{cfg: cfg}

	err := h.run("run")
	wantExitCode(t, err, ExitUsage)
	if !strings.Contains(err.Error(), "create offscreen context") {
		t.Errorf("error = %v", err)
	}
}

func TestList(t *testing.T) {
	t.Parallel()

	h := newHarness(t, nil)
	if err := h.run("list", "render"); err != nil {
		t.Fatalf("list error: %v", err)
	}

	out := h.stdout.String()
	for _, want := range []string{"render", "RunDraw", "draw ×3", "RunBlit", "blit ×1", "ResetState", "(not a benchmark)"} {
		if !strings.Contains(out, want) {
			t.Errorf("list output missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "info") {
		t.Errorf("list output should only show the render suite:\n%s", out)
	}
	if h.draw.Calls != 0 {
		t.Error("list must not run benchmarks")
	}
}

func TestList_PrefixAndOrder(t *testing.T) {
	t.Parallel()

	h := newHarness(t, nil)
	if err := h.run("list", "--prefix", "Run"); err != nil {
		t.Fatalf("list error: %v", err)
	}

	out := h.stdout.String()
	if strings.Contains(out, "ResetState") {
		t.Errorf("--prefix Run should hide ResetState:\n%s", out)
	}
	render, info, broken := strings.Index(out, "render"), strings.Index(out, "info"), strings.Index(out, "broken")
	if render >= info || info >= broken {
		t.Errorf("suites not listed in registration order:\n%s", out)
	}
}

func TestList_UnknownSuite(t *testing.T) {
	t.Parallel()

	h := newHarness(t, nil)
	wantExitCode(t, h.run("list", "shaders"), ExitUsage)
}

func TestExitError(t *testing.T) {
	t.Parallel()

	if got := (&ExitError{Code: 2}).Error(); got != "exit status 2" {
		t.Errorf("Error() = %q", got)
	}
	err := &ExitError{Code: 1, Err: errVertexLost}
	if err.Error() != errVertexLost.Error() || !errors.Is(err, errVertexLost) {
		t.Errorf("ExitError should expose its cause, got %v", err)
	}
}

func TestGetVersionString(t *testing.T) {
	// Not parallel: mutates package-level Version/Commit/BuildDate vars.
	origVersion, origCommit, origBuildDate := Version, Commit, BuildDate
	t.Cleanup(func() {
		Version, Commit, BuildDate = origVersion, origCommit, origBuildDate
	})

	Version, Commit, BuildDate = "dev", "unknown", "unknown"
	if got := getVersionString(); got != "dev (built from source)" {
		t.Errorf("getVersionString() = %q", got)
	}

	Version, Commit, BuildDate = "v0.3.0", "abc1234", "2026-03-01T10:00:00Z"
	if got, want := getVersionString(), "v0.3.0 (commit: abc1234, built: 2026-03-01T10:00:00Z)"; got != want {
		t.Errorf("getVersionString() = %q, want %q", got, want)
	}
}
