// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"slices"
	"strings"

	"github.com/charmbracelet/glamour"
	"golang.org/x/exp/maps"
)

type Id int

const (
	ConfigLoadFailedId Id = iota + 1
	SuiteNotFoundId
	BenchmarkFailedId
	ContextCreateFailedId
	PlanParseErrorId
)

type MarkdownMsg string

type HttpLink string

type Issue struct {
	id       Id          // ID used to lookup the issue
	mdMsg    MarkdownMsg // Markdown text that will be rendered
	docLinks []HttpLink
	extLinks []HttpLink // external links that might be useful for the user
}

func (i *Issue) Id() Id {
	return i.id
}

func (i *Issue) MarkdownMsg() MarkdownMsg {
	return i.mdMsg
}

func (i *Issue) DocLinks() []HttpLink {
	return slices.Clone(i.docLinks)
}

func (i *Issue) ExtLinks() []HttpLink {
	return slices.Clone(i.extLinks)
}

// Render renders the issue as terminal Markdown using the glamour style
// stylePath ("dark", "light", "auto", or a path to a JSON style).
func (i *Issue) Render(stylePath string) (string, error) {
	var md strings.Builder
	md.WriteString(string(i.mdMsg))
	if len(i.docLinks) > 0 || len(i.extLinks) > 0 {
		md.WriteString("\n\n## See also\n")
		for _, link := range i.docLinks {
			md.WriteString("- <" + string(link) + ">\n")
		}
		for _, link := range i.extLinks {
			md.WriteString("- <" + string(link) + ">\n")
		}
	}
	return render(md.String(), stylePath)
}

var (
	render = glamour.Render

	configLoadFailedIssue = &Issue{
		id: ConfigLoadFailedId,
		mdMsg: `
# Failed to load configuration!

glbench reads ` + "`config.cue`" + ` from its configuration directory, the current
directory, or the file passed with ` + "`--config`" + `.

## Things you can try:
- Show where glbench looks for the file:
~~~
$ glbench config path
~~~

- Compare your file with the defaults:
~~~
$ glbench config show
~~~

- Check that ` + "`ui.color_scheme`" + ` is one of auto, dark or light and that
  ` + "`log.level`" + ` is one of debug, info, warn or error`,
	}

	suiteNotFoundIssue = &Issue{
		id: SuiteNotFoundId,
		mdMsg: `
# Suite not found!

The requested benchmark suite is not registered.

## Things you can try:
- List the registered suites and their benchmarks:
~~~
$ glbench list
~~~

- Check the ` + "`run.suites`" + ` entry of your configuration and the ` + "`suite`" + `
  fields of your run plan`,
	}

	benchmarkFailedIssue = &Issue{
		id: BenchmarkFailedId,
		mdMsg: `
# A benchmark failed!

A benchmark operation reported an error. The run stopped at the failing
repetition and the remaining benchmarks were not executed. Reports printed
before the failure are still valid.

## Things you can try:
- Run only the failing benchmark by narrowing the prefix:
~~~
$ glbench run <suite> --prefix <operation>
~~~

- Re-run with ` + "`--verbose`" + ` to see the full error chain`,
	}

	contextCreateFailedIssue = &Issue{
		id: ContextCreateFailedId,
		mdMsg: `
# Could not create the offscreen context!

The offscreen rendering context rejected the configured surface size.

## Things you can try:
- Use a positive width and height no larger than 16384:
~~~cue
offscreen: {
	width:  256
	height: 256
}
~~~`,
	}

	planParseErrorIssue = &Issue{
		id: PlanParseErrorId,
		mdMsg: `
# Invalid run plan!

A run plan is a TOML file with one ` + "`[[run]]`" + ` table per step.

## Example:
~~~toml
[[run]]
suite = "offscreen"
prefix = "fill"

[[run]]
suite = "glerr"
~~~`,
	}

	issues = map[Id]*Issue{
		configLoadFailedIssue.Id():    configLoadFailedIssue,
		suiteNotFoundIssue.Id():       suiteNotFoundIssue,
		benchmarkFailedIssue.Id():     benchmarkFailedIssue,
		contextCreateFailedIssue.Id(): contextCreateFailedIssue,
		planParseErrorIssue.Id():      planParseErrorIssue,
	}
)

// Values returns every catalogued issue ordered by id.
func Values() []*Issue {
	values := maps.Values(issues)
	slices.SortFunc(values, func(a, b *Issue) int {
		return int(a.id) - int(b.id)
	})
	return values
}

// Get returns the issue for id, or nil when it is not catalogued.
func Get(id Id) *Issue {
	return issues[id]
}
