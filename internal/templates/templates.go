// Package templates holds the fixed C boilerplate rendered into every runner.
package templates

import (
	_ "embed"
	"strings"
	"text/template"

	m "runnergen.dev/pkg/runnergen/internal/model"
)

//go:embed run_test.c.tmpl
var runTestTemplate string

var runTest = template.Must(template.New("run_test.c").Parse(runTestTemplate))

// RunTestData is the view of the options used by the run_test template.
type RunTestData struct {
	SetupName    string
	TeardownName string
	CException   bool
}

// RenderRunTest renders the run_test function for opts.
func RenderRunTest(opts m.Options) (string, error) {
	var b strings.Builder

	err := runTest.Execute(&b, RunTestData{
		SetupName:    opts.SetupName,
		TeardownName: opts.TeardownName,
		CException:   opts.HasPlugin(m.PluginCException),
	})
	if err != nil {
		return "", err
	}

	return b.String(), nil
}
