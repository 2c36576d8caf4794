// Package controller provides output adapters for displaying generator results.
package controller

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	m "runnergen.dev/pkg/runnergen/internal/model"
)

// UI defines how scan and generation results are shown to the user.
// Implementations can use different output methods (simple text, TUI, etc).
type UI interface {
	DisplayTests(ctx context.Context, scan m.Scan) error
	DisplayResult(ctx context.Context, result m.Result) error
	DisplayBatch(ctx context.Context, results []m.Result) error
	DisplayDependencies(ctx context.Context, files []m.Path) error
}

// NewUI returns a TUI when writing to a terminal and a SimpleUI otherwise.
func NewUI(cmd *cobra.Command, isTTY bool) UI {
	if isTTY {
		return NewTUI(cmd)
	}

	return NewSimpleUI(cmd)
}

// IsTTY reports whether w is an interactive terminal.
func IsTTY(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}

	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

const (
	statusWritten  = "written"
	statusUpToDate = "up to date"
	statusStale    = "stale"
	statusFailed   = "failed"
	statusSkipped  = "skipped"
)

func resultStatus(result m.Result) string {
	switch {
	case result.Failed():
		return statusFailed
	case result.Stale():
		return statusStale
	case len(result.Written) > 0:
		return statusWritten
	default:
		return statusUpToDate
	}
}

// testRow is one line of the test listing.
type testRow struct {
	name string
	line int
	runs string
}

func testRows(tests []m.TestRecord) ([]testRow, int) {
	rows := make([]testRow, 0, len(tests))
	total := 0

	for _, test := range tests {
		row := testRow{name: test.Name, line: test.Line, runs: "1"}

		switch {
		case test.Skipped():
			row.runs = statusSkipped
		case test.Parameterized:
			row.runs = fmt.Sprintf("%d", len(test.ParameterSets))
			total += len(test.ParameterSets)
		default:
			total++
		}

		rows = append(rows, row)
	}

	return rows, total
}
