package controller

import (
	"bytes"
	"context"
	"fmt"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	m "runnergen.dev/pkg/runnergen/internal/model"
)

// SimpleUI implements UI by printing plain text and tables to the command output.
type SimpleUI struct {
	cmd *cobra.Command
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// DisplayTests prints the tests found in one file.
func (s *SimpleUI) DisplayTests(ctx context.Context, scan m.Scan) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.printf("%s", renderTestTable(scan))

	return nil
}

func renderTestTable(scan m.Scan) string {
	var tableBuffer bytes.Buffer

	rows, total := testRows(scan.Tests)

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Test", "Line", "Runs"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_RIGHT})

	for _, row := range rows {
		table.Append([]string{row.name, fmt.Sprintf("%d", row.line), row.runs})
	}

	table.SetFooter([]string{
		fmt.Sprintf("Total Tests %d", len(rows)),
		"",
		fmt.Sprintf("%d", total),
	})

	table.Render()

	return tableBuffer.String()
}

// DisplayResult prints what one generation did.
func (s *SimpleUI) DisplayResult(ctx context.Context, result m.Result) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if result.Stale() {
		s.printf("%s", result.Diff)
		return nil
	}

	if len(result.Written) == 0 {
		s.printf("%s is up to date\n", result.Output)
		return nil
	}

	for _, path := range result.Written {
		s.printf("wrote %s (%d tests)\n", path, result.Tests)
	}

	return nil
}

// DisplayBatch prints a summary table of a batch run.
func (s *SimpleUI) DisplayBatch(ctx context.Context, results []m.Result) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.printf("%s", renderBatchTable(results))

	for _, result := range results {
		if result.Stale() {
			s.printf("%s", result.Diff)
		}
	}

	return nil
}

func renderBatchTable(results []m.Result) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Input", "Runner", "Tests", "Status"})
	table.SetBorder(false)
	table.SetCenterSeparator("")

	written := 0
	tests := 0

	for _, result := range results {
		status := resultStatus(result)
		if status == statusWritten {
			written++
		}

		tests += result.Tests

		table.Append([]string{
			string(result.Input),
			string(result.Output),
			fmt.Sprintf("%d", result.Tests),
			status,
		})
	}

	table.SetFooter([]string{
		fmt.Sprintf("Total Files %d", len(results)),
		fmt.Sprintf("Written %d", written),
		fmt.Sprintf("%d", tests),
		"",
	})

	table.Render()

	return tableBuffer.String()
}

// DisplayDependencies prints one participating file per line.
func (s *SimpleUI) DisplayDependencies(ctx context.Context, files []m.Path) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	for _, file := range files {
		s.printf("%s\n", file)
	}

	return nil
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}
