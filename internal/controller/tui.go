package controller

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	m "runnergen.dev/pkg/runnergen/internal/model"
)

// defaultPageThreshold is the listing height above which the pager is used.
const defaultPageThreshold = 30

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	dimStyle    = lipgloss.NewStyle().Faint(true)
	okStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	staleStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	failedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

// TUI implements UI with styled output and an interactive pager for long listings.
// Dependency lists and diffs stay plain so they can be piped.
type TUI struct {
	*SimpleUI
	cmd           *cobra.Command
	pageThreshold int
}

// NewTUI creates a new TUI writing to the command output.
func NewTUI(cmd *cobra.Command) *TUI {
	return &TUI{
		SimpleUI:      NewSimpleUI(cmd),
		cmd:           cmd,
		pageThreshold: defaultPageThreshold,
	}
}

// DisplayTests shows the tests found in one file.
func (t *TUI) DisplayTests(ctx context.Context, scan m.Scan) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return t.show(string(scan.Source.Path), renderTestList(scan.Tests))
}

// DisplayResult shows what one generation did.
func (t *TUI) DisplayResult(ctx context.Context, result m.Result) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if result.Stale() {
		return t.SimpleUI.DisplayResult(ctx, result)
	}

	out := t.cmd.OutOrStdout()

	if len(result.Written) == 0 {
		_, err := fmt.Fprintln(out, dimStyle.Render(fmt.Sprintf("• %s is up to date", result.Output)))
		return err
	}

	for _, path := range result.Written {
		line := okStyle.Render("✓ wrote") + fmt.Sprintf(" %s (%d tests)", path, result.Tests)
		if _, err := fmt.Fprintln(out, line); err != nil {
			return err
		}
	}

	return nil
}

// DisplayBatch shows the outcome of every file of a batch run.
func (t *TUI) DisplayBatch(ctx context.Context, results []m.Result) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return t.show("Batch generation", renderBatchList(results))
}

func (t *TUI) show(title, content string) error {
	out := t.cmd.OutOrStdout()

	if lipgloss.Height(content) <= t.pageThreshold {
		_, err := fmt.Fprint(out, titleStyle.Render(title)+"\n\n"+content)
		return err
	}

	program := tea.NewProgram(
		newPagerModel(title, content),
		tea.WithOutput(out),
		tea.WithInput(t.cmd.InOrStdin()),
		tea.WithAltScreen(),
	)

	if _, err := program.Run(); err != nil {
		return fmt.Errorf("run pager: %w", err)
	}

	return nil
}

func renderTestList(tests []m.TestRecord) string {
	var b strings.Builder

	if len(tests) == 0 {
		b.WriteString("  No tests found\n")
		return b.String()
	}

	rows, total := testRows(tests)

	width := 0
	for _, row := range rows {
		width = max(width, len(row.name))
	}

	for _, row := range rows {
		line := fmt.Sprintf("  %-*s  line %-5d %s", width, row.name, row.line, row.runs)
		if row.runs == statusSkipped {
			line = dimStyle.Render(line)
		}

		b.WriteString(line + "\n")
	}

	fmt.Fprintf(&b, "\n  %d tests, %d runs\n", len(rows), total)

	return b.String()
}

func renderBatchList(results []m.Result) string {
	var b strings.Builder

	counts := map[string]int{}

	for _, result := range results {
		status := resultStatus(result)
		counts[status]++

		fmt.Fprintf(&b, "  %s %s -> %s (%d tests)\n", styledStatus(status), result.Input, result.Output, result.Tests)

		if result.Failed() {
			b.WriteString(failedStyle.Render("      "+result.Failure) + "\n")
		}
	}

	fmt.Fprintf(&b, "\n  %d files: %d written, %d up to date, %d stale, %d failed\n",
		len(results), counts[statusWritten], counts[statusUpToDate], counts[statusStale], counts[statusFailed])

	return b.String()
}

func styledStatus(status string) string {
	label := fmt.Sprintf("%-10s", status)

	switch status {
	case statusWritten:
		return okStyle.Render(label)
	case statusStale:
		return staleStyle.Render(label)
	case statusFailed:
		return failedStyle.Render(label)
	default:
		return dimStyle.Render(label)
	}
}

type pagerKeyMap struct {
	Quit   key.Binding
	Top    key.Binding
	Bottom key.Binding
}

var pagerKeys = pagerKeyMap{
	Quit:   key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
	Top:    key.NewBinding(key.WithKeys("g", "home"), key.WithHelp("g", "top")),
	Bottom: key.NewBinding(key.WithKeys("G", "end"), key.WithHelp("G", "bottom")),
}

// pagerModel is a Bubble Tea model scrolling a pre-rendered listing.
type pagerModel struct {
	title    string
	content  string
	viewport viewport.Model
	ready    bool
}

func newPagerModel(title, content string) pagerModel {
	return pagerModel{title: title, content: content}
}

func (p pagerModel) Init() tea.Cmd {
	return nil
}

func (p pagerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, pagerKeys.Quit):
			return p, tea.Quit
		case key.Matches(msg, pagerKeys.Top):
			p.viewport.GotoTop()
			return p, nil
		case key.Matches(msg, pagerKeys.Bottom):
			p.viewport.GotoBottom()
			return p, nil
		}

	case tea.WindowSizeMsg:
		chrome := lipgloss.Height(p.headerView()) + lipgloss.Height(p.footerView())

		if !p.ready {
			p.viewport = viewport.New(msg.Width, max(msg.Height-chrome, 1))
			p.viewport.SetContent(p.content)
			p.ready = true
		} else {
			p.viewport.Width = msg.Width
			p.viewport.Height = max(msg.Height-chrome, 1)
		}
	}

	var cmd tea.Cmd
	p.viewport, cmd = p.viewport.Update(msg)

	return p, cmd
}

func (p pagerModel) View() string {
	if !p.ready {
		return "\n  Initializing..."
	}

	return p.headerView() + "\n" + p.viewport.View() + "\n" + p.footerView()
}

func (p pagerModel) headerView() string {
	return titleStyle.Render(p.title)
}

func (p pagerModel) footerView() string {
	return dimStyle.Render(fmt.Sprintf("%3.f%% | ↑/k up | ↓/j down | %s top | %s bottom | %s quit",
		p.viewport.ScrollPercent()*100,
		pagerKeys.Top.Help().Key, pagerKeys.Bottom.Help().Key, pagerKeys.Quit.Help().Key))
}
