package cmd

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"runnergen.dev/pkg/runnergen/internal/controller"
	controllermocks "runnergen.dev/pkg/runnergen/internal/controller/mocks"
	m "runnergen.dev/pkg/runnergen/internal/model"
	"runnergen.dev/pkg/runnergen/internal/runerr"
)

const mathTestSource = `#include "unity.h"
#include "math.h"

void setUp(void){}

void test_add(void){ TEST_ASSERT_EQUAL(2, add(1,1)); }
`

// testHarness is a fresh command tree writing into buffers.
type testHarness struct {
	cmd    *cobra.Command
	out    *bytes.Buffer
	errOut *bytes.Buffer
	logs   string
}

func newTestHarness(t *testing.T) *testHarness {
	t.Helper()

	cmd := newRootCmd()
	cmd.AddCommand(newListCmd(), newBatchCmd(), newInitCmd(), newVersionCmd())

	h := &testHarness{
		cmd:    cmd,
		out:    &bytes.Buffer{},
		errOut: &bytes.Buffer{},
		logs:   filepath.Join(t.TempDir(), "runnergen.log"),
	}
	cmd.SetOut(h.out)
	cmd.SetErr(h.errOut)

	originalUI := ui
	ui = controller.NewSimpleUI(cmd)
	t.Cleanup(func() { ui = originalUI })

	return h
}

func (h *testHarness) run(args ...string) int {
	return execute(h.cmd, append(args, "--"+logFileFlagName, h.logs))
}

func writeSource(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	return path
}

func chdir(t *testing.T, dir string) {
	t.Helper()

	originalWD, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { require.NoError(t, os.Chdir(originalWD)) })
}

func TestParseInvocation(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want invocation
	}{
		{"empty", []string{}, invocation{}},
		{"input only", []string{"test_a.c"}, invocation{files: []string{"test_a.c"}}},
		{
			"everything",
			[]string{"project.yml", "Extra.h", "test_a.c", "Types.hpp", "out.c"},
			invocation{
				configFile: "project.yml",
				includes:   []string{"Extra.h", "Types.hpp"},
				files:      []string{"test_a.c", "out.c"},
			},
		},
		{
			"last config wins",
			[]string{"a.yaml", "b.yml", "test_a.c"},
			invocation{configFile: "b.yml", files: []string{"test_a.c"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, parseInvocation(tt.args))
		})
	}
}

func TestNormalizeArgs(t *testing.T) {
	got := normalizeArgs([]string{"-cexception", "-externc", "-externcincludes", "-v", "--main_name=run", "test_a.c"})

	assert.Equal(t, []string{"--cexception", "--externc", "--externcincludes", "-v", "--main_name=run", "test_a.c"}, got)
}

func TestNewRootCmd(t *testing.T) {
	cmd := newRootCmd()
	assert.Equal(t, "runnergen", cmd.Name())
	assert.NotEmpty(t, cmd.Short)
	assert.Equal(t, rootLongDescription, cmd.Long)

	for _, name := range []string{"includes", "test_prefix", "use_param_tests", "cexception", checkFlagName, verboseFlagName} {
		assert.NotNil(t, cmd.PersistentFlags().Lookup(name), name)
	}

	assert.NotNil(t, cmd.Flags().Lookup(depsFlagName))
}

func TestInit(t *testing.T) {
	// Test that init() created all the necessary instances
	assert.NotNil(t, ui)
	assert.NotNil(t, fsAdapter)
	assert.NotNil(t, resultStore)
	assert.NotNil(t, generator)
}

func TestRootCmd_Generate(t *testing.T) {
	dir := t.TempDir()
	input := writeSource(t, dir, "test_math.c", mathTestSource)
	h := newTestHarness(t)

	code := h.run(input)
	require.Equal(t, 0, code, h.errOut.String())

	runner := filepath.Join(dir, "test_math_Runner.c")
	content, err := os.ReadFile(runner)
	require.NoError(t, err)

	assert.Contains(t, string(content), "extern void test_add(void);")
	assert.Contains(t, h.out.String(), "wrote "+runner+" (1 tests)")

	h = newTestHarness(t)
	require.Equal(t, 0, h.run(input))
	assert.Contains(t, h.out.String(), "is up to date")
}

func TestRootCmd_GenerateWithConfigHeaderAndOutput(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	writeSource(t, dir, "test_math.c", mathTestSource)
	writeSource(t, dir, "project.yml", ":unity:\n  :main_name: :auto\n")
	h := newTestHarness(t)

	code := h.run("project.yml", "Extra.h", "test_math.c", "custom_runner.c", "-cexception")
	require.Equal(t, 0, code, h.errOut.String())

	content, err := os.ReadFile(filepath.Join(dir, "custom_runner.c"))
	require.NoError(t, err)

	assert.Contains(t, string(content), `#include "Extra.h"`)
	assert.Contains(t, string(content), `#include "CException.h"`)
	assert.Contains(t, string(content), "int main_test_math(void)")
	assert.NoFileExists(t, filepath.Join(dir, "test_math_Runner.c"))
}

func TestRootCmd_Flags(t *testing.T) {
	dir := t.TempDir()
	input := writeSource(t, dir, "test_math.c", mathTestSource)
	h := newTestHarness(t)

	code := h.run("--setup_name=init", "--use_param_tests=1", input)
	require.Equal(t, 0, code, h.errOut.String())

	content, err := os.ReadFile(filepath.Join(dir, "test_math_Runner.c"))
	require.NoError(t, err)

	assert.Contains(t, string(content), "extern void init(void);")
}

func TestRootCmd_Deps(t *testing.T) {
	dir := t.TempDir()
	input := writeSource(t, dir, "test_math.c", mathTestSource)
	h := newTestHarness(t)

	code := h.run("--deps", input)
	require.Equal(t, 0, code, h.errOut.String())

	runner := filepath.Join(dir, "test_math_Runner.c")
	assert.Equal(t, input+"\n"+runner+"\nmath.c\n", h.out.String())
}

func TestRootCmd_Check(t *testing.T) {
	dir := t.TempDir()
	input := writeSource(t, dir, "test_math.c", mathTestSource)

	runner := filepath.Join(dir, "test_math_Runner.c")

	h := newTestHarness(t)
	code := h.run("--check", input)

	assert.Equal(t, 1, code)
	assert.Contains(t, h.out.String(), "+++ "+runner+" (generated)")
	assert.NoFileExists(t, runner)

	require.Equal(t, 0, newTestHarness(t).run(input))

	h = newTestHarness(t)
	assert.Equal(t, 0, h.run("--check", input), h.errOut.String())
}

func TestRootCmd_ExitCodes(t *testing.T) {
	dir := t.TempDir()
	input := writeSource(t, dir, "test_math.c", mathTestSource)
	noSection := writeSource(t, dir, "other.yml", "other:\n  key: value\n")

	tests := []struct {
		name       string
		args       []string
		wantCode   int
		wantOutput string
		wantErr    string
	}{
		{"no input prints usage", []string{}, 2, "Usage:", "NO_INPUT"},
		{"config without section", []string{noSection, input}, 3, "", "MISSING_SECTION"},
		{"missing input", []string{filepath.Join(dir, "test_missing.c")}, 10, "", "IO"},
		{"too many files", []string{input, "a.c", "b.c"}, 1, "", "unexpected arguments"},
		{"unknown flag", []string{"--no-such-flag", input}, 1, "", "unknown flag"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newTestHarness(t)

			code := h.run(tt.args...)

			assert.Equal(t, tt.wantCode, code)
			assert.Contains(t, h.out.String(), tt.wantOutput)
			assert.Contains(t, h.errOut.String(), tt.wantErr)
		})
	}
}

func TestRootCmd_DisplayFailure(t *testing.T) {
	dir := t.TempDir()
	input := writeSource(t, dir, "test_math.c", mathTestSource)
	h := newTestHarness(t)

	mockUI := controllermocks.NewMockUI(t)
	mockUI.EXPECT().
		DisplayResult(mock.Anything, mock.MatchedBy(func(result m.Result) bool { return result.Tests == 1 })).
		Return(errors.New("display failed")).
		Once()
	ui = mockUI

	assert.Equal(t, 1, h.run(input))
	assert.Contains(t, h.errOut.String(), "display failed")
}

func TestListCmd_PassesScanToUI(t *testing.T) {
	dir := t.TempDir()
	input := writeSource(t, dir, "test_scale.c", paramTestSource)
	h := newTestHarness(t)

	mockUI := controllermocks.NewMockUI(t)
	mockUI.EXPECT().
		DisplayTests(mock.Anything, mock.Anything).
		Run(func(_ context.Context, scan m.Scan) {
			assert.Equal(t, m.Path(input), scan.Source.Path)
			assert.Len(t, scan.Tests, 3)
		}).
		Return(nil).
		Once()
	ui = mockUI

	assert.Equal(t, 0, h.run("list", input), h.errOut.String())
}

func TestExecute_ProcessLevel_Failure(t *testing.T) {
	if os.Getenv("TEST_EXECUTE_SUBPROCESS_FAIL") == "1" {
		// This runs in the subprocess
		originalRootCmd := rootCmd
		mockCmd := &cobra.Command{
			Use: "test",
			RunE: func(_ *cobra.Command, _ []string) error {
				fmt.Fprintln(os.Stderr, "error occurred")
				return runerr.New(runerr.NoInput, "", "no input")
			},
		}
		mockCmd.SetOut(os.Stdout)
		mockCmd.SetErr(os.Stderr)
		rootCmd = mockCmd
		defer func() { rootCmd = originalRootCmd }()

		os.Args = []string{"runnergen"}
		Execute() // This should call os.Exit(2)
		return
	}

	// Parent process: spawn subprocess
	cmd := exec.Command(os.Args[0], "-test.run=TestExecute_ProcessLevel_Failure")
	cmd.Env = append(os.Environ(), "TEST_EXECUTE_SUBPROCESS_FAIL=1")
	output, err := cmd.CombinedOutput()

	require.Error(t, err)

	if exitErr, ok := err.(*exec.ExitError); ok {
		assert.Equal(t, 2, exitErr.ExitCode())
	} else {
		assert.Fail(t, "expected exec.ExitError", "got %T", err)
	}

	assert.Contains(t, string(output), "error occurred")
}
