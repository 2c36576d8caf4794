package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "runnergen.dev/pkg/runnergen/internal/model"
	"runnergen.dev/pkg/runnergen/internal/runerr"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "project.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func newFlags(t *testing.T, args ...string) *pflag.FlagSet {
	t.Helper()

	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	RegisterFlags(fs)
	require.NoError(t, fs.Parse(args))

	return fs
}

func TestResolver_DefaultsOnly(t *testing.T) {
	opts, err := NewResolver(nil).FromSource(nil)
	require.NoError(t, err)

	assert.Equal(t, m.DefaultOptions(), opts)
}

func TestResolver_UnsetFlagsKeepDefaults(t *testing.T) {
	opts, err := NewResolver(newFlags(t)).Resolve("")
	require.NoError(t, err)

	assert.Equal(t, m.DefaultOptions(), opts)
}

func TestResolver_UnitySection(t *testing.T) {
	path := writeConfig(t, `
:unity:
  :includes:
    - Types.h
    - [Extra.h]
  :plugins:
    - :cexception
  :main_name: :auto
  :use_param_tests: true
  :suite_setup: "printf(\"go\");"
`)

	opts, err := NewResolver(nil).Resolve(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"Types.h", "Extra.h"}, opts.Includes)
	assert.Equal(t, []string{m.PluginCException}, opts.Plugins)
	assert.Equal(t, m.MainAuto, opts.MainName)
	assert.True(t, opts.UseParamTests)
	assert.Equal(t, `printf("go");`, opts.SuiteSetup)
	assert.Equal(t, "test|spec|should", opts.TestPrefix)
}

func TestResolver_CMockSectionFallback(t *testing.T) {
	path := writeConfig(t, `
cmock:
  mock_prefix: Fake
  mock_suffix: _stub
`)

	opts, err := NewResolver(nil).Resolve(path)
	require.NoError(t, err)

	assert.Equal(t, "Fake", opts.MockPrefix)
	assert.Equal(t, "_stub", opts.MockSuffix)
}

func TestResolver_UnityPreferredOverCMock(t *testing.T) {
	path := writeConfig(t, `
cmock:
  mock_prefix: FromCMock
unity:
  mock_prefix: FromUnity
`)

	opts, err := NewResolver(nil).Resolve(path)
	require.NoError(t, err)

	assert.Equal(t, "FromUnity", opts.MockPrefix)
}

func TestResolver_MissingSection(t *testing.T) {
	path := writeConfig(t, "other:\n  key: value\n")

	_, err := NewResolver(nil).Resolve(path)
	require.Error(t, err)

	assert.True(t, runerr.Is(err, runerr.MissingSection))
	assert.Contains(t, err.Error(), path)
	assert.Equal(t, 3, runerr.ExitCode(err))
}

func TestResolver_UnreadableConfig(t *testing.T) {
	_, err := NewResolver(nil).Resolve(filepath.Join(t.TempDir(), "missing.yml"))
	require.Error(t, err)

	assert.True(t, runerr.Is(err, runerr.Config))
}

func TestResolver_MalformedConfig(t *testing.T) {
	path := writeConfig(t, "unity: [unterminated\n")

	_, err := NewResolver(nil).Resolve(path)
	require.Error(t, err)

	assert.True(t, runerr.Is(err, runerr.Config))
}

func TestResolver_FromSourceMapping(t *testing.T) {
	opts, err := NewResolver(nil).FromSource(map[string]any{
		":setup_name":    "init",
		"cmdline_args":   "true",
		":plugins":       []any{":CException"},
		"omit_begin_end": 1,
	})
	require.NoError(t, err)

	assert.Equal(t, "init", opts.SetupName)
	assert.True(t, opts.CmdlineArgs)
	assert.True(t, opts.OmitBeginEnd)
	assert.Equal(t, []string{m.PluginCException}, opts.Plugins)
}

func TestResolver_FromSourceUnsupported(t *testing.T) {
	_, err := NewResolver(nil).FromSource(42)
	require.Error(t, err)

	assert.True(t, runerr.Is(err, runerr.Config))
	assert.Contains(t, err.Error(), "int")
}

func TestResolver_Precedence(t *testing.T) {
	path := writeConfig(t, `
unity:
  setup_name: fromFile
  teardown_name: fromFile
  test_prefix: fromFile
`)

	t.Setenv("RUNNERGEN_TEARDOWN_NAME", "fromEnv")
	t.Setenv("RUNNERGEN_TEST_PREFIX", "fromEnv")

	flags := newFlags(t, "--test_prefix=fromFlag")

	opts, err := NewResolver(flags).Resolve(path)
	require.NoError(t, err)

	assert.Equal(t, "fromFile", opts.SetupName)
	assert.Equal(t, "fromEnv", opts.TeardownName)
	assert.Equal(t, "fromFlag", opts.TestPrefix)
}

func TestResolver_EnvironmentList(t *testing.T) {
	t.Setenv("RUNNERGEN_DEFINES", "UNIT_TEST,FAST=1")

	opts, err := NewResolver(nil).Resolve("")
	require.NoError(t, err)

	assert.Equal(t, []string{"UNIT_TEST", "FAST=1"}, opts.Defines)
}

func TestResolver_Flags(t *testing.T) {
	tests := []struct {
		name  string
		args  []string
		check func(t *testing.T, opts m.Options)
	}{
		{
			name: "cexception switch",
			args: []string{"--cexception"},
			check: func(t *testing.T, opts m.Options) {
				assert.True(t, opts.HasPlugin(m.PluginCException))
			},
		},
		{
			name: "cexception switch does not duplicate plugin",
			args: []string{"--cexception", "--plugins=cexception"},
			check: func(t *testing.T, opts m.Options) {
				assert.Equal(t, []string{m.PluginCException}, opts.Plugins)
			},
		},
		{
			name: "boolean value",
			args: []string{"--use_param_tests=1", "--externc"},
			check: func(t *testing.T, opts m.Options) {
				assert.True(t, opts.UseParamTests)
				assert.True(t, opts.ExternC)
			},
		},
		{
			name: "list value",
			args: []string{"--includes=a.h,b.h"},
			check: func(t *testing.T, opts m.Options) {
				assert.Equal(t, []string{"a.h", "b.h"}, opts.Includes)
			},
		},
		{
			name: "header file",
			args: []string{"--header_file=out/runner.h"},
			check: func(t *testing.T, opts m.Options) {
				assert.True(t, opts.HeaderMode())
				assert.Equal(t, "out/runner.h", opts.HeaderFile)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts, err := NewResolver(newFlags(t, tt.args...)).Resolve("")
			require.NoError(t, err)

			tt.check(t, opts)
		})
	}
}

func TestResolver_ExtraIncludesAppended(t *testing.T) {
	path := writeConfig(t, "unity:\n  includes: [Config.h]\n")

	opts, err := NewResolver(nil).Resolve(path, "Extra.h")
	require.NoError(t, err)

	assert.Equal(t, []string{"Config.h", "Extra.h"}, opts.Includes)
}

func TestResolver_IndependentResolutions(t *testing.T) {
	resolver := NewResolver(nil)

	first, err := resolver.FromSource(map[string]any{"mock_prefix": "Fake"})
	require.NoError(t, err)

	second, err := resolver.FromSource(nil)
	require.NoError(t, err)

	assert.Equal(t, "Fake", first.MockPrefix)
	assert.Equal(t, "Mock", second.MockPrefix)
}

func TestMarshalDocument(t *testing.T) {
	out, err := MarshalDocument(Document{
		Log:   LogSettings{Filename: ".runnergen.log", Level: "info", MaxSize: 10},
		Unity: m.DefaultOptions(),
	})
	require.NoError(t, err)

	path := writeConfig(t, string(out))

	opts, err := NewResolver(nil).Resolve(path)
	require.NoError(t, err)

	assert.Equal(t, m.DefaultOptions(), opts)
	assert.Contains(t, string(out), "filename: .runnergen.log")
}
