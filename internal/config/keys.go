// Package config resolves the runner generator option set from defaults, a
// YAML configuration file, the environment and command line flags.
package config

import m "runnergen.dev/pkg/runnergen/internal/model"

// EnvPrefix prefixes environment variables that override options, e.g.
// RUNNERGEN_TEST_PREFIX.
const EnvPrefix = "RUNNERGEN"

const (
	keyIncludes              = "includes"
	keyDefines               = "defines"
	keyPlugins               = "plugins"
	keyFramework             = "framework"
	keyTestPrefix            = "test_prefix"
	keyMockPrefix            = "mock_prefix"
	keyMockSuffix            = "mock_suffix"
	keySetupName             = "setup_name"
	keyTeardownName          = "teardown_name"
	keyTestResetName         = "test_reset_name"
	keyTestVerifyName        = "test_verify_name"
	keyMainName              = "main_name"
	keyMainExportDecl        = "main_export_decl"
	keyCmdlineArgs           = "cmdline_args"
	keyOmitBeginEnd          = "omit_begin_end"
	keyUseParamTests         = "use_param_tests"
	keyUseSystemFiles        = "use_system_files"
	keyIncludeExtensions     = "include_extensions"
	keySourceExtensions      = "source_extensions"
	keySuiteSetup            = "suite_setup"
	keySuiteTeardown         = "suite_teardown"
	keyHeaderFile            = "header_file"
	keyExternC               = "externc"
	keyExternCIncludes       = "externcincludes"
	keyEnforceStrictOrdering = "enforce_strict_ordering"
	keyHasSuiteSetup         = "has_suite_setup"
	keyHasSuiteTeardown      = "has_suite_teardown"

	// FlagCException enables the cexception plugin from the command line.
	FlagCException = "cexception"
)

// sectionNames are the top-level configuration sections holding options, in
// order of preference.
var sectionNames = []string{"unity", "cmock"}

func defaults() map[string]any {
	d := m.DefaultOptions()

	return map[string]any{
		keyIncludes:              d.Includes,
		keyDefines:               d.Defines,
		keyPlugins:               d.Plugins,
		keyFramework:             d.Framework,
		keyTestPrefix:            d.TestPrefix,
		keyMockPrefix:            d.MockPrefix,
		keyMockSuffix:            d.MockSuffix,
		keySetupName:             d.SetupName,
		keyTeardownName:          d.TeardownName,
		keyTestResetName:         d.TestResetName,
		keyTestVerifyName:        d.TestVerifyName,
		keyMainName:              d.MainName,
		keyMainExportDecl:        d.MainExportDecl,
		keyCmdlineArgs:           d.CmdlineArgs,
		keyOmitBeginEnd:          d.OmitBeginEnd,
		keyUseParamTests:         d.UseParamTests,
		keyUseSystemFiles:        d.UseSystemFiles,
		keyIncludeExtensions:     d.IncludeExtensions,
		keySourceExtensions:      d.SourceExtensions,
		keySuiteSetup:            d.SuiteSetup,
		keySuiteTeardown:         d.SuiteTeardown,
		keyHeaderFile:            d.HeaderFile,
		keyExternC:               d.ExternC,
		keyExternCIncludes:       d.ExternCIncludes,
		keyEnforceStrictOrdering: d.EnforceStrictOrdering,
		keyHasSuiteSetup:         d.HasSuiteSetup,
		keyHasSuiteTeardown:      d.HasSuiteTeardown,
	}
}
