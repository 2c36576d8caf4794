package config

import (
	"github.com/spf13/pflag"

	m "runnergen.dev/pkg/runnergen/internal/model"
)

// flagKeys are the option keys that can be set with a --key=value flag.
var flagKeys = []string{
	keyIncludes, keyDefines, keyPlugins,
	keyFramework, keyTestPrefix, keyMockPrefix, keyMockSuffix,
	keySetupName, keyTeardownName, keyTestResetName, keyTestVerifyName,
	keyMainName, keyMainExportDecl,
	keyCmdlineArgs, keyOmitBeginEnd, keyUseParamTests, keyUseSystemFiles,
	keyIncludeExtensions, keySourceExtensions,
	keySuiteSetup, keySuiteTeardown, keyHeaderFile,
	keyExternC, keyExternCIncludes, keyEnforceStrictOrdering,
	keyHasSuiteSetup, keyHasSuiteTeardown,
}

// RegisterFlags defines one flag per option key on fs, named after the key.
func RegisterFlags(fs *pflag.FlagSet) {
	d := m.DefaultOptions()

	fs.StringSlice(keyIncludes, d.Includes, "extra headers to #include in the runner")
	fs.StringSlice(keyDefines, d.Defines, "defines injected at the top of the runner")
	fs.StringSlice(keyPlugins, d.Plugins, "plugins to enable (cexception)")

	fs.String(keyFramework, d.Framework, "test framework header name")
	fs.String(keyTestPrefix, d.TestPrefix, "regex alternation of test function prefixes")
	fs.String(keyMockPrefix, d.MockPrefix, "file name prefix of mock headers")
	fs.String(keyMockSuffix, d.MockSuffix, "file name suffix of mock headers")
	fs.String(keySetupName, d.SetupName, "redefine setUp func name to something else")
	fs.String(keyTeardownName, d.TeardownName, "redefine tearDown func name to something else")
	fs.String(keyTestResetName, d.TestResetName, "redefine resetTest func name to something else")
	fs.String(keyTestVerifyName, d.TestVerifyName, "redefine verifyTest func name to something else")
	fs.String(keyMainName, d.MainName, "redefine main func name to something else (auto derives it from the file name)")
	fs.String(keyMainExportDecl, d.MainExportDecl, "declaration specifier placed before a renamed main")
	fs.String(keyIncludeExtensions, d.IncludeExtensions, "regex of header extensions picked up from #include")
	fs.String(keySourceExtensions, d.SourceExtensions, "regex of source extensions picked up from TEST_SOURCE_FILE")
	fs.String(keySuiteSetup, d.SuiteSetup, "code to execute for setup of entire suite")
	fs.String(keySuiteTeardown, d.SuiteTeardown, "code to execute for teardown of entire suite")
	fs.String(keyHeaderFile, d.HeaderFile, "path/name of test header file to generate too")

	fs.Bool(keyCmdlineArgs, d.CmdlineArgs, "support test selection and listing from the runner command line")
	fs.Bool(keyOmitBeginEnd, d.OmitBeginEnd, "omit calls to UnityBegin and UnityEnd")
	fs.Bool(keyUseParamTests, d.UseParamTests, "enable parameterized tests")
	fs.Bool(keyUseSystemFiles, d.UseSystemFiles, "carry <system> includes into the runner")
	fs.Bool(keyExternC, d.ExternC, "add extern \"C\" for cpp support")
	fs.Bool(keyExternCIncludes, d.ExternCIncludes, "wrap framework and mock includes in extern \"C\"")
	fs.Bool(keyEnforceStrictOrdering, d.EnforceStrictOrdering, "emit CMock strict ordering globals")
	fs.Bool(keyHasSuiteSetup, d.HasSuiteSetup, "call suiteSetUp even if it is not defined in the test file")
	fs.Bool(keyHasSuiteTeardown, d.HasSuiteTeardown, "call suiteTearDown even if it is not defined in the test file")

	fs.Bool(FlagCException, false, "include cexception support")
}
