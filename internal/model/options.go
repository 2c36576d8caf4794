package model

import "slices"

// MainAuto is the main_name value that derives the entry point name from the input file.
const MainAuto = "auto"

// PluginCException enables CException support in the generated runner.
const PluginCException = "cexception"

// Options is the resolved option set. It is treated as immutable once resolved:
// stages receive it by value and derive new values instead of mutating it.
type Options struct {
	Includes []string `mapstructure:"includes" yaml:"includes"`
	Defines  []string `mapstructure:"defines" yaml:"defines"`
	Plugins  []string `mapstructure:"plugins" yaml:"plugins"`

	Framework  string `mapstructure:"framework" yaml:"framework"`
	TestPrefix string `mapstructure:"test_prefix" yaml:"test_prefix"`
	MockPrefix string `mapstructure:"mock_prefix" yaml:"mock_prefix"`
	MockSuffix string `mapstructure:"mock_suffix" yaml:"mock_suffix"`

	SetupName      string `mapstructure:"setup_name" yaml:"setup_name"`
	TeardownName   string `mapstructure:"teardown_name" yaml:"teardown_name"`
	TestResetName  string `mapstructure:"test_reset_name" yaml:"test_reset_name"`
	TestVerifyName string `mapstructure:"test_verify_name" yaml:"test_verify_name"`
	MainName       string `mapstructure:"main_name" yaml:"main_name"`
	MainExportDecl string `mapstructure:"main_export_decl" yaml:"main_export_decl"`

	CmdlineArgs    bool `mapstructure:"cmdline_args" yaml:"cmdline_args"`
	OmitBeginEnd   bool `mapstructure:"omit_begin_end" yaml:"omit_begin_end"`
	UseParamTests  bool `mapstructure:"use_param_tests" yaml:"use_param_tests"`
	UseSystemFiles bool `mapstructure:"use_system_files" yaml:"use_system_files"`

	IncludeExtensions string `mapstructure:"include_extensions" yaml:"include_extensions"`
	SourceExtensions  string `mapstructure:"source_extensions" yaml:"source_extensions"`

	SuiteSetup    string `mapstructure:"suite_setup" yaml:"suite_setup"`
	SuiteTeardown string `mapstructure:"suite_teardown" yaml:"suite_teardown"`
	HeaderFile    string `mapstructure:"header_file" yaml:"header_file"`

	ExternC               bool `mapstructure:"externc" yaml:"externc"`
	ExternCIncludes       bool `mapstructure:"externcincludes" yaml:"externcincludes"`
	EnforceStrictOrdering bool `mapstructure:"enforce_strict_ordering" yaml:"enforce_strict_ordering"`

	// Derived flags. HasSuiteSetup and HasSuiteTeardown may also be set
	// explicitly through configuration.
	HasSetup         bool `mapstructure:"-" yaml:"-"`
	HasTeardown      bool `mapstructure:"-" yaml:"-"`
	HasSuiteSetup    bool `mapstructure:"has_suite_setup" yaml:"has_suite_setup"`
	HasSuiteTeardown bool `mapstructure:"has_suite_teardown" yaml:"has_suite_teardown"`
}

// HasPlugin reports whether the named plugin is enabled.
func (o Options) HasPlugin(name string) bool {
	return slices.Contains(o.Plugins, name)
}

// HeaderMode reports whether a runner header file is requested.
func (o Options) HeaderMode() bool {
	return o.HeaderFile != ""
}

// Clone returns a copy that shares no slices with o.
func (o Options) Clone() Options {
	o.Includes = slices.Clone(o.Includes)
	o.Defines = slices.Clone(o.Defines)
	o.Plugins = slices.Clone(o.Plugins)

	return o
}

// DefaultOptions returns the option set used when nothing is configured.
func DefaultOptions() Options {
	return Options{
		Includes:          []string{},
		Defines:           []string{},
		Plugins:           []string{},
		Framework:         "unity",
		TestPrefix:        "test|spec|should",
		MockPrefix:        "Mock",
		SetupName:         "setUp",
		TeardownName:      "tearDown",
		TestResetName:     "resetTest",
		TestVerifyName:    "verifyTest",
		MainName:          "main",
		UseSystemFiles:    true,
		IncludeExtensions: "(?:hpp|hh|H|h)",
		SourceExtensions:  "(?:cpp|cc|ino|C|c)",
	}
}
