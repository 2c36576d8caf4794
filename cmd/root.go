// Package cmd provides the root command and CLI setup for runnergen.
package cmd

import (
	"context"
	"fmt"
	"os"
	"regexp"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"runnergen.dev/pkg/runnergen/internal/adapter"
	"runnergen.dev/pkg/runnergen/internal/config"
	"runnergen.dev/pkg/runnergen/internal/controller"
	"runnergen.dev/pkg/runnergen/internal/domain"
	m "runnergen.dev/pkg/runnergen/internal/model"
	"runnergen.dev/pkg/runnergen/internal/runerr"
)

var fsAdapter adapter.SourceFSAdapter
var resultStore adapter.ResultStore
var generator domain.Generator
var ui controller.UI

// checkFlag renders without writing and fails when generated files are stale.
var checkFlag bool

// depsFlag prints the participating files instead of a summary.
var depsFlag bool

var verboseFlag bool
var logFileFlag string

func init() {
	// Initialize shared dependencies.
	ui = controller.NewUI(rootCmd, controller.IsTTY(os.Stdout))
	fsAdapter = adapter.NewLocalSourceFSAdapter()
	resultStore = adapter.NewResultStore(fsAdapter)
	generator = domain.NewGenerator(fsAdapter, nil)
}

const argumentsHelp = `Arguments are classified by their name:
  *.yml / *.yaml   loads configuration from its unity (or cmock) section
  *.h / *.hpp      header files are added as #includes in the runner
  input_test_file  the C file to create a runner for
  output           the runner file to generate, defaults to (input)_Runner.c`

const rootLongDescription = `Runnergen scans a C unit-test source file for test functions, fixtures,
includes and mocks, and generates the Unity test runner that invokes them.

` + argumentsHelp

const listLongDescription = `List the test functions found in a C test file, with their line
numbers and the number of runs their parameterization expands to.`

const batchLongDescription = `Generate a runner for every C test file under the given files or
directories. Directories are searched for files whose base name matches
--pattern (default ` + domain.DefaultBatchPattern + `).`

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := baseRootCmd()
	configureRootFlags(cmd)

	return cmd
}

func baseRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:           "runnergen [flags] [config.yml] [extra.h ...] input_test_file [output]",
		Short:         "Unity test runner generator",
		Long:          rootLongDescription,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			configureLogger(viper.GetString(logFilenameKey), viper.GetBool(logVerboseKey))
		},
		RunE: runGenerate,
	}
}

func configureRootFlags(cmd *cobra.Command) {
	config.RegisterFlags(cmd.PersistentFlags())

	cmd.PersistentFlags().BoolVar(&checkFlag, checkFlagName, false, "fail with a diff instead of writing when generated files are out of date")

	cmd.PersistentFlags().BoolVarP(&verboseFlag, verboseFlagName, "v", defaultLogVerbose, "log at debug level")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(verboseFlagName), logVerboseKey)

	cmd.PersistentFlags().StringVar(&logFileFlag, logFileFlagName, defaultLogFilename, "log file path")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(logFileFlagName), logFilenameKey)

	cmd.Flags().BoolVar(&depsFlag, depsFlagName, false, "print the files participating in the generation, one per line")
}

// bindFlagToConfig wires a Cobra flag to a Viper key so config/env values feed the flag.
func bindFlagToConfig(flag *pflag.Flag, key string) {
	if flag == nil {
		cobra.CheckErr(fmt.Errorf("flag for config key %q not found", key))
		return
	}

	cobra.CheckErr(viper.BindPFlag(key, flag))
}

func runGenerate(cmd *cobra.Command, args []string) error {
	inv := parseInvocation(args)

	if len(inv.files) == 0 {
		_ = cmd.Usage()
		return runerr.New(runerr.NoInput, "", "no input test file given")
	}

	if len(inv.files) > 2 {
		return fmt.Errorf("unexpected arguments %v", inv.files[2:])
	}

	opts, err := config.NewResolver(cmd.Flags()).Resolve(inv.configFile, inv.includes...)
	if err != nil {
		return err
	}

	genArgs := domain.GenerateArgs{
		Input:   m.Path(inv.files[0]),
		Options: opts,
		Check:   checkFlag,
	}
	if len(inv.files) == 2 {
		genArgs.Output = m.Path(inv.files[1])
	}

	ctx := commandContext(cmd)

	result, err := generator.Generate(ctx, genArgs)
	if result.Stale() {
		if displayErr := ui.DisplayResult(ctx, result); displayErr != nil {
			return displayErr
		}
	}

	if err != nil {
		return err
	}

	if depsFlag {
		return ui.DisplayDependencies(ctx, result.Files)
	}

	return ui.DisplayResult(ctx, result)
}

var (
	configArgPattern = regexp.MustCompile(`\.ya?ml$`)
	headerArgPattern = regexp.MustCompile(`\.(?:hpp|hh|H|h)$`)
)

// invocation is the positional arguments sorted by kind.
type invocation struct {
	configFile string
	includes   []string
	files      []string
}

// parseInvocation classifies positional arguments. The last configuration
// file named wins; headers become extra includes; everything else is a file.
func parseInvocation(args []string) invocation {
	var inv invocation

	for _, arg := range args {
		switch {
		case configArgPattern.MatchString(arg):
			inv.configFile = arg
		case headerArgPattern.MatchString(arg):
			inv.includes = append(inv.includes, arg)
		default:
			inv.files = append(inv.files, arg)
		}
	}

	return inv
}

// legacyFlags are single-dash switches accepted for compatibility.
var legacyFlags = map[string]string{
	"-cexception":      "--" + config.FlagCException,
	"-externc":         "--externc",
	"-externcincludes": "--externcincludes",
}

func normalizeArgs(args []string) []string {
	out := make([]string, 0, len(args))

	for _, arg := range args {
		if replacement, ok := legacyFlags[arg]; ok {
			arg = replacement
		}

		out = append(out, arg)
	}

	return out
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}

	return context.Background()
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if code := execute(rootCmd, os.Args[1:]); code != 0 {
		os.Exit(code)
	}
}

// execute runs cmd and maps its error to a process exit status.
func execute(cmd *cobra.Command, args []string) int {
	cmd.SetArgs(normalizeArgs(args))

	err := cmd.Execute()
	if err == nil {
		return 0
	}

	cmd.PrintErrln("Error:", err)

	return runerr.ExitCode(err)
}
