package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"runnergen.dev/pkg/runnergen/internal/config"
	"runnergen.dev/pkg/runnergen/internal/domain"
	m "runnergen.dev/pkg/runnergen/internal/model"
	"runnergen.dev/pkg/runnergen/internal/runerr"
)

var batchRecursiveFlag bool
var batchPatternFlag string
var batchOutputDirFlag string
var batchParallelFlag int
var batchManifestFlag string

// batchCmd represents the batch command.
var batchCmd = newBatchCmd()

func newBatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "batch [config.yml] path...",
		Short: "Generate runners for every test file under the given paths",
		Long:  batchLongDescription,
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			inv := parseInvocation(args)

			if len(inv.files) == 0 {
				_ = cmd.Usage()
				return runerr.New(runerr.NoInput, "", "no input paths given")
			}

			opts, err := config.NewResolver(cmd.Flags()).Resolve(inv.configFile, inv.includes...)
			if err != nil {
				return err
			}

			ctx := commandContext(cmd)

			results, genErr := generator.GenerateAll(ctx, domain.BatchArgs{
				Paths:     parsePaths(inv.files),
				Recursive: batchRecursiveFlag,
				Pattern:   viper.GetString(batchPatternConfigKey),
				OutputDir: m.Path(batchOutputDirFlag),
				Parallel:  viper.GetInt(batchParallelConfigKey),
				Options:   opts,
				Check:     checkFlag,
			})

			if len(results) > 0 {
				if err := ui.DisplayBatch(ctx, results); err != nil {
					return err
				}
			}

			if batchManifestFlag != "" && len(results) > 0 {
				if err := resultStore.SaveResults(m.Path(batchManifestFlag), results); err != nil {
					return runerr.Wrap(runerr.IO, batchManifestFlag, "save manifest", err)
				}
			}

			return genErr
		},
	}

	configureBatchFlags(cmd)

	return cmd
}

func init() {
	rootCmd.AddCommand(batchCmd)
}

func configureBatchFlags(cmd *cobra.Command) {
	cmd.Flags().BoolVarP(&batchRecursiveFlag, recursiveFlagName, "r", false, "search directories recursively")

	cmd.Flags().StringVar(&batchPatternFlag, patternFlagName, "", "regex selecting test files by base name in directories")
	bindFlagToConfig(cmd.Flags().Lookup(patternFlagName), batchPatternConfigKey)

	cmd.Flags().StringVarP(&batchOutputDirFlag, outputDirFlagName, "o", "", "directory for generated runners (default: next to each input)")

	cmd.Flags().IntVarP(&batchParallelFlag, parallelFlagName, "p", defaultBatchParallel, "number of files generated concurrently")
	bindFlagToConfig(cmd.Flags().Lookup(parallelFlagName), batchParallelConfigKey)

	cmd.Flags().StringVar(&batchManifestFlag, manifestFlagName, "", "write a YAML manifest of the generated runners to this path")
}

func parsePaths(args []string) []m.Path {
	paths := make([]m.Path, 0, len(args))
	for _, arg := range args {
		paths = append(paths, m.Path(arg))
	}

	return paths
}
