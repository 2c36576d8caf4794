package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"runnergen.dev/pkg/runnergen/internal/config"
	m "runnergen.dev/pkg/runnergen/internal/model"
	"runnergen.dev/pkg/runnergen/internal/runerr"
)

// listCmd represents the list command.
var listCmd = newListCmd()

func newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list [config.yml] input_test_file",
		Short: "List the tests found in a C test file",
		Long:  listLongDescription,
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			inv := parseInvocation(args)

			if len(inv.files) == 0 {
				_ = cmd.Usage()
				return runerr.New(runerr.NoInput, "", "no input test file given")
			}

			if len(inv.files) > 1 {
				return fmt.Errorf("unexpected arguments %v", inv.files[1:])
			}

			opts, err := config.NewResolver(cmd.Flags()).Resolve(inv.configFile, inv.includes...)
			if err != nil {
				return err
			}

			ctx := commandContext(cmd)

			scan, err := generator.Scan(ctx, m.Path(inv.files[0]), opts)
			if err != nil {
				return err
			}

			return ui.DisplayTests(ctx, scan)
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(listCmd)
}
