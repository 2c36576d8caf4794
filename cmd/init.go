package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"runnergen.dev/pkg/runnergen/internal/config"
	m "runnergen.dev/pkg/runnergen/internal/model"
)

// initCmd represents the init command.
var initCmd = newInitCmd()

func newInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Generate a default runnergen.yaml configuration file",
		Long: `Create a runnergen.yaml in the current working directory populated with the
current defaults so it can be edited manually. Its log section configures
logging; pass the file on the command line to use its unity section.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			targetPath := m.Path(filepath.Join(configFolderPath, configFileName))

			if _, err := fsAdapter.FileInfo(targetPath); err == nil {
				return fmt.Errorf("failed to write config file: %s already exists", targetPath)
			} else if !errors.Is(err, os.ErrNotExist) {
				return fmt.Errorf("failed to write config file: %w", err)
			}

			content, err := config.MarshalDocument(defaultDocument())
			if err != nil {
				return err
			}

			if err := fsAdapter.WriteFile(targetPath, content, 0o644); err != nil {
				return fmt.Errorf("failed to write config file: %w", err)
			}

			cmd.Printf("wrote %s\n", targetPath)

			return nil
		},
	}
}

func defaultDocument() config.Document {
	return config.Document{
		Version: viper.GetInt(configVersionKey),
		Log: config.LogSettings{
			Filename:   viper.GetString(logFilenameKey),
			Level:      viper.GetString(logLevelKey),
			Verbose:    viper.GetBool(logVerboseKey),
			MaxSize:    viper.GetInt(logMaxSizeKey),
			MaxBackups: viper.GetInt(logMaxBackupsKey),
			MaxAge:     viper.GetInt(logMaxAgeKey),
			Compress:   viper.GetBool(logCompressKey),
		},
		Unity: m.DefaultOptions(),
	}
}

func init() {
	rootCmd.AddCommand(initCmd)
}
