package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/saveforge/achv/pkg/config"
)

// initCmd represents the init command
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default config with a generated API key",
	Long: `Create the achv config file with defaults and a freshly generated
API key for the inspection API. Refuses to overwrite an existing config.

Example:
  achv init
  achv init --config ./achv.yaml --backup-dir /var/lib/achv/history`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		configPath, _ := cmd.Flags().GetString("config")
		backupDir, _ := cmd.Flags().GetString("backup-dir")

		if config.ConfigExists(configPath) {
			return fmt.Errorf("config already exists: %s", configPath)
		}

		cfg, err := config.BootstrapConfig(configPath, backupDir)
		if err != nil {
			return err
		}

		fmt.Fprintf(stderr, "Wrote %s\n", configPath)
		fmt.Fprintf(stderr, "API key: %s\n", cfg.Security.APIKey)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
	initCmd.Flags().String("config", config.GetDefaultConfigPath(), "Config file path")
	initCmd.Flags().String("backup-dir", "", "Snapshot store directory to record in the config")
}
