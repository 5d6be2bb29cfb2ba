package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/saveforge/achv/pkg/api"
	"github.com/saveforge/achv/pkg/config"
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve an achievements file over the inspection API",
	Long: `Start the HTTP inspection API around an achievements file. The file
is decoded once at startup; deletes through the API rewrite it in place,
snapshotting the prior bytes when a history directory is configured.

Flags override values from the config file.

Examples:
  achv serve --file achievements.dat
  achv serve --file achievements.dat --port 9100 --api-key mysecretkey`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		filePath, _ := cmd.Flags().GetString("file")
		configPath, _ := cmd.Flags().GetString("config")

		cfg := config.DefaultConfig()
		if config.ConfigExists(configPath) {
			loaded, err := config.LoadConfig(configPath)
			if err != nil {
				return err
			}
			cfg = loaded
		}

		if cmd.Flags().Changed("bind") {
			cfg.Bind, _ = cmd.Flags().GetString("bind")
		}
		if cmd.Flags().Changed("port") {
			cfg.Port, _ = cmd.Flags().GetInt("port")
		}
		if cmd.Flags().Changed("api-key") {
			cfg.Security.APIKey, _ = cmd.Flags().GetString("api-key")
		}
		if cmd.Flags().Changed("backup-dir") {
			cfg.History.Dir, _ = cmd.Flags().GetString("backup-dir")
		}

		// "auto" is the unbootstrapped placeholder; serving with it would
		// mean a guessable key, so treat it as no key at all.
		apiKey := cfg.Security.APIKey
		if apiKey == "auto" {
			apiKey = ""
			fmt.Fprintln(stderr, "Warning: no API key configured, serving unauthenticated (run 'achv init' or pass --api-key)")
		}

		serverConfig := api.ServerConfig{
			Bind:       cfg.Bind,
			Port:       cfg.Port,
			APIKey:     apiKey,
			FilePath:   filePath,
			HistoryDir: cfg.History.Dir,
		}

		return container.GetServerFactory().CreateServerStarter().StartServer(serverConfig)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().String("file", "", "Achievements file to serve (required)")
	serveCmd.Flags().String("config", config.GetDefaultConfigPath(), "Config file path")
	serveCmd.Flags().String("bind", "127.0.0.1", "Address to bind")
	serveCmd.Flags().IntP("port", "p", 8190, "Port to listen on")
	serveCmd.Flags().String("api-key", "", "API key protecting the /api/v1 routes")
	serveCmd.Flags().String("backup-dir", "", "Snapshot store directory for pre-edit backups")
	_ = serveCmd.MarkFlagRequired("file")
}
