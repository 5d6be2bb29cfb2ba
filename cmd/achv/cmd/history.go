package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/saveforge/achv/pkg/codec"
	"github.com/saveforge/achv/pkg/history"
)

var historyDir string

// historyCmd groups the snapshot store subcommands.
var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Inspect pre-edit snapshots",
	Long: `Inspect the snapshot store written by 'achv delete --backup-dir'.
Snapshots hold the exact bytes of a file before it was edited, so a bad
delete can be undone with 'achv history restore'.`,
}

var historyListCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored snapshots",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := history.Open(historyDir)
		if err != nil {
			return err
		}
		defer store.Close()

		entries, err := store.List()
		if err != nil {
			return err
		}
		for _, entry := range entries {
			fmt.Fprintf(stderr, "%s  %d bytes\n", entry.ID, entry.Size)
		}
		return nil
	},
}

var historyShowCmd = &cobra.Command{
	Use:   "show <snapshot-id>",
	Short: "Dump the achievements in a snapshot",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := readSnapshot(args[0])
		if err != nil {
			return err
		}
		file, err := codec.Decode(data)
		if err != nil {
			return err
		}
		return file.Dump(stderr)
	},
}

var historyRestoreCmd = &cobra.Command{
	Use:   "restore <snapshot-id>",
	Short: "Write a snapshot's bytes to standard output",
	Long: `Write the exact bytes of a snapshot to standard output:

  achv history restore 2QxLfN... --backup-dir ./history > achievements.dat`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := readSnapshot(args[0])
		if err != nil {
			return err
		}
		if _, err := stdout.Write(data); err != nil {
			return fmt.Errorf("failed to write snapshot: %w", err)
		}
		return nil
	},
}

func readSnapshot(rawID string) ([]byte, error) {
	id, err := history.ParseID(rawID)
	if err != nil {
		return nil, err
	}

	store, err := history.Open(historyDir)
	if err != nil {
		return nil, err
	}
	defer store.Close()

	return store.Get(id)
}

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.AddCommand(historyListCmd)
	historyCmd.AddCommand(historyShowCmd)
	historyCmd.AddCommand(historyRestoreCmd)
	historyCmd.PersistentFlags().StringVar(&historyDir, "backup-dir", "./history", "Snapshot store directory")
}
