package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/saveforge/achv/pkg/codec"
	"github.com/saveforge/achv/pkg/history"
)

var deleteBackupDir string

// deleteCmd represents the delete command
var deleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete one achievement and write the edited file",
	Long: `Decode the achievements file on standard input, remove the record
with the given id, and write the edited file to standard output. The command
fails, writing nothing to standard output, if the id is absent.

With --backup-dir the original input bytes are snapshotted into the history
store before any output is produced.

Example:
  achv delete rocket-launched < achievements.dat > edited.dat`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runDelete(args[0], deleteBackupDir)
	},
}

func runDelete(id, backupDir string) error {
	data, err := io.ReadAll(stdin)
	if err != nil {
		return fmt.Errorf("failed to read standard input: %w", err)
	}

	file, err := codec.Decode(data)
	if err != nil {
		return err
	}

	if backupDir != "" {
		store, err := history.Open(backupDir)
		if err != nil {
			return err
		}
		defer store.Close()

		snapshotID, err := store.Snapshot(data)
		if err != nil {
			return err
		}
		fmt.Fprintf(stderr, "Saved snapshot %s\n", snapshotID)
	}

	if err := file.Delete(id); err != nil {
		return err
	}

	// Nothing reaches standard output until the edit has succeeded.
	if _, err := stdout.Write(file.Encode()); err != nil {
		return fmt.Errorf("failed to write edited file: %w", err)
	}
	return nil
}

func init() {
	rootCmd.AddCommand(deleteCmd)
	deleteCmd.Flags().StringVar(&deleteBackupDir, "backup-dir", "", "Snapshot the original file into this history store before editing")
}
