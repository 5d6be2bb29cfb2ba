package cmd

import (
	"github.com/spf13/cobra"
)

// dumpCmd represents the dump command
var dumpCmd = &cobra.Command{
	Use:   "dump",
	Short: "Dump the achievements file from standard input",
	Long: `Decode the achievements file on standard input and print a full
rendering of every record to standard error. Opaque progress payloads are
shown as hex.

Example:
  achv dump < achievements.dat`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runDump()
	},
}

func runDump() error {
	file, err := decodeStdin()
	if err != nil {
		return err
	}
	return file.Dump(stderr)
}

func init() {
	rootCmd.AddCommand(dumpCmd)
}
