package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// listCmd represents the list command
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List achievement ids from standard input",
	Long: `Decode the achievements file on standard input and print each
achievement id, one per line in file order, to standard error.

Example:
  achv list < achievements.dat`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runList()
	},
}

func runList() error {
	file, err := decodeStdin()
	if err != nil {
		return err
	}
	for _, id := range file.IDs() {
		fmt.Fprintln(stderr, id)
	}
	return nil
}

func init() {
	rootCmd.AddCommand(listCmd)
}
