package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/saveforge/achv/pkg/codec"
	"github.com/saveforge/achv/pkg/di"
)

// Byte source and sinks for the whole command tree. Commands never touch
// os.Stdin/os.Stdout directly so tests can swap these for buffers.
var (
	stdin  io.Reader = os.Stdin
	stdout io.Writer = os.Stdout
	stderr io.Writer = os.Stderr
)

var container *di.Container

// SetContainer injects the dependency container. Called from main.
func SetContainer(c *di.Container) {
	container = c
}

// SetStdio overrides the byte source and sinks (for testing).
func SetStdio(in io.Reader, out, errOut io.Writer) {
	stdin = in
	stdout = out
	stderr = errOut
}

// rootCmd represents the base command when called without any subcommands.
// Running achv with no arguments behaves like `achv dump`.
var rootCmd = &cobra.Command{
	Use:   "achv",
	Short: "achv - achievements file editor",
	Long: `achv reads a game client's achievements file from standard input and
dumps, lists, or edits it. Edited files are written to standard output so the
tool composes with shell pipes:

  achv list < achievements.dat
  achv delete rocket-launched < achievements.dat > edited.dat`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runDump()
	},
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// decodeStdin reads standard input to completion and decodes it. The whole
// file is read before decoding so trailing-data errors can be detected.
func decodeStdin() (*codec.File, error) {
	data, err := io.ReadAll(stdin)
	if err != nil {
		return nil, fmt.Errorf("failed to read standard input: %w", err)
	}
	return codec.Decode(data)
}
