package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

const version = "0.1.0"

// Exit codes. ExitChanges mirrors grep: callers can gate on "anything
// in scope?" without parsing output.
const (
	ExitSuccess      = 0
	ExitChanges      = 1
	ExitUsageError   = 2
	ExitRuntimeError = 4
)

var rootCmd = &cobra.Command{
	Use:   "linescope",
	Short: "Report files and lines changed relative to a git baseline",
	Long: "Linescope asks git which files and line numbers changed — in the " +
		"working tree, in specific commits, or in everything ahead of the " +
		"remote main branch — so linters can restrict findings to changed code.",
}

// Run executes the root command and returns an exit code.
func Run() int {
	rootCmd.AddCommand(filesCmd)
	rootCmd.AddCommand(linesCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(versionCmd)

	if err := rootCmd.Execute(); err != nil {
		// Cobra already prints the error
		return ExitUsageError
	}

	return exitCode
}

// exitCode is set by command handlers to control the process exit code.
var exitCode = ExitSuccess

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print linescope version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(os.Stdout, "linescope version %s\n", version)
	},
}
