package cli

import (
	"fmt"
	"os"

	"github.com/dshills/linescope/internal/config"
	"github.com/dshills/linescope/internal/output"
	"github.com/dshills/linescope/internal/scope"
	"github.com/spf13/cobra"
)

// Shared report flags
var (
	flagTrackedOnly bool
	flagPR          bool
	flagCommits     []string
	flagMainBranch  string
	flagFormat      string
	flagOut         string
)

func addScopeFlags(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&flagTrackedOnly, "tracked-only", false, "Exclude untracked files")
	cmd.Flags().BoolVar(&flagPR, "pr", false, "Compare against origin/<main-branch> instead of the working tree")
	cmd.Flags().StringArrayVar(&flagCommits, "commit", nil, "Restrict to a commit hash (repeatable)")
	cmd.Flags().StringVar(&flagMainBranch, "main-branch", "", "Remote branch --pr compares against")
	cmd.Flags().StringVar(&flagFormat, "format", "", "Output format (text, json)")
	cmd.Flags().StringVar(&flagOut, "out", "", "Output file path (default: stdout)")
}

func buildOverrides() map[string]string {
	m := make(map[string]string)
	if flagMainBranch != "" {
		m["mainBranch"] = flagMainBranch
	}
	if flagFormat != "" {
		m["format"] = flagFormat
	}
	if flagTrackedOnly {
		m["trackedOnly"] = "true"
	}
	return m
}

func buildOptions(cfg config.Config, paths []string, filesOnly bool) scope.Options {
	return scope.Options{
		TrackedOnly: cfg.TrackedOnly,
		PR:          flagPR,
		MainBranch:  cfg.MainBranch,
		Commits:     flagCommits,
		Paths:       paths,
		FilesOnly:   filesOnly,
	}
}

var filesCmd = &cobra.Command{
	Use:   "files",
	Short: "List files modified relative to the baseline",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		runReport(nil, true)
	},
}

var linesCmd = &cobra.Command{
	Use:   "lines [file...]",
	Short: "List changed line numbers for each modified file",
	Long: "Lines prints, for every modified file (or just the named ones), the " +
		"line numbers in scope. New files have no baseline to blame against and " +
		"are reported whole.",
	Run: func(cmd *cobra.Command, args []string) {
		runReport(args, false)
	},
}

func runReport(paths []string, filesOnly bool) {
	cfg, err := config.Load(buildOverrides())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		exitCode = ExitRuntimeError
		return
	}

	report, err := scope.Collect(buildOptions(cfg, paths, filesOnly))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		exitCode = ExitRuntimeError
		return
	}

	if err := output.WriteReport(report, cfg.Format, flagOut); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		exitCode = ExitRuntimeError
		return
	}

	if len(report.Files) > 0 {
		exitCode = ExitChanges
	}
}

func init() {
	addScopeFlags(filesCmd)
	addScopeFlags(linesCmd)
}
