// Package cli wires together the Cobra command tree for the linescope binary.
//
// It defines the root command and all subcommands (files, lines, config,
// version), binds flags, reads configuration, collects the change report,
// and returns deterministic exit codes for CI gating.
package cli
