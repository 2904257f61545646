// Package gitcmd runs git and hands back its raw output.
//
// It is the single point where linescope spawns processes. Calls are
// synchronous with no retries and no timeout; a hung git blocks the
// caller, which matches the one-shot query model of the rest of the
// module. Failures carry the command line and stderr in a typed
// [*CommandError] so the CLI can print an actionable diagnostic.
package gitcmd
