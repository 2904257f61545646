// Linescope reports which files and line numbers changed relative to a
// git baseline, so linters can restrict their findings to changed code.
//
// It answers from three baselines: the working tree (git status + blame
// against the uncommitted revision), an explicit commit list, or every
// commit ahead of the remote main branch.
//
// Usage:
//
//	linescope files                  # modified files and their status codes
//	linescope lines                  # changed line numbers per modified file
//	linescope lines --pr             # lines changed by commits ahead of origin/main
//	linescope lines --commit <sha>   # lines changed by specific commits
//	linescope files --tracked-only   # ignore untracked files
//	linescope lines --format json    # machine-readable report
//
// Exit code 1 means changes were found, 0 means none, so shell scripts
// can gate on "anything to lint?" without parsing output.
package main
