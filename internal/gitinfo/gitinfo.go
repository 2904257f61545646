package gitinfo

import (
	"bytes"
	"fmt"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"github.com/dshills/linescope/internal/gitcmd"
	"github.com/dshills/linescope/internal/scan"
)

// runGit is a seam for tests; production code always calls gitcmd.Run.
var runGit = gitcmd.Run

// ZeroRevision is the id git blame assigns to lines that are not yet
// committed (working-tree changes).
const ZeroRevision = "0000000000000000000000000000000000000000"

// Status codes reported for modified files. Working-tree statuses come
// from `git status --porcelain` verbatim; commit-derived statuses are
// normalized to the same two-character form.
const (
	StatusStaged        = "M "
	StatusUnstaged      = " M"
	StatusAdded         = "A "
	StatusAddedModified = "AM"
	StatusModifiedBoth  = "MM"
	StatusUntracked     = "??"
)

var (
	statusAll     = regexp.MustCompile(`^(?P<mode>M | M|A |AM|MM|\?\?) (?P<filename>.+)$`)
	statusTracked = regexp.MustCompile(`^(?P<mode>M | M|A |AM|MM) (?P<filename>.+)$`)
	diffTreeLine  = regexp.MustCompile(`^(?P<mode>A|M)\s(?P<filename>.+)$`)
)

// collapse is the one place a command failure becomes an absent result.
// Only the three repository lookups use it; the file and line resolvers
// propagate the underlying *gitcmd.CommandError instead.
func collapse(out []byte, err error) (string, bool) {
	if err != nil {
		return "", false
	}
	return strings.TrimSpace(string(out)), true
}

// RepositoryRoot returns the absolute path of the repository root.
// ok is false when the working directory is not inside a repository or
// the lookup fails; the path is never relative when ok.
func RepositoryRoot() (string, bool) {
	return collapse(runGit("rev-parse", "--show-toplevel"))
}

// LastCommit returns the full hash of HEAD, or ok=false when there is
// no HEAD to resolve.
func LastCommit() (string, bool) {
	return collapse(runGit("rev-parse", "HEAD"))
}

// CommitsHeadToMain returns the full hashes of the commits in HEAD that
// are not yet in origin/<branch>, most recent first, merge commits
// excluded. An empty branch means "main". Returns nil on lookup failure
// as well as when HEAD equals the remote branch.
func CommitsHeadToMain(branch string) []string {
	if branch == "" {
		branch = "main"
	}
	out, ok := collapse(runGit("log", "origin/"+branch+"..HEAD", "--oneline", "--no-merges", "--pretty=%H"))
	if !ok || out == "" {
		return nil
	}
	return strings.Split(out, "\n")
}

// ModifiedFiles maps each modified file, keyed by root-joined absolute
// path, to its two-character status code.
//
// With commits, the map is the union of per-commit diff-tree results;
// later commits overwrite earlier ones for the same path and the
// working tree is not consulted. Otherwise the map reflects
// `git status --porcelain`, including untracked files unless
// trackedOnly is set.
//
// root must be absolute; a relative root is a caller bug and panics.
func ModifiedFiles(root string, trackedOnly bool, commits []string) (map[string]string, error) {
	if !filepath.IsAbs(root) {
		panic(fmt.Sprintf("gitinfo: repository root must be absolute, got %q", root))
	}

	if len(commits) > 0 {
		merged := make(map[string]string)
		for _, commit := range commits {
			files, err := modifiedFilesInCommit(root, commit)
			if err != nil {
				return nil, err
			}
			for path, status := range files {
				merged[path] = status
			}
		}
		return merged, nil
	}

	out, err := runGit("status", "--porcelain", "--untracked-files=all", "--ignore-submodules=all")
	if err != nil {
		return nil, err
	}
	pattern := statusAll
	if trackedOnly {
		pattern = statusTracked
	}
	files := make(map[string]string)
	for _, row := range scan.FilterLines(strings.Split(string(out), "\n"), pattern, "filename", "mode") {
		files[filepath.Join(root, unquoteFilename(row[0]))] = row[1]
	}
	return files, nil
}

// modifiedFilesInCommit lists files added or modified by a single
// commit. diff-tree reports one-character statuses; a trailing space is
// appended so callers see the same two-character codes as the
// working-tree query.
func modifiedFilesInCommit(root, commit string) (map[string]string, error) {
	out, err := runGit("diff-tree", "-r", "--root", "--no-commit-id", "--name-status", commit)
	if err != nil {
		return nil, err
	}
	files := make(map[string]string)
	for _, row := range scan.FilterLines(strings.Split(string(out), "\n"), diffTreeLine, "filename", "mode") {
		files[filepath.Join(root, unquoteFilename(row[0]))] = row[1] + " "
	}
	return files, nil
}

// LineScoped reports whether status describes a modification of
// existing content, the only case where blame can attribute individual
// lines. Additions and untracked files have no baseline to blame
// against.
func LineScoped(status string) bool {
	return status == StatusStaged || status == StatusUnstaged || status == StatusModifiedBoth
}

// unquoteFilename strips the doublequotes git status wraps around
// filenames with special characters. Only the outer quotes go; interior
// escape sequences are passed through untouched.
func unquoteFilename(filename string) string {
	if len(filename) >= 2 && strings.HasPrefix(filename, `"`) && strings.HasSuffix(filename, `"`) {
		return filename[1 : len(filename)-1]
	}
	return filename
}

// ModifiedLines reports which lines of filename changed, given the
// file's status from [ModifiedFiles] (empty string when the file was
// not modified at all).
//
// lineScoped tells the caller how to read lines:
//
//	(empty, true)  status "": the file was not modified, nothing is in scope
//	(nil, false)   the file is new ("A ", "AM", "??"): no baseline exists,
//	               every line is in scope
//	(lines, true)  blame-derived line numbers attributed to commit, or to
//	               the uncommitted working tree when commit is empty
//
// The nil/empty distinction is carried by lineScoped, never by slice
// identity. lineScoped is meaningful only when err is nil.
func ModifiedLines(filename, status, commit string) (lines []int, lineScoped bool, err error) {
	if status == "" {
		return []int{}, true, nil
	}
	if !LineScoped(status) {
		return nil, false, nil
	}

	if commit == "" {
		commit = ZeroRevision
	}
	out, err := runGit("blame", "--porcelain", filename)
	if err != nil {
		return nil, false, err
	}

	// Blame output may embed arbitrary file content, so it is matched as
	// raw bytes. Header lines read "<revision> <orig-line> <final-line>";
	// content lines start with a tab and cannot match the anchor.
	pattern := regexp.MustCompile(`^` + regexp.QuoteMeta(commit) + ` (?P<line>\d+) (\d+)`)
	lines = make([]int, 0)
	for _, row := range scan.FilterLines(bytes.Split(out, []byte("\n")), pattern, "line") {
		n, convErr := strconv.Atoi(string(row[0]))
		if convErr != nil {
			return nil, false, fmt.Errorf("parsing blame line number %q: %w", row[0], convErr)
		}
		lines = append(lines, n)
	}
	return lines, true, nil
}

// ModifiedLinesForPR unions [ModifiedLines] across commits for one
// file: per-commit results are concatenated in commit order, without
// deduplication, so a line touched by two commits appears twice.
//
// Attribution is exact only when commits is the ancestry chain of the
// checked-out HEAD; blaming against unrelated history can miss lines
// that later commits rewrote.
func ModifiedLinesForPR(filename, status string, commits []string) ([]int, error) {
	lines := []int{}
	for _, commit := range commits {
		nums, scoped, err := ModifiedLines(filename, status, commit)
		if err != nil {
			return nil, err
		}
		if scoped && len(nums) > 0 {
			lines = append(lines, nums...)
		}
	}
	return lines, nil
}
