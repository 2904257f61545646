package scope

import (
	"errors"
	"fmt"
	"path/filepath"
	"sort"

	"github.com/dshills/linescope/internal/gitinfo"
)

// Seams for tests; production code always hits gitinfo.
var (
	repositoryRoot     = gitinfo.RepositoryRoot
	lastCommit         = gitinfo.LastCommit
	commitsHeadToMain  = gitinfo.CommitsHeadToMain
	modifiedFiles      = gitinfo.ModifiedFiles
	modifiedLines      = gitinfo.ModifiedLines
	modifiedLinesForPR = gitinfo.ModifiedLinesForPR
)

// ErrNotRepository is returned when the working directory is not inside
// a git repository.
var ErrNotRepository = errors.New("not inside a git repository")

// Options selects the baseline a report is computed against.
type Options struct {
	// TrackedOnly drops untracked files from working-tree reports.
	TrackedOnly bool
	// PR compares against origin/<MainBranch> instead of the working tree.
	PR bool
	// MainBranch is the remote branch PR mode compares with; empty means
	// "main".
	MainBranch string
	// Commits restricts the report to an explicit commit list. Takes
	// precedence over PR.
	Commits []string
	// Paths restricts the report to the given files. Relative paths are
	// resolved against the current directory.
	Paths []string
	// FilesOnly skips line resolution; the report then carries only
	// paths and statuses.
	FilesOnly bool
}

// FileChange is one modified file and the lines in scope for it.
type FileChange struct {
	Path   string `json:"path"`
	Status string `json:"status"`
	// Lines holds the changed line numbers when the change is
	// line-scoped. For new files there is no baseline to blame against
	// and WholeFile is set instead.
	Lines     []int `json:"lines,omitempty"`
	WholeFile bool  `json:"wholeFile,omitempty"`
}

// Report is the full answer to "what is in scope for linting".
type Report struct {
	Root    string       `json:"root"`
	Head    string       `json:"head,omitempty"`
	Commits []string     `json:"commits,omitempty"`
	Files   []FileChange `json:"files"`
	// FilesOnly marks a report whose entries carry no line information.
	FilesOnly bool `json:"-"`
}

// Collect builds a change report for the current repository: resolves
// the root, decides the commit baseline, lists modified files, and
// resolves per-file line numbers. Files are sorted by path so output is
// stable across runs.
func Collect(opts Options) (*Report, error) {
	root, ok := repositoryRoot()
	if !ok {
		return nil, ErrNotRepository
	}
	head, _ := lastCommit()

	commits := opts.Commits
	if len(commits) == 0 && opts.PR {
		commits = commitsHeadToMain(opts.MainBranch)
	}

	files, err := modifiedFiles(root, opts.TrackedOnly, commits)
	if err != nil {
		return nil, fmt.Errorf("listing modified files: %w", err)
	}

	requested, err := requestedSet(opts.Paths)
	if err != nil {
		return nil, err
	}

	paths := make([]string, 0, len(files))
	for path := range files {
		if requested != nil && !requested[path] {
			continue
		}
		paths = append(paths, path)
	}
	sort.Strings(paths)

	report := &Report{
		Root:      root,
		Head:      head,
		Commits:   commits,
		Files:     make([]FileChange, 0, len(paths)),
		FilesOnly: opts.FilesOnly,
	}
	for _, path := range paths {
		if opts.FilesOnly {
			report.Files = append(report.Files, FileChange{Path: path, Status: files[path]})
			continue
		}
		change, err := resolveFile(path, files[path], commits)
		if err != nil {
			return nil, err
		}
		report.Files = append(report.Files, change)
	}
	return report, nil
}

func resolveFile(path, status string, commits []string) (FileChange, error) {
	change := FileChange{Path: path, Status: status}
	if !gitinfo.LineScoped(status) {
		change.WholeFile = true
		return change, nil
	}
	if len(commits) > 0 {
		lines, err := modifiedLinesForPR(path, status, commits)
		if err != nil {
			return FileChange{}, fmt.Errorf("resolving lines for %s: %w", path, err)
		}
		change.Lines = lines
		return change, nil
	}
	lines, _, err := modifiedLines(path, status, "")
	if err != nil {
		return FileChange{}, fmt.Errorf("resolving lines for %s: %w", path, err)
	}
	change.Lines = lines
	return change, nil
}

// requestedSet resolves user-supplied paths to absolute form for
// comparison against the report's root-joined keys. Returns nil when no
// restriction was requested.
func requestedSet(paths []string) (map[string]bool, error) {
	if len(paths) == 0 {
		return nil, nil
	}
	set := make(map[string]bool, len(paths))
	for _, p := range paths {
		abs, err := filepath.Abs(p)
		if err != nil {
			return nil, fmt.Errorf("resolving path %s: %w", p, err)
		}
		set[abs] = true
	}
	return set, nil
}
