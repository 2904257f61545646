package output

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/dshills/linescope/internal/scope"
)

// TextWriter emits one tab-separated line per file: status, path, and
// the lines in scope. Stable and comment-free so shell pipelines can
// consume it directly.
type TextWriter struct{}

func (t *TextWriter) Write(w io.Writer, report *scope.Report) error {
	ew := &errWriter{w: w}
	for _, f := range report.Files {
		if report.FilesOnly {
			ew.printf("%s\t%s\n", f.Status, f.Path)
			continue
		}
		ew.printf("%s\t%s\t%s\n", f.Status, f.Path, linesField(f))
	}
	return ew.err
}

// linesField renders the line set: "all" for whole-file changes, "-"
// when nothing is line-scoped, else a comma-separated number list.
func linesField(f scope.FileChange) string {
	if f.WholeFile {
		return "all"
	}
	if len(f.Lines) == 0 {
		return "-"
	}
	parts := make([]string, len(f.Lines))
	for i, n := range f.Lines {
		parts[i] = strconv.Itoa(n)
	}
	return strings.Join(parts, ",")
}

type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) printf(format string, args ...interface{}) {
	if ew.err != nil {
		return
	}
	_, ew.err = fmt.Fprintf(ew.w, format, args...)
}
