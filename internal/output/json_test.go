package output

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/dshills/linescope/internal/scope"
)

func TestJSONWriterRoundTrip(t *testing.T) {
	var sb strings.Builder
	if err := (&JSONWriter{}).Write(&sb, sampleReport()); err != nil {
		t.Fatalf("Write error: %v", err)
	}

	var got scope.Report
	if err := json.Unmarshal([]byte(sb.String()), &got); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if got.Root != "/repo" {
		t.Errorf("root = %q, want %q", got.Root, "/repo")
	}
	if len(got.Files) != 3 {
		t.Fatalf("files = %d, want 3", len(got.Files))
	}
	if got.Files[0].Lines[1] != 7 {
		t.Errorf("first file lines = %v, want [3 7]", got.Files[0].Lines)
	}
	if !got.Files[2].WholeFile {
		t.Error("added file should carry wholeFile")
	}
}

func TestJSONWriterOmitsEmptyFields(t *testing.T) {
	var sb strings.Builder
	report := &scope.Report{
		Root:  "/repo",
		Files: []scope.FileChange{{Path: "/repo/new.go", Status: "A ", WholeFile: true}},
	}
	if err := (&JSONWriter{}).Write(&sb, report); err != nil {
		t.Fatalf("Write error: %v", err)
	}
	out := sb.String()
	if strings.Contains(out, `"lines"`) {
		t.Errorf("whole-file entry should omit lines: %s", out)
	}
	if strings.Contains(out, `"head"`) {
		t.Errorf("unset head should be omitted: %s", out)
	}
}
