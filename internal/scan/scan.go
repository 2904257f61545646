package scan

import (
	"fmt"
	"regexp"
)

// Text is any line representation FilterLines can match against. Blame
// output stays []byte end to end; status and log output is string.
type Text interface {
	~string | ~[]byte
}

// FilterLines matches re against every line and returns, for each line
// that matches, the values of the named capture groups in the requested
// order. Lines that do not match are skipped. Group names that do not
// exist in the pattern are a programmer error and panic.
func FilterLines[T Text](lines []T, re *regexp.Regexp, groups ...string) [][]T {
	idx := make([]int, len(groups))
	for i, name := range groups {
		n := re.SubexpIndex(name)
		if n < 0 {
			panic(fmt.Sprintf("scan: pattern %q has no group %q", re, name))
		}
		idx[i] = n
	}

	var out [][]T
	for _, line := range lines {
		m := re.FindSubmatch([]byte(line))
		if m == nil {
			continue
		}
		row := make([]T, len(idx))
		for i, n := range idx {
			row[i] = T(m[n])
		}
		out = append(out, row)
	}
	return out
}
