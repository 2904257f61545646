// Package scope assembles the per-file change report a linter consumes:
// each modified file with either its changed line numbers or a
// whole-file marker for files that are entirely new.
package scope
