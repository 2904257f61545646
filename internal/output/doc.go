// Package output formats change reports for display or machine consumption.
//
// Two formats are supported:
//   - text — tab-separated status/path/lines, one file per line (default)
//   - json — full structured JSON report
//
// Use [GetWriter] to obtain a [Writer] for a given format string, or
// [WriteReport] to handle destination selection in one call.
package output
