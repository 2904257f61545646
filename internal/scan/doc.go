// Package scan filters lines of git output through regular expressions.
//
// The single entry point [FilterLines] is generic over string and []byte
// lines. Porcelain blame output can embed arbitrary file content, so it
// must be matched as raw bytes rather than decoded text; status and log
// output is plain UTF-8. One implementation serves both.
package scan
