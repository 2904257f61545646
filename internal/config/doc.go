// Package config loads and merges linescope configuration from multiple sources.
//
// Precedence (highest to lowest):
//  1. CLI flags
//  2. Environment variables (LINESCOPE_MAIN_BRANCH, LINESCOPE_FORMAT, etc.)
//  3. Config file ($XDG_CONFIG_HOME/linescope/config.yaml)
//  4. Built-in defaults
//
// Use [Load] to obtain a merged [Config], [Save] to write one back, and
// [SetField] to update a single key.
package config
