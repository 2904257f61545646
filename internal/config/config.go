package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config represents the linescope configuration.
type Config struct {
	// MainBranch is the remote branch PR mode compares against.
	MainBranch string `yaml:"mainBranch"`
	// TrackedOnly drops untracked files from working-tree reports.
	TrackedOnly bool `yaml:"trackedOnly"`
	// Format is the default output format (text or json).
	Format string `yaml:"format"`
}

// Default returns a Config with all defaults applied.
func Default() Config {
	return Config{
		MainBranch: "main",
		Format:     "text",
	}
}

// ConfigDir returns the platform-appropriate config directory for linescope.
func ConfigDir() (string, error) {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "linescope"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	switch runtime.GOOS {
	case "darwin":
		return filepath.Join(home, "Library", "Application Support", "linescope"), nil
	case "windows":
		if appData := os.Getenv("APPDATA"); appData != "" {
			return filepath.Join(appData, "linescope"), nil
		}
		return filepath.Join(home, "AppData", "Roaming", "linescope"), nil
	default:
		return filepath.Join(home, ".config", "linescope"), nil
	}
}

// ConfigPath returns the full path to the config file.
func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

// LoadFile loads config from the config file. Returns zero Config and nil
// error if the file doesn't exist.
func LoadFile() (Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return Config{}, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Config{}, nil
		}
		return Config{}, fmt.Errorf("reading config file: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config file: %w", err)
	}
	return cfg, nil
}

// Save writes the config to the config file.
func Save(cfg Config) error {
	path, err := ConfigPath()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// Load builds the effective config by merging: defaults <- file <- env <- overrides.
// The overrides map comes from CLI flags (only non-zero values should be set).
func Load(overrides map[string]string) (Config, error) {
	cfg := Default()

	fileCfg, err := LoadFile()
	if err != nil {
		return Config{}, err
	}
	mergeFile(&cfg, fileCfg)
	mergeEnv(&cfg)
	mergeOverrides(&cfg, overrides)

	return cfg, nil
}

func mergeFile(dst *Config, src Config) {
	if src.MainBranch != "" {
		dst.MainBranch = src.MainBranch
	}
	if src.Format != "" {
		dst.Format = src.Format
	}
	// The default is false, so a file-set true is the only observable state.
	dst.TrackedOnly = dst.TrackedOnly || src.TrackedOnly
}

func mergeEnv(cfg *Config) {
	if v := os.Getenv("LINESCOPE_MAIN_BRANCH"); v != "" {
		cfg.MainBranch = v
	}
	if v := os.Getenv("LINESCOPE_FORMAT"); v != "" {
		cfg.Format = v
	}
	if v := os.Getenv("LINESCOPE_TRACKED_ONLY"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.TrackedOnly = b
		}
	}
}

func mergeOverrides(cfg *Config, overrides map[string]string) {
	if overrides == nil {
		return
	}
	if v, ok := overrides["mainBranch"]; ok && v != "" {
		cfg.MainBranch = v
	}
	if v, ok := overrides["format"]; ok && v != "" {
		cfg.Format = v
	}
	if v, ok := overrides["trackedOnly"]; ok && v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.TrackedOnly = b
		}
	}
}

// SetField sets a single config field by key name. Returns error if key is unknown.
func SetField(cfg *Config, key, value string) error {
	switch key {
	case "mainBranch":
		cfg.MainBranch = value
	case "format":
		cfg.Format = value
	case "trackedOnly":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("trackedOnly must be a boolean: %w", err)
		}
		cfg.TrackedOnly = b
	default:
		return fmt.Errorf("unknown config key: %s", key)
	}
	return nil
}
