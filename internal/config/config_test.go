package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.MainBranch != "main" {
		t.Errorf("Default mainBranch = %q, want %q", cfg.MainBranch, "main")
	}
	if cfg.Format != "text" {
		t.Errorf("Default format = %q, want %q", cfg.Format, "text")
	}
	if cfg.TrackedOnly {
		t.Error("Default trackedOnly should be false")
	}
}

func TestMergeEnv(t *testing.T) {
	t.Setenv("LINESCOPE_MAIN_BRANCH", "develop")
	t.Setenv("LINESCOPE_FORMAT", "json")
	t.Setenv("LINESCOPE_TRACKED_ONLY", "true")

	cfg := Default()
	mergeEnv(&cfg)

	if cfg.MainBranch != "develop" {
		t.Errorf("mainBranch = %q, want %q", cfg.MainBranch, "develop")
	}
	if cfg.Format != "json" {
		t.Errorf("format = %q, want %q", cfg.Format, "json")
	}
	if !cfg.TrackedOnly {
		t.Error("trackedOnly should be true")
	}
}

func TestMergeEnvIgnoresBadBool(t *testing.T) {
	t.Setenv("LINESCOPE_TRACKED_ONLY", "sometimes")
	cfg := Default()
	mergeEnv(&cfg)
	if cfg.TrackedOnly {
		t.Error("unparsable bool should leave trackedOnly at its default")
	}
}

func TestLoadLayering(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	cfgDir := filepath.Join(dir, "linescope")
	if err := os.MkdirAll(cfgDir, 0o755); err != nil {
		t.Fatal(err)
	}
	yml := "mainBranch: develop\nformat: json\ntrackedOnly: true\n"
	if err := os.WriteFile(filepath.Join(cfgDir, "config.yaml"), []byte(yml), 0o644); err != nil {
		t.Fatal(err)
	}

	// Env beats file; flag overrides beat env.
	t.Setenv("LINESCOPE_FORMAT", "text")
	cfg, err := Load(map[string]string{"mainBranch": "release"})
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.MainBranch != "release" {
		t.Errorf("mainBranch = %q, want flag override %q", cfg.MainBranch, "release")
	}
	if cfg.Format != "text" {
		t.Errorf("format = %q, want env override %q", cfg.Format, "text")
	}
	if !cfg.TrackedOnly {
		t.Error("trackedOnly from file should survive")
	}
}

func TestLoadMissingFile(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	cfg, err := Load(nil)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg != Default() {
		t.Errorf("Load with no file = %+v, want defaults", cfg)
	}
}

func TestSaveRoundTrip(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	want := Config{MainBranch: "trunk", TrackedOnly: true, Format: "json"}
	if err := Save(want); err != nil {
		t.Fatalf("Save error: %v", err)
	}
	got, err := LoadFile()
	if err != nil {
		t.Fatalf("LoadFile error: %v", err)
	}
	if got != want {
		t.Errorf("round trip = %+v, want %+v", got, want)
	}
}

func TestSetField(t *testing.T) {
	tests := []struct {
		key     string
		value   string
		wantErr bool
	}{
		{"mainBranch", "develop", false},
		{"format", "json", false},
		{"trackedOnly", "true", false},
		{"trackedOnly", "maybe", true},
		{"bogus", "x", true},
	}
	for _, tt := range tests {
		t.Run(tt.key+"="+tt.value, func(t *testing.T) {
			cfg := Default()
			err := SetField(&cfg, tt.key, tt.value)
			if (err != nil) != tt.wantErr {
				t.Errorf("SetField(%q, %q) error = %v, wantErr %v", tt.key, tt.value, err, tt.wantErr)
			}
		})
	}
}
