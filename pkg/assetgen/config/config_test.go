package config

import (
	"os"
	"path/filepath"
	"testing"
)

// isolate runs the test from an empty working directory with no user
// config, so only the inputs each test creates are visible.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "xdg"))
	return dir
}

func TestLoad_Defaults(t *testing.T) {
	isolate(t)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Base != DefaultBase {
		t.Errorf("Base = %q, want %q", cfg.Base, DefaultBase)
	}
	if len(cfg.Resumes.Roots) != len(DefaultResumeRoots) {
		t.Errorf("len(Resumes.Roots) = %d, want %d", len(cfg.Resumes.Roots), len(DefaultResumeRoots))
	}
	if cfg.Resumes.Output != DefaultResumesOutput {
		t.Errorf("Resumes.Output = %q, want %q", cfg.Resumes.Output, DefaultResumesOutput)
	}
	if cfg.Resumes.Strategy != DefaultStrategy {
		t.Errorf("Resumes.Strategy = %q, want %q", cfg.Resumes.Strategy, DefaultStrategy)
	}
	if cfg.Themes.Output != DefaultThemesOutput {
		t.Errorf("Themes.Output = %q, want %q", cfg.Themes.Output, DefaultThemesOutput)
	}
	if cfg.Themes.Bundle != DefaultThemeBundle {
		t.Errorf("Themes.Bundle = %q, want %q", cfg.Themes.Bundle, DefaultThemeBundle)
	}
	if cfg.Watch.Debounce != DefaultDebounce {
		t.Errorf("Watch.Debounce = %q, want %q", cfg.Watch.Debounce, DefaultDebounce)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("Logging.Level = %q, want %q", cfg.Logging.Level, "info")
	}
}

func TestLoad_FromFile(t *testing.T) {
	dir := isolate(t)

	configContent := `
base: /srv/site
resumes:
  roots:
    - people
  output: out/resumes.json
  strategy: paired
themes:
  bundle: main.css
watch:
  debounce: 2s
logging:
  level: debug
`
	if err := os.WriteFile(filepath.Join(dir, "assetgen.yaml"), []byte(configContent), 0o644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Base != "/srv/site" {
		t.Errorf("Base = %q, want %q", cfg.Base, "/srv/site")
	}
	if len(cfg.Resumes.Roots) != 1 || cfg.Resumes.Roots[0] != "people" {
		t.Errorf("Resumes.Roots = %v, want [people]", cfg.Resumes.Roots)
	}
	if cfg.Resumes.Output != "out/resumes.json" {
		t.Errorf("Resumes.Output = %q, want %q", cfg.Resumes.Output, "out/resumes.json")
	}
	if cfg.Resumes.Strategy != "paired" {
		t.Errorf("Resumes.Strategy = %q, want %q", cfg.Resumes.Strategy, "paired")
	}
	if cfg.Themes.Bundle != "main.css" {
		t.Errorf("Themes.Bundle = %q, want %q", cfg.Themes.Bundle, "main.css")
	}
	// Unset sections keep their defaults.
	if cfg.Themes.Output != DefaultThemesOutput {
		t.Errorf("Themes.Output = %q, want default %q", cfg.Themes.Output, DefaultThemesOutput)
	}
	if cfg.Watch.Debounce != "2s" {
		t.Errorf("Watch.Debounce = %q, want %q", cfg.Watch.Debounce, "2s")
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("Logging.Level = %q, want %q", cfg.Logging.Level, "debug")
	}
}

func TestLoad_ExplicitFile(t *testing.T) {
	dir := isolate(t)

	path := filepath.Join(dir, "custom.yaml")
	if err := os.WriteFile(path, []byte("base: /elsewhere\n"), 0o644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Base != "/elsewhere" {
		t.Errorf("Base = %q, want %q", cfg.Base, "/elsewhere")
	}
}

func TestLoad_ExplicitFileMissing(t *testing.T) {
	dir := isolate(t)

	_, err := Load(filepath.Join(dir, "nope.yaml"))
	if err == nil {
		t.Error("Load() error = nil, want error for missing explicit config file")
	}
}

func TestLoad_EnvOverride(t *testing.T) {
	isolate(t)
	t.Setenv("ASSETGEN_RESUMES_STRATEGY", "paired")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Resumes.Strategy != "paired" {
		t.Errorf("Resumes.Strategy = %q, want env override %q", cfg.Resumes.Strategy, "paired")
	}
}

func TestWriteDefault(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "assetgen.yaml")

	if err := WriteDefault(path); err != nil {
		t.Fatalf("WriteDefault() error = %v", err)
	}

	// The written file must round-trip to the defaults.
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Resumes.Strategy != DefaultStrategy {
		t.Errorf("Resumes.Strategy = %q, want %q", cfg.Resumes.Strategy, DefaultStrategy)
	}
	if cfg.Themes.Bundle != DefaultThemeBundle {
		t.Errorf("Themes.Bundle = %q, want %q", cfg.Themes.Bundle, DefaultThemeBundle)
	}

	// Second call is a no-op, not an overwrite.
	if err := os.WriteFile(path, []byte("base: /custom\n"), 0o644); err != nil {
		t.Fatalf("failed to modify config: %v", err)
	}
	if err := WriteDefault(path); err != nil {
		t.Fatalf("WriteDefault() second call error = %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read config: %v", err)
	}
	if string(data) != "base: /custom\n" {
		t.Error("WriteDefault() overwrote an existing config file")
	}
}
