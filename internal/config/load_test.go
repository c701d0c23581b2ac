package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mitchellh/go-homedir"

	"github.com/conn-castle/vercel-installer/internal/stubs"
)

func writeFile(t *testing.T, path string, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func TestLoadTOML(t *testing.T) {
	root := t.TempDir()
	path := filepath.Join(root, "vercel-installer.toml")
	writeFile(t, path, `
default_runtime = "7.4"

[runtimes]
"7.4" = "id-a"
"8.0" = "id-b"
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if got, _ := cfg.Runtimes.Lookup("7.4"); got != "id-a" {
		t.Fatalf("unexpected runtime for 7.4: %q", got)
	}
	if cfg.DefaultLabel() != "7.4" {
		t.Fatalf("unexpected default label %q", cfg.DefaultLabel())
	}
	if cfg.Source() != path {
		t.Fatalf("unexpected source %q", cfg.Source())
	}
	if cfg.StubsPath != "" {
		t.Fatalf("expected embedded stubs, got %q", cfg.StubsPath)
	}
}

func TestLoadYAML(t *testing.T) {
	root := t.TempDir()
	path := filepath.Join(root, "vercel-installer.yaml")
	writeFile(t, path, `
runtimes:
  "7.4": id-a
  "8.0": id-b
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if got, _ := cfg.Runtimes.Lookup("8.0"); got != "id-b" {
		t.Fatalf("unexpected runtime for 8.0: %q", got)
	}
	if cfg.DefaultLabel() != DefaultRuntime {
		t.Fatalf("expected default label %q, got %q", DefaultRuntime, cfg.DefaultLabel())
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	if err == nil {
		t.Fatalf("expected error")
	}
	if !strings.Contains(err.Error(), "missing config file") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestParseRejectsUnknownTOMLKeys(t *testing.T) {
	_, err := Parse([]byte(`
stub_path = "typo"

[runtimes]
"8.0" = "id-b"
`), "vercel-installer.toml")
	if !errors.Is(err, ErrConfigValidation) {
		t.Fatalf("expected ErrConfigValidation, got %v", err)
	}
	if !strings.Contains(err.Error(), "unrecognized keys") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestParseRejectsUnknownYAMLKeys(t *testing.T) {
	_, err := Parse([]byte("runtimes:\n  \"8.0\": id-b\nextra: true\n"), "config.yml")
	if !errors.Is(err, ErrConfigValidation) {
		t.Fatalf("expected ErrConfigValidation, got %v", err)
	}
}

func TestParseRejectsEmptyYAML(t *testing.T) {
	_, err := Parse([]byte(""), "config.yaml")
	if !errors.Is(err, ErrConfigValidation) {
		t.Fatalf("expected ErrConfigValidation, got %v", err)
	}
}

func TestParseInvalidTOMLSyntax(t *testing.T) {
	_, err := Parse([]byte("[runtimes"), "config.toml")
	if err == nil {
		t.Fatalf("expected error")
	}
	if errors.Is(err, ErrConfigValidation) {
		t.Fatalf("syntax errors must not be reported as validation errors: %v", err)
	}
}

func TestParseUnsupportedExtension(t *testing.T) {
	_, err := Parse([]byte("{}"), "config.json")
	if err == nil || !strings.Contains(err.Error(), "unsupported extension") {
		t.Fatalf("expected unsupported extension error, got %v", err)
	}
}

func TestLoadResolvesRelativeStubsPath(t *testing.T) {
	root := t.TempDir()
	if err := os.MkdirAll(filepath.Join(root, "stubs"), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	path := filepath.Join(root, "vercel-installer.toml")
	writeFile(t, path, `
stubs_path = "stubs"

[runtimes]
"8.0" = "id-b"
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.StubsPath != filepath.Join(root, "stubs") {
		t.Fatalf("unexpected stubs path %q", cfg.StubsPath)
	}
	if got := cfg.Stubs().Path("vercel.json"); got != filepath.Join(root, "stubs", "vercel.json") {
		t.Fatalf("unexpected stub path %q", got)
	}
}

func TestLoadExpandsHomeInStubsPath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	homedir.DisableCache = true
	t.Cleanup(func() { homedir.DisableCache = false })
	if err := os.MkdirAll(filepath.Join(home, "vercel-stubs"), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	path := filepath.Join(t.TempDir(), "vercel-installer.toml")
	writeFile(t, path, `
stubs_path = "~/vercel-stubs"

[runtimes]
"8.0" = "id-b"
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.StubsPath != filepath.Join(home, "vercel-stubs") {
		t.Fatalf("unexpected stubs path %q", cfg.StubsPath)
	}
}

func TestLoadRejectsMissingStubsDir(t *testing.T) {
	root := t.TempDir()
	path := filepath.Join(root, "vercel-installer.toml")
	writeFile(t, path, `
stubs_path = "nope"

[runtimes]
"8.0" = "id-b"
`)

	if _, err := Load(path); err == nil {
		t.Fatalf("expected error for missing stubs dir")
	}
}

func TestLoadRejectsStubsPathFile(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "stubs"), "not a dir")
	path := filepath.Join(root, "vercel-installer.toml")
	writeFile(t, path, `
stubs_path = "stubs"

[runtimes]
"8.0" = "id-b"
`)

	_, err := Load(path)
	if err == nil || !strings.Contains(err.Error(), "is not a directory") {
		t.Fatalf("expected not a directory error, got %v", err)
	}
}

func TestLoadOptionalFallsBackToDefault(t *testing.T) {
	cfg, err := LoadOptional(t.TempDir(), "")
	if err != nil {
		t.Fatalf("LoadOptional error: %v", err)
	}
	if _, ok := cfg.Runtimes.Lookup(DefaultRuntime); !ok {
		t.Fatalf("expected built-in catalog to contain %s", DefaultRuntime)
	}
	if cfg.Stubs().Path("vercel.json") != stubs.Embedded().Path("vercel.json") {
		t.Fatalf("expected embedded stubs by default")
	}
}

func TestLoadOptionalFindsProjectConfig(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, ".vercel-installer.toml"), `
[runtimes]
"9.0" = "id-c"
`)

	cfg, err := LoadOptional(root, "")
	if err != nil {
		t.Fatalf("LoadOptional error: %v", err)
	}
	if len(cfg.Runtimes) != 1 || cfg.Runtimes["9.0"] != "id-c" {
		t.Fatalf("unexpected runtimes %v", cfg.Runtimes)
	}
}

func TestLoadOptionalPrefersFirstCandidate(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "vercel-installer.toml"), "[runtimes]\n\"8.0\" = \"from-toml\"\n")
	writeFile(t, filepath.Join(root, "vercel-installer.yaml"), "runtimes:\n  \"8.0\": from-yaml\n")

	cfg, err := LoadOptional(root, "")
	if err != nil {
		t.Fatalf("LoadOptional error: %v", err)
	}
	if cfg.Runtimes["8.0"] != "from-toml" {
		t.Fatalf("expected toml config to win, got %v", cfg.Runtimes)
	}
}

func TestLoadOptionalSkipsDirectoryCandidates(t *testing.T) {
	root := t.TempDir()
	if err := os.MkdirAll(filepath.Join(root, "vercel-installer.toml"), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	cfg, err := LoadOptional(root, "")
	if err != nil {
		t.Fatalf("LoadOptional error: %v", err)
	}
	if cfg.Source() != Default().Source() {
		t.Fatalf("expected default config, got %s", cfg.Source())
	}
}

func TestLoadOptionalExplicitMissing(t *testing.T) {
	root := t.TempDir()
	if _, err := LoadOptional(root, filepath.Join(root, "custom.toml")); err == nil {
		t.Fatalf("expected error for missing explicit config")
	}
}

func TestWithStubsPathRelativeToBase(t *testing.T) {
	base := t.TempDir()
	if err := os.MkdirAll(filepath.Join(base, "my-stubs"), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	cfg := Default()
	if err := cfg.WithStubsPath("my-stubs", base); err != nil {
		t.Fatalf("WithStubsPath error: %v", err)
	}
	if cfg.StubsPath != filepath.Join(base, "my-stubs") {
		t.Fatalf("unexpected stubs path %q", cfg.StubsPath)
	}
}
