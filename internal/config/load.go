package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/mitchellh/go-homedir"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/conn-castle/vercel-installer/internal/messages"
)

// ErrConfigValidation is a sentinel that wraps config validation failures
// (as opposed to syntax or filesystem errors).
var ErrConfigValidation = errors.New("config validation failed")

// Load reads a config file and validates it. The format follows the file
// extension. A relative stubs_path resolves against the file's directory.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf(messages.ConfigMissingFileFmt, path, err)
	}
	cfg, err := Parse(data, path)
	if err != nil {
		return nil, err
	}
	if err := cfg.resolveStubsPath(filepath.Dir(path)); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadOptional loads explicit when set. Otherwise it loads the first config
// file found in root, falling back to Default when there is none.
func LoadOptional(root string, explicit string) (*Config, error) {
	if strings.TrimSpace(explicit) != "" {
		return Load(explicit)
	}
	for _, path := range CandidatePaths(root) {
		info, err := os.Stat(path)
		if err != nil {
			if errors.Is(err, os.ErrNotExist) {
				continue
			}
			return nil, fmt.Errorf(messages.ConfigFailedStatFmt, path, err)
		}
		if info.IsDir() {
			continue
		}
		return Load(path)
	}
	return Default(), nil
}

// Parse decodes and validates config data. source supplies the format (by
// extension) and is used in error messages.
func Parse(data []byte, source string) (*Config, error) {
	var (
		cfg *Config
		err error
	)
	switch ext := strings.ToLower(filepath.Ext(source)); ext {
	case ".toml":
		cfg, err = parseTOML(data, source)
	case ".yaml", ".yml":
		cfg, err = parseYAML(data, source)
	default:
		return nil, fmt.Errorf(messages.ConfigUnsupportedFormatFmt, source, ext)
	}
	if err != nil {
		return nil, err
	}
	cfg.source = source
	if err := cfg.Validate(source); err != nil {
		return nil, fmt.Errorf("%w: %w "+messages.ConfigValidationGuidance, ErrConfigValidation, err)
	}
	return cfg, nil
}

func parseTOML(data []byte, source string) (*Config, error) {
	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf(messages.ConfigInvalidConfigFmt, source, err)
	}
	// Unmarshal ignores unknown keys; the strict pass reports them.
	decoder := toml.NewDecoder(bytes.NewReader(data))
	decoder.DisallowUnknownFields()
	var strict Config
	if err := decoder.Decode(&strict); err != nil {
		return nil, fmt.Errorf("%w: "+messages.ConfigUnrecognizedKeysFmt+" "+messages.ConfigValidationGuidance, ErrConfigValidation, source, err)
	}
	return &cfg, nil
}

func parseYAML(data []byte, source string) (*Config, error) {
	var cfg Config
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: "+messages.ConfigEmptyDocumentFmt, ErrConfigValidation, source)
		}
		if strings.Contains(err.Error(), "not found in type") {
			return nil, fmt.Errorf("%w: "+messages.ConfigUnrecognizedKeysFmt+" "+messages.ConfigValidationGuidance, ErrConfigValidation, source, err)
		}
		return nil, fmt.Errorf(messages.ConfigInvalidConfigFmt, source, err)
	}
	return &cfg, nil
}

// WithStubsPath points the config at a stubs directory given on the command
// line. Relative paths resolve against base.
func (c *Config) WithStubsPath(path string, base string) error {
	c.StubsPath = path
	return c.resolveStubsPath(base)
}

// resolveStubsPath expands ~, anchors relative paths at base and checks the
// directory exists.
func (c *Config) resolveStubsPath(base string) error {
	raw := strings.TrimSpace(c.StubsPath)
	if raw == "" {
		c.StubsPath = ""
		return nil
	}
	expanded, err := homedir.Expand(raw)
	if err != nil {
		return fmt.Errorf(messages.ConfigExpandStubsPathFmt, c.source, raw, err)
	}
	if !filepath.IsAbs(expanded) && base != "" {
		expanded = filepath.Join(base, expanded)
	}
	info, err := os.Stat(expanded)
	if err != nil {
		return fmt.Errorf(messages.ConfigStubsDirFailedStatFmt, expanded, err)
	}
	if !info.IsDir() {
		return fmt.Errorf(messages.ConfigStubsDirNotDirFmt, expanded)
	}
	c.StubsPath = filepath.Clean(expanded)
	return nil
}
