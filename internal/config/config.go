// Package config defines the installer configuration: the PHP runtime
// catalog and the location of the stubs.
package config

import (
	"sort"

	goversion "github.com/hashicorp/go-version"

	"github.com/conn-castle/vercel-installer/internal/messages"
	"github.com/conn-castle/vercel-installer/internal/stubs"
)

// DefaultRuntime is the PHP version offered as the prompt default.
const DefaultRuntime = "8.0"

// Catalog maps a PHP version label (e.g. "8.0") to the runtime identifier
// Vercel expects in vercel.json.
type Catalog map[string]string

// Config is the validated installer configuration.
type Config struct {
	// DefaultRuntime overrides the prompt default. It must be a catalog key.
	DefaultRuntime string `toml:"default_runtime,omitempty" yaml:"default_runtime,omitempty"`
	// StubsPath is a directory holding replacement stubs. Empty selects the
	// built-in stubs.
	StubsPath string `toml:"stubs_path,omitempty" yaml:"stubs_path,omitempty"`
	// Runtimes is the runtime catalog.
	Runtimes Catalog `toml:"runtimes" yaml:"runtimes"`

	source string
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Runtimes: Catalog{
			"7.4": "vercel-php@0.3.6",
			"8.0": "vercel-php@0.4.4",
			"8.1": "vercel-php@0.5.5",
			"8.2": "vercel-php@0.6.2",
			"8.3": "vercel-php@0.7.3",
		},
		source: messages.ConfigSourceDefault,
	}
}

// Source names where the config was loaded from.
func (c *Config) Source() string {
	return c.source
}

// DefaultLabel returns the label preselected by the runtime prompt.
// An explicit default_runtime wins; otherwise DefaultRuntime when the catalog
// has it, else the newest label.
func (c *Config) DefaultLabel() string {
	if c.DefaultRuntime != "" {
		return c.DefaultRuntime
	}
	if _, ok := c.Runtimes[DefaultRuntime]; ok {
		return DefaultRuntime
	}
	labels := c.Runtimes.Labels()
	if len(labels) == 0 {
		return ""
	}
	return labels[len(labels)-1]
}

// Stubs returns the stub source the config points at.
func (c *Config) Stubs() stubs.Source {
	if c.StubsPath == "" {
		return stubs.Embedded()
	}
	return stubs.Dir(c.StubsPath)
}

// Lookup returns the runtime identifier for label.
func (c Catalog) Lookup(label string) (string, bool) {
	runtime, ok := c[label]
	return runtime, ok
}

// Labels returns the catalog labels in ascending version order. Labels that
// do not parse as versions sort lexically after the ones that do.
func (c Catalog) Labels() []string {
	labels := make([]string, 0, len(c))
	for label := range c {
		labels = append(labels, label)
	}
	sort.Slice(labels, func(i, j int) bool {
		return labelLess(labels[i], labels[j])
	})
	return labels
}

func labelLess(a string, b string) bool {
	va, errA := goversion.NewVersion(a)
	vb, errB := goversion.NewVersion(b)
	switch {
	case errA == nil && errB == nil:
		if va.Equal(vb) {
			return a < b
		}
		return va.LessThan(vb)
	case errA == nil:
		return true
	case errB == nil:
		return false
	default:
		return a < b
	}
}

// LabelFor returns the label whose runtime identifier is runtime.
func (c Catalog) LabelFor(runtime string) (string, bool) {
	for _, label := range c.Labels() {
		if c[label] == runtime {
			return label, true
		}
	}
	return "", false
}
