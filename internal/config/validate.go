package config

import (
	"fmt"
	"strings"

	"github.com/conn-castle/vercel-installer/internal/messages"
)

// Validate ensures the runtime catalog is usable.
func (c *Config) Validate(path string) error {
	if len(c.Runtimes) == 0 {
		return fmt.Errorf(messages.ConfigRuntimesRequiredFmt, path)
	}
	for _, label := range c.Runtimes.Labels() {
		if strings.TrimSpace(label) == "" {
			return fmt.Errorf(messages.ConfigRuntimeLabelEmptyFmt, path)
		}
		if strings.TrimSpace(c.Runtimes[label]) == "" {
			return fmt.Errorf(messages.ConfigRuntimeIDEmptyFmt, path, label)
		}
	}
	if c.DefaultRuntime != "" {
		if _, ok := c.Runtimes[c.DefaultRuntime]; !ok {
			return fmt.Errorf(messages.ConfigDefaultRuntimeFmt, path, c.DefaultRuntime, strings.Join(c.Runtimes.Labels(), ", "))
		}
	}
	return nil
}
