// Package prompt provides the runtime selection prompt used by the installer.
package prompt

import (
	"errors"

	"github.com/conn-castle/vercel-installer/internal/messages"
)

var (
	// ErrNotInteractive reports a prompt invoked without a terminal.
	ErrNotInteractive = errors.New(messages.PromptRequiresTerminal)
	// ErrAborted reports a prompt the user cancelled.
	ErrAborted = errors.New(messages.PromptAborted)
	// ErrNoOptions reports a prompt with nothing to choose from.
	ErrNoOptions = errors.New(messages.PromptNoOptions)
)

// Prompter asks the user to pick one of options.
// def is preselected and must be one of options when non-empty.
type Prompter interface {
	Select(title string, options []string, def string) (string, error)
}

// Func adapts a function into a Prompter.
type Func func(title string, options []string, def string) (string, error)

// Select calls f.
func (f Func) Select(title string, options []string, def string) (string, error) {
	return f(title, options, def)
}

// Fixed returns a Prompter that always answers label.
func Fixed(label string) Func {
	return func(string, []string, string) (string, error) {
		return label, nil
	}
}

// Default answers every prompt with its default, or the first option when
// there is no default. It backs non-interactive runs.
type Default struct{}

// Select returns def.
func (Default) Select(_ string, options []string, def string) (string, error) {
	if def != "" {
		return def, nil
	}
	if len(options) == 0 {
		return "", ErrNoOptions
	}
	return options[0], nil
}
