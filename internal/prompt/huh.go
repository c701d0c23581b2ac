package prompt

import (
	"errors"
	"io"
	"os"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/conn-castle/vercel-installer/internal/terminal"
)

// Huh implements Prompter with a charmbracelet/huh select form.
type Huh struct {
	isTerminal func() bool
	output     io.Writer
}

var runFormFunc = func(form *huh.Form) error { return form.Run() }

// NewHuh creates a Huh prompter that renders to stderr.
func NewHuh() *Huh {
	return &Huh{isTerminal: terminal.IsInteractive, output: os.Stderr}
}

func (h *Huh) ensureInteractive() error {
	checker := h.isTerminal
	if checker == nil {
		checker = terminal.IsInteractive
	}
	if checker() {
		return nil
	}
	return ErrNotInteractive
}

// selectKeyMap makes Esc and Ctrl+C both abort the form. Filtering is off;
// the runtime list is short.
func selectKeyMap() *huh.KeyMap {
	km := huh.NewDefaultKeyMap()
	km.Quit = key.NewBinding(key.WithKeys("ctrl+c", "esc"), key.WithHelp("esc", "cancel"))
	km.Select.Filter.SetEnabled(false)
	km.Select.SetFilter.SetEnabled(false)
	km.Select.ClearFilter.SetEnabled(false)
	return km
}

// interruptFilter turns an interrupt into a quit so bubbletea clears the
// rendered form on the way out.
func interruptFilter(_ tea.Model, msg tea.Msg) tea.Msg {
	if _, ok := msg.(tea.InterruptMsg); ok {
		return tea.QuitMsg{}
	}
	return msg
}

func (h *Huh) runForm(form *huh.Form) error {
	if err := h.ensureInteractive(); err != nil {
		return err
	}
	output := h.output
	if output == nil {
		output = os.Stderr
	}
	form.WithKeyMap(selectKeyMap())
	form.WithProgramOptions(
		tea.WithOutput(output),
		tea.WithFilter(interruptFilter),
	)
	err := runFormFunc(form)
	if errors.Is(err, huh.ErrUserAborted) {
		return ErrAborted
	}
	return err
}

// Select renders a single-choice prompt with def preselected.
func (h *Huh) Select(title string, options []string, def string) (string, error) {
	if len(options) == 0 {
		return "", ErrNoOptions
	}
	selected := def
	if selected == "" {
		selected = options[0]
	}
	opts := make([]huh.Option[string], len(options))
	for i, o := range options {
		label := o
		if o == def {
			label = o + " (default)"
		}
		opts[i] = huh.NewOption(label, o)
	}
	err := h.runForm(huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title(title).
				Options(opts...).
				Value(&selected),
		),
	))
	if err != nil {
		return "", err
	}
	return selected, nil
}
