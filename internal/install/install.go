// Package install writes the Vercel deployment files into a project.
package install

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"strings"

	"github.com/apex/log"

	"github.com/conn-castle/vercel-installer/internal/config"
	"github.com/conn-castle/vercel-installer/internal/messages"
	"github.com/conn-castle/vercel-installer/internal/prompt"
	"github.com/conn-castle/vercel-installer/internal/stubs"
)

// RuntimePlaceholder is replaced with the runtime identifier in rendered stubs.
const RuntimePlaceholder = "{{ runtime }}"

var (
	// ErrUnknownRuntime reports a PHP version label missing from the catalog.
	ErrUnknownRuntime = errors.New("unknown PHP runtime")
	// ErrStubNotFound reports a stub that could not be read.
	ErrStubNotFound = stubs.ErrNotFound
	// ErrWriteFailed reports a write the target filesystem rejected.
	ErrWriteFailed = errors.New("write failed")
	// ErrPromptFailed reports a runtime prompt that returned no choice.
	ErrPromptFailed = errors.New("runtime selection failed")
)

// Options controls installer behavior.
type Options struct {
	// Config supplies the runtime catalog and the stub location.
	Config *config.Config
	// Stubs overrides the stub source derived from Config.
	Stubs stubs.Source
	// Runtime preselects a PHP version label and skips the prompt.
	Runtime string
	// Prompter selects a label when Runtime is empty.
	Prompter prompt.Prompter
	System   System
	Logger   log.Interface
	// WarnWriter receives diff previews. Defaults to stderr.
	WarnWriter   io.Writer
	ShowDiff     bool
	DiffMaxLines int
}

// Result describes a completed install.
type Result struct {
	Label   string
	Runtime string
	// Written lists the relative paths written, in write order.
	Written []string
	// CreatedDirs lists directories that did not exist before the run.
	CreatedDirs []string
	// Changed lists written paths that existed with different content.
	Changed []string
}

type installer struct {
	root         string
	cfg          *config.Config
	stubs        stubs.Source
	runtime      string
	prompter     prompt.Prompter
	sys          System
	log          log.Interface
	warnWriter   io.Writer
	showDiff     bool
	diffMaxLines int

	diskHandle *Disk
	rendered   map[string][]byte
	result     Result
}

var newDisk = NewDisk

// Run selects a PHP runtime, renders the manifest and writes every stub into
// root. Files written before a failure are left in place.
func Run(root string, opts Options) (Result, error) {
	if root == "" {
		return Result{}, errors.New(messages.InstallRootRequired)
	}
	if opts.Config == nil {
		return Result{}, errors.New(messages.InstallConfigRequired)
	}
	if opts.System == nil {
		return Result{}, errors.New(messages.InstallSystemRequired)
	}
	if strings.TrimSpace(opts.Runtime) == "" && opts.Prompter == nil {
		return Result{}, errors.New(messages.InstallPrompterRequired)
	}
	source := opts.Stubs
	if source == nil {
		source = opts.Config.Stubs()
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.Log
	}
	warnWriter := opts.WarnWriter
	if warnWriter == nil {
		warnWriter = os.Stderr
	}
	inst := &installer{
		root:         root,
		cfg:          opts.Config,
		stubs:        source,
		runtime:      strings.TrimSpace(opts.Runtime),
		prompter:     opts.Prompter,
		sys:          opts.System,
		log:          logger,
		warnWriter:   warnWriter,
		showDiff:     opts.ShowDiff,
		diffMaxLines: normalizeDiffMaxLines(opts.DiffMaxLines),
		rendered:     make(map[string][]byte),
	}
	steps := []func() error{
		inst.selectRuntime,
		inst.render,
		inst.persist,
	}
	if err := runSteps(steps); err != nil {
		return inst.result, err
	}
	return inst.result, nil
}

func runSteps(steps []func() error) error {
	for _, step := range steps {
		if err := step(); err != nil {
			return err
		}
	}
	return nil
}

// selectRuntime resolves the label and looks up its runtime identifier.
func (inst *installer) selectRuntime() error {
	catalog := inst.cfg.Runtimes
	labels := catalog.Labels()
	label := inst.runtime
	if label == "" {
		chosen, err := inst.prompter.Select(messages.PromptRuntimeTitle, labels, inst.cfg.DefaultLabel())
		if err != nil {
			return fmt.Errorf(messages.InstallPromptFailedFmt, ErrPromptFailed, err)
		}
		label = chosen
	} else {
		inst.log.WithField("label", label).Debug("runtime preselected, skipping prompt")
	}
	runtime, ok := catalog.Lookup(label)
	if !ok {
		return fmt.Errorf(messages.InstallUnknownRuntimeFmt, ErrUnknownRuntime, label, strings.Join(labels, ", "))
	}
	inst.result.Label = label
	inst.result.Runtime = runtime
	inst.log.WithFields(log.Fields{"label": label, "runtime": runtime}).Debug("runtime selected")
	return nil
}

// render substitutes the runtime identifier into every templated stub.
func (inst *installer) render() error {
	for _, stub := range StubSet() {
		if !stub.Render {
			continue
		}
		raw, err := inst.loadStub(stub.Source)
		if err != nil {
			return err
		}
		inst.rendered[stub.Source] = renderRuntime(raw, inst.result.Runtime)
		inst.log.WithField("stub", inst.stubPath(stub.Source)).Debug("rendered stub")
	}
	return nil
}

// renderRuntime replaces the placeholder literally; the identifier is not escaped.
func renderRuntime(raw []byte, runtime string) []byte {
	return bytes.ReplaceAll(raw, []byte(RuntimePlaceholder), []byte(runtime))
}

// persist writes the stubs in StubSet order, creating parent directories
// only when missing.
func (inst *installer) persist() error {
	for _, stub := range StubSet() {
		if err := inst.ensureDir(path.Dir(stub.Dest)); err != nil {
			return err
		}
		content, ok := inst.rendered[stub.Source]
		if !ok {
			raw, err := inst.loadStub(stub.Source)
			if err != nil {
				return err
			}
			content = raw
		}
		if err := inst.put(stub.Dest, content); err != nil {
			return err
		}
	}
	return nil
}

func (inst *installer) ensureDir(rel string) error {
	if rel == "." || rel == "" {
		return nil
	}
	disk := inst.disk()
	exists, err := disk.Exists(rel)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}
	if err := disk.MakeDirectory(rel); err != nil {
		return err
	}
	inst.result.CreatedDirs = append(inst.result.CreatedDirs, rel)
	inst.log.WithField("dir", rel).Debug("created directory")
	return nil
}

func (inst *installer) put(rel string, content []byte) error {
	disk := inst.disk()
	if existing, err := disk.Get(rel); err == nil {
		if !bytes.Equal(existing, content) {
			inst.result.Changed = append(inst.result.Changed, rel)
			if inst.showDiff {
				inst.writeDiffPreview(rel, existing, content)
			}
		}
	} else if !errors.Is(err, os.ErrNotExist) {
		inst.log.WithError(err).WithField("path", rel).Debug("could not read existing file")
	}
	if err := disk.Put(rel, content); err != nil {
		return err
	}
	inst.result.Written = append(inst.result.Written, rel)
	inst.log.WithField("path", rel).Debug("wrote file")
	return nil
}

// disk returns the target filesystem, constructing it on first use.
func (inst *installer) disk() *Disk {
	if inst.diskHandle == nil {
		inst.diskHandle = newDisk(inst.sys, inst.root)
	}
	return inst.diskHandle
}

func (inst *installer) stubPath(name string) string {
	return inst.stubs.Path(name)
}

func (inst *installer) loadStub(name string) ([]byte, error) {
	data, err := inst.stubs.Load(name)
	if err != nil {
		if errors.Is(err, ErrStubNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf(messages.InstallStubNotFoundFmt, ErrStubNotFound, inst.stubPath(name), err)
	}
	return data, nil
}
