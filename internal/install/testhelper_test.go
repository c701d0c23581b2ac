package install

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/apex/log"
	"github.com/apex/log/handlers/discard"

	"github.com/conn-castle/vercel-installer/internal/config"
	"github.com/conn-castle/vercel-installer/internal/stubs"
)

// faultSystem is a test helper that allows deterministic error injection for the
// installer System interface without chmod-based permission tricks.
type faultSystem struct {
	base       System
	statErrs   map[string]error
	readErrs   map[string]error
	mkdirErrs  map[string]error
	writeErrs  map[string]error
	mkdirCalls []string
	writeCalls []string
}

func newFaultSystem(base System) *faultSystem {
	return &faultSystem{
		base:      base,
		statErrs:  map[string]error{},
		readErrs:  map[string]error{},
		mkdirErrs: map[string]error{},
		writeErrs: map[string]error{},
	}
}

func normalizePath(path string) string {
	return filepath.Clean(path)
}

func (f *faultSystem) Stat(name string) (os.FileInfo, error) {
	if err, ok := f.statErrs[normalizePath(name)]; ok {
		return nil, err
	}
	return f.base.Stat(name)
}

func (f *faultSystem) ReadFile(name string) ([]byte, error) {
	if err, ok := f.readErrs[normalizePath(name)]; ok {
		return nil, err
	}
	return f.base.ReadFile(name)
}

func (f *faultSystem) MkdirAll(path string, perm os.FileMode) error {
	f.mkdirCalls = append(f.mkdirCalls, normalizePath(path))
	if err, ok := f.mkdirErrs[normalizePath(path)]; ok {
		return err
	}
	return f.base.MkdirAll(path, perm)
}

func (f *faultSystem) WriteFileAtomic(filename string, data []byte, perm os.FileMode) error {
	f.writeCalls = append(f.writeCalls, normalizePath(filename))
	if err, ok := f.writeErrs[normalizePath(filename)]; ok {
		return err
	}
	return f.base.WriteFileAtomic(filename, data, perm)
}

// mapStubs serves stubs from memory.
type mapStubs map[string]string

func (m mapStubs) Path(name string) string {
	return "mem://" + name
}

func (m mapStubs) Load(name string) ([]byte, error) {
	content, ok := m[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", stubs.ErrNotFound, m.Path(name))
	}
	return []byte(content), nil
}

// brokenStubs fails every load with a plain error.
type brokenStubs struct{ err error }

func (b brokenStubs) Path(name string) string { return "broken://" + name }

func (b brokenStubs) Load(string) ([]byte, error) { return nil, b.err }

func testCatalogConfig() *config.Config {
	return &config.Config{Runtimes: config.Catalog{"7.4": "id-a", "8.0": "id-b"}}
}

func testStubs() mapStubs {
	return mapStubs{
		ManifestPath:   "{\"functions\":{\"api/index.php\":{\"runtime\":\"{{ runtime }}\"}},\"note\":\"{{ runtime }}\"}\n",
		EntryPointPath: "<?php require __DIR__ . '/../public/index.php';\n",
		IgnorePath:     "/vendor\n",
	}
}

func quietLogger() log.Interface {
	return &log.Logger{Handler: discard.New(), Level: log.DebugLevel}
}
