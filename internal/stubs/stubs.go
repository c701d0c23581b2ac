// Package stubs serves the files the installer copies into a project.
//
// The built-in stubs are compiled into the binary. A directory on disk can
// replace them when a project wants to ship its own manifest or entry point.
package stubs

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// ErrNotFound reports a stub that does not resolve to readable content.
var ErrNotFound = errors.New("stub not found")

// EmbeddedRoot is the display root used for built-in stub paths.
const EmbeddedRoot = "embedded://stubs"

//go:embed all:files
var embedded embed.FS

// Source resolves stub names to content.
type Source interface {
	// Path returns the location a stub name resolves to.
	Path(name string) string
	// Load returns the raw bytes of a stub.
	Load(name string) ([]byte, error)
}

type fsSource struct {
	fsys fs.FS
	root string
	join func(root string, name string) string
}

// Embedded returns the built-in stub source.
func Embedded() Source {
	sub, err := fs.Sub(embedded, "files")
	if err != nil {
		// fs.Sub only fails on an invalid directory name.
		panic(err)
	}
	return fsSource{fsys: sub, root: EmbeddedRoot, join: joinSlash}
}

// Dir returns a stub source reading files under root on disk.
func Dir(root string) Source {
	return fsSource{
		fsys: os.DirFS(root),
		root: root,
		join: func(root string, name string) string {
			return filepath.Join(root, filepath.FromSlash(name))
		},
	}
}

func joinSlash(root string, name string) string {
	return root + "/" + name
}

// Path joins the source root and the slash-separated stub name.
func (s fsSource) Path(name string) string {
	return s.join(s.root, name)
}

// Load reads a stub. Every failure wraps ErrNotFound.
func (s fsSource) Load(name string) ([]byte, error) {
	if !fs.ValidPath(name) {
		return nil, fmt.Errorf("%w: invalid stub name %q", ErrNotFound, name)
	}
	data, err := fs.ReadFile(s.fsys, name)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrNotFound, s.Path(name), err)
	}
	return data, nil
}

// Read returns a built-in stub by slash-separated name.
func Read(name string) ([]byte, error) {
	return Embedded().Load(name)
}

// Walk walks the built-in stubs rooted at root.
func Walk(root string, fn fs.WalkDirFunc) error {
	sub, err := fs.Sub(embedded, "files")
	if err != nil {
		return err
	}
	return fs.WalkDir(sub, root, fn)
}
