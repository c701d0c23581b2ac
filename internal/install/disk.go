package install

import (
	"errors"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/conn-castle/vercel-installer/internal/messages"
)

// Disk is the target project filesystem. Paths are slash-separated and
// relative to the project root.
type Disk struct {
	root string
	sys  System
}

// NewDisk returns a Disk rooted at root.
func NewDisk(sys System, root string) *Disk {
	return &Disk{root: root, sys: sys}
}

// Root returns the project root the disk writes under.
func (d *Disk) Root() string {
	return d.root
}

// Path resolves rel to an absolute path under the root.
func (d *Disk) Path(rel string) (string, error) {
	clean := path.Clean(filepath.ToSlash(rel))
	if clean == "." || path.IsAbs(clean) || clean == ".." || strings.HasPrefix(clean, "../") {
		return "", fmt.Errorf(messages.InstallPathEscapesRoot, rel)
	}
	return filepath.Join(d.root, filepath.FromSlash(clean)), nil
}

// Exists reports whether anything exists at rel.
func (d *Disk) Exists(rel string) (bool, error) {
	abs, err := d.Path(rel)
	if err != nil {
		return false, err
	}
	if _, err := d.sys.Stat(abs); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return false, nil
		}
		return false, fmt.Errorf(messages.InstallFailedStatFmt, abs, err)
	}
	return true, nil
}

// MakeDirectory creates the directory rel, including parents.
func (d *Disk) MakeDirectory(rel string) error {
	abs, err := d.Path(rel)
	if err != nil {
		return err
	}
	if err := d.sys.MkdirAll(abs, 0o755); err != nil {
		return fmt.Errorf(messages.InstallWriteFailedFmt, ErrWriteFailed, rel, err)
	}
	return nil
}

// Put writes data to rel, replacing any existing file. The parent directory
// must exist.
func (d *Disk) Put(rel string, data []byte) error {
	abs, err := d.Path(rel)
	if err != nil {
		return err
	}
	if err := d.sys.WriteFileAtomic(abs, data, 0o644); err != nil {
		return fmt.Errorf(messages.InstallWriteFailedFmt, ErrWriteFailed, rel, err)
	}
	return nil
}

// Get reads the file at rel.
func (d *Disk) Get(rel string) ([]byte, error) {
	abs, err := d.Path(rel)
	if err != nil {
		return nil, err
	}
	return d.sys.ReadFile(abs)
}
