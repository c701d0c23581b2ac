// Package fsutil holds filesystem helpers shared by the installer.
package fsutil

import (
	"os"
	"path/filepath"
)

// WriteFileAtomic writes data to filename using a temp file and a rename.
// The temp file lives next to filename so the rename stays on one filesystem.
// On failure the previous file, if any, is left unchanged. The parent
// directory must already exist.
func WriteFileAtomic(filename string, data []byte, perm os.FileMode) error {
	tmp, err := os.CreateTemp(filepath.Dir(filename), ".vercel-tmp-*")
	if err != nil {
		return err
	}
	tmpPath := tmp.Name()
	success := false
	defer func() {
		if !success {
			_ = os.Remove(tmpPath)
		}
	}()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Chmod(tmpPath, perm); err != nil {
		return err
	}
	if err := os.Rename(tmpPath, filename); err != nil {
		return err
	}
	success = true
	return nil
}
