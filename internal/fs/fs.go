// Package fs provides common filesystem helper functions.
package fs

import (
	"os"
	"path/filepath"
)

// FileExists checks if a file or directory exists at the given path.
func FileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// DirExists checks if a directory exists at the given path.
func DirExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// Dir reads files relative to a workspace root on disk.
// The zero value has no root and reports every file as missing.
type Dir string

// ReadFile reads name relative to the root.
func (d Dir) ReadFile(name string) ([]byte, error) {
	if d == "" {
		return nil, os.ErrNotExist
	}
	return os.ReadFile(filepath.Join(string(d), name))
}
