// Package file provides file system operations adapter implementation.
package file

import (
	"fmt"
	"io"
	"os"

	"appliance-portcfg/internal/port"
)

// ManagerAdapter is an adapter that implements the FileManager port using the standard os package.
type ManagerAdapter struct{}

// Ensure ManagerAdapter implements the FileManager port
var _ port.FileManager = (*ManagerAdapter)(nil)

// NewManagerAdapter creates a new file manager adapter.
func NewManagerAdapter() *ManagerAdapter {
	return &ManagerAdapter{}
}

// Open opens a file for reading. The caller closes it.
func (f *ManagerAdapter) Open(filename string) (io.ReadCloser, error) {
	fh, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file %s: %w", filename, err)
	}
	return fh, nil
}

// FileExists reports whether filename exists and is a regular file.
func (f *ManagerAdapter) FileExists(filename string) bool {
	info, err := os.Stat(filename)
	return err == nil && info.Mode().IsRegular()
}
