package container

import (
	"io"
	"os"
)

// OSFileSystem is a FileSystem backed by the real disk, for passing to
// Load/Save's WithFileSystem option (tests pass a memFileSystem stand-in
// instead). Load and Save use no filesystem unless one is passed.
type OSFileSystem struct{}

var _ FileSystem = OSFileSystem{}

// Open opens name for reading.
func (OSFileSystem) Open(name string) (io.ReadCloser, error) {
	return os.Open(name)
}

// Create creates or truncates name for writing.
func (OSFileSystem) Create(name string) (io.WriteCloser, error) {
	return os.Create(name)
}

// Stat reports whether name exists and is a regular file (or at least
// stat-able); it never returns an error, matching the FileSystem
// interface's boolean probe shape.
func (OSFileSystem) Stat(name string) bool {
	_, err := os.Stat(name)
	return err == nil
}
