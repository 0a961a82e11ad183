package types

import (
	"io/fs"
)

// FS is the storage capability the locator and pipeline read assets through.
// Existence and timestamps are derived from Stat; see pkg/filesystem for the
// Exists and ModTime helpers and the OS, afero and S3 implementations.
type FS interface {
	Stat(name string) (fs.FileInfo, error)
	ReadFile(name string) ([]byte, error)
	ReadDir(name string) ([]fs.DirEntry, error)

	// Used by publish only
	WriteFile(name string, data []byte, perm fs.FileMode) error
	MkdirAll(path string, perm fs.FileMode) error
}
