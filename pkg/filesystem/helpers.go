package filesystem

import (
	"time"

	"github.com/arthur-debert/assetpipe/pkg/types"
)

// Exists reports whether path is a regular file. Directories and any
// Stat failure count as absent.
func Exists(fsys types.FS, path string) bool {
	info, err := fsys.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// IsDir reports whether path is a directory
func IsDir(fsys types.FS, path string) bool {
	info, err := fsys.Stat(path)
	if err != nil {
		return false
	}
	return info.IsDir()
}

// ModTime returns the modification time of path
func ModTime(fsys types.FS, path string) (time.Time, bool) {
	info, err := fsys.Stat(path)
	if err != nil {
		return time.Time{}, false
	}
	return info.ModTime(), true
}
