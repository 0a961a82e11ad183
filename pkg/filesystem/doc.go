// Package filesystem provides the storage backends assets are read from.
//
// This package contains implementations of the types.FS interface:
// the OS filesystem, an afero adapter (used for in-memory tests) and an
// S3-compatible object store built on minio-go, where directories are
// key prefixes.
package filesystem
