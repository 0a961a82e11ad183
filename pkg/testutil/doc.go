// Package testutil provides fixtures shared by package tests.
//
// MemFS is an in-memory types.FS backed by afero whose files all carry
// FixedTime as their modification time, so locator and pipeline results
// are reproducible.
package testutil
