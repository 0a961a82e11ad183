package testutil

import (
	"testing"
	"time"

	"github.com/arthur-debert/assetpipe/pkg/filesystem"
	"github.com/arthur-debert/assetpipe/pkg/types"
	"github.com/spf13/afero"
)

// FixedTime is the modification time every fixture file carries
var FixedTime = time.Date(2024, time.January, 2, 15, 4, 5, 0, time.UTC)

// MemFS is an in-memory storage fixture
type MemFS struct {
	types.FS
	Afero afero.Fs
}

// NewMemFS creates an in-memory filesystem holding files (path -> content).
// Every file gets FixedTime as its modification time.
func NewMemFS(t testing.TB, files map[string]string) *MemFS {
	t.Helper()

	mem := afero.NewMemMapFs()
	m := &MemFS{FS: filesystem.NewAferoFS(mem), Afero: mem}
	for p, content := range files {
		m.Write(t, p, content)
	}
	return m
}

// Write adds or replaces one file
func (m *MemFS) Write(t testing.TB, path, content string) {
	t.Helper()

	if err := afero.WriteFile(m.Afero, path, []byte(content), 0644); err != nil {
		t.Fatalf("write fixture %s: %v", path, err)
	}
	if err := m.Afero.Chtimes(path, FixedTime, FixedTime); err != nil {
		t.Fatalf("chtimes fixture %s: %v", path, err)
	}
}

// Mkdir creates an empty directory
func (m *MemFS) Mkdir(t testing.TB, path string) {
	t.Helper()

	if err := m.Afero.MkdirAll(path, 0755); err != nil {
		t.Fatalf("mkdir fixture %s: %v", path, err)
	}
}
