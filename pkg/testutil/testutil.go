package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/velar/brewbump/pkg/filesystem"
	"github.com/velar/brewbump/pkg/types"
)

// CreateFile creates a file with the given content in the specified directory.
// Parent directories are created as needed. It fails the test on error.
func CreateFile(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("Failed to create parent directories for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to create file %s: %v", path, err)
	}

	return path
}

// ReadFile returns the content of path, failing the test on error.
func ReadFile(t *testing.T, path string) string {
	t.Helper()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read file %s: %v", path, err)
	}
	return string(data)
}

// MemoryFS returns an in-memory filesystem seeded with files (path -> content).
func MemoryFS(t *testing.T, files map[string]string) types.FS {
	t.Helper()

	fsys := filesystem.NewMemory()
	for path, content := range files {
		if err := fsys.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatalf("Failed to seed %s: %v", path, err)
		}
	}
	return fsys
}

// ReadFS returns the content of path in fsys, failing the test on error.
func ReadFS(t *testing.T, fsys types.FS, path string) string {
	t.Helper()

	data, err := fsys.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read %s: %v", path, err)
	}
	return string(data)
}
