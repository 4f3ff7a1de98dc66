package testutils

import (
	"os"
	"path/filepath"
	"testing"
)

// WriteFiles creates a temporary directory holding the given files and
// returns its path. Keys are file names, values are contents.
func WriteFiles(t *testing.T, files map[string]string) string {
	t.Helper()

	dir := t.TempDir()
	for name, content := range files {
		WriteFile(t, dir, name, content)
	}
	return dir
}

// WriteFile creates a single file inside dir
func WriteFile(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write test file %s: %v", path, err)
	}
	return path
}

// MakeDir creates a subdirectory inside dir
func MakeDir(t *testing.T, dir, name string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	if err := os.Mkdir(path, 0o755); err != nil {
		t.Fatalf("Failed to create test directory %s: %v", path, err)
	}
	return path
}

// MakeUnreadable removes all permissions from path. Tests running as root
// can still open such files, so they are skipped there.
func MakeUnreadable(t *testing.T, path string) {
	t.Helper()

	if os.Geteuid() == 0 {
		t.Skip("Skipping permission test when running as root")
	}
	if err := os.Chmod(path, 0); err != nil {
		t.Fatalf("Failed to change permissions of %s: %v", path, err)
	}
	t.Cleanup(func() {
		_ = os.Chmod(path, 0o644)
	})
}
