// Package testutil provides shared helpers for tests that touch the filesystem.
// Every helper works inside t.TempDir(), so files are removed automatically
// when the test (and all its subtests) finish.
package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// TempPath returns the path of a file named name inside a fresh temp directory.
// The file itself is not created.
func TempPath(t *testing.T, name string) string {
	t.Helper()
	return filepath.Join(t.TempDir(), name)
}

// WriteFile creates a file named name with the given content in a fresh temp
// directory and returns its path.
func WriteFile(t *testing.T, name, content string) string {
	t.Helper()
	path := TempPath(t, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("testutil.WriteFile: %v", err)
	}
	return path
}

// ReadFile returns the content of path, failing the test if it cannot be read.
func ReadFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("testutil.ReadFile: %v", err)
	}
	return string(data)
}

// UnwritablePath returns a path whose parent "directory" is a regular file,
// so any attempt to create it fails regardless of the user's privileges.
func UnwritablePath(t *testing.T, name string) string {
	t.Helper()
	blocker := WriteFile(t, "not-a-dir", "")
	return filepath.Join(blocker, name)
}
