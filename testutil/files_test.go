package testutil_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pkordes/trip-journal/testutil"
)

// TestTempPath_doesNotCreateFile verifies that TempPath only builds a path.
func TestTempPath_doesNotCreateFile(t *testing.T) {
	path := testutil.TempPath(t, "entries.json")

	require.Equal(t, "entries.json", filepath.Base(path))
	_, err := os.Stat(path)
	require.True(t, os.IsNotExist(err))
}

// TestWriteFile_roundTrip verifies that WriteFile and ReadFile agree.
func TestWriteFile_roundTrip(t *testing.T) {
	path := testutil.WriteFile(t, "notes.md", "# Notes\n")

	require.Equal(t, "# Notes\n", testutil.ReadFile(t, path))
}

// TestUnwritablePath_cannotBeCreated verifies the returned path fails on create.
func TestUnwritablePath_cannotBeCreated(t *testing.T) {
	path := testutil.UnwritablePath(t, "entries.json")

	_, err := os.Create(path)
	require.Error(t, err)
}
