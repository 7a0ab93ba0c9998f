// nolint:all // test package
package session

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Helper function to create a temporary Store for testing.
func newTestStore(t *testing.T) (*Store, string) {
	t.Helper()
	storePath := filepath.Join(t.TempDir(), "session.json")
	s, err := NewStore(storePath)
	if err != nil {
		t.Fatalf("Failed to create test Store: %v", err)
	}

	return s, storePath
}

func TestNewStore(t *testing.T) {
	tempDir := t.TempDir()

	corruptedPath := filepath.Join(tempDir, "corrupted.json")
	require.NoError(t, os.WriteFile(corruptedPath, []byte("invalid json"), 0o600))

	emptyPath := filepath.Join(tempDir, "empty.json")
	require.NoError(t, os.WriteFile(emptyPath, []byte("{}"), 0o600))

	fileAsParent := filepath.Join(tempDir, "file_as_parent")
	require.NoError(t, os.WriteFile(fileAsParent, []byte("I am a file"), 0o600))

	tests := []struct {
		name      string
		storePath string
		wantErr   bool
	}{
		{"new_store", filepath.Join(tempDir, "session.json"), false},
		{"nested_parent_created", filepath.Join(tempDir, "a", "b", "session.json"), false},
		{"load_existing_empty_store", emptyPath, false},
		{"load_corrupted_store_file", corruptedPath, true},
		{"parent_is_a_file", filepath.Join(fileAsParent, "session.json"), true},
		{"empty_path", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := NewStore(tt.storePath)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.storePath, s.filePath)
			assert.Empty(t, s.Tabs())
			assert.False(t, s.Restored())
		})
	}
}

func TestStore_SaveAndReload(t *testing.T) {
	s, storePath := newTestStore(t)

	tabs := []string{"sheet 1", "sheet 3"}
	require.NoError(t, s.Save(tabs))
	tabs[0] = "mutated"

	assert.Equal(t, []string{"sheet 1", "sheet 3"}, s.Tabs())

	reloaded, err := NewStore(storePath)
	require.NoError(t, err)
	assert.True(t, reloaded.Restored())
	assert.Equal(t, []string{"sheet 1", "sheet 3"}, reloaded.Tabs())

	info, err := os.Stat(storePath)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestStore_SaveEmptyIsRestored(t *testing.T) {
	s, storePath := newTestStore(t)
	require.NoError(t, s.Save(nil))

	reloaded, err := NewStore(storePath)
	require.NoError(t, err)
	assert.True(t, reloaded.Restored())
	assert.Empty(t, reloaded.Tabs())
}

func TestStore_Clear(t *testing.T) {
	s, storePath := newTestStore(t)
	require.NoError(t, s.Save([]string{"sheet 1"}))

	require.NoError(t, s.Clear())
	assert.Empty(t, s.Tabs())
	_, err := os.Stat(storePath)
	assert.True(t, os.IsNotExist(err))

	// Clearing twice is fine.
	assert.NoError(t, s.Clear())
}
