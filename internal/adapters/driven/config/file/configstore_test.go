package file

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfigStore_Success(t *testing.T) {
	tmpDir := t.TempDir()

	store, err := NewConfigStore(tmpDir)

	require.NoError(t, err)
	require.NotNil(t, store)
	assert.Equal(t, filepath.Join(tmpDir, "config.toml"), store.Path())
}

func TestNewConfigStore_CreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "rote")

	_, err := NewConfigStore(dir)

	require.NoError(t, err)
	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestDefaultConfigDir(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("Cannot determine home directory")
	}

	dir, err := DefaultConfigDir()

	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".rote"), dir)
}

func TestConfigStore_TypedGetters(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.Set("study.file", "notes.txt"))
	require.NoError(t, store.Set("study.watch", true))
	require.NoError(t, store.Set("limits.max", 42))

	assert.Equal(t, "notes.txt", store.GetString("study.file"))
	assert.True(t, store.GetBool("study.watch"))

	// Wrong types and missing keys return zero values
	assert.Equal(t, "", store.GetString("limits.max"))
	assert.False(t, store.GetBool("study.file"))
	assert.False(t, store.GetBool("missing"))
}

func TestConfigStore_Persistence(t *testing.T) {
	tmpDir := t.TempDir()

	store1, err := NewConfigStore(tmpDir)
	require.NoError(t, err)
	require.NoError(t, store1.Set("study.file", "/data/capitals.txt"))
	require.NoError(t, store1.Set("study.watch", false))
	require.NoError(t, store1.Set("ui.alt_screen", true))

	store2, err := NewConfigStore(tmpDir)
	require.NoError(t, err)

	assert.Equal(t, "/data/capitals.txt", store2.GetString("study.file"))
	assert.False(t, store2.GetBool("study.watch"))
	_, exists := store2.Get("study.watch")
	assert.True(t, exists)
	assert.True(t, store2.GetBool("ui.alt_screen"))
}

func TestConfigStore_WritesTables(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.Set("study.file", "q.txt"))

	data, err := os.ReadFile(store.Path())
	require.NoError(t, err)
	content := string(data)
	assert.Contains(t, content, "[study]")
	assert.Contains(t, content, "file = 'q.txt'")
	assert.False(t, strings.Contains(content, "study.file"), "keys should be nested, got:\n%s", content)
}

func TestConfigStore_ReadsHandWrittenFile(t *testing.T) {
	tmpDir := t.TempDir()
	content := "[study]\nfile = \"history.txt\"\nwatch = false\n\n[ui]\nalt_screen = false\n"
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "config.toml"), []byte(content), 0600))

	store, err := NewConfigStore(tmpDir)

	require.NoError(t, err)
	assert.Equal(t, "history.txt", store.GetString("study.file"))
	_, ok := store.Get("study.watch")
	assert.True(t, ok)
	assert.False(t, store.GetBool("ui.alt_screen"))
}

func TestConfigStore_FilePermissions(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.Set("test", "value"))

	info, err := os.Stat(store.Path())
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
}

func TestConfigStore_EmptyFile(t *testing.T) {
	tmpDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "config.toml"), []byte{}, 0600))

	store, err := NewConfigStore(tmpDir)
	require.NoError(t, err)

	val, ok := store.Get("any_key")
	assert.False(t, ok)
	assert.Nil(t, val)
}

func TestNewConfigStore_MkdirAllError(t *testing.T) {
	store, err := NewConfigStore("/dev/null/cannot/create/dirs")

	assert.Error(t, err)
	assert.Nil(t, store)
}

func TestNewConfigStore_LoadCorruptedFile(t *testing.T) {
	tmpDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "config.toml"), []byte("this is not valid TOML {{{[["), 0600))

	store, err := NewConfigStore(tmpDir)

	assert.Error(t, err)
	assert.Nil(t, store)
}

func TestConfigStore_Concurrency(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	done := make(chan bool)
	for i := 0; i < 10; i++ {
		go func(id int) {
			key := "key" + string(rune('0'+id))
			_ = store.Set(key, id)
			_ = store.GetString(key)
			_, _ = store.Get(key)
			done <- true
		}(i)
	}

	for i := 0; i < 10; i++ {
		<-done
	}
}

func TestNestMap(t *testing.T) {
	nested := nestMap(map[string]any{
		"study.file":    "q.txt",
		"study.watch":   true,
		"ui.alt_screen": false,
		"top":           1,
		"top.child":     2,
	})

	assert.Equal(t, map[string]any{"file": "q.txt", "watch": true}, nested["study"])
	assert.Equal(t, map[string]any{"alt_screen": false}, nested["ui"])
	assert.Equal(t, 1, nested["top"])
	assert.Equal(t, 2, nested["top.child"])
}

func TestFlattenMap_RoundTrip(t *testing.T) {
	flat := map[string]any{"a.b.c": 1, "a.d": "x", "e": true}

	assert.Equal(t, flat, flattenMap(nestMap(flat), ""))
}
