package memory

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfigStore_Seeded(t *testing.T) {
	store := NewConfigStore(map[string]any{"study.file": "notes.txt"})

	require.NotNil(t, store)
	assert.Equal(t, "notes.txt", store.GetString("study.file"))
	assert.Equal(t, ":memory:", store.Path())
}

func TestConfigStore_TypedGetters(t *testing.T) {
	store := NewConfigStore()
	require.NoError(t, store.Set("s", "value"))
	require.NoError(t, store.Set("b", true))

	assert.Equal(t, "value", store.GetString("s"))
	assert.True(t, store.GetBool("b"))
}

func TestConfigStore_WrongTypeReturnsZero(t *testing.T) {
	store := NewConfigStore(map[string]any{"b": "yes", "s": 12})

	assert.False(t, store.GetBool("b"))
	assert.Empty(t, store.GetString("s"))
	assert.False(t, store.GetBool("missing"))
}

func TestConfigStore_CountsSavesOnly(t *testing.T) {
	store := NewConfigStore()

	require.NoError(t, store.Set("a", 1))
	require.NoError(t, store.Set("b", 2))
	assert.Equal(t, 0, store.Saves())

	require.NoError(t, store.Save())
	assert.Equal(t, 1, store.Saves())
	assert.NoError(t, store.Load())
}

func TestConfigStore_ConcurrentAccess(t *testing.T) {
	store := NewConfigStore()
	var wg sync.WaitGroup

	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			_ = store.Set("key", n)
			_, _ = store.Get("key")
		}(i)
	}
	wg.Wait()

	_, ok := store.Get("key")
	assert.True(t, ok)
}
