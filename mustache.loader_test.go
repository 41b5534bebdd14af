package mustache

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOSLoader(t *testing.T) {
	t.Run("reads an existing file", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "t.mustache")
		require.NoError(t, os.WriteFile(path, []byte("{{a}}"), 0o644))

		content, err := NewOSLoader().Load(path)
		require.NoError(t, err)
		assert.Equal(t, []byte("{{a}}"), content)
	})

	t.Run("missing file reports not exist", func(t *testing.T) {
		_, err := NewOSLoader().Load(filepath.Join(t.TempDir(), "absent"))
		require.Error(t, err)
		assert.True(t, errors.Is(err, fs.ErrNotExist))
	})
}

func TestMapLoader(t *testing.T) {
	t.Run("serves seeded entries", func(t *testing.T) {
		loader := NewMapLoader(map[string]string{"a": "alpha"})

		content, err := loader.Load("a")
		require.NoError(t, err)
		assert.Equal(t, []byte("alpha"), content)
	})

	t.Run("missing path reports not exist", func(t *testing.T) {
		loader := NewMapLoader(nil)

		_, err := loader.Load("nope")
		require.Error(t, err)
		assert.True(t, errors.Is(err, fs.ErrNotExist))
	})

	t.Run("set and delete", func(t *testing.T) {
		loader := NewMapLoader(nil)
		loader.Set("k", "v")

		content, err := loader.Load("k")
		require.NoError(t, err)
		assert.Equal(t, []byte("v"), content)

		loader.Delete("k")
		_, err = loader.Load("k")
		require.Error(t, err)
	})

	t.Run("returned content is a copy", func(t *testing.T) {
		loader := NewMapLoader(map[string]string{"k": "abc"})

		first, err := loader.Load("k")
		require.NoError(t, err)
		first[0] = 'X'

		second, err := loader.Load("k")
		require.NoError(t, err)
		assert.Equal(t, []byte("abc"), second)
	})

	t.Run("concurrent access", func(t *testing.T) {
		loader := NewMapLoader(map[string]string{"shared": "s"})

		var wg sync.WaitGroup
		for i := 0; i < 8; i++ {
			wg.Add(2)
			go func() {
				defer wg.Done()
				loader.Set("shared", "updated")
			}()
			go func() {
				defer wg.Done()
				_, err := loader.Load("shared")
				assert.NoError(t, err)
			}()
		}
		wg.Wait()
	})
}
