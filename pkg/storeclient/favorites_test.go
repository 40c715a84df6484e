// pkg/storeclient/favorites_test.go
package storeclient

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testMirror(t *testing.T) *Mirror {
	t.Helper()
	m, err := NewMirror(t.TempDir())
	require.NoError(t, err)
	return m
}

func mirrorFileExists(m *Mirror, key string) bool {
	_, err := os.Stat(filepath.Join(m.dir, key+".json"))
	return err == nil
}

func TestFavoritesDedup(t *testing.T) {
	fav := NewFavorites(testMirror(t))

	fav.Add(Product{ID: "p1"})
	fav.Add(Product{ID: "p1"})

	assert.Equal(t, 1, fav.Count())
}

func TestFavoritesToggle(t *testing.T) {
	fav := NewFavorites(testMirror(t))

	assert.True(t, fav.Toggle(Product{ID: "p1"}))
	assert.True(t, fav.Contains("p1"))

	assert.False(t, fav.Toggle(Product{ID: "p1"}))
	assert.False(t, fav.Contains("p1"))
}

func TestFavoritesPersistAcrossConstruction(t *testing.T) {
	mirror := testMirror(t)

	fav := NewFavorites(mirror)
	fav.Add(Product{ID: "p1", Name: "Sandal Agarbatti"})
	fav.Add(Product{ID: "p2", Name: "Camphor"})

	restored := NewFavorites(mirror)
	assert.Equal(t, 2, restored.Count())
	assert.True(t, restored.Contains("p1"))
}

func TestFavoritesEmptyDeletesMirrorKey(t *testing.T) {
	mirror := testMirror(t)
	fav := NewFavorites(mirror)

	fav.Add(Product{ID: "p1"})
	require.True(t, mirrorFileExists(mirror, favoritesKey))

	// Every path to empty removes the key: remove, toggle, clear.
	fav.Remove("p1")
	assert.False(t, mirrorFileExists(mirror, favoritesKey))

	fav.Toggle(Product{ID: "p2"})
	fav.Toggle(Product{ID: "p2"})
	assert.False(t, mirrorFileExists(mirror, favoritesKey))

	fav.Add(Product{ID: "p3"})
	fav.Clear()
	assert.False(t, mirrorFileExists(mirror, favoritesKey))
}

func TestFavoritesCorruptMirrorLoadsEmpty(t *testing.T) {
	mirror := testMirror(t)
	require.NoError(t, os.WriteFile(filepath.Join(mirror.dir, favoritesKey+".json"), []byte("{not json"), 0o644))

	fav := NewFavorites(mirror)
	assert.Equal(t, 0, fav.Count())
}

func TestFavoritesNilMirror(t *testing.T) {
	fav := NewFavorites(nil)
	fav.Add(Product{ID: "p1"})
	assert.Equal(t, 1, fav.Count())
}
