package uploads

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T, maxBytes int64) *Store {
	t.Helper()
	s, err := NewStore(t.TempDir(), maxBytes)
	require.NoError(t, err)
	return s
}

func TestSaveAndList(t *testing.T) {
	s := newTestStore(t, 1024)

	name, err := s.Save("photo.png", strings.NewReader("content"))
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(name, "image-"))
	assert.True(t, strings.HasSuffix(name, ".png"))
	assert.Contains(t, s.List(), name)
	assert.True(t, s.Exists(name))
}

func TestSaveGeneratesDistinctNames(t *testing.T) {
	s := newTestStore(t, 1024)

	// Tight loop so several saves share a millisecond timestamp
	seen := make(map[string]struct{})
	for i := 0; i < 20; i++ {
		name, err := s.Save("photo.png", strings.NewReader("content"))
		require.NoError(t, err)

		_, taken := seen[name]
		assert.False(t, taken, "name %q issued twice", name)
		seen[name] = struct{}{}
	}
	assert.Len(t, s.List(), 20)
}

func TestSaveRejectsOversize(t *testing.T) {
	s := newTestStore(t, 4)

	_, err := s.Save("big.jpg", strings.NewReader("way too much content"))
	assert.ErrorIs(t, err, ErrTooLarge)

	// No partial file left behind
	assert.Empty(t, s.List())
}

func TestSaveAtCapBoundary(t *testing.T) {
	s := newTestStore(t, 4)

	name, err := s.Save("ok.jpg", strings.NewReader("1234"))
	require.NoError(t, err)
	assert.True(t, s.Exists(name))
}

func TestPathRejectsTraversal(t *testing.T) {
	s := newTestStore(t, 1024)

	for _, name := range []string{"", ".", "..", "../etc/passwd", "a/b", `a\b`} {
		_, err := s.Path(name)
		assert.ErrorIs(t, err, ErrBadName, "name %q", name)
	}
}

func TestPathUnknownFile(t *testing.T) {
	s := newTestStore(t, 1024)

	_, err := s.Path("image-123.png")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRemove(t *testing.T) {
	s := newTestStore(t, 1024)

	name, err := s.Save("photo.png", strings.NewReader("content"))
	require.NoError(t, err)

	require.NoError(t, s.Remove(name))
	assert.False(t, s.Exists(name))
	assert.ErrorIs(t, s.Remove(name), ErrNotFound)
}

func TestNewStoreIndexesExistingFiles(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "image-1.png"), []byte("x"), 0o644))

	s, err := NewStore(dir, 1024)
	require.NoError(t, err)
	assert.Equal(t, []string{"image-1.png"}, s.List())
}
