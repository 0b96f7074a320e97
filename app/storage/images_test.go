package storage

import (
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestImages_SaveAndPath(t *testing.T) {
	s, err := NewImages(t.TempDir())
	require.NoError(t, err)

	name, err := s.Save([]byte("jpeg bytes"))
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(name, ".jpg"), name)

	p, err := s.Path(name)
	require.NoError(t, err)
	data, err := os.ReadFile(p)
	require.NoError(t, err)
	assert.Equal(t, []byte("jpeg bytes"), data)
}

func TestImages_PathRejectsTraversal(t *testing.T) {
	s, err := NewImages(t.TempDir())
	require.NoError(t, err)

	for _, name := range []string{"", "../escape.jpg", "a/b.jpg", "a\\b.jpg", "..", "missing.jpg"} {
		_, err := s.Path(name)
		assert.Error(t, err, name)
	}
}

func TestImages_DistinctNames(t *testing.T) {
	s, err := NewImages(t.TempDir())
	require.NoError(t, err)

	a, err := s.Save([]byte("one"))
	require.NoError(t, err)
	b, err := s.Save([]byte("two"))
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}
