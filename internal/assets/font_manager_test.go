package assets

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFaceIsCachedPerSize(t *testing.T) {
	m := NewFontManager()
	defer m.Close()

	a, err := m.Face(48)
	require.NoError(t, err)
	b, err := m.Face(48)
	require.NoError(t, err)
	c, err := m.Face(12)
	require.NoError(t, err)

	assert.Same(t, a, b)
	assert.NotSame(t, a, c)
	assert.Positive(t, a.Metrics().Height.Ceil())
}

func TestCloseEmptiesCache(t *testing.T) {
	m := NewFontManager()
	_, err := m.Face(20)
	require.NoError(t, err)

	require.NoError(t, m.Close())
	assert.Empty(t, m.faces)
}
