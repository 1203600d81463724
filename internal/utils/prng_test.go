package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSameSeedSameStream(t *testing.T) {
	a := NewPRNGService(42)
	b := NewPRNGService(42)
	for i := 0; i < 100; i++ {
		require.Equal(t, a.Value(), b.Value())
		require.Equal(t, a.Range(-100, 1080), b.Range(-100, 1080))
		require.Equal(t, a.Pick(7), b.Pick(7))
	}
}

func TestReseedReplays(t *testing.T) {
	s := NewPRNGService(7)
	first := []float64{s.Value(), s.Value(), s.Value()}

	s.Reseed(7)
	assert.Equal(t, first, []float64{s.Value(), s.Value(), s.Value()})
	assert.Equal(t, int64(7), s.Seed())
}

func TestZeroSeedIsReplaced(t *testing.T) {
	s := NewPRNGService(0)
	assert.NotZero(t, s.Seed())
	assert.Less(t, s.Seed(), int64(maxAutoSeed))
}

func TestRangeBounds(t *testing.T) {
	s := NewPRNGService(3)
	for i := 0; i < 1000; i++ {
		v := s.Range(50, 120)
		require.GreaterOrEqual(t, v, 50.0)
		require.Less(t, v, 120.0)

		inv := s.Range(600, 270)
		require.LessOrEqual(t, inv, 600.0)
		require.Greater(t, inv, 270.0)
	}
}

func TestChanceFrequency(t *testing.T) {
	s := NewPRNGService(11)
	const n = 20000
	hits := 0
	for i := 0; i < n; i++ {
		if s.Chance(0.6) {
			hits++
		}
	}
	assert.InDelta(t, 0.6, float64(hits)/n, 0.02)
}
