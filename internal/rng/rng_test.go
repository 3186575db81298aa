package rng

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRNG(t *testing.T) {
	t.Run("Reproducible", func(t *testing.T) {
		a := New(42)
		b := New(42)
		assert.Equal(t, a.Perm(100), b.Perm(100))
		assert.Equal(t, a.Intn(1000), b.Intn(1000))
	})

	t.Run("SeedAccessor", func(t *testing.T) {
		assert.Equal(t, int64(7), New(7).Seed())
	})

	t.Run("PickStaysInAlphabet", func(t *testing.T) {
		r := New(1)
		const symbols = "ACGT"
		for i := 0; i < 100; i++ {
			c := r.Pick(symbols)
			require.Contains(t, symbols, string(c))
		}
	})

	t.Run("PermIsPermutation", func(t *testing.T) {
		p := New(3).Perm(50)
		seen := make(map[int]bool, 50)
		for _, v := range p {
			require.False(t, seen[v])
			seen[v] = true
			require.GreaterOrEqual(t, v, 0)
			require.Less(t, v, 50)
		}
		assert.Len(t, seen, 50)
	})
}
