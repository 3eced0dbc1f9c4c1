package randutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewIsDeterministic(t *testing.T) {
	t.Parallel()
	a, b := New(17), New(17)
	for i := 0; i < 100; i++ {
		assert.Equal(t, a.IntN(54), b.IntN(54))
	}

	assert.NotEqual(t, New(1).Uint64(), New(2).Uint64())
}

func TestSeeded(t *testing.T) {
	t.Parallel()

	rng, seed := Seeded(9)
	assert.Equal(t, int64(9), seed)
	assert.Equal(t, New(9).Uint64(), rng.Uint64())

	rng, seed = Seeded(0)
	assert.NotZero(t, seed)
	assert.Equal(t, New(seed).Uint64(), rng.Uint64())
}
