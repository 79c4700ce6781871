package randutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewIsDeterministic(t *testing.T) {
	a, b := New(42), New(42)
	for i := 0; i < 100; i++ {
		assert.Equal(t, a.Uint64(), b.Uint64())
	}
}

func TestNewSeedsDiffer(t *testing.T) {
	assert.NotEqual(t, New(1).Uint64(), New(2).Uint64())
}

func TestDeriveGivesIndependentStreams(t *testing.T) {
	w0, w1 := Derive(7, 0), Derive(7, 1)
	assert.NotEqual(t, w0.Uint64(), w1.Uint64())

	assert.Equal(t, Derive(7, 3).Uint64(), Derive(7, 3).Uint64())
	assert.NotEqual(t, Derive(7, 0).Uint64(), New(7).Uint64())
}
