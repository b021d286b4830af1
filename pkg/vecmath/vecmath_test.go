package vecmath

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize_UnitNorm(t *testing.T) {
	v := []float32{3, 4}

	got := Normalize(v)

	assert.InDelta(t, 1.0, float64(Magnitude(got)), 1e-5)
	assert.Equal(t, []float32{3, 4}, v, "input must not be mutated")
}

func TestNormalize_Idempotent(t *testing.T) {
	v := []float32{0.2, -1.7, 3.3, 0.01}

	once := Normalize(v)
	twice := Normalize(once)

	require.Len(t, twice, len(once))
	for i := range once {
		assert.InDelta(t, float64(once[i]), float64(twice[i]), 1e-6)
	}
}

func TestNormalize_ZeroVector(t *testing.T) {
	got := Normalize([]float32{0, 0, 0})

	assert.Equal(t, []float32{0, 0, 0}, got)
}

func TestCosineSimilarity(t *testing.T) {
	a := Normalize([]float32{1, 0, 0})
	b := Normalize([]float32{1, 0, 0})
	c := Normalize([]float32{0, 1, 0})

	assert.InDelta(t, 1.0, float64(CosineSimilarity(a, b, 1, 1)), 1e-5)
	assert.InDelta(t, 0.0, float64(CosineSimilarity(a, c, 1, 1)), 1e-5)
}

func TestIsFinite(t *testing.T) {
	assert.True(t, IsFinite([]float32{1, 2, 3}))

	nan := float32(0)
	nan /= nan
	assert.False(t, IsFinite([]float32{1, nan}))
}
