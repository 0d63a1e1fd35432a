package energy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewNormalizer(t *testing.T) {
	tests := []struct {
		name      string
		floor     float64
		expectErr bool
	}{
		{name: "default_floor", floor: 0.1},
		{name: "zero_floor", floor: 0.0},
		{name: "high_floor", floor: 0.99},
		{name: "floor_of_one", floor: 1.0, expectErr: true},
		{name: "negative_floor", floor: -0.1, expectErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			normalizer, err := NewNormalizer(tt.floor)
			if tt.expectErr {
				assert.Error(t, err)
				assert.Nil(t, normalizer)
			} else {
				assert.NoError(t, err)
				require.NotNil(t, normalizer)
				assert.Equal(t, tt.floor, normalizer.Floor())
			}
		})
	}
}

func TestNormalizeFlatTrackHitsOne(t *testing.T) {
	// A constant track normalizes to 1.0 everywhere: the maximum equals
	// every value.
	normalizer, err := NewNormalizer(0.1)
	require.NoError(t, err)

	smoothed := []float64{0.42, 0.42, 0.42, 0.42}
	normalized := normalizer.Normalize(smoothed)

	for i, v := range normalized {
		assert.Equal(t, 1.0, v, "frame %d", i)
	}
}

func TestNormalizeSilenceHitsFloor(t *testing.T) {
	normalizer, err := NewNormalizer(0.1)
	require.NoError(t, err)

	smoothed := []float64{0, 0, 0, 0, 0}
	normalized := normalizer.Normalize(smoothed)

	for i, v := range normalized {
		assert.Equal(t, 0.1, v, "frame %d", i)
	}
}

func TestNormalizeBounds(t *testing.T) {
	normalizer, err := NewNormalizer(0.1)
	require.NoError(t, err)

	smoothed := []float64{0.001, 0.5, 1.7, 0.0, 0.3}
	normalized := normalizer.Normalize(smoothed)

	for i, v := range normalized {
		assert.GreaterOrEqual(t, v, 0.1, "frame %d", i)
		assert.LessOrEqual(t, v, 1.0, "frame %d", i)
	}
	// The maximum maps to exactly 1.0.
	assert.Equal(t, 1.0, normalized[2])
}

func TestNormalizeDoesNotMutateInput(t *testing.T) {
	normalizer, err := NewNormalizer(0.1)
	require.NoError(t, err)

	smoothed := []float64{0.2, 0.8}
	original := append([]float64(nil), smoothed...)
	_ = normalizer.Normalize(smoothed)

	assert.Equal(t, original, smoothed)
}

func TestPipeline(t *testing.T) {
	smoother, err := NewSmoother(1.0)
	require.NoError(t, err)
	normalizer, err := NewNormalizer(0.1)
	require.NoError(t, err)

	track, err := Pipeline([]float64{0.5, 1.0, 0.25}, smoother, normalizer)
	require.NoError(t, err)
	assert.InDelta(t, 0.5, track[0], 1e-12)
	assert.InDelta(t, 1.0, track[1], 1e-12)
	assert.InDelta(t, 0.25, track[2], 1e-12)

	_, err = Pipeline([]float64{0.5}, nil, normalizer)
	assert.Error(t, err)
}
