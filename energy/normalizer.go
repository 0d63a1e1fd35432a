package energy

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// DefaultEnergyFloor is the minimum normalized energy, keeping an avatar
// visible through silence.
const DefaultEnergyFloor = 0.1

// Normalizer rescales a smoothed energy track into [floor, 1.0].
//
// Normalization divides by the track's global maximum, so the whole smoothed
// track must exist before any normalized value can be produced. This is a
// collect-then-transform step, not a streaming filter.
type Normalizer struct {
	floor float64
}

// NewNormalizer creates a normalizer with the given output floor.
//
// Parameters:
//   - floor: Minimum output value, in [0, 1)
//
// Returns:
//   - *Normalizer: New normalizer instance
//   - error: Validation error for floor outside [0, 1)
func NewNormalizer(floor float64) (*Normalizer, error) {
	if floor < 0 || floor >= 1 {
		logrus.WithFields(logrus.Fields{
			"function": "NewNormalizer",
			"floor":    floor,
			"error":    "floor outside [0, 1)",
		}).Error("Normalizer validation failed")
		return nil, fmt.Errorf("energy floor outside [0, 1): %f", floor)
	}
	return &Normalizer{floor: floor}, nil
}

// Floor returns the configured minimum output value.
func (n *Normalizer) Floor() float64 {
	return n.floor
}

// Normalize returns the normalized form of a smoothed track, every value in
// [floor, 1.0].
//
// Two passes: the first finds the global maximum, the second divides by it
// and clamps to the floor. A track whose maximum is zero (total silence)
// comes back at the floor everywhere; no division happens in that case.
// The input is never mutated.
func (n *Normalizer) Normalize(smoothed []float64) []float64 {
	normalized := make([]float64, len(smoothed))

	max := 0.0
	for _, v := range smoothed {
		if v > max {
			max = v
		}
	}

	if max <= 0 {
		logrus.WithFields(logrus.Fields{
			"function":    "Normalizer.Normalize",
			"frame_count": len(smoothed),
			"floor":       n.floor,
		}).Debug("Silent track, pinning to floor")
		for i := range normalized {
			normalized[i] = n.floor
		}
		return normalized
	}

	for i, v := range smoothed {
		scaled := v / max
		if scaled < n.floor {
			scaled = n.floor
		}
		normalized[i] = scaled
	}

	logrus.WithFields(logrus.Fields{
		"function":    "Normalizer.Normalize",
		"frame_count": len(smoothed),
		"track_max":   max,
		"floor":       n.floor,
	}).Debug("Energy track normalized")

	return normalized
}

// Pipeline chains smoothing and normalization over a raw track, the order
// every speaker's per-frame energies go through.
func Pipeline(raw []float64, smoother *Smoother, normalizer *Normalizer) ([]float64, error) {
	if smoother == nil || normalizer == nil {
		return nil, fmt.Errorf("nil smoother or normalizer")
	}
	return normalizer.Normalize(smoother.Smooth(raw)), nil
}
