package energy

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// DefaultSmoothingAlpha is the exponential moving average weight applied to
// the newest frame.
const DefaultSmoothingAlpha = 0.2

// Smoother applies recursive exponential smoothing to a per-frame energy
// track.
//
// smoothed[0] = raw[0]; smoothed[i] = alpha*raw[i] + (1-alpha)*smoothed[i-1].
// The pass runs strictly left to right with no lookahead, so each frame
// depends on the one before it and a single speaker's track cannot be
// smoothed in parallel. Different speakers' tracks are independent.
type Smoother struct {
	alpha float64
}

// NewSmoother creates an exponential moving average smoother.
//
// Parameters:
//   - alpha: Weight of the newest frame, in (0, 1]; 1.0 disables smoothing
//
// Returns:
//   - *Smoother: New smoother instance
//   - error: Validation error for alpha outside (0, 1]
func NewSmoother(alpha float64) (*Smoother, error) {
	if alpha <= 0 || alpha > 1 {
		logrus.WithFields(logrus.Fields{
			"function": "NewSmoother",
			"alpha":    alpha,
			"error":    "alpha outside (0, 1]",
		}).Error("Smoother validation failed")
		return nil, fmt.Errorf("smoothing alpha outside (0, 1]: %f", alpha)
	}
	return &Smoother{alpha: alpha}, nil
}

// Smooth returns the smoothed form of a raw energy track.
//
// The input is never mutated; an empty track returns an empty slice.
func (s *Smoother) Smooth(raw []float64) []float64 {
	smoothed := make([]float64, len(raw))
	if len(raw) == 0 {
		return smoothed
	}

	smoothed[0] = raw[0]
	for i := 1; i < len(raw); i++ {
		smoothed[i] = s.alpha*raw[i] + (1-s.alpha)*smoothed[i-1]
	}

	logrus.WithFields(logrus.Fields{
		"function":    "Smoother.Smooth",
		"frame_count": len(raw),
		"alpha":       s.alpha,
	}).Debug("Energy track smoothed")

	return smoothed
}
