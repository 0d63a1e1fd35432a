package energy

import (
	"github.com/sirupsen/logrus"
)

// Resampler interpolates a sparse RMS sequence onto arbitrary timestamps.
//
// Uses linear interpolation between the two bracketing measurements, the
// same approach the audio path uses for sample rate conversion. Outside the
// measured range the value clamps flat to the nearest endpoint; the
// resampler never extrapolates a trend beyond what was measured.
type Resampler struct{}

// NewResampler creates a new energy resampler instance.
func NewResampler() *Resampler {
	return &Resampler{}
}

// ValueAt returns the interpolated energy at time t.
//
// For t at or before the first measurement the first value is returned; at
// or after the last measurement, the last value. Querying a measurement's
// exact timestamp reproduces its value exactly.
//
// Parameters:
//   - samples: Sparse RMS sequence, strictly increasing in time, non-empty
//   - t: Query timestamp in seconds
//
// Returns:
//   - float64: Interpolated energy value, 0 for an empty sequence
func (r *Resampler) ValueAt(samples []Sample, t float64) float64 {
	if len(samples) == 0 {
		return 0
	}
	if t <= samples[0].Time {
		return samples[0].Value
	}
	last := samples[len(samples)-1]
	if t >= last.Time {
		return last.Value
	}

	// Binary search for the first sample past t.
	lo, hi := 0, len(samples)-1
	for lo+1 < hi {
		mid := (lo + hi) / 2
		if samples[mid].Time <= t {
			lo = mid
		} else {
			hi = mid
		}
	}

	s1, s2 := samples[lo], samples[hi]
	frac := (t - s1.Time) / (s2.Time - s1.Time)
	return s1.Value + (s2.Value-s1.Value)*frac
}

// Resample evaluates the sparse sequence at every timestamp in times.
//
// Parameters:
//   - samples: Sparse RMS sequence, strictly increasing in time
//   - times: Query timestamps, one output value per entry
//
// Returns:
//   - []float64: Freshly allocated interpolated values
func (r *Resampler) Resample(samples []Sample, times []float64) []float64 {
	logrus.WithFields(logrus.Fields{
		"function":     "Resampler.Resample",
		"sample_count": len(samples),
		"time_count":   len(times),
	}).Debug("Resampling sparse energy onto frame grid")

	out := make([]float64, len(times))
	for i, t := range times {
		out[i] = r.ValueAt(samples, t)
	}
	return out
}
