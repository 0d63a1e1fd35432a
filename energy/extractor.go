package energy

import (
	"fmt"
	"math"

	"github.com/sirupsen/logrus"
)

// Default analysis geometry: 2048-sample windows advanced by 512 samples
// (75% overlap), the usual envelope resolution for speech loudness.
const (
	DefaultWindowSize = 2048
	DefaultHopSize    = 512
)

// Sample is one loudness measurement on the conversation's absolute time
// axis.
type Sample struct {
	// Time is the measurement timestamp in seconds from conversation start.
	Time float64
	// Value is the RMS amplitude of the analysis window, non-negative.
	Value float64
}

// Chunk is one speaker turn's extracted loudness track together with the
// absolute span the turn occupies in the conversation.
type Chunk struct {
	SpeakerID int
	// Start and End bound the turn in seconds from conversation start.
	Start float64
	End   float64
	// Samples is the sparse RMS sequence, strictly increasing in time.
	Samples []Sample
}

// Duration returns the chunk's length in seconds.
func (c Chunk) Duration() float64 {
	return c.End - c.Start
}

// ExtractorConfig holds configuration for creating an Extractor.
type ExtractorConfig struct {
	SampleRate int // Audio sample rate in Hz (must be > 0)
	WindowSize int // Analysis window in samples (default: 2048)
	HopSize    int // Window advance in samples (default: 512)
}

// Extractor computes a sparse RMS loudness sequence from raw PCM samples.
//
// A sliding window of WindowSize samples advances by HopSize samples per
// measurement. The final partial window is zero-padded rather than dropped
// so trailing energy at the end of a turn is preserved.
type Extractor struct {
	sampleRate int
	windowSize int
	hopSize    int
}

// NewExtractor creates a new RMS energy extractor.
//
// Parameters:
//   - config: Extractor configuration; zero WindowSize/HopSize select the
//     2048/512 defaults
//
// Returns:
//   - *Extractor: New extractor instance
//   - error: Validation error for non-positive rate or malformed geometry
func NewExtractor(config ExtractorConfig) (*Extractor, error) {
	logrus.WithFields(logrus.Fields{
		"function":    "NewExtractor",
		"sample_rate": config.SampleRate,
		"window_size": config.WindowSize,
		"hop_size":    config.HopSize,
	}).Debug("Creating energy extractor")

	if config.SampleRate <= 0 {
		logrus.WithFields(logrus.Fields{
			"function":    "NewExtractor",
			"sample_rate": config.SampleRate,
			"error":       "non-positive sample rate",
		}).Error("Extractor validation failed")
		return nil, fmt.Errorf("non-positive sample rate: %d", config.SampleRate)
	}

	windowSize := config.WindowSize
	if windowSize == 0 {
		windowSize = DefaultWindowSize
	}
	hopSize := config.HopSize
	if hopSize == 0 {
		hopSize = DefaultHopSize
	}

	if windowSize < 1 || hopSize < 1 {
		logrus.WithFields(logrus.Fields{
			"function":    "NewExtractor",
			"window_size": windowSize,
			"hop_size":    hopSize,
			"error":       "non-positive analysis geometry",
		}).Error("Extractor validation failed")
		return nil, fmt.Errorf("invalid analysis geometry: window=%d, hop=%d", windowSize, hopSize)
	}
	if hopSize > windowSize {
		logrus.WithFields(logrus.Fields{
			"function":    "NewExtractor",
			"window_size": windowSize,
			"hop_size":    hopSize,
			"error":       "hop exceeds window",
		}).Error("Extractor validation failed")
		return nil, fmt.Errorf("hop size %d exceeds window size %d", hopSize, windowSize)
	}

	extractor := &Extractor{
		sampleRate: config.SampleRate,
		windowSize: windowSize,
		hopSize:    hopSize,
	}

	logrus.WithFields(logrus.Fields{
		"function":    "NewExtractor",
		"sample_rate": extractor.sampleRate,
		"window_size": extractor.windowSize,
		"hop_size":    extractor.hopSize,
	}).Info("Energy extractor created")

	return extractor, nil
}

// Extract computes the sparse RMS sequence for one turn's PCM samples.
//
// Window i covers samples [i*hop, i*hop+window) and is stamped at
// startTime + i*hop/rate. Samples past the end of pcm count as zero
// (zero-padded final window), and every window divides by the full window
// size so padding lowers, never inflates, the trailing measurements.
//
// Parameters:
//   - pcm: Mono samples in [-1, 1] (must be non-empty)
//   - startTime: Absolute turn start in seconds from conversation start
//
// Returns:
//   - []Sample: RMS sequence, strictly increasing in time, never empty
//   - error: Validation error for an empty buffer
func (e *Extractor) Extract(pcm []float64, startTime float64) ([]Sample, error) {
	logrus.WithFields(logrus.Fields{
		"function":     "Extractor.Extract",
		"sample_count": len(pcm),
		"start_time":   startTime,
	}).Debug("Extracting RMS energy")

	if len(pcm) == 0 {
		logrus.WithFields(logrus.Fields{
			"function": "Extractor.Extract",
			"error":    "empty sample buffer",
		}).Error("Audio validation failed")
		return nil, fmt.Errorf("empty sample buffer")
	}

	// One window per hop position, including the zero-padded tail.
	windowCount := (len(pcm) + e.hopSize - 1) / e.hopSize

	samples := make([]Sample, windowCount)
	for i := 0; i < windowCount; i++ {
		start := i * e.hopSize
		end := start + e.windowSize
		if end > len(pcm) {
			end = len(pcm)
		}

		sumSquares := 0.0
		for j := start; j < end; j++ {
			sumSquares += pcm[j] * pcm[j]
		}

		samples[i] = Sample{
			Time:  startTime + float64(start)/float64(e.sampleRate),
			Value: math.Sqrt(sumSquares / float64(e.windowSize)),
		}
	}

	logrus.WithFields(logrus.Fields{
		"function":     "Extractor.Extract",
		"sample_count": len(pcm),
		"window_count": windowCount,
		"energy_min":   minValue(samples),
		"energy_max":   maxValue(samples),
	}).Debug("RMS extraction completed")

	return samples, nil
}

// Duration returns the span in seconds that sampleCount PCM samples cover
// at the extractor's sample rate.
func (e *Extractor) Duration(sampleCount int) float64 {
	return float64(sampleCount) / float64(e.sampleRate)
}

func minValue(samples []Sample) float64 {
	if len(samples) == 0 {
		return 0
	}
	min := samples[0].Value
	for _, s := range samples[1:] {
		if s.Value < min {
			min = s.Value
		}
	}
	return min
}

func maxValue(samples []Sample) float64 {
	if len(samples) == 0 {
		return 0
	}
	max := samples[0].Value
	for _, s := range samples[1:] {
		if s.Value > max {
			max = s.Value
		}
	}
	return max
}
