package talkingbobs

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/opd-ai/talkingbobs/energy"
	"github.com/opd-ai/talkingbobs/scene"
)

// Options contains configuration options for creating a Pipeline.
//
// Every field has a sensible default from NewOptions; zero values in a
// hand-built Options are rejected by validation, not silently defaulted.
type Options struct {
	// SampleRate is the fallback audio sample rate in Hz for turns that do
	// not carry their own.
	SampleRate int `yaml:"sample_rate"`

	// VideoFPS is the output frame rate.
	VideoFPS int `yaml:"video_fps"`

	// SmoothingAlpha weights the newest frame in the energy EMA, (0, 1].
	SmoothingAlpha float64 `yaml:"smoothing_alpha"`

	// EnergyFloor is the minimum normalized energy, [0, 1).
	EnergyFloor float64 `yaml:"energy_floor"`

	// BaseRadius is the resting avatar radius in pixels.
	BaseRadius float64 `yaml:"base_radius"`

	// MaxScale is the avatar radius multiplier at full energy, > 1.
	MaxScale float64 `yaml:"max_scale"`

	// FrameWidth and FrameHeight are the output dimensions in pixels.
	FrameWidth  int `yaml:"frame_width"`
	FrameHeight int `yaml:"frame_height"`

	// AnalysisWindow and AnalysisHop are the RMS window geometry in
	// samples.
	AnalysisWindow int `yaml:"analysis_window"`
	AnalysisHop    int `yaml:"analysis_hop"`

	// OutlinePoints is the avatar polygon vertex count.
	OutlinePoints int `yaml:"outline_points"`
}

// NewOptions creates a new default Options.
func NewOptions() *Options {
	return &Options{
		SampleRate:     44100,
		VideoFPS:       30,
		SmoothingAlpha: energy.DefaultSmoothingAlpha,
		EnergyFloor:    energy.DefaultEnergyFloor,
		BaseRadius:     scene.DefaultBaseRadius,
		MaxScale:       scene.DefaultMaxScale,
		FrameWidth:     1920,
		FrameHeight:    1080,
		AnalysisWindow: energy.DefaultWindowSize,
		AnalysisHop:    energy.DefaultHopSize,
		OutlinePoints:  scene.DefaultOutlinePoints,
	}
}

// LoadOptions reads Options from a YAML file, starting from the defaults
// so a partial file only overrides what it names.
func LoadOptions(path string) (*Options, error) {
	logrus.WithFields(logrus.Fields{
		"function": "LoadOptions",
		"path":     path,
	}).Debug("Loading pipeline options")

	f, err := os.Open(path)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"function": "LoadOptions",
			"path":     path,
			"error":    err.Error(),
		}).Error("Options file open failed")
		return nil, fmt.Errorf("opening options file: %w", err)
	}
	defer f.Close()

	options := NewOptions()
	if err := yaml.NewDecoder(f).Decode(options); err != nil {
		logrus.WithFields(logrus.Fields{
			"function": "LoadOptions",
			"path":     path,
			"error":    err.Error(),
		}).Error("Options file parse failed")
		return nil, fmt.Errorf("parsing options file: %w", err)
	}

	logrus.WithFields(logrus.Fields{
		"function":    "LoadOptions",
		"path":        path,
		"sample_rate": options.SampleRate,
		"video_fps":   options.VideoFPS,
	}).Info("Pipeline options loaded")

	return options, nil
}

// validate rejects out-of-range options, wrapping ErrInvalidConfig so
// callers can classify the failure.
func (o *Options) validate() error {
	if o.SampleRate <= 0 {
		return fmt.Errorf("%w: non-positive sample rate %d", ErrInvalidConfig, o.SampleRate)
	}
	if o.VideoFPS <= 0 {
		return fmt.Errorf("%w: non-positive video fps %d", ErrInvalidConfig, o.VideoFPS)
	}
	if o.SmoothingAlpha <= 0 || o.SmoothingAlpha > 1 {
		return fmt.Errorf("%w: smoothing alpha %f outside (0, 1]", ErrInvalidConfig, o.SmoothingAlpha)
	}
	if o.EnergyFloor < 0 || o.EnergyFloor >= 1 {
		return fmt.Errorf("%w: energy floor %f outside [0, 1)", ErrInvalidConfig, o.EnergyFloor)
	}
	if o.BaseRadius <= 0 {
		return fmt.Errorf("%w: non-positive base radius %f", ErrInvalidConfig, o.BaseRadius)
	}
	if o.MaxScale <= 1 {
		return fmt.Errorf("%w: max scale %f must exceed 1", ErrInvalidConfig, o.MaxScale)
	}
	if o.FrameWidth <= 0 || o.FrameHeight <= 0 {
		return fmt.Errorf("%w: invalid frame dimensions %dx%d", ErrInvalidConfig, o.FrameWidth, o.FrameHeight)
	}
	if o.AnalysisWindow < 1 || o.AnalysisHop < 1 {
		return fmt.Errorf("%w: invalid analysis geometry window=%d hop=%d", ErrInvalidConfig, o.AnalysisWindow, o.AnalysisHop)
	}
	if o.AnalysisHop > o.AnalysisWindow {
		return fmt.Errorf("%w: analysis hop %d exceeds window %d", ErrInvalidConfig, o.AnalysisHop, o.AnalysisWindow)
	}
	if o.OutlinePoints < 3 || o.OutlinePoints > 1024 {
		return fmt.Errorf("%w: outline point count %d outside [3, 1024]", ErrInvalidConfig, o.OutlinePoints)
	}
	return nil
}
