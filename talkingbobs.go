package talkingbobs

import (
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/opd-ai/talkingbobs/energy"
	"github.com/opd-ai/talkingbobs/scene"
	"github.com/opd-ai/talkingbobs/timeline"
)

// Turn is one speaker's utterance in a conversation: decoded mono samples
// in [-1, 1] and the speaker who produced them. Turns are sequential; each
// turn starts when the previous one ends.
type Turn struct {
	SpeakerID int
	Samples   []float64
	// SampleRate in Hz; zero falls back to Options.SampleRate.
	SampleRate int
}

// Pipeline converts a conversation of audio turns into per-frame avatar
// animation geometry.
//
// A Pipeline is immutable after New and safe for concurrent
// ProcessConversation calls; all per-conversation state lives in the
// returned Animation.
type Pipeline struct {
	options    *Options
	smoother   *energy.Smoother
	normalizer *energy.Normalizer
	outline    *scene.OutlineGenerator
}

// New creates a Pipeline from the given options.
//
// All option validation happens here, eagerly; a constructed Pipeline never
// fails on configuration mid-conversation.
//
// Parameters:
//   - options: Pipeline configuration; nil selects NewOptions defaults
//
// Returns:
//   - *Pipeline: New pipeline instance
//   - error: ErrInvalidConfig wrapped with the offending field
func New(options *Options) (*Pipeline, error) {
	if options == nil {
		options = NewOptions()
	}

	logrus.WithFields(logrus.Fields{
		"function":    "New",
		"sample_rate": options.SampleRate,
		"video_fps":   options.VideoFPS,
		"frame_size":  fmt.Sprintf("%dx%d", options.FrameWidth, options.FrameHeight),
	}).Info("Creating avatar pipeline")

	if err := options.validate(); err != nil {
		logrus.WithFields(logrus.Fields{
			"function": "New",
			"error":    err.Error(),
		}).Error("Pipeline configuration validation failed")
		return nil, err
	}

	smoother, err := energy.NewSmoother(options.SmoothingAlpha)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	normalizer, err := energy.NewNormalizer(options.EnergyFloor)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	outline, err := scene.NewOutlineGenerator(scene.OutlineConfig{
		BaseRadius:  options.BaseRadius,
		MaxScale:    options.MaxScale,
		EnergyFloor: options.EnergyFloor,
		PointCount:  options.OutlinePoints,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	return &Pipeline{
		options:    options,
		smoother:   smoother,
		normalizer: normalizer,
		outline:    outline,
	}, nil
}

// Options returns a copy of the pipeline's configuration.
func (p *Pipeline) Options() Options {
	return *p.options
}

// ProcessConversation runs the whole pipeline for one conversation.
//
// Turns play back to back on a cumulative clock; the conversation duration
// is the sum of turn durations. All input validation happens before any
// energy math, so a returned error means no partial result was computed.
// Speaker tracks are processed on one goroutine each; they share nothing.
//
// Parameters:
//   - turns: Ordered speaker turns (must be non-empty, every turn with
//     samples and a positive effective sample rate)
//
// Returns:
//   - *Animation: Per-frame per-speaker avatar geometry plus the timeline
//   - error: ErrEmptyConversation, ErrInvalidAudio, or a wrapped stage error
func (p *Pipeline) ProcessConversation(turns []Turn) (*Animation, error) {
	sessionID := uuid.New().String()

	logrus.WithFields(logrus.Fields{
		"function":   "ProcessConversation",
		"session_id": sessionID,
		"turn_count": len(turns),
	}).Info("Processing conversation")

	if len(turns) == 0 {
		logrus.WithFields(logrus.Fields{
			"function":   "ProcessConversation",
			"session_id": sessionID,
			"error":      "no turns",
		}).Error("Conversation validation failed")
		return nil, ErrEmptyConversation
	}

	speakerCount := 0
	for i, turn := range turns {
		if turn.SpeakerID < 0 {
			return nil, fmt.Errorf("%w: turn %d has negative speaker id %d", ErrInvalidAudio, i, turn.SpeakerID)
		}
		if len(turn.Samples) == 0 {
			return nil, fmt.Errorf("%w: turn %d has an empty sample buffer", ErrInvalidAudio, i)
		}
		if rate := p.turnRate(turn); rate <= 0 {
			return nil, fmt.Errorf("%w: turn %d has non-positive sample rate %d", ErrInvalidAudio, i, rate)
		}
		if turn.SpeakerID+1 > speakerCount {
			speakerCount = turn.SpeakerID + 1
		}
	}

	chunks, duration, err := p.extractChunks(turns, sessionID)
	if err != nil {
		return nil, err
	}

	tl, err := timeline.New(duration, p.options.VideoFPS)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	layout, err := scene.NewLayout(scene.LayoutConfig{
		SpeakerCount: speakerCount,
		Width:        p.options.FrameWidth,
		Height:       p.options.FrameHeight,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	energies := p.buildTracks(chunks, speakerCount, tl)

	colors := make([]scene.Color, speakerCount)
	for s := 0; s < speakerCount; s++ {
		colors[s] = layout.Color(s)
	}

	logrus.WithFields(logrus.Fields{
		"function":      "ProcessConversation",
		"session_id":    sessionID,
		"speaker_count": speakerCount,
		"total_frames":  tl.TotalFrames(),
		"duration":      duration,
	}).Info("Conversation processed")

	return &Animation{
		SessionID: sessionID,
		timeline:  tl,
		layout:    layout,
		energies:  energies,
		colors:    colors,
		outline:   p.outline,
	}, nil
}

// turnRate resolves a turn's effective sample rate.
func (p *Pipeline) turnRate(turn Turn) int {
	if turn.SampleRate != 0 {
		return turn.SampleRate
	}
	return p.options.SampleRate
}

// extractChunks runs RMS extraction over every turn on the cumulative
// conversation clock, grouping chunks by speaker.
func (p *Pipeline) extractChunks(turns []Turn, sessionID string) (map[int][]energy.Chunk, float64, error) {
	chunks := make(map[int][]energy.Chunk)
	clock := 0.0

	for i, turn := range turns {
		extractor, err := energy.NewExtractor(energy.ExtractorConfig{
			SampleRate: p.turnRate(turn),
			WindowSize: p.options.AnalysisWindow,
			HopSize:    p.options.AnalysisHop,
		})
		if err != nil {
			return nil, 0, fmt.Errorf("%w: turn %d: %v", ErrInvalidAudio, i, err)
		}

		samples, err := extractor.Extract(turn.Samples, clock)
		if err != nil {
			return nil, 0, fmt.Errorf("%w: turn %d: %v", ErrInvalidAudio, i, err)
		}

		turnDuration := extractor.Duration(len(turn.Samples))
		chunk := energy.Chunk{
			SpeakerID: turn.SpeakerID,
			Start:     clock,
			End:       clock + turnDuration,
			Samples:   samples,
		}
		chunks[turn.SpeakerID] = append(chunks[turn.SpeakerID], chunk)
		clock += turnDuration

		logrus.WithFields(logrus.Fields{
			"function":   "Pipeline.extractChunks",
			"session_id": sessionID,
			"turn":       i,
			"speaker_id": turn.SpeakerID,
			"start":      chunk.Start,
			"duration":   turnDuration,
		}).Debug("Turn energy extracted")
	}

	return chunks, clock, nil
}

// buildTracks resamples, smooths, and normalizes every speaker's track, one
// goroutine per speaker. Speakers share no state; the only join point is
// the WaitGroup.
func (p *Pipeline) buildTracks(chunks map[int][]energy.Chunk, speakerCount int, tl *timeline.Timeline) [][]float64 {
	energies := make([][]float64, speakerCount)

	var wg sync.WaitGroup
	for s := 0; s < speakerCount; s++ {
		wg.Add(1)
		go func(s int) {
			defer wg.Done()
			builder := energy.NewTrackBuilder(tl)
			raw := builder.Build(chunks[s])
			track, err := energy.Pipeline(raw, p.smoother, p.normalizer)
			if err != nil {
				// Unreachable with a validated Pipeline; keep the track at
				// the floor rather than dropping the speaker.
				track = p.normalizer.Normalize(raw)
			}
			energies[s] = track
		}(s)
	}
	wg.Wait()

	return energies
}

// Animation is the pipeline's output contract: the frame timeline, static
// layout, and per-speaker normalized energy tracks, from which per-frame
// avatar geometry is generated on demand.
//
// Animation satisfies the render package's FrameSource.
type Animation struct {
	// SessionID identifies one ProcessConversation run in logs.
	SessionID string

	timeline *timeline.Timeline
	layout   *scene.Layout
	energies [][]float64
	colors   []scene.Color
	outline  *scene.OutlineGenerator
}

// Timeline returns the frame grid the animation was built on.
func (a *Animation) Timeline() *timeline.Timeline {
	return a.timeline
}

// Layout returns the static speaker placements.
func (a *Animation) Layout() *scene.Layout {
	return a.layout
}

// SpeakerCount returns the number of speakers in the conversation.
func (a *Animation) SpeakerCount() int {
	return len(a.energies)
}

// TotalFrames returns the number of video frames in the animation.
func (a *Animation) TotalFrames() int {
	return a.timeline.TotalFrames()
}

// Energy returns speaker s's normalized energy at frame f.
func (a *Animation) Energy(s, f int) float64 {
	return a.energies[s][f]
}

// FramesAt generates every speaker's avatar payload for frame f, in
// speaker order. Payloads are constructed fresh on every call and safe to
// generate concurrently for different frames.
func (a *Animation) FramesAt(f int) []scene.AvatarFrame {
	avatars := make([]scene.AvatarFrame, len(a.energies))
	for s := range a.energies {
		avatars[s] = a.outline.Generate(a.layout.Placement(s), a.colors[s], a.energies[s][f], f)
	}
	return avatars
}
