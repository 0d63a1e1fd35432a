package energy

import (
	"github.com/sirupsen/logrus"

	"github.com/opd-ai/talkingbobs/timeline"
)

// TrackBuilder assembles one speaker's per-frame raw energy track from that
// speaker's chunks.
//
// The track starts at zero energy everywhere. Each chunk writes interpolated
// values only into the frames its own [Start, End) span covers, so frames
// between two of a speaker's turns keep their zero anchor and a silent gap
// is never bridged by interpolation between neighbouring turns.
type TrackBuilder struct {
	tl        *timeline.Timeline
	resampler *Resampler
}

// NewTrackBuilder creates a track builder bound to a frame timeline.
func NewTrackBuilder(tl *timeline.Timeline) *TrackBuilder {
	return &TrackBuilder{
		tl:        tl,
		resampler: NewResampler(),
	}
}

// Build produces the per-frame raw energy track for one speaker's chunks.
//
// A chunk whose RMS sequence holds a single measurement writes that value at
// the chunk's first frame only; interpolation needs two bracketing points.
// Chunks starting past the end of the timeline are skipped. The returned
// slice always has exactly TotalFrames entries.
//
// Parameters:
//   - chunks: The speaker's turns, each with its absolute span and samples
//
// Returns:
//   - []float64: Freshly allocated track, one energy value per frame
func (b *TrackBuilder) Build(chunks []Chunk) []float64 {
	track := make([]float64, b.tl.TotalFrames())

	for _, chunk := range chunks {
		startFrame, endFrame := b.tl.FrameWindow(chunk.Start, chunk.End)
		if startFrame >= b.tl.TotalFrames() {
			logrus.WithFields(logrus.Fields{
				"function":    "TrackBuilder.Build",
				"speaker_id":  chunk.SpeakerID,
				"chunk_start": chunk.Start,
				"error":       "chunk starts past timeline end",
			}).Warn("Skipping out-of-range chunk")
			continue
		}
		if len(chunk.Samples) == 0 {
			continue
		}

		if len(chunk.Samples) == 1 {
			if startFrame < endFrame {
				track[startFrame] = chunk.Samples[0].Value
			}
			continue
		}

		for f := startFrame; f < endFrame; f++ {
			track[f] = b.resampler.ValueAt(chunk.Samples, b.tl.FrameTime(f))
		}
	}

	logrus.WithFields(logrus.Fields{
		"function":    "TrackBuilder.Build",
		"chunk_count": len(chunks),
		"frame_count": len(track),
	}).Debug("Raw energy track assembled")

	return track
}
