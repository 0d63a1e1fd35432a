// Package energy implements the audio-loudness half of the avatar pipeline.
//
// This package turns raw PCM turns into one bounded energy value per video
// frame per speaker. It integrates with the timeline package for the frame
// grid and feeds the scene package, which maps the per-frame scalar into
// geometry.
//
// The energy processing pipeline:
//
//	PCM Turn → Windowed RMS → Sparse Track → Frame Resampling → EMA Smoothing → Normalization
//
// # Stages
//
//   - Extractor: sliding-window RMS over a turn's samples, producing sparse
//     (time, energy) pairs on the conversation's absolute time axis
//   - TrackBuilder: places every chunk of one speaker onto the frame grid by
//     linear interpolation; frames outside all of that speaker's chunks stay
//     at zero energy, so silence between turns is never interpolated across
//   - Smoother: recursive exponential moving average, left to right
//   - Normalizer: rescales a smoothed track into [floor, 1.0] using the
//     track's global maximum
//
// # Stage Ownership
//
// Each stage returns a freshly allocated slice and never mutates its input,
// so the raw, smoothed, and normalized forms of a track are independent.
// Speakers share no mutable state; whole-speaker pipelines are safe to run
// on separate goroutines.
//
// # Usage
//
//	extractor, _ := energy.NewExtractor(energy.ExtractorConfig{SampleRate: 44100})
//	samples, _ := extractor.Extract(pcm, chunkStart)
//	chunk := energy.Chunk{SpeakerID: 0, Start: chunkStart, End: chunkEnd, Samples: samples}
//
//	builder := energy.NewTrackBuilder(tl)
//	raw := builder.Build([]energy.Chunk{chunk})
//	smoother, _ := energy.NewSmoother(0.2)
//	normalizer, _ := energy.NewNormalizer(0.1)
//	track, _ := energy.Pipeline(raw, smoother, normalizer)
package energy
