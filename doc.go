// Package talkingbobs converts per-speaker audio turns into a continuous,
// per-frame animation-parameter stream for circular "talking" avatars whose
// size, wobble, and glow track vocal energy.
//
// The pipeline is offline and deterministic: a whole conversation goes in,
// per-frame geometry comes out. This package is the API facade integrating
// the subsystems:
//
//   - energy: windowed RMS extraction, frame-grid resampling, EMA
//     smoothing, floor-clamped normalization
//   - timeline: the fixed video frame grid
//   - scene: speaker layout, colors, and wobbling outline geometry
//   - decode: WAV and Opus turn decoders
//   - render: compositor over rasterization/encoding collaborators
//
// # Getting Started
//
// Create a pipeline with options and process a conversation:
//
//	options := talkingbobs.NewOptions()
//	options.VideoFPS = 30
//
//	pipeline, err := talkingbobs.New(options)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	animation, err := pipeline.ProcessConversation([]talkingbobs.Turn{
//	    {SpeakerID: 0, Samples: greeting},
//	    {SpeakerID: 1, Samples: reply},
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// The Animation exposes one avatar payload per speaker per frame:
//
//	for f := 0; f < animation.TotalFrames(); f++ {
//	    for _, avatar := range animation.FramesAt(f) {
//	        draw(avatar) // outline polygon, inner disc, optional glow ring
//	    }
//	}
//
// or feed it to render.Compositor, which drives the drawing and encoding
// collaborators in presentation order.
//
// # Determinism and Concurrency
//
// Geometry is a pure function of (frame index, energy, static config).
// Speakers are processed independently and in parallel; the only sequential
// dependency is the left-to-right energy smoothing inside one speaker's
// track. Normalization needs a speaker's complete smoothed track before the
// first normalized value exists, which is why the pipeline is batch, not
// streaming.
//
// # Error Handling
//
// All validation happens eagerly at pipeline entry. Errors classify with
// errors.Is against ErrInvalidAudio, ErrInvalidConfig, and
// ErrEmptyConversation; collaborator failures propagate wrapped with their
// identity preserved.
package talkingbobs
