package energy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opd-ai/talkingbobs/timeline"
)

func newTestTimeline(t *testing.T, duration float64, fps int) *timeline.Timeline {
	t.Helper()
	tl, err := timeline.New(duration, fps)
	require.NoError(t, err)
	return tl
}

func TestBuildSilenceStaysZero(t *testing.T) {
	// A speaker with no chunks at all yields an all-zero track.
	tl := newTestTimeline(t, 2.0, 30)
	builder := NewTrackBuilder(tl)

	track := builder.Build(nil)
	require.Len(t, track, 60)
	for i, v := range track {
		assert.Equal(t, 0.0, v, "frame %d", i)
	}
}

func TestBuildSingleChunk(t *testing.T) {
	tl := newTestTimeline(t, 2.0, 30)
	builder := NewTrackBuilder(tl)

	chunk := Chunk{
		SpeakerID: 0,
		Start:     0.0,
		End:       1.0,
		Samples: []Sample{
			{Time: 0.0, Value: 0.5},
			{Time: 1.0, Value: 0.5},
		},
	}

	track := builder.Build([]Chunk{chunk})
	require.Len(t, track, 60)

	// Frames inside the chunk carry the interpolated value; frames after
	// the chunk stay at the zero anchor.
	for f := 0; f < 30; f++ {
		assert.InDelta(t, 0.5, track[f], 1e-12, "frame %d", f)
	}
	for f := 30; f < 60; f++ {
		assert.Equal(t, 0.0, track[f], "frame %d", f)
	}
}

func TestBuildGapBetweenTurnsIsNotBridged(t *testing.T) {
	// Two loud turns separated by a second of silence: the gap frames must
	// read zero, never an interpolation between the turns' energies.
	tl := newTestTimeline(t, 3.0, 30)
	builder := NewTrackBuilder(tl)

	chunks := []Chunk{
		{
			SpeakerID: 0,
			Start:     0.0,
			End:       1.0,
			Samples:   []Sample{{Time: 0.0, Value: 0.8}, {Time: 0.99, Value: 0.8}},
		},
		{
			SpeakerID: 0,
			Start:     2.0,
			End:       3.0,
			Samples:   []Sample{{Time: 2.0, Value: 0.6}, {Time: 2.99, Value: 0.6}},
		},
	}

	track := builder.Build(chunks)
	require.Len(t, track, 90)

	for f := 31; f < 60; f++ {
		assert.Equal(t, 0.0, track[f], "gap frame %d", f)
	}
	assert.InDelta(t, 0.8, track[15], 1e-12)
	assert.InDelta(t, 0.6, track[75], 1e-12)
}

func TestBuildSingleSampleChunk(t *testing.T) {
	// One measurement cannot be interpolated; it lands on the chunk's first
	// frame only.
	tl := newTestTimeline(t, 2.0, 30)
	builder := NewTrackBuilder(tl)

	chunk := Chunk{
		SpeakerID: 0,
		Start:     1.0,
		End:       1.01,
		Samples:   []Sample{{Time: 1.0, Value: 0.9}},
	}

	track := builder.Build([]Chunk{chunk})
	assert.Equal(t, 0.9, track[30])
	assert.Equal(t, 0.0, track[29])
	assert.Equal(t, 0.0, track[31])
}

func TestBuildChunkPastTimelineEnd(t *testing.T) {
	tl := newTestTimeline(t, 1.0, 30)
	builder := NewTrackBuilder(tl)

	chunk := Chunk{
		SpeakerID: 0,
		Start:     5.0,
		End:       6.0,
		Samples:   []Sample{{Time: 5.0, Value: 0.9}, {Time: 6.0, Value: 0.9}},
	}

	track := builder.Build([]Chunk{chunk})
	require.Len(t, track, 30)
	for i, v := range track {
		assert.Equal(t, 0.0, v, "frame %d", i)
	}
}

func TestBuildChunkClippedAtTimelineEnd(t *testing.T) {
	// A chunk overrunning the timeline writes only the frames that exist.
	tl := newTestTimeline(t, 1.0, 30)
	builder := NewTrackBuilder(tl)

	chunk := Chunk{
		SpeakerID: 0,
		Start:     0.5,
		End:       2.0,
		Samples:   []Sample{{Time: 0.5, Value: 0.4}, {Time: 2.0, Value: 0.4}},
	}

	track := builder.Build([]Chunk{chunk})
	require.Len(t, track, 30)
	for f := 15; f < 30; f++ {
		assert.InDelta(t, 0.4, track[f], 1e-12, "frame %d", f)
	}
}
