// Package timeline defines the fixed video frame grid shared by every
// speaker in a conversation.
//
// A Timeline is derived once from the full conversation span (including any
// trailing silence after the last turn) and is read-only afterwards. Frame i
// is stamped at i/fps seconds, so frame timestamps are exact multiples of
// the frame interval and never drift with accumulated floating point error.
package timeline

import (
	"fmt"
	"math"

	"github.com/sirupsen/logrus"
)

// Timeline is the fixed frame grid for one conversation.
//
// TotalFrames is ceil(duration * fps) so the final partial frame interval
// still receives a frame. Shared read-only by all speaker pipelines.
type Timeline struct {
	fps         int
	totalFrames int
	duration    float64
}

// New creates a frame timeline covering duration seconds at fps frames per
// second.
//
// Parameters:
//   - duration: Total conversation span in seconds (must be > 0)
//   - fps: Target video frame rate (must be > 0)
//
// Returns:
//   - *Timeline: New timeline instance
//   - error: Validation error for non-positive duration or fps
func New(duration float64, fps int) (*Timeline, error) {
	logrus.WithFields(logrus.Fields{
		"function": "New",
		"duration": duration,
		"fps":      fps,
	}).Debug("Creating frame timeline")

	if fps <= 0 {
		logrus.WithFields(logrus.Fields{
			"function": "New",
			"fps":      fps,
			"error":    "non-positive frame rate",
		}).Error("Timeline validation failed")
		return nil, fmt.Errorf("non-positive frame rate: %d", fps)
	}
	if duration <= 0 {
		logrus.WithFields(logrus.Fields{
			"function": "New",
			"duration": duration,
			"error":    "non-positive duration",
		}).Error("Timeline validation failed")
		return nil, fmt.Errorf("non-positive duration: %f", duration)
	}

	tl := &Timeline{
		fps:         fps,
		totalFrames: int(math.Ceil(duration * float64(fps))),
		duration:    duration,
	}

	logrus.WithFields(logrus.Fields{
		"function":     "New",
		"fps":          tl.fps,
		"total_frames": tl.totalFrames,
		"duration":     tl.duration,
	}).Info("Frame timeline created")

	return tl, nil
}

// FPS returns the frame rate the timeline was built for.
func (t *Timeline) FPS() int {
	return t.fps
}

// TotalFrames returns the number of frames covering the conversation.
func (t *Timeline) TotalFrames() int {
	return t.totalFrames
}

// Duration returns the conversation span in seconds.
func (t *Timeline) Duration() float64 {
	return t.duration
}

// FrameTime returns the timestamp of frame i in seconds (i / fps).
func (t *Timeline) FrameTime(i int) float64 {
	return float64(i) / float64(t.fps)
}

// FrameTimes returns the timestamps of every frame in ascending order.
func (t *Timeline) FrameTimes() []float64 {
	times := make([]float64, t.totalFrames)
	for i := range times {
		times[i] = t.FrameTime(i)
	}
	return times
}

// FrameWindow maps a time span [start, end) onto the frame grid, returning
// the first frame covered and the frame one past the last frame covered.
// The window is clipped to [0, TotalFrames); an empty window is returned as
// startFrame >= endFrame.
func (t *Timeline) FrameWindow(start, end float64) (startFrame, endFrame int) {
	startFrame = int(math.Floor(start * float64(t.fps)))
	endFrame = int(math.Ceil(end * float64(t.fps)))
	if startFrame < 0 {
		startFrame = 0
	}
	if startFrame > t.totalFrames {
		startFrame = t.totalFrames
	}
	if endFrame > t.totalFrames {
		endFrame = t.totalFrames
	}
	return startFrame, endFrame
}
