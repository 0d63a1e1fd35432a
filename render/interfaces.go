package render

import "github.com/opd-ai/talkingbobs/scene"

// Canvas is an opaque per-frame drawing surface owned by the Rasterizer.
type Canvas interface{}

// Rasterizer is the pixel-drawing collaborator.
//
// Implementations rasterize the primitives the avatar style needs onto a
// Canvas they own. Polygons arrive implicitly closed (last vertex connects
// back to the first) with clockwise screen winding.
type Rasterizer interface {
	// NewCanvas allocates a frame surface cleared to the background color
	NewCanvas(width, height int, background scene.Color) (Canvas, error)
	// FillPolygon fills a closed polygon
	FillPolygon(canvas Canvas, points []scene.Point, color scene.Color) error
	// FillCircle fills a disc
	FillCircle(canvas Canvas, center scene.Point, radius float64, color scene.Color) error
	// StrokeCircle draws a circle outline of the given stroke thickness
	StrokeCircle(canvas Canvas, center scene.Point, radius float64, thickness float64, color scene.Color) error
}

// Encoder is the video-encoding collaborator; it receives finished frame
// canvases in presentation order.
type Encoder interface {
	// WriteFrame appends one finished canvas to the output video
	WriteFrame(canvas Canvas) error
	// Close finalizes the video stream
	Close() error
}

// Muxer combines a silent video file with the conversation audio.
type Muxer interface {
	Mux(videoPath, audioPath, outputPath string) error
}

// FrameSource yields the per-speaker avatar geometry for each frame; the
// pipeline's Animation result satisfies it.
type FrameSource interface {
	// TotalFrames returns the number of frames to render
	TotalFrames() int
	// FramesAt returns every speaker's avatar payload for frame f
	FramesAt(f int) []scene.AvatarFrame
}
