package render

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/opd-ai/talkingbobs/scene"
)

// Secondary color derivation and glow stroke, the avatar house style.
const (
	innerDarkenDelta    = 30
	glowBrightenDelta   = 20
	glowStrokeThickness = 2.0
)

// CompositorConfig holds configuration for creating a Compositor.
type CompositorConfig struct {
	Width      int         // Frame width in pixels (must be > 0)
	Height     int         // Frame height in pixels (must be > 0)
	Background scene.Color // Frame background; zero value means scene.Background
}

// Compositor turns per-frame avatar geometry into drawn, encoded video
// frames via the rasterization and encoding collaborators.
type Compositor struct {
	config     CompositorConfig
	rasterizer Rasterizer
	encoder    Encoder
}

// NewCompositor creates a compositor over the given collaborators.
//
// Parameters:
//   - config: Frame dimensions and background
//   - rasterizer: Pixel-drawing collaborator (must not be nil)
//   - encoder: Video-encoding collaborator (must not be nil)
//
// Returns:
//   - *Compositor: New compositor instance
//   - error: Validation error for nil collaborators or bad dimensions
func NewCompositor(config CompositorConfig, rasterizer Rasterizer, encoder Encoder) (*Compositor, error) {
	logrus.WithFields(logrus.Fields{
		"function": "NewCompositor",
		"width":    config.Width,
		"height":   config.Height,
	}).Debug("Creating compositor")

	if rasterizer == nil {
		return nil, fmt.Errorf("nil rasterizer")
	}
	if encoder == nil {
		return nil, fmt.Errorf("nil encoder")
	}
	if config.Width <= 0 || config.Height <= 0 {
		return nil, fmt.Errorf("invalid frame dimensions: %dx%d", config.Width, config.Height)
	}
	if (config.Background == scene.Color{}) {
		config.Background = scene.Background
	}

	return &Compositor{
		config:     config,
		rasterizer: rasterizer,
		encoder:    encoder,
	}, nil
}

// ComposeFrame draws one video frame's avatars onto a fresh canvas.
//
// Drawing order per speaker: outline polygon, inner disc, glow ring (only
// when present). Speakers draw in slice order, so later speakers overlap
// earlier ones, matching the layout's left-to-right arc.
func (c *Compositor) ComposeFrame(avatars []scene.AvatarFrame) (Canvas, error) {
	canvas, err := c.rasterizer.NewCanvas(c.config.Width, c.config.Height, c.config.Background)
	if err != nil {
		return nil, fmt.Errorf("canvas allocation failed: %w", err)
	}

	for _, avatar := range avatars {
		if err := c.rasterizer.FillPolygon(canvas, avatar.Outline, avatar.Fill); err != nil {
			return nil, fmt.Errorf("outline fill failed for speaker %d: %w", avatar.SpeakerIndex, err)
		}

		inner := avatar.Fill.Darker(innerDarkenDelta)
		if err := c.rasterizer.FillCircle(canvas, avatar.Center, avatar.InnerRadius, inner); err != nil {
			return nil, fmt.Errorf("inner disc failed for speaker %d: %w", avatar.SpeakerIndex, err)
		}

		if avatar.HasGlow {
			glow := avatar.Fill.Lighter(glowBrightenDelta)
			if err := c.rasterizer.StrokeCircle(canvas, avatar.Center, avatar.GlowRadius, glowStrokeThickness, glow); err != nil {
				return nil, fmt.Errorf("glow ring failed for speaker %d: %w", avatar.SpeakerIndex, err)
			}
		}
	}

	return canvas, nil
}

// Render walks every frame of the source, composes it, and hands it to the
// encoder in presentation order. Progress is logged every tenth of the
// timeline.
func (c *Compositor) Render(source FrameSource) error {
	total := source.TotalFrames()

	logrus.WithFields(logrus.Fields{
		"function":     "Compositor.Render",
		"total_frames": total,
		"width":        c.config.Width,
		"height":       c.config.Height,
	}).Info("Rendering animation frames")

	progressStep := total / 10
	if progressStep == 0 {
		progressStep = 1
	}

	for f := 0; f < total; f++ {
		canvas, err := c.ComposeFrame(source.FramesAt(f))
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"function": "Compositor.Render",
				"frame":    f,
				"error":    err.Error(),
			}).Error("Frame composition failed")
			return err
		}

		if err := c.encoder.WriteFrame(canvas); err != nil {
			logrus.WithFields(logrus.Fields{
				"function": "Compositor.Render",
				"frame":    f,
				"error":    err.Error(),
			}).Error("Frame encode failed")
			return fmt.Errorf("encoding frame %d: %w", f, err)
		}

		if (f+1)%progressStep == 0 {
			logrus.WithFields(logrus.Fields{
				"function":     "Compositor.Render",
				"frame":        f + 1,
				"total_frames": total,
				"percent":      float64(f+1) / float64(total) * 100,
			}).Info("Render progress")
		}
	}

	if err := c.encoder.Close(); err != nil {
		return fmt.Errorf("finalizing video stream: %w", err)
	}

	logrus.WithFields(logrus.Fields{
		"function":     "Compositor.Render",
		"total_frames": total,
	}).Info("Animation rendering completed")

	return nil
}
