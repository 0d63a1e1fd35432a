package scene

// AvatarFrame is the per-speaker, per-frame render payload handed to the
// compositor.
//
// Constructed fresh for each frame and discarded after drawing; nothing in
// the pipeline retains it. The outline is implicitly closed (last vertex
// connects back to the first) with clockwise screen winding.
type AvatarFrame struct {
	SpeakerIndex int
	FrameIndex   int

	Center  Point
	Outline []Point

	// InnerRadius is the solid disc drawn over the outline fill.
	InnerRadius float64

	// GlowRadius is only meaningful when HasGlow is true. HasGlow is set
	// strictly above the glow threshold; at or below it there is no glow,
	// not a zero-radius one.
	GlowRadius float64
	HasGlow    bool

	Fill Color

	// Energy is the normalized energy the geometry was derived from, kept
	// for diagnostics and tests.
	Energy float64
}
