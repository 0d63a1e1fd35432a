// Package scene maps per-frame speaker energy into renderable avatar
// geometry.
//
// This package is the procedural-geometry half of the avatar pipeline. It
// provides static per-conversation layout (anchor positions and colors for n
// speakers) and per-frame outline generation (a wobbling closed polygon plus
// inner and glow radii driven by the normalized energy scalar).
//
// Everything here is a pure function of (frame index, energy, static
// configuration): no hidden state, deterministic output, safe to evaluate
// concurrently for any mix of frames and speakers.
//
// Coordinates are screen coordinates with Y growing downward. Outline points
// are emitted at ascending angles, which is clockwise winding on screen; the
// rasterizer is expected to close the polygon by connecting the last point
// back to the first.
package scene
