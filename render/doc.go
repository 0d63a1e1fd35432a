// Package render glues the avatar pipeline's geometry output to external
// rasterization, encoding, and muxing collaborators.
//
// The pipeline core never touches pixels. Rasterizer, Encoder, and Muxer
// are the seams where a concrete backend (an image library, an ffmpeg
// wrapper, a GPU canvas) plugs in; Compositor owns only the drawing order
// and the per-frame walk.
//
// Per frame the compositor paints the background, then for each speaker in
// index order: the wobbling outline polygon (fill color), the inner disc
// (fill darkened), and, when the frame's energy carries a glow, the glow
// ring (fill lightened). Collaborator errors are returned wrapped with
// their identity preserved.
package render
