// Package decode provides the audio-decoding collaborators the avatar
// pipeline consumes.
//
// The pipeline core works on mono float64 samples in [-1, 1]; this package
// turns encoded turn audio into that form. Two decoders are provided:
//
//   - WAVDecoder: 16-bit PCM RIFF/WAVE files, the format conversation turns
//     are usually staged in; stereo input is downmixed to mono
//   - OpusDecoder: single Opus frames via pion/opus, for turns arriving
//     from a VoIP capture path
//
// Both satisfy the Decoder interface. Decoder failures are returned wrapped
// with their original identity preserved so callers can tell a corrupt
// input file from a pipeline logic error.
package decode
