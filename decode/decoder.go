package decode

// Decoder turns one encoded audio turn into mono PCM samples.
//
// Implementations return samples normalized to [-1, 1] and the source
// sample rate in Hz.
type Decoder interface {
	// Decode converts encoded audio data to normalized mono samples
	Decode(data []byte) (samples []float64, sampleRate int, err error)
}
