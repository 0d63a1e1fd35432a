package decode

import (
	"encoding/binary"
	"fmt"

	"github.com/sirupsen/logrus"
)

// WAVDecoder decodes 16-bit PCM RIFF/WAVE data into normalized mono
// samples.
//
// Only uncompressed PCM (format tag 1) with 16-bit depth is supported,
// which is what the conversation staging path produces. Stereo input is
// downmixed to mono by averaging channels.
type WAVDecoder struct{}

// NewWAVDecoder creates a new WAV decoder instance.
func NewWAVDecoder() *WAVDecoder {
	return &WAVDecoder{}
}

const (
	wavFormatPCM      = 1
	wavHeaderMinBytes = 12 // "RIFF" + size + "WAVE"
)

// Decode parses a RIFF/WAVE buffer and returns mono samples in [-1, 1].
//
// Chunks other than "fmt " and "data" (LIST, cue, etc.) are skipped. The
// "fmt " chunk must precede "data".
//
// Parameters:
//   - data: Complete WAV file contents
//
// Returns:
//   - []float64: Normalized mono samples
//   - int: Sample rate in Hz
//   - error: Parse error describing the malformed structure
func (d *WAVDecoder) Decode(data []byte) ([]float64, int, error) {
	logrus.WithFields(logrus.Fields{
		"function":  "WAVDecoder.Decode",
		"data_size": len(data),
	}).Debug("Decoding WAV audio data")

	if len(data) < wavHeaderMinBytes {
		logrus.WithFields(logrus.Fields{
			"function":  "WAVDecoder.Decode",
			"data_size": len(data),
			"error":     "buffer too short for RIFF header",
		}).Error("WAV validation failed")
		return nil, 0, fmt.Errorf("buffer too short for RIFF header: %d bytes", len(data))
	}
	if string(data[0:4]) != "RIFF" || string(data[8:12]) != "WAVE" {
		logrus.WithFields(logrus.Fields{
			"function": "WAVDecoder.Decode",
			"error":    "missing RIFF/WAVE magic",
		}).Error("WAV validation failed")
		return nil, 0, fmt.Errorf("not a RIFF/WAVE stream")
	}

	var (
		sampleRate    int
		channels      int
		bitsPerSample int
		haveFormat    bool
	)

	offset := wavHeaderMinBytes
	for offset+8 <= len(data) {
		chunkID := string(data[offset : offset+4])
		chunkSize := int(binary.LittleEndian.Uint32(data[offset+4 : offset+8]))
		body := offset + 8
		if body+chunkSize > len(data) {
			return nil, 0, fmt.Errorf("truncated %q chunk: declared %d bytes, %d available",
				chunkID, chunkSize, len(data)-body)
		}

		switch chunkID {
		case "fmt ":
			if chunkSize < 16 {
				return nil, 0, fmt.Errorf("fmt chunk too short: %d bytes", chunkSize)
			}
			format := int(binary.LittleEndian.Uint16(data[body : body+2]))
			if format != wavFormatPCM {
				return nil, 0, fmt.Errorf("unsupported WAV format tag %d (only PCM)", format)
			}
			channels = int(binary.LittleEndian.Uint16(data[body+2 : body+4]))
			sampleRate = int(binary.LittleEndian.Uint32(data[body+4 : body+8]))
			bitsPerSample = int(binary.LittleEndian.Uint16(data[body+14 : body+16]))
			haveFormat = true

		case "data":
			if !haveFormat {
				return nil, 0, fmt.Errorf("data chunk before fmt chunk")
			}
			if bitsPerSample != 16 {
				return nil, 0, fmt.Errorf("unsupported bit depth %d (only 16-bit PCM)", bitsPerSample)
			}
			if channels < 1 || channels > 2 {
				return nil, 0, fmt.Errorf("unsupported channel count %d", channels)
			}
			if sampleRate <= 0 {
				return nil, 0, fmt.Errorf("non-positive sample rate %d", sampleRate)
			}
			samples := decodePCM16(data[body:body+chunkSize], channels)

			logrus.WithFields(logrus.Fields{
				"function":     "WAVDecoder.Decode",
				"sample_rate":  sampleRate,
				"channels":     channels,
				"sample_count": len(samples),
			}).Debug("WAV decode completed")

			return samples, sampleRate, nil
		}

		// Chunk bodies are word-aligned.
		offset = body + chunkSize + (chunkSize & 1)
	}

	return nil, 0, fmt.Errorf("no data chunk found")
}

// decodePCM16 converts little-endian 16-bit PCM to normalized mono float64,
// averaging channels for stereo input.
func decodePCM16(raw []byte, channels int) []float64 {
	frameBytes := 2 * channels
	frameCount := len(raw) / frameBytes

	samples := make([]float64, frameCount)
	for i := 0; i < frameCount; i++ {
		sum := 0.0
		for ch := 0; ch < channels; ch++ {
			off := i*frameBytes + ch*2
			v := int16(raw[off]) | int16(raw[off+1])<<8
			sum += float64(v) / 32768.0
		}
		samples[i] = sum / float64(channels)
	}
	return samples
}
