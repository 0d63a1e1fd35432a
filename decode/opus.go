package decode

import (
	"fmt"

	"github.com/pion/opus"
	"github.com/sirupsen/logrus"
)

// OpusDecoder decodes single Opus frames into normalized mono samples
// using the pure Go pion/opus decoder.
//
// Turn audio captured from a VoIP path arrives one Opus frame per buffer;
// the decoder reports the frame's bandwidth, which determines the sample
// rate returned.
type OpusDecoder struct {
	decoder opus.Decoder
}

// NewOpusDecoder creates a new Opus decoder instance.
func NewOpusDecoder() *OpusDecoder {
	logrus.WithFields(logrus.Fields{
		"function": "NewOpusDecoder",
	}).Debug("Creating Opus decoder")

	return &OpusDecoder{
		decoder: opus.NewDecoder(),
	}
}

// maxOpusFrameSamples covers a 60ms frame at 48kHz.
const maxOpusFrameSamples = 2880

// Decode converts one Opus frame to normalized mono samples.
//
// Stereo frames are downmixed by dropping the duplicate channel; the
// decoder output is interleaved identical pairs for Opus mono-in-stereo.
//
// Parameters:
//   - data: One encoded Opus frame
//
// Returns:
//   - []float64: Normalized mono samples
//   - int: Sample rate derived from the frame's bandwidth
//   - error: Decode error with the pion/opus cause preserved
func (d *OpusDecoder) Decode(data []byte) ([]float64, int, error) {
	logrus.WithFields(logrus.Fields{
		"function":  "OpusDecoder.Decode",
		"data_size": len(data),
	}).Debug("Decoding Opus frame")

	if len(data) == 0 {
		logrus.WithFields(logrus.Fields{
			"function": "OpusDecoder.Decode",
			"error":    "empty frame data",
		}).Error("Opus validation failed")
		return nil, 0, fmt.Errorf("empty Opus frame")
	}

	output := make([]byte, maxOpusFrameSamples*2)
	bandwidth, isStereo, err := d.decoder.Decode(data, output)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"function": "OpusDecoder.Decode",
			"error":    err.Error(),
		}).Error("Opus decode failed")
		return nil, 0, fmt.Errorf("opus decode failed: %w", err)
	}

	sampleCount := len(output) / 2
	step := 1
	if isStereo {
		step = 2
	}

	samples := make([]float64, 0, sampleCount/step)
	for i := 0; i+step-1 < sampleCount; i += step {
		v := int16(output[i*2]) | int16(output[i*2+1])<<8
		samples = append(samples, float64(v)/32768.0)
	}

	sampleRate := bandwidth.SampleRate()

	logrus.WithFields(logrus.Fields{
		"function":     "OpusDecoder.Decode",
		"bandwidth":    bandwidth.String(),
		"is_stereo":    isStereo,
		"sample_count": len(samples),
		"sample_rate":  sampleRate,
	}).Debug("Opus decode completed")

	return samples, int(sampleRate), nil
}
