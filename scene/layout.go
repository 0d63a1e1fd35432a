package scene

import (
	"fmt"
	"math"
)

// Point is a 2-D position in screen coordinates (Y grows downward).
type Point struct {
	X float64
	Y float64
}

// Placement is one speaker's static anchor in the scene: a fixed position
// and a hue, constant for the whole conversation.
type Placement struct {
	SpeakerIndex int
	Position     Point
	// Hue in the half-turn [0, 180) encoding; see HSV for the conversion.
	Hue float64
}

// LayoutConfig holds configuration for creating a Layout.
type LayoutConfig struct {
	SpeakerCount int // Number of speakers (must be >= 1)
	Width        int // Frame width in pixels (must be > 0)
	Height       int // Frame height in pixels (must be > 0)
}

// Layout assigns every speaker a fixed position and color for the
// conversation.
//
// A single speaker sits at the frame center. Multiple speakers are spread
// over a semicircular arc of radius min(width,height)/4 below the center
// line (screen Y grows downward), left to right. Hues are evenly spaced over
// the half-turn range so neighbouring speakers stay visually distinct.
type Layout struct {
	placements []Placement
	width      int
	height     int
}

// NewLayout computes speaker placements once per conversation.
func NewLayout(config LayoutConfig) (*Layout, error) {
	if config.SpeakerCount < 1 {
		return nil, fmt.Errorf("speaker count must be >= 1, got %d", config.SpeakerCount)
	}
	if config.Width <= 0 || config.Height <= 0 {
		return nil, fmt.Errorf("invalid frame dimensions: %dx%d", config.Width, config.Height)
	}

	n := config.SpeakerCount
	centerX := float64(config.Width) / 2
	centerY := float64(config.Height) / 2
	radius := math.Min(float64(config.Width), float64(config.Height)) / 4

	placements := make([]Placement, n)
	for i := 0; i < n; i++ {
		var pos Point
		if n == 1 {
			pos = Point{X: centerX, Y: centerY}
		} else {
			// Angles run from pi down to 0, left to right across the arc.
			theta := math.Pi * (1 - float64(i)/float64(n-1))
			pos = Point{
				X: centerX + radius*math.Cos(theta),
				Y: centerY + radius*math.Sin(theta),
			}
		}
		placements[i] = Placement{
			SpeakerIndex: i,
			Position:     pos,
			Hue:          180 * float64(i) / float64(n),
		}
	}

	return &Layout{
		placements: placements,
		width:      config.Width,
		height:     config.Height,
	}, nil
}

// SpeakerCount returns the number of placed speakers.
func (l *Layout) SpeakerCount() int {
	return len(l.placements)
}

// Placement returns speaker i's static anchor.
func (l *Layout) Placement(i int) Placement {
	return l.placements[i]
}

// Placements returns every speaker's anchor in speaker order.
func (l *Layout) Placements() []Placement {
	return l.placements
}

// Color returns speaker i's fill color: the placement hue at full value
// with the saturation the avatar style uses.
func (l *Layout) Color(i int) Color {
	return HSV(l.placements[i].Hue, avatarSaturation, avatarValue)
}
