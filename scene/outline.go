package scene

import (
	"fmt"
	"math"
)

// Default avatar geometry.
const (
	DefaultBaseRadius    = 80.0
	DefaultMaxScale      = 1.5
	DefaultOutlinePoints = 80
)

// GlowThreshold is the normalized energy above which the glow ring appears.
// At exactly the threshold the glow is absent.
const GlowThreshold = 0.3

// Wobble harmonics: three sines at 3, 5 and 7 lobes with decreasing
// amplitude and slightly detuned phase speeds, which keeps the outline
// motion organic instead of periodic.
const (
	wobblePhaseStep = 0.1

	wobbleFreq1, wobbleAmp1, wobbleRate1 = 3.0, 0.10, 1.0
	wobbleFreq2, wobbleAmp2, wobbleRate2 = 5.0, 0.05, 1.3
	wobbleFreq3, wobbleAmp3, wobbleRate3 = 7.0, 0.03, 0.7
)

// OutlineConfig holds configuration for creating an OutlineGenerator.
type OutlineConfig struct {
	BaseRadius  float64 // Resting avatar radius in pixels (must be > 0)
	MaxScale    float64 // Radius multiplier at full energy (must be > 1)
	EnergyFloor float64 // Normalized energy minimum, in [0, 1)
	PointCount  int     // Outline polygon vertices (default: 80)
}

// OutlineGenerator produces the avatar's wobbling silhouette and derived
// radii from a frame index and that frame's normalized energy.
//
// All methods are pure functions of their arguments and the static
// configuration; frames and speakers can be generated in any order or
// concurrently.
type OutlineGenerator struct {
	baseRadius float64
	maxScale   float64
	floor      float64
	pointCount int
}

// NewOutlineGenerator creates an outline generator.
func NewOutlineGenerator(config OutlineConfig) (*OutlineGenerator, error) {
	if config.BaseRadius <= 0 {
		return nil, fmt.Errorf("base radius must be > 0, got %f", config.BaseRadius)
	}
	if config.MaxScale <= 1 {
		return nil, fmt.Errorf("max scale must be > 1, got %f", config.MaxScale)
	}
	if config.EnergyFloor < 0 || config.EnergyFloor >= 1 {
		return nil, fmt.Errorf("energy floor outside [0, 1): %f", config.EnergyFloor)
	}

	pointCount := config.PointCount
	if pointCount == 0 {
		pointCount = DefaultOutlinePoints
	}
	if pointCount < 3 || pointCount > 1024 {
		return nil, fmt.Errorf("outline point count outside [3, 1024]: %d", pointCount)
	}

	return &OutlineGenerator{
		baseRadius: config.BaseRadius,
		maxScale:   config.MaxScale,
		floor:      config.EnergyFloor,
		pointCount: pointCount,
	}, nil
}

// EnergyScale maps normalized energy in [floor, 1] onto a radius multiplier
// in [1, maxScale].
func (g *OutlineGenerator) EnergyScale(energy float64) float64 {
	return 1.0 + (energy-g.floor)*(g.maxScale-1.0)/(1.0-g.floor)
}

// Outline returns the avatar silhouette for one frame: pointCount vertices
// at ascending angles over [0, 2pi), clockwise on screen.
//
// Each vertex sits at base*scale plus a three-harmonic wobble whose
// amplitude is proportional to the frame's energy, so a quiet avatar is a
// near-perfect circle and a loud one ripples. The polygon is implicitly
// closed: the rasterizer connects the last vertex back to the first.
func (g *OutlineGenerator) Outline(center Point, energy float64, frameIndex int) []Point {
	phase := float64(frameIndex) * wobblePhaseStep

	points := make([]Point, g.pointCount)
	for i := 0; i < g.pointCount; i++ {
		angle := 2 * math.Pi * float64(i) / float64(g.pointCount)

		wobble := math.Sin(angle*wobbleFreq1+phase*wobbleRate1)*wobbleAmp1 +
			math.Sin(angle*wobbleFreq2+phase*wobbleRate2)*wobbleAmp2 +
			math.Sin(angle*wobbleFreq3+phase*wobbleRate3)*wobbleAmp3

		radius := g.baseRadius*g.EnergyScale(energy) + wobble*g.baseRadius*energy

		points[i] = Point{
			X: center.X + radius*math.Cos(angle),
			Y: center.Y + radius*math.Sin(angle),
		}
	}

	return points
}

// InnerRadius returns the radius of the solid inner disc for the given
// energy.
func (g *OutlineGenerator) InnerRadius(energy float64) float64 {
	return g.baseRadius * 0.7 * (1.0 + (energy-g.floor)*0.5)
}

// GlowRadius returns the glow ring radius and whether the glow is present
// at all. The ring only appears strictly above GlowThreshold; callers must
// treat the radius as meaningless when present is false.
func (g *OutlineGenerator) GlowRadius(energy float64) (radius float64, present bool) {
	if energy <= GlowThreshold {
		return 0, false
	}
	return g.baseRadius * 1.2 * (1.0 + (energy-g.floor)*0.5), true
}

// Generate assembles the full per-speaker per-frame render payload.
func (g *OutlineGenerator) Generate(placement Placement, fill Color, energy float64, frameIndex int) AvatarFrame {
	glowRadius, hasGlow := g.GlowRadius(energy)
	return AvatarFrame{
		SpeakerIndex: placement.SpeakerIndex,
		FrameIndex:   frameIndex,
		Center:       placement.Position,
		Outline:      g.Outline(placement.Position, energy, frameIndex),
		InnerRadius:  g.InnerRadius(energy),
		GlowRadius:   glowRadius,
		HasGlow:      hasGlow,
		Fill:         fill,
		Energy:       energy,
	}
}
