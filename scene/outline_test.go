package scene

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestGenerator(t *testing.T) *OutlineGenerator {
	t.Helper()
	g, err := NewOutlineGenerator(OutlineConfig{
		BaseRadius:  80,
		MaxScale:    1.5,
		EnergyFloor: 0.1,
	})
	require.NoError(t, err)
	return g
}

func TestNewOutlineGenerator(t *testing.T) {
	tests := []struct {
		name      string
		config    OutlineConfig
		expectErr bool
	}{
		{
			name:   "valid_defaults",
			config: OutlineConfig{BaseRadius: 80, MaxScale: 1.5, EnergyFloor: 0.1},
		},
		{
			name:   "explicit_point_count",
			config: OutlineConfig{BaseRadius: 80, MaxScale: 1.5, EnergyFloor: 0.1, PointCount: 128},
		},
		{
			name:      "zero_base_radius",
			config:    OutlineConfig{BaseRadius: 0, MaxScale: 1.5, EnergyFloor: 0.1},
			expectErr: true,
		},
		{
			name:      "max_scale_of_one",
			config:    OutlineConfig{BaseRadius: 80, MaxScale: 1.0, EnergyFloor: 0.1},
			expectErr: true,
		},
		{
			name:      "floor_of_one",
			config:    OutlineConfig{BaseRadius: 80, MaxScale: 1.5, EnergyFloor: 1.0},
			expectErr: true,
		},
		{
			name:      "too_few_points",
			config:    OutlineConfig{BaseRadius: 80, MaxScale: 1.5, EnergyFloor: 0.1, PointCount: 2},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := NewOutlineGenerator(tt.config)
			if tt.expectErr {
				assert.Error(t, err)
				assert.Nil(t, g)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, g)
			}
		})
	}
}

func TestEnergyScaleRange(t *testing.T) {
	g := newTestGenerator(t)

	assert.InDelta(t, 1.0, g.EnergyScale(0.1), 1e-12)
	assert.InDelta(t, 1.5, g.EnergyScale(1.0), 1e-12)

	mid := g.EnergyScale(0.55)
	assert.Greater(t, mid, 1.0)
	assert.Less(t, mid, 1.5)
}

func TestOutlineAtFloorIsNearCircle(t *testing.T) {
	// At minimum energy the scale is exactly 1 and the wobble term is
	// damped by e=0.1, so every vertex stays within the wobble envelope
	// (0.18 * base * e) of the base radius.
	g := newTestGenerator(t)
	center := Point{X: 500, Y: 500}

	points := g.Outline(center, 0.1, 0)
	require.Len(t, points, DefaultOutlinePoints)

	maxWobble := (0.10 + 0.05 + 0.03) * 80.0 * 0.1
	for i, p := range points {
		r := math.Hypot(p.X-center.X, p.Y-center.Y)
		assert.InDelta(t, 80.0, r, maxWobble+1e-9, "vertex %d", i)
	}
}

func TestOutlineVertexPlacement(t *testing.T) {
	// Vertex 0 sits at angle 0: directly right of center, y unchanged by
	// cos/sin but still wobbled radially.
	g := newTestGenerator(t)
	center := Point{X: 100, Y: 200}

	points := g.Outline(center, 0.5, 7)
	p0 := points[0]
	assert.InDelta(t, 200.0, p0.Y, 1e-9)
	assert.Greater(t, p0.X, 100.0)
}

func TestOutlineDeterministic(t *testing.T) {
	g := newTestGenerator(t)
	center := Point{X: 0, Y: 0}

	a := g.Outline(center, 0.73, 42)
	b := g.Outline(center, 0.73, 42)
	assert.Equal(t, a, b)
}

func TestOutlinePhaseAdvancesWithFrame(t *testing.T) {
	g := newTestGenerator(t)
	center := Point{X: 0, Y: 0}

	a := g.Outline(center, 0.73, 0)
	b := g.Outline(center, 0.73, 1)
	assert.NotEqual(t, a, b)
}

func TestOutlineClockwiseOnScreen(t *testing.T) {
	// Ascending angles with Y down sweep clockwise on screen: the signed
	// shoelace area in screen coordinates is positive.
	g := newTestGenerator(t)
	points := g.Outline(Point{}, 0.1, 0)

	area := 0.0
	for i := range points {
		j := (i + 1) % len(points)
		area += points[i].X*points[j].Y - points[j].X*points[i].Y
	}
	assert.Greater(t, area, 0.0)
}

func TestInnerRadius(t *testing.T) {
	g := newTestGenerator(t)

	// At the floor the inner disc rests at 70% of base.
	assert.InDelta(t, 56.0, g.InnerRadius(0.1), 1e-9)
	// At full energy it grows by 45% of base: 80*0.7*1.45.
	assert.InDelta(t, 81.2, g.InnerRadius(1.0), 1e-9)
}

func TestGlowThresholdBoundary(t *testing.T) {
	g := newTestGenerator(t)

	tests := []struct {
		name    string
		energy  float64
		present bool
	}{
		{name: "at_floor", energy: 0.1, present: false},
		{name: "exactly_threshold", energy: 0.3, present: false},
		{name: "just_above_threshold", energy: 0.30001, present: true},
		{name: "full_energy", energy: 1.0, present: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			radius, present := g.GlowRadius(tt.energy)
			assert.Equal(t, tt.present, present)
			if present {
				assert.Greater(t, radius, 0.0)
			} else {
				assert.Equal(t, 0.0, radius)
			}
		})
	}
}

func TestGenerate(t *testing.T) {
	g := newTestGenerator(t)
	placement := Placement{SpeakerIndex: 2, Position: Point{X: 300, Y: 400}, Hue: 90}
	fill := HSV(placement.Hue, 200, 255)

	frame := g.Generate(placement, fill, 0.8, 12)

	assert.Equal(t, 2, frame.SpeakerIndex)
	assert.Equal(t, 12, frame.FrameIndex)
	assert.Equal(t, placement.Position, frame.Center)
	assert.Len(t, frame.Outline, DefaultOutlinePoints)
	assert.Equal(t, fill, frame.Fill)
	assert.Equal(t, 0.8, frame.Energy)
	assert.True(t, frame.HasGlow)
	assert.Greater(t, frame.GlowRadius, frame.InnerRadius)
}

func TestGenerateNoGlowAtLowEnergy(t *testing.T) {
	g := newTestGenerator(t)
	placement := Placement{SpeakerIndex: 0, Position: Point{X: 0, Y: 0}}

	frame := g.Generate(placement, Color{}, 0.2, 0)
	assert.False(t, frame.HasGlow)
	assert.Equal(t, 0.0, frame.GlowRadius)
}
