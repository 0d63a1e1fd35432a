package scene

import "math"

// Avatar palette constants in the 8-bit HSV-like space the layout hues are
// generated in: strong but not fully saturated fills at full brightness.
const (
	avatarSaturation = 200
	avatarValue      = 255
)

// Color is an 8-bit RGB color.
type Color struct {
	R uint8
	G uint8
	B uint8
}

// Background is the scene background color.
var Background = Color{R: 26, G: 26, B: 26}

// HSV converts a color from the half-turn hue encoding to RGB.
//
// hue is in [0, 180) (half-degrees, so the full color wheel fits a byte);
// saturation and value are 8-bit [0, 255]. Implementations targeting other
// encodings rescale proportionally; relative hue spacing is what matters.
func HSV(hue float64, saturation, value uint8) Color {
	h := math.Mod(hue*2, 360) // half-turns to degrees
	s := float64(saturation) / 255
	v := float64(value) / 255

	c := v * s
	x := c * (1 - math.Abs(math.Mod(h/60, 2)-1))
	m := v - c

	var r, g, b float64
	switch {
	case h < 60:
		r, g, b = c, x, 0
	case h < 120:
		r, g, b = x, c, 0
	case h < 180:
		r, g, b = 0, c, x
	case h < 240:
		r, g, b = 0, x, c
	case h < 300:
		r, g, b = x, 0, c
	default:
		r, g, b = c, 0, x
	}

	return Color{
		R: uint8(math.Round((r + m) * 255)),
		G: uint8(math.Round((g + m) * 255)),
		B: uint8(math.Round((b + m) * 255)),
	}
}

// Darker returns the color with delta subtracted from each channel,
// clamping at 0. Used for the avatar's inner disc.
func (c Color) Darker(delta uint8) Color {
	return Color{
		R: subClamp(c.R, delta),
		G: subClamp(c.G, delta),
		B: subClamp(c.B, delta),
	}
}

// Lighter returns the color with delta added to each channel, clamping at
// 255. Used for the glow ring.
func (c Color) Lighter(delta uint8) Color {
	return Color{
		R: addClamp(c.R, delta),
		G: addClamp(c.G, delta),
		B: addClamp(c.B, delta),
	}
}

func subClamp(v, delta uint8) uint8 {
	if v < delta {
		return 0
	}
	return v - delta
}

func addClamp(v, delta uint8) uint8 {
	if v > 255-delta {
		return 255
	}
	return v + delta
}
