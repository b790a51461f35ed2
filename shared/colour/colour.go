// Package colour provides colour objects and the heat map used to render field magnitudes.
package colour

import "math"

// RGB represents a colour with red, green, and blue channels.
// All channels are normalized so they're within the range [0, 1].
type RGB struct {
	r, g, b float64
}

// NewRGB returns a new RGB object with the specified colours.
func NewRGB(r, g, b uint8) RGB {
	return RGB{r: float64(r) / 255.0, g: float64(g) / 255.0, b: float64(b) / 255.0}
}

// NewRGBFromFloats returns a new RGB object with the specified colours (after clamping them to the range [0, 1]).
func NewRGBFromFloats(r, g, b float64) RGB {
	return RGB{r: math.Max(0.0, math.Min(r, 1.0)), g: math.Max(0.0, math.Min(g, 1.0)), b: math.Max(0.0, math.Min(b, 1.0))}
}

// Lerp returns the colour a fraction t of the way from a to b (after clamping t to the range [0, 1]).
func (a RGB) Lerp(b RGB, t float64) RGB {
	t = math.Max(0.0, math.Min(t, 1.0))
	return RGB{r: a.r + t*(b.r-a.r), g: a.g + t*(b.g-a.g), b: a.b + t*(b.b-a.b)}
}

// heatStops are the control points of the heat map, from cold to hot.
var heatStops = [...]RGB{
	NewRGB(13, 8, 135),
	NewRGB(126, 3, 168),
	NewRGB(204, 71, 120),
	NewRGB(248, 149, 64),
	NewRGB(240, 249, 33),
}

// Heat maps an intensity in the range [0, 1] onto the heat map.
// Intensities outside the range clamp to its endpoints.
func Heat(t float64) RGB {
	t = math.Max(0.0, math.Min(t, 1.0)) * float64(len(heatStops)-1)
	lower := int(t)
	if lower >= len(heatStops)-1 {
		return heatStops[len(heatStops)-1]
	}
	return heatStops[lower].Lerp(heatStops[lower+1], t-float64(lower))
}

// RGBA returns the three colour channels of an RGB object in the range [0, 0xffff], and a fully opaque alpha channel.
// This function allows RGB objects to be used with the Color (image/color) interface, which expects
// 16-bit alpha-premultiplied channels.  With full alpha the premultiplied and straight forms coincide.
func (rgb RGB) RGBA() (uint32, uint32, uint32, uint32) {
	return uint32(0xffff*rgb.r + 0.5), uint32(0xffff*rgb.g + 0.5), uint32(0xffff*rgb.b + 0.5), 0xffff
}

// RGB returns the three colour channels of an RGB object in the range [0, 255].
func (rgb RGB) RGB() (uint8, uint8, uint8) {
	return uint8(255 * rgb.r), uint8(255 * rgb.g), uint8(255 * rgb.b)
}
