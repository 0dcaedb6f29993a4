package sg

// Color represents a color with red, green, blue, and alpha components.
// Each component is in the range [0, 1]. Components are float32 so color
// data can be handed to GPU uniform and vertex buffers without conversion.
type Color struct {
	R, G, B, A float32
}

// RGB creates an opaque color from RGB components.
func RGB(r, g, b float32) Color {
	return Color{R: r, G: g, B: b, A: 1}
}

// RGBA creates a color from RGBA components.
func RGBA(r, g, b, a float32) Color {
	return Color{R: r, G: g, B: b, A: a}
}

// Common colors.
var (
	White       = Color{1, 1, 1, 1}
	Black       = Color{0, 0, 0, 1}
	Transparent = Color{0, 0, 0, 0}
)

// Lerp linearly interpolates between c and other by t in [0, 1].
// t outside the range is clamped.
func (c Color) Lerp(other Color, t float32) Color {
	if t <= 0 {
		return c
	}
	if t >= 1 {
		return other
	}
	return Color{
		R: c.R + (other.R-c.R)*t,
		G: c.G + (other.G-c.G)*t,
		B: c.B + (other.B-c.B)*t,
		A: c.A + (other.A-c.A)*t,
	}
}

// Premultiplied returns the color with RGB components multiplied by alpha,
// the form expected by alpha-blending render pipelines.
func (c Color) Premultiplied() Color {
	return Color{R: c.R * c.A, G: c.G * c.A, B: c.B * c.A, A: c.A}
}
