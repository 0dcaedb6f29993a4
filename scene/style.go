package scene

import "github.com/gogpu/sg"

// Style defines the overall appearance of a node's shape.
//
// A style combines fill and stroke settings. If either is nil, that visual
// aspect is omitted: a node with neither fill nor stroke still tessellates
// (its geometry may clip or hit-test) but draws nothing visible.
type Style struct {
	// Fill describes the shape interior, or nil for no fill.
	Fill *Fill

	// Stroke describes the shape border, or nil for no stroke.
	Stroke *Stroke
}

// Fill describes how a shape's interior is painted.
type Fill struct {
	// Color is the solid fill color.
	Color sg.Color

	// Gradient is reserved for future gradient fills. It is ignored by
	// current render backends.
	Gradient *Gradient
}

// Gradient is a placeholder for future gradient support.
type Gradient struct{}

// Stroke describes how a shape's border is drawn.
type Stroke struct {
	// Color is the stroke color.
	Color sg.Color

	// Width is the stroke width in logical pixels.
	Width float32

	// Align positions the stroke relative to the shape boundary.
	Align StrokeAlign
}

// StrokeAlign positions a stroke relative to the shape boundary.
type StrokeAlign uint8

const (
	// StrokeCenter centers the stroke on the boundary.
	StrokeCenter StrokeAlign = iota

	// StrokeInside keeps the stroke within the shape.
	StrokeInside

	// StrokeOutside draws the stroke outside the shape.
	StrokeOutside
)

// String returns the name of the stroke alignment.
func (a StrokeAlign) String() string {
	switch a {
	case StrokeCenter:
		return "Center"
	case StrokeInside:
		return "Inside"
	case StrokeOutside:
		return "Outside"
	default:
		return "Unknown"
	}
}
