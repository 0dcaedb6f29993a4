package render

import (
	"errors"
	"fmt"
	"math"

	"github.com/gogpu/sg/scene"
)

// Tessellation errors.
var (
	// ErrDegenerateShape is returned when a shape has no area to
	// tessellate (zero or negative extents). The renderer skips such
	// nodes for the frame and retries once their shape changes.
	ErrDegenerateShape = errors.New("render: shape has degenerate geometry")

	// ErrUnknownShape is returned for a shape kind the tessellator has no
	// case for.
	ErrUnknownShape = errors.New("render: unknown shape kind")
)

// Tessellator converts a vector shape into a triangulated fill of the
// shape's boundary.
//
// Implementations must be deterministic: identical shapes produce
// identical vertices. Tessellation may fail; failure is recoverable and
// scoped to the one shape.
type Tessellator interface {
	// Tessellate produces a triangle list (length a multiple of 3)
	// covering the shape's interior in local coordinates.
	Tessellate(shape scene.Shape) ([]Vertex, error)
}

// DefaultCircleSegments is the circle subdivision used when a
// FillTessellator is created with no explicit segment count.
const DefaultCircleSegments = 32

// FillTessellator is the built-in Tessellator. Geometry generation is
// dispatched over the closed shape variant set; adding a shape kind means
// adding one case here.
type FillTessellator struct {
	// CircleSegments is the number of triangle-fan segments used for
	// circles. Fixed per tessellator, so output stays deterministic.
	CircleSegments int
}

// NewFillTessellator creates a tessellator with default settings.
func NewFillTessellator() *FillTessellator {
	return &FillTessellator{CircleSegments: DefaultCircleSegments}
}

// Tessellate implements Tessellator.
func (t *FillTessellator) Tessellate(shape scene.Shape) ([]Vertex, error) {
	switch shape.Kind {
	case scene.ShapeRect:
		return t.tessellateRect(shape.Width, shape.Height)
	case scene.ShapeCircle:
		return t.tessellateCircle(shape.Radius)
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnknownShape, shape.Kind)
	}
}

// tessellateRect fills an axis-aligned rectangle anchored at the origin
// with two triangles, wound counter-clockwise in y-down coordinates.
func (t *FillTessellator) tessellateRect(w, h float32) ([]Vertex, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("%w: rect %gx%g", ErrDegenerateShape, w, h)
	}
	return []Vertex{
		Vert(0, 0), Vert(w, 0), Vert(w, h),
		Vert(0, 0), Vert(w, h), Vert(0, h),
	}, nil
}

// tessellateCircle fills a circle centered on the origin with a triangle
// fan of CircleSegments wedges.
func (t *FillTessellator) tessellateCircle(r float32) ([]Vertex, error) {
	if r <= 0 {
		return nil, fmt.Errorf("%w: circle radius %g", ErrDegenerateShape, r)
	}

	segments := t.CircleSegments
	if segments < 3 {
		segments = DefaultCircleSegments
	}

	verts := make([]Vertex, 0, segments*3)
	step := 2 * math.Pi / float64(segments)
	for i := 0; i < segments; i++ {
		a0 := step * float64(i)
		a1 := step * float64(i+1)
		verts = append(verts,
			Vert(0, 0),
			Vert(r*float32(math.Cos(a0)), r*float32(math.Sin(a0))),
			Vert(r*float32(math.Cos(a1)), r*float32(math.Sin(a1))),
		)
	}
	return verts, nil
}
