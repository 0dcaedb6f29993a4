package scene

// ShapeKind identifies a shape variant.
//
// The shape set is closed: adding a new variant means adding a kind here,
// a payload and constructor below, and a case in each tessellator. Scene
// and render-cache code never switch on kinds, so new variants do not
// touch them.
type ShapeKind uint8

const (
	// ShapeRect is an axis-aligned rectangle anchored at the local origin.
	ShapeRect ShapeKind = iota + 1

	// ShapeCircle is a circle centered on the local origin.
	ShapeCircle
)

// String returns the name of the shape kind.
func (k ShapeKind) String() string {
	switch k {
	case ShapeRect:
		return "Rect"
	case ShapeCircle:
		return "Circle"
	default:
		return "Unknown"
	}
}

// Shape is a closed tagged union of geometry variants. The zero value is
// not a valid shape; use the constructors.
//
// Shapes are resolution-independent vector geometry. They are tessellated
// into triangles by the render path; rotation and scaling are applied
// through the node's Transform, not baked into the shape.
type Shape struct {
	// Kind selects the active variant.
	Kind ShapeKind

	// Width, Height are the rectangle dimensions (ShapeRect).
	Width, Height float32

	// Radius is the circle radius (ShapeCircle).
	Radius float32
}

// RectShape creates an axis-aligned rectangle shape with the given
// dimensions. Dimensions are expected to be non-negative; degenerate
// rectangles tessellate to an error, not a panic.
func RectShape(width, height float32) Shape {
	return Shape{Kind: ShapeRect, Width: width, Height: height}
}

// CircleShape creates a circle shape with the given radius, centered on
// the node's local origin.
func CircleShape(radius float32) Shape {
	return Shape{Kind: ShapeCircle, Radius: radius}
}
