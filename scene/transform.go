package scene

import "math"

// Transform describes how a node is positioned, scaled, and rotated in 2D
// space, relative to its parent's coordinate frame.
type Transform struct {
	// TranslateX, TranslateY is the offset from the parent's origin.
	TranslateX, TranslateY float32

	// ScaleX, ScaleY is the scaling factor. (1, 1) means no scaling.
	ScaleX, ScaleY float32

	// Rotate is the rotation in radians, clockwise around the origin.
	Rotate float32
}

// IdentityTransform returns the transform that leaves coordinates unchanged.
func IdentityTransform() Transform {
	return Transform{ScaleX: 1, ScaleY: 1}
}

// IsIdentity returns true if the transform leaves coordinates unchanged.
func (t Transform) IsIdentity() bool {
	return t.TranslateX == 0 && t.TranslateY == 0 &&
		t.ScaleX == 1 && t.ScaleY == 1 && t.Rotate == 0
}

// Affine converts the transform to its affine matrix, applying scale first,
// then rotation, then translation.
func (t Transform) Affine() Affine {
	m := TranslateAffine(t.TranslateX, t.TranslateY)
	if t.Rotate != 0 {
		m = m.Multiply(RotateAffine(t.Rotate))
	}
	if t.ScaleX != 1 || t.ScaleY != 1 {
		m = m.Multiply(ScaleAffine(t.ScaleX, t.ScaleY))
	}
	return m
}

// Affine represents a 2D affine transformation matrix.
// The matrix is stored in row-major order as:
//
//	| A  B  C |
//	| D  E  F |
//
// Where a point (x, y) is transformed to:
//
//	x' = A*x + B*y + C
//	y' = D*x + E*y + F
type Affine struct {
	A, B, C float32
	D, E, F float32
}

// IdentityAffine returns the identity transformation.
func IdentityAffine() Affine {
	return Affine{A: 1, B: 0, C: 0, D: 0, E: 1, F: 0}
}

// TranslateAffine creates a translation transformation.
func TranslateAffine(x, y float32) Affine {
	return Affine{A: 1, B: 0, C: x, D: 0, E: 1, F: y}
}

// ScaleAffine creates a scaling transformation.
func ScaleAffine(x, y float32) Affine {
	return Affine{A: x, B: 0, C: 0, D: 0, E: y, F: 0}
}

// RotateAffine creates a rotation transformation. The angle is in radians,
// clockwise in the y-down screen coordinate system.
func RotateAffine(angle float32) Affine {
	cos := float32(math.Cos(float64(angle)))
	sin := float32(math.Sin(float64(angle)))
	return Affine{A: cos, B: -sin, C: 0, D: sin, E: cos, F: 0}
}

// Multiply returns the product of two affine transformations.
// The receiver is applied after b: (a.Multiply(b)).TransformPoint(p) equals
// a.TransformPoint(b.TransformPoint(p)).
func (a Affine) Multiply(b Affine) Affine {
	return Affine{
		A: a.A*b.A + a.B*b.D,
		B: a.A*b.B + a.B*b.E,
		C: a.A*b.C + a.B*b.F + a.C,
		D: a.D*b.A + a.E*b.D,
		E: a.D*b.B + a.E*b.E,
		F: a.D*b.C + a.E*b.F + a.F,
	}
}

// TransformPoint transforms a point by the affine matrix.
func (a Affine) TransformPoint(x, y float32) (float32, float32) {
	return a.A*x + a.B*y + a.C, a.D*x + a.E*y + a.F
}

// IsIdentity returns true if this is the identity transformation.
func (a Affine) IsIdentity() bool {
	return a.A == 1 && a.B == 0 && a.C == 0 &&
		a.D == 0 && a.E == 1 && a.F == 0
}
