package render

import (
	"golang.org/x/image/math/f32"

	"github.com/gogpu/sg/scene"
)

// Vertex is a single 2D vertex of a tessellated mesh.
//
// Positions are in the node's local coordinate space, in logical
// (device-independent) pixels. Color and texture attributes may be added
// later; backends currently take color from the node's style per draw.
type Vertex struct {
	// Position is the vertex position.
	Position f32.Vec2
}

// Vert is shorthand for constructing a Vertex.
func Vert(x, y float32) Vertex {
	return Vertex{Position: f32.Vec2{x, y}}
}

// Mesh is GPU-ready triangle-list geometry produced by a Tessellator for
// one node's shape. The mesh cache treats it as opaque: it only matters
// that the vertices were produced from the node's current shape.
//
// A Mesh is immutable after creation. The renderer relies on pointer
// identity to verify that clean nodes reuse their cached mesh.
type Mesh struct {
	// Vertices is the triangle list; its length is a multiple of 3.
	Vertices []Vertex
}

// NewMesh wraps tessellated vertices in a Mesh.
func NewMesh(vertices []Vertex) *Mesh {
	return &Mesh{Vertices: vertices}
}

// VertexCount returns the number of vertices in the mesh.
func (m *Mesh) VertexCount() int {
	return len(m.Vertices)
}

// TriangleCount returns the number of triangles in the mesh.
func (m *Mesh) TriangleCount() int {
	return len(m.Vertices) / 3
}

// Float32s flattens the mesh into the interleaved [x0 y0 x1 y1 ...] layout
// vertex buffers expect.
func (m *Mesh) Float32s() []float32 {
	out := make([]float32, 0, len(m.Vertices)*2)
	for _, v := range m.Vertices {
		out = append(out, v.Position[0], v.Position[1])
	}
	return out
}

// DrawItem is one entry of a frame's draw list: a mesh plus the state it
// is submitted with. Items are submitted in draw-list order, which equals
// scene traversal order (painter's order equals tree order).
type DrawItem struct {
	// ID is the node the mesh belongs to.
	ID scene.NodeID

	// Mesh is the cached geometry.
	Mesh *Mesh

	// Transform is the transform to draw with: the composed world
	// transform, or the node's local transform in local-coordinates mode.
	Transform scene.Affine

	// Style is the node's style at submission time.
	Style scene.Style
}
