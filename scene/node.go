package scene

import "github.com/gogpu/sg"

// Node is a single element of the scene graph: an optionally shaped,
// styled, transformable box that may contain other boxes.
//
// A Node is a pure state holder. All tree-structural operations (attach,
// detach) live on Scene so the structural invariants are enforced in one
// place; Node only exposes read accessors for its hierarchy links.
//
// Setters that change rendering-relevant state (transform, shape, style)
// mark the node dirty so the next render pass re-tessellates it. Setting
// an event handler does not mark dirty, since handlers do not affect
// visual output.
type Node struct {
	id       NodeID
	parent   NodeID
	children []NodeID

	transform Transform
	shape     *Shape
	style     Style
	handler   Handler

	dirty bool
}

// NewNode creates a detached node with a fresh ID from the allocator.
//
// The node starts dirty, with an identity transform, no shape, no style
// content, no handler, and no children. It takes part in traversal only
// after Scene.Attach.
func NewNode(alloc *Allocator) *Node {
	return &Node{
		id:        alloc.Next(),
		transform: IdentityTransform(),
		dirty:     true,
	}
}

// ID returns the node's unique identifier.
func (n *Node) ID() NodeID {
	return n.id
}

// Parent returns the ID of the parent node and true, or InvalidNode and
// false if the node is detached or is the scene root.
func (n *Node) Parent() (NodeID, bool) {
	return n.parent, n.parent != InvalidNode
}

// Children returns the node's child IDs in attach order, which is also
// traversal and draw order. The returned slice MUST NOT be mutated.
func (n *Node) Children() []NodeID {
	return n.children
}

// Transform returns the node's transform relative to its parent.
func (n *Node) Transform() Transform {
	return n.transform
}

// SetTransform replaces the node's transform and marks it dirty.
func (n *Node) SetTransform(t Transform) {
	n.transform = t
	n.dirty = true
}

// Shape returns the node's shape and true, or a zero Shape and false if
// the node has no shape. Shapeless nodes are pure containers: they never
// enter the render cache or the draw list.
func (n *Node) Shape() (Shape, bool) {
	if n.shape == nil {
		return Shape{}, false
	}
	return *n.shape, true
}

// SetShape sets the shape to be rendered for this node and marks it dirty.
func (n *Node) SetShape(s Shape) {
	shape := s
	n.shape = &shape
	n.dirty = true
}

// ClearShape removes the shape and marks the node dirty. The node remains
// in the tree as a container.
func (n *Node) ClearShape() {
	if n.shape == nil {
		return
	}
	n.shape = nil
	n.dirty = true
}

// Style returns the node's style.
func (n *Node) Style() Style {
	return n.style
}

// SetStyle replaces the node's style and marks it dirty.
func (n *Node) SetStyle(s Style) {
	n.style = s
	n.dirty = true
}

// SetFill sets a solid fill color, keeping any existing stroke, and marks
// the node dirty.
func (n *Node) SetFill(c sg.Color) {
	n.style.Fill = &Fill{Color: c}
	n.dirty = true
}

// SetStroke sets the stroke, keeping any existing fill, and marks the node
// dirty.
func (n *Node) SetStroke(s Stroke) {
	stroke := s
	n.style.Stroke = &stroke
	n.dirty = true
}

// Handler returns the node's event handler, or nil.
func (n *Node) Handler() Handler {
	return n.handler
}

// SetHandler assigns an event handler. This does not mark the node dirty:
// handlers have no effect on visual output.
func (n *Node) SetHandler(h Handler) {
	n.handler = h
}

// ClearHandler removes the event handler.
func (n *Node) ClearHandler() {
	n.handler = nil
}

// IsDirty reports whether the node's visual state changed since the last
// successful render refresh.
func (n *Node) IsDirty() bool {
	return n.dirty
}

// MarkDirty flags the node for re-tessellation on the next render pass.
func (n *Node) MarkDirty() {
	n.dirty = true
}

// ClearDirty clears the dirty flag. The render path calls this after a
// successful geometry refresh; hosts normally have no reason to.
func (n *Node) ClearDirty() {
	n.dirty = false
}

// setParent records the parent link. Called by Scene only.
func (n *Node) setParent(parent NodeID) {
	n.parent = parent
}

// addChild appends a child ID. Called by Scene only.
func (n *Node) addChild(child NodeID) {
	n.children = append(n.children, child)
}

// removeChild removes a child ID if present. Called by Scene only.
func (n *Node) removeChild(child NodeID) {
	for i, id := range n.children {
		if id == child {
			n.children = append(n.children[:i], n.children[i+1:]...)
			return
		}
	}
}
