package scene

import "errors"

// Structural errors returned by Scene mutation operations. Both are
// recoverable: the scene is left unchanged and the caller decides how to
// proceed.
var (
	// ErrMissingParent is returned by Attach when the parent ID does not
	// exist in the scene.
	ErrMissingParent = errors.New("scene: parent node not found")

	// ErrAlreadyAttached is returned by Attach when the node already has a
	// parent or is already present in a scene. Attaching it twice would
	// give it two parent links and break the tree invariant.
	ErrAlreadyAttached = errors.New("scene: node is already attached")
)

// Scene is a scene graph managing a tree of nodes.
//
// Scene owns and organizes all nodes of a user interface. Nodes live in a
// flat map keyed by NodeID, with explicit parent/child ID references
// forming the tree; think of it as a lightweight DOM for a GPU vector UI.
//
// Invariants maintained between operations:
//
//   - the root (when present) has no parent and exists in the map
//   - every non-root node's parent exists in the map
//   - every non-root node appears in its parent's child list exactly once
//   - parent/child links form a tree: no cycles, no second parents
//   - IDs are never reused while referenced by any link
//
// Scene is not safe for concurrent use. It is owned by a single
// goroutine; event handlers running elsewhere must post Intents (see
// IntentQueue) instead of calling Scene methods.
type Scene struct {
	nodes map[NodeID]*Node
	root  NodeID
	alloc *Allocator
}

// NewScene creates a scene graph with its own ID allocator and a single
// root node.
func NewScene() *Scene {
	return NewSceneWithAllocator(NewAllocator())
}

// NewSceneWithAllocator creates a scene graph that draws IDs from the
// given allocator. Use this when several scenes must share one ID space.
func NewSceneWithAllocator(alloc *Allocator) *Scene {
	root := NewNode(alloc)
	return &Scene{
		nodes: map[NodeID]*Node{root.id: root},
		root:  root.id,
		alloc: alloc,
	}
}

// Root returns the root node's ID, or InvalidNode if the root has been
// detached. A rootless scene is valid and renders as empty.
func (s *Scene) Root() NodeID {
	return s.root
}

// NewNode creates a detached node using the scene's allocator. The node
// joins the tree only after Attach.
func (s *Scene) NewNode() *Node {
	return NewNode(s.alloc)
}

// Len returns the number of nodes currently in the scene.
func (s *Scene) Len() int {
	return len(s.nodes)
}

// Get returns the node with the given ID, or false if it does not exist.
func (s *Scene) Get(id NodeID) (*Node, bool) {
	n, ok := s.nodes[id]
	return n, ok
}

// Contains reports whether a node with the given ID exists in the scene.
func (s *Scene) Contains(id NodeID) bool {
	_, ok := s.nodes[id]
	return ok
}

// Attach inserts a detached node into the scene as the last child of
// parent.
//
// It returns ErrMissingParent if parent does not exist and
// ErrAlreadyAttached if the node already has a parent link or its ID is
// already present. In both cases the scene is left unchanged.
func (s *Scene) Attach(parent NodeID, n *Node) error {
	if n.parent != InvalidNode {
		return ErrAlreadyAttached
	}
	if _, exists := s.nodes[n.id]; exists {
		return ErrAlreadyAttached
	}
	parentNode, ok := s.nodes[parent]
	if !ok {
		return ErrMissingParent
	}

	n.setParent(parent)
	parentNode.addChild(n.id)
	s.nodes[n.id] = n
	return nil
}

// DetachSubtree removes the node with the given ID and its entire subtree
// from the scene. The node is unlinked from its former parent's child
// list; descendants are deleted with it. Detaching the root is permitted
// and leaves the scene rootless.
//
// It returns the IDs of all removed nodes (in pre-order), so callers can
// invalidate per-node caches synchronously. A missing ID removes nothing
// and returns nil.
func (s *Scene) DetachSubtree(id NodeID) []NodeID {
	n, ok := s.nodes[id]
	if !ok {
		return nil
	}

	if parent, ok := n.Parent(); ok {
		if parentNode, ok := s.nodes[parent]; ok {
			parentNode.removeChild(id)
		}
	}
	if id == s.root {
		s.root = InvalidNode
	}

	// Iterative pre-order delete over the subtree. The work stack is a
	// local slice so DetachSubtree stays safe to call from a TraverseMut
	// visitor mid-walk.
	removed := make([]NodeID, 0, 8)
	stack := make([]NodeID, 0, 16)
	stack = append(stack, id)
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		node, ok := s.nodes[cur]
		if !ok {
			continue
		}
		delete(s.nodes, cur)
		removed = append(removed, cur)

		for i := len(node.children) - 1; i >= 0; i-- {
			stack = append(stack, node.children[i])
		}
	}
	return removed
}

// Traverse visits every attached node in depth-first pre-order, starting
// at the root: a node is visited before its children, and children are
// visited in attach order.
//
// The visitor must not change the scene's structure (attach or detach)
// during the walk. Mutating the visited node's own non-structural state
// (dirty flag and friends) is allowed; for anything more, use TraverseMut.
// On a rootless scene, Traverse visits nothing.
func (s *Scene) Traverse(visit func(*Node)) {
	s.walk(visit)
}

// TraverseMut visits every node in the same order as Traverse, but the
// visitor may freely mutate the visited node and may detach other nodes.
//
// Each node's child list is snapshotted onto the work stack before its
// children are visited, so a visitor that detaches a not-yet-visited node
// is safe: the detached IDs simply fail their lookup and are skipped.
func (s *Scene) TraverseMut(visit func(*Node)) {
	s.walk(visit)
}

// walk is the shared iterative pre-order traversal. The work stack is an
// explicit heap-allocated slice so arbitrarily deep trees cannot overflow
// the call stack. Pushing child IDs onto the stack copies them, which
// doubles as the snapshot TraverseMut relies on.
func (s *Scene) walk(visit func(*Node)) {
	if s.root == InvalidNode {
		return
	}

	stack := make([]NodeID, 0, 32)
	stack = append(stack, s.root)
	for len(stack) > 0 {
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		n, ok := s.nodes[id]
		if !ok {
			// Detached mid-walk by a TraverseMut visitor; skip.
			continue
		}
		visit(n)

		// Reverse push so children pop in attach order.
		for i := len(n.children) - 1; i >= 0; i-- {
			stack = append(stack, n.children[i])
		}
	}
}

// Dispatch routes an event to the handler of the node with the given ID.
// It returns true if a handler was invoked. Dispatch itself only reads
// the scene, so it may be called by the input-dispatch goroutine; the
// invoked handler is bound by the Handler thread-safety contract.
func (s *Scene) Dispatch(id NodeID, ev Event) bool {
	n, ok := s.nodes[id]
	if !ok || n.handler == nil {
		return false
	}
	n.handler(ev)
	return true
}
