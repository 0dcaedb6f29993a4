package scene

import (
	"testing"

	"github.com/gogpu/sg"
)

// buildTestScene creates the canonical small tree used by the traversal
// tests:
//
//	root
//	└── a
//	    ├── b
//	    └── c
func buildTestScene(t *testing.T) (s *Scene, a, b, c *Node) {
	t.Helper()
	s = NewScene()
	a = s.NewNode()
	b = s.NewNode()
	c = s.NewNode()
	if err := s.Attach(s.Root(), a); err != nil {
		t.Fatalf("Attach(root, a) = %v", err)
	}
	if err := s.Attach(a.ID(), b); err != nil {
		t.Fatalf("Attach(a, b) = %v", err)
	}
	if err := s.Attach(a.ID(), c); err != nil {
		t.Fatalf("Attach(a, c) = %v", err)
	}
	return s, a, b, c
}

func TestNewScene(t *testing.T) {
	s := NewScene()

	if s.Root() == InvalidNode {
		t.Fatal("Root() = InvalidNode, want a valid root")
	}
	if s.Len() != 1 {
		t.Errorf("Len() = %d, want 1", s.Len())
	}

	root, ok := s.Get(s.Root())
	if !ok {
		t.Fatal("Get(root) not found")
	}
	if _, hasParent := root.Parent(); hasParent {
		t.Error("root has a parent, want none")
	}
}

func TestAttach(t *testing.T) {
	s := NewScene()
	n := s.NewNode()

	if err := s.Attach(s.Root(), n); err != nil {
		t.Fatalf("Attach() = %v, want nil", err)
	}
	if !s.Contains(n.ID()) {
		t.Error("Contains(n) = false after Attach")
	}
	parent, ok := n.Parent()
	if !ok || parent != s.Root() {
		t.Errorf("Parent() = (%d, %v), want (%d, true)", parent, ok, s.Root())
	}

	root, _ := s.Get(s.Root())
	children := root.Children()
	if len(children) != 1 || children[0] != n.ID() {
		t.Errorf("root.Children() = %v, want [%d]", children, n.ID())
	}
}

func TestAttachMissingParent(t *testing.T) {
	s := NewScene()
	n := s.NewNode()

	err := s.Attach(NodeID(9999), n)
	if err != ErrMissingParent {
		t.Fatalf("Attach(missing, n) = %v, want ErrMissingParent", err)
	}

	// The scene must be left unchanged.
	if s.Contains(n.ID()) {
		t.Error("node was inserted despite missing parent")
	}
	if s.Len() != 1 {
		t.Errorf("Len() = %d, want 1", s.Len())
	}
	if _, hasParent := n.Parent(); hasParent {
		t.Error("node gained a parent link despite failed Attach")
	}
}

func TestAttachAlreadyAttached(t *testing.T) {
	s := NewScene()
	n := s.NewNode()
	if err := s.Attach(s.Root(), n); err != nil {
		t.Fatalf("first Attach() = %v", err)
	}

	other := s.NewNode()
	if err := s.Attach(s.Root(), other); err != nil {
		t.Fatalf("Attach(other) = %v", err)
	}

	if err := s.Attach(other.ID(), n); err != ErrAlreadyAttached {
		t.Errorf("re-Attach = %v, want ErrAlreadyAttached", err)
	}

	// n must still be a child of root only.
	parent, _ := n.Parent()
	if parent != s.Root() {
		t.Errorf("Parent() = %d, want %d", parent, s.Root())
	}
	otherNode, _ := s.Get(other.ID())
	if len(otherNode.Children()) != 0 {
		t.Errorf("other.Children() = %v, want empty", otherNode.Children())
	}
}

func TestAttachOrderIsChildOrder(t *testing.T) {
	s := NewScene()
	first := s.NewNode()
	second := s.NewNode()
	third := s.NewNode()
	for _, n := range []*Node{first, second, third} {
		if err := s.Attach(s.Root(), n); err != nil {
			t.Fatalf("Attach() = %v", err)
		}
	}

	root, _ := s.Get(s.Root())
	want := []NodeID{first.ID(), second.ID(), third.ID()}
	got := root.Children()
	if len(got) != len(want) {
		t.Fatalf("Children() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Children()[%d] = %d, want %d", i, got[i], want[i])
		}
	}
}

func TestTraversePreOrder(t *testing.T) {
	s, a, b, c := buildTestScene(t)

	var order []NodeID
	s.Traverse(func(n *Node) {
		order = append(order, n.ID())
	})

	want := []NodeID{s.Root(), a.ID(), b.ID(), c.ID()}
	if len(order) != len(want) {
		t.Fatalf("visited %v, want %v", order, want)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Errorf("order[%d] = %d, want %d", i, order[i], want[i])
		}
	}
}

func TestTraverseRootless(t *testing.T) {
	s := NewScene()
	s.DetachSubtree(s.Root())

	if s.Root() != InvalidNode {
		t.Fatalf("Root() = %d after detaching root, want InvalidNode", s.Root())
	}

	visited := 0
	s.Traverse(func(*Node) { visited++ })
	if visited != 0 {
		t.Errorf("visited %d nodes on rootless scene, want 0", visited)
	}
}

func TestTraverseDeepTree(t *testing.T) {
	// Deep enough that a recursive traversal would overflow the stack.
	const depth = 200000

	s := NewScene()
	parent := s.Root()
	for i := 0; i < depth; i++ {
		n := s.NewNode()
		if err := s.Attach(parent, n); err != nil {
			t.Fatalf("Attach at depth %d: %v", i, err)
		}
		parent = n.ID()
	}

	visited := 0
	s.Traverse(func(*Node) { visited++ })
	if visited != depth+1 {
		t.Errorf("visited %d nodes, want %d", visited, depth+1)
	}
}

func TestDetachSubtree(t *testing.T) {
	s, a, b, c := buildTestScene(t)

	removed := s.DetachSubtree(a.ID())

	if len(removed) != 3 {
		t.Fatalf("DetachSubtree removed %v, want 3 IDs", removed)
	}
	if removed[0] != a.ID() {
		t.Errorf("removed[0] = %d, want subtree root %d", removed[0], a.ID())
	}
	for _, id := range []NodeID{a.ID(), b.ID(), c.ID()} {
		if s.Contains(id) {
			t.Errorf("Contains(%d) = true after detach", id)
		}
	}
	if s.Len() != 1 {
		t.Errorf("Len() = %d, want 1", s.Len())
	}

	root, _ := s.Get(s.Root())
	if len(root.Children()) != 0 {
		t.Errorf("root.Children() = %v, want empty", root.Children())
	}
}

func TestDetachSubtreeMissing(t *testing.T) {
	s := NewScene()
	if removed := s.DetachSubtree(NodeID(424242)); removed != nil {
		t.Errorf("DetachSubtree(missing) = %v, want nil", removed)
	}
	if s.Len() != 1 {
		t.Errorf("Len() = %d, want 1", s.Len())
	}
}

func TestDetachRoot(t *testing.T) {
	s, _, _, _ := buildTestScene(t)

	removed := s.DetachSubtree(s.Root())
	if len(removed) != 4 {
		t.Errorf("removed %d nodes, want 4", len(removed))
	}
	if s.Root() != InvalidNode {
		t.Errorf("Root() = %d, want InvalidNode", s.Root())
	}
	if s.Len() != 0 {
		t.Errorf("Len() = %d, want 0", s.Len())
	}
}

func TestTraverseMutDetachMidWalk(t *testing.T) {
	s, a, b, c := buildTestScene(t)

	// Detach a's subtree while visiting a: b and c must be skipped,
	// not visited with dangling state.
	var order []NodeID
	s.TraverseMut(func(n *Node) {
		order = append(order, n.ID())
		if n.ID() == a.ID() {
			s.DetachSubtree(a.ID())
		}
	})

	want := []NodeID{s.Root(), a.ID()}
	if len(order) != len(want) {
		t.Fatalf("visited %v, want %v", order, want)
	}
	_ = b
	_ = c
}

func TestNodeDirtyLifecycle(t *testing.T) {
	s := NewScene()
	n := s.NewNode()

	if !n.IsDirty() {
		t.Error("new node IsDirty() = false, want true")
	}

	n.ClearDirty()
	if n.IsDirty() {
		t.Error("IsDirty() = true after ClearDirty")
	}

	tests := []struct {
		name   string
		mutate func(*Node)
		want   bool
	}{
		{"SetTransform", func(n *Node) { n.SetTransform(Transform{ScaleX: 2, ScaleY: 2}) }, true},
		{"SetShape", func(n *Node) { n.SetShape(RectShape(10, 10)) }, true},
		{"SetFill", func(n *Node) { n.SetFill(sg.RGB(1, 0, 0)) }, true},
		{"SetStroke", func(n *Node) { n.SetStroke(Stroke{Color: sg.Black, Width: 1}) }, true},
		{"SetStyle", func(n *Node) { n.SetStyle(Style{}) }, true},
		{"ClearShape", func(n *Node) { n.ClearShape() }, true},
		{"SetHandler", func(n *Node) { n.SetHandler(func(Event) {}) }, false},
		{"ClearHandler", func(n *Node) { n.ClearHandler() }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// ClearShape only dirties when a shape exists.
			if tt.name == "ClearShape" {
				n.SetShape(RectShape(5, 5))
			}
			n.ClearDirty()
			tt.mutate(n)
			if n.IsDirty() != tt.want {
				t.Errorf("IsDirty() = %v after %s, want %v", n.IsDirty(), tt.name, tt.want)
			}
		})
	}
}

func TestClearShapeOnShapeless(t *testing.T) {
	s := NewScene()
	n := s.NewNode()
	n.ClearDirty()

	n.ClearShape()
	if n.IsDirty() {
		t.Error("ClearShape on shapeless node marked it dirty")
	}
}

func TestDispatch(t *testing.T) {
	s := NewScene()
	n := s.NewNode()
	if err := s.Attach(s.Root(), n); err != nil {
		t.Fatalf("Attach() = %v", err)
	}

	var got []Event
	n.SetHandler(func(ev Event) { got = append(got, ev) })

	if !s.Dispatch(n.ID(), EventClick) {
		t.Error("Dispatch(n, click) = false, want true")
	}
	if len(got) != 1 || got[0] != EventClick {
		t.Errorf("handler received %v, want [EventClick]", got)
	}

	if s.Dispatch(s.Root(), EventClick) {
		t.Error("Dispatch on handlerless node = true, want false")
	}
	if s.Dispatch(NodeID(777777), EventClick) {
		t.Error("Dispatch on missing node = true, want false")
	}

	n.ClearHandler()
	if s.Dispatch(n.ID(), EventClick) {
		t.Error("Dispatch after ClearHandler = true, want false")
	}
}

func TestSharedAllocatorAcrossScenes(t *testing.T) {
	alloc := NewAllocator()
	s1 := NewSceneWithAllocator(alloc)
	s2 := NewSceneWithAllocator(alloc)

	if s1.Root() == s2.Root() {
		t.Errorf("scenes sharing an allocator got the same root ID %d", s1.Root())
	}
}
