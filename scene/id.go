package scene

import "sync/atomic"

// NodeID is a stable, unique identifier for a node within a scene graph.
//
// Every node has a NodeID that distinguishes it from other nodes. IDs are
// used for parenting, traversal, event routing, render-cache keys, and
// lookup. An ID is never reused for the lifetime of its Allocator, so a
// stale ID held after a node is detached simply fails lookups instead of
// aliasing a new node.
type NodeID uint64

// InvalidNode is the reserved zero ID. It is never allocated and marks
// "no node" (an absent parent, a detached root).
const InvalidNode NodeID = 0

// Allocator issues unique, monotonically increasing NodeIDs.
//
// The counter is atomic, so Next is safe to call from multiple goroutines
// concurrently without producing duplicates. Numbering starts at 1;
// InvalidNode (0) is never issued.
//
// Each Scene owns an Allocator by default, but one Allocator may be shared
// across several Scenes when nodes migrate between them and IDs must stay
// globally unique.
type Allocator struct {
	next atomic.Uint64
}

// NewAllocator creates an allocator whose first issued ID is 1.
func NewAllocator() *Allocator {
	return &Allocator{}
}

// Next returns the next unique NodeID.
func (a *Allocator) Next() NodeID {
	return NodeID(a.next.Add(1))
}
