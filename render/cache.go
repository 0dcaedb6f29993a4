package render

import (
	"sync/atomic"

	"github.com/gogpu/sg/scene"
)

// MeshCache maps node IDs to the meshes produced for their shapes, so
// geometry survives across frames and only dirty or newly added nodes pay
// for tessellation.
//
// The cache has no size-based eviction: entries live exactly as long as
// their node. Prune removes entries for dead IDs and must run at least
// once per frame (the FrameRenderer does this) or be triggered
// synchronously on scene.DetachSubtree via InvalidateAll/Invalidate;
// otherwise removed-and-recreated nodes leak entries without bound.
//
// MeshCache follows the scene's single-owner discipline and is not
// internally locked; only the statistics counters are atomic so they can
// be read from monitoring code on other goroutines.
type MeshCache struct {
	entries map[scene.NodeID]*Mesh

	// Statistics (atomic for reads outside the render goroutine).
	hits      atomic.Uint64
	misses    atomic.Uint64
	refreshes atomic.Uint64
	evictions atomic.Uint64
}

// CacheStats contains cache counters for monitoring.
type CacheStats struct {
	// Entries is the number of cached meshes.
	Entries int
	// Hits counts lookups that found a mesh.
	Hits uint64
	// Misses counts lookups that found nothing.
	Misses uint64
	// Refreshes counts meshes (re)built and stored.
	Refreshes uint64
	// Evictions counts entries removed by Invalidate or Prune.
	Evictions uint64
}

// NewMeshCache creates an empty mesh cache.
func NewMeshCache() *MeshCache {
	return &MeshCache{entries: make(map[scene.NodeID]*Mesh)}
}

// Get returns the cached mesh for a node, or false if none exists.
func (c *MeshCache) Get(id scene.NodeID) (*Mesh, bool) {
	m, ok := c.entries[id]
	if ok {
		c.hits.Add(1)
	} else {
		c.misses.Add(1)
	}
	return m, ok
}

// Contains reports whether a mesh is cached for the node without counting
// a hit or miss.
func (c *MeshCache) Contains(id scene.NodeID) bool {
	_, ok := c.entries[id]
	return ok
}

// Put stores a freshly produced mesh for a node, replacing any previous
// entry. Nil meshes are ignored.
func (c *MeshCache) Put(id scene.NodeID, m *Mesh) {
	if m == nil {
		return
	}
	c.entries[id] = m
	c.refreshes.Add(1)
}

// Invalidate removes the entry for one node. It returns true if an entry
// existed.
func (c *MeshCache) Invalidate(id scene.NodeID) bool {
	if _, ok := c.entries[id]; !ok {
		return false
	}
	delete(c.entries, id)
	c.evictions.Add(1)
	return true
}

// InvalidateAll drops every entry.
func (c *MeshCache) InvalidateAll() {
	n := len(c.entries)
	clear(c.entries)
	if n > 0 {
		c.evictions.Add(uint64(n))
	}
}

// Prune removes every entry whose ID the live predicate rejects and
// returns the number removed. The FrameRenderer calls this each frame
// with scene.Contains so entries for detached subtrees cannot accumulate.
func (c *MeshCache) Prune(live func(scene.NodeID) bool) int {
	removed := 0
	for id := range c.entries {
		if !live(id) {
			delete(c.entries, id)
			removed++
		}
	}
	if removed > 0 {
		c.evictions.Add(uint64(removed))
	}
	return removed
}

// Len returns the number of cached meshes.
func (c *MeshCache) Len() int {
	return len(c.entries)
}

// Stats returns current cache statistics.
func (c *MeshCache) Stats() CacheStats {
	return CacheStats{
		Entries:   len(c.entries),
		Hits:      c.hits.Load(),
		Misses:    c.misses.Load(),
		Refreshes: c.refreshes.Load(),
		Evictions: c.evictions.Load(),
	}
}

// ResetStats resets all statistics counters to zero.
func (c *MeshCache) ResetStats() {
	c.hits.Store(0)
	c.misses.Store(0)
	c.refreshes.Store(0)
	c.evictions.Store(0)
}
