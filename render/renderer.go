package render

import (
	"fmt"

	"github.com/gogpu/sg"
	"github.com/gogpu/sg/scene"
)

// Config configures a FrameRenderer. The zero value is a valid default
// configuration.
type Config struct {
	// Tessellator produces mesh geometry for shapes. Nil selects
	// NewFillTessellator().
	Tessellator Tessellator

	// LocalCoordinates disables world-transform composition: every node
	// is drawn with only its own transform, as if all ancestor transforms
	// were identity. The default (false) composes ancestor transforms
	// along the tree so children follow their parents.
	LocalCoordinates bool
}

// FrameRenderer renders a Scene to a Target once per host-driven frame,
// reusing cached per-node geometry wherever the node is unchanged.
//
// Per frame it: acquires a surface frame (skipping the whole frame if the
// surface is unavailable), traverses the scene in pre-order, refreshes the
// mesh cache for dirty or uncached shaped nodes, builds the draw list in
// traversal order, submits one draw per entry, prunes cache entries for
// nodes that left the scene, and presents.
//
// FrameRenderer runs on the scene-owning goroutine and holds no locks.
type FrameRenderer struct {
	target Target
	tess   Tessellator
	cache  *MeshCache
	local  bool

	// Per-frame scratch, reused across frames.
	drawList []DrawItem
	world    map[scene.NodeID]scene.Affine
}

// NewFrameRenderer creates a renderer that draws to the given target.
func NewFrameRenderer(target Target, cfg Config) *FrameRenderer {
	tess := cfg.Tessellator
	if tess == nil {
		tess = NewFillTessellator()
	}
	return &FrameRenderer{
		target: target,
		tess:   tess,
		cache:  NewMeshCache(),
		local:  cfg.LocalCoordinates,
		world:  make(map[scene.NodeID]scene.Affine),
	}
}

// Cache exposes the renderer's mesh cache, mainly for monitoring and for
// hosts that invalidate entries synchronously on DetachSubtree.
func (r *FrameRenderer) Cache() *MeshCache {
	return r.cache
}

// Resize forwards a windowing resize to the target surface.
func (r *FrameRenderer) Resize(width, height int) {
	r.target.Resize(width, height)
}

// Render draws one frame of the scene.
//
// A rootless scene renders as an empty frame. Tessellation failures skip
// only the affected node (it stays dirty and uncached, so it is retried
// next frame). If the surface cannot be acquired the whole call returns
// early with ErrSurfaceUnavailable wrapped in the returned error; no
// scene or cache state has been touched at that point.
func (r *FrameRenderer) Render(s *scene.Scene) error {
	frame, err := r.target.BeginFrame()
	if err != nil {
		sg.Logger().Warn("render: frame skipped", "err", err)
		return fmt.Errorf("render: begin frame: %w", err)
	}

	r.drawList = r.drawList[:0]
	clear(r.world)

	s.Traverse(func(n *scene.Node) {
		id := n.ID()

		world := n.Transform().Affine()
		if !r.local {
			if parent, ok := n.Parent(); ok {
				// Pre-order guarantees the parent's world transform is
				// already computed.
				if pw, ok := r.world[parent]; ok {
					world = pw.Multiply(n.Transform().Affine())
				}
			}
		}
		r.world[id] = world

		shape, ok := n.Shape()
		if !ok {
			// Pure container: no geometry to refresh, nothing to draw.
			n.ClearDirty()
			return
		}

		mesh, cached := r.cache.Get(id)
		if n.IsDirty() || !cached {
			verts, err := r.tess.Tessellate(shape)
			if err != nil {
				// Skip this node for the frame; drop any stale mesh so it
				// cannot be drawn. The node stays dirty and is retried
				// every frame until its shape changes or succeeds.
				r.cache.Invalidate(id)
				sg.Logger().Warn("render: tessellation failed",
					"node", uint64(id), "shape", shape.Kind.String(), "err", err)
				return
			}
			mesh = NewMesh(verts)
			r.cache.Put(id, mesh)
		}
		n.ClearDirty()

		r.drawList = append(r.drawList, DrawItem{
			ID:        id,
			Mesh:      mesh,
			Transform: world,
			Style:     n.Style(),
		})
	})

	for _, item := range r.drawList {
		if err := frame.Draw(item.Mesh, item.Transform, item.Style); err != nil {
			// Per-frame draw errors are scoped to the one submission.
			sg.Logger().Warn("render: draw failed", "node", uint64(item.ID), "err", err)
		}
	}

	if pruned := r.cache.Prune(s.Contains); pruned > 0 {
		sg.Logger().Debug("render: pruned cache entries", "count", pruned)
	}

	if err := frame.Present(); err != nil {
		return fmt.Errorf("render: present: %w", err)
	}
	return nil
}

// DrawOrder returns a copy of the node IDs submitted in the most recent
// frame, in submission order.
func (r *FrameRenderer) DrawOrder() []scene.NodeID {
	ids := make([]scene.NodeID, len(r.drawList))
	for i, item := range r.drawList {
		ids[i] = item.ID
	}
	return ids
}
