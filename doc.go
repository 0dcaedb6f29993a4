// Package sg provides a retained-mode 2D scene graph for GPU vector UI
// rendering.
//
// The scene graph is an in-memory tree of visual nodes (transform, shape,
// style, event handler) that a host application mutates incrementally.
// Each node carries a dirty flag; the renderer re-tessellates only dirty or
// newly added nodes and reuses cached geometry for everything else.
//
// Package layout:
//
//   - sg (this package): shared value types (Color) and the library logger
//   - sg/scene: the node tree, identity allocation, traversal, value types
//   - sg/render: the per-node mesh cache and the frame renderer
//   - sg/gpu: wgpu-backed draw target (device, queue, pipeline, surface)
//   - sg/anim: tween-driven transform animation on top of scene setters
//
// A minimal frame loop:
//
//	s := scene.NewScene()
//	n := s.NewNode()
//	n.SetShape(scene.RectShape(200, 100))
//	n.SetFill(sg.RGB(1, 0, 0))
//	if err := s.Attach(s.Root(), n); err != nil {
//		// handle structural error
//	}
//
//	r := render.NewFrameRenderer(target, render.Config{})
//	if err := r.Render(s); err != nil {
//		// frame skipped; scene and cache are untouched
//	}
//
// The Scene is owned by a single goroutine. Event handlers may run on any
// goroutine but communicate with the scene-owning goroutine through
// scene.IntentQueue rather than mutating the Scene directly.
package sg
