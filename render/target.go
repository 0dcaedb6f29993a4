package render

import (
	"errors"

	"github.com/gogpu/sg/scene"
)

// ErrSurfaceUnavailable is returned by Target.BeginFrame when no surface
// frame can be acquired (window minimized, swapchain lost). The frame is
// skipped; scene and cache state are untouched, so the next frame draws
// normally.
var ErrSurfaceUnavailable = errors.New("render: surface frame unavailable")

// Target abstracts the GPU backend that receives draw submissions: a
// device/queue/surface triple on the real backend, or an in-memory
// recorder in tests. The sg/gpu package provides the wgpu-backed
// implementation.
type Target interface {
	// BeginFrame acquires the next surface frame. It returns
	// ErrSurfaceUnavailable (possibly wrapped) when no frame can be
	// acquired this iteration.
	BeginFrame() (Frame, error)

	// Resize reconfigures the surface for a new size in physical pixels.
	Resize(width, height int)
}

// Frame is a single acquired surface frame accepting draw submissions.
// Submissions happen in draw-list order; Present ends the frame.
type Frame interface {
	// Draw submits one mesh with its transform and style.
	Draw(mesh *Mesh, transform scene.Affine, style scene.Style) error

	// Present finishes the frame and presents it to the surface.
	Present() error
}
