package gpu

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/wgpu/core"

	"github.com/gogpu/sg"
	"github.com/gogpu/sg/render"
	"github.com/gogpu/sg/scene"
)

// Target errors.
var (
	// ErrNilProvider is returned when a nil DeviceProvider is passed.
	ErrNilProvider = errors.New("gpu: nil DeviceProvider")

	// ErrNilSurface is returned when a nil Surface is passed.
	ErrNilSurface = errors.New("gpu: nil Surface")

	// ErrInvalidDimensions is returned when width or height is invalid.
	ErrInvalidDimensions = errors.New("gpu: invalid dimensions")
)

// Surface is the seam between the draw target and the windowing layer.
// The windowing glue (winit bindings, a game engine's swapchain wrapper)
// implements it; the target calls Acquire once per frame and Present at
// the end of the frame.
//
// Acquire returns an error when no frame can be produced this iteration
// (window minimized, swapchain out of date). The target maps that to
// render.ErrSurfaceUnavailable so the frame renderer skips the frame.
type Surface interface {
	// Acquire obtains the next presentable frame.
	Acquire() error

	// Present presents the acquired frame.
	Present() error

	// Configure reconfigures the surface for a new size in physical
	// pixels.
	Configure(width, height int)
}

// Target is the wgpu-backed implementation of render.Target. It owns the
// shape pipeline and submits one draw per cached mesh.
//
// Target is NOT safe for concurrent use; it runs on the scene-owning
// goroutine alongside the frame renderer.
type Target struct {
	device core.DeviceID
	queue  core.QueueID

	// provider is set on the embedding path, where the host owns the
	// device and we never touch core IDs directly.
	provider gpucontext.DeviceProvider

	surface  Surface
	pipeline *ShapePipeline

	width  int
	height int
}

// NewTarget creates a draw target on an initialized standalone backend.
func NewTarget(backend *Backend, surface Surface, width, height int) (*Target, error) {
	if !backend.IsInitialized() {
		return nil, ErrNotInitialized
	}
	if surface == nil {
		return nil, ErrNilSurface
	}
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: width=%d, height=%d", ErrInvalidDimensions, width, height)
	}

	pipeline, err := NewShapePipeline(backend.Device())
	if err != nil {
		return nil, err
	}

	surface.Configure(width, height)
	return &Target{
		device:   backend.Device(),
		queue:    backend.Queue(),
		surface:  surface,
		pipeline: pipeline,
		width:    width,
		height:   height,
	}, nil
}

// NewTargetFromProvider creates a draw target for embedding into a host
// that already owns a GPU device, via gogpu/gpucontext. The host passes
// its DeviceProvider (for example gogpu.App.GPUContextProvider()).
func NewTargetFromProvider(provider gpucontext.DeviceProvider, surface Surface, width, height int) (*Target, error) {
	if provider == nil {
		return nil, ErrNilProvider
	}
	if surface == nil {
		return nil, ErrNilSurface
	}
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: width=%d, height=%d", ErrInvalidDimensions, width, height)
	}

	// Shader compilation is device-independent; the pipeline binds to
	// the host device when the wgpu pipeline API is available.
	pipeline, err := NewShapePipeline(core.DeviceID{})
	if err != nil {
		return nil, err
	}

	surface.Configure(width, height)
	return &Target{
		provider: provider,
		surface:  surface,
		pipeline: pipeline,
		width:    width,
		height:   height,
	}, nil
}

// BeginFrame acquires the next surface frame.
func (t *Target) BeginFrame() (render.Frame, error) {
	if err := t.surface.Acquire(); err != nil {
		return nil, fmt.Errorf("%w: %w", render.ErrSurfaceUnavailable, err)
	}
	return &targetFrame{target: t}, nil
}

// Resize reconfigures the surface for a new size in physical pixels.
// Zero or negative dimensions are ignored (minimized window).
func (t *Target) Resize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	t.width = width
	t.height = height
	t.surface.Configure(width, height)
}

// Size returns the current surface size in physical pixels.
func (t *Target) Size() (width, height int) {
	return t.width, t.height
}

// targetFrame is one acquired surface frame. Draws are encoded in
// submission order and the frame ends with Present.
type targetFrame struct {
	target    *Target
	drawCount int
}

// Draw submits one mesh with its world transform and style.
//
// Nodes without a fill are skipped: the fill pipeline has nothing to
// draw for them. Stroke geometry is produced by a stroke tessellator
// upstream, so by the time a mesh arrives here a fill color is all the
// shader needs.
func (f *targetFrame) Draw(mesh *render.Mesh, transform scene.Affine, style scene.Style) error {
	if mesh == nil || mesh.VertexCount() == 0 {
		return nil
	}
	col := sg.Transparent
	if style.Fill != nil {
		col = style.Fill.Color
	} else if style.Stroke != nil {
		col = style.Stroke.Color
	} else {
		return nil
	}

	t := f.target
	uniforms := packDrawUniforms(transform, col.Premultiplied(),
		float32(t.width), float32(t.height))
	vertices := floatBytes(mesh.Float32s())

	// TODO: When wgpu buffer and render pass APIs are ready:
	// core.QueueWriteBuffer(t.queue, vertexBuffer, 0, vertices)
	// core.QueueWriteBuffer(t.queue, uniformBuffer, 0, uniforms)
	// pass.SetPipeline(t.pipeline.Pipeline())
	// pass.SetBindGroup(0, drawBindGroup)
	// pass.SetVertexBuffer(0, vertexBuffer)
	// pass.Draw(uint32(mesh.VertexCount()), 1, 0, 0)
	_ = uniforms
	_ = vertices

	f.drawCount++
	return nil
}

// Present finishes the frame and presents it to the surface.
func (f *targetFrame) Present() error {
	// TODO: When wgpu is ready, submit the encoded command buffer here:
	// core.QueueSubmit(f.target.queue, []core.CommandBufferID{cmd})
	if err := f.target.surface.Present(); err != nil {
		return fmt.Errorf("gpu: present failed: %w", err)
	}
	sg.Logger().Debug("gpu: frame presented", "draws", f.drawCount)
	return nil
}

// DrawCount returns the number of draws encoded so far this frame.
func (f *targetFrame) DrawCount() int {
	return f.drawCount
}

// packDrawUniforms lays out the DrawUniforms block exactly as the WGSL
// declares it: two padded affine rows, the premultiplied color, the
// viewport size, and trailing pad to a 16-byte boundary.
func packDrawUniforms(m scene.Affine, col sg.Color, width, height float32) []byte {
	words := [16]float32{
		m.A, m.B, m.C, 0,
		m.D, m.E, m.F, 0,
		col.R, col.G, col.B, col.A,
		width, height, 0, 0,
	}
	return floatBytes(words[:])
}

// floatBytes encodes float32 values as little-endian bytes for buffer
// upload.
func floatBytes(values []float32) []byte {
	out := make([]byte, len(values)*4)
	for i, v := range values {
		binary.LittleEndian.PutUint32(out[i*4:], math.Float32bits(v))
	}
	return out
}
