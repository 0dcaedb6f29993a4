package gpu

import (
	"errors"
	"fmt"

	"github.com/gogpu/naga"
	"github.com/gogpu/wgpu/core"
)

// ErrShaderCompile is returned when WGSL compilation fails.
var ErrShaderCompile = errors.New("gpu: shader compilation failed")

// shapeShaderWGSL is the render shader for filled shape meshes. Vertices
// arrive in local node coordinates; the per-draw uniform carries the world
// transform (2x3 affine, padded), the premultiplied fill color, and the
// viewport size for the pixel-to-clip conversion.
const shapeShaderWGSL = `
struct DrawUniforms {
    // Affine rows | a b c | d e f |, padded to vec4 alignment.
    row0: vec4<f32>,
    row1: vec4<f32>,
    color: vec4<f32>,
    viewport: vec2<f32>,
    _pad: vec2<f32>,
};

@group(0) @binding(0) var<uniform> u: DrawUniforms;

@vertex
fn vs_main(@location(0) position: vec2<f32>) -> @builtin(position) vec4<f32> {
    let world = vec2<f32>(
        u.row0.x * position.x + u.row0.y * position.y + u.row0.z,
        u.row1.x * position.x + u.row1.y * position.y + u.row1.z,
    );
    // Pixel coordinates (y-down) to clip space (y-up).
    let clip = vec2<f32>(
        world.x / u.viewport.x * 2.0 - 1.0,
        1.0 - world.y / u.viewport.y * 2.0,
    );
    return vec4<f32>(clip, 0.0, 1.0);
}

@fragment
fn fs_main() -> @location(0) vec4<f32> {
    return u.color;
}
`

// CompileShaderToSPIRV compiles WGSL source to a SPIR-V uint32 slice.
func CompileShaderToSPIRV(wgslSource string) ([]uint32, error) {
	spirvBytes, err := naga.Compile(wgslSource)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrShaderCompile, err)
	}

	// SPIR-V is little-endian 32-bit words.
	spirvCode := make([]uint32, len(spirvBytes)/4)
	for i := range spirvCode {
		spirvCode[i] = uint32(spirvBytes[i*4]) |
			uint32(spirvBytes[i*4+1])<<8 |
			uint32(spirvBytes[i*4+2])<<16 |
			uint32(spirvBytes[i*4+3])<<24
	}
	return spirvCode, nil
}

// StubShaderModuleID is a placeholder for the wgpu ShaderModuleID.
// It will be replaced with core.ShaderModuleID once shader module
// creation is exposed by gogpu/wgpu.
type StubShaderModuleID uint64

// InvalidShaderModuleID represents an invalid/uninitialized shader module.
const InvalidShaderModuleID StubShaderModuleID = 0

// StubPipelineID is a placeholder for the wgpu RenderPipelineID.
// It will be replaced with core.RenderPipelineID when wgpu render
// pipeline support is complete.
type StubPipelineID uint64

// StubBindGroupLayoutID is a placeholder for the wgpu BindGroupLayoutID.
type StubBindGroupLayoutID uint64

// StubBufferID is a placeholder for the wgpu BufferID.
type StubBufferID uint64

// InvalidPipelineID represents an invalid/uninitialized pipeline.
const InvalidPipelineID StubPipelineID = 0

// ShapePipeline holds the compiled shader and render pipeline used to
// draw filled shape meshes: one vertex buffer of 2D positions, one
// uniform bind group per draw, triangle-list topology, alpha blending.
type ShapePipeline struct {
	device core.DeviceID

	spirv []uint32

	shader   StubShaderModuleID
	layout   StubBindGroupLayoutID
	pipeline StubPipelineID
}

// NewShapePipeline compiles the shape shader and builds the render
// pipeline for the given device. The WGSL source is compiled to SPIR-V
// with naga; module and pipeline creation currently return stub handles
// since the corresponding gogpu/wgpu APIs are not yet implemented.
func NewShapePipeline(device core.DeviceID) (*ShapePipeline, error) {
	spirv, err := CompileShaderToSPIRV(shapeShaderWGSL)
	if err != nil {
		return nil, err
	}

	p := &ShapePipeline{
		device: device,
		spirv:  spirv,
	}

	// TODO: When gogpu/wgpu shader module creation is implemented:
	// module, err := core.CreateShaderModule(device, spirv)
	p.shader = StubShaderModuleID(1)

	// Bind group layout: binding 0 = DrawUniforms.
	// TODO: When the render pipeline API lands in gogpu/wgpu, replace
	// the stubs with core.CreateBindGroupLayout and
	// core.CreateRenderPipeline; the descriptor mirrors the WGSL above
	// (Float32x2 vertex attribute, alpha blending, triangle list).
	p.layout = StubBindGroupLayoutID(1)
	p.pipeline = StubPipelineID(1)

	return p, nil
}

// SPIRV returns the compiled shader words.
func (p *ShapePipeline) SPIRV() []uint32 {
	return p.spirv
}

// Pipeline returns the render pipeline handle.
func (p *ShapePipeline) Pipeline() StubPipelineID {
	return p.pipeline
}

// IsValid reports whether the pipeline was built.
func (p *ShapePipeline) IsValid() bool {
	return p != nil && p.pipeline != InvalidPipelineID
}
