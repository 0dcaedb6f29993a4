// Package gpu provides the wgpu-backed draw target for the sg renderer.
//
// It owns the WebGPU instance, adapter, device, and queue (via gogpu/wgpu),
// compiles the WGSL shaders with gogpu/naga, and implements render.Target
// so the frame renderer can submit cached meshes without knowing anything
// about the backing API.
//
// Two construction paths exist:
//
//   - NewBackend + Backend.Init for standalone use, where this package
//     requests its own adapter and device
//   - NewTargetFromProvider for embedding into a host (game engine, UI
//     shell) that already owns a device, via gogpu/gpucontext
//
// Surface acquisition and presentation depend on the windowing layer; the
// Surface interface is the seam the windowing glue implements.
package gpu
