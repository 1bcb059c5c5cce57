package camera

import (
	"encoding/binary"
	"math"
	"unsafe"

	"github.com/cogentcore/webgpu/wgpu"
)

// GPUCameraUniform is the GPU-aligned representation of the camera uniform
// buffer: one combined view-projection matrix.
// Size: 64 bytes (mat4x4<f32>, std140 aligned, no padding required).
type GPUCameraUniform struct {
	ViewProj [16]float32 // offset 0: depth-corrected projection * view (mat4x4<f32>)
}

// NewGPUCameraUniform creates a camera uniform initialized to the identity matrix.
//
// Returns:
//   - GPUCameraUniform: the initialized uniform
func NewGPUCameraUniform() GPUCameraUniform {
	return GPUCameraUniform{
		ViewProj: [16]float32{1, 0, 0, 0, 0, 1, 0, 0, 0, 0, 1, 0, 0, 0, 0, 1},
	}
}

// Size returns the size of the GPUCameraUniform struct in bytes.
//
// Returns:
//   - int: the struct size in bytes (64)
func (g *GPUCameraUniform) Size() int {
	return int(unsafe.Sizeof(*g))
}

// Marshal serializes the GPUCameraUniform struct into a byte buffer suitable for GPU upload.
//
// Returns:
//   - []byte: the serialized byte buffer
func (g *GPUCameraUniform) Marshal() []byte {
	buf := make([]byte, g.Size())
	for i := range 16 {
		binary.LittleEndian.PutUint32(buf[i*4:], math.Float32bits(g.ViewProj[i]))
	}
	return buf
}

// BindGroupLayoutDescriptor returns the bind group layout for the camera
// uniform: a single uniform buffer visible to both shader stages at binding 0.
//
// Returns:
//   - wgpu.BindGroupLayoutDescriptor: the layout descriptor
func BindGroupLayoutDescriptor() wgpu.BindGroupLayoutDescriptor {
	return wgpu.BindGroupLayoutDescriptor{
		Label: "Camera Bind Group Layout",
		Entries: []wgpu.BindGroupLayoutEntry{
			{
				Binding:    0,
				Visibility: wgpu.ShaderStageVertex | wgpu.ShaderStageFragment,
				Buffer: wgpu.BufferBindingLayout{
					Type:           wgpu.BufferBindingTypeUniform,
					MinBindingSize: 64,
				},
			},
		},
	}
}
