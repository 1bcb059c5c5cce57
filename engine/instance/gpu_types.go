package instance

import (
	"encoding/binary"
	"math"
	"unsafe"

	"github.com/cogentcore/webgpu/wgpu"
)

// GPUInstanceData is the GPU-aligned per-instance payload: one column-major
// model matrix, consumed as four vec4 attributes at instance rate.
// Size: 64 bytes.
type GPUInstanceData struct {
	Model [16]float32 // offset 0: translation * rotation (mat4x4<f32>)
}

// Size returns the size of the GPUInstanceData struct in bytes.
//
// Returns:
//   - int: the struct size in bytes (64)
func (g *GPUInstanceData) Size() int {
	return int(unsafe.Sizeof(*g))
}

// Marshal serializes the GPUInstanceData struct into a byte buffer suitable for GPU upload.
//
// Returns:
//   - []byte: the serialized byte buffer
func (g *GPUInstanceData) Marshal() []byte {
	buf := make([]byte, g.Size())
	for i := range 16 {
		binary.LittleEndian.PutUint32(buf[i*4:], math.Float32bits(g.Model[i]))
	}
	return buf
}

// MarshalAll serializes a slice of instance payloads into one contiguous
// buffer, in order, ready to upload as a single vertex buffer.
//
// Parameters:
//   - data: the instance payloads to serialize
//
// Returns:
//   - []byte: the concatenated byte buffer
func MarshalAll(data []GPUInstanceData) []byte {
	if len(data) == 0 {
		return nil
	}
	stride := data[0].Size()
	buf := make([]byte, 0, stride*len(data))
	for i := range data {
		buf = append(buf, data[i].Marshal()...)
	}
	return buf
}

// VertexBufferLayout returns the instance-rate vertex buffer layout. The model
// matrix occupies shader locations 5 through 8 as four consecutive vec4
// columns; locations 0 through 4 belong to the mesh vertex layout.
//
// Returns:
//   - wgpu.VertexBufferLayout: the layout descriptor
func VertexBufferLayout() wgpu.VertexBufferLayout {
	return wgpu.VertexBufferLayout{
		ArrayStride: 64,
		StepMode:    wgpu.VertexStepModeInstance,
		Attributes: []wgpu.VertexAttribute{
			{
				Format:         wgpu.VertexFormatFloat32x4,
				Offset:         0,
				ShaderLocation: 5,
			},
			{
				Format:         wgpu.VertexFormatFloat32x4,
				Offset:         16,
				ShaderLocation: 6,
			},
			{
				Format:         wgpu.VertexFormatFloat32x4,
				Offset:         32,
				ShaderLocation: 7,
			},
			{
				Format:         wgpu.VertexFormatFloat32x4,
				Offset:         48,
				ShaderLocation: 8,
			},
		},
	}
}
