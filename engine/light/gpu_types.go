package light

import (
	"encoding/binary"
	"math"
	"unsafe"

	"github.com/cogentcore/webgpu/wgpu"
)

// GPULightUniform is the GPU-aligned representation of the light uniform
// buffer. vec3 fields are padded to 16-byte alignment per WGSL uniform rules.
// Size: 32 bytes.
type GPULightUniform struct {
	Position [3]float32 // offset  0: world-space position
	_pad0    uint32     // offset 12: padding to vec4 boundary
	Color    [3]float32 // offset 16: RGB color
	_pad1    uint32     // offset 28: padding to 32-byte size
}

// NewGPULightUniform creates a light uniform snapshot from a Light.
//
// Parameters:
//   - l: the light to snapshot
//
// Returns:
//   - GPULightUniform: the GPU-aligned representation
func NewGPULightUniform(l Light) GPULightUniform {
	return GPULightUniform{
		Position: l.Position(),
		Color:    l.Color(),
	}
}

// Size returns the size of the GPULightUniform struct in bytes.
//
// Returns:
//   - int: the struct size in bytes (32)
func (g *GPULightUniform) Size() int {
	return int(unsafe.Sizeof(*g))
}

// Marshal serializes the GPULightUniform struct into a byte buffer suitable for GPU upload.
//
// Returns:
//   - []byte: 32-byte buffer ready for GPU upload
func (g *GPULightUniform) Marshal() []byte {
	buf := make([]byte, 32)
	binary.LittleEndian.PutUint32(buf[0:4], math.Float32bits(g.Position[0]))
	binary.LittleEndian.PutUint32(buf[4:8], math.Float32bits(g.Position[1]))
	binary.LittleEndian.PutUint32(buf[8:12], math.Float32bits(g.Position[2]))
	binary.LittleEndian.PutUint32(buf[12:16], 0) // padding
	binary.LittleEndian.PutUint32(buf[16:20], math.Float32bits(g.Color[0]))
	binary.LittleEndian.PutUint32(buf[20:24], math.Float32bits(g.Color[1]))
	binary.LittleEndian.PutUint32(buf[24:28], math.Float32bits(g.Color[2]))
	binary.LittleEndian.PutUint32(buf[28:32], 0) // padding
	return buf
}

// BindGroupLayoutDescriptor returns the bind group layout for the light
// uniform: a single uniform buffer visible to both shader stages at binding 0.
//
// Returns:
//   - wgpu.BindGroupLayoutDescriptor: the layout descriptor
func BindGroupLayoutDescriptor() wgpu.BindGroupLayoutDescriptor {
	return wgpu.BindGroupLayoutDescriptor{
		Label: "Light Bind Group Layout",
		Entries: []wgpu.BindGroupLayoutEntry{
			{
				Binding:    0,
				Visibility: wgpu.ShaderStageVertex | wgpu.ShaderStageFragment,
				Buffer: wgpu.BufferBindingLayout{
					Type:           wgpu.BufferBindingTypeUniform,
					MinBindingSize: 32,
				},
			},
		},
	}
}
