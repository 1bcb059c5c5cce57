// package instance builds the static grid of per-instance transforms and the
// instance-rate GPU buffer layout that carries them into the vertex shader.
package instance

import (
	"github.com/chewxy/math32"
	"github.com/prism-engine/prism/common"
)

// rotationAngle is the fixed rotation applied to every grid instance, in radians.
const rotationAngle = math32.Pi / 4

// Instance is one placement of the scene model: a world-space position and a
// unit quaternion rotation (x, y, z, w).
type Instance struct {
	Position [3]float32
	Rotation [4]float32
}

// BuildGrid creates nPerRow × nPerRow instances laid out on the XZ plane,
// centered on the origin, spacing world units apart.
//
// Every instance is rotated by 45° about the axis pointing from the origin to
// its own position, which tilts the outer instances progressively. The
// instance that sits exactly on the origin has no usable axis and rotates
// about +Z instead; this keeps the rotation from degenerating to a zero
// quaternion that would zero out scale.
//
// Parameters:
//   - nPerRow: number of instances along each axis
//   - spacing: distance between neighboring instances in world units
//
// Returns:
//   - []Instance: nPerRow² instances in row-major (z, then x) order
func BuildGrid(nPerRow int, spacing float32) []Instance {
	instances := make([]Instance, 0, nPerRow*nPerRow)
	half := float32(nPerRow) / 2.0

	for z := 0; z < nPerRow; z++ {
		for x := 0; x < nPerRow; x++ {
			px := spacing * (float32(x) - half)
			pz := spacing * (float32(z) - half)

			var rotation [4]float32
			if px == 0 && pz == 0 {
				rotation = common.QuatFromAxisAngle(0, 0, 1, rotationAngle)
			} else {
				rotation = common.QuatFromAxisAngle(px, 0, pz, rotationAngle)
			}

			instances = append(instances, Instance{
				Position: [3]float32{px, 0, pz},
				Rotation: rotation,
			})
		}
	}

	return instances
}

// ToRaw flattens the instance into its GPU representation: the column-major
// model matrix equal to translation * rotation.
//
// Returns:
//   - GPUInstanceData: the flattened model matrix
func (i *Instance) ToRaw() GPUInstanceData {
	var raw GPUInstanceData
	common.Mat4FromQuatTranslation(raw.Model[:], i.Rotation, i.Position[0], i.Position[1], i.Position[2])
	return raw
}

// FlattenAll converts a slice of instances to their GPU representations in order.
//
// Parameters:
//   - instances: the instances to flatten
//
// Returns:
//   - []GPUInstanceData: one flattened matrix per instance
func FlattenAll(instances []Instance) []GPUInstanceData {
	raw := make([]GPUInstanceData, len(instances))
	for idx := range instances {
		raw[idx] = instances[idx].ToRaw()
	}
	return raw
}
