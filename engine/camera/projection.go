package camera

import (
	"sync"

	"github.com/prism-engine/prism/common"
)

// Projection holds the perspective parameters of the viewport separately from
// the camera's positional state, so window resizes only touch the aspect ratio.
type Projection struct {
	mu *sync.Mutex

	aspect float32
	fovY   float32 // radians
	near   float32
	far    float32
}

// NewProjection creates a Projection for a viewport of the given pixel size.
//
// Parameters:
//   - width: viewport width in pixels
//   - height: viewport height in pixels
//   - fovY: vertical field of view in radians
//   - near: near clipping plane distance
//   - far: far clipping plane distance
//
// Returns:
//   - *Projection: the newly created projection
func NewProjection(width, height int, fovY, near, far float32) *Projection {
	return &Projection{
		mu:     &sync.Mutex{},
		aspect: float32(width) / float32(height),
		fovY:   fovY,
		near:   near,
		far:    far,
	}
}

// Resize updates the aspect ratio for a new viewport size.
// Zero or negative dimensions are ignored so a minimized window can never
// produce a NaN aspect ratio.
//
// Parameters:
//   - width: new viewport width in pixels
//   - height: new viewport height in pixels
func (p *Projection) Resize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.aspect = float32(width) / float32(height)
}

// Aspect returns the current aspect ratio (width / height).
//
// Returns:
//   - float32: the aspect ratio
func (p *Projection) Aspect() float32 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.aspect
}

// Matrix returns the projection matrix with the WebGPU [0, 1] depth range
// correction already applied (column-major).
//
// Returns:
//   - [16]float32: the corrected projection matrix
func (p *Projection) Matrix() [16]float32 {
	p.mu.Lock()
	defer p.mu.Unlock()

	var persp, correction, out [16]float32
	common.Perspective(persp[:], p.fovY, p.aspect, p.near, p.far)
	common.DepthRangeCorrection(correction[:])
	common.Mul4(out[:], correction[:], persp[:])
	return out
}
