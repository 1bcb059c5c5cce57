package light

import (
	"fmt"
	"sync/atomic"

	"github.com/chewxy/math32"
	"github.com/prism-engine/prism/common"
	"github.com/prism-engine/prism/engine/renderer/bind_group_provider"
)

// orbitStep is the per-frame rotation of the light about the world Y axis,
// in radians (1 degree).
const orbitStep = math32.Pi / 180.0

var lightCount int64

// lightImpl is the implementation of the Light interface.
type lightImpl struct {
	position          [3]float32
	color             [3]float32
	bindGroupProvider bind_group_provider.BindGroupProvider
}

// Light is the single point light that illuminates the scene. Each frame the
// scene advances it one step along a circular orbit about the world Y axis,
// keeping its height fixed, and uploads the new position through the light's
// bind group provider.
type Light interface {
	// Position returns the world-space position of the light.
	//
	// Returns:
	//   - [3]float32: position as (x, y, z)
	Position() [3]float32

	// Color returns the RGB color of the light.
	//
	// Returns:
	//   - [3]float32: color as (r, g, b)
	Color() [3]float32

	// BindGroupProvider returns the provider that owns the light's GPU uniform
	// buffer and bind group.
	//
	// Returns:
	//   - bind_group_provider.BindGroupProvider: the light's provider
	BindGroupProvider() bind_group_provider.BindGroupProvider

	// Advance rotates the light's position one orbit step (1°) about the world
	// Y axis. The distance from the axis and the height are both preserved.
	Advance()

	// SetPosition sets the world-space position of the light.
	//
	// Parameters:
	//   - x, y, z: position components
	SetPosition(x, y, z float32)

	// SetColor sets the RGB color of the light.
	//
	// Parameters:
	//   - r, g, b: color components
	SetColor(r, g, b float32)

	// SetBindGroupProvider replaces the light's bind group provider.
	//
	// Parameters:
	//   - provider: the provider to use
	SetBindGroupProvider(provider bind_group_provider.BindGroupProvider)
}

var _ Light = &lightImpl{}

// NewLight creates a point light at (2, 2, 2) with a white color and any
// provided options applied.
//
// Parameters:
//   - opts: variadic list of LightBuilderOption functions to configure the light
//
// Returns:
//   - Light: a new Light instance
func NewLight(opts ...LightBuilderOption) Light {
	count := atomic.AddInt64(&lightCount, 1)
	l := &lightImpl{
		position:          [3]float32{2, 2, 2},
		color:             [3]float32{1, 1, 1},
		bindGroupProvider: bind_group_provider.NewBindGroupProvider(fmt.Sprintf("light_%d", count)),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

func (l *lightImpl) Position() [3]float32 {
	return l.position
}

func (l *lightImpl) Color() [3]float32 {
	return l.color
}

func (l *lightImpl) BindGroupProvider() bind_group_provider.BindGroupProvider {
	return l.bindGroupProvider
}

func (l *lightImpl) Advance() {
	q := common.QuatFromAxisAngle(0, 1, 0, orbitStep)
	x, y, z := common.QuatRotateVec3(q, l.position[0], l.position[1], l.position[2])
	l.position = [3]float32{x, y, z}
}

func (l *lightImpl) SetPosition(x, y, z float32) {
	l.position = [3]float32{x, y, z}
}

func (l *lightImpl) SetColor(r, g, b float32) {
	l.color = [3]float32{r, g, b}
}

func (l *lightImpl) SetBindGroupProvider(provider bind_group_provider.BindGroupProvider) {
	l.bindGroupProvider = provider
}
