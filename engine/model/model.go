package model

import (
	"github.com/prism-engine/prism/engine/renderer/bind_group_provider"
)

// model is the implementation of the Model interface.
type model struct {
	name      string
	meshes    []Mesh
	materials []Material
}

// Model defines the interface for a loaded 3D model: a set of GPU-ready meshes
// and the materials they reference by index. It is produced by the resources
// loader after importing an OBJ file and uploading its buffers and textures.
type Model interface {
	// Name retrieves the model identifier.
	//
	// Returns:
	//   - string: the model name
	Name() string

	// Meshes retrieves the GPU-ready meshes of this model.
	//
	// Returns:
	//   - []Mesh: the meshes
	Meshes() []Mesh

	// Materials retrieves the materials referenced by this model's meshes.
	//
	// Returns:
	//   - []Material: the materials
	Materials() []Material

	// Material resolves a mesh's material index to the Material, or nil when
	// the index is out of range.
	//
	// Parameters:
	//   - index: the material index from a Mesh
	//
	// Returns:
	//   - Material: the material or nil
	Material(index int) Material
}

var _ Model = &model{}

// NewModel creates a new Model instance with the specified options applied.
//
// Parameters:
//   - options: a variadic list of ModelBuilderOption functions to configure the Model
//
// Returns:
//   - Model: a new instance of Model configured with the provided options
func NewModel(options ...ModelBuilderOption) Model {
	m := &model{}
	for _, opt := range options {
		opt(m)
	}
	return m
}

func (m *model) Name() string {
	return m.name
}

func (m *model) Meshes() []Mesh {
	return m.meshes
}

func (m *model) Materials() []Material {
	return m.materials
}

func (m *model) Material(index int) Material {
	if index < 0 || index >= len(m.materials) {
		return nil
	}
	return m.materials[index]
}

// mesh is the implementation of the Mesh interface.
type mesh struct {
	name          string
	provider      bind_group_provider.BindGroupProvider
	materialIndex int
}

// Mesh is one indexed triangle list of a model. Its vertex and index buffers
// live on the mesh's BindGroupProvider; MaterialIndex selects the Material the
// mesh is drawn with.
type Mesh interface {
	// Name retrieves the mesh identifier.
	//
	// Returns:
	//   - string: the mesh name
	Name() string

	// Provider retrieves the BindGroupProvider holding the mesh's GPU vertex
	// and index buffers.
	//
	// Returns:
	//   - bind_group_provider.BindGroupProvider: the mesh provider
	Provider() bind_group_provider.BindGroupProvider

	// MaterialIndex retrieves the index of the material this mesh is drawn with.
	//
	// Returns:
	//   - int: the material index
	MaterialIndex() int
}

var _ Mesh = &mesh{}

// NewMesh creates a new Mesh.
//
// Parameters:
//   - name: the mesh identifier
//   - provider: the BindGroupProvider holding the mesh's GPU buffers
//   - materialIndex: the index of the material this mesh is drawn with
//
// Returns:
//   - Mesh: a new Mesh instance
func NewMesh(name string, provider bind_group_provider.BindGroupProvider, materialIndex int) Mesh {
	return &mesh{
		name:          name,
		provider:      provider,
		materialIndex: materialIndex,
	}
}

func (m *mesh) Name() string {
	return m.name
}

func (m *mesh) Provider() bind_group_provider.BindGroupProvider {
	return m.provider
}

func (m *mesh) MaterialIndex() int {
	return m.materialIndex
}

// material is the implementation of the Material interface.
type material struct {
	name     string
	provider bind_group_provider.BindGroupProvider
}

// Material is a named pair of textures (diffuse and normal map) bound as one
// GPU bind group. The bind group lives on the material's BindGroupProvider and
// matches MaterialBindGroupLayoutDescriptor.
type Material interface {
	// Name retrieves the material identifier.
	//
	// Returns:
	//   - string: the material name
	Name() string

	// Provider retrieves the BindGroupProvider holding the material's texture
	// views, samplers, and bind group.
	//
	// Returns:
	//   - bind_group_provider.BindGroupProvider: the material provider
	Provider() bind_group_provider.BindGroupProvider
}

var _ Material = &material{}

// NewMaterial creates a new Material.
//
// Parameters:
//   - name: the material identifier
//   - provider: the BindGroupProvider holding the material's GPU resources
//
// Returns:
//   - Material: a new Material instance
func NewMaterial(name string, provider bind_group_provider.BindGroupProvider) Material {
	return &material{
		name:     name,
		provider: provider,
	}
}

func (m *material) Name() string {
	return m.name
}

func (m *material) Provider() bind_group_provider.BindGroupProvider {
	return m.provider
}
