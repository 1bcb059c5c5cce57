package resources

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"time"

	"github.com/Carmen-Shannon/automation/tools/worker"
	"github.com/cogentcore/webgpu/wgpu"
	"github.com/prism-engine/prism/common"
	"github.com/prism-engine/prism/engine/model"
	"github.com/prism-engine/prism/engine/renderer"
	"github.com/prism-engine/prism/engine/renderer/bind_group_provider"
	"github.com/udhos/gwob"
)

// loader is the implementation of the Loader interface.
type loader struct {
	mu sync.RWMutex

	renderer renderer.Renderer

	modelCache map[string]model.Model

	// texturePool manages a bounded set of reusable goroutines for decoding
	// material textures in parallel during model import.
	texturePool    worker.DynamicWorkerPool
	textureWorkers int
}

// Loader imports Wavefront OBJ models with their MTL material libraries and
// caches the results. When a Renderer is attached, imported meshes and
// material textures are uploaded to the GPU; without one, models are built
// CPU-side only.
type Loader interface {
	// Load imports an OBJ file and caches the result by path.
	// The material library referenced by the file's mtllib statement is read
	// from the same directory, as are any texture files it names.
	//
	// Parameters:
	//   - path: the file path to the OBJ file
	//
	// Returns:
	//   - model.Model: the loaded and cached model
	//   - error: error if loading fails
	Load(path string) (model.Model, error)

	// LoadBuf imports an OBJ model from in-memory buffers and caches it by
	// the given name. Texture paths in the material data are resolved
	// relative to the working directory.
	//
	// Parameters:
	//   - name: the cache key and model name
	//   - objData: raw OBJ file contents
	//   - mtlData: raw MTL file contents (may be nil)
	//
	// Returns:
	//   - model.Model: the loaded model
	//   - error: error if loading fails
	LoadBuf(name string, objData, mtlData []byte) (model.Model, error)

	// LoadMaterial builds a standalone material from a diffuse and a normal
	// map texture file. Used for materials that are not part of any model
	// file, such as the debug substitution material.
	//
	// Parameters:
	//   - name: the material name
	//   - diffusePath: file path of the diffuse texture
	//   - normalPath: file path of the normal map texture
	//
	// Returns:
	//   - model.Material: the material with initialized GPU resources
	//   - error: error if decoding or GPU init fails
	LoadMaterial(name, diffusePath, normalPath string) (model.Material, error)

	// Get retrieves a cached model by name. Returns nil if not found.
	//
	// Parameters:
	//   - name: the cache key to look up
	//
	// Returns:
	//   - model.Model: the cached model or nil
	Get(name string) model.Model

	// Models returns the full model cache.
	//
	// Returns:
	//   - map[string]model.Model: all cached models keyed by name
	Models() map[string]model.Model
}

var _ Loader = &loader{}

// NewLoader creates a new Loader instance with the specified options applied.
//
// Parameters:
//   - options: a variadic list of LoaderBuilderOption functions to configure the Loader
//
// Returns:
//   - Loader: a new instance of Loader
func NewLoader(options ...LoaderBuilderOption) Loader {
	l := &loader{
		mu:             sync.RWMutex{},
		modelCache:     make(map[string]model.Model),
		textureWorkers: max(runtime.NumCPU()-1, 1),
	}

	for _, option := range options {
		option(l)
	}

	// Queue size of 256 accommodates the texture counts of typical material
	// libraries with headroom.
	l.texturePool = worker.NewDynamicWorkerPool(l.textureWorkers, 256, 1*time.Second)

	return l
}

func (l *loader) Load(path string) (model.Model, error) {
	l.mu.RLock()
	if cached, ok := l.modelCache[path]; ok {
		l.mu.RUnlock()
		return cached, nil
	}
	l.mu.RUnlock()

	opts := &gwob.ObjParserOptions{}
	o, err := gwob.NewObjFromFile(path, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	dir := filepath.Dir(path)
	lib := gwob.NewMaterialLib()
	normalMaps := map[string]string{}
	if o.Mtllib != "" {
		mtlPath := filepath.Join(dir, o.Mtllib)
		raw, readErr := os.ReadFile(mtlPath)
		if readErr != nil {
			return nil, fmt.Errorf("failed to read material lib %s: %w", mtlPath, readErr)
		}
		lib, err = gwob.ReadMaterialLibFromBuf(raw, opts)
		if err != nil {
			return nil, fmt.Errorf("failed to parse material lib %s: %w", mtlPath, err)
		}
		normalMaps = scanNormalMaps(raw)
	}

	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	m, err := l.buildModel(name, dir, o, lib, normalMaps)
	if err != nil {
		return nil, err
	}

	l.mu.Lock()
	l.modelCache[path] = m
	l.mu.Unlock()

	return m, nil
}

func (l *loader) LoadBuf(name string, objData, mtlData []byte) (model.Model, error) {
	l.mu.RLock()
	if cached, ok := l.modelCache[name]; ok {
		l.mu.RUnlock()
		return cached, nil
	}
	l.mu.RUnlock()

	opts := &gwob.ObjParserOptions{}
	o, err := gwob.NewObjFromBuf(name, objData, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %q: %w", name, err)
	}

	lib := gwob.NewMaterialLib()
	normalMaps := map[string]string{}
	if len(mtlData) > 0 {
		lib, err = gwob.ReadMaterialLibFromBuf(mtlData, opts)
		if err != nil {
			return nil, fmt.Errorf("failed to parse material lib for %q: %w", name, err)
		}
		normalMaps = scanNormalMaps(mtlData)
	}

	m, err := l.buildModel(name, "", o, lib, normalMaps)
	if err != nil {
		return nil, err
	}

	l.mu.Lock()
	l.modelCache[name] = m
	l.mu.Unlock()

	return m, nil
}

func (l *loader) LoadMaterial(name, diffusePath, normalPath string) (model.Material, error) {
	diffuse, err := decodeTexture(diffusePath, true)
	if err != nil {
		return nil, fmt.Errorf("failed to decode diffuse texture for %q: %w", name, err)
	}
	normal, err := decodeTexture(normalPath, false)
	if err != nil {
		return nil, fmt.Errorf("failed to decode normal texture for %q: %w", name, err)
	}
	return l.initMaterialGPU(name, name+"_material", diffuse, normal)
}

func (l *loader) Get(name string) model.Model {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.modelCache[name]
}

func (l *loader) Models() map[string]model.Model {
	l.mu.RLock()
	defer l.mu.RUnlock()

	result := make(map[string]model.Model, len(l.modelCache))
	for k, v := range l.modelCache {
		result[k] = v
	}
	return result
}

// buildModel converts a parsed OBJ into an engine-ready Model: deinterleaves
// the vertex stream, computes tangent frames, decodes material textures in
// parallel, and uploads mesh and material resources when a Renderer is
// attached.
//
// Parameters:
//   - name: the model name
//   - dir: the directory texture file names are resolved against
//   - o: the parsed OBJ
//   - lib: the parsed material lib
//   - normalMaps: material name to normal map file name
//
// Returns:
//   - model.Model: the engine-ready Model
//   - error: error if texture decoding or GPU resource creation fails
func (l *loader) buildModel(name, dir string, o *gwob.Obj, lib gwob.MaterialLib, normalMaps map[string]string) (model.Model, error) {
	vertices := buildVertices(o)
	indices := make([]uint32, len(o.Indices))
	for i, idx := range o.Indices {
		indices[i] = uint32(idx)
	}
	ComputeTangents(vertices, indices)

	// Collect materials in first-use order across groups.
	matIndex := make(map[string]int)
	var matOrder []string
	for _, g := range o.Groups {
		if g.IndexCount == 0 {
			continue
		}
		if _, ok := matIndex[g.Usemtl]; !ok {
			matIndex[g.Usemtl] = len(matOrder)
			matOrder = append(matOrder, g.Usemtl)
		}
	}

	// Decode every referenced texture in parallel. Each task writes only its
	// own slot, so a WaitGroup barrier is the only synchronization needed.
	diffuse := make([]common.TextureStagingData, len(matOrder))
	normal := make([]common.TextureStagingData, len(matOrder))
	errs := make([]error, len(matOrder))

	var wg sync.WaitGroup
	taskID := 0
	for i, mtlName := range matOrder {
		diffusePath := ""
		if gm, ok := lib.Lib[mtlName]; ok && gm.MapKd != "" {
			diffusePath = filepath.Join(dir, gm.MapKd)
		}
		normalPath := ""
		if file := normalMaps[mtlName]; file != "" {
			normalPath = filepath.Join(dir, file)
		}

		wg.Add(1)
		slot := i
		dp, np := diffusePath, normalPath
		l.texturePool.SubmitTask(worker.Task{
			ID: taskID,
			Do: func() (any, error) {
				defer wg.Done()

				d, err := decodeTexture(dp, true)
				if err != nil {
					errs[slot] = err
					return nil, err
				}
				n, err := decodeTexture(np, false)
				if err != nil {
					errs[slot] = err
					return nil, err
				}
				diffuse[slot] = d
				normal[slot] = n
				return nil, nil
			},
		})
		taskID++
	}
	wg.Wait()

	for i, err := range errs {
		if err != nil {
			return nil, fmt.Errorf("failed to decode textures for material %q: %w", matOrder[i], err)
		}
	}

	materials := make([]model.Material, len(matOrder))
	for i, mtlName := range matOrder {
		matName := common.Coalesce(mtlName, fmt.Sprintf("%s_material_%d", name, i))
		mat, err := l.initMaterialGPU(matName, fmt.Sprintf("%s_material_%d", name, i), diffuse[i], normal[i])
		if err != nil {
			return nil, err
		}
		materials[i] = mat
	}

	// Each mesh shares the full vertex stream and indexes its own slice of it.
	vertexBytes := model.MarshalVertices(vertices)
	var meshes []model.Mesh
	for gi, g := range o.Groups {
		if g.IndexCount == 0 {
			continue
		}
		groupIndices := indices[g.IndexBegin : g.IndexBegin+g.IndexCount]

		provider := bind_group_provider.NewBindGroupProvider(fmt.Sprintf("%s_mesh_%d", name, gi))
		if l.renderer != nil {
			if err := l.renderer.InitMeshBuffers(provider, vertexBytes, model.MarshalIndices(groupIndices), len(groupIndices)); err != nil {
				return nil, fmt.Errorf("failed to init mesh buffers for %q group %d: %w", name, gi, err)
			}
		}

		meshName := common.Coalesce(g.Name, fmt.Sprintf("%s_%d", name, gi))
		meshes = append(meshes, model.NewMesh(meshName, provider, matIndex[g.Usemtl]))
	}

	return model.NewModel(
		model.WithName(name),
		model.WithMeshes(meshes),
		model.WithMaterials(materials),
	), nil
}

// initMaterialGPU creates the texture views, samplers, and bind group for one
// material and wraps them in a model.Material. Without a Renderer the
// material is built with an empty provider.
func (l *loader) initMaterialGPU(matName, providerName string, diffuse, normal common.TextureStagingData) (model.Material, error) {
	provider := bind_group_provider.NewBindGroupProvider(providerName)

	if l.renderer != nil {
		if err := l.renderer.InitTextureView(provider, 0, diffuse); err != nil {
			return nil, fmt.Errorf("failed to init diffuse texture for %q: %w", matName, err)
		}
		if err := l.renderer.InitSampler(provider, 1, defaultSamplerStagingData()); err != nil {
			return nil, fmt.Errorf("failed to init diffuse sampler for %q: %w", matName, err)
		}
		if err := l.renderer.InitTextureView(provider, 2, normal); err != nil {
			return nil, fmt.Errorf("failed to init normal texture for %q: %w", matName, err)
		}
		if err := l.renderer.InitSampler(provider, 3, defaultSamplerStagingData()); err != nil {
			return nil, fmt.Errorf("failed to init normal sampler for %q: %w", matName, err)
		}
		if err := l.renderer.InitBindGroup(provider, model.MaterialBindGroupLayoutDescriptor()); err != nil {
			return nil, fmt.Errorf("failed to init material bind group for %q: %w", matName, err)
		}
	}

	return model.NewMaterial(matName, provider), nil
}

// buildVertices deinterleaves the OBJ vertex stream into GPU vertices.
// The V texture coordinate is flipped because OBJ places the origin at the
// bottom-left while texture space places it at the top-left.
func buildVertices(o *gwob.Obj) []model.GPUVertex {
	stride := o.StrideSize / 4
	posOff := o.StrideOffsetPosition / 4
	texOff := o.StrideOffsetTexture / 4
	normOff := o.StrideOffsetNormal / 4

	count := len(o.Coord) / stride
	vertices := make([]model.GPUVertex, count)
	for i := range vertices {
		base := i * stride
		v := &vertices[i]
		v.Position = [3]float32{o.Coord[base+posOff], o.Coord[base+posOff+1], o.Coord[base+posOff+2]}
		if o.TextCoordFound {
			v.TexCoord = [2]float32{o.Coord[base+texOff], 1.0 - o.Coord[base+texOff+1]}
		}
		if o.NormCoordFound {
			v.Normal = [3]float32{o.Coord[base+normOff], o.Coord[base+normOff+1], o.Coord[base+normOff+2]}
		}
	}
	return vertices
}

// decodeTexture decodes an image file into staging data. An empty path yields
// a 1x1 fallback: white for diffuse textures, a flat tangent-space normal
// (pointing straight out of the surface) for normal maps.
func decodeTexture(path string, srgb bool) (common.TextureStagingData, error) {
	if path == "" {
		pixel := [4]byte{255, 255, 255, 255}
		if !srgb {
			pixel = [4]byte{128, 128, 255, 255}
		}
		return common.TextureStagingData{Pixels: pixel[:], Width: 1, Height: 1, Srgb: srgb}, nil
	}

	tex := &common.ImportedTexture{Path: path}
	pixels, width, height, err := tex.Decode()
	if err != nil {
		return common.TextureStagingData{}, err
	}
	return common.TextureStagingData{Pixels: pixels, Width: width, Height: height, Srgb: srgb}, nil
}

// defaultSamplerStagingData returns the linear/repeat sampler configuration
// used for all material textures.
func defaultSamplerStagingData() common.SamplerStagingData {
	return common.SamplerStagingData{
		AddressModeU:  wgpu.AddressModeRepeat,
		AddressModeV:  wgpu.AddressModeRepeat,
		AddressModeW:  wgpu.AddressModeRepeat,
		MagFilter:     wgpu.FilterModeLinear,
		MinFilter:     wgpu.FilterModeLinear,
		MipmapFilter:  wgpu.MipmapFilterModeLinear,
		LodMinClamp:   0,
		LodMaxClamp:   32,
		MaxAnisotropy: 1,
	}
}
