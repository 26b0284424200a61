package systems

import (
	"fmt"

	"github.com/spaghettifunk/prisma/engine/core"
	"github.com/spaghettifunk/prisma/engine/math"
	"github.com/spaghettifunk/prisma/engine/renderer/metadata"
)

type GeometrySystem struct {
	Config *GeometrySystemConfig
	// Array of registered geometries.
	RegisteredGeometries []*metadata.GeometryReference
	DefaultGeometry      *metadata.Geometry
}

/** @brief The geometry system configuration. */
type GeometrySystemConfig struct {
	/** @brief The maximum number of geometries that can be registered at once. */
	MaxGeometryCount uint32
}

func NewGeometrySystem(config *GeometrySystemConfig) (*GeometrySystem, error) {
	if config.MaxGeometryCount == 0 {
		err := fmt.Errorf("func NewGeometrySystem - config.MaxGeometryCount must be > 0")
		core.LogError(err.Error())
		return nil, err
	}
	gs := &GeometrySystem{
		Config:               config,
		RegisteredGeometries: make([]*metadata.GeometryReference, config.MaxGeometryCount),
	}

	// Invalidate all geometries in the array.
	for i := uint32(0); i < config.MaxGeometryCount; i++ {
		gs.RegisteredGeometries[i] = &metadata.GeometryReference{
			Geometry: &metadata.Geometry{
				ID:         metadata.InvalidID,
				Generation: metadata.InvalidIDUint16,
			},
		}
	}

	if err := gs.createDefaultGeometry(); err != nil {
		core.LogError("failed to create default geometry: %s", err.Error())
		return nil, err
	}

	return gs, nil
}

func (gs *GeometrySystem) Shutdown() error {
	return nil
}

/**
 * @brief Acquires an existing geometry by id.
 */
func (gs *GeometrySystem) AcquireByID(id uint32) (*metadata.Geometry, error) {
	if id != metadata.InvalidID && gs.RegisteredGeometries[id].Geometry.ID != metadata.InvalidID {
		gs.RegisteredGeometries[id].ReferenceCount++
		return gs.RegisteredGeometries[id].Geometry, nil
	}
	err := fmt.Errorf("func GeometrySystem.AcquireByID cannot load invalid geometry id")
	core.LogError(err.Error())
	return nil, err
}

/**
 * @brief Registers a new geometry from the provided config and acquires it.
 */
func (gs *GeometrySystem) AcquireFromConfig(config *metadata.GeometryConfig, autoRelease bool) (*metadata.Geometry, error) {
	for i := uint32(0); i < gs.Config.MaxGeometryCount; i++ {
		ref := gs.RegisteredGeometries[i]
		if ref.Geometry.ID == metadata.InvalidID {
			ref.AutoRelease = autoRelease
			ref.ReferenceCount = 1
			g := ref.Geometry
			g.ID = i
			g.Generation = 0
			g.Name = config.Name
			g.Vertices = config.Vertices
			g.Indices = config.Indices
			g.Center = config.Center
			g.Extents = math.Extents3D{Min: config.MinExtents, Max: config.MaxExtents}
			return g, nil
		}
	}

	err := fmt.Errorf("unable to obtain free slot for geometry. Adjust configuration to allow more")
	core.LogError(err.Error())
	return nil, err
}

/**
 * @brief Releases a reference to the provided geometry. The slot is
 * freed once the reference count reaches zero on an auto-release geometry.
 */
func (gs *GeometrySystem) Release(geometry *metadata.Geometry) {
	if geometry == nil || geometry.ID == metadata.InvalidID {
		core.LogWarn("GeometrySystem.Release cannot release invalid geometry. Nothing was done.")
		return
	}
	ref := gs.RegisteredGeometries[geometry.ID]
	if ref.ReferenceCount > 0 {
		ref.ReferenceCount--
	}
	if ref.ReferenceCount < 1 && ref.AutoRelease {
		ref.Geometry.ID = metadata.InvalidID
		ref.Geometry.Generation = metadata.InvalidIDUint16
		ref.Geometry.Vertices = nil
		ref.Geometry.Indices = nil
	}
}

func (gs *GeometrySystem) GetDefault() *metadata.Geometry {
	return gs.DefaultGeometry
}

func (gs *GeometrySystem) createDefaultGeometry() error {
	config, err := GenerateCubeConfig(1.0, 1.0, 1.0, metadata.DefaultGeometryName)
	if err != nil {
		return err
	}
	g, err := gs.AcquireFromConfig(config, false)
	if err != nil {
		return err
	}
	gs.DefaultGeometry = g
	return nil
}

/**
 * @brief Generates a flat x/z plane centered on the origin, subdivided
 * into the given number of segments per axis. All normals point up.
 */
func GeneratePlaneConfig(width, depth float32, xSegmentCount, zSegmentCount uint32, name string) (*metadata.GeometryConfig, error) {
	if width == 0 {
		core.LogWarn("Width must be nonzero. Defaulting to one.")
		width = 1.0
	}
	if depth == 0 {
		core.LogWarn("Depth must be nonzero. Defaulting to one.")
		depth = 1.0
	}
	if xSegmentCount < 1 {
		xSegmentCount = 1
	}
	if zSegmentCount < 1 {
		zSegmentCount = 1
	}

	vertexCount := (xSegmentCount + 1) * (zSegmentCount + 1)
	indexCount := xSegmentCount * zSegmentCount * 6

	config := &metadata.GeometryConfig{
		VertexCount: vertexCount,
		Vertices:    make([]math.Vertex3D, vertexCount),
		IndexCount:  indexCount,
		Indices:     make([]uint32, indexCount),
	}

	segWidth := width / float32(xSegmentCount)
	segDepth := depth / float32(zSegmentCount)
	halfWidth := width * 0.5
	halfDepth := depth * 0.5

	for z := uint32(0); z <= zSegmentCount; z++ {
		for x := uint32(0); x <= xSegmentCount; x++ {
			v := &config.Vertices[z*(xSegmentCount+1)+x]
			v.Position = math.NewVec3(float32(x)*segWidth-halfWidth, 0, float32(z)*segDepth-halfDepth)
			v.Normal = math.NewVec3Up()
		}
	}

	i := uint32(0)
	for z := uint32(0); z < zSegmentCount; z++ {
		for x := uint32(0); x < xSegmentCount; x++ {
			v0 := z*(xSegmentCount+1) + x
			v1 := v0 + 1
			v2 := v0 + xSegmentCount + 1
			v3 := v2 + 1
			config.Indices[i+0] = v0
			config.Indices[i+1] = v2
			config.Indices[i+2] = v1
			config.Indices[i+3] = v1
			config.Indices[i+4] = v2
			config.Indices[i+5] = v3
			i += 6
		}
	}

	extents, center := math.GeometryCalculateExtents(config.Vertices)
	config.MinExtents = extents.Min
	config.MaxExtents = extents.Max
	config.Center = center

	if len(name) > 0 {
		config.Name = name
	} else {
		config.Name = metadata.DefaultGeometryName
	}

	return config, nil
}

/**
 * @brief Generates an axis-aligned cube centered on the origin, 4
 * vertices and 2 triangles per face, each face carrying its own
 * outward normal.
 */
func GenerateCubeConfig(width, height, depth float32, name string) (*metadata.GeometryConfig, error) {
	if width == 0 {
		core.LogWarn("Width must be nonzero. Defaulting to one.")
		width = 1.0
	}
	if height == 0 {
		core.LogWarn("Height must be nonzero. Defaulting to one.")
		height = 1.0
	}
	if depth == 0 {
		core.LogWarn("Depth must be nonzero. Defaulting to one.")
		depth = 1
	}

	config := &metadata.GeometryConfig{
		VertexCount: 4 * 6, // 4 verts per side, 6 sides
		Vertices:    make([]math.Vertex3D, 4*6),
		IndexCount:  6 * 6, // 6 indices per side, 6 sides
		Indices:     make([]uint32, 6*6),
	}

	min_x := -width * 0.5
	min_y := -height * 0.5
	min_z := -depth * 0.5
	max_x := width * 0.5
	max_y := height * 0.5
	max_z := depth * 0.5

	config.MinExtents = math.NewVec3(min_x, min_y, min_z)
	config.MaxExtents = math.NewVec3(max_x, max_y, max_z)
	// Always 0 since min/max of each axis are -/+ half of the size.
	config.Center = math.NewVec3Zero()

	verts := config.Vertices

	// Front face
	verts[(0*4)+0].Position = math.NewVec3(min_x, min_y, max_z)
	verts[(0*4)+1].Position = math.NewVec3(max_x, max_y, max_z)
	verts[(0*4)+2].Position = math.NewVec3(min_x, max_y, max_z)
	verts[(0*4)+3].Position = math.NewVec3(max_x, min_y, max_z)
	for i := 0; i < 4; i++ {
		verts[(0*4)+i].Normal = math.NewVec3(0.0, 0.0, 1.0)
	}

	// Back face
	verts[(1*4)+0].Position = math.NewVec3(max_x, min_y, min_z)
	verts[(1*4)+1].Position = math.NewVec3(min_x, max_y, min_z)
	verts[(1*4)+2].Position = math.NewVec3(max_x, max_y, min_z)
	verts[(1*4)+3].Position = math.NewVec3(min_x, min_y, min_z)
	for i := 0; i < 4; i++ {
		verts[(1*4)+i].Normal = math.NewVec3(0.0, 0.0, -1.0)
	}

	// Left face
	verts[(2*4)+0].Position = math.NewVec3(min_x, min_y, min_z)
	verts[(2*4)+1].Position = math.NewVec3(min_x, max_y, max_z)
	verts[(2*4)+2].Position = math.NewVec3(min_x, max_y, min_z)
	verts[(2*4)+3].Position = math.NewVec3(min_x, min_y, max_z)
	for i := 0; i < 4; i++ {
		verts[(2*4)+i].Normal = math.NewVec3(-1.0, 0.0, 0.0)
	}

	// Right face
	verts[(3*4)+0].Position = math.NewVec3(max_x, min_y, max_z)
	verts[(3*4)+1].Position = math.NewVec3(max_x, max_y, min_z)
	verts[(3*4)+2].Position = math.NewVec3(max_x, max_y, max_z)
	verts[(3*4)+3].Position = math.NewVec3(max_x, min_y, min_z)
	for i := 0; i < 4; i++ {
		verts[(3*4)+i].Normal = math.NewVec3(1.0, 0.0, 0.0)
	}

	// Bottom face
	verts[(4*4)+0].Position = math.NewVec3(max_x, min_y, max_z)
	verts[(4*4)+1].Position = math.NewVec3(min_x, min_y, min_z)
	verts[(4*4)+2].Position = math.NewVec3(max_x, min_y, min_z)
	verts[(4*4)+3].Position = math.NewVec3(min_x, min_y, max_z)
	for i := 0; i < 4; i++ {
		verts[(4*4)+i].Normal = math.NewVec3(0.0, -1.0, 0.0)
	}

	// Top face
	verts[(5*4)+0].Position = math.NewVec3(min_x, max_y, max_z)
	verts[(5*4)+1].Position = math.NewVec3(max_x, max_y, min_z)
	verts[(5*4)+2].Position = math.NewVec3(min_x, max_y, min_z)
	verts[(5*4)+3].Position = math.NewVec3(max_x, max_y, max_z)
	for i := 0; i < 4; i++ {
		verts[(5*4)+i].Normal = math.NewVec3(0.0, 1.0, 0.0)
	}

	for i := 0; i < 6; i++ {
		v_offset := i * 4
		i_offset := i * 6
		config.Indices[i_offset+0] = uint32(v_offset + 0)
		config.Indices[i_offset+1] = uint32(v_offset + 1)
		config.Indices[i_offset+2] = uint32(v_offset + 2)
		config.Indices[i_offset+3] = uint32(v_offset + 0)
		config.Indices[i_offset+4] = uint32(v_offset + 3)
		config.Indices[i_offset+5] = uint32(v_offset + 1)
	}

	if len(name) > 0 {
		config.Name = name
	} else {
		config.Name = metadata.DefaultGeometryName
	}

	return config, nil
}
