package models

import (
	"fmt"
	"math"
	"path/filepath"

	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"
	"github.com/taigrr/facet/pkg/math3d"
)

// Material is the subset of a glTF PBR material the flat shader uses.
type Material struct {
	Name      string
	BaseColor [4]float64 // RGBA in 0-1 range
}

// ARGB packs the base color into a 0xAARRGGBB value.
func (m Material) ARGB() uint32 {
	return packARGB(m.BaseColor)
}

func packARGB(c [4]float64) uint32 {
	ch := func(f float64) uint32 {
		return uint32(math.Round(min(max(f, 0), 1) * 255))
	}
	return ch(c[3])<<24 | ch(c[0])<<16 | ch(c[1])<<8 | ch(c[2])
}

// GLTFLoader loads GLTF/GLB files into Mesh format.
type GLTFLoader struct {
	// DefaultColor is used for primitives without a material.
	DefaultColor uint32
}

// NewGLTFLoader creates a new GLTF loader with default options.
func NewGLTFLoader() *GLTFLoader {
	return &GLTFLoader{
		DefaultColor: DefaultFaceColor,
	}
}

// LoadGLB loads a binary GLTF (.glb) file.
func LoadGLB(path string) (*Mesh, error) {
	return NewGLTFLoader().Load(path)
}

// Load loads a GLTF or GLB file and returns a Mesh.
// All triangle primitives of all meshes are merged into one Mesh.
func (l *GLTFLoader) Load(path string) (*Mesh, error) {
	doc, err := gltf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open gltf: %w", err)
	}

	mesh, err := l.FromDocument(doc)
	if err != nil {
		return nil, err
	}
	mesh.Name = filepath.Base(path)
	return mesh, nil
}

// FromDocument converts an already decoded glTF document.
func (l *GLTFLoader) FromDocument(doc *gltf.Document) (*Mesh, error) {
	mesh := NewMesh("")
	materials := l.materials(doc)

	for _, m := range doc.Meshes {
		if err := l.processMesh(doc, m, materials, mesh); err != nil {
			return nil, fmt.Errorf("process mesh %q: %w", m.Name, err)
		}
	}

	if err := mesh.Validate(); err != nil {
		return nil, err
	}

	Logger().Debug("loaded gltf", "meshes", len(doc.Meshes), "vertices", len(mesh.Vertices), "faces", len(mesh.Faces))
	return mesh, nil
}

func (l *GLTFLoader) materials(doc *gltf.Document) []Material {
	out := make([]Material, len(doc.Materials))
	for i, m := range doc.Materials {
		out[i] = Material{Name: m.Name, BaseColor: [4]float64{1, 1, 1, 1}}
		if m.PBRMetallicRoughness != nil {
			out[i].BaseColor = m.PBRMetallicRoughness.BaseColorFactorOrDefault()
		}
	}
	return out
}

// processMesh appends the triangles of every primitive in m.
func (l *GLTFLoader) processMesh(doc *gltf.Document, m *gltf.Mesh, materials []Material, mesh *Mesh) error {
	for _, prim := range m.Primitives {
		if prim.Mode != gltf.PrimitiveTriangles && prim.Mode != 0 {
			// Skip lines and points
			continue
		}

		posIdx, ok := prim.Attributes[gltf.POSITION]
		if !ok {
			continue
		}

		positions, err := modeler.ReadPosition(doc, doc.Accessors[posIdx], nil)
		if err != nil {
			return fmt.Errorf("read positions: %w", err)
		}

		color := l.DefaultColor
		if prim.Material != nil && *prim.Material < len(materials) {
			color = materials[*prim.Material].ARGB()
		}

		// Faces are 1-based
		base := len(mesh.Vertices) + 1
		for _, p := range positions {
			mesh.Vertices = append(mesh.Vertices, math3d.V3(float64(p[0]), float64(p[1]), float64(p[2])))
		}

		var indices []uint32
		if prim.Indices != nil {
			indices, err = modeler.ReadIndices(doc, doc.Accessors[*prim.Indices], nil)
			if err != nil {
				return fmt.Errorf("read indices: %w", err)
			}
		} else {
			// Unindexed primitives list triangles sequentially
			indices = make([]uint32, len(positions))
			for i := range indices {
				indices[i] = uint32(i)
			}
		}

		// glTF front faces are counter-clockwise, which already makes
		// (B-A) x (C-A) point outward.
		for i := 0; i+2 < len(indices); i += 3 {
			mesh.Faces = append(mesh.Faces, Face{
				A:     base + int(indices[i]),
				B:     base + int(indices[i+1]),
				C:     base + int(indices[i+2]),
				Color: color,
			})
		}
	}

	return nil
}
