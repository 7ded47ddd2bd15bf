// Package models provides mesh representation and loading for facet.
package models

import (
	"errors"
	"fmt"

	"github.com/taigrr/facet/pkg/math3d"
)

// ErrInvalidMeshReference is returned when a face names a vertex that does
// not exist.
var ErrInvalidMeshReference = errors.New("invalid mesh reference")

// ErrUnsupportedFormat is returned by Load for unknown file extensions.
var ErrUnsupportedFormat = errors.New("unsupported model format")

// Mesh is a triangle mesh together with its model transform.
//
// Faces index Vertices 1-based. Scale, Rotation (radians) and Translation
// feed math3d.WorldMatrix each frame; only Rotation and Translation are
// expected to change after loading.
type Mesh struct {
	Name     string
	Vertices []math3d.Vec3
	Faces    []Face

	Scale       math3d.Vec3
	Rotation    math3d.Vec3
	Translation math3d.Vec3
}

// Face is a triangle referencing three vertices by 1-based index.
// Color is packed ARGB.
type Face struct {
	A, B, C int
	Color   uint32
}

// Indices returns the face's vertex indices in order.
func (f Face) Indices() [3]int {
	return [3]int{f.A, f.B, f.C}
}

// NewMesh creates an empty mesh with unit scale.
func NewMesh(name string) *Mesh {
	return &Mesh{
		Name:     name,
		Vertices: make([]math3d.Vec3, 0),
		Faces:    make([]Face, 0),
		Scale:    math3d.One3(),
	}
}

// TriangleCount returns the number of triangles.
func (m *Mesh) TriangleCount() int {
	return len(m.Faces)
}

// VertexCount returns the number of vertices.
func (m *Mesh) VertexCount() int {
	return len(m.Vertices)
}

// Vertex returns the vertex at 1-based index i.
func (m *Mesh) Vertex(i int) (math3d.Vec3, error) {
	if i < 1 || i > len(m.Vertices) {
		return math3d.Vec3{}, fmt.Errorf("%w: vertex %d of %d", ErrInvalidMeshReference, i, len(m.Vertices))
	}
	return m.Vertices[i-1], nil
}

// FaceVertices resolves the three corners of face fi.
func (m *Mesh) FaceVertices(fi int) ([3]math3d.Vec3, error) {
	var out [3]math3d.Vec3
	if fi < 0 || fi >= len(m.Faces) {
		return out, fmt.Errorf("%w: face %d of %d", ErrInvalidMeshReference, fi, len(m.Faces))
	}
	for k, idx := range m.Faces[fi].Indices() {
		v, err := m.Vertex(idx)
		if err != nil {
			return out, fmt.Errorf("face %d: %w", fi, err)
		}
		out[k] = v
	}
	return out, nil
}

// Validate checks that every face index is in [1, len(Vertices)].
// The first offending face is reported.
func (m *Mesh) Validate() error {
	n := len(m.Vertices)
	for fi, f := range m.Faces {
		for _, idx := range f.Indices() {
			if idx < 1 || idx > n {
				return fmt.Errorf("%w: face %d references vertex %d of %d", ErrInvalidMeshReference, fi, idx, n)
			}
		}
	}
	return nil
}

// Bounds returns the axis-aligned bounding box of the untransformed vertices.
func (m *Mesh) Bounds() (lo, hi math3d.Vec3) {
	if len(m.Vertices) == 0 {
		return
	}
	lo, hi = m.Vertices[0], m.Vertices[0]
	for _, v := range m.Vertices[1:] {
		lo = lo.Min(v)
		hi = hi.Max(v)
	}
	return lo, hi
}

// Center returns the center of the bounding box.
func (m *Mesh) Center() math3d.Vec3 {
	lo, hi := m.Bounds()
	return lo.Add(hi).Scale(0.5)
}

// Size returns the dimensions of the bounding box.
func (m *Mesh) Size() math3d.Vec3 {
	lo, hi := m.Bounds()
	return hi.Sub(lo)
}

// Normalize moves the mesh center to the origin and rescales the vertices
// so the largest bounding-box dimension equals target.
func (m *Mesh) Normalize(target float64) {
	center := m.Center()
	size := m.Size()
	extent := max(size.X, size.Y, size.Z)

	s := 1.0
	if extent > 0 {
		s = target / extent
	}
	for i, v := range m.Vertices {
		m.Vertices[i] = v.Sub(center).Scale(s)
	}
}

// Clone creates a deep copy of the mesh.
func (m *Mesh) Clone() *Mesh {
	clone := &Mesh{
		Name:        m.Name,
		Vertices:    make([]math3d.Vec3, len(m.Vertices)),
		Faces:       make([]Face, len(m.Faces)),
		Scale:       m.Scale,
		Rotation:    m.Rotation,
		Translation: m.Translation,
	}
	copy(clone.Vertices, m.Vertices)
	copy(clone.Faces, m.Faces)
	return clone
}
