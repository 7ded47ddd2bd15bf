package models

import (
	"errors"
	"math"
	"testing"

	"github.com/taigrr/facet/pkg/math3d"
)

func triangleMesh() *Mesh {
	m := NewMesh("tri")
	m.Vertices = []math3d.Vec3{
		math3d.V3(0, 0, 0),
		math3d.V3(4, 0, 0),
		math3d.V3(0, 2, 6),
	}
	m.Faces = []Face{{A: 1, B: 2, C: 3, Color: 0xFF112233}}
	return m
}

func TestNewMeshUnitScale(t *testing.T) {
	m := NewMesh("x")
	if m.Scale != math3d.One3() {
		t.Errorf("Scale = %v, want (1,1,1)", m.Scale)
	}
	if m.Rotation != math3d.Zero3() || m.Translation != math3d.Zero3() {
		t.Error("Rotation and Translation should start at zero")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		face    Face
		wantErr bool
	}{
		{"in range", Face{A: 1, B: 2, C: 3}, false},
		{"zero index", Face{A: 0, B: 2, C: 3}, true},
		{"past end", Face{A: 1, B: 2, C: 4}, true},
		{"negative", Face{A: 1, B: -1, C: 3}, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m := triangleMesh()
			m.Faces = []Face{tc.face}
			err := m.Validate()
			if tc.wantErr {
				if !errors.Is(err, ErrInvalidMeshReference) {
					t.Errorf("Validate() = %v, want ErrInvalidMeshReference", err)
				}
				return
			}
			if err != nil {
				t.Errorf("Validate() = %v, want nil", err)
			}
		})
	}
}

func TestFaceVertices(t *testing.T) {
	m := triangleMesh()

	got, err := m.FaceVertices(0)
	if err != nil {
		t.Fatalf("FaceVertices(0): %v", err)
	}
	if got[1] != math3d.V3(4, 0, 0) {
		t.Errorf("corner B = %v, want (4,0,0)", got[1])
	}

	m.Faces[0].C = 9
	if _, err := m.FaceVertices(0); !errors.Is(err, ErrInvalidMeshReference) {
		t.Errorf("FaceVertices with bad index = %v, want ErrInvalidMeshReference", err)
	}
	if _, err := m.FaceVertices(5); !errors.Is(err, ErrInvalidMeshReference) {
		t.Errorf("FaceVertices(5) = %v, want ErrInvalidMeshReference", err)
	}
}

func TestBounds(t *testing.T) {
	m := triangleMesh()
	lo, hi := m.Bounds()
	if lo != math3d.V3(0, 0, 0) || hi != math3d.V3(4, 2, 6) {
		t.Errorf("Bounds() = %v, %v", lo, hi)
	}
	if c := m.Center(); c != math3d.V3(2, 1, 3) {
		t.Errorf("Center() = %v, want (2,1,3)", c)
	}
	if s := m.Size(); s != math3d.V3(4, 2, 6) {
		t.Errorf("Size() = %v, want (4,2,6)", s)
	}

	empty := NewMesh("empty")
	lo, hi = empty.Bounds()
	if lo != math3d.Zero3() || hi != math3d.Zero3() {
		t.Errorf("empty Bounds() = %v, %v", lo, hi)
	}
}

func TestNormalize(t *testing.T) {
	m := triangleMesh()
	m.Normalize(2)

	if c := m.Center(); c.Len() > 1e-12 {
		t.Errorf("Center after Normalize = %v, want origin", c)
	}
	s := m.Size()
	if got := max(s.X, s.Y, s.Z); math.Abs(got-2) > 1e-12 {
		t.Errorf("largest extent = %v, want 2", got)
	}

	t.Run("single point", func(t *testing.T) {
		p := NewMesh("p")
		p.Vertices = []math3d.Vec3{math3d.V3(3, 3, 3)}
		p.Normalize(2)
		if p.Vertices[0] != math3d.Zero3() {
			t.Errorf("vertex = %v, want origin", p.Vertices[0])
		}
	})
}

func TestClone(t *testing.T) {
	m := triangleMesh()
	m.Rotation = math3d.V3(1, 2, 3)
	clone := m.Clone()

	clone.Vertices[0] = math3d.V3(9, 9, 9)
	clone.Faces[0].Color = 0
	if m.Vertices[0] == clone.Vertices[0] {
		t.Error("Clone should have independent vertices")
	}
	if m.Faces[0].Color == 0 {
		t.Error("Clone should have independent faces")
	}
	if clone.Rotation != m.Rotation {
		t.Error("Clone should keep the transform")
	}
}
