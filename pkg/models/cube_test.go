package models

import "testing"

func TestCube(t *testing.T) {
	c := Cube()

	if c.VertexCount() != 8 {
		t.Errorf("VertexCount() = %d, want 8", c.VertexCount())
	}
	if c.TriangleCount() != 12 {
		t.Errorf("TriangleCount() = %d, want 12", c.TriangleCount())
	}
	if err := c.Validate(); err != nil {
		t.Fatalf("Validate() = %v", err)
	}

	// Every face normal points away from the center.
	for i := range c.Faces {
		v, err := c.FaceVertices(i)
		if err != nil {
			t.Fatal(err)
		}
		n := v[1].Sub(v[0]).Cross(v[2].Sub(v[0]))
		if n.Dot(v[0]) <= 0 {
			t.Errorf("face %d normal %v points inward", i, n)
		}
	}
}

func TestCubeColors(t *testing.T) {
	c := Cube()
	want := []uint32{CubeFront, CubeRight, CubeBack, CubeLeft, CubeTop, CubeBottom}
	for i, f := range c.Faces {
		if f.Color != want[i/2] {
			t.Errorf("face %d color = %#08x, want %#08x", i, f.Color, want[i/2])
		}
	}
}

func TestCubeIsACopy(t *testing.T) {
	a := Cube()
	a.Vertices[0].X = 42
	a.Faces[0].A = 7

	b := Cube()
	if b.Vertices[0].X != -1 || b.Faces[0].A != 1 {
		t.Error("Cube() should not share backing data")
	}
}
