package render

import "github.com/taigrr/facet/pkg/math3d"

// Light is a single directional light. Direction points from the light into
// the scene.
type Light struct {
	Direction math3d.Vec3
}

// DefaultLight shines straight into the screen along +Z.
func DefaultLight() Light {
	return Light{Direction: math3d.V3(0, 0, 1)}
}

// NewLight creates a light with a normalized direction.
func NewLight(dir math3d.Vec3) Light {
	return Light{Direction: dir.Normalize()}
}

// Intensity returns how strongly a face with the given unit normal is lit,
// in [0, 1]. Faces turned toward the light get the most.
func (l Light) Intensity(normal math3d.Vec3) float64 {
	return clamp01(-normal.Dot(l.Direction))
}
