package render

import (
	"math"

	"github.com/taigrr/facet/pkg/math3d"
)

// Camera holds the projection parameters and the eye position.
//
// The camera always looks down +Z with +Y up. Position does not move the
// scene; it is the eye point the backface test measures against. Place the
// mesh in front of the camera with Mesh.Translation.
type Camera struct {
	// Position in world space
	Position math3d.Vec3

	// Projection parameters
	FOV         float64 // Vertical field of view in radians
	AspectRatio float64 // Width / Height
	Near        float64 // Near plane distance
	Far         float64 // Far plane distance

	// Cached projection (computed on demand)
	projMatrix math3d.Mat4
	projDirty  bool
}

// NewCamera creates a camera at the origin with a 60 degree field of view.
func NewCamera() *Camera {
	return &Camera{
		Position:    math3d.Zero3(),
		FOV:         math.Pi / 3, // 60 degrees
		AspectRatio: 1,
		Near:        0.1,
		Far:         100,
		projDirty:   true,
	}
}

// SetPosition sets the camera position.
func (c *Camera) SetPosition(pos math3d.Vec3) {
	c.Position = pos
}

// SetFOV sets the field of view (in radians).
func (c *Camera) SetFOV(fov float64) {
	c.FOV = fov
	c.projDirty = true
}

// SetAspectRatio sets the aspect ratio.
func (c *Camera) SetAspectRatio(aspect float64) {
	c.AspectRatio = aspect
	c.projDirty = true
}

// SetViewport sets the aspect ratio from a pixel size.
func (c *Camera) SetViewport(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	c.SetAspectRatio(float64(width) / float64(height))
}

// SetClipPlanes sets the near and far planes.
func (c *Camera) SetClipPlanes(near, far float64) {
	c.Near = near
	c.Far = far
	c.projDirty = true
}

// ProjectionMatrix returns the projection matrix.
func (c *Camera) ProjectionMatrix() math3d.Mat4 {
	if c.projDirty {
		c.projMatrix = math3d.Perspective(c.FOV, c.AspectRatio, c.Near, c.Far)
		c.projDirty = false
	}
	return c.projMatrix
}

// IsBackface reports whether a face with the given normal, passing through
// point, is turned away from the camera. Edge-on faces are not back faces.
func (c *Camera) IsBackface(normal, point math3d.Vec3) bool {
	return normal.Dot(c.Position.Sub(point)) < 0
}

// WorldToScreen projects a world-space point to pixel coordinates in a
// width x height viewport. +Y points down on screen.
//
// Nothing is clipped: points behind the camera or on the camera plane still
// produce coordinates, possibly far outside the viewport.
func (c *Camera) WorldToScreen(p math3d.Vec3, width, height int) math3d.Vec2 {
	ndc := c.ProjectionMatrix().Project(math3d.V4FromV3(p, 1))

	halfW := float64(width) / 2
	halfH := float64(height) / 2
	return math3d.V2(ndc.X*halfW+halfW, -ndc.Y*halfH+halfH)
}
