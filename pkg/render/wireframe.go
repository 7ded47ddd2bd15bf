package render

// Wireframe draws triangle outlines and vertex markers.
type Wireframe struct {
	LineColor   Color
	VertexColor Color
	MarkerSize  int // Side of the square drawn on each vertex
}

// DefaultWireframe returns white outlines with 4x4 red vertex markers.
func DefaultWireframe() Wireframe {
	return Wireframe{
		LineColor:   ColorWhite,
		VertexColor: ColorRed,
		MarkerSize:  4,
	}
}

// DrawTriangle draws the outline of t.
func (w Wireframe) DrawTriangle(fb *Framebuffer, t Triangle) {
	x0, y0 := t.Points[0].Round()
	x1, y1 := t.Points[1].Round()
	x2, y2 := t.Points[2].Round()
	fb.DrawTriangle(x0, y0, x1, y1, x2, y2, w.LineColor)
}

// DrawVertices draws a square marker centered on each corner of t.
func (w Wireframe) DrawVertices(fb *Framebuffer, t Triangle) {
	half := w.MarkerSize / 2
	for _, p := range t.Points {
		x, y := p.Round()
		fb.DrawRect(x-half, y-half, w.MarkerSize, w.MarkerSize, w.VertexColor)
	}
}
