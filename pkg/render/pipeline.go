package render

import (
	"cmp"
	"fmt"
	"slices"
	"strings"

	"github.com/taigrr/facet/pkg/math3d"
	"github.com/taigrr/facet/pkg/models"
)

// RenderMode selects what Rasterize draws for each triangle.
type RenderMode int

const (
	RenderWireframeVertices RenderMode = iota // Outlines plus vertex markers
	RenderWireframe                           // Outlines only
	RenderFilled                              // Flat-shaded fill
	RenderFilledWireframe                     // Fill plus outlines
	RenderFilledVertices                      // Fill plus vertex markers
)

var renderModeNames = [...]string{
	RenderWireframeVertices: "wireframe-vertices",
	RenderWireframe:         "wireframe",
	RenderFilled:            "filled",
	RenderFilledWireframe:   "filled-wireframe",
	RenderFilledVertices:    "filled-vertices",
}

func (m RenderMode) String() string {
	if m < 0 || int(m) >= len(renderModeNames) {
		return fmt.Sprintf("RenderMode(%d)", int(m))
	}
	return renderModeNames[m]
}

// ParseRenderMode parses a mode name as printed by String.
func ParseRenderMode(s string) (RenderMode, error) {
	for i, name := range renderModeNames {
		if strings.EqualFold(s, name) {
			return RenderMode(i), nil
		}
	}
	return 0, fmt.Errorf("unknown render mode %q (want one of %s)", s, strings.Join(renderModeNames[:], ", "))
}

func (m RenderMode) fills() bool {
	return m == RenderFilled || m == RenderFilledWireframe || m == RenderFilledVertices
}

func (m RenderMode) outlines() bool {
	return m == RenderWireframe || m == RenderWireframeVertices || m == RenderFilledWireframe
}

func (m RenderMode) marksVertices() bool {
	return m == RenderWireframeVertices || m == RenderFilledVertices
}

// CullMode selects whether back faces are discarded.
type CullMode int

const (
	CullBackface CullMode = iota
	CullNone
)

func (c CullMode) String() string {
	if c == CullNone {
		return "none"
	}
	return "backface"
}

// FrameConfig is everything a frame needs besides the mesh and the target.
// It is read once at the start of each frame.
type FrameConfig struct {
	Mode   RenderMode
	Cull   CullMode
	Light  Light
	Camera *Camera

	// Viewport size in pixels
	Width, Height int

	Wireframe Wireframe
}

// DefaultFrameConfig returns a filled, backface-culled configuration for a
// width x height viewport.
func DefaultFrameConfig(width, height int) FrameConfig {
	cam := NewCamera()
	cam.SetViewport(width, height)
	return FrameConfig{
		Mode:      RenderFilled,
		Cull:      CullBackface,
		Light:     DefaultLight(),
		Camera:    cam,
		Width:     width,
		Height:    height,
		Wireframe: DefaultWireframe(),
	}
}

// Triangle is a projected, shaded face ready to rasterize.
type Triangle struct {
	Points   [3]math3d.Vec2 // Screen space, +Y down
	Color    Color          // Shaded face color
	AvgDepth float64        // Mean world-space z of the corners
}

// FrameStats counts what happened to the faces of one frame.
type FrameStats struct {
	Faces  int // Faces in the mesh
	Culled int // Faces dropped as back faces
	Drawn  int // Triangles handed to the rasterizer
}

// Pipeline turns a mesh into triangles and triangles into pixels.
// It keeps one triangle slice that is reused across frames, so a Pipeline
// must not be shared between goroutines.
type Pipeline struct {
	triangles []Triangle
	stats     FrameStats
}

// NewPipeline creates a pipeline.
func NewPipeline() *Pipeline {
	return &Pipeline{
		triangles: make([]Triangle, 0, 64),
	}
}

// Stats returns the counts of the last Transform.
func (p *Pipeline) Stats() FrameStats {
	return p.stats
}

// Transform moves every face of mesh into world space, culls back faces
// according to cfg.Cull, projects the rest into the cfg viewport and shades
// them with cfg.Light.
//
// The returned slice is owned by the pipeline and is only valid until the
// next call. A face that references a missing vertex aborts the frame with an
// error wrapping models.ErrInvalidMeshReference.
func (p *Pipeline) Transform(mesh *models.Mesh, cfg FrameConfig) ([]Triangle, error) {
	p.triangles = p.triangles[:0]
	p.stats = FrameStats{Faces: len(mesh.Faces)}

	cam := cfg.Camera
	if cam == nil {
		return nil, fmt.Errorf("transform: no camera")
	}
	world := math3d.WorldMatrix(mesh.Scale, mesh.Rotation, mesh.Translation)

	for i, face := range mesh.Faces {
		corners, err := mesh.FaceVertices(i)
		if err != nil {
			p.triangles = p.triangles[:0]
			return nil, fmt.Errorf("transform %s: %w", mesh.Name, err)
		}

		var v [3]math3d.Vec3
		for k, c := range corners {
			v[k] = world.MulVec4(math3d.V4FromV3(c, 1)).Vec3()
		}

		normal := FaceNormal(v[0], v[1], v[2])
		if cfg.Cull == CullBackface && cam.IsBackface(normal, v[0]) {
			p.stats.Culled++
			continue
		}

		tri := Triangle{
			AvgDepth: (v[0].Z + v[1].Z + v[2].Z) / 3,
			Color:    ApplyIntensity(Color(face.Color), cfg.Light.Intensity(normal)),
		}
		for k := range v {
			tri.Points[k] = cam.WorldToScreen(v[k], cfg.Width, cfg.Height)
		}
		p.triangles = append(p.triangles, tri)
	}

	p.stats.Drawn = len(p.triangles)
	return p.triangles, nil
}

// FaceNormal returns the unit normal of triangle abc, computed from the
// normalized edges a->b and a->c. Degenerate triangles have a zero normal.
func FaceNormal(a, b, c math3d.Vec3) math3d.Vec3 {
	ab := b.Sub(a).Normalize()
	ac := c.Sub(a).Normalize()
	return ab.Cross(ac).Normalize()
}

// SortByDepth orders triangles farthest first. Triangles at equal depth keep
// their relative order.
func SortByDepth(tris []Triangle) {
	slices.SortStableFunc(tris, func(a, b Triangle) int {
		return cmp.Compare(b.AvgDepth, a.AvgDepth)
	})
}

// Rasterize paints tris into fb in slice order according to cfg.Mode.
func (p *Pipeline) Rasterize(fb *Framebuffer, tris []Triangle, cfg FrameConfig) {
	w := cfg.Wireframe
	for _, t := range tris {
		if cfg.Mode.fills() {
			x0, y0 := t.Points[0].Round()
			x1, y1 := t.Points[1].Round()
			x2, y2 := t.Points[2].Round()
			fb.FillTriangle(x0, y0, x1, y1, x2, y2, t.Color)
		}
		if cfg.Mode.outlines() {
			w.DrawTriangle(fb, t)
		}
		if cfg.Mode.marksVertices() {
			w.DrawVertices(fb, t)
		}
	}
}

// RenderFrame runs Transform, SortByDepth and Rasterize for one frame.
// The caller clears fb beforehand and presents it afterwards. cfg's viewport
// is taken from fb.
func (p *Pipeline) RenderFrame(fb *Framebuffer, mesh *models.Mesh, cfg FrameConfig) (FrameStats, error) {
	cfg.Width, cfg.Height = fb.Width, fb.Height

	tris, err := p.Transform(mesh, cfg)
	if err != nil {
		return p.stats, err
	}
	SortByDepth(tris)
	p.Rasterize(fb, tris, cfg)

	Logger().Debug("frame",
		"mesh", mesh.Name,
		"mode", cfg.Mode,
		"cull", cfg.Cull,
		"faces", p.stats.Faces,
		"culled", p.stats.Culled,
		"drawn", p.stats.Drawn)
	return p.stats, nil
}
