// facet - software 3D renderer for the terminal
// Draws a mesh with flat shading and backface culling using half-block
// characters, or renders a single frame to PNG.
//
// Controls:
//
//	1     - Wireframe with vertex markers
//	2     - Wireframe
//	3     - Filled
//	4     - Filled with wireframe
//	5     - Filled with vertex markers
//	C/D   - Backface culling on/off
//	Space - Random spin
//	R     - Reset rotation
//	?     - Toggle HUD overlay
//	Esc   - Quit
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"math"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	uv "github.com/charmbracelet/ultraviolet"
	"github.com/taigrr/facet/pkg/animation"
	"github.com/taigrr/facet/pkg/math3d"
	"github.com/taigrr/facet/pkg/models"
	"github.com/taigrr/facet/pkg/render"
)

// Snapshot framebuffer size before -scale is applied.
const (
	snapshotWidth  = 160
	snapshotHeight = 120
)

var (
	targetFPS    = flag.Int("fps", 60, "Target FPS")
	bgColor      = flag.String("bg", "0,0,0", "Background color (R,G,B)")
	fovDegrees   = flag.Float64("fov", 60, "Vertical field of view in degrees")
	distance     = flag.Float64("distance", 5, "Distance from the camera to the model")
	modeName     = flag.String("mode", "filled", "Render mode: wireframe-vertices, wireframe, filled, filled-wireframe, filled-vertices")
	noCull       = flag.Bool("nocull", false, "Disable backface culling")
	gridStep     = flag.Int("grid", 10, "Background dot grid spacing in pixels (0 disables)")
	spin         = flag.Float64("spin", 0.01, "Constant rotation per frame on each axis (radians)")
	snapshotPath = flag.String("snapshot", "", "Render one frame to this PNG file and exit")
	snapshotScl  = flag.Int("scale", 4, "Pixel scale for -snapshot")
	watch        = flag.Bool("watch", false, "Reload the model when the file changes")
	verbose      = flag.Bool("v", false, "Debug logging to stderr")
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "facet - software 3D renderer for the terminal\n\n")
		fmt.Fprintf(os.Stderr, "Usage: facet [options] [model.obj|model.glb]\n\n")
		fmt.Fprintf(os.Stderr, "Without a model the built-in cube is shown.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nControls:\n")
		fmt.Fprintf(os.Stderr, "  1-5         - Render mode\n")
		fmt.Fprintf(os.Stderr, "  C/D         - Backface culling on/off\n")
		fmt.Fprintf(os.Stderr, "  Space       - Random spin\n")
		fmt.Fprintf(os.Stderr, "  R           - Reset rotation\n")
		fmt.Fprintf(os.Stderr, "  ?           - Toggle HUD overlay\n")
		fmt.Fprintf(os.Stderr, "  Esc         - Quit\n")
	}
	flag.Parse()

	if *verbose {
		render.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	if err := run(flag.Arg(0)); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// options is the parsed, validated form of the flags.
type options struct {
	modelPath string
	bg        render.Color
	mode      render.RenderMode
	cull      render.CullMode
	fov       float64 // Radians
	distance  float64
	fps       int
	spin      float64
	grid      int
}

func parseOptions(modelPath string) (options, error) {
	bg, err := parseBG(*bgColor)
	if err != nil {
		return options{}, err
	}
	mode, err := render.ParseRenderMode(*modeName)
	if err != nil {
		return options{}, err
	}
	if *fovDegrees <= 0 || *fovDegrees >= 180 {
		return options{}, fmt.Errorf("fov %v: want (0, 180) degrees", *fovDegrees)
	}
	if *targetFPS <= 0 {
		return options{}, fmt.Errorf("fps %d: must be positive", *targetFPS)
	}

	cull := render.CullBackface
	if *noCull {
		cull = render.CullNone
	}
	return options{
		modelPath: modelPath,
		bg:        bg,
		mode:      mode,
		cull:      cull,
		fov:       *fovDegrees * math.Pi / 180,
		distance:  *distance,
		fps:       *targetFPS,
		spin:      *spin,
		grid:      max(*gridStep, 0),
	}, nil
}

// loadMesh loads the model at path, or returns the cube for an empty path.
// Loaded models are centered and scaled to the size of the cube.
func loadMesh(path string, distance float64) (*models.Mesh, error) {
	var mesh *models.Mesh
	if path == "" {
		mesh = models.Cube()
	} else {
		m, err := models.Load(path)
		if err != nil {
			return nil, fmt.Errorf("load model: %w", err)
		}
		m.Normalize(2)
		mesh = m
	}
	mesh.Translation = math3d.V3(0, 0, distance)
	return mesh, nil
}

// frameConfig builds the render configuration for a viewport.
func (o options) frameConfig(width, height int) render.FrameConfig {
	cfg := render.DefaultFrameConfig(width, height)
	cfg.Mode = o.mode
	cfg.Cull = o.cull
	cfg.Camera.SetFOV(o.fov)
	return cfg
}

// paintBackground resets fb to the background and its dot grid.
func (o options) paintBackground(fb *render.Framebuffer) {
	fb.Clear(o.bg)
	fb.DrawGrid(o.grid, render.ColorGrid)
}

// writeSnapshot renders mesh once and saves it as a PNG.
func writeSnapshot(mesh *models.Mesh, o options, path string, scale int) (render.FrameStats, error) {
	fb := render.NewFramebuffer(snapshotWidth, snapshotHeight)
	o.paintBackground(fb)

	stats, err := render.NewPipeline().RenderFrame(fb, mesh, o.frameConfig(fb.Width, fb.Height))
	if err != nil {
		return stats, fmt.Errorf("render: %w", err)
	}
	if err := fb.SavePNGScaled(path, scale); err != nil {
		return stats, fmt.Errorf("snapshot: %w", err)
	}
	return stats, nil
}

func run(modelPath string) error {
	opts, err := parseOptions(modelPath)
	if err != nil {
		return err
	}

	mesh, err := loadMesh(opts.modelPath, opts.distance)
	if err != nil {
		return err
	}
	name := "cube"
	if opts.modelPath != "" {
		name = filepath.Base(opts.modelPath)
	}

	if *snapshotPath != "" {
		// Pose after one second of spin
		mesh.Rotation = math3d.V3(opts.spin, opts.spin, opts.spin).Scale(float64(opts.fps))
		stats, err := writeSnapshot(mesh, opts, *snapshotPath, *snapshotScl)
		if err != nil {
			return err
		}
		fmt.Printf("Wrote %s (%d faces, %d drawn)\n", *snapshotPath, stats.Faces, stats.Drawn)
		return nil
	}

	// Context for clean shutdown
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var reloads <-chan *models.Mesh
	if *watch && opts.modelPath != "" {
		mw, err := newModelWatcher(opts.modelPath)
		if err != nil {
			return err
		}
		defer mw.Close()
		go mw.run(ctx)
		reloads = mw.Meshes()
	}

	return view(ctx, mesh, name, reloads, opts)
}

// view runs the interactive terminal loop until ctx is done or the user quits.
func view(ctx context.Context, mesh *models.Mesh, name string, reloads <-chan *models.Mesh, opts options) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	// Create terminal
	term := uv.DefaultTerminal()

	cols, rows, err := term.GetSize()
	if err != nil {
		return fmt.Errorf("get terminal size: %w", err)
	}

	if err := term.Start(); err != nil {
		return fmt.Errorf("start terminal: %w", err)
	}

	term.EnterAltScreen()
	term.HideCursor()
	term.Resize(cols, rows)

	cleanup := func() {
		term.ExitAltScreen()
		term.ShowCursor()
		term.Shutdown(context.Background())
	}
	defer cleanup()

	termRenderer := render.NewTerminalRenderer(term, cols, rows)
	fb := render.NewFramebuffer(termRenderer.FramebufferSize())
	cfg := opts.frameConfig(fb.Width, fb.Height)
	pipeline := render.NewPipeline()

	rotation := animation.NewRotationState(opts.fps)
	rotation.Spin = math3d.V3(opts.spin, opts.spin, opts.spin)

	state := newViewState(opts.mode, opts.cull)
	state.resize(cols, rows)

	// Event handler
	go func() {
		for ev := range term.Events() {
			switch ev := ev.(type) {
			case uv.WindowSizeEvent:
				state.resize(ev.Width, ev.Height)
			case uv.KeyPressEvent:
				if !state.apply(lookupKey(ev.MatchString)) {
					cancel()
					return
				}
			}
		}
	}()

	targetDuration := time.Second / time.Duration(opts.fps)
	fps := newFPSCounter(time.Now())
	log := render.Logger()

	for {
		select {
		case <-ctx.Done():
			return nil
		case m := <-reloads:
			m.Normalize(2)
			m.Translation = mesh.Translation
			mesh = m
			log.Info("model reloaded", "name", name, "faces", mesh.TriangleCount())
		default:
		}

		now := time.Now()
		frame := state.snapshot()

		if frame.cols != cols || frame.rows != rows {
			cols, rows = frame.cols, frame.rows
			term.Erase()
			term.Resize(cols, rows)
			termRenderer = render.NewTerminalRenderer(term, cols, rows)
			fb.Resize(termRenderer.FramebufferSize())
			cfg.Camera.SetViewport(fb.Width, fb.Height)
		}

		if frame.reset {
			rotation.Reset()
		}
		rotation.ApplyImpulse(frame.impulse.X, frame.impulse.Y, frame.impulse.Z)
		rotation.Update()
		rotation.Apply(mesh)

		cfg.Mode = frame.mode
		cfg.Cull = frame.cull

		opts.paintBackground(fb)
		stats, err := pipeline.RenderFrame(fb, mesh, cfg)
		if err != nil {
			return fmt.Errorf("render %s: %w", name, err)
		}

		fps.tick(now)
		if frame.showHUD {
			drawHUD(fb, hudLines(name, frame, stats, fps.fps))
		}

		// Display
		termRenderer.Render(fb)
		if err := termRenderer.Flush(); err != nil {
			return fmt.Errorf("flush: %w", err)
		}

		// Frame timing
		elapsed := time.Since(now)
		if elapsed < targetDuration {
			time.Sleep(targetDuration - elapsed)
		}
	}
}
