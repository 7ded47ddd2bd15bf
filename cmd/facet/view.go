package main

import (
	"fmt"
	"math/rand"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/taigrr/facet/pkg/math3d"
	"github.com/taigrr/facet/pkg/render"
)

// command is a viewer action bound to a key.
type command int

const (
	cmdNone command = iota
	cmdMode1
	cmdMode2
	cmdMode3
	cmdMode4
	cmdMode5
	cmdCullOn
	cmdCullOff
	cmdImpulse
	cmdReset
	cmdToggleHUD
	cmdQuit
)

// keyBindings maps key names, as understood by uv.KeyPressEvent.MatchString,
// to commands.
var keyBindings = []struct {
	keys []string
	cmd  command
}{
	{[]string{"1"}, cmdMode1},
	{[]string{"2"}, cmdMode2},
	{[]string{"3"}, cmdMode3},
	{[]string{"4"}, cmdMode4},
	{[]string{"5"}, cmdMode5},
	{[]string{"c"}, cmdCullOn},
	{[]string{"d"}, cmdCullOff},
	{[]string{"space"}, cmdImpulse},
	{[]string{"r"}, cmdReset},
	{[]string{"?", "shift+/"}, cmdToggleHUD},
	{[]string{"escape", "ctrl+c"}, cmdQuit},
}

// lookupKey returns the command bound to the first matching key name.
func lookupKey(match func(...string) bool) command {
	for _, b := range keyBindings {
		if match(b.keys...) {
			return b.cmd
		}
	}
	return cmdNone
}

// viewState is written by the input goroutine and read once per frame by
// the render loop.
type viewState struct {
	mu sync.Mutex

	mode    render.RenderMode
	cull    render.CullMode
	showHUD bool

	// Pending until the next frame picks them up
	impulse math3d.Vec3
	reset   bool
	cols    int
	rows    int
}

// viewFrame is the per-frame copy of viewState.
type viewFrame struct {
	mode       render.RenderMode
	cull       render.CullMode
	showHUD    bool
	impulse    math3d.Vec3
	reset      bool
	cols, rows int
}

func newViewState(mode render.RenderMode, cull render.CullMode) *viewState {
	return &viewState{mode: mode, cull: cull}
}

// apply updates the state for cmd. It reports false for cmdQuit.
func (v *viewState) apply(cmd command) bool {
	v.mu.Lock()
	defer v.mu.Unlock()

	switch cmd {
	case cmdMode1, cmdMode2, cmdMode3, cmdMode4, cmdMode5:
		v.mode = render.RenderMode(cmd - cmdMode1)
	case cmdCullOn:
		v.cull = render.CullBackface
	case cmdCullOff:
		v.cull = render.CullNone
	case cmdImpulse:
		v.impulse = v.impulse.Add(math3d.V3(
			(rand.Float64()-0.5)*0.3,
			(rand.Float64()-0.5)*0.3,
			(rand.Float64()-0.5)*0.3,
		))
	case cmdReset:
		v.reset = true
		v.impulse = math3d.Zero3()
	case cmdToggleHUD:
		v.showHUD = !v.showHUD
	case cmdQuit:
		return false
	}
	return true
}

// resize records a new terminal size for the next frame.
func (v *viewState) resize(cols, rows int) {
	v.mu.Lock()
	v.cols, v.rows = cols, rows
	v.mu.Unlock()
}

// snapshot copies the state and clears one-shot requests.
func (v *viewState) snapshot() viewFrame {
	v.mu.Lock()
	defer v.mu.Unlock()

	f := viewFrame{
		mode:    v.mode,
		cull:    v.cull,
		showHUD: v.showHUD,
		impulse: v.impulse,
		reset:   v.reset,
		cols:    v.cols,
		rows:    v.rows,
	}
	v.impulse = math3d.Zero3()
	v.reset = false
	return f
}

// fpsCounter measures frames per second over one-second windows.
type fpsCounter struct {
	fps    float64
	frames int
	start  time.Time
}

func newFPSCounter(now time.Time) *fpsCounter {
	return &fpsCounter{start: now}
}

// tick counts a frame finished at now.
func (c *fpsCounter) tick(now time.Time) {
	c.frames++
	elapsed := now.Sub(c.start)
	if elapsed >= time.Second {
		c.fps = float64(c.frames) / elapsed.Seconds()
		c.frames = 0
		c.start = now
	}
}

// hudLines returns the overlay text for one frame.
func hudLines(name string, f viewFrame, stats render.FrameStats, fps float64) []string {
	return []string{
		name,
		fmt.Sprintf("%s  cull %s", f.mode, f.cull),
		fmt.Sprintf("%d tris  %d culled  %d drawn", stats.Faces, stats.Culled, stats.Drawn),
		fmt.Sprintf("%.0f fps", fps),
	}
}

// drawHUD writes lines into the top-left corner of fb.
func drawHUD(fb *render.Framebuffer, lines []string) {
	lh := render.LineHeight()
	for i, line := range lines {
		render.DrawText(fb, 1, 1+i*lh, line, render.ColorWhite)
	}
}

// parseBG parses an "R,G,B" background color.
func parseBG(s string) (render.Color, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return 0, fmt.Errorf("background %q: want R,G,B", s)
	}
	var ch [3]uint8
	for i, p := range parts {
		n, err := strconv.ParseUint(strings.TrimSpace(p), 10, 8)
		if err != nil {
			return 0, fmt.Errorf("background %q: %w", s, err)
		}
		ch[i] = uint8(n)
	}
	return render.RGB(ch[0], ch[1], ch[2]), nil
}
