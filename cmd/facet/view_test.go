package main

import (
	"slices"
	"strings"
	"testing"
	"time"

	"github.com/taigrr/facet/pkg/math3d"
	"github.com/taigrr/facet/pkg/render"
)

func pressed(key string) func(...string) bool {
	return func(keys ...string) bool { return slices.Contains(keys, key) }
}

func TestLookupKey(t *testing.T) {
	tests := []struct {
		key  string
		want command
	}{
		{"1", cmdMode1},
		{"5", cmdMode5},
		{"c", cmdCullOn},
		{"d", cmdCullOff},
		{"space", cmdImpulse},
		{"r", cmdReset},
		{"?", cmdToggleHUD},
		{"shift+/", cmdToggleHUD},
		{"escape", cmdQuit},
		{"ctrl+c", cmdQuit},
		{"z", cmdNone},
	}

	for _, tc := range tests {
		t.Run(tc.key, func(t *testing.T) {
			if got := lookupKey(pressed(tc.key)); got != tc.want {
				t.Errorf("lookupKey(%q) = %v, want %v", tc.key, got, tc.want)
			}
		})
	}
}

func TestViewStateModes(t *testing.T) {
	v := newViewState(render.RenderFilled, render.CullBackface)

	want := []render.RenderMode{
		render.RenderWireframeVertices,
		render.RenderWireframe,
		render.RenderFilled,
		render.RenderFilledWireframe,
		render.RenderFilledVertices,
	}
	for i, cmd := range []command{cmdMode1, cmdMode2, cmdMode3, cmdMode4, cmdMode5} {
		v.apply(cmd)
		if got := v.snapshot().mode; got != want[i] {
			t.Errorf("key %d: mode = %v, want %v", i+1, got, want[i])
		}
	}

	v.apply(cmdCullOff)
	if got := v.snapshot().cull; got != render.CullNone {
		t.Errorf("cull = %v after d", got)
	}
	v.apply(cmdCullOn)
	if got := v.snapshot().cull; got != render.CullBackface {
		t.Errorf("cull = %v after c", got)
	}
}

func TestViewStateOneShots(t *testing.T) {
	v := newViewState(render.RenderFilled, render.CullBackface)

	v.apply(cmdImpulse)
	v.apply(cmdToggleHUD)
	f := v.snapshot()
	if f.impulse == math3d.Zero3() {
		t.Error("impulse not recorded")
	}
	if !f.showHUD {
		t.Error("HUD not toggled on")
	}

	f = v.snapshot()
	if f.impulse != math3d.Zero3() {
		t.Error("impulse should be consumed by the first snapshot")
	}
	if !f.showHUD {
		t.Error("HUD state should persist")
	}

	v.apply(cmdImpulse)
	v.apply(cmdReset)
	f = v.snapshot()
	if !f.reset || f.impulse != math3d.Zero3() {
		t.Errorf("reset frame = %+v, want reset with no impulse", f)
	}
	if v.snapshot().reset {
		t.Error("reset should be consumed")
	}

	if v.apply(cmdQuit) {
		t.Error("apply(cmdQuit) should report false")
	}
}

func TestViewStateResize(t *testing.T) {
	v := newViewState(render.RenderFilled, render.CullBackface)
	v.resize(120, 40)
	if f := v.snapshot(); f.cols != 120 || f.rows != 40 {
		t.Errorf("size = %dx%d, want 120x40", f.cols, f.rows)
	}
}

func TestFPSCounter(t *testing.T) {
	start := time.Unix(0, 0)
	c := newFPSCounter(start)
	for i := 1; i <= 30; i++ {
		c.tick(start.Add(time.Duration(i) * time.Second / 30))
	}
	if c.fps < 29.9 || c.fps > 30.1 {
		t.Errorf("fps = %v, want 30", c.fps)
	}
}

func TestHUD(t *testing.T) {
	f := viewFrame{mode: render.RenderWireframe, cull: render.CullNone}
	lines := hudLines("cube", f, render.FrameStats{Faces: 12, Culled: 0, Drawn: 12}, 59.6)

	joined := strings.Join(lines, "\n")
	for _, want := range []string{"cube", "wireframe", "cull none", "12 tris", "60 fps"} {
		if !strings.Contains(joined, want) {
			t.Errorf("HUD %q missing %q", joined, want)
		}
	}

	fb := render.NewFramebuffer(128, 32)
	drawHUD(fb, lines)
	lit := 0
	for _, px := range fb.Pixels {
		if px == render.ColorWhite {
			lit++
		}
	}
	if lit == 0 {
		t.Error("drawHUD drew nothing")
	}
}

func TestParseBG(t *testing.T) {
	tests := []struct {
		in      string
		want    render.Color
		wantErr bool
	}{
		{"0,0,0", render.ColorBlack, false},
		{"30, 30, 40", render.RGB(30, 30, 40), false},
		{"255,0,0", render.ColorRed, false},
		{"256,0,0", 0, true},
		{"1,2", 0, true},
		{"a,b,c", 0, true},
	}

	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			got, err := parseBG(tc.in)
			if (err != nil) != tc.wantErr {
				t.Fatalf("parseBG(%q) error = %v, wantErr %v", tc.in, err, tc.wantErr)
			}
			if got != tc.want {
				t.Errorf("parseBG(%q) = %#08x, want %#08x", tc.in, uint32(got), uint32(tc.want))
			}
		})
	}
}
