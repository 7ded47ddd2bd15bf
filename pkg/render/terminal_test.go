package render

import (
	"image/color"
	"testing"

	uv "github.com/charmbracelet/ultraviolet"
)

// recordScreen captures SetCell calls. Other uv.Screen methods are not used
// by the renderer.
type recordScreen struct {
	uv.Screen
	cells    map[[2]int]*uv.Cell
	displays int
}

func newRecordScreen() *recordScreen {
	return &recordScreen{cells: make(map[[2]int]*uv.Cell)}
}

func (s *recordScreen) SetCell(x, y int, c *uv.Cell) {
	s.cells[[2]int{x, y}] = c
}

func (s *recordScreen) Display() error {
	s.displays++
	return nil
}

func TestFramebufferDrawHalfBlocks(t *testing.T) {
	fb := NewFramebuffer(2, 4)
	fb.SetPixel(0, 0, ColorRed)
	fb.SetPixel(0, 1, ColorBlue)
	fb.SetPixel(1, 2, ColorGreen)

	scr := newRecordScreen()
	fb.Draw(scr, uv.Rect(3, 1, 2, 2))

	if len(scr.cells) != 4 {
		t.Fatalf("drew %d cells, want 4", len(scr.cells))
	}

	top := scr.cells[[2]int{3, 1}]
	if top == nil || top.Content != "▀" {
		t.Fatalf("cell (3,1) = %+v, want half block", top)
	}
	if top.Style.Fg != ColorRed.ToRGBA() || top.Style.Bg != ColorBlue.ToRGBA() {
		t.Errorf("cell (3,1) fg/bg = %v/%v, want red/blue", top.Style.Fg, top.Style.Bg)
	}

	// second terminal row shows framebuffer rows 2 and 3
	low := scr.cells[[2]int{4, 2}]
	if low == nil || low.Style.Fg != ColorGreen.ToRGBA() || low.Style.Bg != nil {
		t.Errorf("cell (4,2) = %+v, want green over transparent", low)
	}
}

func TestFramebufferDrawClipsToBuffer(t *testing.T) {
	fb := NewFramebuffer(2, 2)
	scr := newRecordScreen()
	fb.Draw(scr, uv.Rect(0, 0, 10, 10))

	// 2 columns, 1 row of half blocks
	if len(scr.cells) != 2 {
		t.Errorf("drew %d cells, want 2", len(scr.cells))
	}
}

func TestTerminalRenderer(t *testing.T) {
	scr := newRecordScreen()
	r := NewTerminalRenderer(scr, 8, 3)

	w, h := r.FramebufferSize()
	if w != 8 || h != 6 {
		t.Fatalf("FramebufferSize = %dx%d, want 8x6", w, h)
	}

	fb := NewFramebuffer(w, h)
	fb.Clear(ColorGray)
	r.Render(fb)
	if len(scr.cells) != 24 {
		t.Errorf("rendered %d cells, want 24", len(scr.cells))
	}

	if err := r.Flush(); err != nil {
		t.Fatal(err)
	}
	if scr.displays != 1 {
		t.Errorf("Display called %d times, want 1", scr.displays)
	}
}

func TestCellColor(t *testing.T) {
	if c := cellColor(ColorTransparent); c != nil {
		t.Errorf("transparent pixel = %v, want nil", c)
	}
	want := color.RGBA{R: 0x12, G: 0x34, B: 0x56, A: 0xFF}
	if c := cellColor(RGB(0x12, 0x34, 0x56)); c != want {
		t.Errorf("cellColor = %v, want %v", c, want)
	}
}
