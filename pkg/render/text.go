package render

import (
	"image/color"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"
)

// textAscent is the distance from the top of a TomThumb line to its baseline.
const textAscent = 5

var hudFont = &tinyfont.TomThumb

// fbDisplay lets tinyfont draw into a Framebuffer.
type fbDisplay struct {
	fb *Framebuffer
}

var _ drivers.Displayer = fbDisplay{}

func (d fbDisplay) Size() (x, y int16) {
	return int16(d.fb.Width), int16(d.fb.Height)
}

func (d fbDisplay) SetPixel(x, y int16, c color.RGBA) {
	d.fb.setPixelClipped(int(x), int(y), FromRGBA(c))
}

func (d fbDisplay) Display() error {
	return nil
}

// DrawText writes s with its top-left corner at (x, y). Glyphs are clipped
// at the framebuffer edges rather than wrapped.
func DrawText(fb *Framebuffer, x, y int, s string, c Color) {
	tinyfont.WriteLine(fbDisplay{fb: fb}, hudFont, int16(x), int16(y+textAscent), s, c.ToRGBA())
}

// TextWidth returns the width of s in pixels.
func TextWidth(s string) int {
	_, outbox := tinyfont.LineWidth(hudFont, s)
	return int(outbox)
}

// LineHeight returns the vertical advance of one line of text.
func LineHeight() int {
	return int(hudFont.GetYAdvance())
}
