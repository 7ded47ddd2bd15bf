package render

import (
	"image/color"

	uv "github.com/charmbracelet/ultraviolet"
)

// Draw blits the framebuffer into area of a terminal screen.
// Each terminal row shows two framebuffer rows: ▀ with the upper pixel as
// foreground and the lower pixel as background.
func (fb *Framebuffer) Draw(scr uv.Screen, area uv.Rectangle) {
	for row := area.Min.Y; row < area.Max.Y; row++ {
		topY := (row - area.Min.Y) * 2
		botY := topY + 1
		if topY >= fb.Height {
			break
		}

		for col := area.Min.X; col < area.Max.X; col++ {
			x := col - area.Min.X
			if x >= fb.Width {
				break
			}

			cell := &uv.Cell{
				Content: "▀",
				Width:   1,
				Style: uv.Style{
					Fg: cellColor(fb.GetPixel(x, topY)),
					Bg: cellColor(fb.GetPixel(x, botY)),
				},
			}
			scr.SetCell(col, row, cell)
		}
	}
}

// TerminalScreen is a screen that can push its cells to the terminal.
// *uv.Terminal satisfies it.
type TerminalScreen interface {
	uv.Screen
	Display() error
}

// TerminalRenderer presents framebuffers on a terminal using half-blocks.
type TerminalRenderer struct {
	scr        TerminalScreen
	cols, rows int
}

// NewTerminalRenderer creates a renderer for a cols x rows terminal.
func NewTerminalRenderer(scr TerminalScreen, cols, rows int) *TerminalRenderer {
	return &TerminalRenderer{scr: scr, cols: cols, rows: rows}
}

// FramebufferSize returns the framebuffer size that fills the terminal.
func (r *TerminalRenderer) FramebufferSize() (width, height int) {
	return r.cols, r.rows * 2
}

// Render draws fb into the screen buffer.
func (r *TerminalRenderer) Render(fb *Framebuffer) {
	fb.Draw(r.scr, uv.Rect(0, 0, r.cols, r.rows))
}

// Flush writes pending changes to the terminal.
func (r *TerminalRenderer) Flush() error {
	return r.scr.Display()
}

// cellColor converts a pixel to a terminal color.
func cellColor(c Color) color.Color {
	if c.A() == 0 {
		return nil // Transparent = no color
	}
	return c.ToRGBA()
}
