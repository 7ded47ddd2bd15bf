// Package render implements the facet software rasterization pipeline.
//
// A frame runs in three stages. Pipeline.Transform moves every face into
// world space, drops back faces, projects the survivors to screen space and
// flat-shades them. SortByDepth orders the result farthest first, and
// Pipeline.Rasterize paints it into a caller-owned Framebuffer with the
// painter's algorithm. There is no depth buffer and no clipping.
package render

import (
	"fmt"
	"image"
	"image/png"
	"os"

	"golang.org/x/image/draw"
)

// Framebuffer is a row-major buffer of packed ARGB pixels.
// When shown in a terminal, two pixel rows share one cell via half-blocks (▀).
type Framebuffer struct {
	Width  int     // Width in pixels
	Height int     // Height in pixels
	Pixels []Color // Row-major pixel data, len == Width*Height
}

// NewFramebuffer creates a new framebuffer with the given dimensions.
// Negative dimensions are treated as zero.
func NewFramebuffer(width, height int) *Framebuffer {
	width, height = max(width, 0), max(height, 0)
	return &Framebuffer{
		Width:  width,
		Height: height,
		Pixels: make([]Color, width*height),
	}
}

// Resize reallocates the buffer if the dimensions changed.
func (fb *Framebuffer) Resize(width, height int) {
	width, height = max(width, 0), max(height, 0)
	if width == fb.Width && height == fb.Height {
		return
	}
	fb.Width, fb.Height = width, height
	fb.Pixels = make([]Color, width*height)
}

// Clear fills the framebuffer with a solid color.
func (fb *Framebuffer) Clear(c Color) {
	for i := range fb.Pixels {
		fb.Pixels[i] = c
	}
}

// SetPixel writes c at the linear offset y*Width + x.
//
// Only the offset is bounds checked: an x past the right edge lands on the
// following row. Offsets outside the buffer are dropped.
func (fb *Framebuffer) SetPixel(x, y int, c Color) {
	i := y*fb.Width + x
	if i < 0 || i >= len(fb.Pixels) {
		return
	}
	fb.Pixels[i] = c
}

// setPixelClipped writes c only when (x, y) lies inside the buffer.
func (fb *Framebuffer) setPixelClipped(x, y int, c Color) {
	if x < 0 || x >= fb.Width || y < 0 || y >= fb.Height {
		return
	}
	fb.Pixels[y*fb.Width+x] = c
}

// GetPixel returns the color at (x, y).
// Returns transparent black if out of bounds.
func (fb *Framebuffer) GetPixel(x, y int) Color {
	if x < 0 || x >= fb.Width || y < 0 || y >= fb.Height {
		return ColorTransparent
	}
	return fb.Pixels[y*fb.Width+x]
}

// DrawLine draws a line from (x0, y0) to (x1, y1) with a DDA walk.
// Both endpoints are written.
func (fb *Framebuffer) DrawLine(x0, y0, x1, y1 int, c Color) {
	dx := x1 - x0
	dy := y1 - y0
	steps := max(abs(dx), abs(dy))
	if steps == 0 {
		fb.SetPixel(x0, y0, c)
		return
	}

	xInc := float64(dx) / float64(steps)
	yInc := float64(dy) / float64(steps)
	x, y := float64(x0), float64(y0)

	for range steps + 1 {
		fb.SetPixel(round(x), round(y), c)
		x += xInc
		y += yInc
	}
}

// DrawRect draws a filled rectangle.
func (fb *Framebuffer) DrawRect(x, y, w, h int, c Color) {
	for py := y; py < y+h; py++ {
		for px := x; px < x+w; px++ {
			fb.SetPixel(px, py, c)
		}
	}
}

// DrawGrid draws a dot every step pixels in both directions.
func (fb *Framebuffer) DrawGrid(step int, c Color) {
	if step <= 0 {
		return
	}
	for y := 0; y < fb.Height; y += step {
		for x := 0; x < fb.Width; x += step {
			fb.Pixels[y*fb.Width+x] = c
		}
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// ToImage converts the framebuffer to a standard Go image.RGBA.
func (fb *Framebuffer) ToImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, fb.Width, fb.Height))
	for y := 0; y < fb.Height; y++ {
		for x := 0; x < fb.Width; x++ {
			img.SetRGBA(x, y, fb.Pixels[y*fb.Width+x].ToRGBA())
		}
	}
	return img
}

// SavePNG saves the framebuffer as a PNG file.
func (fb *Framebuffer) SavePNG(path string) error {
	return fb.SavePNGScaled(path, 1)
}

// SavePNGScaled saves the framebuffer upscaled by an integer factor with
// nearest-neighbour sampling, so individual pixels stay crisp.
func (fb *Framebuffer) SavePNGScaled(path string, scale int) error {
	if scale < 1 {
		return fmt.Errorf("save png: invalid scale %d", scale)
	}

	var img image.Image = fb.ToImage()
	if scale > 1 {
		dst := image.NewRGBA(image.Rect(0, 0, fb.Width*scale, fb.Height*scale))
		draw.NearestNeighbor.Scale(dst, dst.Bounds(), img, img.Bounds(), draw.Src, nil)
		img = dst
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create png: %w", err)
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return f.Close()
}
