package render

import "image/color"

// Color is a packed 0xAARRGGBB pixel value.
type Color uint32

// Colors for convenience
const (
	ColorTransparent Color = 0x00000000
	ColorBlack       Color = 0xFF000000
	ColorWhite       Color = 0xFFFFFFFF
	ColorRed         Color = 0xFFFF0000
	ColorGreen       Color = 0xFF00FF00
	ColorBlue        Color = 0xFF0000FF
	ColorYellow      Color = 0xFFFFFF00
	ColorCyan        Color = 0xFF00FFFF
	ColorMagenta     Color = 0xFFFF00FF
	ColorGray        Color = 0xFF808080
	ColorGrid        Color = 0xFF333333
)

// RGB creates an opaque color from RGB values.
func RGB(r, g, b uint8) Color {
	return ARGB(0xFF, r, g, b)
}

// ARGB creates a color from ARGB values.
func ARGB(a, r, g, b uint8) Color {
	return Color(uint32(a)<<24 | uint32(r)<<16 | uint32(g)<<8 | uint32(b))
}

// FromRGBA packs a color.RGBA.
func FromRGBA(c color.RGBA) Color {
	return ARGB(c.A, c.R, c.G, c.B)
}

// A returns the alpha channel.
func (c Color) A() uint8 { return uint8(c >> 24) }

// R returns the red channel.
func (c Color) R() uint8 { return uint8(c >> 16) }

// G returns the green channel.
func (c Color) G() uint8 { return uint8(c >> 8) }

// B returns the blue channel.
func (c Color) B() uint8 { return uint8(c) }

// ToRGBA unpacks the color. Channels are not premultiplied.
func (c Color) ToRGBA() color.RGBA {
	return color.RGBA{R: c.R(), G: c.G(), B: c.B(), A: c.A()}
}

// RGBA implements color.Color.
func (c Color) RGBA() (r, g, b, a uint32) {
	return color.NRGBA{R: c.R(), G: c.G(), B: c.B(), A: c.A()}.RGBA()
}

// ApplyIntensity scales the RGB channels of c by f, clamped to [0, 1].
// Alpha is preserved. Each channel is scaled in place within the packed value
// and then masked back to its own byte.
func ApplyIntensity(c Color, f float64) Color {
	f = clamp01(f)

	a := uint32(c) & 0xFF000000
	r := uint32(float64(uint32(c)&0x00FF0000) * f)
	g := uint32(float64(uint32(c)&0x0000FF00) * f)
	b := uint32(float64(uint32(c)&0x000000FF) * f)

	return Color(a | r&0x00FF0000 | g&0x0000FF00 | b&0x000000FF)
}

func clamp01(f float64) float64 {
	switch {
	case f < 0:
		return 0
	case f > 1:
		return 1
	}
	return f
}
