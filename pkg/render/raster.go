package render

import "math"

// SpanFunc receives one horizontal scanline of a filled triangle.
// xStart and xEnd follow the triangle's left and right edges as walked, so
// xStart may be greater than xEnd.
type SpanFunc func(y int, xStart, xEnd float64)

// TriangleSpans walks the scanlines of the triangle with the flat-top /
// flat-bottom decomposition and calls fn once per row.
//
// Vertices are sorted by y. A triangle whose lower edge is horizontal is
// filled as a single flat-bottom half, one whose upper edge is horizontal as a
// single flat-top half. Otherwise it is split at the height of the middle
// vertex into a flat-bottom half followed by a flat-top half; the shared row
// is emitted by both halves.
//
// A triangle with zero height produces one span covering its x extent.
func TriangleSpans(x0, y0, x1, y1, x2, y2 int, fn SpanFunc) {
	if y0 > y1 {
		x0, y0, x1, y1 = x1, y1, x0, y0
	}
	if y1 > y2 {
		x1, y1, x2, y2 = x2, y2, x1, y1
	}
	if y0 > y1 {
		x0, y0, x1, y1 = x1, y1, x0, y0
	}

	switch {
	case y0 == y2:
		fn(y0, float64(min(x0, x1, x2)), float64(max(x0, x1, x2)))
	case y1 == y2:
		flatBottomSpans(x0, y0, x1, y1, x2, y2, fn)
	case y0 == y1:
		flatTopSpans(x0, y0, x1, y1, x2, y2, fn)
	default:
		my := y1
		mx := int(float64((x2-x0)*(y1-y0))/float64(y2-y0) + float64(x0))

		flatBottomSpans(x0, y0, x1, y1, mx, my, fn)
		flatTopSpans(x1, y1, mx, my, x2, y2, fn)
	}
}

// flatBottomSpans walks down from the apex (x0, y0) to the base row y1 == y2.
func flatBottomSpans(x0, y0, x1, y1, x2, y2 int, fn SpanFunc) {
	invSlope1 := float64(x1-x0) / float64(y1-y0)
	invSlope2 := float64(x2-x0) / float64(y2-y0)

	xStart := float64(x0)
	xEnd := float64(x0)
	for y := y0; y <= y2; y++ {
		fn(y, xStart, xEnd)
		xStart += invSlope1
		xEnd += invSlope2
	}
}

// flatTopSpans walks up from the bottom vertex (x2, y2) to the top row
// y0 == y1.
func flatTopSpans(x0, y0, x1, y1, x2, y2 int, fn SpanFunc) {
	invSlope1 := float64(x2-x0) / float64(y2-y0)
	invSlope2 := float64(x2-x1) / float64(y2-y1)

	xStart := float64(x2)
	xEnd := float64(x2)
	for y := y2; y >= y0; y-- {
		fn(y, xStart, xEnd)
		xStart -= invSlope1
		xEnd -= invSlope2
	}
}

// FillTriangle fills a triangle with a solid color. Span ends are truncated
// toward zero before drawing.
func (fb *Framebuffer) FillTriangle(x0, y0, x1, y1, x2, y2 int, c Color) {
	TriangleSpans(x0, y0, x1, y1, x2, y2, func(y int, xStart, xEnd float64) {
		fb.DrawLine(int(xStart), y, int(xEnd), y, c)
	})
}

// DrawTriangle draws the outline of a triangle.
func (fb *Framebuffer) DrawTriangle(x0, y0, x1, y1, x2, y2 int, c Color) {
	fb.DrawLine(x0, y0, x1, y1, c)
	fb.DrawLine(x1, y1, x2, y2, c)
	fb.DrawLine(x2, y2, x0, y0, c)
}

func round(f float64) int {
	return int(math.Round(f))
}
