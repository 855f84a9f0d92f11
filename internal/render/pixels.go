package render

import (
	"fmt"
	"image/color"

	"colorgrow/internal/core"
)

// Scene is the read-only view of a simulation that renderers draw from.
type Scene interface {
	Grid() *core.RGBGrid
	Target() core.RGB
	Outline(row, col int) core.Outline
	Status() (core.Status, bool)
}

// FillRGBA converts grid colors into RGBA pixels in buf, one pixel per cell.
// Empty cells become the background color.
func FillRGBA(buf []byte, grid *core.RGBGrid, background color.Color) {
	br, bg, bb, ba := background.RGBA()
	for i, c := range grid.Cells() {
		base := i * 4
		if c.IsEmpty() {
			buf[base+0] = uint8(br >> 8)
			buf[base+1] = uint8(bg >> 8)
			buf[base+2] = uint8(bb >> 8)
			buf[base+3] = uint8(ba >> 8)
			continue
		}
		r, g, b := c.Bytes()
		buf[base+0] = r
		buf[base+1] = g
		buf[base+2] = b
		buf[base+3] = 0xff
	}
}

// CellColor returns the opaque fill color of a cell.
func CellColor(c core.RGB) color.RGBA {
	r, g, b := c.Bytes()
	return color.RGBA{R: r, G: g, B: b, A: 0xff}
}

// OutlineColor returns the stroke color for a classified cell.
func OutlineColor(o core.Outline, fill core.RGB) color.RGBA {
	switch o {
	case core.OutlineClosest:
		return color.RGBA{A: 0xff}
	case core.OutlineNear:
		return color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	default:
		return CellColor(fill)
	}
}

func hexRGBA(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
