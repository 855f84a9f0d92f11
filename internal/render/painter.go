//go:build ebiten

package render

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"colorgrow/internal/core"
)

// GridPainter uploads grid colors into a single image and draws it scaled,
// then strokes outlines for near-target cells.
type GridPainter struct {
	w, h int
	img  *ebiten.Image
	buf  []byte
}

// NewGridPainter allocates a painter for a grid of size w*h.
func NewGridPainter(w, h int) *GridPainter {
	gp := &GridPainter{w: w, h: h, buf: make([]byte, 4*w*h)}
	gp.img = ebiten.NewImage(w, h)
	return gp
}

// Draw renders the scene onto dst with each cell scale pixels wide.
func (gp *GridPainter) Draw(dst *ebiten.Image, scene Scene, scale int) {
	grid := scene.Grid()
	if grid.W != gp.w || grid.H != gp.h {
		return
	}
	FillRGBA(gp.buf, grid, Background)
	gp.img.WritePixels(gp.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(gp.img, op)

	s := float32(scale)
	for row := 0; row < grid.H; row++ {
		for col := 0; col < grid.W; col++ {
			outline := scene.Outline(row, col)
			if outline != core.OutlineNear && outline != core.OutlineClosest {
				continue
			}
			width := float32(outline.Width())
			x := float32(col)*s + width/2
			y := float32(row)*s + width/2
			vector.StrokeRect(dst, x, y, s-width, s-width, width, OutlineColor(outline, grid.At(row, col)), false)
		}
	}
}

// Size returns the dimensions of the underlying image.
func (gp *GridPainter) Size() (int, int) { return gp.w, gp.h }
