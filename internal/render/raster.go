package render

import (
	"image"
	"image/color"
	"image/draw"

	"colorgrow/internal/core"
)

// Background is the canvas color behind empty cells.
var Background = color.RGBA{R: 0xd9, G: 0xd9, B: 0xd9, A: 0xff}

// Rasterize draws one cellSize square per occupied cell, outlining cells that
// are close to the target.
func Rasterize(scene Scene, cellSize int) *image.RGBA {
	if cellSize <= 0 {
		cellSize = 1
	}
	grid := scene.Grid()
	img := image.NewRGBA(image.Rect(0, 0, grid.W*cellSize, grid.H*cellSize))
	draw.Draw(img, img.Bounds(), image.NewUniform(Background), image.Point{}, draw.Src)

	for row := 0; row < grid.H; row++ {
		for col := 0; col < grid.W; col++ {
			outline := scene.Outline(row, col)
			if outline == core.OutlineNone {
				continue
			}
			c := grid.At(row, col)
			rect := image.Rect(col*cellSize, row*cellSize, (col+1)*cellSize, (row+1)*cellSize)
			draw.Draw(img, rect, image.NewUniform(CellColor(c)), image.Point{}, draw.Src)
			if outline == core.OutlineSelf {
				continue
			}
			strokeRect(img, rect, min(outline.Width(), cellSize/2), OutlineColor(outline, c))
		}
	}
	return img
}

// strokeRect paints an inner border of the given width.
func strokeRect(img *image.RGBA, r image.Rectangle, width int, c color.RGBA) {
	if width <= 0 {
		return
	}
	u := image.NewUniform(c)
	draw.Draw(img, image.Rect(r.Min.X, r.Min.Y, r.Max.X, r.Min.Y+width), u, image.Point{}, draw.Src)
	draw.Draw(img, image.Rect(r.Min.X, r.Max.Y-width, r.Max.X, r.Max.Y), u, image.Point{}, draw.Src)
	draw.Draw(img, image.Rect(r.Min.X, r.Min.Y, r.Min.X+width, r.Max.Y), u, image.Point{}, draw.Src)
	draw.Draw(img, image.Rect(r.Max.X-width, r.Min.Y, r.Max.X, r.Max.Y), u, image.Point{}, draw.Src)
}
