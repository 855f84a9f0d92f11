package render

import (
	"fmt"
	"io"

	"colorgrow/internal/core"

	svg "github.com/ajstarks/svgo"
)

// WriteSVG renders the scene as one rect per occupied cell. Near-target cells
// get a white stroke and the closest match a thick black one.
func WriteSVG(w io.Writer, scene Scene, cellSize int) error {
	if cellSize <= 0 {
		cellSize = 1
	}
	ew := &errWriter{w: w}
	grid := scene.Grid()
	canvas := svg.New(ew)
	canvas.Start(grid.W*cellSize, grid.H*cellSize)
	if st, ok := scene.Status(); ok {
		canvas.Title(st.String())
	} else {
		canvas.Title("colorgrow")
	}
	canvas.Rect(0, 0, grid.W*cellSize, grid.H*cellSize, "fill:"+hexRGBA(Background))

	for row := 0; row < grid.H; row++ {
		for col := 0; col < grid.W; col++ {
			outline := scene.Outline(row, col)
			if outline == core.OutlineNone {
				continue
			}
			c := grid.At(row, col)
			style := fmt.Sprintf("fill:%s;stroke:%s;stroke-width:%d",
				c.Hex(), hexRGBA(OutlineColor(outline, c)), outline.Width())
			canvas.Rect(col*cellSize, row*cellSize, cellSize, cellSize, style)
		}
	}
	canvas.End()
	if ew.err != nil {
		return fmt.Errorf("write svg: %w", ew.err)
	}
	return nil
}

// errWriter keeps the first write error since svgo does not report them.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) Write(p []byte) (int, error) {
	if e.err != nil {
		return len(p), nil
	}
	n, err := e.w.Write(p)
	if err != nil {
		e.err = err
	}
	return n, err
}
