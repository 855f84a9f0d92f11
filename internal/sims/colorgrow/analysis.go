package colorgrow

import (
	"fmt"
	"math"

	"colorgrow/internal/core"
)

// Cell addresses a grid position.
type Cell struct {
	Row, Col int
}

func (c Cell) String() string { return fmt.Sprintf("(%d, %d)", c.Row, c.Col) }

// analysis caches the per-cell distance to the target. It is shared by the
// termination check and the renderers and rebuilt only after the grid or the
// target changed.
type analysis struct {
	dist    []float64
	min     float64
	matches []Cell
}

func (w *World) analyze() *analysis {
	if !w.dirty && w.scan.dist != nil {
		return &w.scan
	}
	cells := w.grid.Cells()
	if len(w.scan.dist) != len(cells) {
		w.scan.dist = make([]float64, len(cells))
	}
	w.scan.min = math.Inf(1)
	w.scan.matches = w.scan.matches[:0]
	tol := w.cfg.Params.Tolerance
	for i, c := range cells {
		d := core.Distance(c, w.target)
		w.scan.dist[i] = d
		if d < w.scan.min {
			w.scan.min = d
		}
		if d < tol {
			w.scan.matches = append(w.scan.matches, Cell{Row: i / w.w, Col: i % w.w})
		}
	}
	w.dirty = false
	return &w.scan
}

// DistanceMap returns the mean channel distance of every cell to the target in
// row-major order. The slice is reused between calls.
func (w *World) DistanceMap() []float64 { return w.analyze().dist }

// MinDistance returns the smallest distance of any cell, empty ones included.
func (w *World) MinDistance() float64 { return w.analyze().min }

// Matches lists every cell whose distance is below the tolerance, in
// row-major order. Empty cells count when the target itself is near black.
func (w *World) Matches() []Cell {
	m := w.analyze().matches
	out := make([]Cell, len(m))
	copy(out, m)
	return out
}

// AtTarget reports whether any cell is within tolerance of the target.
func (w *World) AtTarget() bool { return len(w.analyze().matches) > 0 }

// Outline classifies the cell at (row, col) for rendering.
func (w *World) Outline(row, col int) core.Outline {
	if !w.grid.At(row, col).Occupied() {
		return core.OutlineNone
	}
	a := w.analyze()
	d := a.dist[w.grid.Index(row, col)]
	if d >= w.cfg.Params.Tolerance {
		return core.OutlineSelf
	}
	if d == a.min {
		return core.OutlineClosest
	}
	return core.OutlineNear
}

// Status averages the top-most occupied cell of every column and compares it
// with the target. It reports false when there are no roots or nothing has
// grown.
func (w *World) Status() (core.Status, bool) {
	if len(w.roots) == 0 {
		return core.Status{}, false
	}
	var sum core.RGB
	n := 0
	for col := 0; col < w.w; col++ {
		for row := 0; row < w.h; row++ {
			c := w.grid.At(row, col)
			if !c.Occupied() {
				continue
			}
			sum.R += c.R
			sum.G += c.G
			sum.B += c.B
			n++
			break
		}
	}
	if n == 0 {
		return core.Status{}, false
	}
	avg := core.RGB{
		R: math.Trunc(sum.R / float64(n)),
		G: math.Trunc(sum.G / float64(n)),
		B: math.Trunc(sum.B / float64(n)),
	}
	return core.Status{Target: w.target, Current: avg, Distance: core.Distance(avg, w.target)}, true
}
