package core

import "math"

// RGB is a color triple with channels in [0, 255]. The all-zero value marks an
// empty cell.
type RGB struct {
	R, G, B float64
}

// Occupied reports whether any channel is positive.
func (c RGB) Occupied() bool { return c.R > 0 || c.G > 0 || c.B > 0 }

// IsEmpty reports whether the cell holds no growth.
func (c RGB) IsEmpty() bool { return c.R == 0 && c.G == 0 && c.B == 0 }

// Clamp limits every channel to [0, 255].
func (c RGB) Clamp() RGB {
	return RGB{R: clampChannel(c.R), G: clampChannel(c.G), B: clampChannel(c.B)}
}

// Lerp returns c*w + other*(1-w).
func (c RGB) Lerp(other RGB, w float64) RGB {
	inv := 1 - w
	return RGB{
		R: c.R*w + other.R*inv,
		G: c.G*w + other.G*inv,
		B: c.B*w + other.B*inv,
	}
}

// Bytes truncates the channels to bytes.
func (c RGB) Bytes() (uint8, uint8, uint8) {
	c = c.Clamp()
	return uint8(c.R), uint8(c.G), uint8(c.B)
}

// Distance returns the mean absolute per-channel difference of a and b.
func Distance(a, b RGB) float64 {
	return (math.Abs(a.R-b.R) + math.Abs(a.G-b.G) + math.Abs(a.B-b.B)) / 3
}

func clampChannel(v float64) float64 {
	switch {
	case math.IsNaN(v), v < 0:
		return 0
	case v > 255:
		return 255
	default:
		return v
	}
}

// RGBGrid stores a 2D grid of colors in row-major order.
type RGBGrid struct {
	W, H int
	data []RGB
}

// NewRGBGrid allocates an empty grid with the given dimensions.
func NewRGBGrid(w, h int) *RGBGrid {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &RGBGrid{W: w, H: h, data: make([]RGB, w*h)}
}

// Cells exposes the backing slice so callers can read/write values directly.
func (g *RGBGrid) Cells() []RGB { return g.data }

// Index returns the linear slice index for (row, col).
func (g *RGBGrid) Index(row, col int) int { return row*g.W + col }

// At returns the color stored at (row, col).
func (g *RGBGrid) At(row, col int) RGB { return g.data[g.Index(row, col)] }

// Set stores c at (row, col).
func (g *RGBGrid) Set(row, col int, c RGB) { g.data[g.Index(row, col)] = c }

// InBounds reports whether row lies inside the grid. Rows never wrap.
func (g *RGBGrid) InBounds(row int) bool { return row >= 0 && row < g.H }

// WrapCol maps a column onto the horizontal torus.
func (g *RGBGrid) WrapCol(col int) int {
	return (col%g.W + g.W) % g.W
}

// Clear empties every cell.
func (g *RGBGrid) Clear() {
	for i := range g.data {
		g.data[i] = RGB{}
	}
}

// CopyFrom overwrites g with the contents of src. Both grids must share
// dimensions.
func (g *RGBGrid) CopyFrom(src *RGBGrid) {
	copy(g.data, src.data)
}

// Clone returns an independent copy of the grid.
func (g *RGBGrid) Clone() *RGBGrid {
	out := &RGBGrid{W: g.W, H: g.H, data: make([]RGB, len(g.data))}
	copy(out.data, g.data)
	return out
}
