package core

import "fmt"

// Outline classifies how a renderer should outline a cell.
type Outline int

const (
	// OutlineNone marks an empty cell; nothing is drawn.
	OutlineNone Outline = iota
	// OutlineSelf outlines an occupied cell in its own color, width 1.
	OutlineSelf
	// OutlineNear marks a cell within tolerance of the target, white width 2.
	OutlineNear
	// OutlineClosest marks a within-tolerance cell at the global minimum
	// distance, black width 5.
	OutlineClosest
)

// Width returns the stroke width used for the outline.
func (o Outline) Width() int {
	switch o {
	case OutlineClosest:
		return 5
	case OutlineNear:
		return 2
	case OutlineSelf:
		return 1
	default:
		return 0
	}
}

// Status is the readout shown under the grid.
type Status struct {
	Target   RGB
	Current  RGB
	Distance float64
}

func (s Status) String() string {
	return fmt.Sprintf("Target: %s | Current: %s | Distance: %.1f",
		formatTriple(s.Target), formatTriple(s.Current), s.Distance)
}

func formatTriple(c RGB) string {
	return fmt.Sprintf("(%d, %d, %d)", int(c.R), int(c.G), int(c.B))
}

// Hex formats c as #rrggbb, truncating fractional channels.
func (c RGB) Hex() string {
	r, g, b := c.Bytes()
	return fmt.Sprintf("#%02x%02x%02x", r, g, b)
}
