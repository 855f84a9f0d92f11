package colorgrow

import (
	"colorgrow/internal/core"
)

// Root is a seed point planted at reset. Roots are bookkeeping only; the grid
// is the source of truth for growth.
type Root struct {
	Row, Col int
	Color    core.RGB
}

// offset is a (row, col) neighbor delta.
type offset struct {
	dr, dc int
}

// down is the direction every growth point always tries.
var down = offset{dr: 1, dc: 0}

var neighborOffsets = [8]offset{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// Option customizes a World at construction.
type Option func(*World)

// WithRandFactory replaces the source constructor used by Reset.
func WithRandFactory(f func(seed int64) core.Rand) Option {
	return func(w *World) {
		if f != nil {
			w.newRand = f
		}
	}
}

// World owns the grid, roots, target color and generation counter.
type World struct {
	cfg Config

	w, h int

	grid *core.RGBGrid
	next *core.RGBGrid

	roots      []Root
	target     core.RGB
	generation int

	rng     core.Rand
	newRand func(seed int64) core.Rand

	scan  analysis
	dirty bool
}

// New returns a simulation with the provided dimensions using defaults.
func New(w, h int) *World {
	cfg := DefaultConfig()
	cfg.Width = w
	cfg.Height = h
	return NewWithConfig(cfg)
}

// NewWithConfig returns a World configured from the provided options. The
// grid starts empty; call Reset to plant roots.
func NewWithConfig(cfg Config, opts ...Option) *World {
	grid := core.NewRGBGrid(cfg.Width, cfg.Height)
	w := &World{
		cfg:    cfg,
		w:      grid.W,
		h:      grid.H,
		grid:   grid,
		next:   core.NewRGBGrid(grid.W, grid.H),
		target: cfg.Target.Clamp(),
		newRand: func(seed int64) core.Rand {
			return core.NewRNG(seed)
		},
		dirty: true,
	}
	w.cfg.Width, w.cfg.Height = grid.W, grid.H
	for _, opt := range opts {
		opt(w)
	}
	w.rng = w.newRand(cfg.Seed)
	return w
}

// Name returns the simulation identifier.
func (w *World) Name() string { return "colorgrow" }

// Size reports the grid dimensions.
func (w *World) Size() core.Size { return core.Size{W: w.w, H: w.h} }

// Grid exposes the current generation. Callers must not keep it across Step.
func (w *World) Grid() *core.RGBGrid { return w.grid }

// Roots returns the seed points recorded since the last reset.
func (w *World) Roots() []Root {
	out := make([]Root, len(w.roots))
	copy(out, w.roots)
	return out
}

// Target returns the current target color.
func (w *World) Target() core.RGB { return w.target }

// Generation returns the number of growth ticks since the last reset.
func (w *World) Generation() int { return w.generation }

// Cap returns the generation after which scheduled growth stops.
func (w *World) Cap() int { return w.cfg.Params.CapFactor * w.h }

// Config returns the active configuration.
func (w *World) Config() Config { return w.cfg }

// SetTarget changes the target color. Channels are clamped to [0, 255].
func (w *World) SetTarget(c core.RGB) {
	w.target = c.Clamp()
	w.cfg.Target = w.target
	w.dirty = true
}

// UseRand swaps the random source without resetting the grid.
func (w *World) UseRand(r core.Rand) {
	if r != nil {
		w.rng = r
	}
}

// Reset clears the grid and plants a fresh set of roots on the bottom row
// using deterministic randomness. A zero seed selects the configured seed.
func (w *World) Reset(seed int64) {
	effective := seed
	if effective == 0 {
		effective = w.cfg.Seed
	}
	w.rng = w.newRand(effective)
	w.ClearRoots()

	p := w.cfg.Params
	count := core.Between(w.rng, p.RootsMin, p.RootsMax)
	bottom := w.h - 1
	for i := 0; i < count; i++ {
		col := w.rng.IntN(w.w)
		color := core.RGB{
			R: float64(w.rng.IntN(256)),
			G: float64(w.rng.IntN(256)),
			B: float64(w.rng.IntN(256)),
		}
		w.Plant(bottom, col, color)
	}
}

// ClearRoots empties the grid, forgets all roots and restarts the generation
// counter. The target color is kept.
func (w *World) ClearRoots() {
	w.generation = 0
	w.grid.Clear()
	w.next.Clear()
	w.roots = w.roots[:0]
	w.dirty = true
}

// Plant writes a root color into the grid and records it. Coordinates outside
// the grid are ignored apart from column wrapping.
func (w *World) Plant(row, col int, c core.RGB) {
	if !w.grid.InBounds(row) {
		return
	}
	col = w.grid.WrapCol(col)
	c = c.Clamp()
	w.grid.Set(row, col, c)
	w.roots = append(w.roots, Root{Row: row, Col: col, Color: c})
	w.dirty = true
}

// Step advances the simulation by one generation. When a cell is already
// within tolerance of the target the grid is left untouched and Halted is
// returned. Capped is returned once the generation counter reaches the cap.
func (w *World) Step() core.StepResult {
	if w.AtTarget() {
		return core.Halted
	}

	w.next.CopyFrom(w.grid)
	var dirs [len(neighborOffsets)]offset
	for row := 0; row < w.h; row++ {
		for col := 0; col < w.w; col++ {
			parent := w.grid.At(row, col)
			if !parent.Occupied() {
				continue
			}
			for _, d := range w.directions(dirs[:0]) {
				nr := row + d.dr
				if !w.next.InBounds(nr) {
					continue
				}
				nc := w.next.WrapCol(col + d.dc)
				if !w.next.At(nr, nc).IsEmpty() {
					continue
				}
				w.next.Set(nr, nc, w.offspring(parent))
			}
		}
	}

	w.grid, w.next = w.next, w.grid
	w.generation++
	w.dirty = true

	if w.generation >= w.Cap() {
		return core.Capped
	}
	return core.Grew
}

// directions appends the growth directions for one growth point to buf.
func (w *World) directions(buf []offset) []offset {
	p := w.cfg.Params
	if w.rng.Float64() >= p.BranchChance {
		return append(buf, down)
	}
	k := min(core.Between(w.rng, p.BranchMin, p.BranchMax), len(neighborOffsets))
	for _, i := range w.rng.Perm(len(neighborOffsets))[:k] {
		buf = append(buf, neighborOffsets[i])
	}
	return buf
}

// offspring blends the parent toward the target and applies Gaussian mutation.
func (w *World) offspring(parent core.RGB) core.RGB {
	p := w.cfg.Params
	blend := core.Uniform(w.rng, p.BlendMin, p.BlendMax)
	c := parent.Lerp(w.target, blend)
	c.R += w.rng.NormFloat64() * p.NoiseSigma
	c.G += w.rng.NormFloat64() * p.NoiseSigma
	c.B += w.rng.NormFloat64() * p.NoiseSigma
	return c.Clamp()
}

func init() {
	core.Register("colorgrow", func(cfg map[string]string) core.Sim {
		return NewWithConfig(FromMap(cfg))
	})
}
