package core

// Size describes the dimensions of a simulation grid.
type Size struct {
	W int
	H int
}

// StepResult reports what a single tick did and whether the owner should keep
// scheduling ticks.
type StepResult int

const (
	// Grew means the tick produced a new generation and more may follow.
	Grew StepResult = iota
	// Halted means a cell already matched the target before growth; the grid
	// was left untouched and the run is over until the next Reset.
	Halted
	// Capped means the generation cap has been reached.
	Capped
)

// Terminal reports whether no further ticks should be scheduled.
func (r StepResult) Terminal() bool { return r != Grew }

func (r StepResult) String() string {
	switch r {
	case Grew:
		return "grew"
	case Halted:
		return "halted"
	case Capped:
		return "capped"
	default:
		return "unknown"
	}
}

// Sim defines the minimal contract a color simulation must implement.
type Sim interface {
	Name() string
	Size() Size
	Reset(seed int64)
	Step() StepResult
	Grid() *RGBGrid
}

// Factory constructs a Sim using an optional configuration map.
type Factory func(cfg map[string]string) Sim

var sims = map[string]Factory{}

// Register adds a simulation factory under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	sims[name] = f
}

// Sims exposes the registry of available simulation factories.
func Sims() map[string]Factory {
	return sims
}
