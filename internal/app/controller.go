package app

import (
	"context"
	"fmt"
	"io"
	"log"
	"time"

	"colorgrow/internal/core"
	"colorgrow/internal/render"
	"colorgrow/internal/sims/colorgrow"
)

// Sim is the simulation surface the controller drives.
type Sim interface {
	core.Sim
	render.Scene
	SetTarget(c core.RGB)
	Generation() int
	Matches() []colorgrow.Cell
	MinDistance() float64
}

// Observer receives a frame whenever the visible state changes.
type Observer interface {
	Observe(generation int, scene render.Scene) error
}

// Controller owns the simulation state and decides when ticks run.
type Controller struct {
	sim       Sim
	logger    *log.Logger
	observers []Observer

	running bool
	last    core.StepResult
}

// Option configures a Controller.
type Option func(*Controller)

// WithLogger routes controller messages to l.
func WithLogger(l *log.Logger) Option {
	return func(c *Controller) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithObserver registers o for frame notifications.
func WithObserver(o Observer) Option {
	return func(c *Controller) {
		if o != nil {
			c.observers = append(c.observers, o)
		}
	}
}

// NewController wraps sim. Messages are discarded unless WithLogger is given.
func NewController(sim Sim, opts ...Option) *Controller {
	c := &Controller{sim: sim, logger: log.New(io.Discard, "", 0)}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Sim returns the controlled simulation.
func (c *Controller) Sim() Sim { return c.sim }

// Running reports whether scheduled ticks should continue.
func (c *Controller) Running() bool { return c.running }

// Last returns the result of the most recent tick.
func (c *Controller) Last() core.StepResult { return c.last }

// Start arms scheduled growth.
func (c *Controller) Start() { c.running = true }

// Stop disarms scheduled growth.
func (c *Controller) Stop() { c.running = false }

// Reset starts a fresh run and publishes the new initial frame.
func (c *Controller) Reset(seed int64) error {
	c.sim.Reset(seed)
	c.last = core.Grew
	c.logger.Printf("reset: seed %d, %d roots", seed, len(c.rootsOf()))
	return c.publish()
}

// SetTarget changes the target color and republishes the frame so outlines
// and the status readout follow the new color.
func (c *Controller) SetTarget(t core.RGB) error {
	c.sim.SetTarget(t)
	c.logger.Printf("target set to %s", colorgrow.HexColor(c.sim.Target()))
	return c.publish()
}

// Tick runs one generation. A terminal result also stops scheduled growth.
func (c *Controller) Tick() (core.StepResult, error) {
	res := c.sim.Step()
	c.last = res
	if res.Terminal() {
		c.running = false
	}
	if res == core.Halted {
		c.logger.Printf("target reached at cells: %v", c.sim.Matches())
		return res, nil
	}
	if matches := c.sim.Matches(); len(matches) > 0 {
		c.logger.Printf("cells at target: %v", matches)
		c.logger.Printf("minimum distance: %.2f", c.sim.MinDistance())
	}
	if res == core.Capped {
		c.logger.Printf("generation cap %d reached", c.sim.Generation())
	}
	return res, c.publish()
}

// Run ticks every delay until the simulation halts, reaches its generation
// cap, or ctx is done. A non-positive delay runs ticks back to back.
func (c *Controller) Run(ctx context.Context, delay time.Duration) (core.StepResult, error) {
	c.running = true
	defer c.Stop()
	for {
		if err := ctx.Err(); err != nil {
			return c.last, err
		}
		res, err := c.Tick()
		if err != nil {
			return res, err
		}
		if res.Terminal() {
			return res, nil
		}
		if delay <= 0 {
			continue
		}
		t := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			t.Stop()
			return res, ctx.Err()
		case <-t.C:
		}
	}
}

func (c *Controller) publish() error {
	gen := c.sim.Generation()
	for _, o := range c.observers {
		if err := o.Observe(gen, c.sim); err != nil {
			return fmt.Errorf("observe generation %d: %w", gen, err)
		}
	}
	return nil
}

type rootLister interface {
	Roots() []colorgrow.Root
}

func (c *Controller) rootsOf() []colorgrow.Root {
	if rl, ok := c.sim.(rootLister); ok {
		return rl.Roots()
	}
	return nil
}

// StatusLogger is an Observer that prints the status readout of every frame.
type StatusLogger struct {
	Logger *log.Logger
}

// Observe logs the generation and status line.
func (s StatusLogger) Observe(generation int, scene render.Scene) error {
	st, ok := scene.Status()
	if !ok {
		return nil
	}
	s.Logger.Printf("gen %d: %s", generation, st)
	return nil
}
