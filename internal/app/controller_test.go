package app

import (
	"bytes"
	"context"
	"errors"
	"flag"
	"log"
	"slices"
	"strings"
	"testing"
	"time"

	"colorgrow/internal/core"
	"colorgrow/internal/render"
	"colorgrow/internal/sims/colorgrow"
)

type frameCounter struct {
	generations []int
	err         error
}

func (f *frameCounter) Observe(generation int, _ render.Scene) error {
	f.generations = append(f.generations, generation)
	return f.err
}

func smallWorld() *colorgrow.World {
	cfg := colorgrow.DefaultConfig()
	cfg.Width = 12
	cfg.Height = 4
	return colorgrow.NewWithConfig(cfg)
}

// exactWorld never reaches its target, so only the generation cap stops it.
func exactWorld() *colorgrow.World {
	cfg := colorgrow.DefaultConfig()
	cfg.Width = 12
	cfg.Height = 4
	cfg.Params.Tolerance = 0
	return colorgrow.NewWithConfig(cfg)
}

func TestRunStopsAtGenerationCap(t *testing.T) {
	world := exactWorld()
	frames := &frameCounter{}
	ctrl := NewController(world, WithObserver(frames))
	if err := ctrl.Reset(8); err != nil {
		t.Fatalf("Reset: %v", err)
	}

	res, err := ctrl.Run(context.Background(), 0)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if res != core.Capped {
		t.Fatalf("expected Capped, got %v", res)
	}
	if ctrl.Running() {
		t.Fatal("controller must stop scheduling after a terminal result")
	}
	want := []int{0}
	for g := 1; g <= world.Cap(); g++ {
		want = append(want, g)
	}
	if !slices.Equal(frames.generations, want) {
		t.Fatalf("unexpected frames %v, expected %v", frames.generations, want)
	}
}

func TestRunHaltsWithoutMutatingGrid(t *testing.T) {
	world := smallWorld()
	var logs bytes.Buffer
	frames := &frameCounter{}
	ctrl := NewController(world, WithLogger(log.New(&logs, "", 0)), WithObserver(frames))

	world.ClearRoots()
	world.Plant(3, 4, core.RGB{R: 30, G: 60, B: 90})
	if err := ctrl.SetTarget(core.RGB{R: 30, G: 60, B: 90}); err != nil {
		t.Fatalf("SetTarget: %v", err)
	}
	before := slices.Clone(world.Grid().Cells())

	res, err := ctrl.Run(context.Background(), time.Millisecond)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if res != core.Halted {
		t.Fatalf("expected Halted, got %v", res)
	}
	if !slices.Equal(before, world.Grid().Cells()) {
		t.Fatal("halting tick must not mutate the grid")
	}
	if len(frames.generations) != 1 {
		t.Fatalf("expected only the SetTarget frame, got %v", frames.generations)
	}
	if !strings.Contains(logs.String(), "target reached at cells: [(3, 4)]") {
		t.Fatalf("missing halt log, got %q", logs.String())
	}
}

func TestRunHonoursCancellation(t *testing.T) {
	world := smallWorld()
	ctrl := NewController(world)
	if err := ctrl.Reset(3); err != nil {
		t.Fatalf("Reset: %v", err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := ctrl.Run(ctx, time.Hour); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if world.Generation() != 0 {
		t.Fatalf("a cancelled run must not tick, generation %d", world.Generation())
	}

	ctx, cancel = context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	if _, err := ctrl.Run(ctx, time.Hour); !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected deadline error, got %v", err)
	}
	if world.Generation() != 1 {
		t.Fatalf("expected exactly one tick before the deadline, got %d", world.Generation())
	}
}

func TestObserverErrorsPropagate(t *testing.T) {
	world := smallWorld()
	boom := errors.New("disk full")
	ctrl := NewController(world, WithObserver(&frameCounter{err: boom}))
	if err := ctrl.Reset(1); !errors.Is(err, boom) {
		t.Fatalf("expected observer error from Reset, got %v", err)
	}
}

func TestResetRestartsAfterTerminalRun(t *testing.T) {
	world := smallWorld()
	ctrl := NewController(world)
	ctrl.Reset(4)
	if _, err := ctrl.Run(context.Background(), 0); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if err := ctrl.Reset(5); err != nil {
		t.Fatalf("Reset: %v", err)
	}
	if world.Generation() != 0 || ctrl.Last() != core.Grew {
		t.Fatalf("reset must start a fresh run, generation %d last %v", world.Generation(), ctrl.Last())
	}
}

func TestStatusLogger(t *testing.T) {
	world := smallWorld()
	var logs bytes.Buffer
	ctrl := NewController(world, WithObserver(StatusLogger{Logger: log.New(&logs, "", 0)}))
	ctrl.Reset(2)
	if !strings.HasPrefix(logs.String(), "gen 0: Target: (255, 255, 255) | Current: (") {
		t.Fatalf("unexpected status log %q", logs.String())
	}
}

func TestResetDuringGrowthKeepsRunning(t *testing.T) {
	world := exactWorld()
	ctrl := NewController(world)
	if err := ctrl.Reset(4); err != nil {
		t.Fatalf("Reset: %v", err)
	}
	ctrl.Start()
	if _, err := ctrl.Tick(); err != nil {
		t.Fatalf("Tick: %v", err)
	}
	if err := ctrl.Reset(5); err != nil {
		t.Fatalf("Reset: %v", err)
	}
	if !ctrl.Running() {
		t.Fatal("reset must not cancel scheduled growth")
	}
	if world.Generation() != 0 {
		t.Fatalf("expected generation 0 after reset, got %d", world.Generation())
	}
}

func TestDefaultSeedMatchesSimConfig(t *testing.T) {
	got := colorgrow.FromMap(NewConfig().SimConfig()).Seed
	if want := colorgrow.DefaultConfig().Seed; got != want {
		t.Fatalf("flag default seed %d differs from sim default %d", got, want)
	}
}

func TestConfigBind(t *testing.T) {
	cfg := NewConfig()
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	cfg.Bind(fs)
	err := fs.Parse([]string{"-scale", "8", "-delay", "250ms", "-set", "target=#ff0000", "-set", "w=30", "-seed", "9"})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if cfg.Scale != 8 || cfg.Delay != 250*time.Millisecond {
		t.Fatalf("unexpected config %+v", cfg)
	}
	m := cfg.SimConfig()
	if m["target"] != "#ff0000" || m["w"] != "30" || m["seed"] != "9" {
		t.Fatalf("unexpected sim config %v", m)
	}
	if err := fs.Parse([]string{"-set", "novalue"}); err == nil {
		t.Fatal("expected malformed override to fail")
	}
}
