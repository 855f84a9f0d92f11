package core

import (
	"math"
	"slices"
	"testing"
	"time"
)

func TestWrapColIsHorizontalTorus(t *testing.T) {
	g := NewRGBGrid(60, 40)
	if got := g.WrapCol(-1); got != 59 {
		t.Fatalf("WrapCol(-1) = %d, expected 59", got)
	}
	if got := g.WrapCol(60); got != 0 {
		t.Fatalf("WrapCol(60) = %d, expected 0", got)
	}
	if got := g.WrapCol(-121); got != 59 {
		t.Fatalf("WrapCol(-121) = %d, expected 59", got)
	}
	if g.InBounds(-1) || g.InBounds(40) {
		t.Fatal("rows outside the grid must not be in bounds")
	}
	if !g.InBounds(0) || !g.InBounds(39) {
		t.Fatal("edge rows must be in bounds")
	}
}

func TestCloneIsIndependent(t *testing.T) {
	g := NewRGBGrid(3, 2)
	g.Set(1, 2, RGB{R: 10})
	c := g.Clone()
	c.Set(1, 2, RGB{G: 20})
	if got := g.At(1, 2); got != (RGB{R: 10}) {
		t.Fatalf("clone mutation leaked into source: %+v", got)
	}
	g.Clear()
	if c.At(1, 2).IsEmpty() {
		t.Fatal("Clear on source emptied the clone")
	}
}

func TestDistanceAndClamp(t *testing.T) {
	if d := Distance(RGB{200, 200, 200}, RGB{255, 255, 255}); math.Abs(d-55) > 1e-9 {
		t.Fatalf("expected distance 55, got %f", d)
	}
	c := RGB{R: -3, G: 300, B: math.NaN()}.Clamp()
	if c != (RGB{R: 0, G: 255, B: 0}) {
		t.Fatalf("unexpected clamp result %+v", c)
	}
	if !(RGB{B: 0.5}).Occupied() || (RGB{}).Occupied() {
		t.Fatal("occupancy must follow any positive channel")
	}
}

func TestFixedStepSpacing(t *testing.T) {
	clock := time.Unix(0, 0)
	fs := NewFixedStep(100 * time.Millisecond)
	fs.now = func() time.Time { return clock }

	if !fs.ShouldStep() {
		t.Fatal("first poll must fire")
	}
	clock = clock.Add(40 * time.Millisecond)
	if fs.ShouldStep() {
		t.Fatal("fired before the delay elapsed")
	}
	clock = clock.Add(60 * time.Millisecond)
	if !fs.ShouldStep() {
		t.Fatal("expected a tick after the full delay")
	}
	clock = clock.Add(10 * time.Second)
	if !fs.ShouldStep() {
		t.Fatal("expected a tick after a stall")
	}
	if fs.ShouldStep() {
		t.Fatal("backlog after a stall must not burst")
	}
}

func TestBetweenInclusive(t *testing.T) {
	rng := NewRNG(7)
	seen := map[int]bool{}
	for i := 0; i < 500; i++ {
		v := Between(rng, 3, 5)
		if v < 3 || v > 5 {
			t.Fatalf("Between out of range: %d", v)
		}
		seen[v] = true
	}
	if len(seen) != 3 {
		t.Fatalf("expected all of 3..5 to appear, got %v", seen)
	}
}

func TestSceneViewTypes(t *testing.T) {
	if got := (RGB{R: 255, G: 16.9, B: 0}).Hex(); got != "#ff1000" {
		t.Fatalf("unexpected hex %q", got)
	}
	widths := []int{OutlineNone.Width(), OutlineSelf.Width(), OutlineNear.Width(), OutlineClosest.Width()}
	if want := []int{0, 1, 2, 5}; !slices.Equal(widths, want) {
		t.Fatalf("outline widths %v, expected %v", widths, want)
	}
	st := Status{Target: RGB{R: 255, G: 255, B: 255}, Current: RGB{R: 10.7, G: 20, B: 30}, Distance: 234.31}
	if got, want := st.String(), "Target: (255, 255, 255) | Current: (10, 20, 30) | Distance: 234.3"; got != want {
		t.Fatalf("status %q, expected %q", got, want)
	}
}
