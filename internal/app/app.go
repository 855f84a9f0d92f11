//go:build ebiten

package app

import (
	"time"

	"colorgrow/internal/core"
	"colorgrow/internal/render"
	"colorgrow/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// HUDWidth is the width of the parameter panel right of the grid.
const HUDWidth = 260

// Game adapts a Controller to the ebiten.Game interface.
type Game struct {
	ctrl    *Controller
	painter *render.GridPainter
	hud     *ui.HUD
	status  *ui.StatusBar
	sched   *core.FixedStep

	scale    int
	paused   bool
	tickOnce bool
	seed     int64
}

// New constructs a Game for the provided controller.
func New(ctrl *Controller, scale int, delay time.Duration, seed int64) *Game {
	if scale <= 0 {
		scale = 1
	}
	size := ctrl.Sim().Size()
	return &Game{
		ctrl:    ctrl,
		painter: render.NewGridPainter(size.W, size.H),
		hud:     ui.NewHUD(ctrl.Sim(), HUDWidth),
		status:  ui.NewStatusBar(ctrl.Sim()),
		sched:   core.NewFixedStep(delay),
		scale:   scale,
		seed:    seed,
	}
}

// Reset reinitializes the simulation state with the provided seed.
func (g *Game) Reset(seed int64) error {
	g.seed = seed
	g.tickOnce = false
	g.sched.Restart()
	return g.ctrl.Reset(seed)
}

// Update handles per-frame input and runs scheduled growth ticks.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyG) || inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		g.paused = false
		g.ctrl.Start()
		g.sched.Restart()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		if err := g.Reset(g.seed); err != nil {
			return err
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		if err := g.Reset(time.Now().UnixNano()); err != nil {
			return err
		}
	}
	if err := g.pickTarget(); err != nil {
		return err
	}

	size := g.ctrl.Sim().Size()
	g.hud.Update(size.W * g.scale)
	g.status.Update(g.ctrl.Running(), g.paused, g.ctrl.Last())

	switch {
	case g.tickOnce:
		g.tickOnce = false
		if _, err := g.ctrl.Tick(); err != nil {
			return err
		}
	case g.ctrl.Running() && !g.paused && g.sched.ShouldStep():
		if _, err := g.ctrl.Tick(); err != nil {
			return err
		}
	}
	return nil
}

// pickTarget adopts the color of a clicked occupied cell as the new target.
func (g *Game) pickTarget() error {
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return nil
	}
	mx, my := ebiten.CursorPosition()
	grid := g.ctrl.Sim().Grid()
	col, row := mx/g.scale, my/g.scale
	if mx < 0 || my < 0 || col >= grid.W || !grid.InBounds(row) {
		return nil
	}
	c := grid.At(row, col)
	if !c.Occupied() {
		return nil
	}
	return g.ctrl.SetTarget(c)
}

// Draw renders the grid, the parameter panel and the status bar.
func (g *Game) Draw(screen *ebiten.Image) {
	size := g.ctrl.Sim().Size()
	g.painter.Draw(screen, g.ctrl.Sim(), g.scale)
	g.hud.Draw(screen, size.W*g.scale, size.H*g.scale)
	g.status.Draw(screen, size.H*g.scale)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.ctrl.Sim().Size()
	return s.W*g.scale + HUDWidth, s.H*g.scale + ui.StatusBarHeight
}
