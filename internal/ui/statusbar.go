//go:build ebiten

package ui

import (
	"fmt"

	"colorgrow/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

// StatusBarHeight is the height reserved below the grid.
const StatusBarHeight = 48

type statusProvider interface {
	Status() (core.Status, bool)
	Generation() int
}

// StatusBar draws the target/current/distance readout under the grid.
type StatusBar struct {
	sim   statusProvider
	line  string
	state string
}

// NewStatusBar returns a bar reading from sim. Sims without a status readout
// only show the key help.
func NewStatusBar(sim core.Sim) *StatusBar {
	sp, _ := sim.(statusProvider)
	return &StatusBar{sim: sp}
}

// Update captures the readout for the current frame.
func (s *StatusBar) Update(running, paused bool, last core.StepResult) {
	if s.sim == nil {
		return
	}
	s.line = ""
	if st, ok := s.sim.Status(); ok {
		s.line = st.String()
	}
	state := "idle"
	switch {
	case last == core.Halted:
		state = "target reached"
	case last == core.Capped:
		state = "generation cap"
	case running && paused:
		state = "paused"
	case running:
		state = "growing"
	}
	s.state = fmt.Sprintf("gen %d, %s", s.sim.Generation(), state)
}

// Draw paints the bar starting at row y.
func (s *StatusBar) Draw(screen *ebiten.Image, y int) {
	w := screen.Bounds().Dx()
	vector.DrawFilledRect(screen, 0, float32(y), float32(w), StatusBarHeight, panelBackground, false)
	face := basicfont.Face7x13
	text.Draw(screen, s.line, face, panelPadding, y+18, labelColor)
	help := s.state + "   [G] grow  [Space] pause  [N] step  [R/S] reset  click cell: pick target"
	text.Draw(screen, help, face, panelPadding, y+38, mutedColor)
}
