//go:build !ebiten

package ui

import "colorgrow/internal/core"

// StatusBarHeight is zero in headless builds.
const StatusBarHeight = 0

// StatusBar is a no-op placeholder used when the ebiten build tag is absent.
type StatusBar struct{}

// NewStatusBar constructs a stub status bar.
func NewStatusBar(core.Sim) *StatusBar { return &StatusBar{} }

// Update is a no-op in headless builds.
func (s *StatusBar) Update(bool, bool, core.StepResult) {}

// Draw is a no-op placeholder.
func (s *StatusBar) Draw(any, int) {}
