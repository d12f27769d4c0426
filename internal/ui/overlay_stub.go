//go:build !ebiten

package ui

import "metablob/internal/core"

// Overlay is a no-op placeholder used when the ebiten build tag is absent.
type Overlay struct{}

// NewOverlay constructs a stub overlay.
func NewOverlay(core.Shape, int) *Overlay { return &Overlay{} }

// SetStatus is a no-op in headless builds.
func (o *Overlay) SetStatus(string) {}

// Update is a no-op in headless builds.
func (o *Overlay) Update() {}

// Draw is a no-op placeholder.
func (o *Overlay) Draw(any) {}
