//go:build !ebiten

package ui

import (
	"github.com/go-gl/mathgl/mgl32"

	"lava-flight/internal/terrain"
)

// Overlay is a no-op placeholder for headless builds.
type Overlay struct{}

// NewOverlay returns nil in the headless build.
func NewOverlay(FlightView, *terrain.Grid, mgl32.Vec3) *Overlay { return nil }

// Update is a no-op in the headless build.
func (o *Overlay) Update() {}

// Draw is a no-op in the headless build.
func (o *Overlay) Draw(any) {}
