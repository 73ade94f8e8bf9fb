//go:build ebiten

package ui

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"lava-flight/internal/render"
	"lava-flight/internal/sims/flight"
	"lava-flight/internal/terrain"
)

const (
	minimapSize   = 160
	minimapMargin = 10
)

// Overlay draws the top-down minimap in the corner of the cockpit view. M
// toggles it.
type Overlay struct {
	view    FlightView
	minimap *render.Minimap
	painter *render.Painter
	show    bool

	markers render.Markers
	bombs   []flight.BombState
	volcano mgl32.Vec3
}

// NewOverlay builds the minimap over the whole terrain grid.
func NewOverlay(view FlightView, grid *terrain.Grid, volcano mgl32.Vec3) *Overlay {
	minX, minY, maxX, maxY := grid.Extent()
	span := max(maxX-minX, maxY-minY)
	center := mgl32.Vec2{(minX + maxX) / 2, (minY + maxY) / 2}

	m := render.NewMinimap(minimapSize, minimapSize, center, span)
	m.MinHeight, m.MaxHeight = grid.Range()
	m.BakeTerrain(grid)

	return &Overlay{
		view:    view,
		minimap: m,
		painter: render.NewPainter(minimapSize, minimapSize),
		show:    true,
		volcano: volcano,
	}
}

// Update handles the toggle and gathers the markers for this frame.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyM) {
		o.show = !o.show
	}
	if !o.show {
		return
	}
	o.markers.Aircraft = o.view.Aircraft().Position
	o.markers.Volcano = o.volcano
	o.markers.Bombs = o.markers.Bombs[:0]
	o.bombs = o.view.LavaBombs(o.bombs[:0])
	for _, b := range o.bombs {
		o.markers.Bombs = append(o.markers.Bombs, b.Position)
	}
}

// Draw renders the minimap into the top-left corner.
func (o *Overlay) Draw(screen *ebiten.Image) {
	if !o.show {
		return
	}
	pixels := o.minimap.Render(o.markers)
	o.painter.Blit(screen, pixels, minimapMargin, minimapMargin, 1)
}
