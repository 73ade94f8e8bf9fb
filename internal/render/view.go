//go:build ebiten

package render

import (
	"image/color"
	"math"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	groundSpacing = 400
	groundReach   = 12000
)

var (
	skyColor    = color.RGBA{R: 92, G: 132, B: 186, A: 255}
	groundColor = color.RGBA{R: 58, G: 82, B: 44, A: 255}
	bombCore    = color.RGBA{R: 255, G: 170, B: 40, A: 255}
)

// View draws the world from the cockpit: a dotted ground lattice, the volcano
// vent and the lava bombs.
type View struct {
	field   HeightField
	volcano mgl32.Vec3
}

// NewView builds a cockpit view over field.
func NewView(field HeightField, volcano mgl32.Vec3) *View {
	return &View{field: field, volcano: volcano}
}

// Draw renders the view through cam. bombRadius is the world radius of one
// lava bomb.
func (v *View) Draw(dst *ebiten.Image, cam Camera, bombs []mgl32.Vec3, bombRadius float32) {
	dst.Fill(skyColor)
	v.drawGround(dst, cam)

	if x, y, ok := cam.Project(v.volcano); ok {
		r := max(cam.ScreenRadius(400, cam.Depth(v.volcano)), 2)
		vector.DrawFilledCircle(dst, x, y, r, VolcanoColor, true)
	}

	for _, b := range bombs {
		x, y, ok := cam.Project(b)
		if !ok {
			continue
		}
		r := max(cam.ScreenRadius(bombRadius, cam.Depth(b)), 1.5)
		vector.DrawFilledCircle(dst, x, y, r, BombColor, true)
		vector.DrawFilledCircle(dst, x, y, r/2, bombCore, true)
	}

	cx, cy := float32(cam.Width)/2, float32(cam.Height)/2
	vector.StrokeLine(dst, cx-12, cy, cx-4, cy, 1, AircraftColor, false)
	vector.StrokeLine(dst, cx+4, cy, cx+12, cy, 1, AircraftColor, false)
	vector.StrokeLine(dst, cx, cy-12, cx, cy-4, 1, AircraftColor, false)
}

func (v *View) drawGround(dst *ebiten.Image, cam Camera) {
	// Snap the lattice to world coordinates so it does not swim with the
	// aircraft.
	ox := float32(math.Floor(float64(cam.Position.X()/groundSpacing))) * groundSpacing
	oy := float32(math.Floor(float64(cam.Position.Y()/groundSpacing))) * groundSpacing
	steps := groundReach / groundSpacing
	for j := -steps; j <= steps; j++ {
		for i := -steps; i <= steps; i++ {
			x := ox + float32(i)*groundSpacing
			y := oy + float32(j)*groundSpacing
			p := mgl32.Vec3{x, y, v.field.Height(x, y)}
			sx, sy, ok := cam.Project(p)
			if !ok {
				continue
			}
			depth := cam.Depth(p)
			size := max(float32(3)-depth/4000, 1)
			vector.DrawFilledRect(dst, sx-size/2, sy-size/2, size, size, groundColor, false)
		}
	}
}
