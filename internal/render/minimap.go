package render

import (
	"image/color"

	"github.com/go-gl/mathgl/mgl32"
)

// HeightField is the terrain view the minimap needs.
type HeightField interface {
	Height(x, y float32) float32
}

// HeightPalette shades terrain from sea level to the summit.
var HeightPalette = []color.RGBA{
	{R: 24, G: 52, B: 92, A: 255},
	{R: 46, G: 94, B: 52, A: 255},
	{R: 74, G: 118, B: 58, A: 255},
	{R: 112, G: 132, B: 70, A: 255},
	{R: 138, G: 124, B: 86, A: 255},
	{R: 120, G: 100, B: 84, A: 255},
	{R: 98, G: 86, B: 82, A: 255},
	{R: 164, G: 160, B: 158, A: 255},
}

var (
	AircraftColor = color.RGBA{R: 250, G: 250, B: 250, A: 255}
	BombColor     = color.RGBA{R: 255, G: 96, B: 16, A: 255}
	VolcanoColor  = color.RGBA{R: 200, G: 20, B: 20, A: 255}
)

// Minimap renders a top-down view of a square world region into an RGBA
// buffer. Row 0 is the northern (largest y) edge.
type Minimap struct {
	W, H int

	// Center and Span select the world region shown, in world units.
	Center mgl32.Vec2
	Span   float32

	MinHeight, MaxHeight float32

	cells   []uint8
	buf     []byte
	terrain []byte
}

// NewMinimap allocates a w x h minimap covering span world units around
// center.
func NewMinimap(w, h int, center mgl32.Vec2, span float32) *Minimap {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &Minimap{
		W:         w,
		H:         h,
		Center:    center,
		Span:      span,
		MaxHeight: 1,
		cells:     make([]uint8, w*h),
		buf:       make([]byte, 4*w*h),
		terrain:   make([]byte, 4*w*h),
	}
}

// WorldToPixel maps a world position onto the minimap. ok is false outside
// the map.
func (m *Minimap) WorldToPixel(x, y float32) (px, py int, ok bool) {
	half := m.Span / 2
	u := (x - (m.Center.X() - half)) / m.Span
	v := ((m.Center.Y() + half) - y) / m.Span
	px = int(u * float32(m.W))
	py = int(v * float32(m.H))
	if u < 0 || v < 0 || px >= m.W || py >= m.H {
		return 0, 0, false
	}
	return px, py, true
}

func (m *Minimap) pixelToWorld(px, py int) (float32, float32) {
	half := m.Span / 2
	x := m.Center.X() - half + (float32(px)+0.5)/float32(m.W)*m.Span
	y := m.Center.Y() + half - (float32(py)+0.5)/float32(m.H)*m.Span
	return x, y
}

// BakeTerrain samples the height field once per pixel and caches the shaded
// result. Call it again after moving or zooming the map.
func (m *Minimap) BakeTerrain(field HeightField) {
	levels := len(HeightPalette)
	spread := m.MaxHeight - m.MinHeight
	if spread <= 0 {
		spread = 1
	}
	for py := 0; py < m.H; py++ {
		for px := 0; px < m.W; px++ {
			x, y := m.pixelToWorld(px, py)
			t := (field.Height(x, y) - m.MinHeight) / spread
			level := int(t * float32(levels))
			if level < 0 {
				level = 0
			}
			if level >= levels {
				level = levels - 1
			}
			m.cells[py*m.W+px] = uint8(level)
		}
	}
	fillPaletteRGBA(m.terrain, m.cells, HeightPalette)
}

// Markers are the moving objects drawn over the terrain.
type Markers struct {
	Aircraft mgl32.Vec3
	Volcano  mgl32.Vec3
	Bombs    []mgl32.Vec3
}

// Render composes the baked terrain with the markers and returns the RGBA
// pixels. The returned slice is reused by the next call.
func (m *Minimap) Render(markers Markers) []byte {
	copy(m.buf, m.terrain)
	m.plot(markers.Volcano, 2, VolcanoColor)
	for _, b := range markers.Bombs {
		m.plot(b, 0, BombColor)
	}
	m.plot(markers.Aircraft, 1, AircraftColor)
	return m.buf
}

// Pixels returns the buffer filled by the last Render.
func (m *Minimap) Pixels() []byte { return m.buf }

func (m *Minimap) plot(p mgl32.Vec3, size int, col color.RGBA) {
	cx, cy, ok := m.WorldToPixel(p.X(), p.Y())
	if !ok {
		return
	}
	for dy := -size; dy <= size; dy++ {
		for dx := -size; dx <= size; dx++ {
			x, y := cx+dx, cy+dy
			if x < 0 || y < 0 || x >= m.W || y >= m.H {
				continue
			}
			setPixel(m.buf, y*m.W+x, col)
		}
	}
}
