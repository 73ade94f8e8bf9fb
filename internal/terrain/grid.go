// Package terrain implements height services for the flight simulation.
package terrain

// Flat is a terrain of constant height.
type Flat float32

// Height returns the constant height regardless of position.
func (f Flat) Height(x, y float32) float32 { return float32(f) }

// Grid stores a regular height field in row-major order. Sample (i, j) sits at
// world position (OriginX + i*CellSize, OriginY + j*CellSize).
type Grid struct {
	W, H     int
	CellSize float32
	OriginX  float32
	OriginY  float32
	data     []float32
}

// NewGrid allocates a zero-height grid with the given dimensions.
func NewGrid(w, h int, cellSize float32) *Grid {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	if cellSize <= 0 {
		cellSize = 1
	}
	return &Grid{W: w, H: h, CellSize: cellSize, data: make([]float32, w*h)}
}

// Cells exposes the backing slice so callers can read/write values directly.
func (g *Grid) Cells() []float32 { return g.data }

// Index returns the linear slice index for sample (i, j).
func (g *Grid) Index(i, j int) int { return j*g.W + i }

// At returns the sample at (i, j), clamping indices to the grid.
func (g *Grid) At(i, j int) float32 {
	return g.data[g.Index(clamp(i, 0, g.W-1), clamp(j, 0, g.H-1))]
}

// Set stores a sample. Out-of-range indices are ignored.
func (g *Grid) Set(i, j int, h float32) {
	if i < 0 || i >= g.W || j < 0 || j >= g.H {
		return
	}
	g.data[g.Index(i, j)] = h
}

// Center moves the origin so the grid is centred on the world origin.
func (g *Grid) Center() {
	g.OriginX = -float32(g.W-1) * g.CellSize / 2
	g.OriginY = -float32(g.H-1) * g.CellSize / 2
}

// Extent returns the world-space bounds covered by the samples.
func (g *Grid) Extent() (minX, minY, maxX, maxY float32) {
	return g.OriginX, g.OriginY,
		g.OriginX + float32(g.W-1)*g.CellSize,
		g.OriginY + float32(g.H-1)*g.CellSize
}

// Range returns the lowest and highest sample.
func (g *Grid) Range() (lo, hi float32) {
	lo, hi = g.data[0], g.data[0]
	for _, v := range g.data[1:] {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	return lo, hi
}

// Height bilinearly interpolates the grid at world position (x, y). Positions
// outside the grid take the height of the nearest edge.
func (g *Grid) Height(x, y float32) float32 {
	fx := (x - g.OriginX) / g.CellSize
	fy := (y - g.OriginY) / g.CellSize

	maxX := float32(g.W - 1)
	maxY := float32(g.H - 1)
	fx = clampF(fx, 0, maxX)
	fy = clampF(fy, 0, maxY)

	i0 := int(fx)
	j0 := int(fy)
	tx := fx - float32(i0)
	ty := fy - float32(j0)

	h00 := g.At(i0, j0)
	h10 := g.At(i0+1, j0)
	h01 := g.At(i0, j0+1)
	h11 := g.At(i0+1, j0+1)

	top := h00 + (h10-h00)*tx
	bottom := h01 + (h11-h01)*tx
	return top + (bottom-top)*ty
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clampF(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
