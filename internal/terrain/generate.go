package terrain

import (
	"math"
	"math/rand/v2"
)

// Volcano describes the cone raised around the vent by Generate.
type Volcano struct {
	X, Y   float32
	Peak   float32
	Radius float32
}

// Hills controls the rolling base relief produced by Generate.
type Hills struct {
	Base      float32
	Amplitude float32
	// Wavelength is measured in world units.
	Wavelength float32
}

// DefaultHills returns gentle relief suited to the default flight envelope.
func DefaultHills() Hills {
	return Hills{Base: 50, Amplitude: 120, Wavelength: 9000}
}

// Generate builds a w*h grid centred on the world origin: layered sine relief
// with seed-dependent phases, plus a cone peaking at the volcano.
func Generate(w, h int, cellSize float32, seed int64, hills Hills, volcano Volcano) *Grid {
	g := NewGrid(w, h, cellSize)
	g.Center()

	rng := rand.New(rand.NewPCG(uint64(seed), 0x7e11a1))
	const octaves = 3
	var phases [octaves][2]float64
	for o := range phases {
		phases[o][0] = rng.Float64() * 2 * math.Pi
		phases[o][1] = rng.Float64() * 2 * math.Pi
	}

	wavelength := float64(hills.Wavelength)
	if wavelength <= 0 {
		wavelength = 1
	}

	for j := 0; j < g.H; j++ {
		y := float64(g.OriginY) + float64(j)*float64(cellSize)
		for i := 0; i < g.W; i++ {
			x := float64(g.OriginX) + float64(i)*float64(cellSize)

			relief := 0.0
			amp := 1.0
			freq := 2 * math.Pi / wavelength
			norm := 0.0
			for o := 0; o < octaves; o++ {
				relief += amp * 0.5 * (math.Sin(x*freq+phases[o][0]) + math.Sin(y*freq*1.3+phases[o][1]))
				norm += amp
				amp *= 0.5
				freq *= 2.1
			}
			height := float64(hills.Base) + float64(hills.Amplitude)*(0.5+0.5*relief/norm)

			if volcano.Radius > 0 {
				d := math.Hypot(x-float64(volcano.X), y-float64(volcano.Y))
				if d < float64(volcano.Radius) {
					falloff := 1 - d/float64(volcano.Radius)
					cone := float64(volcano.Peak) * falloff * falloff
					if cone > height {
						height = cone
					}
				}
			}

			g.data[g.Index(i, j)] = float32(height)
		}
	}
	return g
}
