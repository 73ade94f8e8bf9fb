package ui

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl32"

	"lava-flight/internal/core"
	"lava-flight/internal/sims/flight"
)

// FlightView is the read side of a flight scene the panels draw from.
type FlightView interface {
	Aircraft() flight.AircraftState
	Stats() flight.FrameStats
	LavaBombCount() int
	LavaBombs(dst []flight.BombState) []flight.BombState
	Elapsed() float32
	Frames() int
	Terrain() flight.Terrain
	ShouldExit() bool
	Parameters() core.ParameterSnapshot
}

// Heading returns the compass heading of the nose in degrees, clockwise from
// +y, and its pitch above the horizon.
func Heading(state flight.AircraftState) (heading, pitch float64) {
	nose := state.Forward()
	heading = float64(mgl32.RadToDeg(float32(math.Atan2(float64(nose.X()), float64(nose.Y())))))
	if heading < 0 {
		heading += 360
	}
	z := math.Max(-1, math.Min(1, float64(nose.Z())))
	pitch = float64(mgl32.RadToDeg(float32(math.Asin(z))))
	return heading, pitch
}

// StatusLines describes the aircraft and the lava field for the HUD.
func StatusLines(v FlightView) []string {
	state := v.Aircraft()
	pos := state.Position
	ground := v.Terrain().Height(pos.X(), pos.Y())
	heading, pitch := Heading(state)
	stats := v.Stats()

	lines := []string{
		fmt.Sprintf("Speed      %d", state.Speed),
		fmt.Sprintf("Altitude   %.0f (AGL %.0f)", pos.Z(), pos.Z()-ground),
		fmt.Sprintf("Position   %.0f, %.0f", pos.X(), pos.Y()),
		fmt.Sprintf("Heading    %03.0f  pitch %+.0f", heading, pitch),
		fmt.Sprintf("Lava bombs %d", v.LavaBombCount()),
		fmt.Sprintf("Last frame died %d  exploded %d  erupted %d", stats.Died, stats.Explosions, stats.VolcanoSpawns),
		fmt.Sprintf("Time       %.1fs  frame %d", v.Elapsed(), v.Frames()),
	}
	if v.ShouldExit() {
		lines = append(lines, "FLIGHT OVER")
	}
	return lines
}
