package ui

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lava-flight/internal/sims/flight"
	"lava-flight/internal/terrain"
)

func TestHeading(t *testing.T) {
	cases := []struct {
		name     string
		rotation mgl32.Mat4
		heading  float64
		pitch    float64
	}{
		{name: "north", rotation: mgl32.Ident4(), heading: 0, pitch: 0},
		{name: "west", rotation: mgl32.HomogRotate3DZ(mgl32.DegToRad(90)), heading: 270, pitch: 0},
		{name: "east", rotation: mgl32.HomogRotate3DZ(mgl32.DegToRad(-90)), heading: 90, pitch: 0},
		{name: "climbing", rotation: mgl32.HomogRotate3DX(mgl32.DegToRad(30)), heading: 0, pitch: 30},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			heading, pitch := Heading(flight.AircraftState{Rotation: tc.rotation})
			assert.InDelta(t, tc.heading, heading, 1e-3)
			assert.InDelta(t, tc.pitch, pitch, 1e-3)
		})
	}
}

func TestStatusLines(t *testing.T) {
	cfg := flight.DefaultConfig()
	cfg.Start = mgl32.Vec3{100, 200, 1500}
	scene := flight.NewScene(cfg, terrain.Flat(300))
	scene.IncreaseSpeed()
	scene.Update(1.0 / 60)

	lines := StatusLines(scene)
	require.Len(t, lines, 7)
	assert.Equal(t, "Speed      1", lines[0])
	assert.Equal(t, "Altitude   1500 (AGL 1200)", lines[1])
	assert.Equal(t, "Position   100, 201", lines[2])
	assert.Equal(t, "Heading    000  pitch +0", lines[3])
	assert.Contains(t, lines[6], "frame 1")

	scene.RequestExit()
	lines = StatusLines(scene)
	assert.Equal(t, "FLIGHT OVER", lines[len(lines)-1])
}
