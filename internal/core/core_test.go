package core

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingSim struct {
	steps   int
	elapsed float32
	doneAt  int
}

func (c *countingSim) Name() string { return "counting" }
func (c *countingSim) Reset(int64) { c.steps, c.elapsed = 0, 0 }
func (c *countingSim) Step(dt float32) {
	c.steps++
	c.elapsed += dt
}
func (c *countingSim) Done() bool { return c.doneAt > 0 && c.steps >= c.doneAt }

func TestRunFixedStopsWhenDone(t *testing.T) {
	sim := &countingSim{doneAt: 7}
	steps := RunFixed(sim, 0.5, 100)
	assert.Equal(t, 7, steps)
	assert.InDelta(t, 3.5, sim.elapsed, 1e-6)
}

func TestRunFixedHonoursMaxSteps(t *testing.T) {
	sim := &countingSim{}
	assert.Equal(t, 25, RunFixed(sim, 1, 25))
	assert.Equal(t, 25, sim.steps)
}

func TestRunFixedAlreadyDone(t *testing.T) {
	sim := &countingSim{doneAt: 1, steps: 1}
	assert.Equal(t, 0, RunFixed(sim, 1, 10))
}

func TestFixedStepSeconds(t *testing.T) {
	fs := NewFixedStep(60)
	assert.InDelta(t, 1.0/60, fs.Seconds(), 1e-6)

	fs.SetTPS(0)
	assert.InDelta(t, 1.0/60, fs.Seconds(), 1e-6)

	fs.SetTPS(20)
	assert.InDelta(t, 0.05, fs.Seconds(), 1e-6)
}

func TestFixedStepShouldStep(t *testing.T) {
	clock := time.Unix(1000, 0)
	fs := NewFixedStep(10)
	fs.now = func() time.Time { return clock }

	// The accumulator starts primed so the first call ticks immediately.
	require.True(t, fs.ShouldStep())
	require.False(t, fs.ShouldStep())

	clock = clock.Add(50 * time.Millisecond)
	require.False(t, fs.ShouldStep())

	clock = clock.Add(60 * time.Millisecond)
	require.True(t, fs.ShouldStep())
	require.False(t, fs.ShouldStep())
}

func TestParameterSnapshotLines(t *testing.T) {
	snap := ParameterSnapshot{Groups: []ParameterGroup{
		{Name: "Aircraft", Params: []Parameter{{Key: "max_speed", Value: "9"}}},
		{Name: "Volcano", Params: []Parameter{{Key: "spawn_interval", Value: "2"}, {Key: "spawn_threshold", Value: "100"}}},
	}}

	assert.Equal(t, []string{
		"Aircraft",
		"  max_speed=9",
		"Volcano",
		"  spawn_interval=2",
		"  spawn_threshold=100",
	}, snap.Lines())

	var buf bytes.Buffer
	require.NoError(t, snap.Write(&buf))
	assert.Equal(t, "Aircraft\n  max_speed=9\nVolcano\n  spawn_interval=2\n  spawn_threshold=100\n", buf.String())
}
