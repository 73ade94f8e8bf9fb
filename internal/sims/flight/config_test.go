package flight

import (
	"bytes"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfigIsValid(t *testing.T) {
	require.NoError(t, DefaultConfig().Validate())
}

func TestFromMapOverrides(t *testing.T) {
	cfg := FromMap(map[string]string{
		"seed":                  "42",
		"start_z":               "900",
		"volcano_x":             "-10",
		"max_speed":             "12",
		"explosion_probability": "0.75",
		"gravity":               "3.5",
	})

	assert.Equal(t, int64(42), cfg.Seed)
	assert.Equal(t, mgl32.Vec3{0, 0, 900}, cfg.Start)
	assert.Equal(t, float32(-10), cfg.Volcano.X())
	assert.Equal(t, 12, cfg.Params.MaxSpeed)
	assert.Equal(t, float32(0.75), cfg.Params.ExplosionProbability)
	assert.Equal(t, float32(3.5), cfg.Params.Gravity)
	assert.Equal(t, DefaultConfig().Params.BombRadius, cfg.Params.BombRadius)
}

func TestFromMapNilReturnsDefaults(t *testing.T) {
	assert.Equal(t, DefaultConfig(), FromMap(nil))
}

func TestApplyReportsRejectedKeys(t *testing.T) {
	cfg := DefaultConfig()
	rejected := cfg.Apply(map[string]string{
		"seed":        "abc",
		"min_speed":   "1.5",
		"gravity":     "NaN",
		"nonsense":    "1",
		"bomb_radius": "50",
	})

	assert.ElementsMatch(t, []string{"seed", "min_speed", "gravity", "nonsense"}, rejected)
	assert.Equal(t, float32(50), cfg.Params.BombRadius)
	assert.Equal(t, DefaultConfig().Seed, cfg.Seed)
}

func TestApplyRepairsInvertedRanges(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Apply(map[string]string{
		"min_speed":            "5",
		"max_speed":            "2",
		"min_bomb_speed":       "400",
		"direction_min_length": "3",
	})

	assert.Equal(t, 5, cfg.Params.MaxSpeed)
	assert.Equal(t, float32(400), cfg.Params.MaxBombSpeed)
	assert.Equal(t, float32(3), cfg.Params.DirectionMaxLength)
	assert.NoError(t, cfg.Validate())
}

func TestValidateRejectsImpossibleParams(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(p *Params)
	}{
		{name: "vertical cone", mutate: func(p *Params) { p.DirectionAngle = 90 }},
		{name: "zero min length", mutate: func(p *Params) { p.DirectionMinLength = 0 }},
		{name: "zero radius", mutate: func(p *Params) { p.BombRadius = 0 }},
		{name: "zero speed step", mutate: func(p *Params) { p.SpeedStep = 0 }},
		{name: "probability above one", mutate: func(p *Params) { p.ExplosionProbability = 1.5 }},
		{name: "negative threshold", mutate: func(p *Params) { p.SpawnThreshold = -1 }},
		{name: "inverted speed range", mutate: func(p *Params) { p.MinSpeed, p.MaxSpeed = 5, 1 }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.mutate(&cfg.Params)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestParamValuesRoundTrip(t *testing.T) {
	want := DefaultConfig()
	want.Params.Theta = 4.5
	want.Params.SpawnThreshold = 40

	got := FromMap(want.Params.Values())

	assert.Equal(t, want.Params, got.Params)
	assert.Len(t, want.Params.Values(), len(ParamKeys()))
}

func TestParametersSnapshotWrites(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, DefaultConfig().Parameters().Write(&buf))

	out := buf.String()
	assert.Contains(t, out, "World\n")
	assert.Contains(t, out, "  seed=1337\n")
	assert.Contains(t, out, "  volcano=(-38500, -4000, 650)\n")
	assert.Contains(t, out, "  spawn_threshold=100\n")
	assert.Contains(t, out, "  gravity=9.81\n")
}
