package flight

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"lava-flight/internal/terrain"
)

func TestParseCommandRoundTrip(t *testing.T) {
	for c := CommandNone; c <= CommandExit; c++ {
		parsed, ok := ParseCommand(c.String())
		assert.True(t, ok, c.String())
		assert.Equal(t, c, parsed)
	}

	parsed, ok := ParseCommand("  Pitch_Up ")
	assert.True(t, ok)
	assert.Equal(t, CommandPitchUp, parsed)

	_, ok = ParseCommand("barrel_roll")
	assert.False(t, ok)
	assert.Equal(t, "unknown", Command(200).String())
}

func TestApplySpeedCommands(t *testing.T) {
	s := NewScene(quietConfig(), terrain.Flat(0))

	s.Apply(CommandSpeedUp)
	s.Apply(CommandSpeedUp)
	s.Apply(CommandSpeedDown)
	assert.Equal(t, 1, s.Aircraft().Speed)

	s.Apply(CommandNone)
	assert.Equal(t, 1, s.Aircraft().Speed)
	assert.False(t, s.ShouldExit())
}

func TestOppositeCommandsCancel(t *testing.T) {
	pairs := [][2]Command{
		{CommandPitchUp, CommandPitchDown},
		{CommandRollLeft, CommandRollRight},
		{CommandYawLeft, CommandYawRight},
	}
	for _, pair := range pairs {
		s := NewScene(quietConfig(), terrain.Flat(0))
		s.Apply(pair[0])
		s.Apply(pair[1])

		got := s.Aircraft().Rotation
		for i, v := range got {
			want := float32(0)
			if i%5 == 0 {
				want = 1
			}
			assert.InDelta(t, want, v, 1e-5, pair[0].String())
		}
	}
}
