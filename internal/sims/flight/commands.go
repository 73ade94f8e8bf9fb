package flight

import (
	"strings"

	"github.com/go-gl/mathgl/mgl32"
)

// Command is a discrete pilot input.
type Command uint8

const (
	CommandNone Command = iota
	CommandPitchUp
	CommandPitchDown
	CommandRollLeft
	CommandRollRight
	CommandYawLeft
	CommandYawRight
	CommandSpeedUp
	CommandSpeedDown
	CommandExit
)

var commandNames = [...]string{
	CommandNone:      "none",
	CommandPitchUp:   "pitch_up",
	CommandPitchDown: "pitch_down",
	CommandRollLeft:  "roll_left",
	CommandRollRight: "roll_right",
	CommandYawLeft:   "yaw_left",
	CommandYawRight:  "yaw_right",
	CommandSpeedUp:   "speed_up",
	CommandSpeedDown: "speed_down",
	CommandExit:      "exit",
}

func (c Command) String() string {
	if int(c) < len(commandNames) {
		return commandNames[c]
	}
	return "unknown"
}

// ParseCommand maps a command name such as "pitch_up" back to its Command.
func ParseCommand(name string) (Command, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, n := range commandNames {
		if n == name {
			return Command(i), true
		}
	}
	return CommandNone, false
}

// Apply executes a pilot command. Commands take effect immediately and do not
// depend on frame time.
func (s *Scene) Apply(cmd Command) {
	switch cmd {
	case CommandPitchUp:
		s.PitchUp()
	case CommandPitchDown:
		s.PitchDown()
	case CommandRollLeft:
		s.RollLeft()
	case CommandRollRight:
		s.RollRight()
	case CommandYawLeft:
		s.YawLeft()
	case CommandYawRight:
		s.YawRight()
	case CommandSpeedUp:
		s.IncreaseSpeed()
	case CommandSpeedDown:
		s.DecreaseSpeed()
	case CommandExit:
		s.RequestExit()
	}
}

func (s *Scene) theta() float32 { return mgl32.DegToRad(s.params.Theta) }

// PitchUp raises the nose by Theta degrees about the x axis.
func (s *Scene) PitchUp() { s.aircraft.rotate(mgl32.HomogRotate3DX(s.theta())) }

// PitchDown lowers the nose by Theta degrees about the x axis.
func (s *Scene) PitchDown() { s.aircraft.rotate(mgl32.HomogRotate3DX(-s.theta())) }

// RollLeft banks Theta degrees about the y axis, left wing down.
func (s *Scene) RollLeft() { s.aircraft.rotate(mgl32.HomogRotate3DY(-s.theta())) }

// RollRight banks Theta degrees about the y axis, right wing down.
func (s *Scene) RollRight() { s.aircraft.rotate(mgl32.HomogRotate3DY(s.theta())) }

// YawLeft turns the nose Theta degrees counter-clockwise seen from above.
func (s *Scene) YawLeft() { s.aircraft.rotate(mgl32.HomogRotate3DZ(s.theta())) }

// YawRight turns the nose Theta degrees clockwise seen from above.
func (s *Scene) YawRight() { s.aircraft.rotate(mgl32.HomogRotate3DZ(-s.theta())) }

// IncreaseSpeed adds SpeedStep, capped at MaxSpeed.
func (s *Scene) IncreaseSpeed() {
	s.aircraft.changeSpeed(s.params.SpeedStep, s.params.MinSpeed, s.params.MaxSpeed)
}

// DecreaseSpeed subtracts SpeedStep, floored at MinSpeed.
func (s *Scene) DecreaseSpeed() {
	s.aircraft.changeSpeed(-s.params.SpeedStep, s.params.MinSpeed, s.params.MaxSpeed)
}

// RequestExit raises the should-exit flag without a crash, as the host's quit
// key does.
func (s *Scene) RequestExit() { s.shouldExit = true }
