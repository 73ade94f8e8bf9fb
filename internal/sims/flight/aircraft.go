package flight

import "github.com/go-gl/mathgl/mgl32"

// forward is the aircraft's nose direction before any rotation.
var forward = mgl32.Vec3{0, 1, 0}

type aircraft struct {
	position mgl32.Vec3
	rotation mgl32.Mat4
	speed    int
}

// AircraftState is a copy of the aircraft kinematics for hosts.
type AircraftState struct {
	Position mgl32.Vec3
	Rotation mgl32.Mat4
	Speed    int
	// Radius is the collision radius used against terrain and bombs.
	Radius float32
}

// Forward returns the unit vector the nose points along.
func (a AircraftState) Forward() mgl32.Vec3 {
	return a.Rotation.Mul4x1(forward.Vec4(0)).Vec3()
}

// rotate pre-multiplies the orientation, so r is applied after the current
// attitude.
func (a *aircraft) rotate(r mgl32.Mat4) {
	a.rotation = r.Mul4(a.rotation)
}

// move translates the aircraft speed units along its nose. Rotations keep the
// forward vector unit length, so each frame moves exactly speed units.
func (a *aircraft) move() {
	if a.speed <= 0 {
		return
	}
	direction := a.rotation.Mul4x1(forward.Vec4(0)).Vec3()
	a.position = a.position.Add(direction.Mul(float32(a.speed)))
}

func (a *aircraft) changeSpeed(delta, lo, hi int) {
	next := a.speed + delta
	if next > hi {
		next = hi
	}
	if next < lo {
		next = lo
	}
	a.speed = next
}
