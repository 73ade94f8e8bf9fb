package flight

import (
	"github.com/go-gl/mathgl/mgl32"

	"lava-flight/internal/collision"
	"lava-flight/internal/random"
)

// Terrain answers height queries for the simulation. Implementations must be
// safe to share between the scene and every lava bomb and must outlive them.
type Terrain interface {
	Height(x, y float32) float32
}

// LavaBomb is a ballistic particle ejected by the volcano or by an explosion.
// A bomb is alive until it touches terrain or another aged bomb; death is
// terminal.
type LavaBomb struct {
	position mgl32.Vec3
	velocity mgl32.Vec3
	// age sums the time steps the bomb has lived through, in seconds.
	age     float32
	alive   bool
	terrain Terrain
	params  *Params
}

// NewLavaBomb launches a bomb from position with a random speed and a random
// direction inside the upward launch cone.
func NewLavaBomb(position mgl32.Vec3, terrain Terrain, params *Params, sampler *random.Sampler) LavaBomb {
	speed := sampler.UniformRange(params.MinBombSpeed, params.MaxBombSpeed)
	direction := sampler.UnitVectorInUpwardsCone(params.DirectionAngle, params.DirectionMinLength, params.DirectionMaxLength)
	return LavaBomb{
		position: position,
		velocity: direction.Mul(speed),
		alive:    true,
		terrain:  terrain,
		params:   params,
	}
}

// Position returns the bomb centre.
func (b *LavaBomb) Position() mgl32.Vec3 { return b.position }

// Velocity returns the current velocity in world units per second.
func (b *LavaBomb) Velocity() mgl32.Vec3 { return b.velocity }

// Age returns the number of seconds the bomb has been simulated.
func (b *LavaBomb) Age() float32 { return b.age }

// Alive reports whether the bomb is still in flight.
func (b *LavaBomb) Alive() bool { return b.alive }

// Update integrates the bomb over dt seconds and checks it against the
// terrain. Gravity acts on the vertical axis only.
func (b *LavaBomb) Update(dt float32) {
	if !b.alive {
		return
	}
	b.age += dt
	b.velocity[2] -= b.params.Gravity * dt
	b.position = b.position.Add(b.velocity.Mul(dt))
	b.checkTerrainCollision()
}

// checkTerrainCollision tests the terrain point directly above or below the
// bomb against the bomb's sphere. It is not gated by age.
func (b *LavaBomb) checkTerrainCollision() {
	x, y := b.position.X(), b.position.Y()
	ground := mgl32.Vec3{x, y, b.terrain.Height(x, y)}
	if collision.SpherePoint(b.position, b.params.BombRadius, ground) {
		b.alive = false
	}
}

// CheckCollision kills both bombs when their spheres touch, provided both are
// at least MinLifespan seconds old.
func (b *LavaBomb) CheckCollision(other *LavaBomb) {
	minLifespan := b.params.MinLifespan
	if b.age < minLifespan || other.age < minLifespan {
		return
	}
	if collision.SphereSphere(b.position, b.params.BombRadius, other.position, other.params.BombRadius) {
		b.alive = false
		other.alive = false
	}
}
