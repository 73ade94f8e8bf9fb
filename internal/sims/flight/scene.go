package flight

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"

	"lava-flight/internal/collision"
	"lava-flight/internal/core"
	"lava-flight/internal/random"
)

// explosionFragments is the number of bombs an exploding collision point
// releases.
const explosionFragments = 6

// FrameStats counts what happened during the most recent Update.
type FrameStats struct {
	Died          int
	Explosions    int
	Fragments     int
	VolcanoSpawns int
	Population    int
}

// BombState is a copy of one lava bomb handed to hosts.
type BombState struct {
	Position mgl32.Vec3
	Velocity mgl32.Vec3
	Age      float32
}

// Scene owns the aircraft, the lava bomb population and the volcano.
type Scene struct {
	cfg    Config
	params Params

	terrain Terrain
	sampler *random.Sampler
	log     zerolog.Logger
	metrics *sceneMetrics

	aircraft aircraft
	bombs    []LavaBomb
	// collisionPoints is scratch space for the refresh step; it is empty
	// between frames.
	collisionPoints []mgl32.Vec3

	chronometer float32
	elapsed     float32
	frames      int
	stats       FrameStats
	shouldExit  bool
}

// Option customises a Scene at construction.
type Option func(*Scene)

// WithLogger routes scene events to l.
func WithLogger(l zerolog.Logger) Option {
	return func(s *Scene) { s.log = l }
}

// WithSampler replaces the seeded sampler built from Config.Seed.
func WithSampler(sampler *random.Sampler) Option {
	return func(s *Scene) { s.sampler = sampler }
}

// WithMeter records scene metrics on m instead of the global meter provider.
func WithMeter(m metric.Meter) Option {
	return func(s *Scene) {
		sm, err := newSceneMetrics(m)
		if err != nil {
			s.log.Warn().Err(err).Msg("scene metrics disabled")
			return
		}
		s.metrics = sm
	}
}

// NewScene builds a scene over terrain. The terrain must stay valid for the
// lifetime of the scene.
func NewScene(cfg Config, terrain Terrain, opts ...Option) *Scene {
	s := &Scene{
		cfg:     cfg,
		params:  cfg.Params,
		terrain: terrain,
		log:     zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.sampler == nil {
		s.sampler = random.New(cfg.Seed)
	}
	if s.metrics == nil {
		sm, err := newSceneMetrics(meter())
		if err != nil {
			s.log.Warn().Err(err).Msg("falling back to no-op metrics")
			sm, _ = newSceneMetrics(noop.NewMeterProvider().Meter(instrumentationName))
		}
		s.metrics = sm
	}
	s.resetState()
	return s
}

// Name implements core.Sim.
func (s *Scene) Name() string { return "flight" }

// Reset restores the initial aircraft pose, clears the population and reseeds
// the sampler. A zero seed reuses the configured seed.
func (s *Scene) Reset(seed int64) {
	if seed == 0 {
		seed = s.cfg.Seed
	}
	s.sampler.Reseed(seed)
	s.resetState()
}

func (s *Scene) resetState() {
	s.aircraft = aircraft{
		position: s.cfg.Start,
		rotation: mgl32.Ident4(),
		speed:    s.params.MinSpeed,
	}
	s.bombs = s.bombs[:0]
	s.collisionPoints = s.collisionPoints[:0]
	s.chronometer = 0
	s.elapsed = 0
	s.frames = 0
	s.stats = FrameStats{}
	s.shouldExit = false
	s.metrics.population.Store(0)
}

// Step implements core.Sim.
func (s *Scene) Step(dt float32) { s.Update(dt) }

// Done implements core.Sim.
func (s *Scene) Done() bool { return s.shouldExit }

// ShouldExit reports whether the aircraft crashed or an exit was requested.
func (s *Scene) ShouldExit() bool { return s.shouldExit }

// Update advances the scene by dt seconds.
func (s *Scene) Update(dt float32) {
	s.chronometer += dt
	s.elapsed += dt
	s.frames++
	s.stats = FrameStats{}

	s.aircraft.move()
	for i := range s.bombs {
		s.bombs[i].Update(dt)
	}
	s.checkAircraftCollisions()
	s.checkBombCollisions()
	s.refreshLavaBombs()

	s.stats.Population = len(s.bombs)
	s.metrics.population.Store(int64(len(s.bombs)))
}

// aircraftRadius is the largest distance the aircraft travels in one frame, so
// it cannot tunnel through terrain between checks.
func (s *Scene) aircraftRadius() float32 { return float32(s.params.MaxSpeed) }

func (s *Scene) checkAircraftCollisions() {
	pos := s.aircraft.position
	radius := s.aircraftRadius()

	ground := mgl32.Vec3{pos.X(), pos.Y(), s.terrain.Height(pos.X(), pos.Y())}
	if collision.SpherePoint(pos, radius, ground) {
		s.crash("terrain")
	}
	for i := range s.bombs {
		b := &s.bombs[i]
		if !b.alive {
			continue
		}
		if collision.SphereSphere(pos, radius, b.position, s.params.BombRadius) {
			s.crash("lava_bomb")
		}
	}
}

func (s *Scene) crash(cause string) {
	if s.shouldExit {
		return
	}
	s.shouldExit = true
	s.metrics.crash(cause)
	s.log.Info().
		Str("cause", cause).
		Int("frame", s.frames).
		Float32("x", s.aircraft.position.X()).
		Float32("y", s.aircraft.position.Y()).
		Float32("z", s.aircraft.position.Z()).
		Msg("aircraft crashed")
}

func (s *Scene) checkBombCollisions() {
	for i := 0; i < len(s.bombs); i++ {
		for j := i + 1; j < len(s.bombs); j++ {
			if !s.bombs[i].alive && !s.bombs[j].alive {
				continue
			}
			s.bombs[i].CheckCollision(&s.bombs[j])
		}
	}
}

// refreshLavaBombs compacts the population, then spawns explosion fragments at
// the recorded death points and finally rolls the volcano.
func (s *Scene) refreshLavaBombs() {
	kept := s.bombs[:0]
	for _, b := range s.bombs {
		if b.alive {
			kept = append(kept, b)
			continue
		}
		s.collisionPoints = append(s.collisionPoints, b.position)
	}
	// Drop references held by the discarded tail.
	clear(s.bombs[len(kept):])
	s.bombs = kept
	s.stats.Died = len(s.collisionPoints)

	for _, point := range s.collisionPoints {
		if !s.sampler.Roll(s.params.ExplosionProbability) {
			continue
		}
		for range explosionFragments {
			s.bombs = append(s.bombs, NewLavaBomb(point, s.terrain, &s.params, s.sampler))
		}
		s.stats.Explosions++
		s.stats.Fragments += explosionFragments
		s.metrics.explosion(explosionFragments)
		s.log.Debug().
			Float32("x", point.X()).
			Float32("y", point.Y()).
			Float32("z", point.Z()).
			Msg("lava bomb exploded")
	}
	s.collisionPoints = s.collisionPoints[:0]

	if s.chronometer >= s.params.SpawnInterval && len(s.bombs) < s.params.SpawnThreshold {
		s.bombs = append(s.bombs, NewLavaBomb(s.cfg.Volcano, s.terrain, &s.params, s.sampler))
		s.chronometer = 0
		s.stats.VolcanoSpawns++
		s.metrics.volcanoSpawn()
		s.log.Debug().Int("population", len(s.bombs)).Msg("volcano erupted")
	}
}

// Aircraft returns a copy of the aircraft state.
func (s *Scene) Aircraft() AircraftState {
	return AircraftState{
		Position: s.aircraft.position,
		Rotation: s.aircraft.rotation,
		Speed:    s.aircraft.speed,
		Radius:   s.aircraftRadius(),
	}
}

// LavaBombs appends a copy of every bomb to dst and returns it.
func (s *Scene) LavaBombs(dst []BombState) []BombState {
	for i := range s.bombs {
		b := &s.bombs[i]
		dst = append(dst, BombState{Position: b.position, Velocity: b.velocity, Age: b.age})
	}
	return dst
}

// LavaBombCount returns the current population size.
func (s *Scene) LavaBombCount() int { return len(s.bombs) }

// Stats returns the counters of the last Update.
func (s *Scene) Stats() FrameStats { return s.stats }

// Elapsed returns the simulated seconds since the last reset.
func (s *Scene) Elapsed() float32 { return s.elapsed }

// Frames returns the number of updates since the last reset.
func (s *Scene) Frames() int { return s.frames }

// Config returns the configuration the scene was built with.
func (s *Scene) Config() Config { return s.cfg }

// Terrain returns the terrain the scene flies over.
func (s *Scene) Terrain() Terrain { return s.terrain }

// Parameters implements core.ParameterProvider.
func (s *Scene) Parameters() core.ParameterSnapshot { return s.cfg.Parameters() }

var (
	_ core.Sim               = (*Scene)(nil)
	_ core.ParameterProvider = (*Scene)(nil)
)
