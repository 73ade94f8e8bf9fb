package flight

import (
	"errors"
	"fmt"
	"math"
	"strconv"

	"github.com/go-gl/mathgl/mgl32"
)

// Params holds the tunable constants of the aircraft, the lava bombs and the
// volcano.
type Params struct {
	// Theta is the rotation applied by one pilot command, in degrees.
	Theta     float32
	MinSpeed  int
	MaxSpeed  int
	SpeedStep int

	MinBombSpeed       float32
	MaxBombSpeed       float32
	DirectionAngle     float32
	DirectionMinLength float32
	DirectionMaxLength float32
	Gravity            float32
	BombRadius         float32
	// MinLifespan is the age in seconds both bombs need before they can
	// collide with each other.
	MinLifespan float32

	SpawnInterval        float32
	SpawnThreshold       int
	ExplosionProbability float32
}

// Config controls a flight scene.
type Config struct {
	Seed int64

	Start   mgl32.Vec3
	Volcano mgl32.Vec3

	Params Params
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Seed:    1337,
		Start:   mgl32.Vec3{0, 0, 1500},
		Volcano: mgl32.Vec3{-38500, -4000, 650},
		Params: Params{
			Theta:     3,
			MinSpeed:  0,
			MaxSpeed:  9,
			SpeedStep: 1,

			MinBombSpeed:       60,
			MaxBombSpeed:       300,
			DirectionAngle:     45,
			DirectionMinLength: 0.5,
			DirectionMaxLength: 2,
			Gravity:            9.81,
			BombRadius:         100,
			MinLifespan:        3,

			SpawnInterval:        2,
			SpawnThreshold:       100,
			ExplosionProbability: 0.3,
		},
	}
}

type paramField struct {
	key      string
	label    string
	group    string
	floatPtr func(*Params) *float32
	intPtr   func(*Params) *int
}

var paramFields = []paramField{
	{key: "theta", label: "Rotation step (deg)", group: "Aircraft", floatPtr: func(p *Params) *float32 { return &p.Theta }},
	{key: "min_speed", label: "Min speed", group: "Aircraft", intPtr: func(p *Params) *int { return &p.MinSpeed }},
	{key: "max_speed", label: "Max speed", group: "Aircraft", intPtr: func(p *Params) *int { return &p.MaxSpeed }},
	{key: "speed_step", label: "Speed step", group: "Aircraft", intPtr: func(p *Params) *int { return &p.SpeedStep }},

	{key: "min_bomb_speed", label: "Min launch speed", group: "Lava Bombs", floatPtr: func(p *Params) *float32 { return &p.MinBombSpeed }},
	{key: "max_bomb_speed", label: "Max launch speed", group: "Lava Bombs", floatPtr: func(p *Params) *float32 { return &p.MaxBombSpeed }},
	{key: "direction_angle", label: "Min launch elevation (deg)", group: "Lava Bombs", floatPtr: func(p *Params) *float32 { return &p.DirectionAngle }},
	{key: "direction_min_length", label: "Direction sample min length", group: "Lava Bombs", floatPtr: func(p *Params) *float32 { return &p.DirectionMinLength }},
	{key: "direction_max_length", label: "Direction sample max length", group: "Lava Bombs", floatPtr: func(p *Params) *float32 { return &p.DirectionMaxLength }},
	{key: "gravity", label: "Gravity", group: "Lava Bombs", floatPtr: func(p *Params) *float32 { return &p.Gravity }},
	{key: "bomb_radius", label: "Bomb radius", group: "Lava Bombs", floatPtr: func(p *Params) *float32 { return &p.BombRadius }},
	{key: "min_lifespan", label: "Min lifespan before collisions", group: "Lava Bombs", floatPtr: func(p *Params) *float32 { return &p.MinLifespan }},

	{key: "spawn_interval", label: "Spawn interval (s)", group: "Volcano", floatPtr: func(p *Params) *float32 { return &p.SpawnInterval }},
	{key: "spawn_threshold", label: "Population cap", group: "Volcano", intPtr: func(p *Params) *int { return &p.SpawnThreshold }},
	{key: "explosion_probability", label: "Explosion probability", group: "Volcano", floatPtr: func(p *Params) *float32 { return &p.ExplosionProbability }},
}

// ParamKeys lists the keys accepted by FromMap for Params fields, in display
// order.
func ParamKeys() []string {
	keys := make([]string, len(paramFields))
	for i, f := range paramFields {
		keys[i] = f.key
	}
	return keys
}

// Values renders every field under its FromMap key.
func (p Params) Values() map[string]string {
	out := make(map[string]string, len(paramFields))
	for _, f := range paramFields {
		out[f.key] = f.format(&p)
	}
	return out
}

func (f paramField) format(p *Params) string {
	if f.intPtr != nil {
		return strconv.Itoa(*f.intPtr(p))
	}
	return strconv.FormatFloat(float64(*f.floatPtr(p)), 'f', -1, 32)
}

func (f paramField) parse(p *Params, value string) bool {
	if f.intPtr != nil {
		parsed, err := strconv.Atoi(value)
		if err != nil {
			return false
		}
		*f.intPtr(p) = parsed
		return true
	}
	parsed, err := strconv.ParseFloat(value, 32)
	if err != nil || math.IsNaN(parsed) || math.IsInf(parsed, 0) {
		return false
	}
	*f.floatPtr(p) = float32(parsed)
	return true
}

// FromMap populates the config from a string map (flag-style key/value
// pairs). Unknown keys and unparsable values are ignored.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	c.Apply(cfg)
	return c
}

// Apply overrides fields named in cfg and reports the keys it could not use.
func (c *Config) Apply(cfg map[string]string) []string {
	var rejected []string
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		} else {
			rejected = append(rejected, "seed")
		}
	}
	vecs := []struct {
		prefix string
		vec    *mgl32.Vec3
	}{
		{prefix: "start", vec: &c.Start},
		{prefix: "volcano", vec: &c.Volcano},
	}
	for _, vk := range vecs {
		for axis, name := range []string{"x", "y", "z"} {
			key := vk.prefix + "_" + name
			v, ok := cfg[key]
			if !ok {
				continue
			}
			parsed, err := strconv.ParseFloat(v, 32)
			if err != nil {
				rejected = append(rejected, key)
				continue
			}
			vk.vec[axis] = float32(parsed)
		}
	}
	for _, f := range paramFields {
		v, ok := cfg[f.key]
		if !ok {
			continue
		}
		if !f.parse(&c.Params, v) {
			rejected = append(rejected, f.key)
		}
	}
	for key := range cfg {
		if !knownKey(key) {
			rejected = append(rejected, key)
		}
	}

	p := &c.Params
	if p.MinSpeed < 0 {
		p.MinSpeed = 0
	}
	if p.MaxSpeed < p.MinSpeed {
		p.MaxSpeed = p.MinSpeed
	}
	if p.MaxBombSpeed < p.MinBombSpeed {
		p.MaxBombSpeed = p.MinBombSpeed
	}
	if p.DirectionMaxLength < p.DirectionMinLength {
		p.DirectionMaxLength = p.DirectionMinLength
	}
	return rejected
}

func knownKey(key string) bool {
	switch key {
	case "seed", "start_x", "start_y", "start_z", "volcano_x", "volcano_y", "volcano_z":
		return true
	}
	for _, f := range paramFields {
		if f.key == key {
			return true
		}
	}
	return false
}

// Validate reports parameter combinations the simulation cannot run with,
// such as a launch cone that can never accept a sample.
func (c Config) Validate() error {
	p := c.Params
	var errs []error
	if p.MinSpeed < 0 || p.MaxSpeed < p.MinSpeed {
		errs = append(errs, fmt.Errorf("speed range [%d, %d] is invalid", p.MinSpeed, p.MaxSpeed))
	}
	if p.SpeedStep <= 0 {
		errs = append(errs, fmt.Errorf("speed_step %d must be positive", p.SpeedStep))
	}
	if p.MinBombSpeed < 0 || p.MaxBombSpeed < p.MinBombSpeed {
		errs = append(errs, fmt.Errorf("bomb speed range [%g, %g] is invalid", p.MinBombSpeed, p.MaxBombSpeed))
	}
	if p.DirectionAngle < 0 || p.DirectionAngle >= 90 {
		errs = append(errs, fmt.Errorf("direction_angle %g must be in [0, 90)", p.DirectionAngle))
	}
	if p.DirectionMinLength <= 0 || p.DirectionMaxLength < p.DirectionMinLength {
		errs = append(errs, fmt.Errorf("direction length range [%g, %g] is invalid", p.DirectionMinLength, p.DirectionMaxLength))
	}
	if p.BombRadius <= 0 {
		errs = append(errs, fmt.Errorf("bomb_radius %g must be positive", p.BombRadius))
	}
	if p.MinLifespan < 0 {
		errs = append(errs, fmt.Errorf("min_lifespan %g must not be negative", p.MinLifespan))
	}
	if p.SpawnInterval < 0 {
		errs = append(errs, fmt.Errorf("spawn_interval %g must not be negative", p.SpawnInterval))
	}
	if p.SpawnThreshold < 0 {
		errs = append(errs, fmt.Errorf("spawn_threshold %d must not be negative", p.SpawnThreshold))
	}
	if p.ExplosionProbability < 0 || p.ExplosionProbability > 1 {
		errs = append(errs, fmt.Errorf("explosion_probability %g must be in [0, 1]", p.ExplosionProbability))
	}
	return errors.Join(errs...)
}
