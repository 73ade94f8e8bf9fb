package app

import (
	"runtime"
	"sort"
	"sync"

	"github.com/rs/zerolog"

	"lava-flight/internal/core"
	"lava-flight/internal/sims/flight"
)

// weavePeriod is the length in frames of the scripted S-turn.
const weavePeriod = 240

// Pilot flies a scene along a repeating S-turn at a fixed speed and keeps
// per-run totals. It satisfies core.Sim so core.RunFixed can drive it.
type Pilot struct {
	*flight.Scene
	Speed int
	// Pace, when set, blocks before every frame.
	Pace func()

	result RunResult
}

// RunResult summarises one scripted flight.
type RunResult struct {
	Seed           int64
	Frames         int
	Crashed        bool
	PeakPopulation int
	Explosions     int
	Fragments      int
	VolcanoSpawns  int
	Died           int
}

// NewPilot wraps scene.
func NewPilot(scene *flight.Scene, speed int) *Pilot {
	return &Pilot{Scene: scene, Speed: speed}
}

// Reset restarts the scene and clears the totals.
func (p *Pilot) Reset(seed int64) {
	p.Scene.Reset(seed)
	p.result = RunResult{Seed: seed}
}

// Step applies the scripted commands for this frame and advances the scene.
func (p *Pilot) Step(dt float32) {
	if p.Pace != nil {
		p.Pace()
	}
	if p.Aircraft().Speed < p.Speed {
		p.Apply(flight.CommandSpeedUp)
	}
	switch phase := p.Frames() % weavePeriod; {
	case phase < 20:
		p.Apply(flight.CommandYawLeft)
	case phase >= weavePeriod/2 && phase < weavePeriod/2+20:
		p.Apply(flight.CommandYawRight)
	}

	p.Update(dt)

	stats := p.Stats()
	p.result.Frames = p.Frames()
	p.result.PeakPopulation = max(p.result.PeakPopulation, stats.Population)
	p.result.Explosions += stats.Explosions
	p.result.Fragments += stats.Fragments
	p.result.VolcanoSpawns += stats.VolcanoSpawns
	p.result.Died += stats.Died
	// Only terrain or bomb hits end a scripted flight.
	p.result.Crashed = p.ShouldExit()
}

// Result returns the totals gathered since the last Reset.
func (p *Pilot) Result() RunResult { return p.result }

// SweepOptions controls a batch of scripted flights.
type SweepOptions struct {
	Runs     int
	Seed     int64
	Steps    int
	DT       float32
	Workers  int
	Speed    int
	Realtime bool
}

// Sweep flies opts.Runs independent scenes over the shared read-only terrain,
// one goroutine per worker, and returns the results sorted by frames survived
// (longest first) then seed.
func Sweep(cfg flight.Config, terrain flight.Terrain, opts SweepOptions, log zerolog.Logger) []RunResult {
	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	jobs := make(chan int64)
	results := make(chan RunResult)
	var wg sync.WaitGroup

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for seed := range jobs {
				runCfg := cfg
				runCfg.Seed = seed
				pilot := NewPilot(flight.NewScene(runCfg, terrain), opts.Speed)
				pilot.Reset(seed)
				if opts.Realtime {
					fs := core.NewFixedStep(int(1/opts.DT + 0.5))
					pilot.Pace = fs.Wait
				}
				core.RunFixed(pilot, opts.DT, opts.Steps)
				res := pilot.Result()
				log.Debug().
					Int64("seed", seed).
					Int("frames", res.Frames).
					Bool("crashed", res.Crashed).
					Msg("run finished")
				results <- res
			}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	go func() {
		for i := 0; i < opts.Runs; i++ {
			jobs <- opts.Seed + int64(i)
		}
		close(jobs)
	}()

	var all []RunResult
	for res := range results {
		all = append(all, res)
	}
	sort.Slice(all, func(i, j int) bool {
		if all[i].Frames != all[j].Frames {
			return all[i].Frames > all[j].Frames
		}
		return all[i].Seed < all[j].Seed
	})
	return all
}
