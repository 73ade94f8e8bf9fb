package core

// Sim defines the minimal contract a time-stepped simulation must implement.
type Sim interface {
	Name() string
	Reset(seed int64)
	// Step advances the simulation by dt seconds.
	Step(dt float32)
	// Done reports that the episode has reached a terminal state.
	Done() bool
}

// RunFixed steps sim with a constant dt until it reports Done or maxSteps
// steps have run. It returns the number of steps executed. A maxSteps of zero
// or less runs until Done.
func RunFixed(sim Sim, dt float32, maxSteps int) int {
	steps := 0
	for !sim.Done() {
		if maxSteps > 0 && steps >= maxSteps {
			break
		}
		sim.Step(dt)
		steps++
	}
	return steps
}
