package core

import (
	"fmt"
	"io"
)

// ParamType enumerates supported parameter value kinds.
type ParamType string

const (
	// ParamTypeInt denotes integer-valued parameters.
	ParamTypeInt ParamType = "int"
	// ParamTypeFloat denotes floating-point parameters.
	ParamTypeFloat ParamType = "float"
)

// Parameter describes a single tunable value exposed by a simulation.
type Parameter struct {
	Key         string
	Label       string
	Type        ParamType
	Value       string
	Description string
}

// ParameterGroup clusters related parameters for presentation purposes.
type ParameterGroup struct {
	Name    string
	Params  []Parameter
	Summary string
}

// ParameterSnapshot captures the current set of tunables exposed by a sim.
type ParameterSnapshot struct {
	Groups []ParameterGroup
}

// ParameterProvider is implemented by sims that expose their tunables.
type ParameterProvider interface {
	Parameters() ParameterSnapshot
}

// Lines flattens the snapshot into "Group" headers followed by indented
// "key=value" rows.
func (s ParameterSnapshot) Lines() []string {
	var lines []string
	for _, g := range s.Groups {
		lines = append(lines, g.Name)
		for _, p := range g.Params {
			lines = append(lines, fmt.Sprintf("  %s=%s", p.Key, p.Value))
		}
	}
	return lines
}

// Write prints the snapshot, one line per entry.
func (s ParameterSnapshot) Write(w io.Writer) error {
	for _, line := range s.Lines() {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}
