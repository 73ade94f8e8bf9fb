package flight

import (
	"fmt"
	"strconv"

	"github.com/go-gl/mathgl/mgl32"

	"lava-flight/internal/core"
)

// Parameters exposes the configuration for HUD and report display.
func (c Config) Parameters() core.ParameterSnapshot {
	groups := []core.ParameterGroup{{
		Name: "World",
		Params: []core.Parameter{
			int64Param("seed", "Seed", c.Seed),
			vecParam("start", "Start position", c.Start),
			vecParam("volcano", "Volcano vent", c.Volcano),
		},
	}}
	index := map[string]int{}
	for _, f := range paramFields {
		gi, ok := index[f.group]
		if !ok {
			groups = append(groups, core.ParameterGroup{Name: f.group})
			gi = len(groups) - 1
			index[f.group] = gi
		}
		typ := core.ParamTypeFloat
		if f.intPtr != nil {
			typ = core.ParamTypeInt
		}
		groups[gi].Params = append(groups[gi].Params, core.Parameter{
			Key:   f.key,
			Label: f.label,
			Type:  typ,
			Value: f.format(&c.Params),
		})
	}
	return core.ParameterSnapshot{Groups: groups}
}

func int64Param(key, label string, value int64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.FormatInt(value, 10),
	}
}

func vecParam(key, label string, v mgl32.Vec3) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeFloat,
		Value: fmt.Sprintf("(%g, %g, %g)", v.X(), v.Y(), v.Z()),
	}
}
