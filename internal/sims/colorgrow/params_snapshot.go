package colorgrow

import (
	"math"
	"strconv"

	"colorgrow/internal/core"
)

// Parameters exposes the current tunables for the HUD and for logging.
func (w *World) Parameters() core.ParameterSnapshot {
	params := w.cfg.Params
	groups := []core.ParameterGroup{
		{
			Name: "World",
			Params: []core.Parameter{
				intParam("w", "Width", w.cfg.Width),
				intParam("h", "Height", w.cfg.Height),
				int64Param("seed", "Seed", w.cfg.Seed),
				intParam("generation", "Generation", w.generation),
				intParam("roots", "Roots", len(w.roots)),
			},
		},
		{
			Name: "Target",
			Params: []core.Parameter{
				colorParam("target", "Target", w.target),
				intParam("target_r", "Target red", int(w.target.R)),
				intParam("target_g", "Target green", int(w.target.G)),
				intParam("target_b", "Target blue", int(w.target.B)),
				floatParam("tolerance", "Tolerance", params.Tolerance),
			},
		},
		{
			Name: "Growth",
			Params: []core.Parameter{
				floatParam("branch_chance", "Branch chance", params.BranchChance),
				intParam("branch_min", "Branch min", params.BranchMin),
				intParam("branch_max", "Branch max", params.BranchMax),
				floatParam("blend_min", "Blend min", params.BlendMin),
				floatParam("blend_max", "Blend max", params.BlendMax),
				floatParam("noise_sigma", "Mutation sigma", params.NoiseSigma),
				intParam("cap_factor", "Generation cap factor", params.CapFactor),
			},
		},
	}
	return core.ParameterSnapshot{Groups: groups}
}

// ParameterControls lists the values adjustable from the HUD. The three
// target channels double as the color picker.
func (w *World) ParameterControls() []core.ParameterControl {
	channel := func(key, label string) core.ParameterControl {
		return core.ParameterControl{
			Key: key, Label: label, Type: core.ParamTypeInt,
			Step: 5, Min: 0, Max: 255, HasMin: true, HasMax: true,
		}
	}
	return []core.ParameterControl{
		channel("target_r", "Target red"),
		channel("target_g", "Target green"),
		channel("target_b", "Target blue"),
		{Key: "branch_chance", Label: "Branch chance", Type: core.ParamTypeFloat, Step: 0.05, Min: 0, Max: 1, HasMin: true, HasMax: true},
		{Key: "blend_min", Label: "Blend min", Type: core.ParamTypeFloat, Step: 0.05, Min: 0, Max: 1, HasMin: true, HasMax: true},
		{Key: "noise_sigma", Label: "Mutation sigma", Type: core.ParamTypeFloat, Step: 1, Min: 0, HasMin: true},
	}
}

// SetIntParameter updates an integer tunable, clamping to its valid range.
func (w *World) SetIntParameter(key string, value int) bool {
	switch key {
	case "target_r", "target_g", "target_b":
		v := float64(clampInt(value, 0, 255))
		t := w.target
		switch key {
		case "target_r":
			t.R = v
		case "target_g":
			t.G = v
		default:
			t.B = v
		}
		w.SetTarget(t)
		return true
	case "branch_min":
		w.cfg.Params.BranchMin = clampInt(value, 1, len(neighborOffsets))
		if w.cfg.Params.BranchMax < w.cfg.Params.BranchMin {
			w.cfg.Params.BranchMax = w.cfg.Params.BranchMin
		}
		return true
	case "branch_max":
		w.cfg.Params.BranchMax = clampInt(value, 1, len(neighborOffsets))
		if w.cfg.Params.BranchMin > w.cfg.Params.BranchMax {
			w.cfg.Params.BranchMin = w.cfg.Params.BranchMax
		}
		return true
	case "cap_factor":
		w.cfg.Params.CapFactor = clampInt(value, 1, math.MaxInt32)
		return true
	default:
		return false
	}
}

// SetFloatParameter updates a floating point tunable, clamping to its valid
// range.
func (w *World) SetFloatParameter(key string, value float64) bool {
	if math.IsNaN(value) {
		return false
	}
	switch key {
	case "branch_chance":
		w.cfg.Params.BranchChance = clampFloat(value, 0, 1)
	case "blend_min":
		w.cfg.Params.BlendMin = clampFloat(value, 0, 1)
		if w.cfg.Params.BlendMax < w.cfg.Params.BlendMin {
			w.cfg.Params.BlendMax = w.cfg.Params.BlendMin
		}
	case "blend_max":
		w.cfg.Params.BlendMax = clampFloat(value, 0, 1)
		if w.cfg.Params.BlendMin > w.cfg.Params.BlendMax {
			w.cfg.Params.BlendMin = w.cfg.Params.BlendMax
		}
	case "noise_sigma":
		w.cfg.Params.NoiseSigma = math.Max(value, 0)
	case "tolerance":
		w.cfg.Params.Tolerance = math.Max(value, 0)
		w.dirty = true
	default:
		return false
	}
	return true
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clampFloat(v, lo, hi float64) float64 {
	return math.Min(math.Max(v, lo), hi)
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.Itoa(value),
	}
}

func int64Param(key, label string, value int64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.FormatInt(value, 10),
	}
}

func floatParam(key, label string, value float64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeFloat,
		Value: strconv.FormatFloat(value, 'f', -1, 64),
	}
}

func colorParam(key, label string, value core.RGB) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeColor,
		Value: HexColor(value),
	}
}
