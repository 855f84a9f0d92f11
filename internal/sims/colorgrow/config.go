package colorgrow

import (
	"fmt"
	"strconv"
	"strings"

	"colorgrow/internal/core"
)

// Params holds the growth tunables.
type Params struct {
	RootsMin int
	RootsMax int

	// Tolerance is the mean channel distance below which a cell counts as
	// having reached the target.
	Tolerance float64

	BlendMin float64
	BlendMax float64

	BranchChance float64
	BranchMin    int
	BranchMax    int

	NoiseSigma float64

	// CapFactor multiplies the grid height to give the generation cap.
	CapFactor int
}

// Config controls the simulation dimensions, seeding and target color.
type Config struct {
	Width  int
	Height int

	Seed   int64
	Target core.RGB

	Params Params
}

// DefaultSeed is used when no seed is configured.
const DefaultSeed int64 = 1337

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Width:  60,
		Height: 40,
		Seed:   DefaultSeed,
		Target: core.RGB{R: 255, G: 255, B: 255},
		Params: Params{
			RootsMin:     3,
			RootsMax:     5,
			Tolerance:    5,
			BlendMin:     0.8,
			BlendMax:     1.0,
			BranchChance: 0.3,
			BranchMin:    2,
			BranchMax:    5,
			NoiseSigma:   15,
			CapFactor:    2,
		},
	}
}

// FromMap populates the config from a string map (flag-style key/value pairs).
// Unparseable or out-of-range values keep their defaults.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["target"]; ok {
		if parsed, err := ParseColor(v); err == nil {
			c.Target = parsed
		}
	}
	if v, ok := cfg["roots_min"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Params.RootsMin = parsed
		}
	}
	if v, ok := cfg["roots_max"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Params.RootsMax = parsed
		}
	}
	if c.Params.RootsMax < c.Params.RootsMin {
		c.Params.RootsMax = c.Params.RootsMin
	}
	if v, ok := cfg["tolerance"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 {
			c.Params.Tolerance = parsed
		}
	}
	if v, ok := cfg["blend_min"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 && parsed <= 1 {
			c.Params.BlendMin = parsed
		}
	}
	if v, ok := cfg["blend_max"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 && parsed <= 1 {
			c.Params.BlendMax = parsed
		}
	}
	if c.Params.BlendMax < c.Params.BlendMin {
		c.Params.BlendMax = c.Params.BlendMin
	}
	if v, ok := cfg["branch_chance"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 && parsed <= 1 {
			c.Params.BranchChance = parsed
		}
	}
	if v, ok := cfg["branch_min"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 1 && parsed <= len(neighborOffsets) {
			c.Params.BranchMin = parsed
		}
	}
	if v, ok := cfg["branch_max"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 1 && parsed <= len(neighborOffsets) {
			c.Params.BranchMax = parsed
		}
	}
	if c.Params.BranchMax < c.Params.BranchMin {
		c.Params.BranchMax = c.Params.BranchMin
	}
	if v, ok := cfg["noise_sigma"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 {
			c.Params.NoiseSigma = parsed
		}
	}
	if v, ok := cfg["cap_factor"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Params.CapFactor = parsed
		}
	}
	return c
}

// ParseColor accepts "#rrggbb", "rrggbb" or "r,g,b".
func ParseColor(s string) (core.RGB, error) {
	s = strings.TrimSpace(s)
	if strings.Contains(s, ",") {
		parts := strings.Split(s, ",")
		if len(parts) != 3 {
			return core.RGB{}, fmt.Errorf("color %q: want three channels", s)
		}
		var ch [3]float64
		for i, p := range parts {
			v, err := strconv.Atoi(strings.TrimSpace(p))
			if err != nil {
				return core.RGB{}, fmt.Errorf("color %q: %w", s, err)
			}
			if v < 0 || v > 255 {
				return core.RGB{}, fmt.Errorf("color %q: channel %d out of range", s, v)
			}
			ch[i] = float64(v)
		}
		return core.RGB{R: ch[0], G: ch[1], B: ch[2]}, nil
	}
	hex := strings.TrimPrefix(s, "#")
	if len(hex) != 6 {
		return core.RGB{}, fmt.Errorf("color %q: want #rrggbb", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return core.RGB{}, fmt.Errorf("color %q: %w", s, err)
	}
	return core.RGB{R: float64(v >> 16 & 0xff), G: float64(v >> 8 & 0xff), B: float64(v & 0xff)}, nil
}

// HexColor formats c as #rrggbb, truncating fractional channels.
func HexColor(c core.RGB) string { return c.Hex() }
