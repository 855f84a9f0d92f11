package app

import (
	"flag"
	"fmt"
	"strings"
	"time"

	"colorgrow/internal/core"
	"colorgrow/internal/sims/colorgrow"
)

// Config represents the command-line parameters for the application.
type Config struct {
	Sim   string
	Scale int
	Delay time.Duration
	Seed  int64

	Overrides KeyValues
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Sim: "colorgrow", Scale: 15, Delay: core.DefaultDelay, Seed: colorgrow.DefaultSeed}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Sim, "sim", c.Sim, "simulation to run")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixels per grid cell")
	fs.DurationVar(&c.Delay, "delay", c.Delay, "pause between growth ticks")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for simulation reset")
	fs.Var(&c.Overrides, "set", "simulation parameter in key=value form (repeatable)")
}

// SimConfig returns the overrides as a factory configuration map. The seed
// flag is included unless an override already names one.
func (c *Config) SimConfig() map[string]string {
	m := c.Overrides.Map()
	if _, ok := m["seed"]; !ok {
		m["seed"] = fmt.Sprint(c.Seed)
	}
	return m
}

// KeyValues collects repeatable key=value flags.
type KeyValues []string

func (l *KeyValues) String() string {
	return strings.Join(*l, ",")
}

// Set appends a key=value pair.
func (l *KeyValues) Set(value string) error {
	if !strings.Contains(value, "=") {
		return fmt.Errorf("override %q: want key=value", value)
	}
	*l = append(*l, value)
	return nil
}

// Map converts the pairs into a map; later pairs win.
func (l KeyValues) Map() map[string]string {
	m := make(map[string]string, len(l))
	for _, kv := range l {
		k, v, _ := strings.Cut(kv, "=")
		m[strings.TrimSpace(k)] = strings.TrimSpace(v)
	}
	return m
}
