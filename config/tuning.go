package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/Zachkp/resume-site/sim"
)

// Tuning groups the per-theme simulation presets.
type Tuning struct {
	Lava          sim.BlobConfig          `yaml:"lava"`
	Aurora        sim.BlobConfig          `yaml:"aurora"`
	Constellation sim.ConstellationConfig `yaml:"constellation"`
}

// DefaultTuning returns the built-in presets.
func DefaultTuning() Tuning {
	return Tuning{
		Lava:          sim.LavaPreset(),
		Aurora:        sim.AuroraPreset(),
		Constellation: sim.ConstellationPreset(),
	}
}

// ParseTuning overlays YAML onto the defaults; keys not present in data
// keep their built-in value.
func ParseTuning(data []byte) (Tuning, error) {
	t := DefaultTuning()
	if err := yaml.Unmarshal(data, &t); err != nil {
		return t, fmt.Errorf("parse tuning: %w", err)
	}
	if err := t.Validate(); err != nil {
		return t, err
	}
	return t, nil
}

// LoadTuning reads a tuning file. An empty path yields the defaults.
func LoadTuning(path string) (Tuning, error) {
	if path == "" {
		return DefaultTuning(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return DefaultTuning(), err
	}
	return ParseTuning(data)
}

// Validate rejects settings that would break the simulation invariants.
func (t Tuning) Validate() error {
	for name, b := range map[string]sim.BlobConfig{"lava": t.Lava, "aurora": t.Aurora} {
		if b.SizeMin <= 0 || b.SizeMax < b.SizeMin {
			return fmt.Errorf("%s: size range [%v, %v] invalid", name, b.SizeMin, b.SizeMax)
		}
		if b.MaxVX < 0 || b.MaxVYUp < 0 || b.MaxVYDown < 0 {
			return fmt.Errorf("%s: velocity bounds must be non-negative", name)
		}
		if b.BaseCount < 0 || b.CountBoostMax < 0 || b.BurstCount < 0 {
			return fmt.Errorf("%s: counts must be non-negative", name)
		}
	}
	c := t.Constellation
	if c.Count < 0 || c.ConnectDistance <= 0 || c.MouseForceRadius <= 0 {
		return fmt.Errorf("constellation: count, connect_distance and mouse_force_radius must be positive")
	}
	if c.Damping <= 0 || c.Damping > 1 {
		return fmt.Errorf("constellation: damping %v outside (0, 1]", c.Damping)
	}
	return nil
}
