package sim

import (
	"errors"
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"
)

// OutDistribution weights the batted-ball out subtypes. The resolver
// walks the fields in declaration order against a single draw, so the
// weights should sum to 1.
type OutDistribution struct {
	Groundout float64 `yaml:"groundout"`
	Flyout    float64 `yaml:"flyout"`
	Lineout   float64 `yaml:"lineout"`
	Popup     float64 `yaml:"popup"`
}

// Tunables collects the model constants the resolver and rate deriver
// consume. They are configuration, not code: a YAML overlay can replace
// any subset without touching the defaults for the rest.
type Tunables struct {
	// StrikeoutSwingingRate splits strikeouts into swinging vs looking.
	StrikeoutSwingingRate float64 `yaml:"strikeout_swinging_rate"`
	// InfieldSingleRate is the share of non-extra-base hits kept on the
	// infield.
	InfieldSingleRate float64 `yaml:"infield_single_rate"`
	// GIDPRate upgrades a groundout to a double play when a runner is
	// forced at second with fewer than two outs.
	GIDPRate float64 `yaml:"gidp_rate"`
	// SacrificeFlyRate upgrades a flyout to a sacrifice fly with a
	// runner on third and fewer than two outs.
	SacrificeFlyRate float64 `yaml:"sacrifice_fly_rate"`
	// ErrorRate converts a batted-ball out into reaching on an error.
	ErrorRate float64 `yaml:"error_rate"`

	OutTypes  OutDistribution `yaml:"out_types"`
	Baselines EraBaselines    `yaml:"baselines"`
}

// DefaultTunables returns the built-in model constants.
func DefaultTunables() Tunables {
	return Tunables{
		StrikeoutSwingingRate: 0.70,
		InfieldSingleRate:     0.15,
		GIDPRate:              0.15,
		SacrificeFlyRate:      0.20,
		ErrorRate:             0.02,
		OutTypes: OutDistribution{
			Groundout: 0.44,
			Flyout:    0.28,
			Lineout:   0.21,
			Popup:     0.07,
		},
		Baselines: defaultBaselines(),
	}
}

// LoadTunables reads a YAML overlay on top of the defaults. An empty
// path or a missing file yields the defaults without error; a file that
// exists but fails to parse or validate is an error. Fields absent from
// the file keep their default values, and baseline maps merge per key.
func LoadTunables(path string) (Tunables, error) {
	t := DefaultTunables()
	if path == "" {
		return t, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return t, nil
		}
		return Tunables{}, fmt.Errorf("read tunables: %w", err)
	}
	if err := yaml.Unmarshal(data, &t); err != nil {
		return Tunables{}, fmt.Errorf("parse tunables: %w", err)
	}
	if err := t.Validate(); err != nil {
		return Tunables{}, err
	}
	return t, nil
}

// Validate checks every rate is a probability, the out-type weights
// form a distribution, and the era baselines are usable as odds-ratio
// denominators.
func (t Tunables) Validate() error {
	rates := []struct {
		name  string
		value float64
	}{
		{"strikeout_swinging_rate", t.StrikeoutSwingingRate},
		{"infield_single_rate", t.InfieldSingleRate},
		{"gidp_rate", t.GIDPRate},
		{"sacrifice_fly_rate", t.SacrificeFlyRate},
		{"error_rate", t.ErrorRate},
		{"out_types.groundout", t.OutTypes.Groundout},
		{"out_types.flyout", t.OutTypes.Flyout},
		{"out_types.lineout", t.OutTypes.Lineout},
		{"out_types.popup", t.OutTypes.Popup},
	}
	for _, r := range rates {
		if r.value < 0 || r.value > 1 {
			return fmt.Errorf("%s: %w", r.name, ErrInvalidProbability)
		}
	}
	total := t.OutTypes.Groundout + t.OutTypes.Flyout + t.OutTypes.Lineout + t.OutTypes.Popup
	if math.Abs(total-1) > 1e-6 {
		return fmt.Errorf("out_types sum to %v: %w", total, ErrInvalidProbability)
	}
	return t.Baselines.Validate()
}
