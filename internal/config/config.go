package config

import (
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"
)

// Default model parameters.
const (
	DefaultTCMB     = 2.725 // CMB monopole temperature (K)
	DefaultBetaSync = 2.9   // synchrotron spectral index
	DefaultBetaDust = 1.7   // dust emissivity index
	DefaultTDust    = 20.0  // dust temperature (K)
)

// Params holds the four model parameters for one run. Values are fixed
// once collected; the evaluation pipeline never mutates them.
type Params struct {
	TCMB     float64 `yaml:"t_cmb" json:"t_cmb"`
	BetaSync float64 `yaml:"beta_sync" json:"beta_sync"`
	BetaDust float64 `yaml:"beta_dust" json:"beta_dust"`
	TDust    float64 `yaml:"t_dust" json:"t_dust"`
}

func Default() Params {
	return Params{
		TCMB:     DefaultTCMB,
		BetaSync: DefaultBetaSync,
		BetaDust: DefaultBetaDust,
		TDust:    DefaultTDust,
	}
}

func (p Params) Validate() error {
	fields := []struct {
		name string
		val  float64
	}{
		{"t_cmb", p.TCMB},
		{"beta_sync", p.BetaSync},
		{"beta_dust", p.BetaDust},
		{"t_dust", p.TDust},
	}
	for _, f := range fields {
		if math.IsNaN(f.val) || math.IsInf(f.val, 0) {
			return fmt.Errorf("%s must be finite, got %f", f.name, f.val)
		}
	}
	if p.TCMB <= 0 {
		return fmt.Errorf("t_cmb must be positive, got %f", p.TCMB)
	}
	if p.TDust <= 0 {
		return fmt.Errorf("t_dust must be positive, got %f", p.TDust)
	}
	return nil
}

// Load reads parameters from a YAML file. Fields absent from the file
// keep their defaults.
func Load(path string) (Params, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Params{}, err
	}
	p := Default()
	if err := yaml.Unmarshal(data, &p); err != nil {
		return Params{}, err
	}
	return p, nil
}

func Save(path string, p Params) error {
	data, err := yaml.Marshal(p)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
