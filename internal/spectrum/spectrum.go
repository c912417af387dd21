// Package spectrum evaluates the composite CMB-plus-foreground model
// over the canonical frequency grid.
package spectrum

import (
	"fmt"

	"gonum.org/v1/gonum/floats"

	"github.com/sahoos/cmbspec/internal/config"
	"github.com/sahoos/cmbspec/internal/physics"
)

const (
	// GridPoints is the length of the canonical frequency grid.
	GridPoints = 1000

	// Grid endpoints in Hz: 1 GHz to 1000 GHz inclusive.
	FreqMinHz = 1e9
	FreqMaxHz = 1e12

	// Foreground amplitudes as fixed fractions of the blackbody peak.
	// This peak-relative normalization is the only coupling between the
	// CMB component and the foregrounds.
	syncPeakFraction = 1e-5
	dustPeakFraction = 1e-6
)

// Result holds one evaluated spectrum. The five slices share the same
// length and index correspondence; Total[i] is exactly
// CMB[i] + Sync[i] + Dust[i].
type Result struct {
	Params config.Params

	FreqHz []float64
	CMB    []float64
	Sync   []float64
	Dust   []float64
	Total  []float64

	// Derived foreground amplitudes, in radiance units.
	AmpSync float64
	AmpDust float64
}

// Grid returns n logarithmically spaced frequencies in Hz from FreqMinHz
// to FreqMaxHz inclusive, strictly increasing.
func Grid(n int) []float64 {
	return floats.LogSpan(make([]float64, n), FreqMinHz, FreqMaxHz)
}

// Evaluate runs the model end to end: validate parameters, build the
// grid, evaluate the blackbody, derive the foreground amplitudes from
// its peak, evaluate the foregrounds, and sum.
func Evaluate(p config.Params) (*Result, error) {
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("invalid parameters: %w", err)
	}

	res := &Result{
		Params: p,
		FreqHz: Grid(GridPoints),
		CMB:    make([]float64, GridPoints),
		Sync:   make([]float64, GridPoints),
		Dust:   make([]float64, GridPoints),
		Total:  make([]float64, GridPoints),
	}

	for i, nu := range res.FreqHz {
		res.CMB[i] = physics.Planck(nu, p.TCMB)
	}

	peak := floats.Max(res.CMB)
	res.AmpSync = syncPeakFraction * peak
	res.AmpDust = dustPeakFraction * peak

	for i, nu := range res.FreqHz {
		res.Sync[i] = physics.Synchrotron(nu, res.AmpSync, p.BetaSync)
		res.Dust[i] = physics.Dust(nu, res.AmpDust, p.TDust, p.BetaDust)
	}

	copy(res.Total, res.CMB)
	floats.Add(res.Total, res.Sync)
	floats.Add(res.Total, res.Dust)

	return res, nil
}

// Peak returns the frequency (Hz) and value of the total spectrum's
// maximum.
func (r *Result) Peak() (freqHz, radiance float64) {
	idx := floats.MaxIdx(r.Total)
	return r.FreqHz[idx], r.Total[idx]
}
