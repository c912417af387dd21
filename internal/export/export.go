// Package export dumps an evaluated spectrum as CSV or JSON.
package export

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"strconv"

	"github.com/sahoos/cmbspec/internal/config"
	"github.com/sahoos/cmbspec/internal/spectrum"
)

type Document struct {
	Params  config.Params `json:"params"`
	AmpSync float64       `json:"amp_sync"`
	AmpDust float64       `json:"amp_dust"`
	FreqGHz []float64     `json:"freq_ghz"`
	CMB     []float64     `json:"cmb"`
	Sync    []float64     `json:"synchrotron"`
	Dust    []float64     `json:"dust"`
	Total   []float64     `json:"total"`
}

// CSV writes the spectrum as rows of freq_ghz,cmb,synchrotron,dust,total.
func CSV(w io.Writer, res *spectrum.Result) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"freq_ghz", "cmb", "synchrotron", "dust", "total"}); err != nil {
		return err
	}

	for i := range res.FreqHz {
		row := []string{
			strconv.FormatFloat(res.FreqHz[i]/1e9, 'g', -1, 64),
			strconv.FormatFloat(res.CMB[i], 'e', 6, 64),
			strconv.FormatFloat(res.Sync[i], 'e', 6, 64),
			strconv.FormatFloat(res.Dust[i], 'e', 6, 64),
			strconv.FormatFloat(res.Total[i], 'e', 6, 64),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

// JSON writes the spectrum, parameters, and derived amplitudes as an
// indented JSON document.
func JSON(w io.Writer, res *spectrum.Result) error {
	doc := Document{
		Params:  res.Params,
		AmpSync: res.AmpSync,
		AmpDust: res.AmpDust,
		FreqGHz: make([]float64, len(res.FreqHz)),
		CMB:     res.CMB,
		Sync:    res.Sync,
		Dust:    res.Dust,
		Total:   res.Total,
	}
	for i, nu := range res.FreqHz {
		doc.FreqGHz[i] = nu / 1e9
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}
