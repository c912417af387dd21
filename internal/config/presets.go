package config

import "sort"

var Presets = map[string]Params{
	// Planck 2018 monopole with typical galactic foreground indices.
	"planck": {TCMB: 2.725, BetaSync: 2.9, BetaDust: 1.7, TDust: 20.0},
	// Cold, steep-emissivity dust as seen in dense clouds.
	"cold-dust": {TCMB: 2.725, BetaSync: 2.9, BetaDust: 2.0, TDust: 12.0},
	// Flatter synchrotron spectrum, closer to supernova-remnant values.
	"flat-sync": {TCMB: 2.725, BetaSync: 2.3, BetaDust: 1.7, TDust: 20.0},
}

func GetPreset(name string) *Params {
	p, ok := Presets[name]
	if !ok {
		return nil
	}
	return &p
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
