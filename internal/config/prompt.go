package config

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Prompt collects the four model parameters from r, one per line,
// echoing each prompt with its default to w. An empty line accepts the
// default, as does end of input.
//
// A parse failure on any field discards every entered value and returns
// the full default set with a notice on w. This all-or-nothing fallback
// is deliberate and matches the established behavior of the tool; do
// not replace it with per-field fallback.
func Prompt(r io.Reader, w io.Writer) Params {
	sc := bufio.NewScanner(r)
	p := Default()

	fields := []struct {
		label string
		def   float64
		dst   *float64
	}{
		{"CMB temperature (K)", DefaultTCMB, &p.TCMB},
		{"synchrotron spectral index beta", DefaultBetaSync, &p.BetaSync},
		{"dust emissivity index beta_d", DefaultBetaDust, &p.BetaDust},
		{"dust temperature (K)", DefaultTDust, &p.TDust},
	}

	for _, f := range fields {
		fmt.Fprintf(w, "%s [default %g]: ", f.label, f.def)
		if !sc.Scan() {
			continue
		}
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		v, err := strconv.ParseFloat(line, 64)
		if err != nil {
			fmt.Fprintln(w, "invalid input detected, using default parameters")
			return Default()
		}
		*f.dst = v
	}

	return p
}
