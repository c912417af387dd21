package render

import (
	"fmt"
	"io"
	"math"

	"github.com/guptarohit/asciigraph"

	"github.com/sahoos/cmbspec/internal/spectrum"
)

// Terminal writes an ASCII view of the evaluated spectrum to w, one
// panel per curve. Radiance spans many decades across the band, so each
// curve is drawn as log10 of its value over the log-spaced grid, the
// terminal analogue of the saved log-log figure.
func Terminal(res *spectrum.Result, w io.Writer) {
	curves := []struct {
		name string
		data []float64
	}{
		{"CMB (blackbody)", res.CMB},
		{"synchrotron", res.Sync},
		{"thermal dust", res.Dust},
		{"total signal", res.Total},
	}

	for _, c := range curves {
		logged := make([]float64, len(c.data))
		for i, v := range c.data {
			logged[i] = math.Log10(v)
		}

		caption := CaptionStyle.Render(fmt.Sprintf("log10 %s, 1-1000 GHz", c.name))
		graph := asciigraph.Plot(logged,
			asciigraph.Height(10),
			asciigraph.Width(80),
			asciigraph.Caption(caption),
		)
		fmt.Fprintln(w, graph)
		fmt.Fprintln(w)
	}
}
