// Package render produces the saved figure and the terminal view of an
// evaluated spectrum.
package render

import (
	"fmt"
	"image/color"
	"os"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"github.com/sahoos/cmbspec/internal/spectrum"
)

// Figure geometry: 8x6 inches rendered at 300 DPI.
const (
	FigWidth  = 8 * vg.Inch
	FigHeight = 6 * vg.Inch
	FigDPI    = 300
)

// SavePNG renders the four spectra as a log-log figure and writes it to
// path as a PNG. The file is fully written and closed before SavePNG
// returns. The parent directory must already exist.
func SavePNG(res *spectrum.Result, path string) error {
	p := plot.New()
	p.Title.Text = "CMB Spectrum with Astrophysical Foregrounds"
	p.X.Label.Text = "Frequency (GHz)"
	p.Y.Label.Text = "Spectral Radiance B_nu (W m^-2 Hz^-1 sr^-1)"
	p.X.Scale = plot.LogScale{}
	p.Y.Scale = plot.LogScale{}
	p.X.Tick.Marker = plot.LogTicks{Prec: -1}
	p.Y.Tick.Marker = plot.LogTicks{Prec: -1}

	grid := plotter.NewGrid()
	dashes := []vg.Length{vg.Points(2), vg.Points(2)}
	grid.Vertical.Dashes = dashes
	grid.Horizontal.Dashes = dashes
	p.Add(grid)

	curves := []struct {
		name  string
		data  []float64
		width vg.Length
		color color.Color
	}{
		{"CMB (Blackbody)", res.CMB, vg.Points(1), color.RGBA{R: 0x1f, G: 0x77, B: 0xb4, A: 0xff}},
		{"Synchrotron", res.Sync, vg.Points(1), color.RGBA{R: 0xff, G: 0x7f, B: 0x0e, A: 0xff}},
		{"Thermal Dust", res.Dust, vg.Points(1), color.RGBA{R: 0x2c, G: 0xa0, B: 0x2c, A: 0xff}},
		// Total drawn heavier so the composite stands out.
		{"Total Signal", res.Total, vg.Points(2), color.RGBA{R: 0xd6, G: 0x27, B: 0x28, A: 0xff}},
	}
	for _, c := range curves {
		pts := make(plotter.XYs, len(res.FreqHz))
		for i, nu := range res.FreqHz {
			pts[i].X = nu / 1e9
			pts[i].Y = c.data[i]
		}
		line, err := plotter.NewLine(pts)
		if err != nil {
			return fmt.Errorf("building %s curve: %w", c.name, err)
		}
		line.LineStyle.Width = c.width
		line.LineStyle.Color = c.color
		p.Add(line)
		p.Legend.Add(c.name, line)
	}
	p.Legend.Top = true

	canvas := vgimg.NewWith(vgimg.UseWH(FigWidth, FigHeight), vgimg.UseDPI(FigDPI))
	p.Draw(draw.New(canvas))

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	png := vgimg.PngCanvas{Canvas: canvas}
	if _, err := png.WriteTo(f); err != nil {
		f.Close()
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return f.Close()
}
