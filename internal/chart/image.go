package chart

import (
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

const (
	DefaultWidth  = 8 * vg.Inch
	DefaultHeight = 6 * vg.Inch
)

var (
	fullColor = color.RGBA{R: 220, A: 255}
	zoomColor = color.RGBA{B: 220, A: 255}
)

// Plot builds the gonum plot for s.
func Plot(s Series) (*plot.Plot, error) {
	if s.Len() == 0 {
		return nil, ErrEmptySeries
	}

	pts := make(plotter.XYs, s.Len())
	for i := range s.X {
		pts[i].X = s.X[i]
		pts[i].Y = s.Y[i]
	}

	p := plot.New()
	p.Title.Text = s.Title
	p.Title.TextStyle.Font.Size = vg.Points(16)
	p.X.Label.Text = s.XLabel
	p.Y.Label.Text = s.YLabel
	p.X.Label.TextStyle.Font.Size = vg.Points(14)
	p.Y.Label.TextStyle.Font.Size = vg.Points(14)
	p.Add(plotter.NewGrid())

	sc, err := plotter.NewScatter(pts)
	if err != nil {
		return nil, err
	}
	sc.GlyphStyle.Shape = draw.CircleGlyph{}
	sc.GlyphStyle.Radius = vg.Points(3)
	sc.GlyphStyle.Color = fullColor
	if s.Zoom {
		sc.GlyphStyle.Color = zoomColor
	}
	p.Add(sc)

	return p, nil
}

// Save writes s to path; the format follows the extension (png, svg, pdf,
// eps, jpg, tif).
func Save(s Series, path string, width, height vg.Length) error {
	p, err := Plot(s)
	if err != nil {
		return err
	}
	if width <= 0 {
		width = DefaultWidth
	}
	if height <= 0 {
		height = DefaultHeight
	}
	return p.Save(width, height, path)
}
