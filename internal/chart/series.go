package chart

import (
	"errors"
	"fmt"
	"math"

	"github.com/san-kum/rjsim/internal/sweep"
)

const (
	LabelOmega     = "Angular velocity (rounds per second)"
	LabelViscosity = "Polymer viscosity (Pa.s)"
	LabelRadius    = "Final radius (m)"
)

var ErrEmptySeries = errors.New("chart: series has no points")

// Series is one chart worth of aligned points.
type Series struct {
	Title  string
	XLabel string
	YLabel string
	X, Y   []float64
	Zoom   bool
}

func (s Series) Len() int { return len(s.X) }

// FromResult builds the full chart, or with zoom set the zoom chart, of a sweep.
func FromResult(r *sweep.Result, zoom bool) Series {
	s := Series{
		Title:  fmt.Sprintf("%s / %s", r.Machine.Name, r.Polymer.Name),
		XLabel: LabelOmega,
		YLabel: LabelRadius,
		Zoom:   zoom,
	}
	if r.Kind == sweep.Viscosity {
		s.XLabel = LabelViscosity
	}

	pts := r.Points()
	if zoom {
		s.Title = "ZOOM " + s.Title
		pts = r.Zoom(sweep.ZoomLimit)
	}

	s.X = make([]float64, len(pts))
	s.Y = make([]float64, len(pts))
	for i, p := range pts {
		s.X[i] = p.X
		s.Y[i] = p.Radius
	}
	return s
}

func bounds(v []float64) (lo, hi float64) {
	lo, hi = math.Inf(1), math.Inf(-1)
	for _, x := range v {
		lo = math.Min(lo, x)
		hi = math.Max(hi, x)
	}
	return lo, hi
}

var siPrefixes = []struct {
	factor float64
	unit   string
}{
	{1, "m"},
	{1e3, "mm"},
	{1e6, "µm"},
	{1e9, "nm"},
}

// SIScale picks the length unit in which max reads as at least 1.
func SIScale(max float64) (factor float64, unit string) {
	max = math.Abs(max)
	for _, p := range siPrefixes {
		if max*p.factor >= 1 {
			return p.factor, p.unit
		}
	}
	last := siPrefixes[len(siPrefixes)-1]
	return last.factor, last.unit
}
