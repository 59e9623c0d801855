package chart

import (
	"fmt"

	"github.com/guptarohit/asciigraph"
)

// ASCII draws s as a terminal line chart. Points are joined in sweep order,
// so spacing along x is by index. Radii are rescaled to a readable SI unit.
func ASCII(s Series, width, height int) string {
	if s.Len() == 0 {
		return ""
	}

	_, hi := bounds(s.Y)
	factor, unit := SIScale(hi)
	data := make([]float64, s.Len())
	for i, y := range s.Y {
		data[i] = y * factor
	}

	lo, xhi := bounds(s.X)
	caption := fmt.Sprintf("%s: final radius (%s) over %s %.4g..%.4g", s.Title, unit, s.XLabel, lo, xhi)

	return asciigraph.Plot(data,
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.Precision(2),
		asciigraph.Caption(caption),
	)
}
