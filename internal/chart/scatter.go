package chart

import (
	"fmt"
	"strings"
)

// Scatter draws s on a w x h braille canvas and adds a caption with the
// window bounds, radii in a readable SI unit.
func Scatter(s Series, w, h int) string {
	if s.Len() == 0 || w < 2 || h < 2 {
		return ""
	}

	win := WindowFor(s)
	c := NewCanvas(w, h, win)
	c.PlotSeries(s)

	factor, unit := SIScale(win.YMax)
	var b strings.Builder
	b.WriteString(s.Title + "\n")
	b.WriteString(c.String())
	fmt.Fprintf(&b, "x: %s %.4g..%.4g\n", s.XLabel, win.XMin, win.XMax)
	fmt.Fprintf(&b, "y: final radius %.4g..%.4g %s\n", win.YMin*factor, win.YMax*factor, unit)
	return b.String()
}
