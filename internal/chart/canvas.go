package chart

import (
	"strings"

	"github.com/san-kum/rjsim/internal/sweep"
)

// Each braille cell is 2 dots wide and 4 tall; brailleDots[row][col] is the
// bit for that dot above U+2800.
var brailleDots = [4][2]rune{
	{0x01, 0x08},
	{0x02, 0x10},
	{0x04, 0x20},
	{0x40, 0x80},
}

const brailleBlank = 0x2800

// Window is the data range mapped onto a canvas.
type Window struct {
	XMin, XMax float64
	YMin, YMax float64
}

// WindowFor returns the window a series is drawn in. The full view is
// fitted to the data; the zoom view always spans radii from 0 up to the
// zoom limit so points read against the cut-off.
func WindowFor(s Series) Window {
	w := Window{}
	w.XMin, w.XMax = bounds(s.X)
	w.YMin, w.YMax = bounds(s.Y)
	if s.Zoom {
		w.YMin, w.YMax = 0, sweep.ZoomLimit
	}
	return w
}

// Canvas is a braille plotting area for one sweep chart. The leftmost dot
// column holds the radius axis and the bottom dot row the swept axis;
// samples land in the remaining area.
type Canvas struct {
	Width, Height int
	Window        Window

	cells            [][]rune
	plotted, clipped int
}

// NewCanvas returns a w x h cell canvas over win with both axes drawn.
func NewCanvas(w, h int, win Window) *Canvas {
	c := &Canvas{Width: w, Height: h, Window: win, cells: make([][]rune, h)}
	for row := range c.cells {
		c.cells[row] = []rune(strings.Repeat(string(rune(brailleBlank)), w))
	}

	dw, dh := c.dots()
	for y := 0; y < dh; y++ {
		c.dot(0, y)
	}
	for x := 0; x < dw; x++ {
		c.dot(x, dh-1)
	}
	return c
}

// dots returns the canvas size in braille dots.
func (c *Canvas) dots() (int, int) {
	return c.Width * 2, c.Height * 4
}

func (c *Canvas) dot(x, y int) {
	dw, dh := c.dots()
	if x < 0 || y < 0 || x >= dw || y >= dh {
		return
	}
	c.cells[y/4][x/2] |= brailleDots[y%4][x%2]
}

// Lit reports whether dot (x, y) is set; (0, 0) is the top-left dot.
func (c *Canvas) Lit(x, y int) bool {
	dw, dh := c.dots()
	if x < 0 || y < 0 || x >= dw || y >= dh {
		return false
	}
	return c.cells[y/4][x/2]&brailleDots[y%4][x%2] != 0
}

// Plot marks the sample (x, radius). Samples outside the window are counted
// as clipped and not drawn; the reported dot position is only meaningful
// when ok is true.
func (c *Canvas) Plot(x, radius float64) (dx, dy int, ok bool) {
	w := c.Window
	if x < w.XMin || x > w.XMax || radius < w.YMin || radius > w.YMax {
		c.clipped++
		return 0, 0, false
	}

	// Keep one dot of clearance from each axis.
	dw, dh := c.dots()
	dx = 2 + project(x, w.XMin, w.XMax, dw-3)
	dy = dh - 3 - project(radius, w.YMin, w.YMax, dh-3)
	c.dot(dx, dy)
	c.plotted++
	return dx, dy, true
}

// PlotSeries plots every sample of s and returns how many were drawn.
func (c *Canvas) PlotSeries(s Series) int {
	n := 0
	for i := range s.X {
		if _, _, ok := c.Plot(s.X[i], s.Y[i]); ok {
			n++
		}
	}
	return n
}

// Plotted returns the number of samples drawn so far.
func (c *Canvas) Plotted() int { return c.plotted }

// Clipped returns the number of samples that fell outside the window.
func (c *Canvas) Clipped() int { return c.clipped }

func (c *Canvas) String() string {
	var b strings.Builder
	for _, row := range c.cells {
		b.WriteString(string(row))
		b.WriteByte('\n')
	}
	return b.String()
}

// project maps v in [lo, hi] onto a dot offset in [0, span-1]. A collapsed
// range (one sample, or equal radii) maps to the middle.
func project(v, lo, hi float64, span int) int {
	if span <= 1 {
		return 0
	}
	if hi == lo {
		return (span - 1) / 2
	}
	return int((v - lo) / (hi - lo) * float64(span-1))
}
