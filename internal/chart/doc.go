// Package chart renders a sweep as a scatter chart.
//
// A [Series] is an ordered list of (x, y) pairs plus a title and axis
// labels. It can be written to an image file ([Save], via gonum/plot),
// drawn as a terminal line chart ([ASCII], via asciigraph) or plotted on a
// braille [Canvas] ([Scatter]).
package chart
