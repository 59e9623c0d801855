package report

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/san-kum/rjsim/internal/sweep"
)

type Format string

const (
	Table Format = "table"
	CSV   Format = "csv"
	JSON  Format = "json"
)

var ErrFormat = errors.New("report: unknown format")

// ParseFormat accepts table, csv or json.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case Table, CSV, JSON:
		return f, nil
	}
	return "", fmt.Errorf("%w: %q", ErrFormat, s)
}

type ExportData struct {
	Kind            string    `json:"kind"`
	Machine         string    `json:"machine"`
	Polymer         string    `json:"polymer"`
	Threshold       float64   `json:"omega_threshold"`
	InitialVelocity float64   `json:"initial_velocity"`
	Samples         int       `json:"samples"`
	X               []float64 `json:"x"`
	KinematicVisc   []float64 `json:"kinematic_viscosity"`
	Radius          []float64 `json:"final_radius"`
	Zoom            []Point   `json:"zoom"`
}

type Point struct {
	X      float64 `json:"x"`
	Radius float64 `json:"final_radius"`
}

func exportData(r *sweep.Result) ExportData {
	zoom := r.Zoom(sweep.ZoomLimit)
	data := ExportData{
		Kind:            r.Kind.String(),
		Machine:         r.Machine.Name,
		Polymer:         r.Polymer.Name,
		Threshold:       r.Derived.Threshold,
		InitialVelocity: r.Derived.InitialVelocity,
		Samples:         r.Len(),
		X:               r.X,
		KinematicVisc:   r.Nu,
		Radius:          r.Radius,
		Zoom:            make([]Point, len(zoom)),
	}
	for i, p := range zoom {
		data.Zoom[i] = Point{X: p.X, Radius: p.Radius}
	}
	return data
}

// Write renders r to w in the given format.
func Write(w io.Writer, r *sweep.Result, f Format) error {
	switch f {
	case Table:
		return writeTable(w, r)
	case CSV:
		return writeCSV(w, r)
	case JSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(exportData(r))
	}
	return fmt.Errorf("%w: %q", ErrFormat, f)
}

func xHeader(k sweep.Kind) string {
	if k == sweep.Viscosity {
		return "viscosity"
	}
	return "omega"
}

func writeCSV(w io.Writer, r *sweep.Result) error {
	cw := csv.NewWriter(w)

	if err := cw.Write([]string{xHeader(r.Kind), "kinematic_viscosity", "final_radius", "zoom"}); err != nil {
		return err
	}

	inZoom := zoomIndex(r)
	for i := range r.X {
		row := []string{
			strconv.FormatFloat(r.X[i], 'g', -1, 64),
			strconv.FormatFloat(r.Nu[i], 'g', -1, 64),
			strconv.FormatFloat(r.Radius[i], 'g', -1, 64),
			strconv.FormatBool(inZoom[i]),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

func writeTable(w io.Writer, r *sweep.Result) error {
	fmt.Fprintf(w, "%s / %s (%s sweep, %d samples)\n", r.Machine.Name, r.Polymer.Name, r.Kind, r.Len())
	fmt.Fprintf(w, "omega threshold:  %.6g\n", r.Derived.Threshold)
	fmt.Fprintf(w, "initial velocity: %.6g m/s\n\n", r.Derived.InitialVelocity)

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "#\t%s\tNU (m²/s)\tRADIUS (m)\tZOOM\n", strings.ToUpper(xHeader(r.Kind)))

	inZoom := zoomIndex(r)
	for i := range r.X {
		mark := ""
		if inZoom[i] {
			mark = "*"
		}
		fmt.Fprintf(tw, "%d\t%.4f\t%.4e\t%.4e\t%s\n", i, r.X[i], r.Nu[i], r.Radius[i], mark)
	}
	return tw.Flush()
}

// zoomIndex marks the samples that appear in the zoom view.
func zoomIndex(r *sweep.Result) []bool {
	marks := make([]bool, r.Len())
	for _, i := range r.ZoomIndices(sweep.ZoomLimit) {
		marks[i] = true
	}
	return marks
}
