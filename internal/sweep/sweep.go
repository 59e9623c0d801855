package sweep

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/cpmech/gosl/utl"

	"github.com/san-kum/rjsim/internal/physics"
)

const (
	DefaultDiscretisation = 20

	// Angular velocity bounds, rounds per minute over 60.
	OmegaMin = 4000.0 / 60
	OmegaMax = 37000.0 / 60

	ViscosityMin = 0.1
	ViscosityMax = 1.0

	// ZoomLimit is the largest final radius (m) kept in the zoom view.
	ZoomLimit = 2e-5
)

var (
	ErrDiscretisation = errors.New("sweep: discretisation must be at least 1")
	ErrUnknownKind    = errors.New("sweep: unknown sweep kind")
)

// Kind selects the independent variable.
type Kind int

const (
	AngularVelocity Kind = iota
	Viscosity
)

func (k Kind) String() string {
	switch k {
	case AngularVelocity:
		return "omega"
	case Viscosity:
		return "viscosity"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// ParseKind accepts "omega", "angular-velocity" or "viscosity".
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(s) {
	case "omega", "angular-velocity", "angular_velocity":
		return AngularVelocity, nil
	case "viscosity", "mu":
		return Viscosity, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownKind, s)
}

// NeedsOmega reports whether the machine document must carry an angular velocity.
func (k Kind) NeedsOmega() bool { return k == Viscosity }

// NeedsViscosity reports whether the polymer document must carry a viscosity.
func (k Kind) NeedsViscosity() bool { return k == AngularVelocity }

// Spec describes the swept sequence.
type Spec struct {
	Kind     Kind
	Min, Max float64
	N        int
	Parallel bool
}

// DefaultSpec returns the standard bounds for kind with N = 20.
func DefaultSpec(kind Kind) Spec {
	s := Spec{Kind: kind, N: DefaultDiscretisation}
	switch kind {
	case Viscosity:
		s.Min, s.Max = ViscosityMin, ViscosityMax
	default:
		s.Min, s.Max = OmegaMin, OmegaMax
	}
	return s
}

// Linspace returns n evenly spaced samples over [min, max], endpoints included.
func Linspace(min, max float64, n int) []float64 {
	if n <= 0 {
		return []float64{}
	}
	if n == 1 {
		return []float64{min}
	}
	xs := utl.LinSpace(min, max, n)
	xs[n-1] = max
	return xs
}

// Result holds the swept sequence and the index-aligned final radii.
type Result struct {
	Kind    Kind
	Machine physics.Machine
	Polymer physics.Polymer
	Derived physics.Derived

	// X is the independent variable: angular velocity or dynamic viscosity.
	X      []float64
	Radius []float64
	// Nu is the kinematic viscosity of every sample. For an angular-velocity
	// sweep all entries are equal.
	Nu []float64
}

// Len returns the number of samples.
func (r *Result) Len() int { return len(r.X) }

// Run evaluates the model over the swept sequence. Any domain error is fatal;
// no partial result is returned.
func Run(ctx context.Context, spec Spec, m physics.Machine, p physics.Polymer) (*Result, error) {
	if spec.N < 1 {
		return nil, fmt.Errorf("%w (got %d)", ErrDiscretisation, spec.N)
	}
	if spec.Kind != AngularVelocity && spec.Kind != Viscosity {
		return nil, fmt.Errorf("%w: %s", ErrUnknownKind, spec.Kind)
	}

	d, err := physics.Derive(m, p)
	if err != nil {
		return nil, err
	}

	xs := Linspace(spec.Min, spec.Max, spec.N)
	res := &Result{
		Kind:    spec.Kind,
		Machine: m,
		Polymer: p,
		Derived: d,
		X:       xs,
		Radius:  make([]float64, len(xs)),
		Nu:      make([]float64, len(xs)),
	}

	eval, err := evaluator(spec.Kind, m, p, d)
	if err != nil {
		return nil, err
	}

	errs := make([]error, len(xs))
	work := func(start, end int) {
		for i := start; i < end; i++ {
			res.Nu[i], res.Radius[i], errs[i] = eval(xs[i])
		}
	}

	if spec.Parallel {
		if err := ParallelFor(ctx, len(xs), minChunk, work); err != nil {
			return nil, err
		}
	} else {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		work(0, len(xs))
	}

	for i, err := range errs {
		if err != nil {
			return nil, fmt.Errorf("sample %d (%s=%g): %w", i, spec.Kind, xs[i], err)
		}
	}
	return res, nil
}

type evalFunc func(x float64) (nu, radius float64, err error)

func evaluator(kind Kind, m physics.Machine, p physics.Polymer, d physics.Derived) (evalFunc, error) {
	if kind == AngularVelocity {
		nu, err := physics.KinematicViscosity(p.Viscosity, p.Density)
		if err != nil {
			return nil, err
		}
		return func(omega float64) (float64, float64, error) {
			r, err := m.FinalRadius(d, nu, omega)
			return nu, r, err
		}, nil
	}

	return func(mu float64) (float64, float64, error) {
		nu, err := physics.KinematicViscosity(mu, p.Density)
		if err != nil {
			return nu, 0, err
		}
		r, err := m.FinalRadius(d, nu, m.AngularVelocity)
		return nu, r, err
	}, nil
}

// Point is one (x, final radius) pair.
type Point struct {
	X, Radius float64
}

// Points returns the full sweep as pairs, in sweep order.
func (r *Result) Points() []Point {
	pts := make([]Point, len(r.X))
	for i := range r.X {
		pts[i] = Point{X: r.X[i], Radius: r.Radius[i]}
	}
	return pts
}

// ZoomIndices returns, in sweep order, the indices of the samples whose
// final radius is at most limit.
//
// The viscosity sweep only scans its first N-1 samples, so its last sample
// never shows up here even when it is under the limit.
func (r *Result) ZoomIndices(limit float64) []int {
	n := len(r.X)
	if r.Kind == Viscosity && n > 0 {
		n--
	}

	idx := make([]int, 0, n)
	for i := 0; i < n; i++ {
		if r.Radius[i] <= limit {
			idx = append(idx, i)
		}
	}
	return idx
}

// Zoom returns the points selected by ZoomIndices.
func (r *Result) Zoom(limit float64) []Point {
	idx := r.ZoomIndices(limit)
	pts := make([]Point, len(idx))
	for j, i := range idx {
		pts[j] = Point{X: r.X[i], Radius: r.Radius[i]}
	}
	return pts
}
