package physics

import (
	"math"
)

// CriticalRotationalVelocityThreshold returns the angular velocity at which
// centrifugal pressure at the orifice overcomes capillarity:
//
//	Ω_th = sqrt(σ / (a · s0² · ρ))
//
// where σ is the surface tension, a the orifice radius, s0 the reservoir
// radius and ρ the density. All inputs must be strictly positive.
func CriticalRotationalVelocityThreshold(surfaceTension, orificeRadius, reservoirRadius, density float64) (float64, error) {
	args := []Arg{
		{"surface_tension", surfaceTension},
		{"orifice_radius", orificeRadius},
		{"reservoir_radius", reservoirRadius},
		{"density", density},
	}
	for _, a := range args {
		if !(a.Value > 0) || math.IsInf(a.Value, 0) {
			return 0, modelErr("critical_rotational_velocity_threshold", ErrParameterBounds, args...)
		}
	}

	omega := math.Sqrt(surfaceTension / (orificeRadius * reservoirRadius * reservoirRadius * density))
	if !finite(omega) {
		return omega, modelErr("critical_rotational_velocity_threshold", ErrNonFinite, args...)
	}
	return omega, nil
}

// InitialVelocity returns the jet velocity at ejection, the tangential
// speed of the reservoir wall at the threshold: U = Ω_th · s0.
func InitialVelocity(threshold, reservoirRadius float64) (float64, error) {
	u := threshold * reservoirRadius
	if !finite(u) {
		return u, modelErr("initial_velocity", ErrNonFinite,
			Arg{"omega_threshold", threshold}, Arg{"reservoir_radius", reservoirRadius})
	}
	return u, nil
}

// KinematicViscosity returns μ / ρ.
func KinematicViscosity(dynamicViscosity, density float64) (float64, error) {
	if density == 0 {
		return 0, modelErr("kinematic_viscosity", ErrDivisionByZero,
			Arg{"dynamic_viscosity", dynamicViscosity}, Arg{"density", density})
	}
	nu := dynamicViscosity / density
	if !finite(nu) {
		return nu, modelErr("kinematic_viscosity", ErrNonFinite,
			Arg{"dynamic_viscosity", dynamicViscosity}, Arg{"density", density})
	}
	return nu, nil
}

// FinalRadiusApprox returns the viscous-regime asymptote for the fiber
// radius at the collector:
//
//	r_f = a · sqrt(U · ν) / (Ω · Rc^(3/2))
//
// A negative radius is returned alongside ErrNegativeRadius so callers can
// report it; it is never clamped.
func FinalRadiusApprox(orificeRadius, initialVelocity, kinematicViscosity, collectorRadius, angularVelocity float64) (float64, error) {
	args := []Arg{
		{"orifice_radius", orificeRadius},
		{"initial_velocity", initialVelocity},
		{"kinematic_viscosity", kinematicViscosity},
		{"collector_radius", collectorRadius},
		{"angular_velocity", angularVelocity},
	}
	if angularVelocity == 0 || collectorRadius == 0 {
		return 0, modelErr("final_radius_approx", ErrDivisionByZero, args...)
	}

	r := orificeRadius * math.Sqrt(initialVelocity*kinematicViscosity) /
		(angularVelocity * math.Pow(collectorRadius, 1.5))

	switch {
	case !finite(r):
		return r, modelErr("final_radius_approx", ErrNonFinite, args...)
	case r < 0:
		return r, modelErr("final_radius_approx", ErrNegativeRadius, args...)
	}
	return r, nil
}

func finite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
