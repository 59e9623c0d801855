// Package physics implements the rotary jet-spinning model of Mellado et al.
// ("A simple model for nanofiber formation by rotary jet-spinning").
//
// The model is a handful of closed-form expressions:
//
//   - [CriticalRotationalVelocityThreshold]: angular velocity above which a
//     jet is ejected from the orifice
//   - [InitialVelocity]: linear velocity of the jet at ejection
//   - [KinematicViscosity]: dynamic viscosity over density
//   - [FinalRadiusApprox]: asymptotic fiber radius at the collector
//
// All functions are pure. Parameters come in through [Machine] and [Polymer]
// values and the once-per-run quantities are grouped in [Derived].
//
// # Units
//
// Everything is SI: metres, seconds, Pa·s, kg/m³, N/m. Angular velocity is
// in rounds per unit time, as read from the machine document.
//
// # Example
//
//	d, err := physics.Derive(machine, polymer)
//	nu, err := physics.KinematicViscosity(polymer.Viscosity, polymer.Density)
//	r, err := physics.FinalRadiusApprox(machine.OrificeRadius, d.InitialVelocity, nu, machine.CollectorRadius, omega)
package physics
