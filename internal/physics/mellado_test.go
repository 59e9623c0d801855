package physics_test

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/rjsim/internal/physics"
)

var _ = Describe("Mellado model", func() {
	var (
		machine physics.Machine
		polymer physics.Polymer
	)

	BeforeEach(func() {
		machine = physics.Machine{
			Name:            "bench",
			ReservoirRadius: 0.01,
			CollectorRadius: 0.5,
			OrificeRadius:   0.0005,
			AngularVelocity: 300,
		}
		polymer = physics.Polymer{
			Name:           "reference",
			Density:        1200,
			Viscosity:      0.3,
			SurfaceTension: 0.03,
		}
	})

	Describe("CriticalRotationalVelocityThreshold", func() {
		It("matches the closed form", func() {
			th, err := physics.CriticalRotationalVelocityThreshold(0.03, 0.0005, 0.01, 1200)
			Expect(err).NotTo(HaveOccurred())
			Expect(th).To(BeNumerically("~", math.Sqrt(500), 1e-12))
		})

		DescribeTable("is finite and positive for positive inputs",
			func(sigma, a, s0, rho float64) {
				th, err := physics.CriticalRotationalVelocityThreshold(sigma, a, s0, rho)
				Expect(err).NotTo(HaveOccurred())
				Expect(th).To(BeNumerically(">", 0))
				Expect(math.IsInf(th, 0) || math.IsNaN(th)).To(BeFalse())
			},
			Entry("reference", 0.03, 0.0005, 0.01, 1200.0),
			Entry("water-like", 0.072, 0.0002, 0.015, 1000.0),
			Entry("tiny orifice", 0.04, 1e-6, 0.02, 900.0),
			Entry("large reservoir", 0.03, 0.0005, 1.0, 1500.0),
		)

		It("fails on a zero reservoir radius instead of returning infinity", func() {
			th, err := physics.CriticalRotationalVelocityThreshold(0.03, 0.0005, 0, 1200)
			Expect(err).To(MatchError(physics.ErrParameterBounds))
			Expect(math.IsInf(th, 0)).To(BeFalse())
		})

		DescribeTable("rejects non-positive inputs",
			func(sigma, a, s0, rho float64) {
				_, err := physics.CriticalRotationalVelocityThreshold(sigma, a, s0, rho)
				Expect(err).To(MatchError(physics.ErrParameterBounds))
			},
			Entry("zero surface tension", 0.0, 0.0005, 0.01, 1200.0),
			Entry("negative orifice", 0.03, -0.0005, 0.01, 1200.0),
			Entry("zero density", 0.03, 0.0005, 0.01, 0.0),
			Entry("NaN reservoir", 0.03, 0.0005, math.NaN(), 1200.0),
		)

		It("names the operation and inputs in the error", func() {
			_, err := physics.CriticalRotationalVelocityThreshold(0.03, 0.0005, 0, 1200)
			var me *physics.ModelError
			Expect(err).To(BeAssignableToTypeOf(me))
			Expect(err.Error()).To(ContainSubstring("reservoir_radius=0"))
		})
	})

	Describe("InitialVelocity", func() {
		It("is the wall speed at the threshold", func() {
			u, err := physics.InitialVelocity(math.Sqrt(500), 0.01)
			Expect(err).NotTo(HaveOccurred())
			Expect(u).To(BeNumerically("~", 0.22360679774997894, 1e-15))
		})
	})

	Describe("KinematicViscosity", func() {
		It("is exactly mu / rho", func() {
			for _, c := range [][2]float64{{0.3, 1200}, {0.1, 1000}, {1.0, 997.3}, {0.0473, 1.2}} {
				nu, err := physics.KinematicViscosity(c[0], c[1])
				Expect(err).NotTo(HaveOccurred())
				Expect(nu).To(Equal(c[0] / c[1]))
			}
		})

		It("is 2.5e-4 for the reference polymer", func() {
			nu, err := physics.KinematicViscosity(0.3, 1200)
			Expect(err).NotTo(HaveOccurred())
			Expect(nu).To(BeNumerically("~", 2.5e-4, 1e-15))
		})

		It("fails on zero density", func() {
			_, err := physics.KinematicViscosity(0.3, 0)
			Expect(err).To(MatchError(physics.ErrDivisionByZero))
		})
	})

	Describe("FinalRadiusApprox", func() {
		It("reproduces the reference run", func() {
			d, err := physics.Derive(machine, polymer)
			Expect(err).NotTo(HaveOccurred())
			nu, err := physics.KinematicViscosity(polymer.Viscosity, polymer.Density)
			Expect(err).NotTo(HaveOccurred())

			r, err := machine.FinalRadius(d, nu, machine.AngularVelocity)
			Expect(err).NotTo(HaveOccurred())
			Expect(r).To(BeNumerically("~", 3.5245708781352136e-08, 1e-20))

			again, err := machine.FinalRadius(d, nu, machine.AngularVelocity)
			Expect(err).NotTo(HaveOccurred())
			Expect(again).To(Equal(r))
		})

		It("decreases as angular velocity increases", func() {
			d, err := physics.Derive(machine, polymer)
			Expect(err).NotTo(HaveOccurred())

			var prev float64
			for i, omega := range []float64{4000.0 / 60, 300, 37000.0 / 60} {
				r, err := machine.FinalRadius(d, 2.5e-4, omega)
				Expect(err).NotTo(HaveOccurred())
				if i > 0 {
					Expect(r).To(BeNumerically("<", prev))
				}
				prev = r
			}
		})

		It("fails on zero angular velocity", func() {
			_, err := physics.FinalRadiusApprox(0.0005, 0.2236, 2.5e-4, 0.5, 0)
			Expect(err).To(MatchError(physics.ErrDivisionByZero))
		})

		It("surfaces a negative radius rather than clamping it", func() {
			r, err := physics.FinalRadiusApprox(0.0005, 0.2236, 2.5e-4, 0.5, -300)
			Expect(err).To(MatchError(physics.ErrNegativeRadius))
			Expect(r).To(BeNumerically("<", 0))
		})

		It("surfaces NaN from a negative viscosity", func() {
			r, err := physics.FinalRadiusApprox(0.0005, 0.2236, -2.5e-4, 0.5, 300)
			Expect(err).To(MatchError(physics.ErrNonFinite))
			Expect(math.IsNaN(r)).To(BeTrue())
		})
	})

	Describe("Derive", func() {
		It("propagates threshold errors", func() {
			machine.ReservoirRadius = 0
			_, err := physics.Derive(machine, polymer)
			Expect(err).To(MatchError(physics.ErrParameterBounds))
		})
	})
})
