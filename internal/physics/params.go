package physics

// Machine holds the spinneret geometry. AngularVelocity is only read by the
// viscosity sweep.
type Machine struct {
	Name            string
	ReservoirRadius float64
	CollectorRadius float64
	OrificeRadius   float64
	AngularVelocity float64
}

// Polymer holds the solution properties. Viscosity is only read by the
// angular-velocity sweep.
type Polymer struct {
	Name           string
	Density        float64
	Viscosity      float64
	SurfaceTension float64
}

// Derived groups the quantities computed once per run.
type Derived struct {
	Threshold       float64
	InitialVelocity float64
}

// Derive computes the ejection threshold and the initial jet velocity.
func Derive(m Machine, p Polymer) (Derived, error) {
	th, err := CriticalRotationalVelocityThreshold(p.SurfaceTension, m.OrificeRadius, m.ReservoirRadius, p.Density)
	if err != nil {
		return Derived{}, err
	}
	u, err := InitialVelocity(th, m.ReservoirRadius)
	if err != nil {
		return Derived{}, err
	}
	return Derived{Threshold: th, InitialVelocity: u}, nil
}

// FinalRadius evaluates FinalRadiusApprox for this machine at the given
// kinematic viscosity and angular velocity.
func (m Machine) FinalRadius(d Derived, nu, omega float64) (float64, error) {
	return FinalRadiusApprox(m.OrificeRadius, d.InitialVelocity, nu, m.CollectorRadius, omega)
}
