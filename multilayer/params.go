// Package multilayer implements the physics of the two layer shallow water
// equations in one dimension: the f-wave Riemann solver, auxiliary field
// setup (bathymetry, wind, linearized depths), initial conditions and the
// wind/friction step hooks.
package multilayer

// Aux field layout, per cell
const (
	BathyIndex = 0
	WindIndex  = 1
	HHatIndex  = 2 // two entries, one per layer
	KappaIndex = 4
	NumAux     = 5
)

const (
	NumLayers = 2
	NumEqn    = 2 * NumLayers
)

// Params carries the physical and numerical scenario parameters. Immutable
// once the run starts.
type Params struct {
	Gravity      float64
	Manning      float64
	RhoAir       float64
	Rho          [2]float64
	EigenMethod  int
	DryTolerance float64
	// InundationMethod selects the dry state treatment at wet/dry fronts
	InundationMethod int
	EntropyFix       bool
	// FrictionDepth limits Manning friction to columns shallower than this
	FrictionDepth       float64
	RichardsonTolerance float64
}

func NewParams() (p *Params) {
	p = &Params{
		Gravity:             9.8,
		Manning:             0.0,
		RhoAir:              1.15e-3,
		Rho:                 [2]float64{0.95, 1.0},
		EigenMethod:         2,
		DryTolerance:        1e-3,
		InundationMethod:    2,
		EntropyFix:          false,
		FrictionDepth:       1e6,
		RichardsonTolerance: 0.95,
	}
	return
}

// R is the density ratio rho[0]/rho[1], always < 1 for a stable
// stratification
func (p *Params) R() float64 { return p.Rho[0] / p.Rho[1] }

// OneMinusR is the reduced gravity factor 1 - R
func (p *Params) OneMinusR() float64 { return 1.0 - p.R() }
