package multilayer

import (
	"math"

	"github.com/oceanwaves/mlclaw/claw"
)

// SetEtaToSeaLevel initializes a quiescent state with the layer surfaces at
// the elevations eta = (surface, internal interface), zero momenta.
func SetEtaToSeaLevel(state *claw.State, params *Params, eta [2]float64) {
	var (
		bathy = state.Aux.RawRow(BathyIndex)
		mx    = state.Domain.NumCells()
	)
	for i := 0; i < mx; i++ {
		h2 := math.Max(0.0, eta[1]-bathy[i])
		h1 := math.Max(0.0, eta[0]-math.Max(eta[1], bathy[i]))
		state.Q.Set(0, i, params.Rho[0]*h1)
		state.Q.Set(1, i, 0.0)
		state.Q.Set(2, i, params.Rho[1]*h2)
		state.Q.Set(3, i, 0.0)
	}
}

// SetWaveFamilyInitCondition initializes the quiescent two layer state with
// the internal interface at etaInternal and the free surface at sea level,
// then superimposes a gaussian perturbation of amplitude epsilon centered at
// center with half-width sigma, projected along the linearized eigenvector
// of the requested wave family so a single characteristic mode is excited.
//
// Families are numbered 1..4 in order of increasing speed: left external,
// left internal, right internal, right external. A family outside that
// range perturbs the free surface alone (a plain hump, no velocity tilt).
func SetWaveFamilyInitCondition(state *claw.State, params *Params, waveFamily int,
	etaInternal, epsilon, center, sigma float64) {
	var (
		x  = state.Centers()
		g  = params.Gravity
		mx = state.Domain.NumCells()
	)
	SetEtaToSeaLevel(state, params, [2]float64{0.0, etaInternal})
	for i := 0; i < mx; i++ {
		h1 := state.Q.At(0, i) / params.Rho[0]
		h2 := state.Q.At(2, i) / params.Rho[1]
		if h1 <= params.DryTolerance || h2 <= params.DryTolerance {
			continue
		}
		arg := (x[i] - center) / sigma
		pert := epsilon * math.Exp(-arg*arg)
		if pert == 0 {
			continue
		}
		var dh1, dhu1, dh2, dhu2 float64
		if waveFamily >= 1 && waveFamily <= NumEqn {
			s := linearizedSpeed(g, params.OneMinusR(), h1, h2, waveFamily)
			alpha := (s*s - g*h1) / (g * h1)
			dh1, dhu1 = pert, pert*s
			dh2, dhu2 = pert*alpha, pert*alpha*s
		} else {
			dh1 = pert
		}
		state.Q.Set(0, i, state.Q.At(0, i)+params.Rho[0]*dh1)
		state.Q.Set(1, i, state.Q.At(1, i)+params.Rho[0]*dhu1)
		state.Q.Set(2, i, state.Q.At(2, i)+params.Rho[1]*dh2)
		state.Q.Set(3, i, state.Q.At(3, i)+params.Rho[1]*dhu2)
	}
}

// linearizedSpeed returns the still water characteristic speed of the given
// wave family for layer depths h1 (top) and h2 (bottom)
func linearizedSpeed(g, oneMinusR, h1, h2 float64, family int) (s float64) {
	var (
		external = math.Sqrt(g * (h1 + h2))
		internal = math.Sqrt(g * oneMinusR * h1 * h2 / (h1 + h2))
	)
	switch family {
	case 1:
		s = -external
	case 2:
		s = -internal
	case 3:
		s = internal
	default:
		s = external
	}
	return
}
