package multilayer

import (
	"fmt"
	"math"

	"github.com/oceanwaves/mlclaw/claw"
)

// BeforeStep returns the hook run before every solver step: it refreshes
// the wind field, rejects negative layer masses, and stores the local
// Richardson number in the kappa aux field as a shear stability diagnostic.
func BeforeStep(params *Params, wind WindFunc) func(s *claw.Solver, state *claw.State) error {
	warned := false
	return func(s *claw.Solver, state *claw.State) error {
		var (
			mx       = state.Domain.NumCells()
			kappa    = state.Aux.RawRow(KappaIndex)
			g        = params.Gravity
			omr      = params.OneMinusR()
			maxKappa float64
		)
		for i := 0; i < mx; i++ {
			if state.Q.At(0, i) < -params.DryTolerance || state.Q.At(2, i) < -params.DryTolerance {
				return fmt.Errorf("negative layer depth in cell %d (q = %g, %g)",
					i, state.Q.At(0, i), state.Q.At(2, i))
			}
			h1 := state.Q.At(0, i) / params.Rho[0]
			h2 := state.Q.At(2, i) / params.Rho[1]
			kappa[i] = 0
			if h1 > params.DryTolerance && h2 > params.DryTolerance {
				u1 := state.Q.At(1, i) / state.Q.At(0, i)
				u2 := state.Q.At(3, i) / state.Q.At(2, i)
				du := u1 - u2
				kappa[i] = du * du / (g * omr * (h1 + h2))
				if kappa[i] > maxKappa {
					maxKappa = kappa[i]
				}
			}
		}
		if maxKappa > params.RichardsonTolerance && !warned {
			fmt.Printf("Warning: Richardson number %6.3f exceeds tolerance %6.3f at t = %g, hyperbolicity may be lost\n",
				maxKappa, params.RichardsonTolerance, state.T)
			warned = true
		}
		if wind != nil {
			wind(state)
		}
		return nil
	}
}

// FrictionSource returns the Godunov split source hook applying Manning
// bottom friction to the lowest wet layer of columns shallower than
// FrictionDepth. A zero Manning coefficient makes the hook a no-op, matching
// the quiescent ocean scenario.
func FrictionSource(params *Params) func(s *claw.Solver, state *claw.State, dt float64) error {
	return func(s *claw.Solver, state *claw.State, dt float64) error {
		if params.Manning == 0 {
			return nil
		}
		var (
			mx = state.Domain.NumCells()
			g  = params.Gravity
			n2 = params.Manning * params.Manning
		)
		for i := 0; i < mx; i++ {
			depth := state.Q.At(0, i)/params.Rho[0] + state.Q.At(2, i)/params.Rho[1]
			if depth > params.FrictionDepth {
				continue
			}
			// Friction acts on the bottom-most wet layer
			for k := NumLayers - 1; k >= 0; k-- {
				h := state.Q.At(2*k, i) / params.Rho[k]
				if h <= params.DryTolerance {
					continue
				}
				hu := state.Q.At(2*k+1, i)
				u := hu / state.Q.At(2*k, i)
				gamma := g * n2 * math.Abs(u) / math.Pow(h, 4.0/3.0)
				state.Q.Set(2*k+1, i, hu/(1.0+dt*gamma))
				break
			}
		}
		return nil
	}
}
