package claw

import (
	"fmt"
	"math"
)

// RiemannSolver1D produces the f-wave decomposition of the flux difference
// across one cell interface. waves is (numWaves x numEqn), speeds has
// numWaves entries, and amdq/apdq are the left/right going fluctuations.
type RiemannSolver1D interface {
	NumEqn() int
	NumWaves() int
	Solve(qL, qR, auxL, auxR []float64) (waves [][]float64, speeds, amdq, apdq []float64, err error)
}

// LimiterType selects the wave limiter applied to the second order
// correction terms, numbered as in the classic codes.
type LimiterType int

const (
	LimiterNone LimiterType = iota
	LimiterMinmod
	LimiterSuperbee
	LimiterVanLeer
	LimiterMC
)

var limiterNames = []string{"none", "minmod", "superbee", "vanleer", "mc"}

func (l LimiterType) String() string {
	if int(l) < len(limiterNames) {
		return limiterNames[l]
	}
	return "unknown"
}

func philim(theta float64, limiter LimiterType) (phi float64) {
	switch limiter {
	case LimiterMinmod:
		phi = math.Max(0, math.Min(1, theta))
	case LimiterSuperbee:
		phi = math.Max(0, math.Max(math.Min(1, 2*theta), math.Min(2, theta)))
	case LimiterVanLeer:
		phi = (theta + math.Abs(theta)) / (1 + math.Abs(theta))
	case LimiterMC:
		phi = math.Max(0, math.Min(math.Min((1+theta)/2, 2), 2*theta))
	default:
		phi = 1
	}
	return
}

// Solver is a classic second order wave propagation finite volume solver in
// one dimension using the f-wave formulation. The Riemann solver is
// pluggable; time step size adapts to hold the CFL number near CFLDesired
// and a step is redone with a smaller dt when CFLMax is exceeded.
type Solver struct {
	RP          RiemannSolver1D
	Limiter     LimiterType
	CFLDesired  float64
	CFLMax      float64
	MaxSteps    int
	DtInitial   float64
	DtMax       float64
	NumGhost    int
	SourceSplit int

	BCLower, BCUpper       BCType
	AuxBCLower, AuxBCUpper BCType
	// Momentum component indices negated by wall boundaries
	ReflectIndices []int
	CustomBCLower  func(qext [][]float64, ng int)
	CustomBCUpper  func(qext [][]float64, ng int)

	// BeforeStep runs before each time step (wind forcing, diagnostics).
	// StepSource applies source terms after the hyperbolic step when
	// SourceSplit is 1 (Godunov splitting).
	BeforeStep func(s *Solver, state *State) error
	StepSource func(s *Solver, state *State, dt float64) error

	// Status after the last Evolve call
	NumSteps int
	CFLLast  float64
	DtLast   float64

	dt float64
}

func NewSolver(rp RiemannSolver1D) (s *Solver) {
	s = &Solver{
		RP:          rp,
		Limiter:     LimiterVanLeer,
		CFLDesired:  0.9,
		CFLMax:      1.0,
		MaxSteps:    5000,
		DtInitial:   0.1,
		DtMax:       1e99,
		NumGhost:    2,
		SourceSplit: 1,
		BCLower:     BCExtrap,
		BCUpper:     BCExtrap,
		AuxBCLower:  BCExtrap,
		AuxBCUpper:  BCExtrap,
	}
	return
}

// EvolveToTime advances the solution to tend, taking as many adaptive steps
// as needed. MaxSteps bounds a single call, so a controller run gets the
// full budget for every output interval.
func (s *Solver) EvolveToTime(sol *Solution, tend float64) (err error) {
	var (
		state = sol.State
	)
	s.NumSteps = 0
	if s.dt == 0 {
		s.dt = s.DtInitial
	}
	for sol.T < tend-1e-12 {
		if s.NumSteps >= s.MaxSteps {
			return fmt.Errorf("reached maximum number of steps (%d) at t = %g", s.MaxSteps, sol.T)
		}
		if s.BeforeStep != nil {
			if err = s.BeforeStep(s, state); err != nil {
				return fmt.Errorf("before step hook failed at t = %g: %w", sol.T, err)
			}
		}
		dt := s.dt
		if sol.T+dt > tend {
			dt = tend - sol.T
		}
		var cfl float64
		for {
			var qnew [][]float64
			qnew, cfl, err = s.step(state, dt)
			if err != nil {
				return fmt.Errorf("step failed at t = %g: %w", sol.T, err)
			}
			if cfl <= s.CFLMax {
				for m := 0; m < state.NumEqn; m++ {
					state.Q.SetRow(m, qnew[m])
				}
				break
			}
			// CFL overflow: shrink dt and redo the step
			dt *= s.CFLDesired / cfl
		}
		sol.SetT(sol.T + dt)
		s.NumSteps++
		s.CFLLast = cfl
		s.DtLast = dt
		if s.SourceSplit == 1 && s.StepSource != nil {
			if err = s.StepSource(s, state, dt); err != nil {
				return fmt.Errorf("source term failed at t = %g: %w", sol.T, err)
			}
		}
		// Choose the next step from the achieved CFL
		if cfl > 0 {
			s.dt = math.Min(s.DtMax, dt*s.CFLDesired/cfl)
		} else {
			s.dt = s.DtMax
		}
	}
	return
}

// step performs one second order f-wave update, returning the candidate
// interior solution and the CFL number of the step. The state is not
// modified so an over-CFL step can be redone.
func (s *Solver) step(state *State, dt float64) (qnew [][]float64, cfl float64, err error) {
	var (
		mx     = state.Domain.NumCells()
		ng     = s.NumGhost
		numEqn = s.RP.NumEqn()
		numW   = s.RP.NumWaves()
		dx     = state.Domain.Delta()
		dtdx   = dt / dx
		mxext  = mx + 2*ng
	)
	q := make([][]float64, numEqn)
	for m := 0; m < numEqn; m++ {
		q[m] = state.Q.RawRow(m)
	}
	qext := fillBCs(q, mx, ng, s.BCLower, s.BCUpper, s.ReflectIndices, s.CustomBCLower, s.CustomBCUpper)
	aux := make([][]float64, state.NumAux)
	for m := 0; m < state.NumAux; m++ {
		aux[m] = state.Aux.RawRow(m)
	}
	auxext := fillBCs(aux, mx, ng, s.AuxBCLower, s.AuxBCUpper, nil, nil, nil)

	// Riemann problem at each interface j, between extended cells j-1 and j
	var (
		waves  = make([][][]float64, mxext) // [iface][wave][eqn]
		speeds = make([][]float64, mxext)
		amdq   = make([][]float64, mxext)
		apdq   = make([][]float64, mxext)
		qL     = make([]float64, numEqn)
		qR     = make([]float64, numEqn)
		auxL   = make([]float64, len(auxext))
		auxR   = make([]float64, len(auxext))
	)
	for j := 1; j < mxext; j++ {
		for m := 0; m < numEqn; m++ {
			qL[m] = qext[m][j-1]
			qR[m] = qext[m][j]
		}
		for m := range auxext {
			auxL[m] = auxext[m][j-1]
			auxR[m] = auxext[m][j]
		}
		if waves[j], speeds[j], amdq[j], apdq[j], err = s.RP.Solve(qL, qR, auxL, auxR); err != nil {
			return nil, 0, err
		}
	}

	// First order Godunov update from the fluctuations
	qnew = make([][]float64, numEqn)
	for m := 0; m < numEqn; m++ {
		qnew[m] = make([]float64, mx)
		for i := 0; i < mx; i++ {
			ie := i + ng
			qnew[m][i] = qext[m][ie] - dtdx*(apdq[ie][m]+amdq[ie+1][m])
		}
	}

	// CFL from interfaces bordering interior cells. A non finite speed means
	// the solution has blown up; report it instead of accepting the step.
	for j := ng; j <= mx+ng; j++ {
		for _, sp := range speeds[j] {
			if math.IsNaN(sp) || math.IsInf(sp, 0) {
				return nil, 0, fmt.Errorf("non-finite wave speed at interface %d", j-ng)
			}
			if c := math.Abs(sp) * dtdx; c > cfl {
				cfl = c
			}
		}
	}

	// Second order limited corrections: correction flux at each interface.
	// With LimiterNone the waves pass through unlimited (Lax-Wendroff).
	F := make([][]float64, mxext)
	for j := ng; j <= mx+ng; j++ {
		F[j] = make([]float64, numEqn)
		for p := 0; p < numW; p++ {
			sp := speeds[j][p]
			if sp == 0 {
				continue
			}
			// Upwind interface for the limiter ratio
			var jUp int
			if sp > 0 {
				jUp = j - 1
			} else {
				jUp = j + 1
			}
			wnorm2 := dot(waves[j][p], waves[j][p])
			theta := 0.0
			if wnorm2 > 0 && jUp >= 1 && jUp < mxext {
				theta = dot(waves[jUp][p], waves[j][p]) / wnorm2
			}
			phi := philim(theta, s.Limiter)
			cq := 0.5 * sign(sp) * (1 - math.Abs(sp)*dtdx)
			for m := 0; m < numEqn; m++ {
				// f-wave form: the wave already carries flux units
				F[j][m] += cq * phi * waves[j][p][m]
			}
		}
	}
	for m := 0; m < numEqn; m++ {
		for i := 0; i < mx; i++ {
			ie := i + ng
			qnew[m][i] -= dtdx * (F[ie+1][m] - F[ie][m])
			if math.IsNaN(qnew[m][i]) || math.IsInf(qnew[m][i], 0) {
				return nil, 0, fmt.Errorf("non-finite solution in cell %d, equation %d", i, m)
			}
		}
	}
	return
}

func dot(a, b []float64) (d float64) {
	for i := range a {
		d += a[i] * b[i]
	}
	return
}

func sign(a float64) float64 {
	if a < 0 {
		return -1
	}
	return 1
}
