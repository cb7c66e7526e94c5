package claw

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

// advectionRP is the f-wave Riemann solver for scalar advection q_t + u q_x = 0
type advectionRP struct {
	u float64
}

func (rp advectionRP) NumEqn() int   { return 1 }
func (rp advectionRP) NumWaves() int { return 1 }

func (rp advectionRP) Solve(qL, qR, auxL, auxR []float64) (waves [][]float64, speeds, amdq, apdq []float64, err error) {
	waves = [][]float64{{rp.u * (qR[0] - qL[0])}}
	speeds = []float64{rp.u}
	amdq = make([]float64, 1)
	apdq = make([]float64, 1)
	if rp.u < 0 {
		amdq[0] = waves[0][0]
	} else {
		apdq[0] = waves[0][0]
	}
	return
}

func gaussianState(mx int) *State {
	var (
		domain = NewDomain(NewDimension(0.0, 1.0, mx))
		state  = NewState(domain, 1, 0)
		x      = domain.Dim.Centers()
	)
	for i := range x {
		arg := (x[i] - 0.3) / 0.05
		state.Q.Set(0, i, math.Exp(-arg*arg))
	}
	return state
}

func TestSolverAdvection(t *testing.T) {
	var (
		mx    = 200
		state = gaussianState(mx)
		sol   = NewSolution(state, state.Domain)
		s     = NewSolver(advectionRP{u: 1.0})
		dx    = state.Domain.Delta()
		mass0 float64
		peak0 float64
	)
	s.BCLower, s.BCUpper = BCPeriodic, BCPeriodic
	for i := 0; i < mx; i++ {
		mass0 += state.Q.At(0, i) * dx
		peak0 = math.Max(peak0, state.Q.At(0, i))
	}

	assert.NoError(t, s.EvolveToTime(sol, 0.1))
	assert.InDelta(t, 0.1, sol.T, 1.e-12)
	assert.True(t, s.NumSteps > 0)
	assert.True(t, s.CFLLast <= s.CFLMax)

	var (
		mass float64
		peak float64
		imax int
	)
	for i := 0; i < mx; i++ {
		mass += state.Q.At(0, i) * dx
		if state.Q.At(0, i) > peak {
			peak = state.Q.At(0, i)
			imax = i
		}
	}
	// periodic advection conserves mass exactly
	assert.InDelta(t, mass0, mass, 1.e-12)
	// limited update does not create new extrema
	assert.True(t, peak <= peak0+1.e-12)
	// the hump moved to x = 0.3 + u t
	assert.InDelta(t, 0.4, state.Domain.Dim.Centers()[imax], 3*dx)
}

func TestSolverMaxSteps(t *testing.T) {
	var (
		state = gaussianState(50)
		sol   = NewSolution(state, state.Domain)
		s     = NewSolver(advectionRP{u: 1.0})
	)
	s.MaxSteps = 1
	assert.Error(t, s.EvolveToTime(sol, 10.0))
}

func TestSolverMaxStepsBoundsOneInterval(t *testing.T) {
	// MaxSteps limits a single evolve call, not the whole run: a long output
	// sequence whose total step count far exceeds the cap must still finish
	// as long as each interval stays under it.
	var (
		state = gaussianState(50)
		sol   = NewSolution(state, state.Domain)
		s     = NewSolver(advectionRP{u: 1.0})
		total int
	)
	s.BCLower, s.BCUpper = BCPeriodic, BCPeriodic
	s.MaxSteps = 6
	for frame := 1; frame <= 10; frame++ {
		assert.NoError(t, s.EvolveToTime(sol, 0.05*float64(frame)))
		assert.True(t, s.NumSteps <= s.MaxSteps)
		total += s.NumSteps
	}
	assert.True(t, total > s.MaxSteps)
	assert.InDelta(t, 0.5, sol.T, 1.e-12)
}

// blowupRP reports a NaN speed, as a diverging nonlinear solver would
type blowupRP struct{}

func (rp blowupRP) NumEqn() int   { return 1 }
func (rp blowupRP) NumWaves() int { return 1 }

func (rp blowupRP) Solve(qL, qR, auxL, auxR []float64) (waves [][]float64, speeds, amdq, apdq []float64, err error) {
	waves = [][]float64{{qR[0] - qL[0]}}
	speeds = []float64{math.NaN()}
	amdq = make([]float64, 1)
	apdq = []float64{waves[0][0]}
	return
}

func TestSolverRejectsNonFiniteSpeeds(t *testing.T) {
	var (
		state = gaussianState(50)
		sol   = NewSolution(state, state.Domain)
		s     = NewSolver(blowupRP{})
	)
	err := s.EvolveToTime(sol, 1.0)
	assert.Error(t, err)
	// the diverged step is rejected, not written back
	assert.False(t, math.IsNaN(state.Q.At(0, 0)))
}

func TestSolverHooks(t *testing.T) {
	var (
		state   = gaussianState(50)
		sol     = NewSolution(state, state.Domain)
		s       = NewSolver(advectionRP{u: 1.0})
		before  int
		sourced int
	)
	s.BeforeStep = func(s *Solver, state *State) error { before++; return nil }
	s.StepSource = func(s *Solver, state *State, dt float64) error { sourced++; return nil }
	assert.NoError(t, s.EvolveToTime(sol, 0.01))
	assert.Equal(t, s.NumSteps, before)
	assert.Equal(t, s.NumSteps, sourced)
}

func TestPhilim(t *testing.T) {
	// smooth data (theta = 1) passes unlimited through every limiter
	for _, l := range []LimiterType{LimiterMinmod, LimiterSuperbee, LimiterVanLeer, LimiterMC} {
		assert.InDelta(t, 1.0, philim(1.0, l), 1.e-12, l.String())
		// extrema (theta <= 0) are fully limited
		assert.Zero(t, philim(-0.5, l), l.String())
	}
	assert.Equal(t, 1.0, philim(-0.5, LimiterNone))
	assert.InDelta(t, 0.5, philim(0.5, LimiterMinmod), 1.e-12)
	assert.InDelta(t, 1.0, philim(0.5, LimiterSuperbee), 1.e-12)
	assert.InDelta(t, 2.0/3.0, philim(0.5, LimiterVanLeer), 1.e-12)
}

func TestFillBCs(t *testing.T) {
	var (
		mx = 4
		ng = 2
		q  = [][]float64{
			{1, 2, 3, 4},
			{10, 20, 30, 40},
		}
	)
	{
		qext := fillBCs(q, mx, ng, BCExtrap, BCExtrap, nil, nil, nil)
		assert.Equal(t, []float64{1, 1, 1, 2, 3, 4, 4, 4}, qext[0])
	}
	{
		qext := fillBCs(q, mx, ng, BCPeriodic, BCPeriodic, nil, nil, nil)
		assert.Equal(t, []float64{3, 4, 1, 2, 3, 4, 1, 2}, qext[0])
	}
	{
		// wall mirrors cells and negates the listed momentum components
		qext := fillBCs(q, mx, ng, BCWall, BCWall, []int{1}, nil, nil)
		assert.Equal(t, []float64{2, 1, 1, 2, 3, 4, 4, 3}, qext[0])
		assert.Equal(t, []float64{-20, -10, 10, 20, 30, 40, -40, -30}, qext[1])
	}
	{
		custom := func(qext [][]float64, ng int) {
			for m := range qext {
				for i := 0; i < ng; i++ {
					qext[m][i] = -1
				}
			}
		}
		qext := fillBCs(q, mx, ng, BCCustom, BCExtrap, nil, custom, nil)
		assert.Equal(t, []float64{-1, -1, 1, 2, 3, 4, 4, 4}, qext[0])
	}
}
