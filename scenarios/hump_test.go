package scenarios

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/oceanwaves/mlclaw/claw"
	"github.com/oceanwaves/mlclaw/multilayer"
)

func TestNewHumpRejectsUnknownSolver(t *testing.T) {
	cfg := DefaultConfig()
	cfg.SolverType = "sharpclaw"
	h, err := NewHump(cfg)
	assert.Nil(t, h)
	assert.True(t, errors.Is(err, ErrSolverNotImplemented))
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, 8000, cfg.NumCells)
	assert.Equal(t, 2, cfg.EigenMethod)
	assert.Equal(t, 5, cfg.WaveFamily)
	assert.Equal(t, "classic", cfg.SolverType)
	assert.False(t, cfg.DryState)
	assert.Equal(t, 100.0, cfg.TFinal)
	assert.Equal(t, 100, cfg.NumOutputTimes)
}

func TestNewHumpAssembly(t *testing.T) {
	cfg := DefaultConfig()
	cfg.NumCells = 100
	h, err := NewHump(cfg)
	assert.NoError(t, err)
	assert.Equal(t, 0.9, h.Solver.CFLDesired)
	assert.Equal(t, []int{1, 3}, h.Solver.ReflectIndices)
	assert.NotNil(t, h.Solver.BeforeStep)
	assert.NotNil(t, h.Solver.StepSource)
	assert.True(t, h.Solver.DtInitial > 0)

	var (
		state = h.Controller.Solution.State
		bathy = state.Aux.RawRow(multilayer.BathyIndex)
	)
	assert.Equal(t, 100, state.Domain.NumCells())
	assert.Equal(t, multilayer.NumEqn, state.NumEqn)
	assert.Equal(t, multilayer.NumAux, state.NumAux)
	assert.Equal(t, BasinDepth, bathy[0])
	assert.Equal(t, ShelfDepth, bathy[len(bathy)-1])
}

func TestNewHumpAppliesParameterOverrides(t *testing.T) {
	cfg := DefaultConfig()
	cfg.NumCells = 100
	cfg.Gravity = 9.81
	cfg.Rho = [2]float64{0.90, 1.02}
	cfg.Manning = 0.025
	cfg.DryTolerance = 1e-2
	cfg.CFLDesired = 0.8
	cfg.CFLMax = 0.95
	cfg.MaxSteps = 1000
	h, err := NewHump(cfg)
	assert.NoError(t, err)
	assert.Equal(t, 9.81, h.Params.Gravity)
	assert.Equal(t, [2]float64{0.90, 1.02}, h.Params.Rho)
	assert.Equal(t, 0.025, h.Params.Manning)
	assert.Equal(t, 1e-2, h.Params.DryTolerance)
	assert.Equal(t, 0.8, h.Solver.CFLDesired)
	assert.Equal(t, 0.95, h.Solver.CFLMax)
	assert.Equal(t, 1000, h.Solver.MaxSteps)

	// zero valued overrides fall back to the standard values
	h, err = NewHump(Config{NumCells: 100, SolverType: "classic"})
	assert.NoError(t, err)
	assert.Equal(t, 9.8, h.Params.Gravity)
	assert.Equal(t, [2]float64{0.95, 1.0}, h.Params.Rho)
	assert.Equal(t, 0.9, h.Solver.CFLDesired)
	assert.Equal(t, 5000, h.Solver.MaxSteps)
}

func TestNewHumpDryState(t *testing.T) {
	cfg := DefaultConfig()
	cfg.NumCells = 100
	cfg.DryState = true
	h, err := NewHump(cfg)
	assert.NoError(t, err)

	// interface at -300 sits below the shelf crest, so the bottom layer
	// dries out over the shelf
	var (
		state = h.Controller.Solution.State
		bathy = state.Aux.RawRow(multilayer.BathyIndex)
		mx    = state.Domain.NumCells()
	)
	sawDry := false
	for i := 0; i < mx; i++ {
		h2 := state.Q.At(2, i) / h.Params.Rho[1]
		if bathy[i] >= EtaInternalD {
			assert.Zero(t, h2)
			sawDry = true
		} else {
			assert.True(t, h2 > 0)
		}
	}
	assert.True(t, sawDry)
}

func TestHumpShortRun(t *testing.T) {
	cfg := DefaultConfig()
	cfg.NumCells = 100
	cfg.TFinal = 1.0
	cfg.NumOutputTimes = 2
	cfg.OutDir = t.TempDir()
	h, err := NewHump(cfg)
	assert.NoError(t, err)

	var (
		state        = h.Controller.Solution.State
		mass0, mass1 float64
		mx           = state.Domain.NumCells()
	)
	for i := 0; i < mx; i++ {
		mass0 += state.Q.At(0, i)
		mass1 += state.Q.At(2, i)
	}

	_, err = h.Controller.Run()
	assert.NoError(t, err)
	assert.True(t, h.Solver.NumSteps > 0)
	assert.InDelta(t, cfg.TFinal, h.Controller.Solution.T, 1.e-9)

	// frames 0..2 on disk, final frame matches the in memory state
	sol, err := claw.ReadFrame(2, cfg.OutDir, false)
	assert.NoError(t, err)
	assert.InDelta(t, cfg.TFinal, sol.T, 1.e-9)

	var m0, m1 float64
	for i := 0; i < mx; i++ {
		m0 += state.Q.At(0, i)
		m1 += state.Q.At(2, i)
	}
	// nothing reaches the open boundaries in one second, mass holds
	assert.InDelta(t, mass0, m0, 1.e-6*mass0)
	assert.InDelta(t, mass1, m1, 1.e-6*mass1)
}
