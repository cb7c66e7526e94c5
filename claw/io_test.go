package claw

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWriteReadFrame(t *testing.T) {
	var (
		outdir = t.TempDir()
		domain = NewDomain(NewDimension(-2000.0, 4000.0, 30))
		state  = NewState(domain, 4, 5)
		x      = domain.Dim.Centers()
	)
	for i := range x {
		for m := 0; m < 4; m++ {
			state.Q.Set(m, i, float64(m)*100.0+x[i]/1000.0)
		}
		state.Aux.Set(0, i, -3200.0+x[i])
	}
	sol := NewSolution(state, domain)
	sol.SetT(42.5)

	assert.NoError(t, WriteFrame(sol, 7, outdir, true))
	for _, name := range []string{"fort.t0007", "fort.q0007", "fort.a0007"} {
		_, err := os.Stat(filepath.Join(outdir, name))
		assert.NoError(t, err, name)
	}

	got, err := ReadFrame(7, outdir, true)
	assert.NoError(t, err)
	assert.Equal(t, 42.5, got.T)
	assert.Equal(t, 4, got.State.NumEqn)
	assert.Equal(t, 5, got.State.NumAux)
	assert.Equal(t, 30, got.Domain.NumCells())
	assert.InDelta(t, -2000.0, got.Domain.Dim.Lower, 1.e-9)
	assert.InDelta(t, domain.Delta(), got.Domain.Delta(), 1.e-9)
	for i := 0; i < 30; i++ {
		for m := 0; m < 4; m++ {
			assert.InDelta(t, state.Q.At(m, i), got.State.Q.At(m, i), 1.e-12)
		}
		assert.InDelta(t, state.Aux.At(0, i), got.State.Aux.At(0, i), 1.e-12)
	}
}

func TestReadFrameMissing(t *testing.T) {
	_, err := ReadFrame(0, t.TempDir(), false)
	assert.Error(t, err)
}

func TestWriteFrameSkipsAux(t *testing.T) {
	var (
		outdir = t.TempDir()
		domain = NewDomain(NewDimension(0.0, 1.0, 10))
		state  = NewState(domain, 1, 0)
	)
	sol := NewSolution(state, domain)
	assert.NoError(t, WriteFrame(sol, 0, outdir, true))
	_, err := os.Stat(filepath.Join(outdir, "fort.a0000"))
	assert.True(t, os.IsNotExist(err))
}
