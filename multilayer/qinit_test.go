package multilayer

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSetEtaToSeaLevel(t *testing.T) {
	var (
		p     = NewParams()
		state = newShelfState(600)
		bathy = state.Aux.RawRow(BathyIndex)
	)
	SetEtaToSeaLevel(state, p, [2]float64{0.0, -100.0})
	for i := range bathy {
		h1 := state.Q.At(0, i) / p.Rho[0]
		h2 := state.Q.At(2, i) / p.Rho[1]
		if bathy[i] < -100.0 {
			assert.InDelta(t, 100.0, h1, 1.e-12)
			assert.InDelta(t, -100.0-bathy[i], h2, 1.e-12)
		} else {
			assert.Zero(t, h2)
			assert.InDelta(t, -bathy[i], h1, 1.e-12)
		}
		assert.Zero(t, state.Q.At(1, i))
		assert.Zero(t, state.Q.At(3, i))
		// surfaces stack: b <= eta2 <= eta1
		eta2 := bathy[i] + h2
		assert.True(t, eta2+h1 <= 1.e-12)
		assert.True(t, eta2 >= bathy[i]-1.e-12)
	}
}

func TestWaveFamilyPerturbationLocalized(t *testing.T) {
	var (
		p      = NewParams()
		state  = newShelfState(600)
		x      = state.Centers()
		center = -1000.0
		sigma  = 500.0
		eps    = 0.03
	)
	SetWaveFamilyInitCondition(state, p, 4, -100.0, eps, center, sigma)
	for i, xi := range x {
		h1 := state.Q.At(0, i) / p.Rho[0]
		if math.Abs(xi-center) > 6*sigma {
			// far field stays quiescent to rounding
			assert.InDelta(t, 0.0, state.Q.At(1, i), 1.e-10, "x = %v", xi)
			assert.InDelta(t, 0.0, state.Q.At(3, i), 1.e-10, "x = %v", xi)
			assert.InDelta(t, 100.0, h1, 1.e-10, "x = %v", xi)
			continue
		}
		// perturbation raises the top layer depth, peak at the center
		if math.Abs(xi-center) < sigma/10 {
			assert.True(t, h1 > 100.0+0.9*eps)
		}
	}
}

func TestWaveFamilyEigenvectorTilt(t *testing.T) {
	// Family 4 (right external) travels with both layers moving together;
	// family 3 (right internal) tilts the layers against each other
	var (
		p      = NewParams()
		center = -1000.0
	)
	check := func(family int, wantSign float64) {
		state := newShelfState(600)
		SetWaveFamilyInitCondition(state, p, family, -100.0, 0.03, center, 500.0)
		i := nearestCell(state.Centers(), center)
		dh1 := state.Q.At(0, i)/p.Rho[0] - 100.0
		dh2 := state.Q.At(2, i)/p.Rho[1] - (-100.0 - state.Aux.RawRow(BathyIndex)[i])
		assert.True(t, dh1 > 0)
		assert.True(t, wantSign*dh2 > 0, "family %d dh2 = %v", family, dh2)
		// momentum follows the family speed
		s := linearizedSpeed(p.Gravity, p.OneMinusR(), 100.0, 3100.0, family)
		hu1 := state.Q.At(1, i) / p.Rho[0]
		assert.InDelta(t, dh1*s, hu1, 1.e-8)
	}
	check(4, 1.0)  // external: interface displaced with the surface
	check(3, -1.0) // internal: alpha < 0, layers counter displaced
}

func TestWaveFamilyPlainHump(t *testing.T) {
	// Families outside 1..4 get a pure surface hump with no velocity
	var (
		p     = NewParams()
		state = newShelfState(600)
		i     = nearestCell(state.Centers(), -1000.0)
	)
	SetWaveFamilyInitCondition(state, p, 5, -100.0, 0.03, -1000.0, 500.0)
	h1 := state.Q.At(0, i) / p.Rho[0]
	h2 := state.Q.At(2, i) / p.Rho[1]
	assert.True(t, h1 > 100.0)
	assert.InDelta(t, -100.0-state.Aux.RawRow(BathyIndex)[i], h2, 1.e-12)
	for m := 1; m < NumEqn; m += 2 {
		for j := 0; j < state.Domain.NumCells(); j++ {
			assert.Zero(t, state.Q.At(m, j))
		}
	}
}

func nearestCell(x []float64, target float64) (best int) {
	for i := range x {
		if math.Abs(x[i]-target) < math.Abs(x[best]-target) {
			best = i
		}
	}
	return
}
