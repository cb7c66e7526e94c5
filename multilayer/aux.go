package multilayer

import (
	"math"

	"github.com/oceanwaves/mlclaw/claw"
)

// SetSlopedShelfBathymetry fills the bathymetry aux field with a flat basin
// of depth basinDepth, a linear slope between x0 and x1, and a continental
// shelf of depth shelfDepth beyond x1.
func SetSlopedShelfBathymetry(state *claw.State, x0, x1, basinDepth, shelfDepth float64) {
	var (
		x     = state.Centers()
		bathy = state.Aux.RawRow(BathyIndex)
		slope = (shelfDepth - basinDepth) / (x1 - x0)
	)
	for i, xi := range x {
		switch {
		case xi <= x0:
			bathy[i] = basinDepth
		case xi >= x1:
			bathy[i] = shelfDepth
		default:
			bathy[i] = basinDepth + slope*(xi-x0)
		}
	}
}

// SetJumpBathymetry fills the bathymetry aux field with a step at
// jumpLocation: depths[0] to the left, depths[1] to the right.
func SetJumpBathymetry(state *claw.State, jumpLocation float64, depths [2]float64) {
	var (
		x     = state.Centers()
		bathy = state.Aux.RawRow(BathyIndex)
	)
	for i, xi := range x {
		if xi < jumpLocation {
			bathy[i] = depths[0]
		} else {
			bathy[i] = depths[1]
		}
	}
}

// WindFunc refreshes the wind stress aux field for the state's current time
type WindFunc func(state *claw.State)

// SetNoWind zeroes the wind field
func SetNoWind(state *claw.State) {
	wind := state.Aux.RawRow(WindIndex)
	for i := range wind {
		wind[i] = 0.0
	}
}

// OscillatoryWind returns a WindFunc applying a spatially uniform wind
// stress oscillating in time, amplitude A and angular frequency omega.
func OscillatoryWind(A, omega float64) WindFunc {
	return func(state *claw.State) {
		var (
			wind = state.Aux.RawRow(WindIndex)
			w    = A * math.Sin(omega*state.T)
		)
		for i := range wind {
			wind[i] = w
		}
	}
}

// SetHHat stores the linearized layer depths derived from the target
// surface elevations eta = (surface, internal interface). The left/right
// pairs allow a jump at jumpLocation; the hump scenario passes identical
// values so the field is uniform.
func SetHHat(state *claw.State, jumpLocation float64, etaLeft, etaRight [2]float64) {
	var (
		x     = state.Centers()
		bathy = state.Aux.RawRow(BathyIndex)
		hhat1 = state.Aux.RawRow(HHatIndex)
		hhat2 = state.Aux.RawRow(HHatIndex + 1)
	)
	for i, xi := range x {
		eta := etaRight
		if xi < jumpLocation {
			eta = etaLeft
		}
		hhat2[i] = math.Max(0.0, eta[1]-bathy[i])
		hhat1[i] = math.Max(0.0, eta[0]-math.Max(eta[1], bathy[i]))
	}
}
