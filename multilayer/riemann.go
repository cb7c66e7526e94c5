package multilayer

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/mat"
)

// RiemannSolver computes the f-wave decomposition of the two layer shallow
// water flux difference across a cell interface, including the bathymetry
// and internal interface coupling terms. The eigenvalue method selects how
// the four characteristic speeds are approximated:
//
//	1 - linearized about the static linearized depths (h hat aux field)
//	2 - linearized about the local average depths and velocities
//	3 - method 2 with the velocity difference expansion of the internal speeds
//	4 - direct eigendecomposition of the averaged 4x4 Jacobian
//
// Dry layers fall back to the single layer decomposition of the wet layer.
type RiemannSolver struct {
	Params *Params
	// ComplexSpeeds counts interfaces where method 4 produced complex
	// eigenvalues (hyperbolicity loss); method 2 speeds are used there.
	ComplexSpeeds int
}

func NewRiemannSolver(params *Params) *RiemannSolver {
	return &RiemannSolver{Params: params}
}

func (rp *RiemannSolver) NumEqn() int   { return NumEqn }
func (rp *RiemannSolver) NumWaves() int { return NumEqn }

func (rp *RiemannSolver) Solve(qL, qR, auxL, auxR []float64) (waves [][]float64, speeds, amdq, apdq []float64, err error) {
	var (
		p    = rp.Params
		dry  = p.DryTolerance
		rho  = p.Rho
		hL   [2]float64
		hR   [2]float64
		uL   [2]float64
		uR   [2]float64
		hAvg [2]float64
	)
	waves = make([][]float64, NumEqn)
	for i := range waves {
		waves[i] = make([]float64, NumEqn)
	}
	speeds = make([]float64, NumEqn)
	amdq = make([]float64, NumEqn)
	apdq = make([]float64, NumEqn)

	for k := 0; k < NumLayers; k++ {
		hL[k] = qL[2*k] / rho[k]
		hR[k] = qR[2*k] / rho[k]
		if hL[k] > dry {
			uL[k] = qL[2*k+1] / qL[2*k]
		} else {
			hL[k], uL[k] = math.Max(hL[k], 0), 0
		}
		if hR[k] > dry {
			uR[k] = qR[2*k+1] / qR[2*k]
		} else {
			hR[k], uR[k] = math.Max(hR[k], 0), 0
		}
		hAvg[k] = 0.5 * (hL[k] + hR[k])
	}
	bL, bR := auxL[BathyIndex], auxR[BathyIndex]

	wet1 := hAvg[0] > dry
	wet2 := hAvg[1] > dry
	switch {
	case !wet1 && !wet2:
		return
	case wet1 && !wet2:
		rp.singleLayer(0, hL[0], hR[0], uL[0], uR[0], bL, bR, waves, speeds)
	case !wet1 && wet2:
		rp.singleLayer(1, hL[1], hR[1], uL[1], uR[1], bL, bR, waves, speeds)
	default:
		if err = rp.twoLayer(hL, hR, uL, uR, hAvg, bL, bR, auxL, auxR, waves, speeds); err != nil {
			return
		}
	}

	// Fluctuations from the f-waves by speed sign
	for pw := 0; pw < NumEqn; pw++ {
		s := speeds[pw]
		switch {
		case s < 0:
			for m := 0; m < NumEqn; m++ {
				amdq[m] += waves[pw][m]
			}
		case s > 0:
			for m := 0; m < NumEqn; m++ {
				apdq[m] += waves[pw][m]
			}
		default:
			for m := 0; m < NumEqn; m++ {
				amdq[m] += 0.5 * waves[pw][m]
				apdq[m] += 0.5 * waves[pw][m]
			}
		}
	}
	return
}

// singleLayer performs the two wave f-wave decomposition for one wet layer,
// writing into the outermost wave slots. layer is 0 (top) or 1 (bottom).
func (rp *RiemannSolver) singleLayer(layer int, hl, hr, ul, ur, bl, br float64, waves [][]float64, speeds []float64) {
	var (
		p    = rp.Params
		g    = p.Gravity
		rho  = p.Rho[layer]
		o    = 2 * layer
		hbar = 0.5 * (hl + hr)
	)
	if hbar <= p.DryTolerance {
		return
	}
	srl, srr := math.Sqrt(hl), math.Sqrt(hr)
	uhat := ul
	if srl+srr > 0 {
		uhat = (srl*ul + srr*ur) / (srl + srr)
	}
	chat := math.Sqrt(g * hbar)
	s1, s2 := uhat-chat, uhat+chat

	fl1, fr1 := rho*hl*ul, rho*hr*ur
	fl2 := rho * (hl*ul*ul + 0.5*g*hl*hl)
	fr2 := rho * (hr*ur*ur + 0.5*g*hr*hr)
	delta1 := fr1 - fl1
	delta2 := fr2 - fl2 + g*rho*hbar*(br-bl)

	beta1 := (s2*delta1 - delta2) / (s2 - s1)
	beta2 := (delta2 - s1*delta1) / (s2 - s1)

	speeds[0], speeds[NumEqn-1] = s1, s2
	waves[0][o], waves[0][o+1] = beta1, beta1*s1
	waves[NumEqn-1][o], waves[NumEqn-1][o+1] = beta2, beta2*s2
}

// twoLayer performs the full four wave decomposition
func (rp *RiemannSolver) twoLayer(hL, hR, uL, uR, hAvg [2]float64, bL, bR float64,
	auxL, auxR []float64, waves [][]float64, speeds []float64) (err error) {
	var (
		p   = rp.Params
		g   = p.Gravity
		r   = p.R()
		omr = p.OneMinusR()
		rho = p.Rho
		u   [2]float64
	)
	// Depth weighted Roe averages of the layer velocities
	for k := 0; k < NumLayers; k++ {
		srl, srr := math.Sqrt(hL[k]), math.Sqrt(hR[k])
		if srl+srr > 0 {
			u[k] = (srl*uL[k] + srr*uR[k]) / (srl + srr)
		}
	}
	h1, h2 := hAvg[0], hAvg[1]
	htot := h1 + h2

	var s [4]float64
	switch p.EigenMethod {
	case 1:
		hh1 := 0.5 * (auxL[HHatIndex] + auxR[HHatIndex])
		hh2 := 0.5 * (auxL[HHatIndex+1] + auxR[HHatIndex+1])
		ext := math.Sqrt(g * (hh1 + hh2))
		internal := math.Sqrt(g * omr * hh1 * hh2 / (hh1 + hh2))
		s = [4]float64{-ext, -internal, internal, ext}
	case 3:
		s = linearizedSpeeds(g, omr, h1, h2, u)
		du := u[0] - u[1]
		arg := 1.0 - du*du/(g*omr*htot)
		if arg < 0 {
			arg = 0
		}
		internal := math.Sqrt(g * omr * h1 * h2 / htot * arg)
		uInt := (h1*u[1] + h2*u[0]) / htot
		s[1], s[2] = uInt-internal, uInt+internal
	case 4:
		var ok bool
		if s, ok = jacobianSpeeds(g, r, h1, h2, u); !ok {
			rp.ComplexSpeeds++
			s = linearizedSpeeds(g, omr, h1, h2, u)
		}
	default: // method 2
		s = linearizedSpeeds(g, omr, h1, h2, u)
	}

	// Eigenvectors in conserved variables: depth units scaled by layer
	// density, alpha couples the layers
	R := mat.NewDense(4, 4, nil)
	for j := 0; j < 4; j++ {
		ds := s[j] - u[0]
		alpha := (ds*ds - g*h1) / (g * h1)
		R.Set(0, j, rho[0])
		R.Set(1, j, rho[0]*s[j])
		R.Set(2, j, rho[1]*alpha)
		R.Set(3, j, rho[1]*alpha*s[j])
	}

	// Flux difference with bathymetry and interface coupling source terms
	flux := func(h, uu [2]float64) (f [4]float64) {
		f[0] = rho[0] * h[0] * uu[0]
		f[1] = rho[0] * (h[0]*uu[0]*uu[0] + 0.5*g*h[0]*h[0])
		f[2] = rho[1] * h[1] * uu[1]
		f[3] = rho[1] * (h[1]*uu[1]*uu[1] + 0.5*g*h[1]*h[1])
		return
	}
	fL := flux(hL, uL)
	fR := flux(hR, uR)
	var delta [4]float64
	for m := 0; m < 4; m++ {
		delta[m] = fR[m] - fL[m]
	}
	delta[1] += g * rho[0] * h1 * ((hR[1] - hL[1]) + (bR - bL))
	delta[3] += g * rho[1] * h2 * (r*(hR[0]-hL[0]) + (bR - bL))

	var beta mat.VecDense
	if err = beta.SolveVec(R, mat.NewVecDense(4, delta[:])); err != nil {
		return fmt.Errorf("eigenvector projection failed (speeds %v): %w", s, err)
	}
	for j := 0; j < 4; j++ {
		speeds[j] = s[j]
		for m := 0; m < 4; m++ {
			waves[j][m] = beta.AtVec(j) * R.At(m, j)
		}
	}
	return
}

// linearizedSpeeds returns the method 2 approximation: external speeds from
// the depth averaged velocity, internal speeds from the exchange average.
func linearizedSpeeds(g, oneMinusR, h1, h2 float64, u [2]float64) (s [4]float64) {
	var (
		htot     = h1 + h2
		uExt     = (h1*u[0] + h2*u[1]) / htot
		uInt     = (h1*u[1] + h2*u[0]) / htot
		external = math.Sqrt(g * htot)
		internal = math.Sqrt(g * oneMinusR * h1 * h2 / htot)
	)
	s = [4]float64{uExt - external, uInt - internal, uInt + internal, uExt + external}
	return
}

// jacobianSpeeds computes the four eigenvalues of the averaged two layer
// Jacobian directly. ok is false when the system has lost hyperbolicity
// (complex eigenvalues).
func jacobianSpeeds(g, r, h1, h2 float64, u [2]float64) (s [4]float64, ok bool) {
	A := mat.NewDense(4, 4, []float64{
		0, 1, 0, 0,
		g*h1 - u[0]*u[0], 2 * u[0], g * h1, 0,
		0, 0, 0, 1,
		g * r * h2, 0, g*h2 - u[1]*u[1], 2 * u[1],
	})
	var eig mat.Eigen
	if !eig.Factorize(A, mat.EigenNone) {
		return s, false
	}
	vals := eig.Values(nil)
	out := make([]float64, 0, 4)
	for _, v := range vals {
		if math.Abs(imag(v)) > 1e-8*math.Max(1, math.Abs(real(v))) {
			return s, false
		}
		out = append(out, real(v))
	}
	sort.Float64s(out)
	copy(s[:], out)
	return s, true
}
