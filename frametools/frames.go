// Package frametools post-processes saved solution frames into layered
// figures: per-layer depths, velocities and surface elevations rendered at
// several zoom levels, with HTML and LaTeX index generation.
package frametools

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/oceanwaves/mlclaw/claw"
	"github.com/oceanwaves/mlclaw/multilayer"
)

// FrameData carries one loaded frame plus the static bathymetry and the
// parameters needed to derive per-layer fields
type FrameData struct {
	Frameno int
	T       float64
	X       []float64
	Q       [][]float64 // per equation, one slice across cells
	Bathy   []float64

	Rho          [2]float64
	DryTolerance float64
}

// LoadFrame reads frame from outdir. Bathymetry is taken from the frame 0
// aux file, which is always written with the initial condition.
func LoadFrame(frame int, outdir string, rho [2]float64, dryTolerance float64) (fd *FrameData, err error) {
	sol, err := claw.ReadFrame(frame, outdir, false)
	if err != nil {
		return
	}
	sol0, err := claw.ReadFrame(0, outdir, true)
	if err != nil {
		return nil, fmt.Errorf("bathymetry frame: %w", err)
	}
	var (
		mx = sol.Domain.NumCells()
	)
	fd = &FrameData{
		Frameno:      frame,
		T:            sol.T,
		X:            sol.Domain.Dim.Centers(),
		Q:            make([][]float64, sol.State.NumEqn),
		Bathy:        make([]float64, mx),
		Rho:          rho,
		DryTolerance: dryTolerance,
	}
	for m := 0; m < sol.State.NumEqn; m++ {
		fd.Q[m] = make([]float64, mx)
		copy(fd.Q[m], sol.State.Q.RawRow(m))
	}
	copy(fd.Bathy, sol0.State.Aux.RawRow(multilayer.BathyIndex))
	return
}

// H returns the depth of layer k (0 = top), mass divided by layer density
func (fd *FrameData) H(k int) (h []float64) {
	h = make([]float64, len(fd.X))
	for i := range h {
		h[i] = fd.Q[2*k][i] / fd.Rho[k]
	}
	return
}

// U returns the velocity of layer k: momentum over mass where the layer
// depth exceeds the dry tolerance, zero otherwise
func (fd *FrameData) U(k int) (u []float64) {
	var (
		h = fd.H(k)
	)
	u = make([]float64, len(fd.X))
	for i := range u {
		if h[i] > fd.DryTolerance {
			u[i] = fd.Q[2*k+1][i] / fd.Q[2*k][i]
		}
	}
	return
}

// Eta2 is the internal interface elevation, bathymetry plus bottom depth
func (fd *FrameData) Eta2() (eta []float64) {
	var (
		h2 = fd.H(1)
	)
	eta = make([]float64, len(fd.X))
	for i := range eta {
		eta[i] = fd.Bathy[i] + h2[i]
	}
	return
}

// Eta1 is the free surface elevation, stacked on the internal interface
func (fd *FrameData) Eta1() (eta []float64) {
	var (
		h1 = fd.H(0)
	)
	eta = fd.Eta2()
	for i := range eta {
		eta[i] += h1[i]
	}
	return
}

// Momentum returns the conserved momentum component of layer k
func (fd *FrameData) Momentum(k int) []float64 {
	return fd.Q[2*k+1]
}

// CountFrames scans outdir for consecutive frame files starting at 0
func CountFrames(outdir string) (n int) {
	for {
		if _, err := os.Stat(filepath.Join(outdir, fmt.Sprintf("fort.q%04d", n))); err != nil {
			return
		}
		n++
	}
}
