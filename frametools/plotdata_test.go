package frametools

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/oceanwaves/mlclaw/claw"
	"github.com/oceanwaves/mlclaw/multilayer"
)

func TestFigureSelection(t *testing.T) {
	pd := NewPlotData("_output", "_plots")
	pd.NewFigure("Depths", 14, true)
	pd.NewFigure("Surfaces", 16, true)
	pd.NewFigure("Momenta", 134, false)

	figs := pd.activeFigures()
	assert.Equal(t, 2, len(figs))

	pd.PrintFignos = []int{16}
	figs = pd.activeFigures()
	assert.Equal(t, 1, len(figs))
	assert.Equal(t, "Surfaces", figs[0].Name)

	pd.PrintFramenos = []int{0, 5}
	assert.Equal(t, []int{0, 5}, pd.framenos())

	assert.Equal(t, "frame0005fig16.png", pd.imageName(5, 16))

	pd.ClearFigures()
	assert.Empty(t, pd.activeFigures())
}

// writeTestFrames runs the initial condition through the frame writer so the
// renderer has something real to load.
func writeTestFrames(t *testing.T, outdir string, nframes int) *multilayer.Params {
	t.Helper()
	var (
		p      = multilayer.NewParams()
		domain = claw.NewDomain(claw.NewDimension(-2000.0, 4000.0, 50))
		state  = claw.NewState(domain, multilayer.NumEqn, multilayer.NumAux)
	)
	multilayer.SetSlopedShelfBathymetry(state, 0.0, 2500.0, -3200.0, -200.0)
	multilayer.SetWaveFamilyInitCondition(state, p, 4, -100.0, 0.03, -1000.0, 500.0)
	sol := claw.NewSolution(state, domain)
	for frame := 0; frame < nframes; frame++ {
		sol.SetT(float64(frame) * 10.0)
		assert.NoError(t, claw.WriteFrame(sol, frame, outdir, frame == 0))
	}
	return p
}

func TestLoadFrame(t *testing.T) {
	outdir := t.TempDir()
	p := writeTestFrames(t, outdir, 2)

	fd, err := LoadFrame(1, outdir, p.Rho, p.DryTolerance)
	assert.NoError(t, err)
	assert.Equal(t, 1, fd.Frameno)
	assert.Equal(t, 10.0, fd.T)
	assert.Equal(t, 50, len(fd.X))
	// bathymetry comes from the frame 0 aux file
	assert.Equal(t, -3200.0, fd.Bathy[0])
	assert.Equal(t, -200.0, fd.Bathy[len(fd.Bathy)-1])

	assert.Equal(t, 2, CountFrames(outdir))
}

func TestPrintFramesRendersFigures(t *testing.T) {
	var (
		outdir  = t.TempDir()
		plotdir = t.TempDir()
		p       = writeTestFrames(t, outdir, 2)
		pd      = NewPlotData(outdir, plotdir)
	)
	pd.Rho = p.Rho
	pd.DryTolerance = p.DryTolerance
	SetPlot(pd, 4, p.Rho, p.DryTolerance)

	assert.NoError(t, pd.PrintFrames())
	for _, fig := range pd.activeFigures() {
		for frame := 0; frame < 2; frame++ {
			png := filepath.Join(plotdir, pd.imageName(frame, fig.FigNo))
			info, err := os.Stat(png)
			assert.NoError(t, err, png)
			if err == nil {
				assert.True(t, info.Size() > 0)
			}
		}
	}
	_, err := os.Stat(filepath.Join(plotdir, "_PlotIndex.html"))
	assert.NoError(t, err)
	_, err = os.Stat(filepath.Join(plotdir, "plots.tex"))
	assert.NoError(t, err)
}
