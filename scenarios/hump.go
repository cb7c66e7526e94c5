// Package scenarios assembles complete simulation runs: domain, physics
// parameters, initial condition, solver and controller, then blocks on the
// run and triggers frame rendering.
package scenarios

import (
	"errors"
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/notargets/avs/chart2d"
	avsutils "github.com/notargets/avs/utils"

	"github.com/oceanwaves/mlclaw/claw"
	"github.com/oceanwaves/mlclaw/frametools"
	"github.com/oceanwaves/mlclaw/multilayer"
)

// ErrSolverNotImplemented signals a request for any solver type other than
// the classic finite volume scheme
var ErrSolverNotImplemented = errors.New("classic is currently the only supported solver type")

// Domain and bathymetry of the sloped shelf scenario
const (
	XLower       = -2000.0
	XUpper       = 4000.0
	ShelfToe     = 0.0
	ShelfTop     = 2500.0
	BasinDepth   = -3200.0
	ShelfDepth   = -200.0
	EtaSurface   = 0.0
	EtaInternal  = -100.0
	EtaInternalD = -300.0 // dry variant: interface below the shelf crest

	PerturbAmplitude = 0.03
	PerturbCenter    = -1000.0
	PerturbWidth     = 500.0
)

// Config selects the numerical variant of the hump run. The physics and
// solver tolerance fields override the standard values so a parameter file
// can change them.
type Config struct {
	NumCells       int
	EigenMethod    int
	WaveFamily     int
	DryState       bool
	SolverType     string
	TFinal         float64
	NumOutputTimes int
	OutDir         string
	PlotDir        string
	HTMLPlots      bool
	LatexPlots     bool

	Gravity      float64
	Rho          [2]float64
	Manning      float64
	RhoAir       float64
	DryTolerance float64
	CFLDesired   float64
	CFLMax       float64
	MaxSteps     int
}

func DefaultConfig() Config {
	p := multilayer.NewParams()
	return Config{
		NumCells:       8000,
		EigenMethod:    2,
		WaveFamily:     5,
		DryState:       false,
		SolverType:     "classic",
		TFinal:         100.0,
		NumOutputTimes: 100,
		OutDir:         "_output",
		PlotDir:        "_plots",
		HTMLPlots:      true,
		LatexPlots:     true,

		Gravity:      p.Gravity,
		Rho:          p.Rho,
		Manning:      p.Manning,
		RhoAir:       p.RhoAir,
		DryTolerance: p.DryTolerance,
		CFLDesired:   0.9,
		CFLMax:       1.0,
		MaxSteps:     5000,
	}
}

// Hump is the wave family perturbation run over the sloped shelf
type Hump struct {
	Config     Config
	Params     *multilayer.Params
	Solver     *claw.Solver
	Controller *claw.Controller

	plotOnce sync.Once
	chart    *chart2d.Chart2D
	colorMap *avsutils.ColorMap
	delay    time.Duration
}

// NewHump builds a fully configured run. Only the classic solver type is
// implemented; any other request fails before further setup.
func NewHump(cfg Config) (h *Hump, err error) {
	if cfg.SolverType != "classic" {
		return nil, fmt.Errorf("solver type %q: %w", cfg.SolverType, ErrSolverNotImplemented)
	}
	params := multilayer.NewParams()
	params.EigenMethod = cfg.EigenMethod
	if cfg.Gravity > 0 {
		params.Gravity = cfg.Gravity
	}
	if cfg.Rho[0] > 0 && cfg.Rho[1] > 0 {
		params.Rho = cfg.Rho
	}
	params.Manning = cfg.Manning
	if cfg.RhoAir > 0 {
		params.RhoAir = cfg.RhoAir
	}
	if cfg.DryTolerance > 0 {
		params.DryTolerance = cfg.DryTolerance
	}

	solver := claw.NewSolver(multilayer.NewRiemannSolver(params))
	if cfg.CFLDesired > 0 {
		solver.CFLDesired = cfg.CFLDesired
	}
	if cfg.CFLMax > 0 {
		solver.CFLMax = cfg.CFLMax
	}
	if cfg.MaxSteps > 0 {
		solver.MaxSteps = cfg.MaxSteps
	}
	solver.Limiter = claw.LimiterVanLeer
	solver.BCLower, solver.BCUpper = claw.BCExtrap, claw.BCExtrap
	solver.AuxBCLower, solver.AuxBCUpper = claw.BCExtrap, claw.BCExtrap
	solver.ReflectIndices = []int{1, 3}
	solver.BeforeStep = multilayer.BeforeStep(params, multilayer.SetNoWind)
	solver.StepSource = multilayer.FrictionSource(params)

	dim := claw.NewDimension(XLower, XUpper, cfg.NumCells)
	domain := claw.NewDomain(dim)
	state := claw.NewState(domain, multilayer.NumEqn, multilayer.NumAux)
	state.ProblemData = params

	multilayer.SetSlopedShelfBathymetry(state, ShelfToe, ShelfTop, BasinDepth, ShelfDepth)
	multilayer.SetNoWind(state)
	etaInternal := EtaInternal
	if cfg.DryState {
		etaInternal = EtaInternalD
	}
	eta := [2]float64{EtaSurface, etaInternal}
	multilayer.SetHHat(state, ShelfToe, eta, eta)
	multilayer.SetWaveFamilyInitCondition(state, params, cfg.WaveFamily,
		etaInternal, PerturbAmplitude, PerturbCenter, PerturbWidth)

	// First step sized from the fastest external wave over the basin
	solver.DtInitial = solver.CFLDesired * domain.Delta() / math.Sqrt(params.Gravity*(-BasinDepth))

	controller := claw.NewController()
	controller.Solution = claw.NewSolution(state, domain)
	controller.Solver = solver
	controller.TFinal = cfg.TFinal
	controller.NumOutputTimes = cfg.NumOutputTimes
	controller.OutDir = cfg.OutDir
	controller.WriteAux = true
	controller.WriteAuxInit = true

	h = &Hump{
		Config:     cfg,
		Params:     params,
		Solver:     solver,
		Controller: controller,
	}
	return
}

// Run executes the simulation to completion and renders the saved frames.
// With graph set, layer surfaces stream to a live chart as frames complete.
func (h *Hump) Run(graph bool, graphDelay ...time.Duration) (err error) {
	var (
		cfg = h.Config
	)
	wetness := "wet"
	if cfg.DryState {
		wetness = "dry"
	}
	fmt.Printf("Two Layer Shallow Water Equations in 1 Dimension\n")
	fmt.Printf("Running family=%d state=%s eigen=%d resolution=%d\n",
		cfg.WaveFamily, wetness, cfg.EigenMethod, cfg.NumCells)
	fmt.Printf("CFL = %8.4f, Num Cells = %d, TFinal = %8.2f\n\n",
		h.Solver.CFLDesired, cfg.NumCells, cfg.TFinal)

	if graph {
		if len(graphDelay) != 0 {
			h.delay = graphDelay[0]
		}
		h.Controller.AfterFrame = h.plotFrame
	}
	if _, err = h.Controller.Run(); err != nil {
		return
	}

	pd := frametools.NewPlotData(cfg.OutDir, cfg.PlotDir)
	pd.HTML = cfg.HTMLPlots
	pd.Latex = cfg.LatexPlots
	frametools.SetPlot(pd, cfg.WaveFamily, h.Params.Rho, h.Params.DryTolerance)
	return pd.PrintFrames()
}

// plotFrame streams the layer surfaces and bathymetry to the live chart
func (h *Hump) plotFrame(sol *claw.Solution, frame int) {
	var (
		state      = sol.State
		x          = state.Centers()
		fmin, fmax = float32(BasinDepth - 100), float32(100)
	)
	h.plotOnce.Do(func() {
		h.chart = chart2d.NewChart2D(1920, 1280, float32(XLower), float32(XUpper), fmin, fmax)
		h.colorMap = avsutils.NewColorMap(-1, 1, 1)
		go h.chart.Plot()
	})
	var (
		mx    = state.Domain.NumCells()
		bathy = state.Aux.RawRow(multilayer.BathyIndex)
		eta2  = make([]float64, mx)
		eta1  = make([]float64, mx)
	)
	for i := 0; i < mx; i++ {
		eta2[i] = bathy[i] + state.Q.At(2, i)/h.Params.Rho[1]
		eta1[i] = eta2[i] + state.Q.At(0, i)/h.Params.Rho[0]
	}
	pSeries := func(name string, field []float64, color float32) {
		if err := h.chart.AddSeries(name, x, field,
			chart2d.NoGlyph, chart2d.Solid, h.colorMap.GetRGB(color)); err != nil {
			panic("unable to add graph series")
		}
	}
	pSeries("Bathy", bathy, -0.7)
	pSeries("Eta2", eta2, 0.0)
	pSeries("Eta1", eta1, 0.7)
	if h.delay != 0 {
		time.Sleep(h.delay)
	}
}
