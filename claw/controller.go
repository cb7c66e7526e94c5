package claw

import (
	"fmt"
)

// Controller owns the outer run loop: it advances the solution between
// evenly spaced output times and persists one frame per output time. Run
// blocks until TFinal is reached or the solver reports an error.
type Controller struct {
	Solution *Solution
	Solver   *Solver

	OutputStyle    int
	TFinal         float64
	NumOutputTimes int
	OutDir         string
	OutputFormat   string
	WriteAux       bool
	WriteAuxInit   bool
	Verbose        bool

	// AfterFrame, when set, runs after each frame is written (live charting)
	AfterFrame func(sol *Solution, frame int)
}

func NewController() (c *Controller) {
	c = &Controller{
		OutputStyle:    1,
		NumOutputTimes: 10,
		OutDir:         "_output",
		OutputFormat:   "ascii",
		Verbose:        true,
	}
	return
}

// OutputTimes returns the frame output times after the initial frame
func (c *Controller) OutputTimes() (times []float64) {
	if c.OutputStyle != 1 {
		panic(fmt.Errorf("output style %d is not implemented", c.OutputStyle))
	}
	times = make([]float64, c.NumOutputTimes)
	dt := (c.TFinal - c.Solution.T) / float64(c.NumOutputTimes)
	for i := range times {
		times[i] = c.Solution.T + float64(i+1)*dt
	}
	return
}

// Run executes the simulation to TFinal, writing frame 0 first and one
// frame per output time. Returns the final state.
func (c *Controller) Run() (state *State, err error) {
	var (
		sol    = c.Solution
		solver = c.Solver
	)
	if sol == nil || solver == nil {
		return nil, fmt.Errorf("controller requires both a solution and a solver before Run")
	}
	if err = WriteFrame(sol, 0, c.OutDir, c.WriteAuxInit); err != nil {
		return nil, fmt.Errorf("unable to write initial frame: %w", err)
	}
	if c.AfterFrame != nil {
		c.AfterFrame(sol, 0)
	}
	for frame, tend := range c.OutputTimes() {
		if err = solver.EvolveToTime(sol, tend); err != nil {
			return nil, err
		}
		if err = WriteFrame(sol, frame+1, c.OutDir, c.WriteAux); err != nil {
			return nil, fmt.Errorf("unable to write frame %d: %w", frame+1, err)
		}
		if c.Verbose {
			fmt.Printf("Frame %4d written at t = %10.4f, steps = %5d, dt = %10.4e, cfl = %6.3f\n",
				frame+1, sol.T, solver.NumSteps, solver.DtLast, solver.CFLLast)
		}
		if c.AfterFrame != nil {
			c.AfterFrame(sol, frame+1)
		}
	}
	state = sol.State
	return
}
