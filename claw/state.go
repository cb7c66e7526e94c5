package claw

import (
	"github.com/oceanwaves/mlclaw/utils"
)

// State holds the conserved quantities Q (numEqn x numCells) and the
// auxiliary fields Aux (numAux x numCells) on a Domain. ProblemData carries
// scenario parameters opaque to this layer; it must not change once a
// Controller run has started.
type State struct {
	Domain      Domain
	Q           utils.Matrix
	Aux         utils.Matrix
	NumEqn      int
	NumAux      int
	T           float64
	ProblemData interface{}
}

func NewState(domain Domain, numEqn, numAux int) (s *State) {
	s = &State{
		Domain: domain,
		NumEqn: numEqn,
		NumAux: numAux,
		Q:      utils.NewMatrix(numEqn, domain.NumCells()),
	}
	if numAux > 0 {
		s.Aux = utils.NewMatrix(numAux, domain.NumCells())
	}
	return
}

// Centers is shorthand for the cell center coordinates of the domain
func (s *State) Centers() []float64 { return s.Domain.Dim.Centers() }

// Solution pairs a State with its Domain at a simulation time
type Solution struct {
	State  *State
	Domain Domain
	T      float64
}

func NewSolution(state *State, domain Domain) (sol *Solution) {
	sol = &Solution{
		State:  state,
		Domain: domain,
	}
	return
}

// SetT keeps the solution and state times in sync
func (sol *Solution) SetT(t float64) {
	sol.T = t
	sol.State.T = t
}
