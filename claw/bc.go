package claw

// BCType selects the ghost cell fill applied at a domain edge
type BCType int

const (
	BCCustom BCType = iota
	BCExtrap        // zero order extrapolation
	BCPeriodic
	BCWall // solid wall, reflects momentum components
)

var bcNames = []string{"custom", "extrap", "periodic", "wall"}

func (bc BCType) String() string {
	if int(bc) < len(bcNames) {
		return bcNames[bc]
	}
	return "unknown"
}

// fillBCs copies q into an extended array with ng ghost cells at each end and
// fills the ghost cells according to the boundary condition types. reflect
// lists the momentum component indices negated by a wall boundary.
func fillBCs(q [][]float64, mx, ng int, lower, upper BCType, reflect []int,
	customLower, customUpper func(qext [][]float64, ng int)) (qext [][]float64) {
	var (
		numEqn = len(q)
		mxext  = mx + 2*ng
	)
	qext = make([][]float64, numEqn)
	for m := 0; m < numEqn; m++ {
		qext[m] = make([]float64, mxext)
		copy(qext[m][ng:ng+mx], q[m])
	}
	isReflect := make(map[int]bool, len(reflect))
	for _, m := range reflect {
		isReflect[m] = true
	}
	switch lower {
	case BCExtrap:
		for m := 0; m < numEqn; m++ {
			for i := 0; i < ng; i++ {
				qext[m][i] = qext[m][ng]
			}
		}
	case BCPeriodic:
		for m := 0; m < numEqn; m++ {
			for i := 0; i < ng; i++ {
				qext[m][i] = qext[m][mx+i]
			}
		}
	case BCWall:
		for m := 0; m < numEqn; m++ {
			for i := 0; i < ng; i++ {
				qext[m][i] = qext[m][2*ng-1-i]
				if isReflect[m] {
					qext[m][i] = -qext[m][i]
				}
			}
		}
	case BCCustom:
		if customLower == nil {
			panic("custom lower boundary condition requested but no fill function set")
		}
		customLower(qext, ng)
	}
	switch upper {
	case BCExtrap:
		for m := 0; m < numEqn; m++ {
			for i := 0; i < ng; i++ {
				qext[m][ng+mx+i] = qext[m][ng+mx-1]
			}
		}
	case BCPeriodic:
		for m := 0; m < numEqn; m++ {
			for i := 0; i < ng; i++ {
				qext[m][ng+mx+i] = qext[m][ng+i]
			}
		}
	case BCWall:
		for m := 0; m < numEqn; m++ {
			for i := 0; i < ng; i++ {
				qext[m][ng+mx+i] = qext[m][ng+mx-1-i]
				if isReflect[m] {
					qext[m][ng+mx+i] = -qext[m][ng+mx+i]
				}
			}
		}
	case BCCustom:
		if customUpper == nil {
			panic("custom upper boundary condition requested but no fill function set")
		}
		customUpper(qext, ng)
	}
	return
}
