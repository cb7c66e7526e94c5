package claw

// Dimension describes one spatial coordinate of the computational domain,
// discretized into NumCells equal finite volume cells.
type Dimension struct {
	Name         string
	Lower, Upper float64
	NumCells     int
}

func NewDimension(lower, upper float64, numCells int) (d Dimension) {
	if numCells < 1 || upper <= lower {
		panic("malformed dimension: need upper > lower and at least one cell")
	}
	d = Dimension{
		Name:     "x",
		Lower:    lower,
		Upper:    upper,
		NumCells: numCells,
	}
	return
}

func (d Dimension) Delta() float64 {
	return (d.Upper - d.Lower) / float64(d.NumCells)
}

// Centers returns the cell center coordinates
func (d Dimension) Centers() (x []float64) {
	var (
		dx = d.Delta()
	)
	x = make([]float64, d.NumCells)
	for i := range x {
		x[i] = d.Lower + (float64(i)+0.5)*dx
	}
	return
}

// Edges returns the NumCells+1 cell edge coordinates
func (d Dimension) Edges() (x []float64) {
	var (
		dx = d.Delta()
	)
	x = make([]float64, d.NumCells+1)
	for i := range x {
		x[i] = d.Lower + float64(i)*dx
	}
	return
}

// Domain is the computational domain, one dimensional here
type Domain struct {
	Dim Dimension
}

func NewDomain(dim Dimension) Domain {
	return Domain{Dim: dim}
}

func (d Domain) NumCells() int { return d.Dim.NumCells }
func (d Domain) Delta() float64 {
	return d.Dim.Delta()
}
