package InputParameters

import (
	"fmt"

	"github.com/ghodss/yaml"
)

// Parameters obtained from the YAML input file
type InputParameters struct {
	Title          string     `yaml:"Title"`
	SolverType     string     `yaml:"SolverType"`
	NumCells       int        `yaml:"NumCells"`
	EigenMethod    int        `yaml:"EigenMethod"`
	WaveFamily     int        `yaml:"WaveFamily"`
	DryState       bool       `yaml:"DryState"`
	Gravity        float64    `yaml:"Gravity"`
	Rho            [2]float64 `yaml:"Rho"`
	Manning        float64    `yaml:"Manning"`
	RhoAir         float64    `yaml:"RhoAir"`
	DryTolerance   float64    `yaml:"DryTolerance"`
	CFLDesired     float64    `yaml:"CFLDesired"`
	CFLMax         float64    `yaml:"CFLMax"`
	MaxSteps       int        `yaml:"MaxSteps"`
	FinalTime      float64    `yaml:"FinalTime"`
	NumOutputTimes int        `yaml:"NumOutputTimes"`
	OutDir         string     `yaml:"OutDir"`
	PlotDir        string     `yaml:"PlotDir"`
	HTMLPlots      bool       `yaml:"HTMLPlots"`
	LatexPlots     bool       `yaml:"LatexPlots"`
}

// Defaults returns the hardcoded display scenario
func Defaults() (ip *InputParameters) {
	ip = &InputParameters{
		Title:          "Two layer wave family perturbation",
		SolverType:     "classic",
		NumCells:       8000,
		EigenMethod:    2,
		WaveFamily:     5,
		DryState:       false,
		Gravity:        9.8,
		Rho:            [2]float64{0.95, 1.0},
		Manning:        0.0,
		RhoAir:         1.15e-3,
		DryTolerance:   1e-3,
		CFLDesired:     0.9,
		CFLMax:         1.0,
		MaxSteps:       5000,
		FinalTime:      100.0,
		NumOutputTimes: 100,
		OutDir:         "_output",
		PlotDir:        "_plots",
		HTMLPlots:      true,
		LatexPlots:     true,
	}
	return
}

func (ip *InputParameters) Parse(data []byte) error {
	return yaml.Unmarshal(data, ip)
}

func (ip *InputParameters) Print() {
	fmt.Printf("\"%s\"\t\t= Title\n", ip.Title)
	fmt.Printf("[%s]\t\t= Solver Type\n", ip.SolverType)
	fmt.Printf("%10d\t\t= NumCells\n", ip.NumCells)
	fmt.Printf("[%d]\t\t\t\t= Eigen Method\n", ip.EigenMethod)
	fmt.Printf("[%d]\t\t\t\t= Wave Family\n", ip.WaveFamily)
	fmt.Printf("%v\t\t\t= Dry State\n", ip.DryState)
	fmt.Printf("%8.5f\t\t= Gravity\n", ip.Gravity)
	fmt.Printf("%v\t= Rho\n", ip.Rho)
	fmt.Printf("%8.5f\t\t= CFLDesired\n", ip.CFLDesired)
	fmt.Printf("%8.5f\t\t= FinalTime\n", ip.FinalTime)
	fmt.Printf("%10d\t\t= NumOutputTimes\n", ip.NumOutputTimes)
}
