package frametools

import (
	"fmt"
	"os"
	"path/filepath"

	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

// Figure is one named multi-panel rendering of a frame
type Figure struct {
	Name   string
	FigNo  int
	Show   bool
	Render func(fd *FrameData, dc draw.Canvas)
}

// PlotData controls which frames and figures are rendered and which index
// documents are produced. It mirrors the hardcopy flags of the classic
// plotting tools.
type PlotData struct {
	OutDir  string
	PlotDir string

	PrintFigs     bool
	PrintFormat   string
	PrintFramenos []int // nil means all frames
	PrintFignos   []int // nil means all figures

	HTML         bool
	HTMLHomeLink string

	Latex              bool
	LatexFigsPerLine   int
	LatexFramesPerLine int
	LatexMakePDF       bool

	Figures []*Figure

	Rho          [2]float64
	DryTolerance float64
}

func NewPlotData(outdir, plotdir string) (pd *PlotData) {
	pd = &PlotData{
		OutDir:             outdir,
		PlotDir:            plotdir,
		PrintFigs:          true,
		PrintFormat:        "png",
		HTML:               true,
		HTMLHomeLink:       "../README.html",
		Latex:              true,
		LatexFigsPerLine:   2,
		LatexFramesPerLine: 1,
	}
	return
}

// ClearFigures drops any registered figure definitions
func (pd *PlotData) ClearFigures() {
	pd.Figures = nil
}

func (pd *PlotData) NewFigure(name string, figno int, show bool) (fig *Figure) {
	fig = &Figure{Name: name, FigNo: figno, Show: show}
	pd.Figures = append(pd.Figures, fig)
	return
}

func (pd *PlotData) framenos() (frames []int) {
	if pd.PrintFramenos != nil {
		return pd.PrintFramenos
	}
	n := CountFrames(pd.OutDir)
	frames = make([]int, n)
	for i := range frames {
		frames[i] = i
	}
	return
}

func (pd *PlotData) activeFigures() (figs []*Figure) {
	want := map[int]bool{}
	for _, no := range pd.PrintFignos {
		want[no] = true
	}
	for _, fig := range pd.Figures {
		if !fig.Show {
			continue
		}
		if pd.PrintFignos != nil && !want[fig.FigNo] {
			continue
		}
		figs = append(figs, fig)
	}
	return
}

func (pd *PlotData) imageName(frame, figno int) string {
	return fmt.Sprintf("frame%04dfig%d.%s", frame, figno, pd.PrintFormat)
}

// PrintFrames renders every selected frame/figure pair to the plot
// directory, then writes the HTML and LaTeX indices when enabled.
func (pd *PlotData) PrintFrames() (err error) {
	if !pd.PrintFigs {
		return
	}
	if pd.PrintFormat != "png" {
		return fmt.Errorf("print format %q is not implemented", pd.PrintFormat)
	}
	if err = os.MkdirAll(pd.PlotDir, 0755); err != nil {
		return
	}
	frames := pd.framenos()
	figs := pd.activeFigures()
	fmt.Printf("Rendering %d frames x %d figures to %s\n", len(frames), len(figs), pd.PlotDir)
	for _, frame := range frames {
		var fd *FrameData
		if fd, err = LoadFrame(frame, pd.OutDir, pd.Rho, pd.DryTolerance); err != nil {
			return fmt.Errorf("frame %d: %w", frame, err)
		}
		for _, fig := range figs {
			if err = pd.printFigure(fd, fig); err != nil {
				return fmt.Errorf("frame %d figure %d: %w", frame, fig.FigNo, err)
			}
		}
	}
	if pd.HTML {
		if err = pd.writeHTML(frames, figs); err != nil {
			return fmt.Errorf("html index: %w", err)
		}
	}
	if pd.Latex {
		if err = pd.writeLatex(frames, figs); err != nil {
			return fmt.Errorf("latex index: %w", err)
		}
	}
	return
}

func (pd *PlotData) printFigure(fd *FrameData, fig *Figure) (err error) {
	var (
		c  = vgimg.NewWith(vgimg.UseWH(8*vg.Inch, 10*vg.Inch), vgimg.UseDPI(100))
		dc = draw.New(c)
	)
	fig.Render(fd, dc)
	f, err := os.Create(filepath.Join(pd.PlotDir, pd.imageName(fd.Frameno, fig.FigNo)))
	if err != nil {
		return
	}
	defer f.Close()
	png := vgimg.PngCanvas{Canvas: c}
	_, err = png.WriteTo(f)
	return
}
