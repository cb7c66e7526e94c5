package frametools

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
)

// writeLatex produces plots.tex, a document including every rendered image
// laid out LatexFigsPerLine figures across and LatexFramesPerLine frames
// per row group. pdflatex is never invoked here (LatexMakePDF stays a flag
// for the caller).
func (pd *PlotData) writeLatex(frames []int, figs []*Figure) (err error) {
	f, err := os.Create(filepath.Join(pd.PlotDir, "plots.tex"))
	if err != nil {
		return
	}
	defer f.Close()
	w := bufio.NewWriter(f)

	figsPerLine := pd.LatexFigsPerLine
	if figsPerLine < 1 {
		figsPerLine = 1
	}
	width := 0.95 / float64(figsPerLine)

	fmt.Fprintln(w, `\documentclass[11pt]{article}`)
	fmt.Fprintln(w, `\usepackage{graphicx}`)
	fmt.Fprintln(w, `\setlength{\textwidth}{7.5in}`)
	fmt.Fprintln(w, `\setlength{\oddsidemargin}{-0.5in}`)
	fmt.Fprintln(w, `\begin{document}`)
	for _, frame := range frames {
		fmt.Fprintf(w, "\n%% Frame %d\n", frame)
		fmt.Fprintln(w, `\begin{figure}[ht]`)
		for i, fig := range figs {
			fmt.Fprintf(w, `\includegraphics[width=%.3f\textwidth]{%s}`+"\n",
				width, pd.imageName(frame, fig.FigNo))
			if (i+1)%figsPerLine == 0 {
				fmt.Fprintln(w, `\newline`)
			}
		}
		fmt.Fprintf(w, `\caption{Frame %d}`+"\n", frame)
		fmt.Fprintln(w, `\end{figure}`)
		fmt.Fprintln(w, `\clearpage`)
	}
	fmt.Fprintln(w, `\end{document}`)
	return w.Flush()
}
