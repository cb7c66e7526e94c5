package frametools

import (
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// Layer fill colors and line styles shared by all figures
var (
	TopColor    = color.NRGBA{R: 0x99, G: 0xCC, B: 0xFF, A: 0xFF}
	BottomColor = color.NRGBA{R: 0x33, G: 0x66, B: 0xCC, A: 0xFF}

	blackLine = draw.LineStyle{Color: color.Black, Width: vg.Points(1.5)}
	blueLine  = draw.LineStyle{Color: color.NRGBA{B: 0xFF, A: 0xFF}, Width: vg.Points(1.5)}
	bathyLine = draw.LineStyle{Color: color.Black, Width: vg.Points(1.5),
		Dashes: []vg.Length{vg.Points(6), vg.Points(3)}}
	markerLine = draw.LineStyle{Color: color.Black, Width: vg.Points(1),
		Dashes: []vg.Length{vg.Points(3), vg.Points(3)}}
)

// window fixes the axis limits of one panel
type window struct {
	x0, x1, y0, y1 float64
}

func newPanel(title, xlabel, ylabel string) (p *plot.Plot) {
	p = plot.New()
	p.Title.Text = title
	p.X.Label.Text = xlabel
	p.Y.Label.Text = ylabel
	return
}

// drawPanel fixes the window and renders the panel onto the canvas
func drawPanel(p *plot.Plot, dc draw.Canvas, w window) {
	p.X.Min, p.X.Max = w.x0, w.x1
	p.Y.Min, p.Y.Max = w.y0, w.y1
	p.Draw(dc)
}

// splitVertical returns the top and bottom halves of the canvas with a
// small gap between the panels
func splitVertical(dc draw.Canvas) (top, bottom draw.Canvas) {
	var (
		h   = dc.Max.Y - dc.Min.Y
		gap = vg.Points(8)
	)
	top = draw.Crop(dc, 0, 0, h/2+gap/2, 0)
	bottom = draw.Crop(dc, 0, 0, 0, -(h/2 + gap/2))
	return
}

func xys(x, y []float64) (pts plotter.XYs) {
	pts = make(plotter.XYs, len(x))
	for i := range x {
		pts[i].X, pts[i].Y = x[i], y[i]
	}
	return
}

// fillBetween shades the region between the lower and upper profiles
func fillBetween(p *plot.Plot, x, lower, upper []float64, col color.Color) {
	var (
		n   = len(x)
		pts = make(plotter.XYs, 2*n)
	)
	for i := range x {
		pts[i].X, pts[i].Y = x[i], lower[i]
		pts[2*n-1-i].X, pts[2*n-1-i].Y = x[i], upper[i]
	}
	poly, err := plotter.NewPolygon(pts)
	if err != nil {
		panic(err)
	}
	poly.Color = col
	poly.LineStyle.Color = color.Transparent
	poly.LineStyle.Width = 0
	p.Add(poly)
}

// addLine plots y(x) with the given style, optionally adding it to the
// panel legend
func addLine(p *plot.Plot, x, y []float64, style draw.LineStyle, legend string) {
	l, err := plotter.NewLine(xys(x, y))
	if err != nil {
		panic(err)
	}
	l.LineStyle = style
	p.Add(l)
	if legend != "" {
		p.Legend.Add(legend, l)
	}
}

// addVerticalMarker draws a dashed vertical line spanning the panel window
func addVerticalMarker(p *plot.Plot, x, y0, y1 float64) {
	l, err := plotter.NewLine(plotter.XYs{{X: x, Y: y0}, {X: x, Y: y1}})
	if err != nil {
		panic(err)
	}
	l.LineStyle = markerLine
	p.Add(l)
}
