package frametools

import (
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg/draw"
)

// SetPlot registers the standard figure set for the two layer shelf runs:
// full frame depth/velocity panels, a semi-zoom, zooms on the top and
// internal surfaces, and a momentum figure hidden by default.
func SetPlot(pd *PlotData, waveFamily int, rho [2]float64, dryTolerance float64) *PlotData {
	pd.ClearFigures()
	pd.Rho = rho
	pd.DryTolerance = dryTolerance

	// Window settings
	var (
		full        = window{-2000.0, 4000.0, -3300.0, 100.0}
		semiZoom    = window{-2000.0, 3500.0, -120.0, 100.0}
		zoomIntern  = window{-100.0, 3500.0, -100.5, -97.5}
		zoomSurface = window{-100.0, 3500.0, -2.0, 5.0}
		velocities  = window{-2000.0, 4000.0, -0.8, 0.8}
		momenta     = window{-2000.0, 4000.0, -0.004, 0.004}
	)
	_ = waveFamily // the same figure set applies to every family

	depthVelocity := func(depthWindow window) func(fd *FrameData, dc draw.Canvas) {
		return func(fd *FrameData, dc draw.Canvas) {
			var (
				topC, botC = splitVertical(dc)
				bathy      = fd.Bathy
				eta1       = fd.Eta1()
				eta2       = fd.Eta2()
			)
			depth := newPanel(fmt.Sprintf("t = %3.2f", fd.T), "", "Depth (m)")
			fillBetween(depth, fd.X, bathy, eta2, BottomColor)
			fillBetween(depth, fd.X, eta2, eta1, TopColor)
			addLine(depth, fd.X, bathy, bathyLine, "")
			addLine(depth, fd.X, eta2, blackLine, "")
			addLine(depth, fd.X, eta1, blackLine, "")
			drawPanel(depth, topC, depthWindow)

			vel := newPanel("", "x (m)", "Velocities (m/s)")
			addLine(vel, fd.X, fd.U(1), blackLine, "Bottom Layer Velocity")
			addLine(vel, fd.X, fd.U(0), blueLine, "Top Layer Velocity")
			drawPanel(vel, botC, velocities)
		}
	}

	fig := pd.NewFigure("Depth and Velocity", 14, true)
	fig.Render = depthVelocity(full)

	fig = pd.NewFigure("Depth and Velocity - semi-zoom", 15, true)
	fig.Render = depthVelocity(semiZoom)

	fig = pd.NewFigure("Depth Zoomed", 16, true)
	fig.Render = func(fd *FrameData, dc draw.Canvas) {
		var (
			topC, botC = splitVertical(dc)
			bathy      = fd.Bathy
			eta1       = fd.Eta1()
			eta2       = fd.Eta2()
		)
		layers := func(p *plot.Plot, w window, withBathy bool) {
			fillBetween(p, fd.X, bathy, eta2, BottomColor)
			fillBetween(p, fd.X, eta2, eta1, TopColor)
			if withBathy {
				addLine(p, fd.X, bathy, bathyLine, "")
			}
			addLine(p, fd.X, eta2, blackLine, "")
			addLine(p, fd.X, eta1, blackLine, "")
			// Markers at the beginning and end of the shelf slope
			addVerticalMarker(p, 0.0, w.y0, w.y1)
			addVerticalMarker(p, 2500.0, w.y0, w.y1)
		}
		surface := newPanel(fmt.Sprintf("t = %3.2f", fd.T), "", "Depth (m)")
		layers(surface, zoomSurface, false)
		drawPanel(surface, topC, zoomSurface)

		internal := newPanel("", "x (m)", "Depth (m)")
		layers(internal, zoomIntern, true)
		drawPanel(internal, botC, zoomIntern)
	}

	fig = pd.NewFigure("Momentum", 134, false)
	fig.Render = func(fd *FrameData, dc draw.Canvas) {
		p := newPanel("Momentum", "x (m)", "Momentum")
		addLine(p, fd.X, fd.Momentum(0), blueLine, "Top Layer")
		addLine(p, fd.X, fd.Momentum(1), blackLine, "Bottom Layer")
		drawPanel(p, dc, momenta)
	}

	// Hardcopy controls
	pd.PrintFigs = true
	pd.PrintFormat = "png"
	pd.PrintFramenos = nil // all frames
	pd.PrintFignos = nil   // all figures
	pd.HTMLHomeLink = "../README.html"
	pd.LatexFigsPerLine = 2
	pd.LatexFramesPerLine = 1
	pd.LatexMakePDF = false
	return pd
}
