package figure

import (
	"image/color"
	"math"

	"go-hep.org/x/hep/hplot"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/hepstack/datamc/pkg/dataset"
	"github.com/hepstack/datamc/pkg/hist"
	"github.com/hepstack/datamc/pkg/layout"
)

// Font sizes relative to a pad's own height, the convention the layout
// engine's FontScale factor is built for.
const (
	relTitleSize = 0.045
	relLabelSize = 0.04

	// Legend text size and per-entry height, as canvas fractions.
	legendTextFraction  = 0.03
	legendEntryFraction = 0.04

	// Legend box in normalized canvas coordinates.
	legendLeft  = 0.86
	legendRight = 0.99
	legendTop   = 0.9
)

// Canvas is the composed in-memory figure: the main comparison plot, the
// optional residual plot, the legend, and the geometry that places them.
type Canvas struct {
	Layout layout.Result

	Main     *hplot.Plot
	Residual *hplot.Plot

	Legend     *plot.Legend
	LegendRect layout.Rect

	// Residuals carries the derived series behind the residual plot, nil
	// when no residual strip was requested.
	Residuals *dataset.ResidualSeries
}

// rescaleForResidual converts a font-size fraction expressed relative to
// the main region into the fraction to use on the residual region, so that
// the rendered size stays visually identical across the two pads.
func rescaleForResidual(rel float64, geo layout.Result) float64 {
	return rel * geo.FontScale()
}

// padFontSize turns a pad-relative size fraction into an absolute length
// for a region of the given canvas-fraction height.
func padFontSize(rel float64, region layout.Region, geo layout.Result) vg.Length {
	return vg.Length(rel * region.HeightFrac() * geo.CanvasHeight)
}

func compose(ds *dataset.Dataset, geo layout.Result, style Style, res *dataset.ResidualSeries) (*Canvas, error) {
	c := &Canvas{Layout: geo, Residuals: res}

	mainTitle, xTitle, yTitle := ds.TitleSegments()
	data := ds.Data()
	mcs := ds.MC()

	p := hplot.New()
	p.Title.Text = mainTitle
	p.X.Label.Text = xTitle
	p.Y.Label.Text = yTitle
	p.X.Min, p.X.Max = data.XMin(), data.XMax()

	// The visual stack grows bottom-up in slice order, so reversing the
	// load order puts the last-loaded component at the bottom. The legend
	// below lists components in original load order.
	stacked := make([]*hplot.H1D, 0, len(mcs))
	colors := make([]color.Color, len(mcs))
	for i := len(mcs) - 1; i >= 0; i-- {
		hh := hplot.NewH1D(mcs[i].HBook())
		colors[i] = plotutil.Color(i)
		hh.FillColor = colors[i]
		hh.LineStyle.Width = 0
		stacked = append(stacked, hh)
	}
	p.Add(hplot.NewHStack(stacked))

	dataStyle := draw.GlyphStyle{
		Color:  color.Black,
		Radius: vg.Points(4),
		Shape:  draw.CircleGlyph{},
	}
	pts := hplot.NewS2D(newHistPoints(data), hplot.WithYErrBars(true))
	pts.GlyphStyle = dataStyle
	p.Add(pts)

	total, err := hist.Sum("mc_total", "", mcs)
	if err != nil {
		return nil, err
	}
	p.Y.Min = 0
	p.Y.Max = style.HeadroomFactor * math.Max(maxContent(total), maxContent(data))

	mainSize := padFontSize(relLabelSize, geo.Main, geo)
	p.Title.TextStyle.Font.Size = padFontSize(relTitleSize, geo.Main, geo)
	p.X.Label.TextStyle.Font.Size = mainSize
	p.Y.Label.TextStyle.Font.Size = mainSize
	p.X.Tick.Label.Font.Size = mainSize
	p.Y.Tick.Label.Font.Size = mainSize

	if res != nil {
		// The residual strip repeats the x axis right below the main pad.
		p.X.Tick.Marker = unlabeledTicks{plot.DefaultTicks{}}
		p.X.Label.Text = ""

		rp, err := composeResiduals(res, xTitle, geo, style)
		if err != nil {
			return nil, err
		}
		rp.X.Min, rp.X.Max = p.X.Min, p.X.Max
		c.Residual = rp
	}
	c.Main = p

	entries := 1 + len(mcs)
	lg := plot.NewLegend()
	lg.TextStyle.Font.Size = vg.Length(legendTextFraction * geo.CanvasHeight)
	lg.Add(data.Title(), glyphThumb{sty: dataStyle})
	for i, mc := range mcs {
		lg.Add(mc.Title(), fillThumb{c: colors[i]})
	}
	c.Legend = &lg
	c.LegendRect = layout.Rect{
		X0: legendLeft,
		Y0: legendTop - legendEntryFraction*float64(entries),
		X1: legendRight,
		Y1: legendTop,
	}

	return c, nil
}

func composeResiduals(res *dataset.ResidualSeries, xTitle string, geo layout.Result, style Style) (*hplot.Plot, error) {
	rp := hplot.New()
	rp.X.Label.Text = xTitle
	rp.Y.Label.Text = dataset.ResidualYTitle

	pts := hplot.NewS2D(newHistPoints(res.Hist), hplot.WithYErrBars(true))
	pts.GlyphStyle = draw.GlyphStyle{
		Color:  color.Black,
		Radius: vg.Points(4),
		Shape:  draw.CircleGlyph{},
	}

	grid := plotter.NewGrid()
	grid.Vertical.Width = 0
	rp.Add(grid, pts)

	// Add grows the axis to cover the plotted points, so the display clamp
	// must come afterwards. Residuals outside the clamp stay in the data;
	// only the visible range is truncated.
	rp.Y.Min, rp.Y.Max = res.Min, res.Max

	rp.Y.Tick.Marker = dividedTicks{n: style.ResidualTicks}

	size := padFontSize(rescaleForResidual(relLabelSize, geo), *geo.Residual, geo)
	rp.X.Label.TextStyle.Font.Size = size
	rp.Y.Label.TextStyle.Font.Size = size
	rp.X.Tick.Label.Font.Size = size
	rp.Y.Tick.Label.Font.Size = size
	rp.X.Tick.Length = rp.X.Tick.Length * vg.Length(geo.ResidualTickScale())

	return rp, nil
}

func maxContent(h *hist.Histogram) float64 {
	max := math.Inf(-1)
	for i := 0; i < h.Len(); i++ {
		if c := h.Content(i); c > max {
			max = c
		}
	}
	return max
}
