package figure

import (
	"image/color"
	"math"
	"strconv"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/hepstack/datamc/pkg/hist"
)

// histPoints adapts a histogram to a scatter with y error bars: one point
// per bin, at the bin center. Bins with NaN content are skipped entirely,
// which leaves zero-simulation residual bins blank in the rendered figure.
type histPoints struct {
	xs, ys, errs []float64
}

func newHistPoints(h *hist.Histogram) histPoints {
	var p histPoints
	for i := 0; i < h.Len(); i++ {
		c := h.Content(i)
		if math.IsNaN(c) {
			continue
		}
		p.xs = append(p.xs, h.XMid(i))
		p.ys = append(p.ys, c)
		p.errs = append(p.errs, h.Error(i))
	}
	return p
}

func (p histPoints) Len() int { return len(p.xs) }

func (p histPoints) XY(i int) (float64, float64) { return p.xs[i], p.ys[i] }

// YError implements plotter.YErrorer with symmetric errors.
func (p histPoints) YError(i int) (float64, float64) { return p.errs[i], p.errs[i] }

// unlabeledTicks keeps the tick marks of the wrapped ticker but blanks the
// labels. Used on the main x axis when the residual strip repeats the axis
// below it.
type unlabeledTicks struct {
	plot.Ticker
}

func (t unlabeledTicks) Ticks(min, max float64) []plot.Tick {
	ticks := t.Ticker.Ticks(min, max)
	for i := range ticks {
		ticks[i].Label = ""
	}
	return ticks
}

// dividedTicks places a fixed number of evenly spaced major divisions over
// the axis range, mirroring a fixed-division residual axis.
type dividedTicks struct {
	n int
}

func (t dividedTicks) Ticks(min, max float64) []plot.Tick {
	n := t.n
	if n < 1 {
		n = 1
	}
	ticks := make([]plot.Tick, 0, n+1)
	step := (max - min) / float64(n)
	for i := 0; i <= n; i++ {
		v := min + float64(i)*step
		ticks = append(ticks, plot.Tick{Value: v, Label: formatTick(v)})
	}
	return ticks
}

func formatTick(v float64) string {
	// Trim the noise of near-zero steps like 0.11249999999999999.
	return strconv.FormatFloat(math.Round(v*1e6)/1e6, 'g', -1, 64)
}

// fillThumb draws a filled rectangle as the legend thumbnail of a stacked
// simulation component.
type fillThumb struct {
	c color.Color
}

func (t fillThumb) Thumbnail(dc *draw.Canvas) {
	pts := []vg.Point{
		{X: dc.Min.X, Y: dc.Min.Y},
		{X: dc.Min.X, Y: dc.Max.Y},
		{X: dc.Max.X, Y: dc.Max.Y},
		{X: dc.Max.X, Y: dc.Min.Y},
	}
	dc.FillPolygon(t.c, pts)
}

// glyphThumb draws a single marker as the legend thumbnail of the data
// points.
type glyphThumb struct {
	sty draw.GlyphStyle
}

func (t glyphThumb) Thumbnail(dc *draw.Canvas) {
	dc.DrawGlyph(t.sty, dc.Center())
}
