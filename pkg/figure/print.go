package figure

import (
	"image/color"
	"os"
	"path/filepath"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/font"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/hepstack/datamc/pkg/errors"
	"github.com/hepstack/datamc/pkg/layout"
)

// Print exports the figure. A .json path persists the canvas and the
// legend together as one structured document; any other extension selects
// an image backend (png, jpg, svg, pdf, eps, tif, tex) that renders the
// canvas alone.
func (f *Figure) Print(path string) error {
	if !f.drawn {
		return errors.New(errors.ErrCodeIllegalState, "cannot print before the figure is drawn")
	}

	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	if ext == "" {
		return errors.New(errors.ErrCodeInvalidFormat, "output path %q has no extension", path)
	}
	if ext == "json" {
		return f.printJSON(path)
	}

	geo := f.canvas.Layout
	w := vg.Length(geo.CanvasWidth)
	h := vg.Length(geo.CanvasHeight)

	c, err := draw.NewFormattedCanvas(w, h, ext)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInvalidFormat, err, "unsupported output format %q", ext)
	}

	f.render(draw.New(c))

	out, err := os.Create(path)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "failed to create %q", path)
	}
	defer out.Close()

	if _, err := c.WriteTo(out); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "failed to write %q", path)
	}
	return nil
}

// render paints the composed figure onto a canvas: main plot, residual
// strip, legend, and annotations.
func (f *Figure) render(dc draw.Canvas) {
	geo := f.canvas.Layout

	f.canvas.Main.Draw(regionCanvas(dc, geo.Main))
	if f.canvas.Residual != nil {
		f.canvas.Residual.Draw(regionCanvas(dc, *geo.Residual))
	}

	f.canvas.Legend.Draw(rectCanvas(dc, f.canvas.LegendRect))

	size := vg.Length(labelSizeFraction * geo.CanvasHeight)
	for _, l := range f.labels {
		drawLabel(dc, l, size)
	}
}

// regionCanvas maps a layout region onto a sub-canvas, shrunk by the
// region's internal margins so the label gutter stays clear.
func regionCanvas(dc draw.Canvas, reg layout.Region) draw.Canvas {
	outer := rectCanvas(dc, reg.Rect)
	size := outer.Rectangle.Size()

	inner := vg.Rectangle{
		Min: vg.Point{
			X: outer.Rectangle.Min.X + vg.Length(reg.Margins.Left)*size.X,
			Y: outer.Rectangle.Min.Y + vg.Length(reg.Margins.Bottom)*size.Y,
		},
		Max: vg.Point{
			X: outer.Rectangle.Max.X - vg.Length(reg.Margins.Right)*size.X,
			Y: outer.Rectangle.Max.Y - vg.Length(reg.Margins.Top)*size.Y,
		},
	}
	return draw.Canvas{Canvas: dc.Canvas, Rectangle: inner}
}

// rectCanvas maps a normalized rectangle onto a sub-canvas.
func rectCanvas(dc draw.Canvas, r layout.Rect) draw.Canvas {
	size := dc.Rectangle.Size()
	return draw.Canvas{
		Canvas: dc.Canvas,
		Rectangle: vg.Rectangle{
			Min: vg.Point{
				X: dc.Rectangle.Min.X + vg.Length(r.X0)*size.X,
				Y: dc.Rectangle.Min.Y + vg.Length(r.Y0)*size.Y,
			},
			Max: vg.Point{
				X: dc.Rectangle.Min.X + vg.Length(r.X1)*size.X,
				Y: dc.Rectangle.Min.Y + vg.Length(r.Y1)*size.Y,
			},
		},
	}
}

func drawLabel(dc draw.Canvas, l Label, size vg.Length) {
	sty := text.Style{
		Color:   color.Black,
		Font:    font.Font{Typeface: "Liberation", Variant: "Sans"},
		Handler: plot.DefaultTextHandler,
		XAlign:  text.XLeft,
		YAlign:  text.YBottom,
	}
	sty.Font.Size = size
	if l.AlignRight {
		sty.XAlign = text.XRight
	}

	csize := dc.Rectangle.Size()
	pt := vg.Point{
		X: dc.Rectangle.Min.X + vg.Length(l.X)*csize.X,
		Y: dc.Rectangle.Min.Y + vg.Length(l.Y)*csize.Y,
	}
	dc.FillText(sty, pt, l.Text)
}
