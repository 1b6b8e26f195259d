package figure

import (
	"gonum.org/v1/plot"

	"github.com/hepstack/datamc/pkg/dataset"
	"github.com/hepstack/datamc/pkg/errors"
	"github.com/hepstack/datamc/pkg/hist"
	"github.com/hepstack/datamc/pkg/layout"
)

// Style collects the cosmetic tuning constants of the figure. The two
// residual-axis constants differ between historical variants of the
// reference appearance, so they are configuration rather than hard-coded.
type Style struct {
	// ResidualTicks is the number of major divisions on the residual
	// y axis.
	ResidualTicks int

	// HeadroomFactor inflates the y maximum over the taller of the stack
	// and the data so points never touch the frame.
	HeadroomFactor float64
}

// DefaultStyle returns the reference cosmetic constants.
func DefaultStyle() Style {
	return Style{
		ResidualTicks:  4,
		HeadroomFactor: 1.1,
	}
}

// Figure builds one comparison figure around one dataset. It is not safe
// for concurrent use; independent figures must not share a dataset.
type Figure struct {
	ds    *dataset.Dataset
	spec  layout.Spec
	style Style

	wantResiduals bool
	resMin        float64
	resMax        float64

	normalized bool
	drawn      bool

	canvas *Canvas
	labels []Label
}

// New creates a figure around a loaded dataset with the reference geometry
// and style.
func New(ds *dataset.Dataset) *Figure {
	return &Figure{
		ds:     ds,
		spec:   layout.DefaultSpec(),
		style:  DefaultStyle(),
		resMin: dataset.DefaultResidualMin,
		resMax: dataset.DefaultResidualMax,
	}
}

// SetGeometry replaces the layout configuration. Must precede Draw.
func (f *Figure) SetGeometry(spec layout.Spec) error {
	if f.drawn {
		return errors.New(errors.ErrCodeIllegalState, "cannot change geometry after the figure is drawn")
	}
	f.spec = spec
	return nil
}

// SetStyle replaces the cosmetic tuning constants. Must precede Draw.
func (f *Figure) SetStyle(style Style) error {
	if f.drawn {
		return errors.New(errors.ErrCodeIllegalState, "cannot change style after the figure is drawn")
	}
	f.style = style
	return nil
}

// RequestResiduals enables or disables the residual strip and sets the
// displayed residual range. Values outside the range are not dropped; only
// the axis is truncated. Must precede Draw.
func (f *Figure) RequestResiduals(enabled bool, min, max float64) error {
	if f.drawn {
		return errors.New(errors.ErrCodeIllegalState, "cannot request residuals after the figure is drawn")
	}
	f.wantResiduals = enabled
	f.resMin = min
	f.resMax = max
	return nil
}

// NormalizeToData rescales the simulation stack to the data yield. Must
// precede Draw; residuals computed during Draw see the normalized stack.
func (f *Figure) NormalizeToData(isDensity bool) error {
	if f.drawn {
		return errors.New(errors.ErrCodeIllegalState, "cannot normalize after the figure is drawn")
	}
	if err := f.ds.NormalizeToData(isDensity); err != nil {
		return err
	}
	f.normalized = true
	return nil
}

// Normalized reports whether the simulation stack has been rescaled.
func (f *Figure) Normalized() bool { return f.normalized }

// Draw composes the figure: layout, simulation stack, data points, legend,
// and the residual strip when requested. Calling Draw again recomputes the
// figure from the dataset's current state and replaces the previous canvas.
func (f *Figure) Draw() error {
	spec := f.spec
	spec.WantResiduals = f.wantResiduals

	geo, err := layout.Compute(spec)
	if err != nil {
		return err
	}

	var res *dataset.ResidualSeries
	if f.wantResiduals {
		res, err = f.ds.ComputeResiduals(f.resMin, f.resMax)
		if err != nil {
			return err
		}
	}

	canvas, err := compose(f.ds, geo, f.style, res)
	if err != nil {
		return err
	}

	f.canvas = canvas
	f.drawn = true
	return nil
}

// AddLabel appends a fixed-position text overlay. Must follow Draw.
func (f *Figure) AddLabel(kind LabelKind, text string) error {
	if !f.drawn {
		return errors.New(errors.ErrCodeIllegalState, "cannot add a label before the figure is drawn")
	}
	if err := validLabelKind(kind); err != nil {
		return err
	}
	f.labels = append(f.labels, newLabel(kind, text))
	return nil
}

// AddExperimentLabel places the experiment name at the top-left corner.
func (f *Figure) AddExperimentLabel(text string) error {
	return f.AddLabel(LabelExperiment, text)
}

// AddEnergyLabel places the luminosity/energy text at the top-right corner.
func (f *Figure) AddEnergyLabel(text string) error {
	return f.AddLabel(LabelEnergy, text)
}

// Canvas returns the composed canvas, or nil before Draw.
func (f *Figure) Canvas() *Canvas { return f.canvas }

// Legend returns the composed legend, or nil before Draw.
func (f *Figure) Legend() *plot.Legend {
	if f.canvas == nil {
		return nil
	}
	return f.canvas.Legend
}

// Labels returns the annotations added so far.
func (f *Figure) Labels() []Label { return f.labels }

// MainRegion returns the geometry of the main comparison region.
func (f *Figure) MainRegion() (layout.Region, error) {
	if !f.drawn {
		return layout.Region{}, errors.New(errors.ErrCodeIllegalState, "figure is not drawn yet")
	}
	return f.canvas.Layout.Main, nil
}

// Histogram looks up a histogram of the underlying dataset by name:
// "data" or any simulation component name. It returns nil when absent.
func (f *Figure) Histogram(name string) *hist.Histogram {
	return f.ds.Histogram(name)
}
