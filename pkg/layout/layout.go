// Package layout computes the pad geometry of a comparison figure.
//
// The canvas is partitioned into a main region and, when residuals are
// requested, a residual strip below it. All geometry is expressed in unit
// canvas coordinates with the origin at the bottom-left. The computation is
// a pure function of its configuration; histogram contents never enter.
package layout

import "github.com/hepstack/datamc/pkg/errors"

// Default geometry, matching the reference appearance of the figure.
const (
	DefaultCanvasWidth       = 1500.0 // px
	DefaultBaseHeight        = 1000.0 // px, nominal main-region height
	DefaultResidualFraction  = 0.17   // canvas fraction reserved for residuals
	DefaultMargin            = 0.1    // fixed label gutter, canvas fraction
	DefaultMainWidthFraction = 0.85   // main pad width, canvas fraction
)

// Spec configures one layout computation. A Spec carries no persistent
// identity: it is built fresh for every draw request.
type Spec struct {
	CanvasWidth       float64 // canvas width in pixels
	BaseHeight        float64 // nominal main-region height in pixels
	WantResiduals     bool    // whether to carve out a residual strip
	ResidualFraction  float64 // canvas height fraction reserved for residuals
	Margin            float64 // fixed label gutter as a canvas fraction
	MainWidthFraction float64 // main pad width as a canvas fraction
}

// DefaultSpec returns the reference geometry without residuals.
func DefaultSpec() Spec {
	return Spec{
		CanvasWidth:       DefaultCanvasWidth,
		BaseHeight:        DefaultBaseHeight,
		ResidualFraction:  DefaultResidualFraction,
		Margin:            DefaultMargin,
		MainWidthFraction: DefaultMainWidthFraction,
	}
}

// Rect is an axis-aligned rectangle in unit canvas coordinates.
type Rect struct {
	X0, Y0 float64
	X1, Y1 float64
}

// Width returns the horizontal span of the rectangle.
func (r Rect) Width() float64 { return r.X1 - r.X0 }

// Height returns the vertical span of the rectangle.
func (r Rect) Height() float64 { return r.Y1 - r.Y0 }

// Margins are a region's internal margins as fractions of the region's own
// width (left, right) or height (bottom, top). Dividing the fixed canvas
// gutter by the region's size fraction keeps the absolute gutter constant
// regardless of how large the region is.
type Margins struct {
	Left, Right, Bottom, Top float64
}

// Region is one pad of the figure: its outline on the canvas plus its
// internal margins.
type Region struct {
	Rect    Rect
	Margins Margins
}

// WidthFrac returns the region's width as a fraction of the full canvas.
func (r Region) WidthFrac() float64 { return r.Rect.Width() }

// HeightFrac returns the region's height as a fraction of the full canvas.
func (r Region) HeightFrac() float64 { return r.Rect.Height() }

// Result is the computed figure geometry.
type Result struct {
	// CanvasWidth and CanvasHeight are the pixel dimensions of the canvas.
	// The height is inflated by 1/(1-BottomSpacing) over the base height so
	// that the main region keeps its nominal pixel size whether or not a
	// residual strip is carved out below it.
	CanvasWidth  float64
	CanvasHeight float64

	// BottomSpacing is the canvas height fraction reserved for residuals
	// (zero when residuals are not requested). The main region spans
	// [BottomSpacing, 1] vertically, so the two allocations always sum to
	// one full canvas height.
	BottomSpacing float64

	// Main is the comparison region.
	Main Region

	// Residual is the residual strip, nil when not requested. Its rectangle
	// extends margin above BottomSpacing, overlapping the main region's
	// bottom gutter; renderers draw it without background fill.
	Residual *Region
}

// FontScale returns the factor applied to font and tick-label sizes
// computed for the main region when they are used in the residual region.
// Text sizes are specified relative to a pad's own height, so equal visual
// size across the two pads requires scaling by the ratio of their height
// fractions. Without a residual region the factor is 1.
func (r Result) FontScale() float64 {
	if r.Residual == nil {
		return 1
	}
	return r.Main.HeightFrac() / r.Residual.HeightFrac()
}

// Compute derives the figure geometry from a spec. Fractions must lie in
// (0, 1) and the main pad plus gutter must fit the canvas; violations are
// reported as INVALID_CONFIGURATION.
func Compute(spec Spec) (Result, error) {
	if spec.CanvasWidth <= 0 || spec.BaseHeight <= 0 {
		return Result{}, errors.New(errors.ErrCodeInvalidConfiguration,
			"canvas dimensions must be positive, got %gx%g", spec.CanvasWidth, spec.BaseHeight)
	}
	if spec.Margin <= 0 || spec.Margin >= 1 {
		return Result{}, errors.New(errors.ErrCodeInvalidConfiguration,
			"margin must be in (0, 1), got %g", spec.Margin)
	}
	if spec.MainWidthFraction <= 0 || spec.MainWidthFraction >= 1 {
		return Result{}, errors.New(errors.ErrCodeInvalidConfiguration,
			"main width fraction must be in (0, 1), got %g", spec.MainWidthFraction)
	}
	if spec.MainWidthFraction+spec.Margin > 1 {
		return Result{}, errors.New(errors.ErrCodeInvalidConfiguration,
			"main width fraction %g plus margin %g exceeds the canvas", spec.MainWidthFraction, spec.Margin)
	}

	bottomSpacing := 0.0
	if spec.WantResiduals {
		if spec.ResidualFraction <= 0 || spec.ResidualFraction >= 1 {
			return Result{}, errors.New(errors.ErrCodeInvalidConfiguration,
				"residual fraction must be in (0, 1), got %g", spec.ResidualFraction)
		}
		if spec.ResidualFraction+spec.Margin >= 1 {
			return Result{}, errors.New(errors.ErrCodeInvalidConfiguration,
				"residual fraction %g plus margin %g leaves no room for the main region",
				spec.ResidualFraction, spec.Margin)
		}
		bottomSpacing = spec.ResidualFraction
	}

	padWidth := spec.MainWidthFraction + spec.Margin

	res := Result{
		CanvasWidth:   spec.CanvasWidth,
		CanvasHeight:  spec.BaseHeight / (1 - bottomSpacing),
		BottomSpacing: bottomSpacing,
		Main: Region{
			Rect: Rect{X0: 0, Y0: bottomSpacing, X1: padWidth, Y1: 1},
			Margins: Margins{
				Left:   spec.Margin / padWidth,
				Right:  spec.Margin / padWidth,
				Bottom: spec.Margin / (1 - bottomSpacing),
				Top:    spec.Margin / (1 - bottomSpacing),
			},
		},
	}

	if spec.WantResiduals {
		height := bottomSpacing + spec.Margin
		res.Residual = &Region{
			Rect: Rect{X0: 0, Y0: 0, X1: padWidth, Y1: height},
			Margins: Margins{
				Left:   spec.Margin / padWidth,
				Right:  spec.Margin / padWidth,
				Bottom: spec.Margin / height,
				Top:    0,
			},
		}
	}

	return res, nil
}

// ResidualTickScale returns the factor applied to the main region's x-axis
// tick length when it is reused on the residual strip, compensating for the
// strip's smaller height. Without a residual region the factor is 1.
func (r Result) ResidualTickScale() float64 {
	if r.Residual == nil || r.BottomSpacing == 0 {
		return 1
	}
	// The fixed gutter is recovered from the main region's own margins.
	margin := r.Main.Margins.Bottom * r.Main.HeightFrac()
	return (1 - 2*margin - r.BottomSpacing) / r.BottomSpacing
}
