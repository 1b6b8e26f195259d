// Package hist provides the one-dimensional histogram value type used
// throughout datamc.
//
// A Histogram is fully copied out of whatever container it was read from:
// it owns its bin edges, contents, and errors, and keeps no reference to
// the source. Contents may be negative (differences and residuals are
// histograms too).
package hist

import (
	"gonum.org/v1/gonum/floats"

	"github.com/hepstack/datamc/pkg/errors"
)

// Histogram is a binned one-dimensional distribution.
//
// Bin i covers the half-open interval [edges[i], edges[i+1]). Underflow and
// overflow hold the content accumulated outside [edges[0], edges[n]).
type Histogram struct {
	name  string
	title string

	edges    []float64 // len n+1, strictly increasing
	contents []float64 // len n
	errs     []float64 // len n

	underflow float64
	overflow  float64
}

// New builds a histogram from bin edges, per-bin contents and errors, and
// the under/overflow contents. It validates that at least one bin exists,
// that edges are strictly increasing, and that the slice lengths agree.
// All slices are copied.
func New(name, title string, edges, contents, errs []float64, underflow, overflow float64) (*Histogram, error) {
	if len(edges) < 2 {
		return nil, errors.New(errors.ErrCodeInvalidConfiguration, "histogram %q: need at least one bin", name)
	}
	if len(contents) != len(edges)-1 || len(errs) != len(edges)-1 {
		return nil, errors.New(errors.ErrCodeInvalidConfiguration,
			"histogram %q: %d edges require %d contents and errors, got %d and %d",
			name, len(edges), len(edges)-1, len(contents), len(errs))
	}
	for i := 1; i < len(edges); i++ {
		if edges[i] <= edges[i-1] {
			return nil, errors.New(errors.ErrCodeInvalidConfiguration,
				"histogram %q: bin edges not strictly increasing at index %d", name, i)
		}
	}

	h := &Histogram{
		name:      name,
		title:     title,
		edges:     append([]float64(nil), edges...),
		contents:  append([]float64(nil), contents...),
		errs:      append([]float64(nil), errs...),
		underflow: underflow,
		overflow:  overflow,
	}
	return h, nil
}

// Name returns the stable identifier of the histogram.
func (h *Histogram) Name() string { return h.name }

// Title returns the display label used in legend entries.
func (h *Histogram) Title() string { return h.title }

// SetTitle replaces the display label.
func (h *Histogram) SetTitle(t string) { h.title = t }

// Len returns the number of regular bins.
func (h *Histogram) Len() int { return len(h.contents) }

// XMin returns the low edge of the first bin.
func (h *Histogram) XMin() float64 { return h.edges[0] }

// XMax returns the high edge of the last bin.
func (h *Histogram) XMax() float64 { return h.edges[len(h.edges)-1] }

// XLow returns the low edge of bin i.
func (h *Histogram) XLow(i int) float64 { return h.edges[i] }

// XHigh returns the high edge of bin i.
func (h *Histogram) XHigh(i int) float64 { return h.edges[i+1] }

// XMid returns the center of bin i.
func (h *Histogram) XMid(i int) float64 { return (h.edges[i] + h.edges[i+1]) / 2 }

// XWidth returns the width of bin i.
func (h *Histogram) XWidth(i int) float64 { return h.edges[i+1] - h.edges[i] }

// Content returns the content of bin i.
func (h *Histogram) Content(i int) float64 { return h.contents[i] }

// Error returns the uncertainty on the content of bin i.
func (h *Histogram) Error(i int) float64 { return h.errs[i] }

// Underflow returns the content accumulated below the first bin edge.
func (h *Histogram) Underflow() float64 { return h.underflow }

// Overflow returns the content accumulated at or above the last bin edge.
func (h *Histogram) Overflow() float64 { return h.overflow }

// Edges returns a copy of the bin edges.
func (h *Histogram) Edges() []float64 { return append([]float64(nil), h.edges...) }

// Clone returns a deep copy of the histogram.
func (h *Histogram) Clone() *Histogram {
	return &Histogram{
		name:      h.name,
		title:     h.title,
		edges:     append([]float64(nil), h.edges...),
		contents:  append([]float64(nil), h.contents...),
		errs:      append([]float64(nil), h.errs...),
		underflow: h.underflow,
		overflow:  h.overflow,
	}
}

// Scale multiplies every bin content and error by f, including the
// under/overflow contents. Errors scale linearly with contents.
func (h *Histogram) Scale(f float64) {
	floats.Scale(f, h.contents)
	floats.Scale(f, h.errs)
	h.underflow *= f
	h.overflow *= f
}

// Integral returns the total content of the histogram, always including
// underflow and overflow. With weighted=true, each regular bin contributes
// content*binWidth; the under/overflow contents have no width and are added
// as plain content in both modes.
func (h *Histogram) Integral(weighted bool) float64 {
	sum := h.underflow + h.overflow
	for i, c := range h.contents {
		if weighted {
			sum += c * h.XWidth(i)
		} else {
			sum += c
		}
	}
	return sum
}
