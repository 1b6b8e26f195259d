package hist

import (
	"math"

	"github.com/hepstack/datamc/pkg/errors"
)

// Sum returns the bin-wise sum of hs under the given name and title.
// Contents and under/overflow add linearly; errors combine in quadrature.
// All histograms are assumed to share one edge set (a precondition of the
// inputs); only the bin count is checked.
func Sum(name, title string, hs []*Histogram) (*Histogram, error) {
	if len(hs) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidConfiguration, "sum %q: no histograms", name)
	}

	first := hs[0]
	total := first.Clone()
	total.name = name
	total.title = title

	sumw2 := make([]float64, first.Len())
	for i, e := range first.errs {
		sumw2[i] = e * e
	}

	for _, h := range hs[1:] {
		if h.Len() != first.Len() {
			return nil, errors.New(errors.ErrCodeInvalidConfiguration,
				"sum %q: histogram %q has %d bins, want %d", name, h.name, h.Len(), first.Len())
		}
		for i := range total.contents {
			total.contents[i] += h.contents[i]
			sumw2[i] += h.errs[i] * h.errs[i]
		}
		total.underflow += h.underflow
		total.overflow += h.overflow
	}

	for i, w2 := range sumw2 {
		total.errs[i] = math.Sqrt(w2)
	}
	return total, nil
}
