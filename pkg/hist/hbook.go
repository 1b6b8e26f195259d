package hist

import (
	"math"

	"go-hep.org/x/hep/hbook"
)

// FromHBook copies an hbook histogram into an owned Histogram value. The
// result keeps no reference to hb or to whatever container produced it.
func FromHBook(name, title string, hb *hbook.H1D) (*Histogram, error) {
	n := len(hb.Binning.Bins)
	edges := make([]float64, 0, n+1)
	contents := make([]float64, 0, n)
	errs := make([]float64, 0, n)

	for i, b := range hb.Binning.Bins {
		if i == 0 {
			edges = append(edges, b.XMin())
		}
		edges = append(edges, b.XMax())
		contents = append(contents, b.Dist.SumW())
		errs = append(errs, math.Sqrt(b.Dist.SumW2()))
	}

	under := hb.Binning.Outflows[0].SumW()
	over := hb.Binning.Outflows[1].SumW()
	return New(name, title, edges, contents, errs, under, over)
}

// HBook converts the histogram back into an hbook value for plotting.
// NaN contents pass through unchanged; plotters decide how to depict them.
func (h *Histogram) HBook() *hbook.H1D {
	out := hbook.NewH1DFromEdges(h.edges)
	out.Ann["name"] = h.name
	out.Ann["title"] = h.title

	for i := range out.Binning.Bins {
		d := &out.Binning.Bins[i].Dist.Dist
		d.N = 1
		d.SumW = h.contents[i]
		d.SumW2 = h.errs[i] * h.errs[i]
	}

	out.Binning.Outflows[0].Dist.SumW = h.underflow
	out.Binning.Outflows[1].Dist.SumW = h.overflow
	return out
}
