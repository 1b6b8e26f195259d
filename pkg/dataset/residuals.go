package dataset

import (
	"math"

	"github.com/hepstack/datamc/pkg/hist"
)

// Default display range of the residual axis. The range truncates the
// displayed axis only; residual contents are never clipped.
const (
	DefaultResidualMin = -0.25
	DefaultResidualMax = 0.28
)

// ResidualYTitle is the fixed y-axis label of the residual plot.
const ResidualYTitle = "(Data-MC)/MC"

// ResidualSeries is the derived per-bin relative disagreement between data
// and the combined simulation, plus its display range.
type ResidualSeries struct {
	// Hist holds (data-totalMC)/totalMC per regular bin. Bins where the
	// combined simulation is zero carry NaN; renderers leave them blank.
	// Under/overflow are excluded (zero): the residual plot covers only
	// the visible axis range.
	Hist *hist.Histogram

	// TotalMC is the bin-wise sum of all simulation components, with
	// errors combined in quadrature.
	TotalMC *hist.Histogram

	// Min and Max bound the displayed residual axis.
	Min, Max float64
}

// ComputeResiduals builds the combined simulation histogram and the
// residual series (data-totalMC)/totalMC with the given display range.
// A zero total-simulation bin yields a NaN sentinel in that bin only;
// it never aborts the computation.
func (d *Dataset) ComputeResiduals(min, max float64) (*ResidualSeries, error) {
	total, err := hist.Sum("mc_total", "Total MC", d.mc)
	if err != nil {
		return nil, err
	}

	n := d.data.Len()
	contents := make([]float64, n)
	errs := make([]float64, n)
	for i := 0; i < n; i++ {
		t := total.Content(i)
		if t == 0 {
			contents[i] = math.NaN()
			continue
		}
		contents[i] = (d.data.Content(i) - t) / t
		errs[i] = d.data.Error(i) / t
	}

	title := ";" + d.XAxisTitle() + ";" + ResidualYTitle
	rh, err := hist.New("residuals", title, d.data.Edges(), contents, errs, 0, 0)
	if err != nil {
		return nil, err
	}

	return &ResidualSeries{Hist: rh, TotalMC: total, Min: min, Max: max}, nil
}
