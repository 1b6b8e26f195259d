package dataset

import "github.com/hepstack/datamc/pkg/errors"

// NormalizeToData rescales every simulation histogram in place by a single
// common factor so that the total simulation yield matches the data yield.
// Integrals always include under/overflow; with isDensity=true the regular
// bins contribute content*binWidth instead of plain content.
//
// The call must precede residual computation: residuals compare data to the
// normalized simulation.
func (d *Dataset) NormalizeToData(isDensity bool) error {
	dataIntegral := d.data.Integral(isDensity)

	mcIntegral := 0.0
	for _, h := range d.mc {
		mcIntegral += h.Integral(isDensity)
	}
	if mcIntegral == 0 {
		return errors.New(errors.ErrCodeDivideByZero,
			"total simulation integral is zero, cannot normalize to data")
	}

	factor := dataIntegral / mcIntegral
	for _, h := range d.mc {
		h.Scale(factor)
	}
	return nil
}
