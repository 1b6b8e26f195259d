package dataset

import (
	"strings"

	"github.com/hepstack/datamc/pkg/hist"
)

// Dataset is the histogram set behind one comparison figure: exactly one
// data histogram plus the ordered simulation components. It owns all of its
// histograms; nothing refers back to the source container.
type Dataset struct {
	title string
	data  *hist.Histogram
	mc    []*hist.Histogram
}

// Title returns the composite figure title. Up to three semicolon-delimited
// segments are recognized: overall title, x-axis title, y-axis title.
func (d *Dataset) Title() string { return d.title }

// Data returns the observed histogram.
func (d *Dataset) Data() *hist.Histogram { return d.data }

// MC returns the simulation histograms in container order. The order is
// significant: it fixes both stacking and legend order.
func (d *Dataset) MC() []*hist.Histogram { return d.mc }

// Histogram looks a histogram up by name: "data" resolves to the data
// histogram, any other name is searched among the simulation components.
// It returns nil when no histogram carries the name.
func (d *Dataset) Histogram(name string) *hist.Histogram {
	if name == "data" {
		return d.data
	}
	for _, h := range d.mc {
		if h.Name() == name {
			return h
		}
	}
	return nil
}

// TitleSegments splits the composite title on semicolons and returns the
// overall, x-axis, and y-axis segments. Missing segments come back empty.
func (d *Dataset) TitleSegments() (main, xAxis, yAxis string) {
	parts := strings.SplitN(d.title, ";", 3)
	main = parts[0]
	if len(parts) > 1 {
		xAxis = parts[1]
	}
	if len(parts) > 2 {
		yAxis = parts[2]
	}
	return main, xAxis, yAxis
}

// XAxisTitle returns the second semicolon-delimited segment of the title.
func (d *Dataset) XAxisTitle() string {
	_, x, _ := d.TitleSegments()
	return x
}
