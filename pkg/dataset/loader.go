package dataset

import (
	"github.com/hepstack/datamc/pkg/errors"
	"github.com/hepstack/datamc/pkg/hist"
)

// Reserved entry names that never qualify as simulation components.
// syst_up and syst_down are systematic-variation siblings of the nominal
// histograms, not stack members.
const (
	entryData     = "data"
	entryTitle    = "title"
	entrySystUp   = "syst_up"
	entrySystDown = "syst_down"
)

// Load reads the histogram set at the given location of a source. The
// location must hold exactly one histogram named "data" and at least one
// other one-dimensional histogram; an optional "title" string record is
// read into the dataset title. Loading either fully succeeds or fails with
// no usable dataset.
func Load(src Source, location string) (*Dataset, error) {
	loc, err := src.Location(location)
	if err != nil {
		return nil, err
	}

	d := &Dataset{}
	if t, ok := loc.Text(entryTitle); ok {
		d.title = t
	}

	for _, e := range loc.Entries() {
		if !e.Hist1D {
			continue
		}
		switch e.Name {
		case entryData:
			h, err := loc.Histogram(e.Name)
			if err != nil {
				return nil, err
			}
			d.data = h
		case entrySystUp, entrySystDown:
			// systematic variations are not stack members
		default:
			h, err := loc.Histogram(e.Name)
			if err != nil {
				return nil, err
			}
			d.mc = append(d.mc, h)
		}
	}

	if d.data == nil {
		return nil, errors.New(errors.ErrCodeMissingData,
			"no data histogram at location %q", location)
	}
	if len(d.mc) == 0 {
		return nil, errors.New(errors.ErrCodeMissingSimulation,
			"no simulation histograms at location %q", location)
	}
	return d, nil
}

// NewDataset assembles a dataset directly from histograms. It applies the
// same validation as Load and exists for callers that build histograms in
// memory rather than reading a container.
func NewDataset(title string, data *hist.Histogram, mc []*hist.Histogram) (*Dataset, error) {
	if data == nil {
		return nil, errors.New(errors.ErrCodeMissingData, "no data histogram")
	}
	if len(mc) == 0 {
		return nil, errors.New(errors.ErrCodeMissingSimulation, "no simulation histograms")
	}
	return &Dataset{title: title, data: data, mc: mc}, nil
}
