package dataset

import "github.com/hepstack/datamc/pkg/hist"

// Source provides read access to a container of named records, such as a
// ROOT file. Implementations must return fully copied histograms so that a
// Source can be closed as soon as loading finishes.
type Source interface {
	// Location resolves a named sub-container. The empty name resolves to
	// the root of the source. A missing location is reported with the
	// LOCATION_NOT_FOUND error code.
	Location(name string) (Location, error)

	// Close releases the underlying resources. Histograms read from the
	// source stay valid after Close.
	Close() error
}

// Location is a resolved sub-container inside a Source.
type Location interface {
	// Entries lists the records in container order. This order is
	// significant: it determines stack and legend ordering downstream.
	Entries() []Entry

	// Histogram reads the named one-dimensional histogram as an owned copy.
	Histogram(name string) (*hist.Histogram, error)

	// Text reads the named plain string record. It reports ok=false when
	// the record is absent or is not a string.
	Text(name string) (string, bool)
}

// Entry describes one record in a Location.
type Entry struct {
	Name   string
	Hist1D bool // whether the record is a one-dimensional histogram
}
