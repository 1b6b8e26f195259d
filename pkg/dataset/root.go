package dataset

import (
	"go-hep.org/x/hep/groot"
	"go-hep.org/x/hep/groot/rbase"
	"go-hep.org/x/hep/groot/rhist"
	"go-hep.org/x/hep/groot/riofs"
	"go-hep.org/x/hep/groot/root"
	"go-hep.org/x/hep/hbook/rootcnv"

	"github.com/hepstack/datamc/pkg/errors"
	"github.com/hepstack/datamc/pkg/hist"
)

// The one-dimensional ROOT histogram classes accepted by the loader.
// Two-dimensional classes (TH2*) also match a bare "TH1" prefix check, so
// membership is tested against this explicit set instead.
var rootHist1DClasses = map[string]bool{
	"TH1D": true,
	"TH1F": true,
	"TH1I": true,
	"TH1S": true,
	"TH1C": true,
}

// rootSource reads histograms from a ROOT file through groot.
type rootSource struct {
	path string
	file *riofs.File
}

// OpenROOT opens a ROOT file as a histogram Source.
func OpenROOT(path string) (Source, error) {
	f, err := groot.Open(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeSourceUnavailable, err,
			"%q is corrupted or is not a valid ROOT file", path)
	}
	return &rootSource{path: path, file: f}, nil
}

func (s *rootSource) Close() error { return s.file.Close() }

func (s *rootSource) Location(name string) (Location, error) {
	if name == "" {
		return &rootLocation{src: s, dir: s.file}, nil
	}

	obj, err := riofs.Dir(s.file).Get(name)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeLocationNotFound, err,
			"%q does not contain a directory %q", s.path, name)
	}
	dir, ok := obj.(riofs.Directory)
	if !ok {
		return nil, errors.New(errors.ErrCodeLocationNotFound,
			"%q entry %q is not a directory", s.path, name)
	}
	return &rootLocation{src: s, dir: dir}, nil
}

// rootLocation is a resolved directory inside a ROOT file.
type rootLocation struct {
	src *rootSource
	dir riofs.Directory
}

func (l *rootLocation) Entries() []Entry {
	keys := l.dir.Keys()
	entries := make([]Entry, 0, len(keys))
	for _, k := range keys {
		entries = append(entries, Entry{
			Name:   k.Name(),
			Hist1D: rootHist1DClasses[k.ClassName()],
		})
	}
	return entries
}

func (l *rootLocation) Histogram(name string) (*hist.Histogram, error) {
	obj, err := l.dir.Get(name)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err,
			"failed to read histogram %q from %q", name, l.src.path)
	}
	h1, ok := obj.(rhist.H1)
	if !ok {
		return nil, errors.New(errors.ErrCodeInternal,
			"%q entry %q is not a 1-dim histogram", l.src.path, name)
	}

	hb := rootcnv.H1D(h1)

	title := name
	if named, ok := obj.(root.Named); ok {
		title = named.Title()
	}
	return hist.FromHBook(name, title, hb)
}

func (l *rootLocation) Text(name string) (string, bool) {
	obj, err := l.dir.Get(name)
	if err != nil {
		return "", false
	}
	s, ok := obj.(*rbase.ObjString)
	if !ok {
		return "", false
	}
	return s.String(), true
}
