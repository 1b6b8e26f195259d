// Package dataset loads and prepares the histogram set behind one
// data/simulation comparison figure.
//
// A Dataset is read from a [Source] (in production a ROOT file opened
// through groot) and owns every histogram it contains: the source can be
// closed immediately after loading. The package also hosts the two numeric
// operations performed on a loaded dataset before drawing: normalization of
// the simulation stack to the data yield and computation of the per-bin
// residual series.
package dataset
