// Package pkg provides the core libraries for datamc figure building.
//
// # Overview
//
// datamc turns a ROOT file holding a measured histogram and a set of
// simulated components into a publication-style comparison figure. The pkg
// directory is organized into the following areas:
//
//  1. [hist] - Binned histogram model (contents, errors, flows)
//  2. [dataset] - Loading and derived series (normalization, residuals)
//  3. [layout] - Canvas geometry (pads, margins, font scaling)
//  4. [figure] - Figure composition and export
//  5. [pipeline] - Orchestration (load → compose → export)
//
// # Architecture
//
// The typical data flow through datamc:
//
//	ROOT file
//	     ↓
//	[dataset] package (read data + simulation histograms)
//	     ↓
//	[figure] package (stack, residuals, legend, labels)
//	     ↓
//	PNG/SVG/PDF/JSON output
//
// # Quick Start
//
// Load a file and draw the comparison figure:
//
//	import (
//	    "github.com/hepstack/datamc/pkg/dataset"
//	    "github.com/hepstack/datamc/pkg/figure"
//	)
//
//	// 1. Load the histograms
//	src, _ := dataset.OpenROOT("analysis.root")
//	defer src.Close()
//	ds, _ := dataset.Load(src, "")
//
//	// 2. Compose the figure
//	fig := figure.New(ds)
//	fig.RequestResiduals(true, dataset.DefaultResidualMin, dataset.DefaultResidualMax)
//	fig.Draw()
//
//	// 3. Annotate and export
//	fig.AddExperimentLabel("My Experiment")
//	fig.Print("analysis.png")
//
// # Main Packages
//
// [hist] - Binned 1D histogram with per-bin errors and underflow/overflow.
// Supports scaling, summation with errors in quadrature, and conversion to
// and from go-hep's hbook representation.
//
// [dataset] - The Source and Location abstractions over histogram storage,
// the ROOT file implementation built on go-hep's groot, and the derived
// series: normalization of the simulation to the data yield and per-bin
// relative residuals.
//
// [layout] - Canvas geometry. Splits the canvas into a main pad and an
// optional residual strip, computes per-pad margins, and provides the font
// and tick scale factors that keep text visually uniform across pads.
//
// [figure] - Builds the figure from a dataset: stacked simulation, data
// points with error bars, legend, residual strip, and corner labels. Exports
// through gonum/plot's format-dispatched backends or as a structured JSON
// document.
//
// [pipeline] - Complete figure pipeline (load → compose → export) used by
// the CLI. Ensures consistent behavior across all entry points.
//
// [errors] - Structured errors with stable codes for programmatic handling.
//
// [observability] - Optional instrumentation hooks for pipeline stages.
//
// [buildinfo] - Build-time version information injected via ldflags.
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...            # All tests
//	go test ./pkg/figure/...     # Specific package
//
// [hist]: https://pkg.go.dev/github.com/hepstack/datamc/pkg/hist
// [dataset]: https://pkg.go.dev/github.com/hepstack/datamc/pkg/dataset
// [layout]: https://pkg.go.dev/github.com/hepstack/datamc/pkg/layout
// [figure]: https://pkg.go.dev/github.com/hepstack/datamc/pkg/figure
// [pipeline]: https://pkg.go.dev/github.com/hepstack/datamc/pkg/pipeline
// [errors]: https://pkg.go.dev/github.com/hepstack/datamc/pkg/errors
// [observability]: https://pkg.go.dev/github.com/hepstack/datamc/pkg/observability
// [buildinfo]: https://pkg.go.dev/github.com/hepstack/datamc/pkg/buildinfo
package pkg
