// Package pipeline provides the core figure-building pipeline for datamc.
//
// This package implements the complete load → compose → export pipeline
// shared by every entry point. Centralizing it keeps the CLI and any
// embedding program behaviorally identical.
//
// # Architecture
//
// The pipeline consists of three stages:
//
//  1. Load: Read the data and simulation histograms from a ROOT file
//  2. Compose: Normalize, derive residuals, and lay out the figure
//  3. Export: Write the figure in one or more output formats
//
// Each stage can be run independently or as part of the complete pipeline.
//
// # Usage
//
// Create a Runner and execute the pipeline:
//
//	runner := pipeline.NewRunner(logger)
//	opts := pipeline.Options{
//	    Input:   "analysis.root",
//	    Formats: []string{"png"},
//	}
//	result, err := runner.Execute(ctx, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(result.Outputs)
package pipeline

import (
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/hepstack/datamc/pkg/dataset"
	"github.com/hepstack/datamc/pkg/errors"
	"github.com/hepstack/datamc/pkg/figure"
	"github.com/hepstack/datamc/pkg/layout"
)

// =============================================================================
// Default Values - Single Source of Truth for Every Entry Point
// =============================================================================

// DefaultFormat is the output format used when none is requested.
const DefaultFormat = FormatPNG

// Format constants for output formats.
const (
	FormatPNG  = "png"
	FormatJPG  = "jpg"
	FormatSVG  = "svg"
	FormatPDF  = "pdf"
	FormatEPS  = "eps"
	FormatTeX  = "tex"
	FormatJSON = "json"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatPNG:  true,
	FormatJPG:  true,
	FormatSVG:  true,
	FormatPDF:  true,
	FormatEPS:  true,
	FormatTeX:  true,
	FormatJSON: true,
}

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for the figure pipeline.
// This struct supports JSON serialization so runs can be replayed.
type Options struct {
	// Load options
	Input    string `json:"input"`
	Location string `json:"location,omitempty"` // Directory inside the input file

	// Compose options
	Residuals   bool    `json:"residuals,omitempty"`
	ResidualMin float64 `json:"residual_min,omitempty"`
	ResidualMax float64 `json:"residual_max,omitempty"`
	Normalize   bool    `json:"normalize,omitempty"`
	Density     bool    `json:"density,omitempty"` // Treat bin contents as densities when normalizing

	// Geometry options, zero means the reference value.
	CanvasWidth       float64 `json:"canvas_width,omitempty"`
	BaseHeight        float64 `json:"base_height,omitempty"`
	Margin            float64 `json:"margin,omitempty"`
	MainWidthFraction float64 `json:"main_width_fraction,omitempty"`
	ResidualFraction  float64 `json:"residual_fraction,omitempty"`

	// Style options
	ResidualTicks int     `json:"residual_ticks,omitempty"`
	Headroom      float64 `json:"headroom,omitempty"`

	// Annotation options
	ExperimentLabel string `json:"experiment_label,omitempty"`
	EnergyLabel     string `json:"energy_label,omitempty"`

	// Export options
	Output  string   `json:"output,omitempty"` // Base path without extension
	Formats []string `json:"formats,omitempty"`

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool `json:"-"`
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Dataset is the loaded histogram collection.
	Dataset *dataset.Dataset

	// Figure is the composed figure.
	Figure *figure.Figure

	// Outputs lists the files written during export.
	Outputs []string

	// Stats contains timing and size information.
	Stats Stats
}

// Stats contains pipeline execution statistics.
type Stats struct {
	ComponentCount int
	BinCount       int
	LoadTime       time.Duration
	ComposeTime    time.Duration
	ExportTime     time.Duration
}

// =============================================================================
// Validation Functions
// =============================================================================

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errors.New(errors.ErrCodeInvalidFormat,
			"invalid format: %q (must be one of: png, jpg, svg, pdf, eps, tex, json)", format)
	}
	return nil
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// =============================================================================
// Options Methods
// =============================================================================

// ValidateAndSetDefaults checks required fields and applies defaults for the
// full pipeline. This method is idempotent - calling it multiple times has
// the same effect as calling it once.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if err := o.ValidateForLoad(); err != nil {
		return err
	}
	o.SetComposeDefaults()
	if err := o.ValidateForExport(); err != nil {
		return err
	}
	o.validated = true
	return nil
}

// ValidateForLoad checks required fields for loading.
func (o *Options) ValidateForLoad() error {
	if o.Input == "" {
		return errors.New(errors.ErrCodeInvalidConfiguration, "input is required")
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	return nil
}

// SetComposeDefaults sets default values for figure composition.
func (o *Options) SetComposeDefaults() {
	if o.CanvasWidth == 0 {
		o.CanvasWidth = layout.DefaultCanvasWidth
	}
	if o.BaseHeight == 0 {
		o.BaseHeight = layout.DefaultBaseHeight
	}
	if o.Margin == 0 {
		o.Margin = layout.DefaultMargin
	}
	if o.MainWidthFraction == 0 {
		o.MainWidthFraction = layout.DefaultMainWidthFraction
	}
	if o.ResidualFraction == 0 {
		o.ResidualFraction = layout.DefaultResidualFraction
	}
	// Each bound defaults on its own, so overriding one keeps the other.
	// An exact zero bound cannot be requested; use a tiny offset instead.
	if o.ResidualMin == 0 {
		o.ResidualMin = dataset.DefaultResidualMin
	}
	if o.ResidualMax == 0 {
		o.ResidualMax = dataset.DefaultResidualMax
	}
	if o.ResidualTicks == 0 {
		o.ResidualTicks = figure.DefaultStyle().ResidualTicks
	}
	if o.Headroom == 0 {
		o.Headroom = figure.DefaultStyle().HeadroomFactor
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// ValidateForCompose validates and sets defaults for figure composition.
func (o *Options) ValidateForCompose() error {
	o.SetComposeDefaults()
	if o.ResidualMin >= o.ResidualMax {
		return errors.New(errors.ErrCodeInvalidConfiguration,
			"residual range [%v, %v] is empty", o.ResidualMin, o.ResidualMax)
	}
	return nil
}

// SetExportDefaults sets default values for export.
func (o *Options) SetExportDefaults() {
	if len(o.Formats) == 0 {
		o.Formats = []string{DefaultFormat}
	}
	if o.Output == "" {
		base := filepath.Base(o.Input)
		o.Output = strings.TrimSuffix(base, filepath.Ext(base))
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// ValidateForExport validates and sets defaults for export.
func (o *Options) ValidateForExport() error {
	o.SetExportDefaults()
	return ValidateFormats(o.Formats)
}

// LayoutSpec returns the layout configuration the options describe.
func (o *Options) LayoutSpec() layout.Spec {
	return layout.Spec{
		CanvasWidth:       o.CanvasWidth,
		BaseHeight:        o.BaseHeight,
		Margin:            o.Margin,
		MainWidthFraction: o.MainWidthFraction,
		WantResiduals:     o.Residuals,
		ResidualFraction:  o.ResidualFraction,
	}
}

// FigureStyle returns the cosmetic configuration the options describe.
func (o *Options) FigureStyle() figure.Style {
	return figure.Style{
		ResidualTicks:  o.ResidualTicks,
		HeadroomFactor: o.Headroom,
	}
}

// OutputPath returns the output file path for one format.
func (o *Options) OutputPath(format string) string {
	return o.Output + "." + format
}
