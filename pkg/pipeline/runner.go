package pipeline

import (
	"context"
	"time"

	"github.com/charmbracelet/log"

	"github.com/hepstack/datamc/pkg/dataset"
	"github.com/hepstack/datamc/pkg/figure"
	"github.com/hepstack/datamc/pkg/observability"
)

// Runner encapsulates pipeline execution.
//
// The Runner is stateless except for the logger - it doesn't store pipeline
// results. Multiple goroutines can safely use the same Runner with different
// options.
type Runner struct {
	Logger *log.Logger
}

// NewRunner creates a runner. If logger is nil, the package default is used.
func NewRunner(logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Logger: logger}
}

// Execute runs the complete load → compose → export pipeline.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}
	r.applyLogger(&opts)

	result := &Result{}

	// Stage 1: Load
	loadStart := time.Now()
	observability.Pipeline().OnLoadStart(ctx, opts.Input)
	ds, err := r.Load(ctx, opts)
	if err != nil {
		observability.Pipeline().OnLoadComplete(ctx, opts.Input, 0, time.Since(loadStart), err)
		return nil, err
	}
	observability.Pipeline().OnLoadComplete(ctx, opts.Input, len(ds.MC()), time.Since(loadStart), nil)
	result.Dataset = ds
	result.Stats.LoadTime = time.Since(loadStart)
	result.Stats.ComponentCount = len(ds.MC())
	result.Stats.BinCount = ds.Data().Len()

	r.Logger.Info("loaded histograms",
		"components", len(ds.MC()),
		"bins", ds.Data().Len(),
		"duration", result.Stats.LoadTime)

	// Stage 2: Compose
	composeStart := time.Now()
	observability.Pipeline().OnComposeStart(ctx, opts.Residuals)
	fig, err := r.Compose(ctx, ds, opts)
	observability.Pipeline().OnComposeComplete(ctx, opts.Residuals, time.Since(composeStart), err)
	if err != nil {
		return nil, err
	}
	result.Figure = fig
	result.Stats.ComposeTime = time.Since(composeStart)

	r.Logger.Info("composed figure",
		"residuals", opts.Residuals,
		"normalized", fig.Normalized(),
		"duration", result.Stats.ComposeTime)

	// Stage 3: Export
	exportStart := time.Now()
	observability.Pipeline().OnExportStart(ctx, opts.Formats)
	outputs, err := r.Export(ctx, fig, opts)
	observability.Pipeline().OnExportComplete(ctx, opts.Formats, time.Since(exportStart), err)
	if err != nil {
		return nil, err
	}
	result.Outputs = outputs
	result.Stats.ExportTime = time.Since(exportStart)

	r.Logger.Info("exported figure",
		"formats", opts.Formats,
		"duration", result.Stats.ExportTime)

	return result, nil
}

// Load opens the input file and reads the histogram dataset from it.
func (r *Runner) Load(ctx context.Context, opts Options) (*dataset.Dataset, error) {
	if err := opts.ValidateForLoad(); err != nil {
		return nil, err
	}
	r.applyLogger(&opts)
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	src, err := dataset.OpenROOT(opts.Input)
	if err != nil {
		return nil, err
	}
	defer src.Close()

	return dataset.Load(src, opts.Location)
}

// Compose builds a drawn figure from a loaded dataset.
func (r *Runner) Compose(ctx context.Context, ds *dataset.Dataset, opts Options) (*figure.Figure, error) {
	if err := opts.ValidateForCompose(); err != nil {
		return nil, err
	}
	r.applyLogger(&opts)
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	fig := figure.New(ds)
	if err := fig.SetGeometry(opts.LayoutSpec()); err != nil {
		return nil, err
	}
	if err := fig.SetStyle(opts.FigureStyle()); err != nil {
		return nil, err
	}
	if opts.Residuals {
		if err := fig.RequestResiduals(true, opts.ResidualMin, opts.ResidualMax); err != nil {
			return nil, err
		}
	}
	if opts.Normalize {
		if err := fig.NormalizeToData(opts.Density); err != nil {
			return nil, err
		}
	}

	if err := fig.Draw(); err != nil {
		return nil, err
	}

	if opts.ExperimentLabel != "" {
		if err := fig.AddExperimentLabel(opts.ExperimentLabel); err != nil {
			return nil, err
		}
	}
	if opts.EnergyLabel != "" {
		if err := fig.AddEnergyLabel(opts.EnergyLabel); err != nil {
			return nil, err
		}
	}

	return fig, nil
}

// Export writes the figure in every requested format and returns the paths
// written, in format order.
func (r *Runner) Export(ctx context.Context, fig *figure.Figure, opts Options) ([]string, error) {
	if err := opts.ValidateForExport(); err != nil {
		return nil, err
	}
	r.applyLogger(&opts)

	outputs := make([]string, 0, len(opts.Formats))
	for _, format := range opts.Formats {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		path := opts.OutputPath(format)
		if err := fig.Print(path); err != nil {
			return nil, err
		}
		opts.Logger.Debug("wrote output", "path", path, "format", format)
		outputs = append(outputs, path)
	}
	return outputs, nil
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}
