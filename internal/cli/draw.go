package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hepstack/datamc/pkg/pipeline"
)

// drawCommand creates the draw command, the main entry point of the CLI.
func (c *CLI) drawCommand() *cobra.Command {
	var (
		configPath string
		formatsStr string
	)
	opts := pipeline.Options{Residuals: true}

	cmd := &cobra.Command{
		Use:   "draw [file.root]",
		Short: "Build a data versus simulation figure from a ROOT file",
		Long: `Build a data versus simulation figure from a ROOT file.

The file (or the directory selected with --location) must contain a 1D
histogram named "data" plus one histogram per simulation component. The
components are stacked in their storage order, the data is overlaid as
points with error bars, and a residual strip below the main pad shows the
relative difference per bin.

An optional "title" text object in the same directory provides the figure
title in ROOT convention: "title;x axis;y axis".`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Input = args[0]
			if formatsStr != "" {
				opts.Formats = parseFormats(formatsStr)
			}

			cfg, err := loadConfig(configPath)
			if err != nil {
				return err
			}
			cfg.apply(&opts)

			if err := opts.ValidateAndSetDefaults(); err != nil {
				return err
			}
			return c.runDraw(cmd.Context(), opts)
		},
	}

	// Common flags
	cmd.Flags().StringVarP(&opts.Output, "output", "o", "", "output base path (default: input name without extension)")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): png (default), jpg, svg, pdf, eps, tex, json (comma-separated)")
	cmd.Flags().StringVarP(&opts.Location, "location", "l", "", "directory inside the file to read from")
	cmd.Flags().StringVar(&configPath, "config", "", "config file (default: ~/.config/datamc/config.toml)")

	// Content flags
	cmd.Flags().BoolVar(&opts.Residuals, "residuals", opts.Residuals, "show the residual strip below the main pad")
	cmd.Flags().Float64Var(&opts.ResidualMin, "residual-min", 0, "lower edge of the displayed residual range")
	cmd.Flags().Float64Var(&opts.ResidualMax, "residual-max", 0, "upper edge of the displayed residual range")
	cmd.Flags().BoolVar(&opts.Normalize, "normalize", false, "rescale the simulation stack to the data yield")
	cmd.Flags().BoolVar(&opts.Density, "density", false, "treat bin contents as densities when normalizing")
	cmd.Flags().StringVar(&opts.ExperimentLabel, "experiment", "", "experiment label drawn at the top left")
	cmd.Flags().StringVar(&opts.EnergyLabel, "energy", "", "energy/luminosity label drawn at the top right")

	// Geometry flags
	cmd.Flags().Float64Var(&opts.CanvasWidth, "width", 0, "canvas width in pixels")
	cmd.Flags().Float64Var(&opts.BaseHeight, "height", 0, "main pad height in pixels")
	cmd.Flags().Float64Var(&opts.Margin, "margin", 0, "relative gutter around each pad")
	cmd.Flags().Float64Var(&opts.ResidualFraction, "residual-fraction", 0, "canvas fraction given to the residual strip")
	cmd.Flags().IntVar(&opts.ResidualTicks, "residual-ticks", 0, "major divisions on the residual y axis")
	cmd.Flags().Float64Var(&opts.Headroom, "headroom", 0, "y axis inflation over the tallest content")

	return cmd
}

func (c *CLI) runDraw(ctx context.Context, opts pipeline.Options) error {
	runner := c.newRunner(ctx)
	prog := newProgress(loggerFromContext(ctx))

	spinner := newSpinnerWithContext(ctx, fmt.Sprintf("Drawing %s...", opts.Input))
	spinner.Start()

	result, err := runner.Execute(ctx, opts)
	if err != nil {
		spinner.StopWithError("Draw failed")
		return err
	}
	spinner.Stop()
	prog.done(fmt.Sprintf("Drew %d simulation components", result.Stats.ComponentCount))

	printSuccess("Drew figure from %s", StyleHighlight.Render(opts.Input))
	printStats(result.Stats.ComponentCount, result.Stats.BinCount)
	for _, path := range result.Outputs {
		printFile(path)
	}
	if result.Figure.Normalized() {
		printDetail("simulation rescaled to the data yield")
	}
	printNewline()
	printNextStep("Inspect a histogram", fmt.Sprintf("%s inspect %s", appName, opts.Input))
	return nil
}
