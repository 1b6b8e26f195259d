package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hepstack/datamc/pkg/dataset"
)

// inspectCommand creates the inspect command for examining one histogram.
func (c *CLI) inspectCommand() *cobra.Command {
	var location string

	cmd := &cobra.Command{
		Use:   "inspect [file.root] [name]",
		Short: "Show summary statistics for one histogram",
		Long: `Show summary statistics for one histogram.

With a name argument the histogram is read directly. Without one an
interactive picker lists the 1D histograms at the chosen location.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := ""
			if len(args) == 2 {
				name = args[1]
			}
			return runInspect(args[0], location, name)
		},
	}

	cmd.Flags().StringVarP(&location, "location", "l", "", "directory inside the file to read from")

	return cmd
}

func runInspect(input, location, name string) error {
	src, err := dataset.OpenROOT(input)
	if err != nil {
		return err
	}
	defer src.Close()

	loc, err := src.Location(location)
	if err != nil {
		return err
	}

	if name == "" {
		name, err = pickEntry(loc.Entries())
		if err != nil {
			return err
		}
		if name == "" {
			return nil // user quit the picker
		}
	}

	h, err := loc.Histogram(name)
	if err != nil {
		return err
	}

	fmt.Println(StyleTitle.Render(h.Name()))
	if h.Title() != "" {
		printKeyValue("title", h.Title())
	}
	printKeyValue("bins", fmt.Sprintf("%d", h.Len()))
	printKeyValue("range", fmt.Sprintf("[%g, %g]", h.XMin(), h.XMax()))
	printKeyValue("sum", fmt.Sprintf("%g", h.Integral(false)))
	printKeyValue("integral", fmt.Sprintf("%g", h.Integral(true)))
	printKeyValue("underflow", fmt.Sprintf("%g", h.Underflow()))
	printKeyValue("overflow", fmt.Sprintf("%g", h.Overflow()))
	return nil
}
