package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hepstack/datamc/pkg/dataset"
)

// lsCommand creates the ls command for listing the contents of a file.
func (c *CLI) lsCommand() *cobra.Command {
	var location string

	cmd := &cobra.Command{
		Use:   "ls [file.root]",
		Short: "List the histograms stored in a ROOT file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLs(args[0], location)
		},
	}

	cmd.Flags().StringVarP(&location, "location", "l", "", "directory inside the file to read from")

	return cmd
}

func runLs(input, location string) error {
	src, err := dataset.OpenROOT(input)
	if err != nil {
		return err
	}
	defer src.Close()

	loc, err := src.Location(location)
	if err != nil {
		return err
	}

	entries := loc.Entries()
	if len(entries) == 0 {
		printWarning("no entries found")
		return nil
	}

	fmt.Println(StyleTitle.Render(input))
	hists := 0
	for _, e := range entries {
		kind := "other"
		if e.Hist1D {
			kind = "1D histogram"
			hists++
		}
		printKeyValue(e.Name, StyleDim.Render(kind))
	}
	printNewline()
	printDetail("%d entries, %d 1D histograms", len(entries), hists)
	return nil
}
