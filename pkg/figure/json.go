package figure

import (
	"encoding/json"
	"os"

	"github.com/hepstack/datamc/pkg/dataset"
	"github.com/hepstack/datamc/pkg/errors"
	"github.com/hepstack/datamc/pkg/layout"
)

// document is the persisted form of a drawn figure. The canvas geometry
// and the legend travel in one file so a consumer can reposition either
// without re-reading the input datasets.
type document struct {
	Title    string         `json:"title,omitempty"`
	Canvas   canvasDocument `json:"canvas"`
	Legend   legendDocument `json:"legend"`
	Labels   []Label        `json:"labels,omitempty"`
	Residual *residualDoc   `json:"residual,omitempty"`
}

type canvasDocument struct {
	Width    float64         `json:"width"`
	Height   float64         `json:"height"`
	Main     regionDocument  `json:"main"`
	Residual *regionDocument `json:"residual,omitempty"`
}

type regionDocument struct {
	Rect    layout.Rect    `json:"rect"`
	Margins layout.Margins `json:"margins"`
}

type legendDocument struct {
	Rect    layout.Rect `json:"rect"`
	Entries []string    `json:"entries"`
}

type residualDoc struct {
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
	YTitle string  `json:"y_title"`
}

func (f *Figure) printJSON(path string) error {
	geo := f.canvas.Layout

	doc := document{
		Title: f.ds.Title(),
		Canvas: canvasDocument{
			Width:  geo.CanvasWidth,
			Height: geo.CanvasHeight,
			Main: regionDocument{
				Rect:    geo.Main.Rect,
				Margins: geo.Main.Margins,
			},
		},
		Legend: legendDocument{
			Rect:    f.canvas.LegendRect,
			Entries: f.legendEntries(),
		},
		Labels: f.labels,
	}
	if geo.Residual != nil {
		doc.Canvas.Residual = &regionDocument{
			Rect:    geo.Residual.Rect,
			Margins: geo.Residual.Margins,
		}
	}
	if f.canvas.Residuals != nil {
		doc.Residual = &residualDoc{
			Min:    f.canvas.Residuals.Min,
			Max:    f.canvas.Residuals.Max,
			YTitle: dataset.ResidualYTitle,
		}
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "failed to marshal figure document")
	}
	data = append(data, '\n')

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "failed to write %q", path)
	}
	return nil
}

// legendEntries reports the legend labels in drawing order: data first,
// then the simulation components in load order.
func (f *Figure) legendEntries() []string {
	out := []string{f.ds.Data().Title()}
	for _, h := range f.ds.MC() {
		out = append(out, h.Title())
	}
	return out
}
