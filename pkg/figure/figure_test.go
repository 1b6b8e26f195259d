package figure

import (
	"encoding/json"
	"math"
	"os"
	"path/filepath"
	"testing"

	"gonum.org/v1/gonum/floats/scalar"

	"github.com/hepstack/datamc/pkg/dataset"
	"github.com/hepstack/datamc/pkg/errors"
	"github.com/hepstack/datamc/pkg/hist"
	"github.com/hepstack/datamc/pkg/layout"
)

const tol = 1e-12

func mustHist(t *testing.T, name, title string, contents []float64) *hist.Histogram {
	t.Helper()
	edges := make([]float64, len(contents)+1)
	errs := make([]float64, len(contents))
	for i := range edges {
		edges[i] = float64(i)
	}
	for i, c := range contents {
		errs[i] = math.Sqrt(math.Abs(c))
	}
	h, err := hist.New(name, title, edges, contents, errs, 0, 0)
	if err != nil {
		t.Fatalf("hist.New(%q): %v", name, err)
	}
	return h
}

func mustDataset(t *testing.T) *dataset.Dataset {
	t.Helper()
	ds, err := dataset.NewDataset(
		"Muon p_{T};p_{T} [GeV];Events",
		mustHist(t, "data", "Data", []float64{12, 20, 8}),
		[]*hist.Histogram{
			mustHist(t, "signal", "Signal", []float64{4, 10, 2}),
			mustHist(t, "background", "Background", []float64{6, 8, 5}),
		},
	)
	if err != nil {
		t.Fatalf("NewDataset: %v", err)
	}
	return ds
}

func TestDrawComposesCanvas(t *testing.T) {
	f := New(mustDataset(t))
	if err := f.Draw(); err != nil {
		t.Fatalf("Draw: %v", err)
	}

	c := f.Canvas()
	if c == nil {
		t.Fatal("Canvas is nil after Draw")
	}
	if c.Main == nil {
		t.Fatal("main plot is nil")
	}
	if c.Residual != nil {
		t.Error("residual plot present without a residual request")
	}
	if c.Main.X.Min != 0 || c.Main.X.Max != 3 {
		t.Errorf("x range = [%v, %v], want [0, 3]", c.Main.X.Min, c.Main.X.Max)
	}

	// Tallest stack bin is 10+8=18 at index 1, below the data maximum 20.
	want := DefaultStyle().HeadroomFactor * 20
	if !scalar.EqualWithinAbs(c.Main.Y.Max, want, tol) {
		t.Errorf("y max = %v, want %v", c.Main.Y.Max, want)
	}

	// Legend: data plus two components, box anchored at the canvas top.
	wantY0 := legendTop - 3*legendEntryFraction
	if !scalar.EqualWithinAbs(c.LegendRect.Y0, wantY0, tol) {
		t.Errorf("legend y0 = %v, want %v", c.LegendRect.Y0, wantY0)
	}
	if c.LegendRect.X0 != legendLeft || c.LegendRect.X1 != legendRight {
		t.Errorf("legend x span = [%v, %v]", c.LegendRect.X0, c.LegendRect.X1)
	}
}

func TestDrawWithResiduals(t *testing.T) {
	f := New(mustDataset(t))
	if err := f.RequestResiduals(true, -0.5, 0.5); err != nil {
		t.Fatalf("RequestResiduals: %v", err)
	}
	if err := f.Draw(); err != nil {
		t.Fatalf("Draw: %v", err)
	}

	c := f.Canvas()
	if c.Residual == nil || c.Residuals == nil {
		t.Fatal("residual strip missing after request")
	}
	if c.Residual.Y.Min != -0.5 || c.Residual.Y.Max != 0.5 {
		t.Errorf("residual y range = [%v, %v], want [-0.5, 0.5]", c.Residual.Y.Min, c.Residual.Y.Max)
	}
	if c.Residual.X.Min != c.Main.X.Min || c.Residual.X.Max != c.Main.X.Max {
		t.Error("residual x range does not match the main pad")
	}
	if c.Layout.Residual == nil {
		t.Error("layout has no residual region")
	}
	// Bin 1: data 20 over MC 18.
	if got, want := c.Residuals.Hist.Content(1), 2.0/18.0; !scalar.EqualWithinAbs(got, want, tol) {
		t.Errorf("residual bin 1 = %v, want %v", got, want)
	}
}

func TestResidualRangeClampsOutliers(t *testing.T) {
	// Residuals [1.0, -0.5, 0] all fall outside or on the edge of the
	// display range; the axis must hold the clamp while the series keeps
	// the raw values.
	ds, err := dataset.NewDataset(
		"Muon p_{T};p_{T} [GeV];Events",
		mustHist(t, "data", "Data", []float64{20, 5, 10}),
		[]*hist.Histogram{
			mustHist(t, "signal", "Signal", []float64{10, 10, 10}),
		},
	)
	if err != nil {
		t.Fatalf("NewDataset: %v", err)
	}

	f := New(ds)
	if err := f.RequestResiduals(true, dataset.DefaultResidualMin, dataset.DefaultResidualMax); err != nil {
		t.Fatalf("RequestResiduals: %v", err)
	}
	if err := f.Draw(); err != nil {
		t.Fatalf("Draw: %v", err)
	}

	c := f.Canvas()
	if c.Residual.Y.Min != dataset.DefaultResidualMin || c.Residual.Y.Max != dataset.DefaultResidualMax {
		t.Errorf("residual y range = [%v, %v], want [%v, %v]",
			c.Residual.Y.Min, c.Residual.Y.Max, dataset.DefaultResidualMin, dataset.DefaultResidualMax)
	}
	if got := c.Residuals.Hist.Content(0); !scalar.EqualWithinAbs(got, 1.0, tol) {
		t.Errorf("residual bin 0 = %v, want 1", got)
	}
}

func TestConfigurationSealedAfterDraw(t *testing.T) {
	f := New(mustDataset(t))
	if err := f.Draw(); err != nil {
		t.Fatalf("Draw: %v", err)
	}

	tests := []struct {
		name string
		call func() error
	}{
		{"SetGeometry", func() error { return f.SetGeometry(layout.DefaultSpec()) }},
		{"SetStyle", func() error { return f.SetStyle(DefaultStyle()) }},
		{"RequestResiduals", func() error { return f.RequestResiduals(true, -1, 1) }},
		{"NormalizeToData", func() error { return f.NormalizeToData(false) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.call()
			if !errors.Is(err, errors.ErrCodeIllegalState) {
				t.Errorf("error = %v, want code %s", err, errors.ErrCodeIllegalState)
			}
		})
	}
}

func TestRedrawRecomputes(t *testing.T) {
	f := New(mustDataset(t))
	if err := f.Draw(); err != nil {
		t.Fatalf("Draw: %v", err)
	}
	first := f.Canvas()
	if err := f.Draw(); err != nil {
		t.Fatalf("second Draw: %v", err)
	}
	if f.Canvas() == first {
		t.Error("redraw did not replace the canvas")
	}
}

func TestNormalizeBeforeDraw(t *testing.T) {
	f := New(mustDataset(t))
	if err := f.NormalizeToData(false); err != nil {
		t.Fatalf("NormalizeToData: %v", err)
	}
	if !f.Normalized() {
		t.Error("Normalized() = false after normalization")
	}
	if err := f.Draw(); err != nil {
		t.Fatalf("Draw: %v", err)
	}
	// Data 40 over MC 35, so the stack maximum beats the data maximum.
	mc := f.Histogram("signal")
	if got, want := mc.Content(1), 10*40.0/35.0; !scalar.EqualWithinAbs(got, want, tol) {
		t.Errorf("normalized signal bin 1 = %v, want %v", got, want)
	}
}

func TestLabels(t *testing.T) {
	f := New(mustDataset(t))

	if err := f.AddLabel(LabelExperiment, "too early"); !errors.Is(err, errors.ErrCodeIllegalState) {
		t.Errorf("pre-draw label error = %v, want code %s", err, errors.ErrCodeIllegalState)
	}

	if err := f.Draw(); err != nil {
		t.Fatalf("Draw: %v", err)
	}
	if err := f.AddExperimentLabel("My Experiment"); err != nil {
		t.Fatalf("AddExperimentLabel: %v", err)
	}
	if err := f.AddEnergyLabel("13 TeV"); err != nil {
		t.Fatalf("AddEnergyLabel: %v", err)
	}
	if err := f.AddLabel("banner", "nope"); !errors.Is(err, errors.ErrCodeInvalidConfiguration) {
		t.Errorf("unknown kind error = %v, want code %s", errors.GetCode(err), errors.ErrCodeInvalidConfiguration)
	}

	labels := f.Labels()
	if len(labels) != 2 {
		t.Fatalf("got %d labels, want 2", len(labels))
	}
	exp, eng := labels[0], labels[1]
	if exp.X != 0.16 || exp.Y != 0.91 || exp.AlignRight {
		t.Errorf("experiment label placement = %+v", exp)
	}
	if eng.X != 0.85 || eng.Y != 0.91 || !eng.AlignRight {
		t.Errorf("energy label placement = %+v", eng)
	}
}

func TestRescaleForResidual(t *testing.T) {
	geo, err := layout.Compute(layout.Spec{
		CanvasWidth:       layout.DefaultCanvasWidth,
		BaseHeight:        layout.DefaultBaseHeight,
		Margin:            layout.DefaultMargin,
		MainWidthFraction: layout.DefaultMainWidthFraction,
		WantResiduals:     true,
		ResidualFraction:  layout.DefaultResidualFraction,
	})
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}
	want := relLabelSize * geo.Main.HeightFrac() / geo.Residual.HeightFrac()
	if got := rescaleForResidual(relLabelSize, geo); !scalar.EqualWithinAbs(got, want, tol) {
		t.Errorf("rescaleForResidual = %v, want %v", got, want)
	}
}

func TestPrintStates(t *testing.T) {
	f := New(mustDataset(t))
	if err := f.Print("out.png"); !errors.Is(err, errors.ErrCodeIllegalState) {
		t.Errorf("pre-draw print error code = %s, want %s", errors.GetCode(err), errors.ErrCodeIllegalState)
	}

	if err := f.Draw(); err != nil {
		t.Fatalf("Draw: %v", err)
	}
	if err := f.Print("out"); !errors.Is(err, errors.ErrCodeInvalidFormat) {
		t.Errorf("missing extension error code = %s, want %s", errors.GetCode(err), errors.ErrCodeInvalidFormat)
	}
	if err := f.Print("out.docx"); !errors.Is(err, errors.ErrCodeInvalidFormat) {
		t.Errorf("unknown format error code = %s, want %s", errors.GetCode(err), errors.ErrCodeInvalidFormat)
	}
}

func TestPrintJSON(t *testing.T) {
	f := New(mustDataset(t))
	if err := f.RequestResiduals(true, dataset.DefaultResidualMin, dataset.DefaultResidualMax); err != nil {
		t.Fatalf("RequestResiduals: %v", err)
	}
	if err := f.Draw(); err != nil {
		t.Fatalf("Draw: %v", err)
	}
	if err := f.AddEnergyLabel("13 TeV"); err != nil {
		t.Fatalf("AddEnergyLabel: %v", err)
	}

	path := filepath.Join(t.TempDir(), "figure.json")
	if err := f.Print(path); err != nil {
		t.Fatalf("Print: %v", err)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	var doc document
	if err := json.Unmarshal(raw, &doc); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}

	if doc.Canvas.Width != layout.DefaultCanvasWidth {
		t.Errorf("canvas width = %v, want %v", doc.Canvas.Width, layout.DefaultCanvasWidth)
	}
	if doc.Canvas.Residual == nil {
		t.Error("document has no residual region")
	}
	if doc.Residual == nil || doc.Residual.YTitle != dataset.ResidualYTitle {
		t.Errorf("residual axis block = %+v", doc.Residual)
	}
	want := []string{"Data", "Signal", "Background"}
	if len(doc.Legend.Entries) != len(want) {
		t.Fatalf("legend entries = %v, want %v", doc.Legend.Entries, want)
	}
	for i, e := range want {
		if doc.Legend.Entries[i] != e {
			t.Errorf("legend entry %d = %q, want %q", i, doc.Legend.Entries[i], e)
		}
	}
	if len(doc.Labels) != 1 || doc.Labels[0].Kind != LabelEnergy {
		t.Errorf("labels = %+v", doc.Labels)
	}
}

func TestPrintImage(t *testing.T) {
	f := New(mustDataset(t))
	if err := f.RequestResiduals(true, dataset.DefaultResidualMin, dataset.DefaultResidualMax); err != nil {
		t.Fatalf("RequestResiduals: %v", err)
	}
	if err := f.Draw(); err != nil {
		t.Fatalf("Draw: %v", err)
	}
	if err := f.AddExperimentLabel("My Experiment"); err != nil {
		t.Fatalf("AddExperimentLabel: %v", err)
	}

	path := filepath.Join(t.TempDir(), "figure.png")
	if err := f.Print(path); err != nil {
		t.Fatalf("Print: %v", err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("Stat: %v", err)
	}
	if info.Size() == 0 {
		t.Error("rendered file is empty")
	}
}
