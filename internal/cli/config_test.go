package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/hepstack/datamc/pkg/errors"
	"github.com/hepstack/datamc/pkg/pipeline"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `
[figure]
canvas_width = 1200.0
residual_min = -0.5
residual_max = 0.5
residual_ticks = 5

[labels]
experiment = "My Experiment"

[export]
formats = ["png", "json"]
`)

	cfg, err := loadConfig(path)
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	if cfg.Figure.CanvasWidth != 1200 {
		t.Errorf("CanvasWidth = %v, want 1200", cfg.Figure.CanvasWidth)
	}
	if cfg.Figure.ResidualTicks != 5 {
		t.Errorf("ResidualTicks = %d, want 5", cfg.Figure.ResidualTicks)
	}
	if cfg.Labels.Experiment != "My Experiment" {
		t.Errorf("Experiment = %q", cfg.Labels.Experiment)
	}
	if len(cfg.Export.Formats) != 2 {
		t.Errorf("Formats = %v", cfg.Export.Formats)
	}
}

func TestLoadConfigErrors(t *testing.T) {
	t.Run("missing explicit file", func(t *testing.T) {
		_, err := loadConfig(filepath.Join(t.TempDir(), "absent.toml"))
		if !errors.Is(err, errors.ErrCodeInvalidConfiguration) {
			t.Errorf("error = %v, want code %s", err, errors.ErrCodeInvalidConfiguration)
		}
	})

	t.Run("malformed toml", func(t *testing.T) {
		path := writeConfig(t, "[figure\ncanvas_width = ")
		_, err := loadConfig(path)
		if !errors.Is(err, errors.ErrCodeInvalidConfiguration) {
			t.Errorf("error = %v, want code %s", err, errors.ErrCodeInvalidConfiguration)
		}
	})
}

func TestConfigApplyPrecedence(t *testing.T) {
	var cfg Config
	cfg.Figure.CanvasWidth = 1200
	cfg.Figure.ResidualMin = -0.5
	cfg.Figure.ResidualMax = 0.5
	cfg.Labels.Energy = "13 TeV"
	cfg.Export.Formats = []string{"svg"}

	// Flag-set values survive, unset ones come from the config.
	opts := pipeline.Options{
		CanvasWidth: 1600,
		EnergyLabel: "8 TeV",
	}
	cfg.apply(&opts)

	if opts.CanvasWidth != 1600 {
		t.Errorf("CanvasWidth = %v, flag value should win", opts.CanvasWidth)
	}
	if opts.EnergyLabel != "8 TeV" {
		t.Errorf("EnergyLabel = %q, flag value should win", opts.EnergyLabel)
	}
	if opts.ResidualMin != -0.5 || opts.ResidualMax != 0.5 {
		t.Errorf("residual range = [%v, %v], want config values", opts.ResidualMin, opts.ResidualMax)
	}
	if len(opts.Formats) != 1 || opts.Formats[0] != "svg" {
		t.Errorf("Formats = %v, want config values", opts.Formats)
	}
}
