package cli

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/hepstack/datamc/pkg/errors"
	"github.com/hepstack/datamc/pkg/pipeline"
)

// configFileName is the per-user configuration file, looked up under the
// XDG config directory (~/.config/datamc/config.toml).
const configFileName = "config.toml"

// Config mirrors the figure options that make sense as per-user defaults.
// Flags given on the command line win over config file values.
type Config struct {
	Figure struct {
		CanvasWidth       float64 `toml:"canvas_width"`
		BaseHeight        float64 `toml:"base_height"`
		Margin            float64 `toml:"margin"`
		MainWidthFraction float64 `toml:"main_width_fraction"`
		ResidualFraction  float64 `toml:"residual_fraction"`
		ResidualMin       float64 `toml:"residual_min"`
		ResidualMax       float64 `toml:"residual_max"`
		ResidualTicks     int     `toml:"residual_ticks"`
		Headroom          float64 `toml:"headroom"`
	} `toml:"figure"`

	Labels struct {
		Experiment string `toml:"experiment"`
		Energy     string `toml:"energy"`
	} `toml:"labels"`

	Export struct {
		Formats []string `toml:"formats"`
	} `toml:"export"`
}

// loadConfig reads the config file at path. When path is empty the default
// location is tried, and a missing default file yields an empty config.
func loadConfig(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		dir, err := configDir()
		if err != nil {
			return &Config{}, nil
		}
		path = filepath.Join(dir, configFileName)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && os.IsNotExist(err) {
			return &Config{}, nil
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidConfiguration, err, "failed to read config %q", path)
	}

	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfiguration, err, "failed to parse config %q", path)
	}
	return &cfg, nil
}

// apply copies config values onto opts wherever opts still holds the zero
// value, so flags and the config file compose in that order.
func (c *Config) apply(opts *pipeline.Options) {
	if opts.CanvasWidth == 0 {
		opts.CanvasWidth = c.Figure.CanvasWidth
	}
	if opts.BaseHeight == 0 {
		opts.BaseHeight = c.Figure.BaseHeight
	}
	if opts.Margin == 0 {
		opts.Margin = c.Figure.Margin
	}
	if opts.MainWidthFraction == 0 {
		opts.MainWidthFraction = c.Figure.MainWidthFraction
	}
	if opts.ResidualFraction == 0 {
		opts.ResidualFraction = c.Figure.ResidualFraction
	}
	if opts.ResidualMin == 0 && opts.ResidualMax == 0 {
		opts.ResidualMin = c.Figure.ResidualMin
		opts.ResidualMax = c.Figure.ResidualMax
	}
	if opts.ResidualTicks == 0 {
		opts.ResidualTicks = c.Figure.ResidualTicks
	}
	if opts.Headroom == 0 {
		opts.Headroom = c.Figure.Headroom
	}
	if opts.ExperimentLabel == "" {
		opts.ExperimentLabel = c.Labels.Experiment
	}
	if opts.EnergyLabel == "" {
		opts.EnergyLabel = c.Labels.Energy
	}
	if len(opts.Formats) == 0 && len(c.Export.Formats) > 0 {
		opts.Formats = c.Export.Formats
	}
}

// configDir returns the config directory using the XDG standard
// (~/.config/datamc/).
func configDir() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName), nil
}
