package barchart

import (
	"fmt"
	"time"

	"github.com/BurntSushi/toml"
)

const (
	FontSize        = 12.0
	LoadingFontSize = 30.0
	LoadingText     = "Loading"
)

const (
	DefaultDelay    = 250 * time.Millisecond
	DefaultDuration = 750 * time.Millisecond
)

type Config struct {
	PaddingHorizontal float64 `toml:"padding-horizontal"`
	PaddingVertical   float64 `toml:"padding-vertical"`
	BarWidth          float64 `toml:"bar-width"`
	// YAxisMax overrides the computed maximum of the value axis when it is
	// greater than zero.
	YAxisMax     float64 `toml:"y-axis-max"`
	BorderRadius float64 `toml:"border-radius"`

	ChartColor      string `toml:"chart-color"`
	LabelsColor     string `toml:"labels-color"`
	TargetColor     string `toml:"target-color"`
	YAxisLinesColor string `toml:"y-axis-lines-color"`

	HasTarget       bool    `toml:"has-target"`
	YTicks          int     `toml:"y-ticks"`
	TargetHeight    float64 `toml:"target-height"`
	TargetTolerance float64 `toml:"target-tolerance"`
	Loading         bool    `toml:"loading"`
	FontSize        float64 `toml:"font-size"`

	Delay    time.Duration `toml:"delay"`
	Duration time.Duration `toml:"duration"`
	Ease     string        `toml:"ease"`
}

func DefaultConfig() Config {
	return Config{
		PaddingHorizontal: 25,
		PaddingVertical:   20,
		BarWidth:          15,
		BorderRadius:      5,
		ChartColor:        DefaultChartColor,
		LabelsColor:       DefaultLabelsColor,
		TargetColor:       DefaultTargetColor,
		YAxisLinesColor:   DefaultYAxisLineColor,
		YTicks:            4,
		TargetHeight:      150,
		TargetTolerance:   1.05,
		FontSize:          FontSize,
		Delay:             DefaultDelay,
		Duration:          DefaultDuration,
	}
}

// LoadConfig decodes the file at path on top of the default configuration.
func LoadConfig(file string) (Config, error) {
	cfg := DefaultConfig()
	if _, err := toml.DecodeFile(file, &cfg); err != nil {
		return cfg, fmt.Errorf("%s: %w", file, err)
	}
	if _, err := EaseByName(cfg.Ease); err != nil {
		return cfg, fmt.Errorf("%s: %w", file, err)
	}
	return cfg, nil
}
