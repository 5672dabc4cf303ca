package barchart

import (
	"testing"
	"time"
)

func TestLoadConfig(t *testing.T) {
	cfg, err := LoadConfig("testdata/chart.toml")
	if err != nil {
		t.Fatal(err)
	}
	def := DefaultConfig()
	if cfg.PaddingHorizontal != 30 || cfg.BarWidth != 20 || cfg.YTicks != 5 {
		t.Errorf("values not decoded: %+v", cfg)
	}
	if !cfg.HasTarget || cfg.ChartColor != "steelblue" {
		t.Errorf("values not decoded: %+v", cfg)
	}
	if cfg.Delay != 100*time.Millisecond || cfg.Duration != time.Second {
		t.Errorf("durations not decoded: %s/%s", cfg.Delay, cfg.Duration)
	}
	if cfg.PaddingVertical != def.PaddingVertical || cfg.TargetTolerance != def.TargetTolerance {
		t.Errorf("defaults not kept: %+v", cfg)
	}
}

func TestLoadConfigInvalid(t *testing.T) {
	for _, file := range []string{"testdata/invalid.toml", "testdata/missing.toml"} {
		if _, err := LoadConfig(file); err == nil {
			t.Errorf("%s: error expected", file)
		}
	}
}
