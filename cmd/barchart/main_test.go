package main

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/midbel/barchart"
)

func TestFrameTime(t *testing.T) {
	total := time.Second
	tests := []struct {
		Index int
		Count int
		Want  time.Duration
	}{
		{Index: 0, Count: 1, Want: total},
		{Index: 0, Count: 5, Want: 0},
		{Index: 2, Count: 5, Want: 500 * time.Millisecond},
		{Index: 4, Count: 5, Want: total},
	}
	for _, tt := range tests {
		if got := frameTime(tt.Index, tt.Count, total); got != tt.Want {
			t.Errorf("frame %d/%d: want %s, got %s", tt.Index, tt.Count, tt.Want, got)
		}
	}
}

func TestRenderFrames(t *testing.T) {
	cfg, err := loadConfig("")
	if err != nil {
		t.Fatal(err)
	}
	var (
		now   = time.Now()
		dir   = t.TempDir()
		chart = barchart.New(cfg, barchart.BasicFace(cfg.FontSize))
	)
	chart.SetData(barchart.SamplePoints(7, 500), now)
	chart.Layout(defaultWidth, defaultHeight, now)

	if err := renderFrames(context.Background(), chart, dir, 4); err != nil {
		t.Fatal(err)
	}
	files, err := filepath.Glob(filepath.Join(dir, "frame-*.svg"))
	if err != nil {
		t.Fatal(err)
	}
	if len(files) != 4 {
		t.Fatalf("frames: want 4, got %d", len(files))
	}
	first, err := os.ReadFile(filepath.Join(dir, "frame-000.svg"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(first), `fill-opacity="0"`) {
		t.Errorf("first frame should hide the targets")
	}
	last, err := os.ReadFile(filepath.Join(dir, "frame-003.svg"))
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(string(last), `fill-opacity="0"`) {
		t.Errorf("last frame should show the targets")
	}
}

func TestLoadData(t *testing.T) {
	data, err := loadData("")
	if err != nil {
		t.Fatal(err)
	}
	if len(data) != 7 {
		t.Fatalf("sample: want 7 points, got %d", len(data))
	}
	if _, err := loadData(filepath.Join(t.TempDir(), "missing.csv")); err == nil {
		t.Fatalf("missing file should fail")
	}
}
