package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"runtime"
	"time"

	"github.com/midbel/barchart"
	"golang.org/x/sync/errgroup"
)

const (
	defaultWidth  = 400
	defaultHeight = 300
)

// demo colors used by the sample application card.
const (
	demoLabelsColor = "#020202"
	demoTargetColor = "rgba(155, 155, 155, 0.25)"
	demoLinesColor  = "rgba(0, 0, 0, 0.5)"
)

func main() {
	var (
		config  = flag.String("config", "", "chart configuration file")
		width   = flag.Float64("width", defaultWidth, "canvas width")
		height  = flag.Float64("height", defaultHeight, "canvas height")
		frames  = flag.Int("frames", 0, "number of animation frames to render")
		dir     = flag.String("dir", "frames", "output directory of animation frames")
		result  = flag.String("file", "", "output file")
		loading = flag.Bool("loading", false, "render the loading state")
		at      = flag.Duration("at", 0, "time since the start of the animation")
		fps     = flag.Int("fps", 0, "play the animation live, rewriting file at each frame")
	)
	flag.Parse()

	cfg, err := loadConfig(*config)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if *loading {
		cfg.Loading = true
	}
	data, err := loadData(flag.Arg(0))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	var (
		now   = time.Now()
		chart = barchart.New(cfg, barchart.BasicFace(cfg.FontSize))
	)
	chart.SetData(data, now)
	token := chart.Layout(*width, *height, now)

	switch {
	case *fps > 0:
		ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
		err = playChart(ctx, *result, chart, token, *fps)
		cancel()
	case *frames > 0:
		err = renderFrames(context.Background(), chart, *dir, *frames)
	default:
		err = renderChart(*result, chart, now.Add(*at))
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
}

func loadConfig(file string) (barchart.Config, error) {
	if file != "" {
		return barchart.LoadConfig(file)
	}
	cfg := barchart.DefaultConfig()
	cfg.LabelsColor = demoLabelsColor
	cfg.TargetColor = demoTargetColor
	cfg.YAxisLinesColor = demoLinesColor
	cfg.HasTarget = true
	return cfg, nil
}

func loadData(file string) ([]barchart.Point, error) {
	if file == "" {
		return barchart.SamplePoints(7, 500), nil
	}
	r, err := os.Open(file)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	data, err := barchart.ReadPoints(r)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", file, err)
	}
	return data, nil
}

func renderChart(file string, chart *barchart.BarChart, now time.Time) error {
	var w io.Writer = os.Stdout
	if file != "" {
		f, err := os.Create(file)
		if err != nil {
			return err
		}
		defer f.Close()
		w = f
	}
	_, err := chart.Render(w, now)
	return err
}

// playChart rewrites file at every frame until the animation settles.
func playChart(ctx context.Context, file string, chart *barchart.BarChart, token uint64, fps int) error {
	if file == "" {
		return fmt.Errorf("live mode requires an output file")
	}
	var (
		anim  = chart.Animation()
		err   error
		frame int
	)
	perr := anim.Play(ctx, token, fps, func(float64) {
		if err != nil {
			return
		}
		frame++
		err = renderChart(file, chart, time.Now())
	})
	if err != nil {
		return err
	}
	if perr == nil {
		fmt.Fprintf(os.Stderr, "%s: %d frames rendered\n", file, frame)
	}
	return perr
}

// renderFrames writes count frames evenly spread over the delay and the
// duration of the entrance animation.
func renderFrames(ctx context.Context, chart *barchart.BarChart, dir string, count int) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	var (
		cfg           = chart.Config()
		anim          = chart.Animation()
		total         = cfg.Delay + cfg.Duration
		width, height = chart.Size()
		status        = chart.Status()
		sc, pos       = chart.Scales()
	)
	grp, ctx := errgroup.WithContext(ctx)
	grp.SetLimit(runtime.NumCPU())
	for i := 0; i < count; i++ {
		var (
			file    = filepath.Join(dir, fmt.Sprintf("frame-%03d.svg", i))
			elapsed = frameTime(i, count, total)
		)
		grp.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			progress := anim.Progress(elapsed)
			return writeFrame(file, width, height, func(cv barchart.Canvas) {
				switch status {
				case barchart.StatusLoading:
					barchart.DrawLoading(cv, width, height)
				case barchart.StatusChart:
					barchart.Draw(cv, sc, pos, cfg, progress)
				default:
				}
			})
		})
	}
	return grp.Wait()
}

func frameTime(i, count int, total time.Duration) time.Duration {
	if count <= 1 {
		return total
	}
	return time.Duration(int64(total) * int64(i) / int64(count-1))
}

func writeFrame(file string, width, height float64, draw func(barchart.Canvas)) error {
	f, err := os.Create(file)
	if err != nil {
		return err
	}
	defer f.Close()

	cv := barchart.NewSVGCanvas(width, height)
	draw(cv)
	if err := cv.Render(f); err != nil {
		return fmt.Errorf("%s: %w", file, err)
	}
	return nil
}
