package barchart

import (
	"context"
	"math"
	"testing"
	"time"
)

func TestTiming(t *testing.T) {
	tests := []struct {
		Elapsed time.Duration
		Ease    EaseFunc
		Want    float64
	}{
		{Elapsed: 0, Want: 0},
		{Elapsed: 100 * time.Millisecond, Want: 0},
		{Elapsed: 250 * time.Millisecond, Want: 0},
		{Elapsed: 625 * time.Millisecond, Ease: Linear, Want: 0.5},
		{Elapsed: 625 * time.Millisecond, Ease: QuadInOut, Want: 0.5},
		{Elapsed: 437500 * time.Microsecond, Ease: QuadInOut, Want: 0.125},
		{Elapsed: time.Second, Want: 1},
		{Elapsed: time.Hour, Want: 1},
	}
	for _, tt := range tests {
		got := Timing(tt.Elapsed, DefaultDelay, DefaultDuration, tt.Ease)
		if math.Abs(got-tt.Want) > 1e-9 {
			t.Errorf("timing(%s): want %v, got %v", tt.Elapsed, tt.Want, got)
		}
	}
}

func TestEasing(t *testing.T) {
	for _, name := range []string{"", "linear", "quad", "cubic"} {
		ease, err := EaseByName(name)
		if err != nil {
			t.Errorf("%s: unexpected error: %s", name, err)
			continue
		}
		if ease(0) != 0 || ease(1) != 1 {
			t.Errorf("%s: easing should go from 0 to 1, got %v and %v", name, ease(0), ease(1))
		}
		prev := 0.0
		for i := 1; i <= 100; i++ {
			v := ease(float64(i) / 100)
			if v < prev {
				t.Errorf("%s: easing should not decrease at %d", name, i)
				break
			}
			prev = v
		}
	}
	if _, err := EaseByName("bounce"); err == nil {
		t.Errorf("unknown easing should be rejected")
	}
}

func TestAnimationReset(t *testing.T) {
	var (
		now  = time.Now()
		anim = NewAnimation(DefaultDelay, DefaultDuration)
	)
	if got := anim.At(now); got != 0 {
		t.Fatalf("animation not started: want 0, got %v", got)
	}
	fst := anim.Reset(now)
	if got := anim.At(now.Add(time.Second)); got != 1 {
		t.Fatalf("animation done: want 1, got %v", got)
	}
	if !anim.Done(now.Add(time.Second)) {
		t.Fatalf("animation should be done")
	}
	later := now.Add(2 * time.Second)
	snd := anim.Reset(later)
	if snd == fst {
		t.Fatalf("reset should start a new generation")
	}
	if got := anim.At(later); got != 0 {
		t.Fatalf("animation restarted: want 0, got %v", got)
	}
	if _, ok := anim.Tick(fst, later.Add(time.Second)); ok {
		t.Fatalf("tick of superseded generation should be ignored")
	}
	if got := anim.Value(); got != 0 {
		t.Fatalf("superseded tick should not change value, got %v", got)
	}
	if v, ok := anim.Tick(snd, later.Add(time.Second)); !ok || v != 1 {
		t.Fatalf("tick of current generation: want 1 (true), got %v (%t)", v, ok)
	}
}

func TestAnimationConfigure(t *testing.T) {
	var (
		now  = time.Now()
		anim = NewAnimation(DefaultDelay, DefaultDuration)
	)
	token := anim.Reset(now)
	anim.Configure(0, 2*time.Second, Linear)
	if got := anim.Generation(); got != token {
		t.Fatalf("configure should keep the generation: want %d, got %d", token, got)
	}
	if got := anim.Progress(time.Second); got != 0.5 {
		t.Fatalf("progress with new timing: want 0.5, got %v", got)
	}
	if got := anim.At(now.Add(time.Second)); got != 0.5 {
		t.Fatalf("value with new timing: want 0.5, got %v", got)
	}
}

func TestAnimationPlay(t *testing.T) {
	var (
		anim   = NewAnimation(0, 20*time.Millisecond)
		token  = anim.Reset(time.Now())
		values []float64
	)
	err := anim.Play(context.Background(), token, 200, func(f float64) {
		values = append(values, f)
	})
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if len(values) == 0 {
		t.Fatalf("no frames played")
	}
	if last := values[len(values)-1]; last != 1 {
		t.Fatalf("last frame: want 1, got %v", last)
	}
}

func TestAnimationPlaySuperseded(t *testing.T) {
	var (
		anim  = NewAnimation(time.Hour, time.Hour)
		token = anim.Reset(time.Now())
		count int
	)
	anim.Reset(time.Now())
	err := anim.Play(context.Background(), token, 100, func(float64) {
		count++
	})
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if count != 0 {
		t.Fatalf("superseded animation should not play, got %d frames", count)
	}
}

func TestAnimationPlayCancel(t *testing.T) {
	var (
		anim        = NewAnimation(time.Hour, time.Hour)
		token       = anim.Reset(time.Now())
		ctx, cancel = context.WithTimeout(context.Background(), 30*time.Millisecond)
	)
	defer cancel()
	err := anim.Play(ctx, token, 100, func(float64) {})
	if err == nil {
		t.Fatalf("cancelled animation should return an error")
	}
}
