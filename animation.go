package barchart

import (
	"context"
	"fmt"
	"sync"
	"time"
)

type EaseFunc func(float64) float64

func Linear(t float64) float64 {
	return t
}

func QuadInOut(t float64) float64 {
	if t < 0.5 {
		return 2 * t * t
	}
	return 1 - 2*(1-t)*(1-t)
}

func CubicInOut(t float64) float64 {
	if t < 0.5 {
		return 4 * t * t * t
	}
	t = 2*t - 2
	return 1 + t*t*t/2
}

// EaseByName returns the easing function registered under name. An empty
// name selects QuadInOut.
func EaseByName(name string) (EaseFunc, error) {
	switch name {
	case "", "quad", "quad-in-out":
		return QuadInOut, nil
	case "cubic", "cubic-in-out":
		return CubicInOut, nil
	case "linear":
		return Linear, nil
	default:
		return nil, fmt.Errorf("%s: unknown easing", name)
	}
}

// Timing returns the progress of an animation that waits for delay and then
// goes from 0 to 1 over duration.
func Timing(elapsed, delay, duration time.Duration, ease EaseFunc) float64 {
	if ease == nil {
		ease = Linear
	}
	elapsed -= delay
	switch {
	case elapsed <= 0:
		return 0
	case duration <= 0 || elapsed >= duration:
		return 1
	default:
		return ease(float64(elapsed) / float64(duration))
	}
}

// Animation is the progress of the entrance animation. Each Reset starts a
// new generation; ticks of an older generation are ignored.
type Animation struct {
	Delay    time.Duration
	Duration time.Duration
	Ease     EaseFunc

	mu    sync.Mutex
	gen   uint64
	start time.Time
	value float64
}

func NewAnimation(delay, duration time.Duration) *Animation {
	return &Animation{
		Delay:    delay,
		Duration: duration,
		Ease:     QuadInOut,
	}
}

// Configure changes the timing of the animation without restarting it.
func (a *Animation) Configure(delay, duration time.Duration, ease EaseFunc) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.Delay = delay
	a.Duration = duration
	if ease != nil {
		a.Ease = ease
	}
}

// Reset sets the progress back to 0 and returns the token of the new
// generation.
func (a *Animation) Reset(now time.Time) uint64 {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.gen++
	a.start = now
	a.value = 0
	return a.gen
}

func (a *Animation) Generation() uint64 {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.gen
}

// At returns the progress at the given time without modifying the animation.
func (a *Animation) At(now time.Time) float64 {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.at(now)
}

func (a *Animation) at(now time.Time) float64 {
	if a.gen == 0 {
		return 0
	}
	return Timing(now.Sub(a.start), a.Delay, a.Duration, a.Ease)
}

// Progress returns the value reached once elapsed has gone by since the last
// reset.
func (a *Animation) Progress(elapsed time.Duration) float64 {
	a.mu.Lock()
	defer a.mu.Unlock()
	return Timing(elapsed, a.Delay, a.Duration, a.Ease)
}

// Tick advances the animation. It reports false when token belongs to a
// superseded generation, in which case nothing changes.
func (a *Animation) Tick(token uint64, now time.Time) (float64, bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if token != a.gen {
		return a.value, false
	}
	a.value = a.at(now)
	return a.value, true
}

// Value returns the progress computed by the last accepted tick.
func (a *Animation) Value() float64 {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.value
}

// Done reports whether the animation reached its final value.
func (a *Animation) Done(now time.Time) bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.gen > 0 && now.Sub(a.start) >= a.Delay+a.Duration
}

// Play calls fn at each frame until the animation of the generation token is
// done or superseded, or ctx is cancelled.
func (a *Animation) Play(ctx context.Context, token uint64, fps int, fn func(float64)) error {
	if fps <= 0 {
		fps = 60
	}
	tick := time.NewTicker(time.Second / time.Duration(fps))
	defer tick.Stop()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case now := <-tick.C:
			value, ok := a.Tick(token, now)
			if !ok {
				return nil
			}
			fn(value)
			if a.Done(now) {
				return nil
			}
		}
	}
}
