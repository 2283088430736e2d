// Package runner drives a game at a fixed tick rate: poll input, apply at
// most one turn, advance the simulation, draw, then wait for the next tick.
package runner

import (
	"context"
	"log"
	"time"

	"snake-torus/game"
	"snake-torus/input"
	"snake-torus/ui"
)

// Clock blocks until the next tick boundary.
type Clock interface {
	Wait(ctx context.Context) error
}

// Ticker is a Clock backed by time.Ticker.
type Ticker struct {
	ticker *time.Ticker
}

// NewTicker returns a clock firing once per interval.
func NewTicker(interval time.Duration) *Ticker {
	return &Ticker{ticker: time.NewTicker(interval)}
}

func (t *Ticker) Wait(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.ticker.C:
		return nil
	}
}

func (t *Ticker) Stop() {
	t.ticker.Stop()
}

// Runner owns the only live reference chain to the game while it runs.
type Runner struct {
	state    *game.GameState
	ctrl     *game.Controller
	renderer *ui.Renderer
	surface  ui.Surface
	source   input.Source
	clock    Clock
	logger   *log.Logger

	startTime time.Time
	ticks     int
	reported  bool
}

func New(state *game.GameState, renderer *ui.Renderer, surface ui.Surface, source input.Source, clock Clock, logger *log.Logger) *Runner {
	return &Runner{
		state:    state,
		ctrl:     game.NewController(state),
		renderer: renderer,
		surface:  surface,
		source:   source,
		clock:    clock,
		logger:   logger,
	}
}

// Step runs one full iteration and reports whether a quit was requested.
// A quit still lets the current iteration finish.
func (r *Runner) Step() (quit bool) {
	if r.startTime.IsZero() {
		r.startTime = time.Now()
	}

	r.ctrl.BeginTick()
	for _, ev := range r.source.Poll() {
		switch ev.Kind {
		case input.Quit:
			quit = true
		case input.Move:
			r.ctrl.Propose(ev.Direction)
		}
	}

	r.state.Update()
	r.ticks++
	if r.state.WinState().Over() && !r.reported {
		r.reported = true
		r.logger.Printf("game over: %s after %d steps, score %d, %s",
			r.state.WinState(), r.state.Steps(), r.state.Score(), r.Elapsed().Round(time.Millisecond))
	}

	r.renderer.Draw(r.surface)
	return quit
}

// Run loops until a quit event arrives or ctx is cancelled. A quit returns
// nil; cancellation returns the context error.
func (r *Runner) Run(ctx context.Context) error {
	for {
		if r.Step() {
			return nil
		}
		if err := r.clock.Wait(ctx); err != nil {
			return err
		}
	}
}

// Ticks counts completed iterations.
func (r *Runner) Ticks() int {
	return r.ticks
}

// Elapsed is the wall time since the first iteration.
func (r *Runner) Elapsed() time.Duration {
	if r.startTime.IsZero() {
		return 0
	}
	return time.Since(r.startTime)
}
