package runner

import (
	"bytes"
	"context"
	"log"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"snake-torus/game"
	"snake-torus/game/types"
	"snake-torus/input"
	"snake-torus/ui"
)

// scriptedSource returns one batch of events per Poll.
type scriptedSource struct {
	batches [][]input.Event
	polls   int
}

func (s *scriptedSource) Poll() []input.Event {
	defer func() { s.polls++ }()
	if s.polls < len(s.batches) {
		return s.batches[s.polls]
	}
	return nil
}

type countingSurface struct {
	presents int
}

func (s *countingSurface) Clear(ui.Color)            {}
func (s *countingSurface) FillRect(ui.Rect, ui.Color) {}
func (s *countingSurface) Present()                  { s.presents++ }

// manualClock allows a fixed number of waits, then cancels.
type manualClock struct {
	waits  int
	limit  int
	cancel context.CancelFunc
}

func (c *manualClock) Wait(ctx context.Context) error {
	c.waits++
	if c.waits >= c.limit && c.cancel != nil {
		c.cancel()
	}
	return ctx.Err()
}

func newRunner(t *testing.T, src input.Source, clock Clock, opts ...game.Option) (*Runner, *game.GameState, *countingSurface, *bytes.Buffer) {
	t.Helper()
	state, err := game.New(types.Grid{Rows: 5, Cols: 5}, opts...)
	if err != nil {
		t.Fatalf("game.New() error = %v", err)
	}
	renderer, err := ui.NewRenderer(state, ui.LayoutConfig{Width: 100, Height: 100})
	if err != nil {
		t.Fatalf("ui.NewRenderer() error = %v", err)
	}
	surface := &countingSurface{}
	var logs bytes.Buffer
	r := New(state, renderer, surface, src, clock, log.New(&logs, "", 0))
	return r, state, surface, &logs
}

func TestStepAppliesOnlyFirstTurn(t *testing.T) {
	src := &scriptedSource{batches: [][]input.Event{{
		input.MoveEvent(types.Left), // reverse, rejected
		input.MoveEvent(types.Down),
		input.MoveEvent(types.Left), // budget spent
	}}}
	r, state, surface, _ := newRunner(t, src, nil, game.WithSeed(1), game.WithFood(types.Point{Row: 4, Col: 4}))

	if r.Step() {
		t.Fatal("Step() reported quit")
	}
	if state.Direction() != types.Down {
		t.Errorf("Direction() = %v, want down", state.Direction())
	}
	want := []types.Point{{Row: 0, Col: 1}, {Row: 1, Col: 1}}
	if diff := cmp.Diff(want, state.Snake()); diff != "" {
		t.Errorf("snake mismatch (-want +got):\n%s", diff)
	}
	if surface.presents != 1 {
		t.Errorf("presents = %d, want 1", surface.presents)
	}
}

func TestQuitFinishesIteration(t *testing.T) {
	src := &scriptedSource{batches: [][]input.Event{
		nil,
		{input.QuitEvent()},
	}}
	clock := &manualClock{limit: 100}
	r, state, surface, _ := newRunner(t, src, clock, game.WithSeed(1), game.WithFood(types.Point{Row: 4, Col: 4}))

	if err := r.Run(context.Background()); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if r.Ticks() != 2 {
		t.Errorf("Ticks() = %d, want 2", r.Ticks())
	}
	if state.Steps() != 2 {
		t.Errorf("Steps() = %d, want 2 (the quitting tick still updates)", state.Steps())
	}
	if surface.presents != 2 {
		t.Errorf("presents = %d, want 2", surface.presents)
	}
	if clock.waits != 1 {
		t.Errorf("waits = %d, want 1", clock.waits)
	}
}

func TestRunStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	clock := &manualClock{limit: 3, cancel: cancel}
	r, _, _, _ := newRunner(t, &scriptedSource{}, clock, game.WithSeed(1))

	if err := r.Run(ctx); err != context.Canceled {
		t.Fatalf("Run() error = %v, want context.Canceled", err)
	}
	if r.Ticks() != 3 {
		t.Errorf("Ticks() = %d, want 3", r.Ticks())
	}
}

func TestGameOverLoggedOnce(t *testing.T) {
	src := &scriptedSource{batches: [][]input.Event{
		{input.MoveEvent(types.Down)},
		{input.MoveEvent(types.Left)},
		{input.MoveEvent(types.Up)},
	}}
	body := []types.Point{{Row: 1, Col: 1}, {Row: 1, Col: 2}, {Row: 1, Col: 3}, {Row: 1, Col: 4}}
	r, state, _, logs := newRunner(t, src, nil,
		game.WithSeed(1),
		game.WithSnake(body, types.Right),
		game.WithFood(types.Point{Row: 4, Col: 4}))

	// Down, left, up curls the head back into the body.
	for i := 0; i < 6; i++ {
		r.Step()
	}
	if state.WinState() != types.Loss {
		t.Fatalf("WinState() = %v, want loss", state.WinState())
	}
	if n := strings.Count(logs.String(), "game over"); n != 1 {
		t.Errorf("logged game over %d times, want 1:\n%s", n, logs.String())
	}
	if !strings.Contains(logs.String(), "loss") {
		t.Errorf("log %q does not name the outcome", logs.String())
	}
}

func TestTickerWait(t *testing.T) {
	ticker := NewTicker(time.Millisecond)
	defer ticker.Stop()

	if err := ticker.Wait(context.Background()); err != nil {
		t.Fatalf("Wait() error = %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	slow := NewTicker(time.Hour)
	defer slow.Stop()
	if err := slow.Wait(ctx); err != context.Canceled {
		t.Errorf("Wait() on cancelled context = %v, want %v", err, context.Canceled)
	}
}
