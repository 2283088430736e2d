package main

import (
	"bytes"
	"context"
	"flag"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"snake-torus/config"
	"snake-torus/game"
	"snake-torus/platform"
	"snake-torus/runner"
	"snake-torus/ui"
)

func main() {
	cfg, err := config.Load(os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	session := uuid.New().String()[:8]

	// The terminal backend owns stdout and stderr while it runs, so its log
	// lines are held back until the screen is released.
	var held bytes.Buffer
	var out io.Writer = os.Stderr
	if cfg.Backend == platform.Terminal {
		out = &held
	}
	logger := log.New(out, "[snake "+session+"] ", log.LstdFlags)
	flush := func() {
		if held.Len() > 0 {
			os.Stderr.Write(held.Bytes())
			held.Reset()
		}
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	logger.Printf("grid %s, %d Hz, backend %s, seed %d", cfg.Grid(), cfg.TickRate, cfg.Backend, seed)

	state, err := game.New(cfg.Grid(), game.WithSeed(seed))
	if err != nil {
		log.Fatalf("game: %v", err)
	}

	window, err := platform.Open(cfg.Backend, cfg.Width, cfg.Height, "Snake")
	if err != nil {
		flush()
		log.Fatalf("window: %v", err)
	}

	layout := cfg.Layout(cfg.Width, cfg.Height)
	if cfg.Backend == platform.Terminal {
		// Terminal pixels are whole cells already; a gap would eat the grid.
		layout.Width, layout.Height = window.Size()
		layout.Border = 0
	}
	renderer, err := ui.NewRenderer(state, layout)
	if err != nil {
		window.Close()
		flush()
		log.Fatalf("renderer: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	ticker := runner.NewTicker(cfg.TickInterval())
	defer ticker.Stop()

	r := runner.New(state, renderer, window, window, ticker, logger)
	runErr := r.Run(ctx)
	window.Close()

	if runErr != nil && !errors.Is(runErr, context.Canceled) {
		logger.Printf("stopped: %v", runErr)
	}
	logger.Printf("session over: %s, score %d, %d steps, %d ticks in %s",
		state.WinState(), state.Score(), state.Steps(), r.Ticks(), r.Elapsed().Round(time.Millisecond))
	flush()
}
