// Package config loads the static settings of a game session: window and
// grid size, border, colours, tick rate, seed and display backend.
//
// Values come from Default, then an optional JSON file (-config), then
// command-line flags, each layer overriding the previous one.
package config

import (
	"encoding/json"
	"flag"
	"os"
	"slices"
	"time"

	"github.com/pkg/errors"

	"snake-torus/game/types"
	"snake-torus/platform"
	"snake-torus/ui"
)

// ErrInvalid is returned by Validate.
var ErrInvalid = errors.New("invalid config")

type Config struct {
	Width    int        `json:"width"`
	Height   int        `json:"height"`
	Rows     int        `json:"rows"`
	Cols     int        `json:"cols"`
	Border   float64    `json:"border"`
	TickRate int        `json:"tick_rate"`
	Seed     uint64     `json:"seed"`
	Backend  string     `json:"backend"`
	Colors   ui.Palette `json:"colors"`
}

// Default returns the settings used when nothing else is given.
func Default() Config {
	return Config{
		Width:    800,
		Height:   800,
		Rows:     20,
		Cols:     20,
		Border:   2,
		TickRate: 10,
		Seed:     0, // 0 means seed from the clock
		Backend:  platform.Raylib,
		Colors: ui.Palette{
			Grid:  ui.Color{R: 40, G: 40, B: 40},
			Food:  ui.Color{R: 220, G: 50, B: 50},
			Snake: ui.Color{R: 0, G: 255, B: 0},
			Head:  ui.Color{R: 255, G: 0, B: 0},
		},
	}
}

// Load builds a Config from args (without the program name).
func Load(args []string) (Config, error) {
	cfg := Default()

	fs := flag.NewFlagSet("snake", flag.ContinueOnError)
	path := fs.String("config", "", "JSON file with settings; flags override it")
	fs.IntVar(&cfg.Width, "width", cfg.Width, "window width in pixels")
	fs.IntVar(&cfg.Height, "height", cfg.Height, "window height in pixels")
	fs.IntVar(&cfg.Rows, "rows", cfg.Rows, "grid rows")
	fs.IntVar(&cfg.Cols, "cols", cfg.Cols, "grid columns")
	fs.Float64Var(&cfg.Border, "border", cfg.Border, "gap between cells in pixels")
	fs.IntVar(&cfg.TickRate, "tick", cfg.TickRate, "simulation ticks per second")
	fs.Uint64Var(&cfg.Seed, "seed", cfg.Seed, "food placement seed (0 = random)")
	fs.StringVar(&cfg.Backend, "backend", cfg.Backend, "display backend: raylib or terminal")
	fs.TextVar(&cfg.Colors.Grid, "grid-color", cfg.Colors.Grid, "empty cell colour (#rrggbb)")
	fs.TextVar(&cfg.Colors.Food, "food-color", cfg.Colors.Food, "food colour (#rrggbb)")
	fs.TextVar(&cfg.Colors.Snake, "snake-color", cfg.Colors.Snake, "tail colour (#rrggbb)")
	fs.TextVar(&cfg.Colors.Head, "head-color", cfg.Colors.Head, "head colour (#rrggbb)")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if *path != "" {
		explicit := make(map[string]string)
		fs.Visit(func(f *flag.Flag) {
			explicit[f.Name] = f.Value.String()
		})
		if err := cfg.readFile(*path); err != nil {
			return Config{}, err
		}
		for name, value := range explicit {
			if err := fs.Set(name, value); err != nil {
				return Config{}, errors.Wrapf(err, "flag -%s", name)
			}
		}
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) readFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrap(err, "read config")
	}
	if err := json.Unmarshal(data, c); err != nil {
		return errors.Wrapf(err, "parse config %s", path)
	}
	return nil
}

// Validate checks every field and that the grid fits the window.
func (c Config) Validate() error {
	switch {
	case c.Rows <= 0 || c.Cols <= 0:
		return errors.Wrapf(ErrInvalid, "grid %dx%d must be positive", c.Rows, c.Cols)
	case c.Width <= 0 || c.Height <= 0:
		return errors.Wrapf(ErrInvalid, "window %dx%d must be positive", c.Width, c.Height)
	case c.Border < 0:
		return errors.Wrapf(ErrInvalid, "border %v is negative", c.Border)
	case c.TickRate <= 0:
		return errors.Wrapf(ErrInvalid, "tick rate %d must be positive", c.TickRate)
	case !slices.Contains(platform.Backends, c.Backend):
		return errors.Wrapf(ErrInvalid, "backend %q not one of %v", c.Backend, platform.Backends)
	}
	if _, err := ui.NewLayout(c.Width, c.Height, float32(c.Border), c.Grid()); err != nil {
		return errors.Wrap(ErrInvalid, err.Error())
	}
	return nil
}

func (c Config) Grid() types.Grid {
	return types.Grid{Rows: c.Rows, Cols: c.Cols}
}

// Layout returns the renderer settings for a width x height drawing area.
func (c Config) Layout(width, height int) ui.LayoutConfig {
	return ui.LayoutConfig{
		Width:   width,
		Height:  height,
		Border:  float32(c.Border),
		Palette: c.Colors,
	}
}

// TickInterval is the time between simulation ticks.
func (c Config) TickInterval() time.Duration {
	return time.Second / time.Duration(c.TickRate)
}
