package config

import (
	"flag"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/pkg/errors"

	"snake-torus/ui"
)

func TestDefaultIsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("Default().Validate() = %v", err)
	}
	if got := Default().TickInterval(); got != 100*time.Millisecond {
		t.Errorf("TickInterval() = %v, want 100ms", got)
	}
}

func TestLoadFlags(t *testing.T) {
	cfg, err := Load([]string{"-rows", "8", "-cols", "12", "-seed", "99", "-head-color", "#0000ff", "-backend", "terminal", "-border", "0"})
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	want := Default()
	want.Rows, want.Cols, want.Seed, want.Backend, want.Border = 8, 12, 99, "terminal", 0
	want.Colors.Head = ui.Color{B: 255}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("Load() mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadFileThenFlags(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snake.json")
	data := `{"rows": 15, "cols": 30, "tick_rate": 20, "colors": {"grid": "#101010", "food": "#ffff00", "snake": "#00ff00", "head": "#ff0000"}}`
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load([]string{"-cols", "25", "-config", path})
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Rows != 15 {
		t.Errorf("Rows = %d, want 15 from file", cfg.Rows)
	}
	if cfg.Cols != 25 {
		t.Errorf("Cols = %d, want 25 from flag", cfg.Cols)
	}
	if cfg.TickRate != 20 {
		t.Errorf("TickRate = %d, want 20 from file", cfg.TickRate)
	}
	if cfg.Colors.Food != (ui.Color{R: 255, G: 255}) {
		t.Errorf("Colors.Food = %v, want #ffff00", cfg.Colors.Food)
	}
	if cfg.Width != Default().Width {
		t.Errorf("Width = %d, want default %d", cfg.Width, Default().Width)
	}
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()
	broken := filepath.Join(dir, "broken.json")
	if err := os.WriteFile(broken, []byte("{"), 0644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name    string
		args    []string
		invalid bool
	}{
		{"zero rows", []string{"-rows", "0"}, true},
		{"negative cols", []string{"-cols", "-3"}, true},
		{"negative border", []string{"-border", "-1"}, true},
		{"zero tick", []string{"-tick", "0"}, true},
		{"unknown backend", []string{"-backend", "vga"}, true},
		{"cells do not fit", []string{"-width", "40", "-height", "40", "-border", "2"}, true},
		{"bad colour", []string{"-food-color", "red"}, false},
		{"missing file", []string{"-config", filepath.Join(dir, "nope.json")}, false},
		{"broken file", []string{"-config", broken}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(tt.args)
			if err == nil {
				t.Fatal("Load() error = nil")
			}
			if got := errors.Is(err, ErrInvalid); got != tt.invalid {
				t.Errorf("errors.Is(%v, ErrInvalid) = %v, want %v", err, got, tt.invalid)
			}
		})
	}
}

func TestLoadHelp(t *testing.T) {
	_, err := Load([]string{"-h"})
	if !errors.Is(err, flag.ErrHelp) {
		t.Errorf("Load(-h) error = %v, want flag.ErrHelp", err)
	}
}
