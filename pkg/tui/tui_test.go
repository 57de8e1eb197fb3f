package tui

import (
	"math"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/gonewx/forklift/pkg/components"
	"github.com/gonewx/forklift/pkg/config"
	"github.com/gonewx/forklift/pkg/ecs"
)

func newTestFrontend(t *testing.T, mutate func(cfg *config.LevelConfig)) *Frontend {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("Failed to init simulation screen: %v", err)
	}
	t.Cleanup(screen.Fini)
	screen.SetSize(120, 40)

	cfg, err := config.LoadLevelConfig("../../data/levels/main.yaml")
	if err != nil {
		t.Fatalf("Failed to load level config: %v", err)
	}
	if mutate != nil {
		mutate(cfg)
	}

	f, err := New(screen, Options{Level: cfg, Seed: 3})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	return f
}

func TestHeadingGlyph(t *testing.T) {
	tests := []struct {
		heading float64
		want    rune
	}{
		{0, '↑'},
		{math.Pi / 2, '→'},
		{math.Pi, '↓'},
		{-math.Pi / 2, '←'},
		{math.Pi / 4, '↗'},
		{2*math.Pi - 0.01, '↑'},
	}
	for _, tt := range tests {
		if got := headingGlyph(tt.heading); got != tt.want {
			t.Errorf("headingGlyph(%f): expected %c, got %c", tt.heading, tt.want, got)
		}
	}
}

func TestHeldKeyDrivesAndExpires(t *testing.T) {
	f := newTestFrontend(t, nil)
	input, _ := ecs.GetComponent[*components.DriveInputComponent](f.level.EntityManager(), f.level.VehicleID())

	f.handleKey(tcell.KeyRune, 'w')
	f.Step(0.02)
	if input.Throttle != 1 {
		t.Fatalf("Expected throttle 1 while the key is held, got %f", input.Throttle)
	}

	// 保持时间过后自动松开
	for i := 0; i < 20; i++ {
		f.Step(0.02)
	}
	if input.Throttle != 0 {
		t.Errorf("Expected throttle 0 after the hold expired, got %f", input.Throttle)
	}
}

func TestQuitKeys(t *testing.T) {
	f := newTestFrontend(t, nil)
	if f.handleKey(tcell.KeyRune, 'x') != true {
		t.Error("Expected unknown keys to keep running")
	}
	if f.handleKey(tcell.KeyRune, 'q') {
		t.Error("Expected q to quit")
	}
	if f.handleKey(tcell.KeyCtrlC, 0) {
		t.Error("Expected Ctrl+C to quit")
	}
}

func TestDrawShowsHUD(t *testing.T) {
	f := newTestFrontend(t, nil)
	f.Step(0.02)
	f.Draw()

	want := []rune(f.hud.ScoreText)
	for i, r := range want {
		got, _, _, _ := f.screen.GetContent(1+i, 0)
		if got != r {
			t.Fatalf("Expected %q at column %d, got %q", r, 1+i, got)
		}
	}
}

func TestContinueRestartsLevel(t *testing.T) {
	f := newTestFrontend(t, func(cfg *config.LevelConfig) { cfg.DurationSeconds = 0.1 })

	f.Step(0.2)
	if !f.hud.FinalVisible {
		t.Fatal("Expected the lose panel after the timer expired")
	}
	old := f.level

	f.handleKey(tcell.KeyEnter, 0)
	if !f.restart {
		t.Fatal("Expected Continue to request a restart")
	}
	f.Step(0.02)

	if f.level == old {
		t.Error("Expected a fresh level after restart")
	}
	if f.hud.FinalVisible {
		t.Error("Expected the final panel hidden in the new level")
	}
}
