package tui

import (
	"context"
	"image/color"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/san-kum/attractors/internal/dynamo"
	"github.com/san-kum/attractors/internal/physics"
	"github.com/san-kum/attractors/internal/render"
	"github.com/san-kum/attractors/internal/sim"
	"github.com/san-kum/attractors/internal/viz"
)

func newLoop(t *testing.T) *render.Loop {
	t.Helper()
	a, err := sim.New(physics.DefaultLorenz(), nil, []dynamo.Point3{{X: 1, Y: 1, Z: 1}, {X: 2, Y: 3, Z: 4}})
	if err != nil {
		t.Fatal(err)
	}
	return render.NewLoop(a, render.Options{Config: render.SurfaceConfig{Width: 1920, Height: 1080, FPS: 45}})
}

func TestTerminalScalesPixels(t *testing.T) {
	term := NewTerminal()
	if err := term.Open(render.SurfaceConfig{Width: 160, Height: 80}); err != nil {
		t.Fatal(err)
	}
	term.Resize(80, 24)
	term.BeginFrame()
	term.DrawLine(viz.Pixel{X: 0, Y: 0}, viz.Pixel{X: 159, Y: 0}, 4, color.RGBA{R: 1, A: 255})
	term.EndFrame()

	c := term.Canvas()
	if !c.IsSet(0, 0) || !c.IsSet(c.DotWidth()-1, 0) {
		t.Error("line should span the canvas width")
	}
	if term.Color() != (color.RGBA{R: 1, A: 255}) {
		t.Errorf("color = %v", term.Color())
	}
	if term.Frame() == "" {
		t.Error("no frame presented")
	}
}

func TestTerminalRejectsEmptySize(t *testing.T) {
	if err := NewTerminal().Open(render.SurfaceConfig{}); err == nil {
		t.Error("expected error for zero-sized surface")
	}
}

func TestModelTickRunsFrame(t *testing.T) {
	loop := newLoop(t)
	term := NewTerminal()
	if err := loop.Start(term); err != nil {
		t.Fatal(err)
	}
	m := newModel(context.Background(), loop, term, "lorenz")

	_, cmd := m.Update(tickMsg(time.Now()))
	if cmd == nil {
		t.Fatal("expected next tick")
	}
	if loop.Frames() != 1 {
		t.Errorf("frames = %d, want 1", loop.Frames())
	}
	if !strings.Contains(m.View(), "attractors :: lorenz") {
		t.Error("view missing title")
	}
}

func TestModelQuitKey(t *testing.T) {
	loop := newLoop(t)
	term := NewTerminal()
	if err := loop.Start(term); err != nil {
		t.Fatal(err)
	}
	m := newModel(context.Background(), loop, term, "lorenz")

	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	_, cmd := m.Update(tickMsg(time.Now()))

	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected tea.Quit after exit request")
	}
	if loop.State() != render.Terminated {
		t.Errorf("state = %v, want terminated", loop.State())
	}
	if loop.Frames() != 1 {
		t.Errorf("exit frame should still complete, frames = %d", loop.Frames())
	}
}

func TestModelCancelledContext(t *testing.T) {
	loop := newLoop(t)
	term := NewTerminal()
	if err := loop.Start(term); err != nil {
		t.Fatal(err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	m := newModel(ctx, loop, term, "lorenz")

	m.Update(tickMsg(time.Now()))
	if !m.done {
		t.Error("cancelled context should end the watch")
	}
}

func TestModelResize(t *testing.T) {
	loop := newLoop(t)
	term := NewTerminal()
	m := newModel(context.Background(), loop, term, "lorenz")

	m.Update(tea.WindowSizeMsg{Width: 40, Height: 14})
	if c := term.Canvas(); c.Width != 40 || c.Height != 10 {
		t.Errorf("canvas = %dx%d, want 40x10", c.Width, c.Height)
	}
}
