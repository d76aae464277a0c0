// Package gui is the raylib window surface. raylib pins its calls to the
// main OS thread, so a Window must be driven from the goroutine that
// runs main.
package gui

import (
	"fmt"
	"image/color"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/san-kum/attractors/internal/dynamo"
	"github.com/san-kum/attractors/internal/render"
	"github.com/san-kum/attractors/internal/viz"
)

var ColBg = rl.NewColor(0, 0, 0, 255)

// Window implements render.Surface over a single raylib window. One
// Window opens at most one native window; build a new one per scenario.
type Window struct {
	cfg    render.SurfaceConfig
	open   bool
	closed bool
}

func NewWindow() *Window { return &Window{} }

var _ render.Surface = (*Window)(nil)

func (w *Window) Open(cfg render.SurfaceConfig) error {
	if w.open || w.closed {
		return fmt.Errorf("gui: window %q already used", cfg.Title)
	}
	w.cfg = cfg

	rl.SetTraceLogLevel(rl.LogWarning)
	rl.InitWindow(int32(cfg.Width), int32(cfg.Height), cfg.Title)
	w.open = true
	if !rl.IsWindowReady() {
		return fmt.Errorf("init window %dx%d: %w", cfg.Width, cfg.Height, dynamo.ErrDisplayUnavailable)
	}
	rl.SetTargetFPS(int32(cfg.FPS))
	return nil
}

func (w *Window) BeginFrame() {
	rl.BeginDrawing()
	rl.ClearBackground(ColBg)
}

func (w *Window) ExitRequested() bool { return rl.WindowShouldClose() }

func (w *Window) DrawLine(a, b viz.Pixel, width float32, c color.RGBA) {
	rl.DrawLineEx(
		rl.NewVector2(float32(a.X), float32(a.Y)),
		rl.NewVector2(float32(b.X), float32(b.Y)),
		width,
		rl.NewColor(c.R, c.G, c.B, c.A),
	)
}

// EndFrame presents the frame and sleeps to the target FPS.
func (w *Window) EndFrame() { rl.EndDrawing() }

func (w *Window) Close() error {
	if !w.open || w.closed {
		return nil
	}
	w.closed = true
	if rl.IsWindowReady() {
		rl.CloseWindow()
	}
	return nil
}

// Factory returns a fresh Window for every scenario.
func Factory() render.Surface { return NewWindow() }
