// Package tui renders an attractor into the terminal with a braille
// canvas driven by bubbletea.
package tui

import (
	"fmt"
	"image/color"

	"github.com/san-kum/attractors/internal/render"
	"github.com/san-kum/attractors/internal/viz"
)

const (
	defaultCols = 80
	defaultRows = 24
	chromeRows  = 4
)

// Terminal implements render.Surface on a viz.Canvas. Pixels are given in
// window coordinates (cfg.Width x cfg.Height) and scaled onto the canvas.
type Terminal struct {
	cfg    render.SurfaceConfig
	canvas *viz.Canvas
	color  color.RGBA
	exit   bool
	open   bool
	closed bool
	frame  string
}

func NewTerminal() *Terminal {
	return &Terminal{canvas: viz.NewCanvas(defaultCols, defaultRows-chromeRows)}
}

var _ render.Surface = (*Terminal)(nil)

func (t *Terminal) Open(cfg render.SurfaceConfig) error {
	if t.open {
		return fmt.Errorf("tui: terminal already open")
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return fmt.Errorf("tui: invalid surface size %dx%d", cfg.Width, cfg.Height)
	}
	t.cfg = cfg
	t.open = true
	return nil
}

// Resize fits the canvas to a terminal of cols x rows characters.
func (t *Terminal) Resize(cols, rows int) {
	rows -= chromeRows
	if cols < 1 {
		cols = 1
	}
	if rows < 1 {
		rows = 1
	}
	t.canvas = viz.NewCanvas(cols, rows)
}

func (t *Terminal) RequestExit() { t.exit = true }

func (t *Terminal) BeginFrame() { t.canvas.Clear() }

func (t *Terminal) ExitRequested() bool { return t.exit }

func (t *Terminal) DrawLine(a, b viz.Pixel, width float32, c color.RGBA) {
	t.color = c
	x0, y0 := t.scale(a)
	x1, y1 := t.scale(b)
	t.canvas.DrawLine(x0, y0, x1, y1)
}

func (t *Terminal) scale(p viz.Pixel) (int, int) {
	x := int64(p.X) * int64(t.canvas.DotWidth()) / int64(t.cfg.Width)
	y := int64(p.Y) * int64(t.canvas.DotHeight()) / int64(t.cfg.Height)
	return int(x), int(y)
}

func (t *Terminal) EndFrame() { t.frame = t.canvas.String() }

func (t *Terminal) Close() error {
	t.closed = true
	return nil
}

// Frame is the last presented canvas.
func (t *Terminal) Frame() string { return t.frame }

// Color is the line color of the last presented frame.
func (t *Terminal) Color() color.RGBA { return t.color }

func (t *Terminal) Canvas() *viz.Canvas { return t.canvas }
