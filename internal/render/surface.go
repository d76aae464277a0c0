package render

import (
	"image/color"

	"github.com/san-kum/attractors/internal/viz"
)

// SurfaceConfig describes the window a surface should open.
type SurfaceConfig struct {
	Width  int
	Height int
	FPS    int
	Title  string
}

// Surface is a drawable target with an explicit open/close scope. A loop
// calls Open once, then BeginFrame ... EndFrame per frame, then Close once.
type Surface interface {
	Open(cfg SurfaceConfig) error
	BeginFrame()
	ExitRequested() bool
	DrawLine(a, b viz.Pixel, width float32, c color.RGBA)
	EndFrame()
	Close() error
}

// Discard is a headless surface. It counts what would have been drawn and
// requests exit once ExitAfter frames have begun (0 never exits).
type Discard struct {
	ExitAfter int

	Config SurfaceConfig
	Frames int
	Lines  int
	Opened bool
	Closes int
}

func (d *Discard) Open(cfg SurfaceConfig) error {
	d.Config = cfg
	d.Opened = true
	return nil
}

func (d *Discard) BeginFrame() { d.Frames++ }

func (d *Discard) ExitRequested() bool {
	return d.ExitAfter > 0 && d.Frames >= d.ExitAfter
}

func (d *Discard) DrawLine(a, b viz.Pixel, width float32, c color.RGBA) { d.Lines++ }

func (d *Discard) EndFrame() {}

func (d *Discard) Close() error {
	d.Closes++
	return nil
}
