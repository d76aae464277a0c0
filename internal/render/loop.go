package render

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/san-kum/attractors/internal/logging"
	"github.com/san-kum/attractors/internal/sim"
	"github.com/san-kum/attractors/internal/viz"
)

const (
	DefaultWidth     = 1920
	DefaultHeight    = 1080
	DefaultFPS       = 45
	DefaultLineWidth = 4
	DefaultAngleStep = 0.01
)

type State int

const (
	Running State = iota
	Exiting
	Terminated
)

func (s State) String() string {
	switch s {
	case Running:
		return "running"
	case Exiting:
		return "exiting"
	case Terminated:
		return "terminated"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// FrameStats summarises one completed frame.
type FrameStats struct {
	Frame    int
	Active   int // trajectories drawn this frame, before compaction
	Evicted  int // trajectories removed at the end of this frame
	Segments int
	Angle    float64
	Hue      float64
	Duration time.Duration
}

// Observer receives the stats of every frame, in order.
type Observer interface {
	Observe(FrameStats)
}

type Options struct {
	Config    SurfaceConfig
	LineWidth float32
	AngleStep float64
	Camera    *viz.Camera
	Hue       *viz.Hue
	Logger    *slog.Logger
	Observers []Observer
}

func (o *Options) defaults() {
	if o.Config.Width <= 0 {
		o.Config.Width = DefaultWidth
	}
	if o.Config.Height <= 0 {
		o.Config.Height = DefaultHeight
	}
	if o.Config.FPS <= 0 {
		o.Config.FPS = DefaultFPS
	}
	if o.LineWidth <= 0 {
		o.LineWidth = DefaultLineWidth
	}
	if o.AngleStep == 0 {
		o.AngleStep = DefaultAngleStep
	}
	if o.Camera == nil {
		o.Camera = viz.NewCamera()
	}
	if o.Hue == nil {
		o.Hue = viz.NewHue()
	}
	o.Logger = logging.OrDiscard(o.Logger)
}

// Loop draws one attractor instance onto a surface until exit is requested.
// It is driven from a single goroutine.
type Loop struct {
	attractor *sim.Attractor
	opts      Options
	log       *slog.Logger

	surface     Surface
	state       State
	closed      bool
	exitPending bool
	frame       int
	evictions   int
}

func NewLoop(a *sim.Attractor, opts Options) *Loop {
	opts.defaults()
	return &Loop{
		attractor: a,
		opts:      opts,
		log:       opts.Logger,
		state:     Running,
	}
}

func (l *Loop) State() State              { return l.state }
func (l *Loop) Attractor() *sim.Attractor { return l.attractor }
func (l *Loop) Camera() *viz.Camera       { return l.opts.Camera }
func (l *Loop) Hue() *viz.Hue             { return l.opts.Hue }
func (l *Loop) Frames() int               { return l.frame }
func (l *Loop) Evictions() int            { return l.evictions }
func (l *Loop) Config() SurfaceConfig     { return l.opts.Config }

// RequestExit makes the next frame move the loop to Exiting, as if the
// surface had reported a close request.
func (l *Loop) RequestExit() { l.exitPending = true }

// Start opens s. On failure s is closed, the loop is Terminated and the
// open error is returned wrapped.
func (l *Loop) Start(s Surface) error {
	if l.surface != nil {
		return fmt.Errorf("render: loop already started")
	}
	l.surface = s
	if err := s.Open(l.opts.Config); err != nil {
		if cerr := l.close(); cerr != nil {
			l.log.Warn("close after failed open", "error", cerr)
		}
		return fmt.Errorf("open surface %q: %w", l.opts.Config.Title, err)
	}
	l.log.Debug("surface opened",
		"title", l.opts.Config.Title,
		"width", l.opts.Config.Width,
		"height", l.opts.Config.Height)
	return nil
}

// Frame renders one frame. It is a no-op unless the loop is Running with
// an open surface.
func (l *Loop) Frame() FrameStats {
	if l.state != Running || l.surface == nil || l.closed {
		return FrameStats{}
	}
	start := time.Now()
	s := l.surface
	cam := l.opts.Camera

	s.BeginFrame()

	hue := l.opts.Hue.Advance(cam.Angle)
	col := viz.HSVToRGB(hue, 1, 1)

	if l.exitPending || s.ExitRequested() {
		l.state = Exiting
	}

	stats := FrameStats{Frame: l.frame, Angle: cam.Angle, Hue: hue}
	proj := cam.Projector(l.opts.Config.Width, l.opts.Config.Height)

	for _, t := range l.attractor.Active() {
		stats.Active++
		prev, prevErr := proj.Project(t.Points[0]).Pixel()
		for i := 1; i < t.Len(); i++ {
			cur, err := proj.Project(t.Points[i]).Pixel()
			if prevErr != nil || err != nil {
				if l.attractor.Evict(t.ID) {
					l.log.Debug("trajectory evicted",
						"id", t.ID,
						"frame", l.frame,
						"points", t.Len())
				}
			} else {
				s.DrawLine(prev, cur, l.opts.LineWidth, col)
				stats.Segments++
			}
			prev, prevErr = cur, err
		}
	}

	stats.Evicted = l.attractor.Compact()
	l.evictions += stats.Evicted
	l.attractor.Step()
	cam.Advance(l.opts.AngleStep)

	s.EndFrame()

	stats.Duration = time.Since(start)
	l.frame++
	for _, o := range l.opts.Observers {
		o.Observe(stats)
	}
	logging.Trace(l.log, "frame",
		"n", stats.Frame,
		"active", stats.Active,
		"evicted", stats.Evicted,
		"segments", stats.Segments,
		"dur", stats.Duration)
	return stats
}

// Stop closes the surface if it is still open and terminates the loop.
// Calling it more than once is safe.
func (l *Loop) Stop() error {
	return l.close()
}

func (l *Loop) close() error {
	l.state = Terminated
	if l.surface == nil || l.closed {
		return nil
	}
	l.closed = true
	if err := l.surface.Close(); err != nil {
		return fmt.Errorf("close surface: %w", err)
	}
	return nil
}

// Run opens s, renders frames until exit is requested through the surface
// or ctx, and closes s exactly once.
func (l *Loop) Run(ctx context.Context, s Surface) error {
	if err := l.Start(s); err != nil {
		return err
	}
	for l.state == Running {
		if ctx.Err() != nil {
			l.RequestExit()
		}
		l.Frame()
	}
	return l.Stop()
}
