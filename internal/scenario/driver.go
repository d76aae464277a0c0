// Package scenario runs the preset attractor scenarios one after another,
// each in its own freshly opened surface.
package scenario

import (
	"context"
	"log/slog"
	"time"

	"github.com/san-kum/attractors/internal/config"
	"github.com/san-kum/attractors/internal/dynamo"
	"github.com/san-kum/attractors/internal/experiment"
	"github.com/san-kum/attractors/internal/logging"
	"github.com/san-kum/attractors/internal/metrics"
	"github.com/san-kum/attractors/internal/render"
	"github.com/san-kum/attractors/internal/viz"
)

const TitlePrefix = "attractors :: "

// Presenter runs loop to completion on some surface.
type Presenter func(ctx context.Context, loop *render.Loop, scenario string) error

// OnSurface presents every scenario on a new surface from newSurface.
func OnSurface(newSurface func() render.Surface) Presenter {
	return func(ctx context.Context, loop *render.Loop, _ string) error {
		return loop.Run(ctx, newSurface())
	}
}

// Result summarises one finished scenario.
type Result struct {
	Scenario    string
	Frames      int
	Total       int
	Survivors   int
	Evictions   int
	MeanFrameMs float64
	FPS         float64
}

type Driver struct {
	Registry   *experiment.Registry
	Config     *config.Config
	Scenarios  []config.Scenario
	Integrator string
	Present    Presenter
	Logger     *slog.Logger
}

// NewDriver runs the full preset table with Euler on the given presenter.
func NewDriver(cfg *config.Config, present Presenter, logger *slog.Logger) *Driver {
	return &Driver{
		Registry:  experiment.NewRegistry(),
		Config:    cfg,
		Scenarios: config.Scenarios(),
		Present:   present,
		Logger:    logging.OrDiscard(logger),
	}
}

// Run executes the scenarios in order. A failing scenario aborts the rest
// and is returned as a *dynamo.ScenarioError. Cancelling ctx ends the
// current scenario and skips the remaining ones without error.
func (d *Driver) Run(ctx context.Context) ([]Result, error) {
	seed := d.Config.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	d.Logger.Debug("driver starting", "scenarios", len(d.Scenarios), "seed", seed)

	results := make([]Result, 0, len(d.Scenarios))
	for i, sc := range d.Scenarios {
		if ctx.Err() != nil {
			d.Logger.Info("cancelled", "remaining", len(d.Scenarios)-i)
			break
		}
		res, err := d.runOne(ctx, sc, seed+int64(i))
		if err != nil {
			return results, &dynamo.ScenarioError{Scenario: sc.Name, Index: i, Wrapped: err}
		}
		results = append(results, res)
	}
	return results, nil
}

func (d *Driver) runOne(ctx context.Context, sc config.Scenario, seed int64) (Result, error) {
	exp := experiment.New(experiment.Config{
		Scenario:   sc,
		Integrator: d.Integrator,
		Seed:       seed,
		InitMin:    d.Config.Init.Min,
		InitMax:    d.Config.Init.Max,
	})
	attractor, err := exp.Build(d.Registry)
	if err != nil {
		return Result{}, err
	}

	survival := metrics.NewSurvival(attractor.Total())
	frameTime := metrics.NewFrameTime()
	ms := []metrics.Metric{survival, metrics.NewEvictions(), frameTime}
	loop := render.NewLoop(attractor, d.loopOptions(sc, ms))

	d.Logger.Info("scenario starting",
		"scenario", sc.Name,
		"family", sc.Family,
		"trajectories", attractor.Total())

	if err := d.Present(ctx, loop, sc.Name); err != nil {
		return Result{}, err
	}

	res := Result{
		Scenario:    sc.Name,
		Frames:      loop.Frames(),
		Total:       attractor.Total(),
		Survivors:   attractor.Len(),
		Evictions:   loop.Evictions(),
		MeanFrameMs: frameTime.Value(),
		FPS:         frameTime.FPS(),
	}
	attrs := append([]any{"scenario", sc.Name, "frames", res.Frames, "survivors", res.Survivors}, metrics.Attrs(ms)...)
	d.Logger.Info("scenario finished", attrs...)
	return res, nil
}

func (d *Driver) loopOptions(sc config.Scenario, ms []metrics.Metric) render.Options {
	c := d.Config
	cam := viz.NewCamera()
	cam.Distance = c.Camera.Distance
	cam.Magnification = c.Camera.Magnification
	cam.OffsetX = c.Camera.OffsetX

	hue := &viz.Hue{Value: c.Hue.Min, Min: c.Hue.Min, Max: c.Hue.Max, Divisor: c.Hue.Divisor}

	return render.Options{
		Config: render.SurfaceConfig{
			Width:  c.Window.Width,
			Height: c.Window.Height,
			FPS:    c.Window.FPS,
			Title:  TitlePrefix + sc.Name,
		},
		LineWidth: c.Window.LineWidth,
		AngleStep: c.Camera.AngleStep,
		Camera:    cam,
		Hue:       hue,
		Logger:    d.Logger.With("scenario", sc.Name),
		Observers: metrics.Observers(ms),
	}
}
