package experiment

import (
	"fmt"
	"math/rand"

	"github.com/san-kum/attractors/internal/config"
	"github.com/san-kum/attractors/internal/dynamo"
	"github.com/san-kum/attractors/internal/sim"
)

type Config struct {
	Scenario   config.Scenario
	Integrator string
	Seed       int64
	InitMin    float64
	InitMax    float64
}

// Experiment turns one preset scenario into a ready attractor instance.
type Experiment struct {
	cfg        Config
	randSource *rand.Rand
}

func New(cfg Config) *Experiment {
	if cfg.InitMax <= cfg.InitMin {
		cfg.InitMin, cfg.InitMax = config.DefaultInitMin, config.DefaultInitMax
	}
	return &Experiment{
		cfg:        cfg,
		randSource: rand.New(rand.NewSource(cfg.Seed)),
	}
}

// InitialPoints draws n points with every coordinate uniform in
// [InitMin, InitMax).
func (e *Experiment) InitialPoints(n int) []dynamo.Point3 {
	span := e.cfg.InitMax - e.cfg.InitMin
	pts := make([]dynamo.Point3, n)
	for i := range pts {
		pts[i] = dynamo.Point3{
			X: e.cfg.InitMin + span*e.randSource.Float64(),
			Y: e.cfg.InitMin + span*e.randSource.Float64(),
			Z: e.cfg.InitMin + span*e.randSource.Float64(),
		}
	}
	return pts
}

// Build resolves the field and stepper from r and seeds the scenario's
// trajectories.
func (e *Experiment) Build(r *Registry) (*sim.Attractor, error) {
	sc := e.cfg.Scenario
	field, err := r.GetField(sc.Family, sc.Params)
	if err != nil {
		return nil, err
	}
	stepper, err := r.GetIntegrator(e.cfg.Integrator)
	if err != nil {
		return nil, err
	}
	a, err := sim.New(field, stepper, e.InitialPoints(sc.Trajectories))
	if err != nil {
		return nil, fmt.Errorf("build %s: %w", sc.Name, err)
	}
	return a, nil
}
