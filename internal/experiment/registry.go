package experiment

import (
	"fmt"
	"sort"

	"github.com/san-kum/attractors/internal/dynamo"
	"github.com/san-kum/attractors/internal/integrators"
	"github.com/san-kum/attractors/internal/physics"
)

// FieldFactory builds a field from named parameters, "k" included.
type FieldFactory func(params map[string]float64) (dynamo.Field, error)

// Family describes one registered vector field.
type Family struct {
	Tag    string
	Params []string
	New    FieldFactory
}

type Registry struct {
	families    map[string]Family
	integrators map[string]func() integrators.Stepper
}

func NewRegistry() *Registry {
	r := &Registry{
		families:    make(map[string]Family),
		integrators: make(map[string]func() integrators.Stepper),
	}

	r.Register("lorenz", []string{"sigma", "rho", "beta", "k"}, func(p []float64) dynamo.Field {
		return physics.NewLorenz(p[0], p[1], p[2], p[3])
	})
	r.Register("rossler", []string{"a", "b", "c", "k"}, func(p []float64) dynamo.Field {
		return physics.NewRossler(p[0], p[1], p[2], p[3])
	})
	r.Register("thomas", []string{"b", "k"}, func(p []float64) dynamo.Field {
		return physics.NewThomas(p[0], p[1])
	})
	r.Register("finance", []string{"a", "b", "c", "k"}, func(p []float64) dynamo.Field {
		return physics.NewFinance(p[0], p[1], p[2], p[3])
	})
	r.Register("nose_hoover", []string{"a", "k"}, func(p []float64) dynamo.Field {
		return physics.NewNoseHoover(p[0], p[1])
	})
	r.Register("wang_sun", []string{"a", "b", "c", "d", "e", "f", "k"}, func(p []float64) dynamo.Field {
		return physics.NewWangSun(p[0], p[1], p[2], p[3], p[4], p[5], p[6])
	})
	r.Register("halvorsen", []string{"a", "k"}, func(p []float64) dynamo.Field {
		return physics.NewHalvorsen(p[0], p[1])
	})

	r.integrators["euler"] = func() integrators.Stepper { return integrators.NewEuler() }
	r.integrators["rk4"] = func() integrators.Stepper { return integrators.NewRK4() }

	return r
}

// Register adds a family whose constructor takes the named parameters in
// order. Registering an existing tag replaces it.
func (r *Registry) Register(tag string, params []string, build func([]float64) dynamo.Field) {
	names := append([]string(nil), params...)
	r.families[tag] = Family{
		Tag:    tag,
		Params: names,
		New: func(values map[string]float64) (dynamo.Field, error) {
			args := make([]float64, len(names))
			for i, name := range names {
				v, ok := values[name]
				if !ok {
					return nil, fmt.Errorf("%s: %q: %w", tag, name, dynamo.ErrMissingParam)
				}
				args[i] = v
			}
			return build(args), nil
		},
	}
}

func (r *Registry) GetField(tag string, params map[string]float64) (dynamo.Field, error) {
	fam, ok := r.families[tag]
	if !ok {
		return nil, fmt.Errorf("%q: %w", tag, dynamo.ErrUnknownFamily)
	}
	return fam.New(params)
}

func (r *Registry) GetFamily(tag string) (Family, bool) {
	fam, ok := r.families[tag]
	return fam, ok
}

// GetIntegrator returns a stepper by name; the empty name is Euler.
func (r *Registry) GetIntegrator(name string) (integrators.Stepper, error) {
	if name == "" {
		name = "euler"
	}
	fn, ok := r.integrators[name]
	if !ok {
		return nil, fmt.Errorf("unknown integrator: %s", name)
	}
	return fn(), nil
}

// ListFamilies returns the registered tags in sorted order.
func (r *Registry) ListFamilies() []string {
	names := make([]string, 0, len(r.families))
	for name := range r.families {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (r *Registry) ListIntegrators() []string {
	names := make([]string, 0, len(r.integrators))
	for name := range r.integrators {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
