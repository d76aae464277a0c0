package config

import (
	"fmt"

	"github.com/san-kum/attractors/internal/dynamo"
	"gopkg.in/yaml.v3"
)

// Scenario is one entry of the fixed run order: which field family to
// build, with which parameters (including the step scale "k"), and how
// many trajectories to seed.
type Scenario struct {
	Name         string             `yaml:"name"`
	Family       string             `yaml:"family"`
	Params       map[string]float64 `yaml:"params"`
	Trajectories int                `yaml:"trajectories"`
}

var scenarios = []Scenario{
	{Name: "lorenz", Family: "lorenz", Trajectories: 10,
		Params: map[string]float64{"sigma": 10, "rho": 28, "beta": 8.0 / 3.0, "k": 0.009}},
	{Name: "rossler", Family: "rossler", Trajectories: 10,
		Params: map[string]float64{"a": 0.2, "b": 0.2, "c": 5.7, "k": 0.075}},
	{Name: "thomas", Family: "thomas", Trajectories: 10,
		Params: map[string]float64{"b": 1, "k": 2}},
	{Name: "finance", Family: "finance", Trajectories: 10,
		Params: map[string]float64{"a": 0.001, "b": 0.2, "c": 1.1, "k": 0.025}},
	{Name: "nose_hoover", Family: "nose_hoover", Trajectories: 50,
		Params: map[string]float64{"a": 1.5, "k": 0.1}},
	{Name: "wang_sun", Family: "wang_sun", Trajectories: 10,
		Params: map[string]float64{"a": 0.2, "b": -0.01, "c": 1, "d": -0.4, "e": -1, "f": -1, "k": 0.0185}},
	{Name: "halvorsen", Family: "halvorsen", Trajectories: 50,
		Params: map[string]float64{"a": 1.4, "k": 0.005}},
}

// Scenarios returns the preset table in run order. The result is a deep
// copy and may be modified.
func Scenarios() []Scenario {
	out := make([]Scenario, len(scenarios))
	for i, s := range scenarios {
		out[i] = s.clone()
	}
	return out
}

func GetScenario(name string) (Scenario, error) {
	for _, s := range scenarios {
		if s.Name == name {
			return s.clone(), nil
		}
	}
	return Scenario{}, fmt.Errorf("scenario %q: %w", name, dynamo.ErrUnknownFamily)
}

func ScenarioNames() []string {
	names := make([]string, len(scenarios))
	for i, s := range scenarios {
		names[i] = s.Name
	}
	return names
}

// ScenariosYAML renders the preset table.
func ScenariosYAML() ([]byte, error) {
	return yaml.Marshal(struct {
		Scenarios []Scenario `yaml:"scenarios"`
	}{Scenarios()})
}

func (s Scenario) clone() Scenario {
	params := make(map[string]float64, len(s.Params))
	for k, v := range s.Params {
		params[k] = v
	}
	s.Params = params
	return s
}
