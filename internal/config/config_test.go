package config

import (
	"errors"
	"strings"
	"testing"

	"github.com/san-kum/attractors/internal/dynamo"
	"gopkg.in/yaml.v3"
)

func env(vars map[string]string) func(string) (string, bool) {
	return func(k string) (string, bool) {
		v, ok := vars[k]
		return v, ok
	}
}

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Window.Width != 1920 || cfg.Window.Height != 1080 {
		t.Errorf("window = %dx%d", cfg.Window.Width, cfg.Window.Height)
	}
	if cfg.Window.FPS != 45 {
		t.Errorf("fps = %d", cfg.Window.FPS)
	}
	if cfg.Window.LineWidth != 4 {
		t.Errorf("line width = %v", cfg.Window.LineWidth)
	}
	if cfg.Camera.AngleStep != 0.01 {
		t.Errorf("angle step = %v", cfg.Camera.AngleStep)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults invalid: %v", err)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	cfg, err := LoadEnv(env(map[string]string{EnvLogLevel: "debug", EnvSeed: "42"}))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("log level = %q", cfg.LogLevel)
	}
	if cfg.Seed != 42 {
		t.Errorf("seed = %d", cfg.Seed)
	}
}

func TestLoadEnvErrors(t *testing.T) {
	tests := []struct {
		name string
		vars map[string]string
	}{
		{"bad seed", map[string]string{EnvSeed: "forty-two"}},
		{"bad level", map[string]string{EnvLogLevel: "loud"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := LoadEnv(env(tt.vars)); !errors.Is(err, dynamo.ErrInvalidConfig) {
				t.Errorf("err = %v, want ErrInvalidConfig", err)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero width", func(c *Config) { c.Window.Width = 0 }},
		{"zero fps", func(c *Config) { c.Window.FPS = 0 }},
		{"negative line width", func(c *Config) { c.Window.LineWidth = -1 }},
		{"zero magnification", func(c *Config) { c.Camera.Magnification = 0 }},
		{"inverted hue range", func(c *Config) { c.Hue.Min, c.Hue.Max = 0.9, 0.8 }},
		{"zero hue divisor", func(c *Config) { c.Hue.Divisor = 0 }},
		{"empty init range", func(c *Config) { c.Init.Max = c.Init.Min }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			if err := cfg.Validate(); !errors.Is(err, dynamo.ErrInvalidConfig) {
				t.Errorf("err = %v, want ErrInvalidConfig", err)
			}
		})
	}
}

func TestScenarioOrder(t *testing.T) {
	want := []string{"lorenz", "rossler", "thomas", "finance", "nose_hoover", "wang_sun", "halvorsen"}
	got := ScenarioNames()
	if len(got) != len(want) {
		t.Fatalf("names = %v", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("scenario %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestScenarioTable(t *testing.T) {
	tests := []struct {
		name string
		k    float64
		n    int
	}{
		{"lorenz", 0.009, 10},
		{"rossler", 0.075, 10},
		{"thomas", 2, 10},
		{"finance", 0.025, 10},
		{"nose_hoover", 0.1, 50},
		{"wang_sun", 0.0185, 10},
		{"halvorsen", 0.005, 50},
	}
	for _, tt := range tests {
		s, err := GetScenario(tt.name)
		if err != nil {
			t.Fatalf("GetScenario(%q): %v", tt.name, err)
		}
		if s.Params["k"] != tt.k {
			t.Errorf("%s: k = %v, want %v", tt.name, s.Params["k"], tt.k)
		}
		if s.Trajectories != tt.n {
			t.Errorf("%s: trajectories = %d, want %d", tt.name, s.Trajectories, tt.n)
		}
	}
}

func TestGetScenarioUnknown(t *testing.T) {
	_, err := GetScenario("duffing")
	if !errors.Is(err, dynamo.ErrUnknownFamily) {
		t.Errorf("err = %v, want ErrUnknownFamily", err)
	}
}

func TestScenariosAreCopies(t *testing.T) {
	s := Scenarios()
	s[0].Params["sigma"] = -1
	s[0].Trajectories = 0

	again, _ := GetScenario("lorenz")
	if again.Params["sigma"] != 10 || again.Trajectories != 10 {
		t.Error("preset table mutated through Scenarios()")
	}
}

func TestScenariosYAML(t *testing.T) {
	data, err := ScenariosYAML()
	if err != nil {
		t.Fatal(err)
	}
	var doc struct {
		Scenarios []Scenario `yaml:"scenarios"`
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		t.Fatal(err)
	}
	if len(doc.Scenarios) != 7 || doc.Scenarios[6].Name != "halvorsen" {
		t.Errorf("decoded %d scenarios", len(doc.Scenarios))
	}
	if !strings.Contains(string(data), "nose_hoover") {
		t.Error("yaml missing nose_hoover")
	}
}
