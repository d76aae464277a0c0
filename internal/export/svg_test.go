package export

import (
	"context"
	"image/color"
	"strings"
	"testing"

	"github.com/san-kum/attractors/internal/dynamo"
	"github.com/san-kum/attractors/internal/physics"
	"github.com/san-kum/attractors/internal/render"
	"github.com/san-kum/attractors/internal/sim"
	"github.com/san-kum/attractors/internal/viz"
)

func TestSVGKeepsLastFrame(t *testing.T) {
	s := NewSVG(0)
	if err := s.Open(render.SurfaceConfig{Width: 100, Height: 50, Title: "a < b"}); err != nil {
		t.Fatal(err)
	}

	s.BeginFrame()
	s.DrawLine(viz.Pixel{X: 0, Y: 0}, viz.Pixel{X: 1, Y: 1}, 4, color.RGBA{255, 0, 0, 255})
	s.DrawLine(viz.Pixel{X: 1, Y: 1}, viz.Pixel{X: 2, Y: 2}, 4, color.RGBA{255, 0, 0, 255})
	s.EndFrame()
	s.BeginFrame()
	s.DrawLine(viz.Pixel{X: 10, Y: 20}, viz.Pixel{X: 30, Y: 40}, 4, color.RGBA{0, 255, 0, 255})
	s.EndFrame()

	if s.Segments() != 1 {
		t.Fatalf("segments = %d, want 1", s.Segments())
	}

	var b strings.Builder
	if _, err := s.WriteTo(&b); err != nil {
		t.Fatal(err)
	}
	out := b.String()

	for _, want := range []string{
		`width="100" height="50"`,
		`<title>a &lt; b</title>`,
		`<line x1="10" y1="20" x2="30" y2="40" stroke="#00ff00" stroke-width="4"/>`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("svg missing %q", want)
		}
	}
	if strings.Contains(out, "#ff0000") {
		t.Error("svg contains lines from an earlier frame")
	}
}

func TestSVGRejectsEmptySize(t *testing.T) {
	if err := NewSVG(1).Open(render.SurfaceConfig{}); err == nil {
		t.Error("expected error")
	}
}

func TestSVGAsLoopSurface(t *testing.T) {
	a, err := sim.New(physics.DefaultLorenz(), nil, []dynamo.Point3{{X: 1, Y: 1, Z: 1}})
	if err != nil {
		t.Fatal(err)
	}
	s := NewSVG(10)
	if err := render.NewLoop(a, render.Options{}).Run(context.Background(), s); err != nil {
		t.Fatal(err)
	}
	if s.Segments() != 9 {
		t.Errorf("segments in frame 10 = %d, want 9", s.Segments())
	}
}
