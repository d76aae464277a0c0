package viz

import (
	"errors"
	"math"
	"testing"

	"github.com/san-kum/attractors/internal/dynamo"
)

func TestProjectOrigin(t *testing.T) {
	sp := Project(dynamo.Point3{}, 1920, 1080, 0)
	if sp.X != 1060 || sp.Y != 540 {
		t.Errorf("origin projected to (%v, %v), want (1060, 540)", sp.X, sp.Y)
	}
	if math.Abs(sp.Depth-0.2) > 1e-12 {
		t.Errorf("depth = %v, want 0.2", sp.Depth)
	}
}

func TestProjectKnownPoints(t *testing.T) {
	tests := []struct {
		name   string
		p      dynamo.Point3
		angle  float64
		wantX  float64
		wantY  float64
		wantDp float64
	}{
		{"identity", dynamo.Point3{X: 1, Y: 2, Z: 3}, 0, 1080, 580, 0.5},
		{"quarter turn", dynamo.Point3{X: 1, Y: 2, Z: 3}, math.Pi / 2, 1000, 580, 0.25},
		{"y is untouched by rotation", dynamo.Point3{Y: -1}, 1.234, 1060, 520, 0.2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sp := Project(tt.p, 1920, 1080, tt.angle)
			if sp.X != tt.wantX || sp.Y != tt.wantY {
				t.Errorf("got (%v, %v), want (%v, %v)", sp.X, sp.Y, tt.wantX, tt.wantY)
			}
			if math.Abs(sp.Depth-tt.wantDp) > 1e-9 {
				t.Errorf("depth = %v, want %v", sp.Depth, tt.wantDp)
			}
		})
	}
}

func TestProjectDeterministic(t *testing.T) {
	p := dynamo.Point3{X: 0.3, Y: -4.2, Z: 17}
	a := Project(p, 800, 600, 3.7)
	b := Project(p, 800, 600, 3.7)
	if a != b {
		t.Errorf("projection not deterministic: %v vs %v", a, b)
	}
}

func TestProjectorMatchesCamera(t *testing.T) {
	cam := NewCamera()
	cam.Advance(0.01)
	cam.Advance(0.01)

	pr := cam.Projector(1920, 1080)
	p := dynamo.Point3{X: 2, Y: 3, Z: -1}
	if pr.Project(p) != Project(p, 1920, 1080, 0.02) {
		t.Error("projector and Project disagree for the same angle")
	}
}

func TestPixelConversion(t *testing.T) {
	px, err := ScreenPoint{X: 1060, Y: 540}.Pixel()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if px != (Pixel{1060, 540}) {
		t.Errorf("pixel = %v", px)
	}

	if _, err := (ScreenPoint{X: math.MaxInt32, Y: math.MinInt32}).Pixel(); err != nil {
		t.Errorf("int32 bounds should convert: %v", err)
	}
}

func TestPixelUnrepresentable(t *testing.T) {
	bad := []ScreenPoint{
		{X: math.NaN(), Y: 0},
		{X: 0, Y: math.NaN()},
		{X: math.Inf(1), Y: 0},
		{X: 0, Y: math.Inf(-1)},
		{X: 1e12, Y: 0},
		{X: 0, Y: -1e12},
	}
	for _, sp := range bad {
		if _, err := sp.Pixel(); !errors.Is(err, dynamo.ErrUnrepresentable) {
			t.Errorf("Pixel(%v) error = %v, want ErrUnrepresentable", sp, err)
		}
	}
}

func TestDivergedPointIsUnrepresentable(t *testing.T) {
	p := dynamo.Point3{X: 1e300, Y: 1e300, Z: 1e300}
	p = p.Scale(1e300)
	if _, err := Project(p, 1920, 1080, 0.5).Pixel(); err == nil {
		t.Error("expected diverged point to be unrepresentable")
	}
}
