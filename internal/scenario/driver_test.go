package scenario_test

import (
	"context"
	"errors"
	"fmt"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/attractors/internal/config"
	"github.com/san-kum/attractors/internal/dynamo"
	"github.com/san-kum/attractors/internal/render"
	"github.com/san-kum/attractors/internal/scenario"
)

// unavailable fails to open, like a machine without a display.
type unavailable struct {
	render.Discard
}

func (u *unavailable) Open(cfg render.SurfaceConfig) error {
	u.Config = cfg
	return fmt.Errorf("no display: %w", dynamo.ErrDisplayUnavailable)
}

var _ = Describe("Driver", func() {
	var (
		cfg      *config.Config
		surfaces []*render.Discard
		factory  func() render.Surface
	)

	BeforeEach(func() {
		cfg = config.Default()
		cfg.Seed = 1
		surfaces = nil
		factory = func() render.Surface {
			d := &render.Discard{ExitAfter: 5}
			surfaces = append(surfaces, d)
			return d
		}
	})

	It("runs every scenario in order on a fresh surface", func() {
		d := scenario.NewDriver(cfg, scenario.OnSurface(factory), nil)

		results, err := d.Run(context.Background())
		Expect(err).NotTo(HaveOccurred())
		Expect(results).To(HaveLen(7))
		Expect(surfaces).To(HaveLen(7))

		for i, name := range config.ScenarioNames() {
			Expect(results[i].Scenario).To(Equal(name))
			Expect(results[i].Frames).To(Equal(5))
			Expect(surfaces[i].Config.Title).To(Equal("attractors :: " + name))
			Expect(surfaces[i].Config.Width).To(Equal(1920))
			Expect(surfaces[i].Config.Height).To(Equal(1080))
			Expect(surfaces[i].Config.FPS).To(Equal(45))
			Expect(surfaces[i].Closes).To(Equal(1))
		}
	})

	It("seeds the configured number of trajectories", func() {
		d := scenario.NewDriver(cfg, scenario.OnSurface(factory), nil)

		results, err := d.Run(context.Background())
		Expect(err).NotTo(HaveOccurred())
		Expect(results[0].Total).To(Equal(10))
		Expect(results[4].Total).To(Equal(50))
		Expect(results[6].Total).To(Equal(50))
		Expect(results[6].Survivors).To(BeNumerically(">=", 1))
	})

	It("stops at the first scenario whose surface cannot open", func() {
		opened := 0
		fail := func() render.Surface {
			opened++
			if opened == 3 {
				return &unavailable{}
			}
			return factory()
		}
		d := scenario.NewDriver(cfg, scenario.OnSurface(fail), nil)

		results, err := d.Run(context.Background())
		Expect(err).To(HaveOccurred())
		Expect(errors.Is(err, dynamo.ErrDisplayUnavailable)).To(BeTrue())

		var se *dynamo.ScenarioError
		Expect(errors.As(err, &se)).To(BeTrue())
		Expect(se.Scenario).To(Equal("thomas"))
		Expect(se.Index).To(Equal(2))

		Expect(results).To(HaveLen(2))
		Expect(opened).To(Equal(3))
	})

	It("reports unknown families as a scenario error", func() {
		d := scenario.NewDriver(cfg, scenario.OnSurface(factory), nil)
		d.Scenarios = []config.Scenario{{Name: "bogus", Family: "duffing", Trajectories: 1}}

		_, err := d.Run(context.Background())
		Expect(errors.Is(err, dynamo.ErrUnknownFamily)).To(BeTrue())
		Expect(surfaces).To(BeEmpty())
	})

	It("finishes the current scenario and skips the rest when cancelled", func() {
		ctx, cancel := context.WithCancel(context.Background())
		present := func(ctx context.Context, loop *render.Loop, name string) error {
			cancel()
			return loop.Run(ctx, factory())
		}
		d := scenario.NewDriver(cfg, present, nil)

		results, err := d.Run(ctx)
		Expect(err).NotTo(HaveOccurred())
		Expect(results).To(HaveLen(1))
		Expect(results[0].Frames).To(Equal(1))
		Expect(surfaces[0].Closes).To(Equal(1))
	})

	It("uses the requested integrator", func() {
		d := scenario.NewDriver(cfg, scenario.OnSurface(factory), nil)
		d.Integrator = "rk4"
		d.Scenarios = d.Scenarios[:1]

		results, err := d.Run(context.Background())
		Expect(err).NotTo(HaveOccurred())
		Expect(results).To(HaveLen(1))

		d.Integrator = "verlet"
		_, err = d.Run(context.Background())
		Expect(err).To(HaveOccurred())
	})
})
