package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/attractors/internal/config"
	"github.com/san-kum/attractors/internal/experiment"
	"github.com/san-kum/attractors/internal/export"
	"github.com/san-kum/attractors/internal/logging"
	"github.com/san-kum/attractors/internal/render"
	"github.com/san-kum/attractors/internal/scenario"
	"github.com/san-kum/attractors/internal/sim"
	"github.com/san-kum/attractors/internal/tui"
	"github.com/san-kum/attractors/internal/viz"
	"github.com/spf13/cobra"
)

func listFamilies(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, viz.GradientText("attractors", "#7a00ff", "#ff00cc"))

	reg := experiment.NewRegistry()
	rows := make([][]string, 0, len(config.Scenarios()))
	for _, sc := range config.Scenarios() {
		fam, ok := reg.GetFamily(sc.Family)
		if !ok {
			return fmt.Errorf("scenario %s: no family %q", sc.Name, sc.Family)
		}
		params := make([]string, len(fam.Params))
		for i, name := range fam.Params {
			params[i] = fmt.Sprintf("%s=%g", name, sc.Params[name])
		}
		rows = append(rows, []string{sc.Name, fam.Tag, fmt.Sprint(sc.Trajectories), strings.Join(params, " ")})
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(viz.Subtle).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return viz.TableHeader
			}
			if col == 3 {
				return viz.TableCell.Foreground(lipgloss.Color("#888899"))
			}
			return viz.TableCell
		}).
		Headers("SCENARIO", "FAMILY", "N", "PARAMS").
		Rows(rows...)

	fmt.Fprintln(out, t.Render())
	fmt.Fprintln(out, viz.KeyHint.Render("integrators: "+strings.Join(reg.ListIntegrators(), ", ")))
	return nil
}

func dumpScenarios(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	table, err := config.ScenariosYAML()
	if err != nil {
		return err
	}
	effective, err := cfg.YAML()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprint(out, string(table))
	fmt.Fprintln(out, "---")
	fmt.Fprint(out, string(effective))
	return nil
}

// singleScenario builds a driver restricted to one preset.
func singleScenario(name string, present scenario.Presenter, logOut io.Writer) (*scenario.Driver, *config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}
	sc, err := config.GetScenario(name)
	if err != nil {
		return nil, nil, err
	}
	d := scenario.NewDriver(cfg, present, logging.NewLogger(cfg.LogLevel, logOut))
	d.Scenarios = []config.Scenario{sc}
	return d, cfg, nil
}

func watchScenario(cmd *cobra.Command, args []string) error {
	// Log records would scribble over the alternate screen.
	d, _, err := singleScenario(args[0], tui.Run, io.Discard)
	if err != nil {
		return err
	}
	results, err := d.Run(cmd.Context())
	if err != nil {
		return err
	}
	for _, r := range results {
		fmt.Fprintf(cmd.OutOrStdout(), "%s: %d frames, %d/%d trajectories survived\n",
			r.Scenario, r.Frames, r.Survivors, r.Total)
	}
	return nil
}

func benchScenario(cmd *cobra.Command, args []string) error {
	if frames <= 0 {
		return fmt.Errorf("--frames must be positive")
	}
	headless := func() render.Surface { return &render.Discard{ExitAfter: frames} }

	d, cfg, err := singleScenario(args[0], scenario.OnSurface(headless), os.Stderr)
	if err != nil {
		return err
	}
	d.Integrator = integrator
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	start := time.Now()
	results, err := d.Run(cmd.Context())
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "benchmarking %s (%s)\n\n", args[0], integrator)
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "PASS\tFRAMES\tSURVIVORS\tTIME\tFRAMES/SEC")
	for _, r := range results {
		fmt.Fprintf(w, "render\t%d\t%d/%d\t%v\t%.0f\n",
			r.Frames, r.Survivors, r.Total, elapsed.Round(time.Millisecond), float64(r.Frames)/elapsed.Seconds())
	}

	if workers > 1 {
		seq, par, err := integratePass(cmd.Context(), d, cfg.Seed)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "integrate x1\t%d\t-\t%v\t%.0f\n", frames, seq.Round(time.Microsecond), float64(frames)/seq.Seconds())
		fmt.Fprintf(w, "integrate x%d\t%d\t-\t%v\t%.0f\n", workers, frames, par.Round(time.Microsecond), float64(frames)/par.Seconds())
	}
	return w.Flush()
}

// integratePass times frames sequential steps against frames parallel
// steps on two identically seeded instances, without rendering.
func integratePass(ctx context.Context, d *scenario.Driver, seed int64) (time.Duration, time.Duration, error) {
	build := func() (*sim.Attractor, error) {
		return experiment.New(experiment.Config{
			Scenario:   d.Scenarios[0],
			Integrator: d.Integrator,
			Seed:       seed,
			InitMin:    d.Config.Init.Min,
			InitMax:    d.Config.Init.Max,
		}).Build(d.Registry)
	}

	seqA, err := build()
	if err != nil {
		return 0, 0, err
	}
	start := time.Now()
	for i := 0; i < frames; i++ {
		seqA.Step()
	}
	seq := time.Since(start)

	parA, err := build()
	if err != nil {
		return 0, 0, err
	}
	start = time.Now()
	for i := 0; i < frames; i++ {
		if err := parA.StepParallel(ctx, workers); err != nil {
			return 0, 0, err
		}
	}
	return seq, time.Since(start), nil
}

func plotScenario(cmd *cobra.Command, args []string) error {
	if steps <= 0 {
		return fmt.Errorf("--steps must be positive")
	}
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	sc, err := config.GetScenario(args[0])
	if err != nil {
		return err
	}
	sc.Trajectories = 1
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	a, err := experiment.New(experiment.Config{
		Scenario: sc,
		Seed:     seed,
		InitMin:  cfg.Init.Min,
		InitMax:  cfg.Init.Max,
	}).Build(experiment.NewRegistry())
	if err != nil {
		return err
	}
	for i := 0; i < steps; i++ {
		a.Step()
	}

	tr, _ := a.Trajectory(0)
	xs := make([]float64, 0, tr.Len())
	ys := make([]float64, 0, tr.Len())
	zs := make([]float64, 0, tr.Len())
	for _, p := range tr.Points {
		if !p.IsValid() {
			break
		}
		xs, ys, zs = append(xs, p.X), append(ys, p.Y), append(zs, p.Z)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "scenario: %s\n", sc.Name)
	fmt.Fprintf(out, "start: %s\n", tr.Points[0])
	fmt.Fprintf(out, "samples: %d\n\n", len(xs))
	for _, series := range []struct {
		caption string
		data    []float64
	}{{"x vs step", xs}, {"y vs step", ys}, {"z vs step", zs}} {
		graph := asciigraph.Plot(series.data,
			asciigraph.Height(10),
			asciigraph.Width(80),
			asciigraph.Caption(series.caption),
		)
		fmt.Fprintln(out, graph)
		fmt.Fprintln(out)
	}
	return nil
}

func snapshotScenario(cmd *cobra.Command, args []string) error {
	if frames <= 0 {
		return fmt.Errorf("--frames must be positive")
	}
	svg := export.NewSVG(frames)
	d, _, err := singleScenario(args[0], scenario.OnSurface(func() render.Surface { return svg }), os.Stderr)
	if err != nil {
		return err
	}
	if _, err := d.Run(cmd.Context()); err != nil {
		return err
	}
	_, err = svg.WriteTo(cmd.OutOrStdout())
	return err
}
