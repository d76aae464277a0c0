package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/san-kum/attractors/internal/render"
	"github.com/san-kum/attractors/internal/viz"
)

const historyLen = 60

type tickMsg time.Time

type model struct {
	ctx      context.Context
	loop     *render.Loop
	term     *Terminal
	scenario string
	interval time.Duration

	last    render.FrameStats
	history []float64
	err     error
	done    bool
}

func newModel(ctx context.Context, loop *render.Loop, term *Terminal, scenario string) *model {
	fps := loop.Config().FPS
	if fps <= 0 {
		fps = render.DefaultFPS
	}
	return &model{
		ctx:      ctx,
		loop:     loop,
		term:     term,
		scenario: scenario,
		interval: time.Second / time.Duration(fps),
		history:  make([]float64, 0, historyLen),
	}
}

func (m *model) tick() tea.Cmd {
	return tea.Tick(m.interval, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func (m *model) Init() tea.Cmd { return m.tick() }

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			m.term.RequestExit()
		}
		return m, nil
	case tea.WindowSizeMsg:
		m.term.Resize(msg.Width, msg.Height)
		return m, nil
	case tickMsg:
		if m.done {
			return m, nil
		}
		if m.ctx.Err() != nil {
			m.loop.RequestExit()
		}
		m.last = m.loop.Frame()
		m.history = append(m.history, float64(m.loop.Attractor().Len()))
		if len(m.history) > historyLen {
			m.history = m.history[1:]
		}
		if m.loop.State() != render.Running {
			m.done = true
			m.err = m.loop.Stop()
			return m, tea.Quit
		}
		return m, m.tick()
	}
	return m, nil
}

func (m *model) View() string {
	var b strings.Builder

	b.WriteString(viz.HeaderStyle.Render("attractors :: "+m.scenario) + "\n")

	tint := lipgloss.NewStyle().Foreground(lipgloss.Color(viz.HexColor(m.term.Color())))
	b.WriteString(tint.Render(m.term.Frame()) + "\n")

	a := m.loop.Attractor()
	b.WriteString(viz.MetricLabel.Render("frame") + viz.MetricValue.Render(fmt.Sprintf("%d", m.loop.Frames())) + "  ")
	b.WriteString(viz.MetricLabel.Render("active") + viz.MetricValue.Render(fmt.Sprintf("%d/%d", a.Len(), a.Total())) + "  ")
	b.WriteString(viz.SparklineChart(m.history, 20) + "\n")
	b.WriteString(viz.KeyHint.Render("q quit"))

	return b.String()
}

// Run drives loop on a fresh Terminal until the user quits, the loop
// exits or ctx is cancelled. The terminal is closed exactly once.
func Run(ctx context.Context, loop *render.Loop, scenario string) error {
	term := NewTerminal()
	if err := loop.Start(term); err != nil {
		return err
	}

	m := newModel(ctx, loop, term, scenario)
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	if serr := loop.Stop(); err == nil {
		err = serr
	}
	if err == nil {
		err = m.err
	}
	return err
}
