package viz

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/atomsim/internal/config"
	"github.com/san-kum/atomsim/internal/metrics"
	"github.com/san-kum/atomsim/internal/render"
	"github.com/san-kum/atomsim/internal/sim"
)

const (
	width           = 80
	height          = 24
	panelWidth      = 48
	historyCapacity = 600
)

type TickMsg time.Time

// Model drives the world from Bubble Tea ticks and renders it.
type Model struct {
	cfg      *config.Config
	world    *sim.World
	last     sim.Frame
	canvas   *Canvas
	interval time.Duration
	running  bool
	showHelp bool
	theme    Theme
	logger   *slog.Logger
	err      error

	energyHistory []float64
	contacts      int

	// fit stretches the arena width to the canvas aspect on resize.
	fit          bool
	fitHalfWidth float64
}

// NewModel builds the world from cfg. Every reset rebuilds it from the same
// config, so the seed reproduces the same run.
func NewModel(cfg *config.Config, logger *slog.Logger) (Model, error) {
	if logger == nil {
		logger = slog.Default()
	}
	w, err := sim.Build(cfg)
	if err != nil {
		return Model{}, err
	}

	c := NewCanvas(width, height)
	c.SetWorld(cfg.Arena.HalfWidth, cfg.Arena.HalfHeight)

	m := Model{
		cfg:           cfg,
		world:         w,
		last:          w.Snapshot(),
		canvas:        c,
		interval:      time.Duration(cfg.FrameIntervalMs) * time.Millisecond,
		running:       true,
		theme:         ThemeNebula,
		logger:        logger,
		energyHistory: make([]float64, 0, historyCapacity),
	}
	m.draw()
	return m, nil
}

// WithTheme returns a copy of m using the named theme.
func (m Model) WithTheme(name string) Model {
	m.theme = GetTheme(name)
	return m
}

// WithFitArena returns a copy of m that resizes the arena width to match
// the terminal aspect. The arena height stays at the configured value.
func (m Model) WithFitArena(fit bool) Model {
	m.fit = fit
	return m
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(m.interval, func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) Init() tea.Cmd {
	return m.tick()
}

// Update handles input events and steps the simulation.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.running = !m.running
		case "r":
			m.reset()
		case "t":
			m.theme = NextTheme(m.theme.Name)
		case "?":
			m.showHelp = !m.showHelp
		}
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
	case TickMsg:
		if m.running && m.err == nil {
			m.step()
		}
		m.draw()
		return m, m.tick()
	}
	return m, nil
}

func (m *Model) step() {
	f := m.world.Step()
	if !m.world.Valid() {
		m.err = &sim.SimError{Frame: f.Index, Message: "invalid body state", Wrapped: sim.ErrInvalidState}
		m.logger.Error("simulation stopped", "err", m.err)
		return
	}
	m.last = f
	m.contacts += f.Contacts

	m.energyHistory = append(m.energyHistory, metrics.KineticEnergyOf(f))
	if len(m.energyHistory) > historyCapacity {
		m.energyHistory = m.energyHistory[1:]
	}
}

// reset rebuilds the world from the config it started with.
func (m *Model) reset() {
	w, err := sim.Build(m.cfg)
	if err != nil {
		m.err = err
		return
	}
	if m.fitHalfWidth > 0 {
		w.Resize(m.fitHalfWidth, m.cfg.Arena.HalfHeight)
	}
	m.world = w
	m.last = w.Snapshot()
	m.err = nil
	m.contacts = 0
	m.energyHistory = m.energyHistory[:0]
}

// resize fits the canvas into the terminal next to the stats panel. Unless
// fit is set the arena keeps its size and only the view scale changes.
func (m *Model) resize(termW, termH int) {
	w := termW - panelWidth - 6
	h := termH - 4
	if w < 20 || h < 8 {
		return
	}
	if m.fit {
		halfH := m.cfg.Arena.HalfHeight
		halfW := halfH * float64(w*2) / float64(h*4)
		if halfW > m.cfg.WallMargin {
			m.fitHalfWidth = halfW
			m.world.Resize(halfW, halfH)
		}
	}
	c := NewCanvas(w, h)
	c.SetWorld(m.world.Arena.HalfWidth, m.world.Arena.HalfHeight)
	m.canvas = c
}

func (m *Model) draw() {
	m.canvas.Clear()
	m.canvas.Border()
	render.DrawBodies(m.canvas, m.world.Bodies)
}

// View renders the TUI interface.
func (m Model) View() string {
	st := themeStyles(m.theme)

	status := st.running.Render("RUNNING")
	if m.err != nil {
		status = st.paused.Render("ERROR: " + m.err.Error())
	} else if !m.running {
		status = st.paused.Render("PAUSED")
	}

	var s strings.Builder
	s.WriteString(st.header.Render(strings.ToUpper(m.cfg.Scenario)) + "\n")
	s.WriteString(status + "\n\n")

	if len(m.energyHistory) > 1 {
		chart := asciigraph.Plot(m.energyHistory, asciigraph.Height(4), asciigraph.Width(panelWidth-10), asciigraph.Caption("kinetic energy"))
		s.WriteString(st.graph.Render(chart) + "\n\n")
	}

	row := func(label, value string) {
		s.WriteString(st.label.Render(label) + st.value.Render(value) + "\n")
	}
	row("Frame", fmt.Sprintf("%d", m.last.Index))
	row("Contacts", fmt.Sprintf("%d", m.contacts))
	row("Energy", fmt.Sprintf("%.2f", metrics.KineticEnergyOf(m.last)))
	mean, std := metrics.FrameSpeeds(m.last)
	row("Speed", fmt.Sprintf("%.2f ± %.2f", mean, std))

	s.WriteString("\n" + Separator(m.theme, panelWidth-4) + "\n")
	for _, a := range m.last.Atoms {
		s.WriteString(fmt.Sprintf("%-10s %7.1f,%7.1f  v=%5.2f,%5.2f\n", truncate(a.Name, 10), a.Pos.X, a.Pos.Y, a.Vel.X, a.Vel.Y))
	}

	if m.showHelp {
		s.WriteString(st.hint.Render("\nSPACE pause/resume\nR     reset\nT     theme (" + m.theme.Name + ")\n?     toggle help\nQ     quit"))
	} else {
		s.WriteString(st.hint.Render("\nSP:Pause R:Reset T:Theme ?:Help Q:Quit"))
	}

	canvasView := st.canvas.Render(m.canvas.String())
	return lipgloss.JoinHorizontal(lipgloss.Top, canvasView, st.panel.Width(panelWidth).Render(s.String()))
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
