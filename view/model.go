// SPDX-License-Identifier: MIT
// Package: knots/view
//
// model.go - bubbletea model: state, input handling and layout.

package view

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/katalvlaran/knots/coords"
	"github.com/katalvlaran/knots/knot"
	"github.com/katalvlaran/knots/plot"
)

// panelWidth is the side panel width in cells, border included.
const panelWidth = 44

var (
	canvasStyle = lipgloss.NewStyle().Padding(1, 2).Foreground(lipgloss.Color("39"))
	panelStyle  = lipgloss.NewStyle().Border(lipgloss.NormalBorder(), false, false, false, true).BorderForeground(lipgloss.Color("240")).Padding(1, 2).Width(panelWidth)
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true).MarginBottom(1)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(10)
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	graphStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("49")).Padding(1, 0)
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(1)
)

type tickMsg time.Time

// Model is the viewer state. It is a value type; Update returns the next
// state.
type Model struct {
	cfg     config
	name    string
	points  []coords.Point // centred on the bounding-box centre
	radius  float64        // max distance from the centre
	lo, hi  coords.Point
	profile []float64 // z along the curve

	elev, azim float64
	zoom       float64
	running    bool
	canvas     *canvas
}

// NewModel prepares a viewer for c. A curve without coordinates fails with
// knot.ErrUninitialized.
func NewModel(c *knot.Curve, opts ...Option) (Model, error) {
	buf, err := c.Coordinates()
	if err != nil {
		return Model{}, fmt.Errorf("view.NewModel: %w", err)
	}
	cfg := newConfig(opts...)

	lo, hi := buf.Bounds()
	mid := coords.Point{X: (lo.X + hi.X) / 2, Y: (lo.Y + hi.Y) / 2, Z: (lo.Z + hi.Z) / 2}
	pts := buf.Points()
	radius := 0.0
	for i, p := range pts {
		p = coords.Point{X: p.X - mid.X, Y: p.Y - mid.Y, Z: p.Z - mid.Z}
		pts[i] = p
		radius = math.Max(radius, math.Sqrt(p.X*p.X+p.Y*p.Y+p.Z*p.Z))
	}

	m := Model{
		cfg:     cfg,
		name:    c.Name(),
		points:  pts,
		radius:  radius,
		lo:      lo,
		hi:      hi,
		profile: buf.Column(coords.ColZ),
		canvas:  newCanvas(cfg.cols, cfg.rows),
	}
	m.reset()
	m.draw()

	return m, nil
}

func (m *Model) reset() {
	m.elev, m.azim = m.cfg.elev, m.cfg.azim
	m.zoom = 1
	m.running = true
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(m.cfg.frame(), func(t time.Time) tea.Msg { return tickMsg(t) })
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return m.tick()
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case " ":
			m.running = !m.running
		case "r":
			m.reset()
		case "left", "h":
			m.azim -= RotateStep
		case "right", "l":
			m.azim += RotateStep
		case "up", "k":
			m.elev = math.Min(m.elev+RotateStep, 90)
		case "down", "j":
			m.elev = math.Max(m.elev-RotateStep, -90)
		case "+", "=":
			m.zoom = math.Min(m.zoom*ZoomStep, MaxZoom)
		case "-", "_":
			m.zoom = math.Max(m.zoom/ZoomStep, MinZoom)
		}
		m.draw()
	case tea.WindowSizeMsg:
		cols, rows := msg.Width-panelWidth-6, msg.Height-2
		if cols >= 8 && rows >= 4 {
			m.canvas = newCanvas(cols, rows)
			m.draw()
		}
	case tickMsg:
		if m.running {
			m.azim = math.Mod(m.azim+m.cfg.spin, 360)
			m.draw()
		}
		return m, m.tick()
	}

	return m, nil
}

// draw projects every bead onto the canvas. Terminal cells are about twice
// as tall as wide, so columns get double the scale of rows.
func (m *Model) draw() {
	cv := m.canvas
	cv.clear()
	cam := plot.NewCamera(m.elev, m.azim)

	hw, hh := float64(cv.cols-1)/2, float64(cv.rows-1)/2
	s := 0.0
	if m.radius > 0 {
		s = m.zoom * math.Min(hh/m.radius, hw/(2*m.radius))
	}
	for _, p := range m.points {
		u, v := cam.Project(p)
		d := cam.Depth(p)
		level := 0.5
		if m.radius > 0 {
			level = (d/m.radius + 1) / 2
		}
		col := int(math.Round(hw + 2*s*u))
		row := int(math.Round(hh - s*v))
		cv.plot(col, row, d, level)
	}
}

// View implements tea.Model.
func (m Model) View() string {
	canvasView := canvasStyle.Render(m.canvas.String())

	var s strings.Builder
	s.WriteString(headerStyle.Render(m.name) + "\n")
	status := "SPINNING"
	if !m.running {
		status = "PAUSED"
	}
	s.WriteString(status + "\n\n")
	row := func(label, value string) {
		s.WriteString(labelStyle.Render(label) + valueStyle.Render(value) + "\n")
	}
	row("Samples", fmt.Sprintf("%d", len(m.points)))
	row("X", fmt.Sprintf("%.2f … %.2f", m.lo.X, m.hi.X))
	row("Y", fmt.Sprintf("%.2f … %.2f", m.lo.Y, m.hi.Y))
	row("Z", fmt.Sprintf("%.2f … %.2f", m.lo.Z, m.hi.Z))
	row("View", fmt.Sprintf("elev %.0f° azim %.0f°", m.elev, m.azim))
	row("Zoom", fmt.Sprintf("%.2f×", m.zoom))
	if len(m.profile) > 1 {
		chart := asciigraph.Plot(m.profile, asciigraph.Height(4), asciigraph.Width(30), asciigraph.Caption("z along curve"))
		s.WriteString(graphStyle.Render(chart) + "\n")
	}
	s.WriteString(helpStyle.Render("←→↑↓:Rotate +/-:Zoom\nSP:Pause R:Reset Q:Quit"))
	panel := panelStyle.Render(s.String())

	return lipgloss.JoinHorizontal(lipgloss.Top, canvasView, panel)
}

// Run shows c in the terminal until the user quits or ctx is done.
func Run(ctx context.Context, c *knot.Curve, opts ...Option) error {
	m, err := NewModel(c, opts...)
	if err != nil {
		return err
	}

	progOpts := []tea.ProgramOption{tea.WithContext(ctx)}
	if m.cfg.in != nil {
		progOpts = append(progOpts, tea.WithInput(m.cfg.in))
	}
	if m.cfg.out != nil {
		progOpts = append(progOpts, tea.WithOutput(m.cfg.out))
	} else {
		progOpts = append(progOpts, tea.WithAltScreen())
	}

	if _, err = tea.NewProgram(m, progOpts...).Run(); err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return fmt.Errorf("view.Run: %w", err)
	}

	return nil
}
