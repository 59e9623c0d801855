package tui

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/rjsim/internal/chart"
	"github.com/san-kum/rjsim/internal/physics"
	"github.com/san-kum/rjsim/internal/sweep"
)

var (
	cyan    = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	white   = lipgloss.NewStyle().Foreground(lipgloss.Color("255"))
	dim     = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
	dimmer  = lipgloss.NewStyle().Foreground(lipgloss.Color("238"))
	red     = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
	blue    = lipgloss.NewStyle().Foreground(lipgloss.Color("75"))
	magenta = lipgloss.NewStyle().Foreground(lipgloss.Color("213"))
)

const (
	minSamples = 2
	maxSamples = 400
)

type model struct {
	machine physics.Machine
	polymer physics.Polymer

	kind   sweep.Kind
	zoom   bool
	n      int
	result *sweep.Result
	err    error

	width  int
	height int
}

// NewViewer returns the viewer model with the omega sweep already computed.
func NewViewer(m physics.Machine, p physics.Polymer, n int) model {
	if n < minSamples {
		n = minSamples
	}
	v := model{
		machine: m,
		polymer: p,
		kind:    sweep.AngularVelocity,
		n:       n,
		width:   80,
		height:  24,
	}
	v.recompute()
	return v
}

func (m *model) recompute() {
	spec := sweep.DefaultSpec(m.kind)
	spec.N = m.n
	m.result, m.err = sweep.Run(context.Background(), spec, m.machine, m.polymer)
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}
	return m, nil
}

func (m model) handleKey(msg tea.KeyMsg) (model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c", "esc":
		return m, tea.Quit
	case "tab":
		if m.kind == sweep.AngularVelocity {
			m.kind = sweep.Viscosity
		} else {
			m.kind = sweep.AngularVelocity
		}
		m.recompute()
	case "z":
		m.zoom = !m.zoom
	case "+", "=":
		if m.n*2 <= maxSamples {
			m.n *= 2
			m.recompute()
		}
	case "-", "_":
		if m.n/2 >= minSamples {
			m.n /= 2
			m.recompute()
		}
	}
	return m, nil
}

func (m model) View() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString("  " + cyan.Render("r j s i m") + "  " + dim.Render(m.machine.Name+" / "+m.polymer.Name) + "\n")
	b.WriteString(dimmer.Render("  "+strings.Repeat("─", 40)) + "\n")

	view := "full"
	if m.zoom {
		view = "zoom ≤ 2e-5 m"
	}
	b.WriteString(fmt.Sprintf("  %s %s   %s %s   %s %s\n",
		dim.Render("sweep"), white.Render(m.kind.String()),
		dim.Render("view"), white.Render(view),
		dim.Render("n"), magenta.Render(fmt.Sprint(m.n))))

	if m.err != nil {
		b.WriteString("\n  " + red.Render("error: "+m.err.Error()) + "\n")
	} else if m.result != nil {
		b.WriteString(fmt.Sprintf("  %s %.4g   %s %.4g m/s\n\n",
			dim.Render("Ω_th"), m.result.Derived.Threshold,
			dim.Render("U"), m.result.Derived.InitialVelocity))

		s := chart.FromResult(m.result, m.zoom)
		if s.Len() == 0 {
			b.WriteString("  " + dim.Render("no points under the zoom limit") + "\n")
		} else {
			style := red
			if m.zoom {
				style = blue
			}
			b.WriteString(style.Render(chart.Scatter(s, m.canvasWidth(), m.canvasHeight())))
		}
	}

	b.WriteString("\n")
	b.WriteString(dim.Render("  tab sweep   z zoom   +/- samples   q quit") + "\n")
	return b.String()
}

func (m model) canvasWidth() int {
	w := m.width - 4
	if w < 20 {
		w = 20
	}
	return w
}

func (m model) canvasHeight() int {
	h := m.height - 12
	if h < 6 {
		h = 6
	}
	return h
}

// Run starts the viewer in the alternate screen.
func Run(m physics.Machine, p physics.Polymer, n int) error {
	prog := tea.NewProgram(NewViewer(m, p, n), tea.WithAltScreen())
	_, err := prog.Run()
	return err
}
