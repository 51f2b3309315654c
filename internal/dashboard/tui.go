// Package dashboard is the interactive terminal front end: a role picker, a
// loading spinner, and a scrollable dashboard shared by both roles.
package dashboard

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/amishk599/skillscan/internal/model"
	"github.com/amishk599/skillscan/internal/report"
	"github.com/amishk599/skillscan/internal/role"
)

var (
	borderStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("39")) // bright blue

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15")).
			Padding(0, 1)

	roleTagStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245"))

	statusBarStyle = lipgloss.NewStyle().
			Padding(0, 1).
			Foreground(lipgloss.Color("252")).
			Background(lipgloss.Color("236"))

	ratingStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39"))

	decisionStyles = map[model.Decision]lipgloss.Style{
		model.DecisionAccept: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("34")),
		model.DecisionHold:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("214")),
		model.DecisionReject: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("160")),
	}

	errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
)

// Options wires the dashboard's side effects.
type Options struct {
	ReportDir string
	Report    report.Options
	Store     model.DecisionStore
}

type dashboardModel struct {
	screening model.Screening
	role      role.Role
	opts      Options

	viewport viewport.Model
	width    int
	height   int
	ready    bool

	rating   int
	decision model.Decision
	status   string
	failed   bool
}

func newDashboardModel(s model.Screening, r role.Role, opts Options) dashboardModel {
	return dashboardModel{
		screening: s,
		role:      r,
		opts:      opts,
		rating:    role.MinRating,
	}
}

func (m dashboardModel) Init() tea.Cmd {
	return nil
}

func (m dashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.recalcLayout()
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "tab":
			m.role = m.role.Other()
			m.decision = ""
			m.status = "switched to " + m.role.Label
			m.failed = false
			m.recalcContent()
			return m, nil
		case "e":
			m.exportReport()
			return m, nil
		case "+", "=", "right", "l":
			if m.role.CanRate && m.rating < role.MaxRating {
				m.rating++
			}
			return m, nil
		case "-", "left", "h":
			if m.role.CanRate && m.rating > role.MinRating {
				m.rating--
			}
			return m, nil
		case "enter":
			if m.role.CanRate {
				m.finalizeDecision()
			}
			return m, nil
		}
	}

	// Forward other keys (up/down/pgup/pgdn/home/end) to the viewport.
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m *dashboardModel) exportReport() {
	path, err := report.Save(m.opts.ReportDir, m.screening, m.role, m.opts.Report)
	if err != nil {
		m.status = fmt.Sprintf("export failed: %v", err)
		m.failed = true
		return
	}
	m.status = "report saved to " + path
	m.failed = false
}

func (m *dashboardModel) finalizeDecision() {
	decision, err := role.Decide(m.rating)
	if err != nil {
		m.status = err.Error()
		m.failed = true
		return
	}
	m.decision = decision

	if m.opts.Store == nil {
		m.status = "decision: " + strings.ToUpper(string(decision))
		m.failed = false
		return
	}
	rec, err := m.opts.Store.Record(model.DecisionRecord{
		Document: m.screening.Document,
		Role:     m.role.Name,
		Score:    m.screening.Result.Score,
		Rating:   m.rating,
		Decision: decision,
	})
	if err != nil {
		m.status = fmt.Sprintf("decision not recorded: %v", err)
		m.failed = true
		return
	}
	m.status = "decision recorded"
	if rec.ID != "" {
		m.status += " (" + rec.ID + ")"
	}
	m.failed = false
}

func (m *dashboardModel) recalcLayout() {
	// Title (1 line) + border top/bottom (2) + rating (1) + status bar (1).
	w := max(m.width-4, 20)
	h := max(m.height-5, 5)

	if !m.ready {
		m.viewport = viewport.New(w, h)
		m.ready = true
	} else {
		m.viewport.Width = w
		m.viewport.Height = h
	}
	m.recalcContent()
}

func (m *dashboardModel) recalcContent() {
	m.viewport.SetContent(renderScreening(m.screening, m.role, m.viewport.Width))
}

func (m dashboardModel) View() string {
	if !m.ready {
		return "Initializing..."
	}

	title := titleStyle.Render(m.role.DashboardTitle) + roleTagStyle.Render("  "+m.role.Label)
	content := borderStyle.Width(m.width - 2).Render(m.viewport.View())

	return title + "\n" + content + "\n" + m.ratingLine() + "\n" + m.statusBar()
}

func (m dashboardModel) ratingLine() string {
	if !m.role.CanRate {
		return ""
	}
	line := " Interview rating: " + ratingStyle.Render(fmt.Sprintf("%2d", m.rating)) + " / 10  " +
		ratingStyle.Render(strings.Repeat("●", m.rating)) + roleTagStyle.Render(strings.Repeat("○", role.MaxRating-m.rating))
	if m.decision != "" {
		line += "   " + decisionStyles[m.decision].Render(strings.ToUpper(string(m.decision)))
	}
	return line
}

func (m dashboardModel) statusBar() string {
	keys := " tab switch role  e export report  ↑/↓ scroll  q quit"
	if m.role.CanRate {
		keys = " +/- rate  enter finalize" + keys
	}
	text := keys
	if m.status != "" {
		st := m.status
		if m.failed {
			st = errorStyle.Render(st)
		}
		text = " " + st + "   |" + keys
	}
	return statusBarStyle.Width(m.width).Render(text)
}

// RunDashboard shows the dashboard for a finished screening until the user quits.
func RunDashboard(s model.Screening, r role.Role, opts Options) error {
	p := tea.NewProgram(newDashboardModel(s, r, opts), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
