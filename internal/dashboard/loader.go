package dashboard

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/amishk599/skillscan/internal/model"
)

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// ScreenFunc runs one screening pass.
type ScreenFunc func(ctx context.Context) (model.Screening, error)

type screenDoneMsg struct {
	screening model.Screening
	err       error
}

type spinnerTickMsg struct{}

type loaderModel struct {
	document string
	screenFn ScreenFunc
	cancel   context.CancelFunc
	ctx      context.Context
	frame    int
	result   model.Screening
	err      error
	done     bool
}

func (m loaderModel) Init() tea.Cmd {
	return tea.Batch(m.doScreen(), m.tick())
}

func (m loaderModel) doScreen() tea.Cmd {
	screenFn, ctx := m.screenFn, m.ctx
	return func() tea.Msg {
		s, err := screenFn(ctx)
		return screenDoneMsg{screening: s, err: err}
	}
}

func (m loaderModel) tick() tea.Cmd {
	return tea.Tick(80*time.Millisecond, func(time.Time) tea.Msg {
		return spinnerTickMsg{}
	})
}

func (m loaderModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case screenDoneMsg:
		m.result = msg.screening
		m.err = msg.err
		m.done = true
		return m, tea.Quit
	case spinnerTickMsg:
		if m.done {
			return m, nil
		}
		m.frame = (m.frame + 1) % len(spinnerFrames)
		return m, m.tick()
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.cancel()
			m.done = true
			m.err = fmt.Errorf("cancelled")
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m loaderModel) View() string {
	if m.done {
		return ""
	}
	spinner := lipgloss.NewStyle().Foreground(lipgloss.Color("33")).Render(spinnerFrames[m.frame])
	return fmt.Sprintf("%s Analyzing %s...\n", spinner, m.document)
}

// RunLoader shows a spinner while the document is screened. It renders
// inline (no alt screen).
func RunLoader(document string, screenFn ScreenFunc) (model.Screening, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	m := loaderModel{
		document: document,
		screenFn: screenFn,
		ctx:      ctx,
		cancel:   cancel,
	}
	p := tea.NewProgram(m)
	result, err := p.Run()
	if err != nil {
		return model.Screening{}, err
	}
	final := result.(loaderModel)
	return final.result, final.err
}
