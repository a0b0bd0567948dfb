// Package tui provides the live progress view for an implementation batch.
package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/fentz26/confgen/internal/models"
)

var (
	successColor = lipgloss.Color("#10B981")
	errorColor   = lipgloss.Color("#EF4444")
	mutedColor   = lipgloss.Color("#6B7280")
	primaryColor = lipgloss.Color("#7C3AED")

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(primaryColor).
			Padding(0, 1)

	okStyle   = lipgloss.NewStyle().Foreground(successColor)
	failStyle = lipgloss.NewStyle().Foreground(errorColor)
	helpStyle = lipgloss.NewStyle().Foreground(mutedColor).Italic(true)
)

// maxRecent bounds the scrollback of per-task lines kept on screen.
const maxRecent = 12

type resultMsg models.Result

type streamClosedMsg struct{}

// Model renders batch progress as results stream in. The model only
// displays the stream; the batch itself runs elsewhere and keeps running
// if the view is dismissed.
type Model struct {
	bar        progress.Model
	total      int
	completed  int
	successful int
	failed     int
	recent     []string
	results    <-chan models.Result
	width      int
}

// New creates a progress model for a batch of total tasks. Results arrive
// on results; the view quits on its own once the channel closes.
func New(total int, results <-chan models.Result) *Model {
	return &Model{
		bar:     progress.New(progress.WithDefaultGradient()),
		total:   total,
		results: results,
	}
}

// Run drives the TUI until the result stream ends or the user dismisses
// the view.
func (m *Model) Run() error {
	if _, err := tea.NewProgram(m).Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}

func (m *Model) Init() tea.Cmd {
	return m.waitForResult()
}

// waitForResult blocks on the next streamed result.
func (m *Model) waitForResult() tea.Cmd {
	return func() tea.Msg {
		res, ok := <-m.results
		if !ok {
			return streamClosedMsg{}
		}
		return resultMsg(res)
	}
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.bar.Width = msg.Width - 8
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		}
		return m, nil

	case resultMsg:
		m.completed++
		res := models.Result(msg)
		if res.Success {
			m.successful++
			m.recent = append(m.recent, okStyle.Render(fmt.Sprintf("✅ %s: %s - Created", res.ID, res.Name)))
		} else {
			m.failed++
			m.recent = append(m.recent, failStyle.Render(fmt.Sprintf("❌ %s: %s - Failed: %s", res.ID, res.Name, res.Detail)))
		}
		if len(m.recent) > maxRecent {
			m.recent = m.recent[len(m.recent)-maxRecent:]
		}
		return m, m.waitForResult()

	case streamClosedMsg:
		return m, tea.Quit
	}
	return m, nil
}

func (m *Model) View() string {
	pct := 0.0
	if m.total > 0 {
		pct = float64(m.completed) / float64(m.total)
	}

	s := titleStyle.Render("confgen - parallel implementation") + "\n\n"
	s += fmt.Sprintf("  %d/%d tasks  %s  %s\n\n",
		m.completed, m.total,
		okStyle.Render(fmt.Sprintf("✅ %d", m.successful)),
		failStyle.Render(fmt.Sprintf("❌ %d", m.failed)),
	)
	s += "  " + m.bar.ViewAs(pct) + "\n\n"
	for _, line := range m.recent {
		s += "  " + line + "\n"
	}
	s += "\n" + helpStyle.Render("  q to abort display (batch keeps running)") + "\n"
	return s
}
