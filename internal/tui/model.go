package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/shrinidhir/TwiBot/internal/domain"
)

// InspectPort is the TUI-facing subset of the summary service.
type InspectPort interface {
	Inspect(sum domain.Summary, sentence string) (domain.Verdict, error)
}

// Model is the Bubble Tea model for the summary browser. It shows the
// assembled summary and lets the user probe candidate sentences against it.
type Model struct {
	service  InspectPort
	summary  domain.Summary
	budget   int
	input    textinput.Model
	viewport viewport.Model
	status   string
	nearest  int
	ready    bool
}

// New creates a new TUI model instance.
func New(service InspectPort, sum domain.Summary, budget int) Model {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = "Type a candidate sentence and press Enter"
	ti.Focus()
	ti.CharLimit = 0
	vp := viewport.New(0, 0)
	return Model{
		service:  service,
		summary:  sum,
		budget:   budget,
		input:    ti,
		viewport: vp,
		status:   "Summary assembled. Probe a candidate sentence.",
		nearest:  -1,
	}
}

// Init initializes the model (text input cursor blink).
func (m Model) Init() tea.Cmd { return textinput.Blink }

// Update handles key and window events and updates the view state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.ready = true
		// account for frames around summary and query boxes
		_, sh := summaryBoxStyle.GetFrameSize()
		_, qh := queryBoxStyle.GetFrameSize()
		totalHeaderLines := 2                                    // header + usage
		totalFooterLines := 1                                    // status
		reserved := totalHeaderLines + totalFooterLines + qh + 1 // 1 spacer
		vh := msg.Height - reserved
		if vh < 3 {
			vh = 3
		}
		m.viewport.Width = max(20, msg.Width)
		m.viewport.Height = max(3, vh-sh)
		m.viewport.SetContent(m.renderSummary())
		return m, nil
	case tea.KeyMsg:
		// Global quits
		if msg.Type == tea.KeyCtrlC || msg.Type == tea.KeyCtrlD {
			return m, tea.Quit
		}
		switch msg.String() {
		case "enter":
			probe := strings.TrimSpace(m.input.Value())
			if probe != "" {
				verdict, err := m.service.Inspect(m.summary, probe)
				if err != nil {
					m.status = "Error: " + err.Error()
					m.nearest = -1
				} else {
					m.status = describeVerdict(verdict)
					m.nearest = verdict.Nearest
				}
				m.viewport.SetContent(m.renderSummary())
				return m, nil
			}
		case "down":
			m.viewport.LineDown(1)
			return m, nil
		case "up":
			m.viewport.LineUp(1)
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View renders the TUI layout: summary viewport, probe input and status.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	header := lipgloss.NewStyle().Bold(true).Render("Summary Browser")
	usage := lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Render(
		fmt.Sprintf("%d sentences, %d/%d words used", len(m.summary.Sentences), m.summary.WordCount, m.budget))
	body := summaryBoxStyle.Render(m.viewport.View())
	input := queryBoxStyle.Render(m.input.View())
	status := lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Render(m.status)
	return header + "\n" + usage + "\n" + body + "\n" + input + "\n" + status
}

func (m Model) renderSummary() string {
	if len(m.summary.Sentences) == 0 {
		return "Empty summary."
	}
	var b strings.Builder
	for i, sent := range m.summary.Sentences {
		line := fmt.Sprintf("%2d. %s (%d tokens)", i+1, sent.Text, len(sent.Tokens))
		if i == m.nearest {
			line = highlightStyle.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	return b.String()
}

func describeVerdict(v domain.Verdict) string {
	if !v.Valid {
		return fmt.Sprintf("Skip: %d tokens is outside the admissible length", len(v.Tokens))
	}
	if v.Redundant {
		return fmt.Sprintf("Skip: %.3f similarity with sentence %d", v.PeakSimilarity, v.Nearest+1)
	}
	return fmt.Sprintf("Accept: %d tokens, peak similarity %.3f", len(v.Tokens), v.PeakSimilarity)
}

var (
	summaryBoxStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	queryBoxStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	highlightStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true)
)
