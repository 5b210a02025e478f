// Package tui provides the interactive terminal UI for the helper.
package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/marikraa/metropolia-first-year-helper/internal/core/domain"
	"github.com/marikraa/metropolia-first-year-helper/internal/core/ports/driving"
)

var (
	headerStyle  = lipgloss.NewStyle().Bold(true)
	statusStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	mutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	answerStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	resultsFrame = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	inputFrame   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
)

// askResultMsg delivers the outcome of an ask call back into Update.
type askResultMsg struct {
	result domain.AskResult
	err    error
}

// Model is the Bubble Tea model for the helper TUI.
type Model struct {
	ask      driving.AskService
	input    textinput.Model
	viewport viewport.Model
	status   string
	asking   bool
	ready    bool
}

// NewModel creates the TUI model around the ask service.
func NewModel(ask driving.AskService) Model {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = "Type a question and press Enter"
	ti.Focus()
	ti.CharLimit = 0

	m := Model{
		ask:      ask,
		input:    ti,
		viewport: viewport.New(0, 0),
		status:   "Ready.",
	}
	m.viewport.SetContent(m.renderTopicList())
	return m
}

// Init starts the text input cursor blink.
func (m Model) Init() tea.Cmd { return textinput.Blink }

// Update handles key and window events and updates the view state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.ready = true
		_, rh := resultsFrame.GetFrameSize()
		_, qh := inputFrame.GetFrameSize()
		reserved := 1 + 1 + qh + 1 // header, status, input frame, spacer
		vh := msg.Height - reserved - rh
		if vh < 3 {
			vh = 3
		}
		m.viewport.Width = maxInt(20, msg.Width-2)
		m.viewport.Height = vh
		return m, nil

	case askResultMsg:
		m.asking = false
		if msg.err != nil {
			m.status = "Error: " + msg.err.Error()
			return m, nil
		}
		m.status = fmt.Sprintf("Results for %q", msg.result.Question)
		m.viewport.SetContent(m.renderResult(msg.result))
		m.viewport.GotoTop()
		return m, nil

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		case tea.KeyEnter:
			question := strings.TrimSpace(m.input.Value())
			if question == "" || m.asking {
				return m, nil
			}
			m.asking = true
			m.status = "Thinking..."
			return m, m.askCmd(question)
		}
		switch msg.String() {
		case "down", "j":
			if !m.input.Focused() {
				m.viewport.LineDown(1)
				return m, nil
			}
		case "up", "k":
			if !m.input.Focused() {
				m.viewport.LineUp(1)
				return m, nil
			}
		case "tab":
			if m.input.Focused() {
				m.input.Blur()
			} else {
				m.input.Focus()
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View renders the TUI layout.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	header := headerStyle.Render("Metropolia First-Year Helper")
	results := resultsFrame.Render(m.viewport.View())
	input := inputFrame.Render(m.input.View())
	status := statusStyle.Render(m.status)
	return header + "\n" + results + "\n" + input + "\n" + status
}

func (m Model) askCmd(question string) tea.Cmd {
	return func() tea.Msg {
		result, err := m.ask.Ask(context.Background(), question)
		return askResultMsg{result: result, err: err}
	}
}

func (m Model) renderResult(result domain.AskResult) string {
	if len(result.Topics) == 0 {
		return "No matching topics found. Try different words.\n\n" + m.renderTopicList()
	}

	var b strings.Builder
	if result.Answered {
		b.WriteString(answerStyle.Render(result.Answer))
		b.WriteString("\n\n")
	}
	b.WriteString("These topics might help:\n\n")
	for i, topic := range result.Topics {
		b.WriteString(titleStyle.Render(fmt.Sprintf("[%d] %s", i+1, topic.Title)))
		b.WriteString("\n")
		b.WriteString(topic.ShortDescription)
		b.WriteString("\n\n")
		b.WriteString(topic.Details)
		if len(topic.Links) > 0 {
			b.WriteString("\n")
			for _, link := range topic.Links {
				b.WriteString(mutedStyle.Render(fmt.Sprintf("  %s: %s", link.Label, link.URL)))
				b.WriteString("\n")
			}
		}
		b.WriteString("\n")
	}
	return b.String()
}

func (m Model) renderTopicList() string {
	var b strings.Builder
	b.WriteString("Topics:\n\n")
	for _, topic := range m.ask.Registry().Topics() {
		b.WriteString(titleStyle.Render(topic.Title))
		b.WriteString("\n")
		b.WriteString(topic.ShortDescription)
		b.WriteString("\n\n")
	}
	return b.String()
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
