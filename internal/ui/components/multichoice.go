package components

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/balajinix/avani-academy/internal/ui/theme"
)

// MultiChoice is a multiple-choice selector component.
type MultiChoice struct {
	Question     string
	Options      []string
	CorrectIndex int
	Selected     int
	Submitted    bool
	ChosenIndex  int

	// Reveal controls whether the correct option is highlighted after a
	// submission. It stays false while the learner still has a retry left,
	// so a wrong first try does not give the answer away.
	Reveal bool
}

// NewMultiChoice creates a new multiple-choice component.
func NewMultiChoice(question string, options []string, correctIndex int) MultiChoice {
	return MultiChoice{
		Question:     question,
		Options:      options,
		CorrectIndex: correctIndex,
		Selected:     0,
		Submitted:    false,
		ChosenIndex:  -1,
	}
}

// Init returns nil.
func (m MultiChoice) Init() tea.Cmd {
	return nil
}

// Update handles keyboard navigation and selection.
func (m MultiChoice) Update(msg tea.Msg) (MultiChoice, tea.Cmd) {
	if m.Submitted {
		return m, nil
	}

	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key := kmsg.String(); key {
	case "up", "k":
		if m.Selected > 0 {
			m.Selected--
		}
	case "down", "j":
		if m.Selected < len(m.Options)-1 {
			m.Selected++
		}
	case "1", "2", "3", "4", "5", "6":
		idx := int(key[0] - '1')
		if idx < len(m.Options) {
			m.Selected = idx
			m.Submitted = true
			m.ChosenIndex = idx
		}
	case "enter":
		m.Submitted = true
		m.ChosenIndex = m.Selected
	}

	return m, nil
}

// Reset clears the submission so the same question can be answered again,
// keeping the cursor where it was.
func (m *MultiChoice) Reset() {
	m.Submitted = false
	m.ChosenIndex = -1
	m.Reveal = false
}

// View renders the multiple-choice component.
func (m MultiChoice) View() string {
	questionStyle := lipgloss.NewStyle().Foreground(theme.Text).Bold(true)
	s := questionStyle.Render(m.Question) + "\n\n"

	labels := []string{"A", "B", "C", "D", "E", "F"}

	for i, opt := range m.Options {
		label := labels[i%len(labels)]
		prefix := "  "
		if i == m.Selected && !m.Submitted {
			prefix = "▸ "
		}

		line := fmt.Sprintf("%s%s)  %s", prefix, label, opt)

		switch {
		case m.Submitted && m.Reveal && i == m.CorrectIndex:
			s += lipgloss.NewStyle().Foreground(theme.Success).Bold(true).Render(line) + "\n"
		case m.Submitted && i == m.ChosenIndex && i != m.CorrectIndex:
			s += lipgloss.NewStyle().Foreground(theme.Error).Bold(true).Render(line) + "\n"
		case m.Submitted && i == m.ChosenIndex:
			s += lipgloss.NewStyle().Foreground(theme.Success).Bold(true).Render(line) + "\n"
		case m.Submitted:
			s += lipgloss.NewStyle().Foreground(theme.TextDim).Render(line) + "\n"
		case i == m.Selected:
			s += lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(line) + "\n"
		default:
			s += lipgloss.NewStyle().Foreground(theme.Text).Render(line) + "\n"
		}
	}

	return s
}

// IsCorrect returns true if the user chose the correct answer.
func (m MultiChoice) IsCorrect() bool {
	return m.Submitted && m.ChosenIndex == m.CorrectIndex
}

// Chosen returns the text of the submitted option, or "" before submission.
func (m MultiChoice) Chosen() string {
	if !m.Submitted || m.ChosenIndex < 0 || m.ChosenIndex >= len(m.Options) {
		return ""
	}
	return m.Options[m.ChosenIndex]
}
