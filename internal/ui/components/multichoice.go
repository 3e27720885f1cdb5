package components

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/pyquiz/internal/question"
	"github.com/abhisek/pyquiz/internal/ui/theme"
)

// MultiChoice is a multiple-choice selector. The correct option is
// identified by value, matching how questions carry their answer.
type MultiChoice struct {
	Question    string
	Options     []string
	Answer      string
	Selected    int
	Submitted   bool
	ChosenIndex int
}

// NewMultiChoice creates a new multiple-choice component.
func NewMultiChoice(questionText string, options []string, answer string) MultiChoice {
	return MultiChoice{
		Question:    questionText,
		Options:     options,
		Answer:      answer,
		Selected:    0,
		Submitted:   false,
		ChosenIndex: -1,
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

	switch kmsg.String() {
	case "up", "k":
		if m.Selected > 0 {
			m.Selected--
		}
	case "down", "j":
		if m.Selected < len(m.Options)-1 {
			m.Selected++
		}
	case "enter":
		m.Submitted = true
		m.ChosenIndex = m.Selected
	}

	return m, nil
}

// View renders the question and options. After submission the correct
// option shows green and a wrong pick shows red.
func (m MultiChoice) View() string {
	questionStyle := lipgloss.NewStyle().Foreground(theme.Text).Bold(true)
	s := questionStyle.Render(m.Question) + "\n\n"

	labels := []string{"A", "B", "C", "D"}

	for i, opt := range m.Options {
		label := fmt.Sprintf("%d", i+1)
		if i < len(labels) {
			label = labels[i]
		}

		prefix := "  "
		if i == m.Selected && !m.Submitted {
			prefix = "> "
		}

		line := fmt.Sprintf("%s%s)  %s", prefix, label, opt)

		if m.Submitted {
			switch {
			case question.SameOption(opt, m.Answer):
				s += lipgloss.NewStyle().Foreground(theme.Success).Bold(true).Render(line) + "\n"
			case i == m.ChosenIndex:
				s += lipgloss.NewStyle().Foreground(theme.Error).Bold(true).Render(line) + "\n"
			default:
				s += lipgloss.NewStyle().Foreground(theme.TextDim).Render(line) + "\n"
			}
		} else {
			if i == m.Selected {
				s += lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(line) + "\n"
			} else {
				s += lipgloss.NewStyle().Foreground(theme.Text).Render(line) + "\n"
			}
		}
	}

	return s
}

// Chosen returns the text of the submitted option, or "" before
// submission.
func (m MultiChoice) Chosen() string {
	if !m.Submitted || m.ChosenIndex < 0 || m.ChosenIndex >= len(m.Options) {
		return ""
	}
	return m.Options[m.ChosenIndex]
}

// IsCorrect returns true if the user chose the correct answer.
func (m MultiChoice) IsCorrect() bool {
	return m.Submitted && question.SameOption(m.Chosen(), m.Answer)
}
