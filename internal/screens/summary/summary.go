package summary

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/sirupsen/logrus"

	"github.com/abhisek/pyquiz/internal/export"
	"github.com/abhisek/pyquiz/internal/quiz"
	"github.com/abhisek/pyquiz/internal/router"
	"github.com/abhisek/pyquiz/internal/screen"
	"github.com/abhisek/pyquiz/internal/ui/components"
	"github.com/abhisek/pyquiz/internal/ui/layout"
	"github.com/abhisek/pyquiz/internal/ui/theme"
)

// exportDoneMsg reports the outcome of a PDF export.
type exportDoneMsg struct {
	Path string
	Err  error
}

// SummaryScreen shows the final score and offers a PDF export of the
// quiz. Export failures are shown but never block leaving the screen.
type SummaryScreen struct {
	sess  *quiz.Session
	topic string
	log   *logrus.Logger

	menu       components.Menu
	exporting  bool
	exportPath string
	exportErr  error
}

var _ screen.Screen = (*SummaryScreen)(nil)
var _ screen.KeyHintProvider = (*SummaryScreen)(nil)

// New creates the summary screen for a completed session.
func New(sess *quiz.Session, topic string, log *logrus.Logger) *SummaryScreen {
	s := &SummaryScreen{sess: sess, topic: topic, log: log}

	s.menu = components.NewMenu([]components.MenuItem{
		{
			Label:    "EXPORT PDF",
			Disabled: len(sess.Questions()) == 0,
			Action: func() tea.Cmd {
				return s.exportPDF()
			},
		},
		{
			Label: "DONE",
			Action: func() tea.Cmd {
				return func() tea.Msg { return router.PopScreenMsg{} }
			},
		},
	})

	return s
}

func (s *SummaryScreen) Init() tea.Cmd {
	return nil
}

func (s *SummaryScreen) Title() string {
	return "Quiz Summary"
}

func (s *SummaryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Esc", Description: "Home"},
	}
}

func (s *SummaryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case exportDoneMsg:
		s.exporting = false
		s.exportPath = msg.Path
		s.exportErr = msg.Err
		if msg.Err != nil && s.log != nil {
			s.log.WithError(msg.Err).Error("pdf export failed")
		}
		return s, nil

	case tea.KeyMsg:
		if s.exporting {
			return s, nil
		}
		var cmd tea.Cmd
		s.menu, cmd = s.menu.Update(msg)
		return s, cmd
	}

	return s, nil
}

// exportPDF renders the session's questions to a PDF in the working
// directory.
func (s *SummaryScreen) exportPDF() tea.Cmd {
	s.exporting = true
	sess := s.sess
	topic := s.topic

	return func() tea.Msg {
		correct, total := sess.Score()
		path := fmt.Sprintf("pyquiz_%s.pdf", sess.ID)

		err := export.PDF(export.PDFDoc{
			Title:     "PyQuiz Practice: " + topic,
			Subtitle:  fmt.Sprintf("Score: %d/%d", correct, total),
			Questions: sess.Questions(),
		}, path)
		if err != nil {
			return exportDoneMsg{Err: err}
		}
		return exportDoneMsg{Path: path}
	}
}

func (s *SummaryScreen) View(width, height int) string {
	correct, total := s.sess.Score()

	var b strings.Builder

	b.WriteString(theme.Title.Width(width).Render("Quiz complete!"))
	b.WriteString("\n\n")

	b.WriteString(theme.Subtitle.Width(width).Render("Topic: " + s.topic))
	b.WriteString("\n\n")

	scoreStyle := theme.Correct
	if total == 0 || correct*2 < total {
		scoreStyle = theme.Incorrect
	}
	b.WriteString(scoreStyle.Width(width).Align(lipgloss.Center).Render(
		fmt.Sprintf("Score: %d / %d", correct, total)))

	if total > 0 {
		pct := float64(correct) / float64(total) * 100
		b.WriteString("\n")
		b.WriteString(theme.Subtitle.Width(width).Render(fmt.Sprintf("%.0f%% correct", pct)))
	}

	b.WriteString("\n\n")

	switch {
	case s.exporting:
		b.WriteString(theme.Hint.Width(width).Align(lipgloss.Center).Render("Exporting..."))
	case s.exportErr != nil:
		b.WriteString(theme.Incorrect.Width(width).Align(lipgloss.Center).Render(
			"Export failed: " + s.exportErr.Error()))
	case s.exportPath != "":
		b.WriteString(theme.Correct.Width(width).Align(lipgloss.Center).Render(
			"Saved " + s.exportPath))
	}

	b.WriteString("\n\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.menu.View()))

	return lipgloss.PlaceVertical(height, lipgloss.Center, b.String())
}
