package quiz

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/pyquiz/internal/ui/components"
	"github.com/abhisek/pyquiz/internal/ui/theme"
)

var spinnerFrames = []string{"|", "/", "-", "\\"}

func (s *QuizScreen) View(width, height int) string {
	switch s.phase {
	case phaseLoading:
		return s.renderLoading(width, height)
	case phaseError:
		return s.renderError(width, height)
	case phaseFeedback:
		return s.renderFeedback(width, height)
	default:
		return s.renderQuestion(width, height)
	}
}

func (s *QuizScreen) renderLoading(width, height int) string {
	frame := spinnerFrames[s.spinner%len(spinnerFrames)]

	label := "Loading questions..."
	if s.cfg.Source == SourceGenerate {
		label = "Generating a question..."
	}

	content := theme.Title.Width(width).Render(frame+" "+label) + "\n\n" +
		theme.Subtitle.Width(width).Render("Topic: "+s.cfg.Topic)

	return lipgloss.PlaceVertical(height, lipgloss.Center, content)
}

func (s *QuizScreen) renderError(width, height int) string {
	content := theme.Incorrect.Width(width).Align(lipgloss.Center).Render("Something went wrong") +
		"\n\n" +
		theme.Body.Width(width).Align(lipgloss.Center).Render(s.errMsg) +
		"\n\n" +
		theme.Hint.Width(width).Align(lipgloss.Center).Render("Press any key to go back")

	return lipgloss.PlaceVertical(height, lipgloss.Center, content)
}

func (s *QuizScreen) renderQuestion(width, height int) string {
	var b strings.Builder

	b.WriteString(s.renderProgress(width))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.mc.View()))

	return lipgloss.PlaceVertical(height, lipgloss.Center, b.String())
}

func (s *QuizScreen) renderFeedback(width, height int) string {
	var b strings.Builder

	b.WriteString(s.renderProgress(width))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.mc.View()))
	b.WriteString("\n")

	if s.feedback.Correct {
		b.WriteString(theme.Correct.Width(width).Align(lipgloss.Center).Render("Correct!"))
	} else {
		b.WriteString(theme.Incorrect.Width(width).Align(lipgloss.Center).Render(
			"Not quite. The answer is: " + s.feedback.Answer))
	}

	if s.feedback.Explanation != "" {
		b.WriteString("\n\n")
		b.WriteString(theme.Body.Width(width).Align(lipgloss.Center).Render(s.feedback.Explanation))
	}

	b.WriteString("\n\n")
	b.WriteString(theme.Hint.Width(width).Align(lipgloss.Center).Render("Press any key to continue"))

	return lipgloss.PlaceVertical(height, lipgloss.Center, b.String())
}

func (s *QuizScreen) renderProgress(width int) string {
	answered, size := s.sess.Progress()
	correct, _ := s.sess.Score()

	percent := 0.0
	if size > 0 {
		percent = float64(answered) / float64(size)
	}

	barWidth := width - 20
	if barWidth > 60 {
		barWidth = 60
	}

	bar := components.NewProgressBar(
		fmt.Sprintf("Question %d/%d", min(answered+1, size), size),
		percent, false, barWidth)

	line := bar.View() + "  " +
		lipgloss.NewStyle().Foreground(theme.Accent).Render(fmt.Sprintf("Score: %d", correct))

	return lipgloss.PlaceHorizontal(width, lipgloss.Center, line)
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
