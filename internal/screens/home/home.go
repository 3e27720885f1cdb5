package home

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/sirupsen/logrus"

	"github.com/abhisek/pyquiz/internal/docctx"
	"github.com/abhisek/pyquiz/internal/quizgen"
	"github.com/abhisek/pyquiz/internal/router"
	"github.com/abhisek/pyquiz/internal/screen"
	"github.com/abhisek/pyquiz/internal/screens/setup"
	"github.com/abhisek/pyquiz/internal/screens/stats"
	"github.com/abhisek/pyquiz/internal/store"
	"github.com/abhisek/pyquiz/internal/ui/components"
	"github.com/abhisek/pyquiz/internal/ui/theme"
)

const banner = `
    ____        ____        _
   / __ \__  __/ __ \__  __(_)___
  / /_/ / / / / / / / / / / /_  /
 / ____/ /_/ / /_/ / /_/ / / / /_
/_/    \__, /\___\_\__,_/_/ /___/
      /____/
`

// HomeScreen is the main menu of the application.
type HomeScreen struct {
	menu  components.Menu
	count int
	genOK bool
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates the home screen. A nil generator disables live
// generation (no API key configured); the question bank still works.
func New(st store.Store, gen quizgen.Generator, lib *docctx.Library, log *logrus.Logger) *HomeScreen {
	count, err := st.Count(context.Background())
	if err != nil && log != nil {
		log.WithError(err).Warn("failed to count stored questions")
	}

	items := []components.MenuItem{
		{
			Label:    "START QUIZ",
			Disabled: gen == nil && count == 0,
			Action: func() tea.Cmd {
				return func() tea.Msg {
					return router.PushScreenMsg{Screen: setup.New(st, gen, lib, log)}
				}
			},
		},
		{
			Label: "QUESTION BANK",
			Action: func() tea.Cmd {
				return func() tea.Msg {
					return router.PushScreenMsg{Screen: stats.New(st)}
				}
			},
		},
		{
			Label: "EXIT",
			Action: func() tea.Cmd {
				return tea.Quit
			},
		},
	}

	return &HomeScreen{
		menu:  components.NewMenu(items),
		count: count,
		genOK: gen != nil,
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	var sections []string

	sections = append(sections, theme.Title.Width(width).Render(banner))
	sections = append(sections, theme.Subtitle.Width(width).Render(
		"Python practice questions, generated and scored in your terminal"))

	status := fmt.Sprintf("%d questions in the bank", h.count)
	if !h.genOK {
		status += "   (generation off: no API key)"
	}
	sections = append(sections, theme.Subtitle.Width(width).Render(status))

	menu := lipgloss.PlaceHorizontal(width, lipgloss.Center, h.menu.View())
	sections = append(sections, menu)

	content := strings.Join(sections, "\n\n")
	return lipgloss.PlaceVertical(height, lipgloss.Center, content)
}

func (h *HomeScreen) Title() string {
	return "Home"
}
