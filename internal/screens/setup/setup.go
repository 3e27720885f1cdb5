package setup

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/sirupsen/logrus"

	"github.com/abhisek/pyquiz/internal/docctx"
	"github.com/abhisek/pyquiz/internal/question"
	"github.com/abhisek/pyquiz/internal/quiz"
	"github.com/abhisek/pyquiz/internal/quizgen"
	"github.com/abhisek/pyquiz/internal/router"
	"github.com/abhisek/pyquiz/internal/screen"
	quizscreen "github.com/abhisek/pyquiz/internal/screens/quiz"
	"github.com/abhisek/pyquiz/internal/store"
	"github.com/abhisek/pyquiz/internal/ui/components"
	"github.com/abhisek/pyquiz/internal/ui/layout"
	"github.com/abhisek/pyquiz/internal/ui/theme"
)

type step int

const (
	stepTopic step = iota
	stepCustomTopic
	stepSize
	stepSource
	stepSave
)

// SetupScreen walks through quiz configuration: topic, batch size,
// question source, and whether generated questions are saved.
type SetupScreen struct {
	st  store.Store
	gen quizgen.Generator
	lib *docctx.Library
	log *logrus.Logger

	step       step
	topicMenu  components.Menu
	topicInput components.TextInput
	sizeMenu   components.Menu
	sourceMenu components.Menu
	saveMenu   components.Menu

	count  int
	topic  string
	size   int
	source quizscreen.Source
}

var _ screen.Screen = (*SetupScreen)(nil)
var _ screen.KeyHintProvider = (*SetupScreen)(nil)

// New creates the setup screen.
func New(st store.Store, gen quizgen.Generator, lib *docctx.Library, log *logrus.Logger) *SetupScreen {
	s := &SetupScreen{
		st:         st,
		gen:        gen,
		lib:        lib,
		log:        log,
		topicInput: components.NewTextInput("Type a topic...", 60),
	}
	s.count, _ = st.Count(context.Background())

	topics := make([]components.MenuItem, 0, len(question.DefaultTopics)+1)
	for _, t := range question.DefaultTopics {
		topic := t
		topics = append(topics, components.MenuItem{
			Label: topic,
			Action: func() tea.Cmd {
				s.topic = topic
				s.step = stepSize
				return nil
			},
		})
	}
	topics = append(topics, components.MenuItem{
		Label: "Custom topic...",
		Action: func() tea.Cmd {
			s.step = stepCustomTopic
			return s.topicInput.Init()
		},
	})
	s.topicMenu = components.NewMenu(topics)

	sizes := make([]components.MenuItem, 0, len(quiz.BatchSizes))
	for _, n := range quiz.BatchSizes {
		n := n
		sizes = append(sizes, components.MenuItem{
			Label: fmt.Sprintf("%d questions", n),
			Action: func() tea.Cmd {
				s.size = n
				s.step = stepSource
				return nil
			},
		})
	}
	s.sizeMenu = components.NewMenu(sizes)

	s.sourceMenu = components.NewMenu([]components.MenuItem{
		{
			Label:    fmt.Sprintf("From the question bank (%d stored)", s.count),
			Disabled: s.count == 0,
			Action: func() tea.Cmd {
				s.source = quizscreen.SourceBank
				return s.start(false)
			},
		},
		{
			Label:    "Generate fresh questions",
			Disabled: gen == nil,
			Action: func() tea.Cmd {
				s.source = quizscreen.SourceGenerate
				s.step = stepSave
				return nil
			},
		},
	})

	s.saveMenu = components.NewMenu([]components.MenuItem{
		{
			Label: "Save new questions to the bank",
			Action: func() tea.Cmd {
				return s.start(true)
			},
		},
		{
			Label: "Don't save",
			Action: func() tea.Cmd {
				return s.start(false)
			},
		},
	})

	return s
}

// start replaces this screen with a running quiz.
func (s *SetupScreen) start(save bool) tea.Cmd {
	cfg := quizscreen.Config{
		Topic:  s.topic,
		Size:   s.size,
		Source: s.source,
		Save:   save,
	}
	return func() tea.Msg {
		return router.ReplaceScreenMsg{
			Screen: quizscreen.New(cfg, s.st, s.gen, s.lib, s.log),
		}
	}
}

func (s *SetupScreen) Init() tea.Cmd {
	return nil
}

func (s *SetupScreen) Title() string {
	return "Quiz Setup"
}

func (s *SetupScreen) KeyHints() []layout.KeyHint {
	if s.step == stepCustomTopic {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Confirm"},
			{Key: "Esc", Description: "Back"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *SetupScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd

	switch s.step {
	case stepTopic:
		s.topicMenu, cmd = s.topicMenu.Update(msg)
	case stepCustomTopic:
		if kmsg, ok := msg.(tea.KeyMsg); ok && kmsg.String() == "enter" {
			topic := strings.TrimSpace(s.topicInput.Value())
			if topic != "" {
				s.topic = topic
				s.step = stepSize
			}
			return s, nil
		}
		s.topicInput, cmd = s.topicInput.Update(msg)
	case stepSize:
		s.sizeMenu, cmd = s.sizeMenu.Update(msg)
	case stepSource:
		s.sourceMenu, cmd = s.sourceMenu.Update(msg)
	case stepSave:
		s.saveMenu, cmd = s.saveMenu.Update(msg)
	}

	return s, cmd
}

func (s *SetupScreen) View(width, height int) string {
	var b strings.Builder

	if s.topic != "" {
		b.WriteString(theme.Subtitle.Width(width).Render("Topic: " + s.topic))
		b.WriteString("\n")
	}
	if s.size > 0 {
		b.WriteString(theme.Subtitle.Width(width).Render(fmt.Sprintf("Length: %d questions", s.size)))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	var prompt, body string
	switch s.step {
	case stepTopic:
		prompt = "Pick a topic"
		body = s.topicMenu.View()
	case stepCustomTopic:
		prompt = "Enter a topic"
		body = s.topicInput.View()
	case stepSize:
		prompt = "How many questions?"
		body = s.sizeMenu.View()
	case stepSource:
		prompt = "Where should questions come from?"
		body = s.sourceMenu.View()
	case stepSave:
		prompt = "Keep the generated questions?"
		body = s.saveMenu.View()
	}

	b.WriteString(theme.Title.Width(width).Render(prompt))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, body))

	return lipgloss.PlaceVertical(height, lipgloss.Center, b.String())
}
