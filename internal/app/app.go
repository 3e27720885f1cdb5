package app

import (
	"context"
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/sirupsen/logrus"

	"github.com/abhisek/pyquiz/internal/docctx"
	"github.com/abhisek/pyquiz/internal/quizgen"
	"github.com/abhisek/pyquiz/internal/router"
	"github.com/abhisek/pyquiz/internal/screen"
	"github.com/abhisek/pyquiz/internal/screens/home"
	"github.com/abhisek/pyquiz/internal/store"
	"github.com/abhisek/pyquiz/internal/ui/layout"
)

// Deps are the wired services the TUI runs on. Generator and Library
// may be nil (no API key, no study material); the store is required.
type Deps struct {
	Store     store.Store
	Generator quizgen.Generator
	Library   *docctx.Library
	Log       *logrus.Logger

	// Backend labels the store in the header ("sqlite" or "snapshot").
	Backend string
}

// countMsg refreshes the header's stored-question count.
type countMsg int

// AppModel is the root Bubble Tea model.
type AppModel struct {
	deps   Deps
	router *router.Router
	width  int
	height int
	count  int
}

// newAppModel creates a new AppModel with the home screen.
func newAppModel(deps Deps) AppModel {
	homeScreen := home.New(deps.Store, deps.Generator, deps.Library, deps.Log)
	return AppModel{
		deps:   deps,
		router: router.New(homeScreen),
	}
}

func (m AppModel) Init() tea.Cmd {
	return m.refreshCount()
}

// refreshCount re-reads the store count for the header.
func (m AppModel) refreshCount() tea.Cmd {
	st := m.deps.Store
	return func() tea.Msg {
		n, err := st.Count(context.Background())
		if err != nil {
			return countMsg(-1)
		}
		return countMsg(n)
	}
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case countMsg:
		if msg >= 0 {
			m.count = int(msg)
		}
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
		}
	}

	prevDepth := m.router.Depth()
	cmd := m.router.Update(msg)

	// Coming back toward home usually follows a quiz that may have
	// saved questions, so refresh the header count.
	if m.router.Depth() < prevDepth {
		return m, tea.Batch(cmd, m.refreshCount())
	}
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	header := layout.RenderHeader(title, m.count, m.deps.Backend, m.width)

	footerHints := []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
	if hinter, ok := active.(screen.KeyHintProvider); ok {
		if hints := hinter.KeyHints(); len(hints) > 0 {
			footerHints = hints
		}
	} else if m.router.Depth() > 1 {
		footerHints = []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}

	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// Run starts the Bubble Tea program.
func Run(deps Deps) error {
	p := tea.NewProgram(newAppModel(deps))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
