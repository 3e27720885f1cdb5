package stats

import (
	"context"
	"fmt"
	"sort"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/pyquiz/internal/screen"
	"github.com/abhisek/pyquiz/internal/store"
	"github.com/abhisek/pyquiz/internal/ui/theme"
)

// countsMsg carries the per-topic counts loaded from the store.
type countsMsg struct {
	Counts map[string]int
	Err    error
}

// StatsScreen lists how many questions the bank holds per topic.
type StatsScreen struct {
	st     store.Store
	counts map[string]int
	errMsg string
	loaded bool
}

var _ screen.Screen = (*StatsScreen)(nil)

// New creates the question bank stats screen.
func New(st store.Store) *StatsScreen {
	return &StatsScreen{st: st}
}

func (s *StatsScreen) Init() tea.Cmd {
	st := s.st
	return func() tea.Msg {
		counts, err := st.TopicCounts(context.Background())
		return countsMsg{Counts: counts, Err: err}
	}
}

func (s *StatsScreen) Title() string {
	return "Question Bank"
}

func (s *StatsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if m, ok := msg.(countsMsg); ok {
		s.loaded = true
		if m.Err != nil {
			s.errMsg = m.Err.Error()
		} else {
			s.counts = m.Counts
		}
	}
	return s, nil
}

func (s *StatsScreen) View(width, height int) string {
	var b strings.Builder

	b.WriteString(theme.Title.Width(width).Render("Question Bank"))
	b.WriteString("\n\n")

	switch {
	case !s.loaded:
		b.WriteString(theme.Subtitle.Width(width).Render("Loading..."))
	case s.errMsg != "":
		b.WriteString(theme.Incorrect.Width(width).Align(lipgloss.Center).Render(s.errMsg))
	case len(s.counts) == 0:
		b.WriteString(theme.Subtitle.Width(width).Render("The bank is empty. Generate some questions first."))
	default:
		topics := make([]string, 0, len(s.counts))
		for t := range s.counts {
			topics = append(topics, t)
		}
		sort.Strings(topics)

		total := 0
		var rows []string
		for _, t := range topics {
			n := s.counts[t]
			total += n
			rows = append(rows, fmt.Sprintf("%-45s %4d", t, n))
		}
		rows = append(rows, strings.Repeat("-", 50))
		rows = append(rows, fmt.Sprintf("%-45s %4d", "Total", total))

		table := theme.Body.Render(strings.Join(rows, "\n"))
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, table))
	}

	return lipgloss.PlaceVertical(height, lipgloss.Center, b.String())
}
