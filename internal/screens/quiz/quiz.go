package quiz

import (
	"context"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/sirupsen/logrus"

	"github.com/abhisek/pyquiz/internal/docctx"
	"github.com/abhisek/pyquiz/internal/question"
	quizsess "github.com/abhisek/pyquiz/internal/quiz"
	"github.com/abhisek/pyquiz/internal/quizgen"
	"github.com/abhisek/pyquiz/internal/router"
	"github.com/abhisek/pyquiz/internal/screen"
	"github.com/abhisek/pyquiz/internal/screens/summary"
	"github.com/abhisek/pyquiz/internal/store"
	"github.com/abhisek/pyquiz/internal/ui/components"
	"github.com/abhisek/pyquiz/internal/ui/layout"
)

// Source selects where quiz questions come from.
type Source int

const (
	// SourceBank draws a random batch from the question store.
	SourceBank Source = iota

	// SourceGenerate asks the LLM for fresh questions one at a time.
	SourceGenerate
)

// Config is the quiz configuration chosen on the setup screen.
type Config struct {
	Topic  string
	Size   int
	Source Source

	// Save persists generated questions to the store (duplicate
	// checked). Ignored for SourceBank.
	Save bool
}

type phase int

const (
	phaseLoading phase = iota
	phaseQuestion
	phaseFeedback
	phaseError
)

// QuizScreen runs a practice session.
type QuizScreen struct {
	cfg Config
	st  store.Store
	gen quizgen.Generator
	lib *docctx.Library
	log *logrus.Logger

	sess     *quizsess.Session
	mc       components.MultiChoice
	phase    phase
	feedback quizsess.Result
	errMsg   string
	spinner  int
}

var _ screen.Screen = (*QuizScreen)(nil)
var _ screen.KeyHintProvider = (*QuizScreen)(nil)

// New creates a quiz screen for the given configuration.
func New(cfg Config, st store.Store, gen quizgen.Generator, lib *docctx.Library, log *logrus.Logger) *QuizScreen {
	return &QuizScreen{
		cfg:   cfg,
		st:    st,
		gen:   gen,
		lib:   lib,
		log:   log,
		sess:  quizsess.New(cfg.Size),
		phase: phaseLoading,
	}
}

func (s *QuizScreen) Init() tea.Cmd {
	if s.cfg.Source == SourceBank {
		return tea.Batch(s.loadBatch(), spinnerTick())
	}
	if err := s.sess.Start(nil); err != nil {
		s.fail(err.Error())
		return nil
	}
	return tea.Batch(s.generateNext(), spinnerTick())
}

func (s *QuizScreen) Title() string {
	return "Quiz: " + s.cfg.Topic
}

func (s *QuizScreen) KeyHints() []layout.KeyHint {
	switch s.phase {
	case phaseFeedback:
		return []layout.KeyHint{
			{Key: "any key", Description: "Continue"},
		}
	case phaseQuestion:
		return []layout.KeyHint{
			{Key: "↑↓", Description: "Choose"},
			{Key: "Enter", Description: "Answer"},
			{Key: "Esc", Description: "Abandon quiz"},
		}
	default:
		return []layout.KeyHint{
			{Key: "Esc", Description: "Abandon quiz"},
		}
	}
}

func (s *QuizScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case batchReadyMsg:
		return s.handleBatchReady(msg)

	case questionReadyMsg:
		return s.handleQuestionReady(msg)

	case spinnerTickMsg:
		if s.phase == phaseLoading {
			s.spinner++
			return s, spinnerTick()
		}
		return s, nil

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	return s, nil
}

func (s *QuizScreen) handleBatchReady(msg batchReadyMsg) (screen.Screen, tea.Cmd) {
	if msg.Err != nil {
		s.fail(msg.Err.Error())
		return s, nil
	}
	if len(msg.Questions) == 0 {
		s.fail("the question bank is empty")
		return s, nil
	}
	if err := s.sess.Start(msg.Questions); err != nil {
		s.fail(err.Error())
		return s, nil
	}
	s.showCurrent()
	return s, nil
}

func (s *QuizScreen) handleQuestionReady(msg questionReadyMsg) (screen.Screen, tea.Cmd) {
	if msg.Err != nil {
		if s.log != nil {
			s.log.WithError(msg.Err).Error("question generation failed")
		}
		// Mid-session failure: score what was answered so far.
		if _, answered := s.sess.Score(); answered > 0 {
			s.sess.Finish()
			return s, s.finishCmd()
		}
		s.fail("question generation failed: " + msg.Err.Error())
		return s, nil
	}

	if err := s.sess.Add(*msg.Question); err != nil {
		s.fail(err.Error())
		return s, nil
	}
	s.showCurrent()
	return s, nil
}

func (s *QuizScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch s.phase {
	case phaseQuestion:
		var cmd tea.Cmd
		s.mc, cmd = s.mc.Update(msg)
		if s.mc.Submitted {
			res, err := s.sess.Submit(s.mc.Chosen())
			if err != nil {
				s.fail(err.Error())
				return s, nil
			}
			s.feedback = res
			s.phase = phaseFeedback
		}
		return s, cmd

	case phaseFeedback:
		return s, s.advance()

	case phaseError:
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}

	return s, nil
}

// advance moves past the feedback view: next question, generate one,
// or hand off to the summary.
func (s *QuizScreen) advance() tea.Cmd {
	if s.sess.State() == quizsess.StateCompleted {
		return s.finishCmd()
	}

	if _, ok := s.sess.Current(); ok {
		s.showCurrent()
		return nil
	}

	// Generated quizzes produce the next question on demand.
	s.phase = phaseLoading
	return tea.Batch(s.generateNext(), spinnerTick())
}

// showCurrent points the multi-choice component at the session's
// current question.
func (s *QuizScreen) showCurrent() {
	q, ok := s.sess.Current()
	if !ok {
		s.fail("no question available")
		return
	}
	s.mc = components.NewMultiChoice(q.Text, q.Options, q.Answer)
	s.phase = phaseQuestion
}

func (s *QuizScreen) fail(msg string) {
	s.errMsg = msg
	s.phase = phaseError
}

// finishCmd replaces this screen with the summary.
func (s *QuizScreen) finishCmd() tea.Cmd {
	sess := s.sess
	topic := s.cfg.Topic
	log := s.log
	return func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: summary.New(sess, topic, log)}
	}
}

// loadBatch fetches a random batch from the store.
func (s *QuizScreen) loadBatch() tea.Cmd {
	st := s.st
	n := s.cfg.Size
	return func() tea.Msg {
		qs, err := st.RandomBatch(context.Background(), n)
		return batchReadyMsg{Questions: qs, Err: err}
	}
}

// generateNext asks the generator for one more question, optionally
// persisting it.
func (s *QuizScreen) generateNext() tea.Cmd {
	prior := make([]string, 0, len(s.sess.Questions()))
	for _, q := range s.sess.Questions() {
		prior = append(prior, q.Text)
	}

	cfg := s.cfg
	gen := s.gen
	lib := s.lib
	st := s.st
	log := s.log

	return func() tea.Msg {
		ctx := context.Background()

		var docContext string
		if lib != nil {
			docContext = lib.RandomChunk(cfg.Topic)
		}

		q, err := gen.Generate(ctx, quizgen.GenerateInput{
			Topic:          cfg.Topic,
			Context:        docContext,
			PriorQuestions: prior,
		})
		if err != nil {
			return questionReadyMsg{Err: err}
		}

		if cfg.Save {
			saveGenerated(ctx, st, *q, log)
		}

		return questionReadyMsg{Question: q}
	}
}

// saveGenerated persists a freshly generated question unless the store
// already holds it. Failures are logged, never fatal to the quiz.
func saveGenerated(ctx context.Context, st store.Store, q question.Question, log *logrus.Logger) {
	dup, err := st.IsDuplicate(ctx, q.Text)
	if err != nil {
		if log != nil {
			log.WithError(err).Warn("duplicate check failed, skipping save")
		}
		return
	}
	if dup {
		return
	}
	if err := st.Save(ctx, q); err != nil && log != nil {
		log.WithError(err).Warn("failed to save generated question")
	}
}

func spinnerTick() tea.Cmd {
	return tea.Tick(120*time.Millisecond, func(t time.Time) tea.Msg {
		return spinnerTickMsg(t)
	})
}
