package store

import (
	"context"
	"database/sql"
	"fmt"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"

	"github.com/abhisek/pyquiz/ent"
	entquestion "github.com/abhisek/pyquiz/ent/question"
	"github.com/abhisek/pyquiz/internal/question"

	// Pure Go SQLite driver (no CGO).
	_ "modernc.org/sqlite"
)

// SQLiteStore is the live, writable backend built on ent.
type SQLiteStore struct {
	db     *sql.DB
	client *ent.Client
}

// openSQLite opens the database at path, applies pragmas, and runs
// auto-migration.
func openSQLite(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, &ConfigError{Backend: string(BackendSQLite), Path: path, Err: err}
	}

	if err := applyPragmas(db); err != nil {
		db.Close()
		return nil, &StoreError{Op: "apply pragmas", Err: err}
	}

	drv := entsql.OpenDB(dialect.SQLite, db)
	client := ent.NewClient(ent.Driver(drv))

	if err := client.Schema.Create(context.Background()); err != nil {
		client.Close()
		return nil, &StoreError{Op: "auto-migrate", Err: err}
	}

	return &SQLiteStore{db: db, client: client}, nil
}

func (s *SQLiteStore) Save(ctx context.Context, q question.Question) error {
	if err := q.Validate(); err != nil {
		return err
	}

	create := s.client.Question.Create().
		SetTopic(q.Topic).
		SetText(q.Text).
		SetOptions(q.Options).
		SetAnswer(q.Answer).
		SetExplanation(q.Explanation)
	if !q.CreatedAt.IsZero() {
		create.SetCreatedAt(q.CreatedAt)
	}

	if _, err := create.Save(ctx); err != nil {
		return &StoreError{Op: "save", Err: err}
	}
	return nil
}

func (s *SQLiteStore) RandomBatch(ctx context.Context, n int) ([]question.Question, error) {
	all, err := s.All(ctx)
	if err != nil {
		return nil, err
	}
	return sampleQuestions(all, n), nil
}

func (s *SQLiteStore) All(ctx context.Context) ([]question.Question, error) {
	rows, err := s.client.Question.Query().
		Order(ent.Asc(entquestion.FieldID)).
		All(ctx)
	if err != nil {
		return nil, &StoreError{Op: "query", Err: err}
	}

	out := make([]question.Question, len(rows))
	for i, r := range rows {
		out[i] = question.Question{
			Topic:       r.Topic,
			Text:        r.Text,
			Options:     r.Options,
			Answer:      r.Answer,
			Explanation: r.Explanation,
			CreatedAt:   r.CreatedAt,
		}
	}
	return out, nil
}

func (s *SQLiteStore) Count(ctx context.Context) (int, error) {
	n, err := s.client.Question.Query().Count(ctx)
	if err != nil {
		return 0, &StoreError{Op: "count", Err: err}
	}
	return n, nil
}

func (s *SQLiteStore) TopicCounts(ctx context.Context) (map[string]int, error) {
	var rows []struct {
		Topic string `json:"topic"`
		Count int    `json:"count"`
	}
	err := s.client.Question.Query().
		GroupBy(entquestion.FieldTopic).
		Aggregate(ent.Count()).
		Scan(ctx, &rows)
	if err != nil {
		return nil, &StoreError{Op: "topic counts", Err: err}
	}

	out := make(map[string]int, len(rows))
	for _, r := range rows {
		out[r.Topic] = r.Count
	}
	return out, nil
}

// IsDuplicate streams stored texts and compares after normalization.
// SQL equality can't express the whitespace/case folding, so the
// comparison happens here.
func (s *SQLiteStore) IsDuplicate(ctx context.Context, text string) (bool, error) {
	texts, err := s.client.Question.Query().
		Select(entquestion.FieldText).
		Strings(ctx)
	if err != nil {
		return false, &StoreError{Op: "duplicate check", Err: err}
	}

	for _, t := range texts {
		if question.SameText(t, text) {
			return true, nil
		}
	}
	return false, nil
}

func (s *SQLiteStore) Close() error {
	return s.client.Close()
}

// applyPragmas configures SQLite for single-user interactive use.
func applyPragmas(db *sql.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA foreign_keys = ON",
		"PRAGMA synchronous = NORMAL",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			return fmt.Errorf("%s: %w", p, err)
		}
	}
	return nil
}
