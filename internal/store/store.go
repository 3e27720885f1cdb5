package store

import (
	"context"
	"fmt"
	"math/rand/v2"
	"os"
	"path/filepath"

	"github.com/abhisek/pyquiz/internal/question"
)

// Store is the question persistence contract. Both backends (live
// SQLite and read-only JSON snapshot) are behaviorally substitutable.
type Store interface {
	// Save persists a question. The snapshot backend accepts and
	// silently discards it.
	Save(ctx context.Context, q question.Question) error

	// RandomBatch returns up to n questions sampled without
	// replacement, in random order. Fewer than n stored means all of
	// them are returned.
	RandomBatch(ctx context.Context, n int) ([]question.Question, error)

	// All returns every stored question.
	All(ctx context.Context) ([]question.Question, error)

	// Count returns the total number of stored questions.
	Count(ctx context.Context) (int, error)

	// TopicCounts returns the number of stored questions per topic.
	TopicCounts(ctx context.Context) (map[string]int, error)

	// IsDuplicate reports whether a question with the same normalized
	// text already exists.
	IsDuplicate(ctx context.Context, text string) (bool, error)

	Close() error
}

// Backend selects a Store implementation.
type Backend string

const (
	BackendSQLite   Backend = "sqlite"
	BackendSnapshot Backend = "snapshot"
)

// Config selects and configures a Store backend.
type Config struct {
	Backend Backend

	// DBPath is the SQLite database file. Empty means DefaultDBPath.
	DBPath string

	// SnapshotPath is the JSON snapshot file for the snapshot backend.
	SnapshotPath string
}

// Open constructs the configured Store. Configuration problems
// (unknown backend, missing or unreadable snapshot, unresolvable DB
// path) surface as *ConfigError.
func Open(cfg Config) (Store, error) {
	switch cfg.Backend {
	case BackendSQLite, "":
		path := cfg.DBPath
		if path == "" {
			p, err := DefaultDBPath()
			if err != nil {
				return nil, &ConfigError{Backend: string(BackendSQLite), Err: err}
			}
			path = p
		}
		return openSQLite(path)
	case BackendSnapshot:
		return openSnapshot(cfg.SnapshotPath)
	default:
		return nil, &ConfigError{
			Backend: string(cfg.Backend),
			Err:     fmt.Errorf("unknown backend %q", cfg.Backend),
		}
	}
}

// DefaultDBPath resolves the database file path in priority order:
// 1. PYQUIZ_DB environment variable
// 2. $XDG_DATA_HOME/pyquiz/pyquiz.db
// 3. ~/.local/share/pyquiz/pyquiz.db
func DefaultDBPath() (string, error) {
	if p := os.Getenv("PYQUIZ_DB"); p != "" {
		return p, EnsureDir(p)
	}

	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		dataHome = filepath.Join(home, ".local", "share")
	}

	p := filepath.Join(dataHome, "pyquiz", "pyquiz.db")
	return p, EnsureDir(p)
}

// EnsureDir creates the parent directory of path if it doesn't exist.
func EnsureDir(path string) error {
	dir := filepath.Dir(path)
	return os.MkdirAll(dir, 0o755)
}

// sampleQuestions returns up to n elements of qs without replacement,
// in random order. The input slice is not modified.
func sampleQuestions(qs []question.Question, n int) []question.Question {
	if n <= 0 {
		return nil
	}
	if n > len(qs) {
		n = len(qs)
	}

	perm := rand.Perm(len(qs))
	out := make([]question.Question, n)
	for i := range n {
		out[i] = qs[perm[i]]
	}
	return out
}
