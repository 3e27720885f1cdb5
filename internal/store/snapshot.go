package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/abhisek/pyquiz/internal/question"
)

// SnapshotStore serves questions from a JSON snapshot file loaded
// fully into memory at Open. It is read-only: Save succeeds without
// writing, so callers work identically against either backend.
type SnapshotStore struct {
	questions []question.Question
}

// openSnapshot loads the snapshot file. A missing path, unreadable
// file, or malformed JSON is a *ConfigError.
func openSnapshot(path string) (*SnapshotStore, error) {
	if path == "" {
		return nil, &ConfigError{
			Backend: string(BackendSnapshot),
			Err:     fmt.Errorf("snapshot path is required"),
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &ConfigError{Backend: string(BackendSnapshot), Path: path, Err: err}
	}

	var qs []question.Question
	if err := json.Unmarshal(data, &qs); err != nil {
		return nil, &ConfigError{
			Backend: string(BackendSnapshot),
			Path:    path,
			Err:     fmt.Errorf("malformed snapshot: %w", err),
		}
	}

	return &SnapshotStore{questions: qs}, nil
}

// Save validates and silently discards the question.
func (s *SnapshotStore) Save(_ context.Context, q question.Question) error {
	return q.Validate()
}

func (s *SnapshotStore) RandomBatch(_ context.Context, n int) ([]question.Question, error) {
	return sampleQuestions(s.questions, n), nil
}

func (s *SnapshotStore) All(_ context.Context) ([]question.Question, error) {
	out := make([]question.Question, len(s.questions))
	copy(out, s.questions)
	return out, nil
}

func (s *SnapshotStore) Count(_ context.Context) (int, error) {
	return len(s.questions), nil
}

func (s *SnapshotStore) TopicCounts(_ context.Context) (map[string]int, error) {
	out := make(map[string]int)
	for _, q := range s.questions {
		out[q.Topic]++
	}
	return out, nil
}

func (s *SnapshotStore) IsDuplicate(_ context.Context, text string) (bool, error) {
	for _, q := range s.questions {
		if question.SameText(q.Text, text) {
			return true, nil
		}
	}
	return false, nil
}

func (s *SnapshotStore) Close() error {
	return nil
}
