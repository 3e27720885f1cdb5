// Package export renders stored question sets to snapshot JSON, PDF,
// and Moodle XML.
package export

import (
	"context"
	"encoding/json"
	"os"

	"github.com/abhisek/pyquiz/internal/store"
)

// DefaultSnapshotName is the conventional snapshot file name.
const DefaultSnapshotName = "questions_snapshot.json"

// Snapshot writes every stored question to path as a JSON array that
// the snapshot store backend can open. Returns the number of questions
// written.
func Snapshot(ctx context.Context, s store.Store, path string) (int, error) {
	qs, err := s.All(ctx)
	if err != nil {
		return 0, &ExportError{Format: "snapshot", Path: path, Err: err}
	}

	data, err := json.MarshalIndent(qs, "", "  ")
	if err != nil {
		return 0, &ExportError{Format: "snapshot", Path: path, Err: err}
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return 0, &ExportError{Format: "snapshot", Path: path, Err: err}
	}

	return len(qs), nil
}
