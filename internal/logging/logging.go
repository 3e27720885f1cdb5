// Package logging configures the application logger. The TUI owns the
// terminal, so logs go to a file (PYQUIZ_LOG) or nowhere.
package logging

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// New builds the application logger. When PYQUIZ_LOG names a file,
// entries are appended there; otherwise output is discarded.
// PYQUIZ_LOG_LEVEL (debug, info, warn, error) defaults to info.
func New() (*logrus.Logger, error) {
	log := logrus.New()
	log.SetOutput(io.Discard)
	log.SetFormatter(&logrus.JSONFormatter{})

	if path := os.Getenv("PYQUIZ_LOG"); path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, fmt.Errorf("open log file %s: %w", path, err)
		}
		log.SetOutput(f)
	}

	level := logrus.InfoLevel
	if s := os.Getenv("PYQUIZ_LOG_LEVEL"); s != "" {
		parsed, err := logrus.ParseLevel(s)
		if err != nil {
			return nil, fmt.Errorf("parse PYQUIZ_LOG_LEVEL: %w", err)
		}
		level = parsed
	}
	log.SetLevel(level)

	return log, nil
}
