package llm

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
)

type contextKey string

const purposeKey contextKey = "llm_purpose"

// WithPurpose attaches a purpose label to the context for request logging.
func WithPurpose(ctx context.Context, purpose string) context.Context {
	return context.WithValue(ctx, purposeKey, purpose)
}

// PurposeFrom extracts the purpose label from the context.
func PurposeFrom(ctx context.Context) string {
	if v, ok := ctx.Value(purposeKey).(string); ok {
		return v
	}
	return "unknown"
}

// LoggingProvider records every request outcome on the given logger.
type LoggingProvider struct {
	inner Provider
	log   *logrus.Logger
}

// WithLogging wraps a Provider with structured request logging.
// A nil logger disables the decorator.
func WithLogging(p Provider, log *logrus.Logger) Provider {
	if log == nil {
		return p
	}
	return &LoggingProvider{inner: p, log: log}
}

func (l *LoggingProvider) Complete(ctx context.Context, req Request) (*Response, error) {
	start := time.Now()

	resp, err := l.inner.Complete(ctx, req)

	fields := logrus.Fields{
		"model":      l.inner.Model(),
		"purpose":    PurposeFrom(ctx),
		"latency_ms": time.Since(start).Milliseconds(),
	}
	if resp != nil {
		fields["model"] = resp.Model
		fields["input_tokens"] = resp.Usage.InputTokens
		fields["output_tokens"] = resp.Usage.OutputTokens
		fields["stop_reason"] = resp.StopReason
	}

	if err != nil {
		l.log.WithFields(fields).WithError(err).Warn("llm request failed")
	} else {
		l.log.WithFields(fields).Info("llm request complete")
	}

	return resp, err
}

func (l *LoggingProvider) Model() string {
	return l.inner.Model()
}
