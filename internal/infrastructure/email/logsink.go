package email

import (
	"context"

	"github.com/Harekrushna7138/ticket-service-backend/internal/shared/logger"
)

const SinkNameLog = "log"

// LogSink writes notifications to the application log instead of sending them.
// It is the default sink and never fails.
type LogSink struct {
	logger logger.Interface
}

func NewLogSink(log logger.Interface) *LogSink {
	return &LogSink{logger: log}
}

func (s *LogSink) Name() string {
	return SinkNameLog
}

func (s *LogSink) Notify(_ context.Context, to, subject, body string) error {
	s.logger.Infow("notification",
		"to", to,
		"subject", subject,
		"body", body,
	)
	return nil
}
