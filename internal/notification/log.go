package notification

import (
	"context"

	"go.uber.org/zap"
)

// LogNotifier records the envelope of each message instead of sending it.
type LogNotifier struct {
	logger *zap.Logger
}

func NewLogNotifier(logger *zap.Logger) *LogNotifier {
	return &LogNotifier{logger: logger.Named("mail")}
}

func (n *LogNotifier) Send(_ context.Context, m Message) error {
	n.logger.Info("mail not sent (SMTP disabled)",
		zap.String("to", m.To),
		zap.String("subject", m.Subject),
		zap.Int("bytes", len(m.HTML)),
	)
	return nil
}
