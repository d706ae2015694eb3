package mailer

import (
	"context"
	"log/slog"
)

// LogSender is a Sender that logs the email instead of sending it. Not meant
// for production use: it logs recipient addresses and full email contents,
// which includes verification and reset links.
type LogSender struct {
	logger *slog.Logger
}

func NewLogSender(logger *slog.Logger) *LogSender {
	return &LogSender{logger: logger}
}

func (s *LogSender) Send(_ context.Context, recipient, subject, body string) error {
	s.logger.Info("send email",
		"recipient", recipient,
		"subject", subject,
		"body", body,
	)
	return nil
}
