package sender

import (
	"context"
	"time"
)

type SendResult struct {
	MessageID string
	SentAt    time.Time
}

// EmailSender delivers HTML mail to a single recipient.
type EmailSender interface {
	SendEmail(ctx context.Context, to, toName, subject, htmlBody string) (SendResult, error)
}
