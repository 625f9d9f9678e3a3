package email

import (
	"context"

	"stickybar/internal/domain/review"
	"stickybar/internal/shared/logger"
)

// LogNotifier implements review.Notifier by logging instead of sending.
// Used when email delivery is disabled.
type LogNotifier struct {
	logger logger.Interface
}

// NewLogNotifier creates a notifier that only logs
func NewLogNotifier(logger logger.Interface) *LogNotifier {
	return &LogNotifier{logger: logger}
}

func (l *LogNotifier) NotifyFailure(_ context.Context, n review.FailureNotification) error {
	l.logger.Infow("email delivery disabled, skipping failure notification",
		"recipient", n.RecipientEmail,
		"site_id", n.SiteID,
		"product_id", n.ProductID,
		"provider", n.ProviderName,
		"error_message", n.ErrorMessage)
	return nil
}
