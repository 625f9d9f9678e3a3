// Package email delivers failure notifications to store owners over SMTP.
package email

import (
	"context"
	"fmt"

	"gopkg.in/gomail.v2"

	"stickybar/internal/domain/review"
	"stickybar/internal/shared/config"
	"stickybar/internal/shared/logger"
)

// SMTPNotifier implements the review.Notifier interface over SMTP.
type SMTPNotifier struct {
	config config.EmailConfig
	dialer *gomail.Dialer
	logger logger.Interface
}

// NewSMTPNotifier creates a new SMTP notifier instance
func NewSMTPNotifier(cfg config.EmailConfig, logger logger.Interface) *SMTPNotifier {
	dialer := gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword)

	return &SMTPNotifier{
		config: cfg,
		dialer: dialer,
		logger: logger,
	}
}

// NotifyFailure sends the store owner a notification about a failed review lookup.
func (s *SMTPNotifier) NotifyFailure(ctx context.Context, n review.FailureNotification) error {
	subject := fmt.Sprintf("Review lookup failed for product %s", n.ProductID)

	htmlBody := fmt.Sprintf(`
		<html>
		<body>
			<h2>Review Lookup Failed</h2>
			<p>A review provider failed while rendering the review bar on your store.</p>
			<ul>
				<li><strong>Site:</strong> %s</li>
				<li><strong>Product:</strong> %s</li>
				<li><strong>Provider:</strong> %s</li>
				<li><strong>Error:</strong> %s</li>
			</ul>
			<p>Visitors are seeing your configured fallback content, or no bar at all if none is configured.</p>
			<p>You can configure a manual review or fallback rating in your review bar settings.</p>
		</body>
		</html>
	`, n.SiteID, n.ProductID, n.ProviderName, n.ErrorMessage)

	plainBody := fmt.Sprintf(`
Review Lookup Failed

A review provider failed while rendering the review bar on your store.

Site: %s
Product: %s
Provider: %s
Error: %s

Visitors are seeing your configured fallback content, or no bar at all if none is configured.
You can configure a manual review or fallback rating in your review bar settings.
	`, n.SiteID, n.ProductID, n.ProviderName, n.ErrorMessage)

	if err := s.sendEmail(n.RecipientEmail, subject, htmlBody, plainBody); err != nil {
		return err
	}

	s.logger.Infow("failure notification sent",
		"recipient", n.RecipientEmail,
		"site_id", n.SiteID,
		"product_id", n.ProductID,
		"provider", n.ProviderName)
	return nil
}

func (s *SMTPNotifier) sendEmail(to, subject, htmlBody, plainBody string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", m.FormatAddress(s.config.FromAddress, s.config.FromName))
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", plainBody)
	m.AddAlternative("text/html", htmlBody)

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}
