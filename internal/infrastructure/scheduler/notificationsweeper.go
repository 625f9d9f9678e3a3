// Package scheduler runs periodic background tasks.
package scheduler

import (
	"context"
	"time"

	"stickybar/internal/domain/review"
	"stickybar/internal/domain/site"
	vo "stickybar/internal/domain/site/valueobjects"
	"stickybar/internal/shared/goroutine"
	"stickybar/internal/shared/logger"
)

// NotificationSweeper periodically retries owner notifications for provider
// failures that were logged but never notified, for example because SMTP was
// down when the failure happened.
type NotificationSweeper struct {
	failureLogRepo review.FailureLogRepository
	configRepo     site.Repository
	notifier       review.Notifier
	logger         logger.Interface
	stopChan       chan struct{}
	interval       time.Duration
	batchSize      int
}

// NewNotificationSweeper creates a new notification sweeper
func NewNotificationSweeper(
	failureLogRepo review.FailureLogRepository,
	configRepo site.Repository,
	notifier review.Notifier,
	interval time.Duration,
	batchSize int,
	logger logger.Interface,
) *NotificationSweeper {
	return &NotificationSweeper{
		failureLogRepo: failureLogRepo,
		configRepo:     configRepo,
		notifier:       notifier,
		logger:         logger,
		stopChan:       make(chan struct{}),
		interval:       interval,
		batchSize:      batchSize,
	}
}

// Start starts the sweep loop
func (s *NotificationSweeper) Start(ctx context.Context) {
	s.logger.Infow("starting notification sweeper",
		"interval", s.interval,
		"batch_size", s.batchSize)

	goroutine.SafeGo(s.logger, "notification-sweeper", func() {
		s.run(ctx)
	})
}

// Stop stops the sweep loop
func (s *NotificationSweeper) Stop() {
	close(s.stopChan)
}

func (s *NotificationSweeper) run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Infow("notification sweeper stopped due to context cancellation")
			return
		case <-s.stopChan:
			s.logger.Infow("notification sweeper stopped")
			return
		case <-ticker.C:
			s.Sweep(ctx)
		}
	}
}

// Sweep processes one batch of unnotified failures. Entries whose site no
// longer wants notifications are marked notified so they are not rescanned.
func (s *NotificationSweeper) Sweep(ctx context.Context) {
	entries, err := s.failureLogRepo.ListUnnotified(ctx, s.batchSize)
	if err != nil {
		s.logger.Errorw("failed to list unnotified failures", "error", err)
		return
	}
	if len(entries) == 0 {
		return
	}

	s.logger.Debugw("sweeping unnotified failures", "count", len(entries))

	for _, entry := range entries {
		s.process(ctx, entry)
	}
}

func (s *NotificationSweeper) process(ctx context.Context, entry *review.ProviderFailureLog) {
	config, err := s.configRepo.Get(ctx, entry.SiteID())
	if err != nil {
		s.logger.Warnw("failed to load site configuration for sweep",
			"site_id", entry.SiteID().Value(),
			"error", err)
		return
	}

	if config == nil || !s.wantsNotification(config) {
		if err := s.failureLogRepo.MarkNotified(ctx, entry.ID()); err != nil {
			s.logger.Warnw("failed to mark failure log notified",
				"id", entry.ID(),
				"error", err)
		}
		return
	}

	notification := review.FailureNotification{
		RecipientEmail: config.FallbackConfig().NotificationEmail(),
		SiteID:         entry.SiteID().Value(),
		ProductID:      entry.ProductID(),
		ProviderName:   entry.ProviderType().String(),
		ErrorMessage:   entry.ErrorMessage(),
	}

	if err := s.notifier.NotifyFailure(ctx, notification); err != nil {
		s.logger.Warnw("failed to deliver failure notification",
			"site_id", entry.SiteID().Value(),
			"product_id", entry.ProductID(),
			"error", err)
		return
	}

	if err := s.failureLogRepo.MarkNotified(ctx, entry.ID()); err != nil {
		s.logger.Warnw("failed to mark failure log notified", "id", entry.ID(), "error", err)
	}
}

func (s *NotificationSweeper) wantsNotification(config *site.SiteConfiguration) bool {
	fc := config.FallbackConfig()
	return fc.NotifyOnFailure() &&
		fc.NotificationEmail() != "" &&
		vo.FeatureEnabled(config.Plan(), vo.FeatureEmailNotificationOnFailure)
}
