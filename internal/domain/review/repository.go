package review

import (
	"context"

	vo "stickybar/internal/domain/site/valueobjects"
)

// ManualReviewRepository persists per-product manual reviews keyed by
// (site, product). Get returns (nil, nil) when no review exists.
type ManualReviewRepository interface {
	Get(ctx context.Context, siteID vo.SiteID, productID string) (*ManualReview, error)
	Create(ctx context.Context, review *ManualReview) error
	Update(ctx context.Context, review *ManualReview) error
	Delete(ctx context.Context, siteID vo.SiteID, productID string) error
}

// FailureLogRepository is the append-only sink for provider failures.
type FailureLogRepository interface {
	Append(ctx context.Context, entry *ProviderFailureLog) error
	ListBySite(ctx context.Context, siteID vo.SiteID, limit int) ([]*ProviderFailureLog, error)
	ListUnnotified(ctx context.Context, limit int) ([]*ProviderFailureLog, error)
	MarkNotified(ctx context.Context, id uint) error
}

// FailureNotification describes a provider failure for the store owner.
type FailureNotification struct {
	RecipientEmail string
	SiteID         string
	ProductID      string
	ProviderName   string
	ErrorMessage   string
}

// Notifier delivers failure notifications, best effort.
type Notifier interface {
	NotifyFailure(ctx context.Context, n FailureNotification) error
}
