package review

import (
	"fmt"
	"time"

	vo "stickybar/internal/domain/site/valueobjects"
)

// ProviderFailureLog is an append-only record of a failed primary-provider
// attempt. It is never mutated except to flip the notified flag.
type ProviderFailureLog struct {
	id           uint
	siteID       vo.SiteID
	productID    string
	providerType vo.ProviderType
	errorMessage string
	notified     bool
	occurredAt   time.Time
}

// NewProviderFailureLog records a provider failure for a site and product.
func NewProviderFailureLog(siteID vo.SiteID, productID string, providerType vo.ProviderType, errorMessage string) (*ProviderFailureLog, error) {
	if siteID.IsZero() {
		return nil, fmt.Errorf("site ID is required")
	}
	if !providerType.IsValid() {
		return nil, fmt.Errorf("invalid provider type: %s", providerType)
	}

	return &ProviderFailureLog{
		siteID:       siteID,
		productID:    productID,
		providerType: providerType,
		errorMessage: errorMessage,
		occurredAt:   time.Now(),
	}, nil
}

// ReconstructProviderFailureLog rebuilds a log entry from persistence.
func ReconstructProviderFailureLog(
	id uint,
	siteID vo.SiteID,
	productID string,
	providerType vo.ProviderType,
	errorMessage string,
	notified bool,
	occurredAt time.Time,
) (*ProviderFailureLog, error) {
	if id == 0 {
		return nil, fmt.Errorf("failure log ID cannot be zero")
	}
	if siteID.IsZero() {
		return nil, fmt.Errorf("site ID is required")
	}

	return &ProviderFailureLog{
		id:           id,
		siteID:       siteID,
		productID:    productID,
		providerType: providerType,
		errorMessage: errorMessage,
		notified:     notified,
		occurredAt:   occurredAt,
	}, nil
}

func (l *ProviderFailureLog) ID() uint { return l.id }

// SetID assigns the persistence identifier after the first insert.
func (l *ProviderFailureLog) SetID(id uint) error {
	if l.id != 0 {
		return fmt.Errorf("failure log ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("failure log ID cannot be zero")
	}
	l.id = id
	return nil
}

func (l *ProviderFailureLog) SiteID() vo.SiteID { return l.siteID }

func (l *ProviderFailureLog) ProductID() string { return l.productID }

func (l *ProviderFailureLog) ProviderType() vo.ProviderType { return l.providerType }

func (l *ProviderFailureLog) ErrorMessage() string { return l.errorMessage }

func (l *ProviderFailureLog) Notified() bool { return l.notified }

func (l *ProviderFailureLog) OccurredAt() time.Time { return l.occurredAt }

// MarkNotified flips the notified flag.
func (l *ProviderFailureLog) MarkNotified() {
	l.notified = true
}
