package review

import (
	"fmt"
	"strings"
	"time"

	vo "stickybar/internal/domain/site/valueobjects"
)

// ManualReview is a per-product review entered by the store owner, keyed by
// (site, product). It is updated in place and served by the fallback chain.
type ManualReview struct {
	id          uint
	siteID      vo.SiteID
	productID   string
	rating      vo.StarRating
	reviewCount int
	displayText string
	createdAt   time.Time
	updatedAt   time.Time
}

// NewManualReview creates a manual review after validating its key and values.
func NewManualReview(siteID vo.SiteID, productID string, rating float64, reviewCount int, displayText string) (*ManualReview, error) {
	if siteID.IsZero() {
		return nil, fmt.Errorf("site ID is required")
	}
	productID = strings.TrimSpace(productID)
	if productID == "" {
		return nil, fmt.Errorf("product ID is required")
	}
	if reviewCount < 0 {
		return nil, fmt.Errorf("review count cannot be negative")
	}
	starRating, err := vo.NewStarRating(rating)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	return &ManualReview{
		siteID:      siteID,
		productID:   productID,
		rating:      starRating,
		reviewCount: reviewCount,
		displayText: strings.TrimSpace(displayText),
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

// ReconstructManualReview rebuilds a manual review from persistence.
func ReconstructManualReview(
	id uint,
	siteID vo.SiteID,
	productID string,
	rating vo.StarRating,
	reviewCount int,
	displayText string,
	createdAt, updatedAt time.Time,
) (*ManualReview, error) {
	if id == 0 {
		return nil, fmt.Errorf("manual review ID cannot be zero")
	}
	if siteID.IsZero() {
		return nil, fmt.Errorf("site ID is required")
	}
	if productID == "" {
		return nil, fmt.Errorf("product ID is required")
	}
	if reviewCount < 0 {
		return nil, fmt.Errorf("review count cannot be negative")
	}

	return &ManualReview{
		id:          id,
		siteID:      siteID,
		productID:   productID,
		rating:      rating,
		reviewCount: reviewCount,
		displayText: displayText,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}, nil
}

func (m *ManualReview) ID() uint { return m.id }

// SetID assigns the persistence identifier after the first insert.
func (m *ManualReview) SetID(id uint) error {
	if m.id != 0 {
		return fmt.Errorf("manual review ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("manual review ID cannot be zero")
	}
	m.id = id
	return nil
}

func (m *ManualReview) SiteID() vo.SiteID { return m.siteID }

func (m *ManualReview) ProductID() string { return m.productID }

func (m *ManualReview) Rating() vo.StarRating { return m.rating }

func (m *ManualReview) ReviewCount() int { return m.reviewCount }

func (m *ManualReview) DisplayText() string { return m.displayText }

func (m *ManualReview) CreatedAt() time.Time { return m.createdAt }

func (m *ManualReview) UpdatedAt() time.Time { return m.updatedAt }

// Update replaces the review values in place, keeping the (site, product) key.
func (m *ManualReview) Update(rating float64, reviewCount int, displayText string) error {
	if reviewCount < 0 {
		return fmt.Errorf("review count cannot be negative")
	}
	starRating, err := vo.NewStarRating(rating)
	if err != nil {
		return err
	}

	m.rating = starRating
	m.reviewCount = reviewCount
	m.displayText = strings.TrimSpace(displayText)
	m.updatedAt = time.Now()
	return nil
}
