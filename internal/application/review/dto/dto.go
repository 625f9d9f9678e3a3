// Package dto defines the manual-review data shapes.
package dto

import (
	"time"

	"stickybar/internal/domain/review"
)

// ManualReviewDTO mirrors a per-product manual review.
type ManualReviewDTO struct {
	SiteID      string    `json:"site_id"`
	ProductID   string    `json:"product_id"`
	Rating      float64   `json:"rating"`
	ReviewCount int       `json:"review_count"`
	DisplayText string    `json:"display_text,omitempty"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// SaveManualReviewResult reports whether the save created a new review.
type SaveManualReviewResult struct {
	Review ManualReviewDTO `json:"review"`
	IsNew  bool            `json:"is_new"`
}

// FailureLogDTO mirrors a recorded provider failure.
type FailureLogDTO struct {
	ID           uint      `json:"id"`
	SiteID       string    `json:"site_id"`
	ProductID    string    `json:"product_id"`
	ProviderType string    `json:"provider_type"`
	ErrorMessage string    `json:"error_message"`
	Notified     bool      `json:"notified"`
	OccurredAt   time.Time `json:"occurred_at"`
}

// FromFailureLog maps a domain failure log entry onto its DTO.
func FromFailureLog(f *review.ProviderFailureLog) FailureLogDTO {
	return FailureLogDTO{
		ID:           f.ID(),
		SiteID:       f.SiteID().Value(),
		ProductID:    f.ProductID(),
		ProviderType: f.ProviderType().String(),
		ErrorMessage: f.ErrorMessage(),
		Notified:     f.Notified(),
		OccurredAt:   f.OccurredAt(),
	}
}

// FromManualReview maps a domain manual review onto its DTO.
func FromManualReview(m *review.ManualReview) ManualReviewDTO {
	return ManualReviewDTO{
		SiteID:      m.SiteID().Value(),
		ProductID:   m.ProductID(),
		Rating:      m.Rating().Value(),
		ReviewCount: m.ReviewCount(),
		DisplayText: m.DisplayText(),
		UpdatedAt:   m.UpdatedAt(),
	}
}
