// Package dto defines the admin-facing configuration shapes.
package dto

import (
	"stickybar/internal/domain/site"
)

// AdminConfigDTO mirrors a SiteConfiguration for the admin UI.
type AdminConfigDTO struct {
	SiteID                  string   `json:"site_id"`
	Plan                    string   `json:"plan"`
	PreferredProvider       string   `json:"preferred_provider"`
	ManualRating            *float64 `json:"manual_rating,omitempty"`
	ManualText              string   `json:"manual_text,omitempty"`
	FallbackText            string   `json:"fallback_text,omitempty"`
	UseManualRatingFallback bool     `json:"use_manual_rating_fallback"`
	FallbackRating          *float64 `json:"fallback_rating,omitempty"`
	FallbackReviewCount     int      `json:"fallback_review_count"`
	NotifyOnFailure         bool     `json:"notify_on_failure"`
	NotificationEmail       string   `json:"notification_email,omitempty"`
	StoreOwnerEmail         string   `json:"store_owner_email,omitempty"`
	BackgroundColorHex      string   `json:"background_color_hex"`
	TextColorHex            string   `json:"text_color_hex"`
	AccentColorHex          string   `json:"accent_color_hex"`
	Enabled                 bool     `json:"enabled"`
}

// AdminConfigSnapshot pairs a configuration with the feature availability of
// its plan so the admin UI can grey out locked controls.
type AdminConfigSnapshot struct {
	Configuration AdminConfigDTO  `json:"configuration"`
	Features      map[string]bool `json:"features"`
}

// SaveAdminConfigResult carries the persisted configuration plus the
// warnings produced while normalizing entitlement-gated settings.
type SaveAdminConfigResult struct {
	Configuration AdminConfigDTO `json:"configuration"`
	Warnings      []string       `json:"warnings"`
}

// FromConfiguration maps a domain configuration onto the admin DTO.
func FromConfiguration(config *site.SiteConfiguration) AdminConfigDTO {
	d := AdminConfigDTO{
		SiteID:             config.SiteID().Value(),
		Plan:               config.Plan().String(),
		PreferredProvider:  config.PreferredProvider().String(),
		FallbackText:       config.FallbackText(),
		StoreOwnerEmail:    config.StoreOwnerEmail(),
		BackgroundColorHex: config.Style().BackgroundColorHex,
		TextColorHex:       config.Style().TextColorHex,
		AccentColorHex:     config.Style().AccentColorHex,
		Enabled:            config.Enabled(),
	}

	if manual := config.ManualReview(); manual != nil {
		rating := manual.Rating().Value()
		d.ManualRating = &rating
		d.ManualText = manual.Text()
	}

	fc := config.FallbackConfig()
	d.UseManualRatingFallback = fc.UseManualRatingFallback()
	d.FallbackReviewCount = fc.ManualReviewCount()
	d.NotifyOnFailure = fc.NotifyOnFailure()
	d.NotificationEmail = fc.NotificationEmail()
	if fc.ManualRating() != nil {
		rating := fc.ManualRating().Value()
		d.FallbackRating = &rating
	}

	return d
}
