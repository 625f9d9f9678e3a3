// Package mappers converts between persistence models and domain entities.
package mappers

import (
	"encoding/json"
	"fmt"

	"stickybar/internal/domain/site"
	vo "stickybar/internal/domain/site/valueobjects"
	"stickybar/internal/infrastructure/persistence/models"
)

// fallbackDocument is the JSON column layout of the fallback settings.
type fallbackDocument struct {
	UseManualRatingFallback bool     `json:"use_manual_rating_fallback"`
	ManualRating            *float64 `json:"manual_rating,omitempty"`
	ManualReviewCount       int      `json:"manual_review_count"`
	NotifyOnFailure         bool     `json:"notify_on_failure"`
	NotificationEmail       string   `json:"notification_email,omitempty"`
}

// SiteConfigurationMapper handles the conversion between domain entities and persistence models
type SiteConfigurationMapper interface {
	ToEntity(model *models.SiteConfigurationModel) (*site.SiteConfiguration, error)
	ToModel(entity *site.SiteConfiguration) (*models.SiteConfigurationModel, error)
}

type siteConfigurationMapper struct{}

// NewSiteConfigurationMapper creates a new site configuration mapper
func NewSiteConfigurationMapper() SiteConfigurationMapper {
	return &siteConfigurationMapper{}
}

func (m *siteConfigurationMapper) ToEntity(model *models.SiteConfigurationModel) (*site.SiteConfiguration, error) {
	if model == nil {
		return nil, nil
	}

	siteID, err := vo.NewSiteID(model.SiteID)
	if err != nil {
		return nil, fmt.Errorf("invalid stored site ID: %w", err)
	}

	var manualReview *vo.ManualReview
	if model.ManualRating != nil {
		review, err := vo.NewManualReview(*model.ManualRating, model.ManualText)
		if err != nil {
			return nil, fmt.Errorf("invalid stored manual review: %w", err)
		}
		manualReview = &review
	}

	var doc fallbackDocument
	if len(model.Fallback) > 0 {
		if err := json.Unmarshal(model.Fallback, &doc); err != nil {
			return nil, fmt.Errorf("failed to decode fallback settings: %w", err)
		}
	}
	fallbackConfig, err := vo.NewFallbackConfig(
		doc.UseManualRatingFallback,
		doc.ManualRating,
		doc.ManualReviewCount,
		doc.NotifyOnFailure,
		doc.NotificationEmail,
	)
	if err != nil {
		return nil, fmt.Errorf("invalid stored fallback settings: %w", err)
	}

	style := vo.DefaultStyle()
	if len(model.Style) > 0 {
		if err := json.Unmarshal(model.Style, &style); err != nil {
			return nil, fmt.Errorf("failed to decode style: %w", err)
		}
	}

	entity, err := site.ReconstructSiteConfiguration(
		siteID,
		vo.Plan(model.Plan),
		vo.ProviderType(model.PreferredProvider),
		manualReview,
		model.FallbackText,
		fallbackConfig,
		style,
		model.StoreOwnerEmail,
		model.Enabled,
		model.CreatedAt,
		model.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct site configuration: %w", err)
	}
	return entity, nil
}

func (m *siteConfigurationMapper) ToModel(entity *site.SiteConfiguration) (*models.SiteConfigurationModel, error) {
	if entity == nil {
		return nil, nil
	}

	fc := entity.FallbackConfig()
	doc := fallbackDocument{
		UseManualRatingFallback: fc.UseManualRatingFallback(),
		ManualReviewCount:       fc.ManualReviewCount(),
		NotifyOnFailure:         fc.NotifyOnFailure(),
		NotificationEmail:       fc.NotificationEmail(),
	}
	if fc.ManualRating() != nil {
		rating := fc.ManualRating().Value()
		doc.ManualRating = &rating
	}
	fallbackJSON, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("failed to encode fallback settings: %w", err)
	}

	styleJSON, err := json.Marshal(entity.Style())
	if err != nil {
		return nil, fmt.Errorf("failed to encode style: %w", err)
	}

	model := &models.SiteConfigurationModel{
		SiteID:            entity.SiteID().Value(),
		Plan:              entity.Plan().String(),
		PreferredProvider: entity.PreferredProvider().String(),
		FallbackText:      entity.FallbackText(),
		Fallback:          fallbackJSON,
		Style:             styleJSON,
		StoreOwnerEmail:   entity.StoreOwnerEmail(),
		Enabled:           entity.Enabled(),
		CreatedAt:         entity.CreatedAt(),
		UpdatedAt:         entity.UpdatedAt(),
	}

	if manual := entity.ManualReview(); manual != nil {
		rating := manual.Rating().Value()
		model.ManualRating = &rating
		model.ManualText = manual.Text()
	}

	return model, nil
}
