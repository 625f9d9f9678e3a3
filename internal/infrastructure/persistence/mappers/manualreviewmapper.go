package mappers

import (
	"fmt"

	"stickybar/internal/domain/review"
	vo "stickybar/internal/domain/site/valueobjects"
	"stickybar/internal/infrastructure/persistence/models"
)

// ManualReviewMapper handles the conversion between domain entities and persistence models
type ManualReviewMapper interface {
	ToEntity(model *models.ManualReviewModel) (*review.ManualReview, error)
	ToModel(entity *review.ManualReview) *models.ManualReviewModel
	ToEntities(modelList []*models.ManualReviewModel) ([]*review.ManualReview, error)
}

type manualReviewMapper struct{}

// NewManualReviewMapper creates a new manual review mapper
func NewManualReviewMapper() ManualReviewMapper {
	return &manualReviewMapper{}
}

func (m *manualReviewMapper) ToEntity(model *models.ManualReviewModel) (*review.ManualReview, error) {
	if model == nil {
		return nil, nil
	}

	siteID, err := vo.NewSiteID(model.SiteID)
	if err != nil {
		return nil, fmt.Errorf("invalid stored site ID: %w", err)
	}

	rating, err := vo.NewStarRating(model.Rating)
	if err != nil {
		return nil, fmt.Errorf("invalid stored rating: %w", err)
	}

	entity, err := review.ReconstructManualReview(
		model.ID,
		siteID,
		model.ProductID,
		rating,
		model.ReviewCount,
		model.DisplayText,
		model.CreatedAt,
		model.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct manual review: %w", err)
	}
	return entity, nil
}

func (m *manualReviewMapper) ToModel(entity *review.ManualReview) *models.ManualReviewModel {
	if entity == nil {
		return nil
	}
	return &models.ManualReviewModel{
		ID:          entity.ID(),
		SiteID:      entity.SiteID().Value(),
		ProductID:   entity.ProductID(),
		Rating:      entity.Rating().Value(),
		ReviewCount: entity.ReviewCount(),
		DisplayText: entity.DisplayText(),
		CreatedAt:   entity.CreatedAt(),
		UpdatedAt:   entity.UpdatedAt(),
	}
}

func (m *manualReviewMapper) ToEntities(modelList []*models.ManualReviewModel) ([]*review.ManualReview, error) {
	entities := make([]*review.ManualReview, 0, len(modelList))
	for _, model := range modelList {
		entity, err := m.ToEntity(model)
		if err != nil {
			return nil, err
		}
		entities = append(entities, entity)
	}
	return entities, nil
}
