package mappers

import (
	"fmt"

	"stickybar/internal/domain/review"
	vo "stickybar/internal/domain/site/valueobjects"
	"stickybar/internal/infrastructure/persistence/models"
)

// FailureLogMapper handles the conversion between domain entities and persistence models
type FailureLogMapper interface {
	ToEntity(model *models.ProviderFailureLogModel) (*review.ProviderFailureLog, error)
	ToModel(entity *review.ProviderFailureLog) *models.ProviderFailureLogModel
	ToEntities(modelList []*models.ProviderFailureLogModel) ([]*review.ProviderFailureLog, error)
}

type failureLogMapper struct{}

// NewFailureLogMapper creates a new failure log mapper
func NewFailureLogMapper() FailureLogMapper {
	return &failureLogMapper{}
}

func (m *failureLogMapper) ToEntity(model *models.ProviderFailureLogModel) (*review.ProviderFailureLog, error) {
	if model == nil {
		return nil, nil
	}

	siteID, err := vo.NewSiteID(model.SiteID)
	if err != nil {
		return nil, fmt.Errorf("invalid stored site ID: %w", err)
	}

	entity, err := review.ReconstructProviderFailureLog(
		model.ID,
		siteID,
		model.ProductID,
		vo.ProviderType(model.ProviderType),
		model.ErrorMessage,
		model.Notified,
		model.OccurredAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct failure log: %w", err)
	}
	return entity, nil
}

func (m *failureLogMapper) ToModel(entity *review.ProviderFailureLog) *models.ProviderFailureLogModel {
	if entity == nil {
		return nil
	}
	return &models.ProviderFailureLogModel{
		ID:           entity.ID(),
		SiteID:       entity.SiteID().Value(),
		ProductID:    entity.ProductID(),
		ProviderType: entity.ProviderType().String(),
		ErrorMessage: entity.ErrorMessage(),
		Notified:     entity.Notified(),
		OccurredAt:   entity.OccurredAt(),
	}
}

func (m *failureLogMapper) ToEntities(modelList []*models.ProviderFailureLogModel) ([]*review.ProviderFailureLog, error) {
	entities := make([]*review.ProviderFailureLog, 0, len(modelList))
	for _, model := range modelList {
		entity, err := m.ToEntity(model)
		if err != nil {
			return nil, err
		}
		entities = append(entities, entity)
	}
	return entities, nil
}
