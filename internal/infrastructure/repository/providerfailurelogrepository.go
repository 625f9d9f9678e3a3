package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"stickybar/internal/domain/review"
	vo "stickybar/internal/domain/site/valueobjects"
	"stickybar/internal/infrastructure/persistence/mappers"
	"stickybar/internal/infrastructure/persistence/models"
	"stickybar/internal/shared/errors"
	"stickybar/internal/shared/logger"
)

const defaultFailureLogLimit = 50

// ProviderFailureLogRepositoryImpl implements the review.FailureLogRepository interface
type ProviderFailureLogRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.FailureLogMapper
	logger logger.Interface
}

// NewProviderFailureLogRepository creates a new failure log repository instance
func NewProviderFailureLogRepository(db *gorm.DB, logger logger.Interface) review.FailureLogRepository {
	return &ProviderFailureLogRepositoryImpl{
		db:     db,
		mapper: mappers.NewFailureLogMapper(),
		logger: logger,
	}
}

// Append records a provider failure
func (r *ProviderFailureLogRepositoryImpl) Append(ctx context.Context, entry *review.ProviderFailureLog) error {
	model := r.mapper.ToModel(entry)
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		r.logger.Errorw("failed to append failure log",
			"site_id", model.SiteID,
			"product_id", model.ProductID,
			"provider", model.ProviderType,
			"error", err)
		return fmt.Errorf("failed to append failure log: %w", err)
	}

	if err := entry.SetID(model.ID); err != nil {
		return fmt.Errorf("failed to set failure log ID: %w", err)
	}
	return nil
}

// ListBySite returns the most recent failures for a site, newest first
func (r *ProviderFailureLogRepositoryImpl) ListBySite(ctx context.Context, siteID vo.SiteID, limit int) ([]*review.ProviderFailureLog, error) {
	if limit <= 0 {
		limit = defaultFailureLogLimit
	}

	var modelList []*models.ProviderFailureLogModel
	err := r.db.WithContext(ctx).
		Where("site_id = ?", siteID.Value()).
		Order("occurred_at DESC").
		Limit(limit).
		Find(&modelList).Error
	if err != nil {
		r.logger.Errorw("failed to list failure logs", "site_id", siteID.Value(), "error", err)
		return nil, fmt.Errorf("failed to list failure logs: %w", err)
	}
	return r.mapper.ToEntities(modelList)
}

// ListUnnotified returns failures whose owner notification is still pending,
// oldest first
func (r *ProviderFailureLogRepositoryImpl) ListUnnotified(ctx context.Context, limit int) ([]*review.ProviderFailureLog, error) {
	if limit <= 0 {
		limit = defaultFailureLogLimit
	}

	var modelList []*models.ProviderFailureLogModel
	err := r.db.WithContext(ctx).
		Where("notified = ?", false).
		Order("occurred_at ASC").
		Limit(limit).
		Find(&modelList).Error
	if err != nil {
		r.logger.Errorw("failed to list unnotified failure logs", "error", err)
		return nil, fmt.Errorf("failed to list unnotified failure logs: %w", err)
	}
	return r.mapper.ToEntities(modelList)
}

// MarkNotified flags a failure log entry as notified
func (r *ProviderFailureLogRepositoryImpl) MarkNotified(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).
		Model(&models.ProviderFailureLogModel{}).
		Where("id = ?", id).
		Update("notified", true)
	if result.Error != nil {
		r.logger.Errorw("failed to mark failure log notified", "id", id, "error", result.Error)
		return fmt.Errorf("failed to mark failure log notified: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("failure log entry not found")
	}
	return nil
}
