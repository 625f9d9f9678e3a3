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

// ManualReviewRepositoryImpl implements the review.ManualReviewRepository interface
type ManualReviewRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.ManualReviewMapper
	logger logger.Interface
}

// NewManualReviewRepository creates a new manual review repository instance
func NewManualReviewRepository(db *gorm.DB, logger logger.Interface) review.ManualReviewRepository {
	return &ManualReviewRepositoryImpl{
		db:     db,
		mapper: mappers.NewManualReviewMapper(),
		logger: logger,
	}
}

// Get loads the manual review for a site and product. Returns nil without
// error when none exists.
func (r *ManualReviewRepositoryImpl) Get(ctx context.Context, siteID vo.SiteID, productID string) (*review.ManualReview, error) {
	var model models.ManualReviewModel
	err := r.db.WithContext(ctx).
		Where("site_id = ? AND product_id = ?", siteID.Value(), productID).
		First(&model).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		r.logger.Errorw("failed to get manual review",
			"site_id", siteID.Value(),
			"product_id", productID,
			"error", err)
		return nil, fmt.Errorf("failed to get manual review: %w", err)
	}
	return r.mapper.ToEntity(&model)
}

// Create persists a new manual review
func (r *ManualReviewRepositoryImpl) Create(ctx context.Context, entity *review.ManualReview) error {
	model := r.mapper.ToModel(entity)
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		r.logger.Errorw("failed to create manual review",
			"site_id", model.SiteID,
			"product_id", model.ProductID,
			"error", err)
		return fmt.Errorf("failed to create manual review: %w", err)
	}

	if err := entity.SetID(model.ID); err != nil {
		return fmt.Errorf("failed to set manual review ID: %w", err)
	}

	r.logger.Infow("manual review created",
		"id", model.ID,
		"site_id", model.SiteID,
		"product_id", model.ProductID)
	return nil
}

// Update persists changes to an existing manual review
func (r *ManualReviewRepositoryImpl) Update(ctx context.Context, entity *review.ManualReview) error {
	model := r.mapper.ToModel(entity)
	result := r.db.WithContext(ctx).
		Model(&models.ManualReviewModel{}).
		Where("id = ?", model.ID).
		Updates(map[string]interface{}{
			"rating":       model.Rating,
			"review_count": model.ReviewCount,
			"display_text": model.DisplayText,
			"updated_at":   model.UpdatedAt,
		})
	if result.Error != nil {
		r.logger.Errorw("failed to update manual review", "id", model.ID, "error", result.Error)
		return fmt.Errorf("failed to update manual review: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("manual review not found")
	}

	r.logger.Infow("manual review updated", "id", model.ID)
	return nil
}

// Delete removes the manual review for a site and product
func (r *ManualReviewRepositoryImpl) Delete(ctx context.Context, siteID vo.SiteID, productID string) error {
	result := r.db.WithContext(ctx).
		Where("site_id = ? AND product_id = ?", siteID.Value(), productID).
		Delete(&models.ManualReviewModel{})
	if result.Error != nil {
		r.logger.Errorw("failed to delete manual review",
			"site_id", siteID.Value(),
			"product_id", productID,
			"error", result.Error)
		return fmt.Errorf("failed to delete manual review: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("manual review not found")
	}

	r.logger.Infow("manual review deleted", "site_id", siteID.Value(), "product_id", productID)
	return nil
}
