package usecases

import (
	"context"
	"fmt"
	"strings"

	"stickybar/internal/application/review/dto"
	"stickybar/internal/domain/review"
	vo "stickybar/internal/domain/site/valueobjects"
	"stickybar/internal/shared/errors"
	"stickybar/internal/shared/logger"
)

// SaveManualReviewCommand carries a manual review write.
type SaveManualReviewCommand struct {
	SiteID      string
	ProductID   string
	Rating      float64
	ReviewCount int
	DisplayText string
}

// SaveManualReviewUseCase creates or updates the manual review for a
// (site, product) pair. Validation rejects the write before any persistence.
type SaveManualReviewUseCase struct {
	manualReviewRepo review.ManualReviewRepository
	logger           logger.Interface
}

// NewSaveManualReviewUseCase creates the manual review write use case.
func NewSaveManualReviewUseCase(manualReviewRepo review.ManualReviewRepository, log logger.Interface) *SaveManualReviewUseCase {
	return &SaveManualReviewUseCase{
		manualReviewRepo: manualReviewRepo,
		logger:           log,
	}
}

// Execute validates the command and upserts the review.
func (uc *SaveManualReviewUseCase) Execute(ctx context.Context, cmd SaveManualReviewCommand) (*dto.SaveManualReviewResult, error) {
	siteID, err := vo.NewSiteID(cmd.SiteID)
	if err != nil {
		return nil, errors.NewValidationError("Site ID is required")
	}
	if strings.TrimSpace(cmd.ProductID) == "" {
		return nil, errors.NewValidationError("Product ID is required")
	}
	if cmd.Rating < 0 || cmd.Rating > 5 {
		return nil, errors.NewValidationError("Rating must be between 0 and 5")
	}
	if cmd.ReviewCount < 0 {
		return nil, errors.NewValidationError("Review count cannot be negative")
	}

	productID := strings.TrimSpace(cmd.ProductID)

	existing, err := uc.manualReviewRepo.Get(ctx, siteID, productID)
	if err != nil {
		uc.logger.Errorw("failed to load manual review", "error", err,
			"site_id", siteID.Value(), "product_id", productID)
		return nil, fmt.Errorf("failed to load manual review: %w", err)
	}

	if existing == nil {
		created, err := review.NewManualReview(siteID, productID, cmd.Rating, cmd.ReviewCount, cmd.DisplayText)
		if err != nil {
			return nil, errors.NewValidationError("Invalid manual review", err.Error())
		}
		if err := uc.manualReviewRepo.Create(ctx, created); err != nil {
			uc.logger.Errorw("failed to create manual review", "error", err,
				"site_id", siteID.Value(), "product_id", productID)
			return nil, fmt.Errorf("failed to create manual review: %w", err)
		}
		uc.logger.Infow("manual review created",
			"site_id", siteID.Value(), "product_id", productID)
		return &dto.SaveManualReviewResult{Review: dto.FromManualReview(created), IsNew: true}, nil
	}

	if err := existing.Update(cmd.Rating, cmd.ReviewCount, cmd.DisplayText); err != nil {
		return nil, errors.NewValidationError("Invalid manual review", err.Error())
	}
	if err := uc.manualReviewRepo.Update(ctx, existing); err != nil {
		uc.logger.Errorw("failed to update manual review", "error", err,
			"site_id", siteID.Value(), "product_id", productID)
		return nil, fmt.Errorf("failed to update manual review: %w", err)
	}

	uc.logger.Infow("manual review updated",
		"site_id", siteID.Value(), "product_id", productID)
	return &dto.SaveManualReviewResult{Review: dto.FromManualReview(existing), IsNew: false}, nil
}
