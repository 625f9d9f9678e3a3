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

// GetManualReviewUseCase looks up the manual review for a (site, product) pair.
type GetManualReviewUseCase struct {
	manualReviewRepo review.ManualReviewRepository
	logger           logger.Interface
}

// NewGetManualReviewUseCase creates the manual review read use case.
func NewGetManualReviewUseCase(manualReviewRepo review.ManualReviewRepository, log logger.Interface) *GetManualReviewUseCase {
	return &GetManualReviewUseCase{
		manualReviewRepo: manualReviewRepo,
		logger:           log,
	}
}

// Execute returns the review or a not-found error.
func (uc *GetManualReviewUseCase) Execute(ctx context.Context, rawSiteID, productID string) (*dto.ManualReviewDTO, error) {
	siteID, err := vo.NewSiteID(rawSiteID)
	if err != nil {
		return nil, errors.NewValidationError("Site ID is required")
	}
	productID = strings.TrimSpace(productID)
	if productID == "" {
		return nil, errors.NewValidationError("Product ID is required")
	}

	found, err := uc.manualReviewRepo.Get(ctx, siteID, productID)
	if err != nil {
		uc.logger.Errorw("failed to load manual review", "error", err,
			"site_id", siteID.Value(), "product_id", productID)
		return nil, fmt.Errorf("failed to load manual review: %w", err)
	}
	if found == nil {
		return nil, errors.NewNotFoundError("Manual review not found")
	}

	result := dto.FromManualReview(found)
	return &result, nil
}
