package usecases

import (
	"context"
	"fmt"
	"strings"

	"stickybar/internal/domain/review"
	vo "stickybar/internal/domain/site/valueobjects"
	"stickybar/internal/shared/errors"
	"stickybar/internal/shared/logger"
)

// DeleteManualReviewUseCase removes the manual review for a (site, product) pair.
type DeleteManualReviewUseCase struct {
	manualReviewRepo review.ManualReviewRepository
	logger           logger.Interface
}

// NewDeleteManualReviewUseCase creates the manual review delete use case.
func NewDeleteManualReviewUseCase(manualReviewRepo review.ManualReviewRepository, log logger.Interface) *DeleteManualReviewUseCase {
	return &DeleteManualReviewUseCase{
		manualReviewRepo: manualReviewRepo,
		logger:           log,
	}
}

// Execute deletes the review; deleting a missing review is a not-found error.
func (uc *DeleteManualReviewUseCase) Execute(ctx context.Context, rawSiteID, productID string) error {
	siteID, err := vo.NewSiteID(rawSiteID)
	if err != nil {
		return errors.NewValidationError("Site ID is required")
	}
	productID = strings.TrimSpace(productID)
	if productID == "" {
		return errors.NewValidationError("Product ID is required")
	}

	if err := uc.manualReviewRepo.Delete(ctx, siteID, productID); err != nil {
		if errors.IsNotFound(err) {
			return err
		}
		uc.logger.Errorw("failed to delete manual review", "error", err,
			"site_id", siteID.Value(), "product_id", productID)
		return fmt.Errorf("failed to delete manual review: %w", err)
	}

	uc.logger.Infow("manual review deleted",
		"site_id", siteID.Value(), "product_id", productID)
	return nil
}
