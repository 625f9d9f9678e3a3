package usecases

import (
	"context"
	"fmt"

	"stickybar/internal/application/review/dto"
	"stickybar/internal/domain/review"
	vo "stickybar/internal/domain/site/valueobjects"
	"stickybar/internal/shared/errors"
	"stickybar/internal/shared/logger"
)

// ListFailureLogsUseCase returns the recent provider failures for a site,
// newest first. Used by the admin dashboard.
type ListFailureLogsUseCase struct {
	failureLogRepo review.FailureLogRepository
	logger         logger.Interface
}

// NewListFailureLogsUseCase creates the failure log read use case.
func NewListFailureLogsUseCase(failureLogRepo review.FailureLogRepository, log logger.Interface) *ListFailureLogsUseCase {
	return &ListFailureLogsUseCase{
		failureLogRepo: failureLogRepo,
		logger:         log,
	}
}

// Execute lists up to limit recent failures for the site.
func (uc *ListFailureLogsUseCase) Execute(ctx context.Context, rawSiteID string, limit int) ([]dto.FailureLogDTO, error) {
	siteID, err := vo.NewSiteID(rawSiteID)
	if err != nil {
		return nil, errors.NewValidationError("Site ID is required")
	}

	entries, err := uc.failureLogRepo.ListBySite(ctx, siteID, limit)
	if err != nil {
		uc.logger.Errorw("failed to list failure logs", "error", err, "site_id", siteID.Value())
		return nil, fmt.Errorf("failed to list failure logs: %w", err)
	}

	result := make([]dto.FailureLogDTO, 0, len(entries))
	for _, entry := range entries {
		result = append(result, dto.FromFailureLog(entry))
	}
	return result, nil
}
