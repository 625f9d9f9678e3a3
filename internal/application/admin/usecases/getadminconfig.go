package usecases

import (
	"context"
	"fmt"

	"stickybar/internal/application/admin/dto"
	"stickybar/internal/domain/site"
	vo "stickybar/internal/domain/site/valueobjects"
	"stickybar/internal/shared/errors"
	"stickybar/internal/shared/logger"
)

// GetAdminConfigUseCase returns the stored configuration for the admin UI,
// or an ephemeral default when the site has never been configured. The
// default is not persisted.
type GetAdminConfigUseCase struct {
	configRepo    site.Repository
	featurePolicy site.FeaturePolicy
	logger        logger.Interface
}

// NewGetAdminConfigUseCase creates the admin read use case.
func NewGetAdminConfigUseCase(configRepo site.Repository, featurePolicy site.FeaturePolicy, log logger.Interface) *GetAdminConfigUseCase {
	return &GetAdminConfigUseCase{
		configRepo:    configRepo,
		featurePolicy: featurePolicy,
		logger:        log,
	}
}

// Execute loads the configuration snapshot plus feature availability.
func (uc *GetAdminConfigUseCase) Execute(ctx context.Context, rawSiteID string) (*dto.AdminConfigSnapshot, error) {
	siteID, err := vo.NewSiteID(rawSiteID)
	if err != nil {
		return nil, errors.NewValidationError("Site ID is required")
	}

	config, err := uc.configRepo.Get(ctx, siteID)
	if err != nil {
		uc.logger.Errorw("failed to load site configuration", "error", err, "site_id", siteID.Value())
		return nil, fmt.Errorf("failed to load site configuration: %w", err)
	}
	if config == nil {
		config, err = site.NewSiteConfiguration(siteID)
		if err != nil {
			return nil, fmt.Errorf("failed to build default configuration: %w", err)
		}
	}

	availability := uc.featurePolicy.EnabledFeaturesForPlan(config.Plan())
	features := make(map[string]bool, len(availability))
	for feature, enabled := range availability {
		features[feature.String()] = enabled
	}

	return &dto.AdminConfigSnapshot{
		Configuration: dto.FromConfiguration(config),
		Features:      features,
	}, nil
}
