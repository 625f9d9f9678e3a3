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

// SaveAdminConfigCommand is the full configuration payload of the admin
// write path.
type SaveAdminConfigCommand struct {
	SiteID                  string
	Plan                    string
	PreferredProvider       string
	ManualRating            *float64
	ManualText              string
	FallbackText            string
	UseManualRatingFallback bool
	FallbackRating          *float64
	FallbackReviewCount     int
	NotifyOnFailure         bool
	NotificationEmail       string
	StoreOwnerEmail         string
	BackgroundColorHex      string
	TextColorHex            string
	AccentColorHex          string
	Enabled                 bool
}

// SaveAdminConfigUseCase persists a full configuration write. Validation
// errors abort before persistence; entitlement downgrades are applied with
// warnings and the write still succeeds.
type SaveAdminConfigUseCase struct {
	configRepo site.Repository
	logger     logger.Interface
}

// NewSaveAdminConfigUseCase creates the admin write use case.
func NewSaveAdminConfigUseCase(configRepo site.Repository, log logger.Interface) *SaveAdminConfigUseCase {
	return &SaveAdminConfigUseCase{
		configRepo: configRepo,
		logger:     log,
	}
}

// Execute validates, normalizes, and upserts the configuration.
func (uc *SaveAdminConfigUseCase) Execute(ctx context.Context, cmd SaveAdminConfigCommand) (*dto.SaveAdminConfigResult, error) {
	siteID, err := vo.NewSiteID(cmd.SiteID)
	if err != nil {
		return nil, errors.NewValidationError("Site ID is required")
	}

	plan, err := vo.NewPlan(cmd.Plan)
	if err != nil {
		return nil, errors.NewValidationError("Invalid plan", err.Error())
	}

	provider, err := vo.NewProviderType(cmd.PreferredProvider)
	if err != nil {
		return nil, errors.NewValidationError("Invalid provider", err.Error())
	}

	var manualReview *vo.ManualReview
	if cmd.ManualRating != nil {
		review, err := vo.NewManualReview(*cmd.ManualRating, cmd.ManualText)
		if err != nil {
			return nil, errors.NewValidationError("Invalid manual rating", err.Error())
		}
		manualReview = &review
	}

	fallbackConfig, err := vo.NewFallbackConfig(
		cmd.UseManualRatingFallback,
		cmd.FallbackRating,
		cmd.FallbackReviewCount,
		cmd.NotifyOnFailure,
		cmd.NotificationEmail,
	)
	if err != nil {
		return nil, errors.NewValidationError("Invalid fallback configuration", err.Error())
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

	if err := config.UpdatePlan(plan); err != nil {
		return nil, errors.NewValidationError("Invalid plan", err.Error())
	}
	if err := config.UpdatePreferredProvider(provider); err != nil {
		return nil, errors.NewValidationError("Invalid provider", err.Error())
	}
	config.UpdateManualReview(manualReview)
	config.UpdateFallbackText(cmd.FallbackText)
	config.UpdateFallbackConfig(fallbackConfig)
	config.UpdateStyle(vo.NewStickyStyle(cmd.BackgroundColorHex, cmd.TextColorHex, cmd.AccentColorHex))
	config.UpdateStoreOwnerEmail(cmd.StoreOwnerEmail)
	if cmd.Enabled {
		config.Enable()
	} else {
		config.Disable()
	}

	warnings := config.EnforceEntitlements()

	if err := uc.configRepo.Upsert(ctx, config); err != nil {
		uc.logger.Errorw("failed to save site configuration", "error", err, "site_id", siteID.Value())
		return nil, fmt.Errorf("failed to save site configuration: %w", err)
	}

	uc.logger.Infow("site configuration saved",
		"site_id", siteID.Value(),
		"plan", plan.String(),
		"warnings", len(warnings),
	)

	if warnings == nil {
		warnings = []string{}
	}
	return &dto.SaveAdminConfigResult{
		Configuration: dto.FromConfiguration(config),
		Warnings:      warnings,
	}, nil
}
