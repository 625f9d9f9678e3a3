// Package repository provides gorm-backed implementations of the domain
// repository interfaces.
package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"stickybar/internal/domain/site"
	vo "stickybar/internal/domain/site/valueobjects"
	"stickybar/internal/infrastructure/persistence/mappers"
	"stickybar/internal/infrastructure/persistence/models"
	"stickybar/internal/shared/logger"
)

// SiteConfigurationRepositoryImpl implements the site.Repository interface
type SiteConfigurationRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.SiteConfigurationMapper
	logger logger.Interface
}

// NewSiteConfigurationRepository creates a new site configuration repository instance
func NewSiteConfigurationRepository(db *gorm.DB, logger logger.Interface) site.Repository {
	return &SiteConfigurationRepositoryImpl{
		db:     db,
		mapper: mappers.NewSiteConfigurationMapper(),
		logger: logger,
	}
}

// Get loads the configuration for a site. Returns nil without error when the
// site has never been configured.
func (r *SiteConfigurationRepositoryImpl) Get(ctx context.Context, siteID vo.SiteID) (*site.SiteConfiguration, error) {
	var model models.SiteConfigurationModel
	err := r.db.WithContext(ctx).Where("site_id = ?", siteID.Value()).First(&model).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		r.logger.Errorw("failed to get site configuration", "site_id", siteID.Value(), "error", err)
		return nil, fmt.Errorf("failed to get site configuration: %w", err)
	}
	return r.mapper.ToEntity(&model)
}

// Upsert inserts the configuration or updates the existing row for the site.
func (r *SiteConfigurationRepositoryImpl) Upsert(ctx context.Context, config *site.SiteConfiguration) error {
	model, err := r.mapper.ToModel(config)
	if err != nil {
		return fmt.Errorf("failed to map site configuration: %w", err)
	}

	var existing models.SiteConfigurationModel
	err = r.db.WithContext(ctx).Where("site_id = ?", model.SiteID).First(&existing).Error
	switch {
	case err == gorm.ErrRecordNotFound:
		if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
			r.logger.Errorw("failed to create site configuration", "site_id", model.SiteID, "error", err)
			return fmt.Errorf("failed to create site configuration: %w", err)
		}
	case err != nil:
		r.logger.Errorw("failed to look up site configuration", "site_id", model.SiteID, "error", err)
		return fmt.Errorf("failed to look up site configuration: %w", err)
	default:
		model.ID = existing.ID
		model.CreatedAt = existing.CreatedAt
		if err := r.db.WithContext(ctx).Save(model).Error; err != nil {
			r.logger.Errorw("failed to update site configuration", "site_id", model.SiteID, "error", err)
			return fmt.Errorf("failed to update site configuration: %w", err)
		}
	}

	r.logger.Infow("site configuration saved",
		"site_id", model.SiteID,
		"plan", model.Plan,
		"provider", model.PreferredProvider,
		"enabled", model.Enabled)
	return nil
}
