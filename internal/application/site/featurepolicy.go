// Package site implements site-scoped application services, notably the
// plan-based feature policy backed by the configuration store.
package site

import (
	"context"
	"fmt"

	"stickybar/internal/domain/site"
	vo "stickybar/internal/domain/site/valueobjects"
	"stickybar/internal/shared/logger"
)

// PlanFeaturePolicy resolves entitlements from the site's stored plan,
// defaulting to Free when the site has never been configured.
type PlanFeaturePolicy struct {
	configRepo site.Repository
	logger     logger.Interface
}

// NewPlanFeaturePolicy creates a feature policy backed by the config store.
func NewPlanFeaturePolicy(configRepo site.Repository, log logger.Interface) *PlanFeaturePolicy {
	return &PlanFeaturePolicy{
		configRepo: configRepo,
		logger:     log,
	}
}

func (p *PlanFeaturePolicy) planForSite(ctx context.Context, siteID vo.SiteID) (vo.Plan, error) {
	config, err := p.configRepo.Get(ctx, siteID)
	if err != nil {
		return "", fmt.Errorf("failed to load site configuration: %w", err)
	}
	if config == nil {
		return vo.PlanFree, nil
	}
	return config.Plan(), nil
}

// IsEnabledForSite reports whether the feature is unlocked for the site's plan.
func (p *PlanFeaturePolicy) IsEnabledForSite(ctx context.Context, siteID vo.SiteID, feature vo.Feature) (bool, error) {
	plan, err := p.planForSite(ctx, siteID)
	if err != nil {
		return false, err
	}
	return vo.FeatureEnabled(plan, feature), nil
}

// EnabledFeaturesForSite returns the availability of every gated feature.
func (p *PlanFeaturePolicy) EnabledFeaturesForSite(ctx context.Context, siteID vo.SiteID) (map[vo.Feature]bool, error) {
	plan, err := p.planForSite(ctx, siteID)
	if err != nil {
		return nil, err
	}

	p.logger.Debugw("resolved feature availability",
		"site_id", siteID.Value(),
		"plan", plan.String(),
	)
	return p.EnabledFeaturesForPlan(plan), nil
}

// EnabledFeaturesForPlan returns the availability of every gated feature for
// an already-known plan, without touching the store.
func (p *PlanFeaturePolicy) EnabledFeaturesForPlan(plan vo.Plan) map[vo.Feature]bool {
	availability := make(map[vo.Feature]bool, len(vo.AllFeatures()))
	for _, feature := range vo.AllFeatures() {
		availability[feature] = vo.FeatureEnabled(plan, feature)
	}
	return availability
}
