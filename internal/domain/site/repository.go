package site

import (
	"context"

	vo "stickybar/internal/domain/site/valueobjects"
)

// Repository persists site configurations. Get returns (nil, nil) when the
// site has never been configured; Upsert is last-write-wins.
type Repository interface {
	Get(ctx context.Context, siteID vo.SiteID) (*SiteConfiguration, error)
	Upsert(ctx context.Context, config *SiteConfiguration) error
}

// FeaturePolicy resolves feature entitlements for a site, defaulting to the
// Free plan when the site is unconfigured.
type FeaturePolicy interface {
	IsEnabledForSite(ctx context.Context, siteID vo.SiteID, feature vo.Feature) (bool, error)
	EnabledFeaturesForSite(ctx context.Context, siteID vo.SiteID) (map[vo.Feature]bool, error)
	EnabledFeaturesForPlan(plan vo.Plan) map[vo.Feature]bool
}
