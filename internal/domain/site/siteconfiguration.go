package site

import (
	"fmt"
	"strings"
	"time"

	vo "stickybar/internal/domain/site/valueobjects"
)

// SiteConfiguration is the aggregate root for a site's sticky bar settings.
// Paid settings (preferred provider, fallback text, style) are normalized
// against the plan's entitlements on every write path.
type SiteConfiguration struct {
	siteID            vo.SiteID
	plan              vo.Plan
	preferredProvider vo.ProviderType
	manualReview      *vo.ManualReview
	fallbackText      string
	fallbackConfig    vo.FallbackConfig
	style             vo.StickyStyle
	storeOwnerEmail   string
	enabled           bool
	createdAt         time.Time
	updatedAt         time.Time
}

// NewSiteConfiguration creates the default configuration for a site: Free
// plan, Manual provider, default style, enabled.
func NewSiteConfiguration(siteID vo.SiteID) (*SiteConfiguration, error) {
	if siteID.IsZero() {
		return nil, fmt.Errorf("site ID is required")
	}

	now := time.Now()
	return &SiteConfiguration{
		siteID:            siteID,
		plan:              vo.PlanFree,
		preferredProvider: vo.ProviderManual,
		fallbackConfig:    vo.DefaultFallbackConfig(),
		style:             vo.DefaultStyle(),
		enabled:           true,
		createdAt:         now,
		updatedAt:         now,
	}, nil
}

// ReconstructSiteConfiguration rebuilds a configuration from persistence.
func ReconstructSiteConfiguration(
	siteID vo.SiteID,
	plan vo.Plan,
	preferredProvider vo.ProviderType,
	manualReview *vo.ManualReview,
	fallbackText string,
	fallbackConfig vo.FallbackConfig,
	style vo.StickyStyle,
	storeOwnerEmail string,
	enabled bool,
	createdAt, updatedAt time.Time,
) (*SiteConfiguration, error) {
	if siteID.IsZero() {
		return nil, fmt.Errorf("site ID is required")
	}
	if !plan.IsValid() {
		return nil, fmt.Errorf("invalid plan: %s", plan)
	}
	if !preferredProvider.IsValid() {
		return nil, fmt.Errorf("invalid provider type: %s", preferredProvider)
	}

	return &SiteConfiguration{
		siteID:            siteID,
		plan:              plan,
		preferredProvider: preferredProvider,
		manualReview:      manualReview,
		fallbackText:      fallbackText,
		fallbackConfig:    fallbackConfig,
		style:             style,
		storeOwnerEmail:   storeOwnerEmail,
		enabled:           enabled,
		createdAt:         createdAt,
		updatedAt:         updatedAt,
	}, nil
}

func (c *SiteConfiguration) SiteID() vo.SiteID { return c.siteID }

func (c *SiteConfiguration) Plan() vo.Plan { return c.plan }

func (c *SiteConfiguration) PreferredProvider() vo.ProviderType { return c.preferredProvider }

func (c *SiteConfiguration) ManualReview() *vo.ManualReview { return c.manualReview }

func (c *SiteConfiguration) FallbackText() string { return c.fallbackText }

func (c *SiteConfiguration) FallbackConfig() vo.FallbackConfig { return c.fallbackConfig }

func (c *SiteConfiguration) Style() vo.StickyStyle { return c.style }

func (c *SiteConfiguration) StoreOwnerEmail() string { return c.storeOwnerEmail }

func (c *SiteConfiguration) Enabled() bool { return c.enabled }

func (c *SiteConfiguration) CreatedAt() time.Time { return c.createdAt }

func (c *SiteConfiguration) UpdatedAt() time.Time { return c.updatedAt }

func (c *SiteConfiguration) touch() {
	c.updatedAt = time.Now()
}

// UpdatePlan changes the subscription plan.
func (c *SiteConfiguration) UpdatePlan(plan vo.Plan) error {
	if !plan.IsValid() {
		return fmt.Errorf("invalid plan: %s", plan)
	}
	c.plan = plan
	c.touch()
	return nil
}

// UpdatePreferredProvider changes the primary review provider.
func (c *SiteConfiguration) UpdatePreferredProvider(provider vo.ProviderType) error {
	if !provider.IsValid() {
		return fmt.Errorf("invalid provider type: %s", provider)
	}
	c.preferredProvider = provider
	c.touch()
	return nil
}

// UpdateManualReview sets or clears the embedded manual review.
func (c *SiteConfiguration) UpdateManualReview(review *vo.ManualReview) {
	c.manualReview = review
	c.touch()
}

// UpdateFallbackText sets or clears the textual fallback.
func (c *SiteConfiguration) UpdateFallbackText(text string) {
	c.fallbackText = strings.TrimSpace(text)
	c.touch()
}

// UpdateFallbackConfig replaces the fallback behavior settings.
func (c *SiteConfiguration) UpdateFallbackConfig(cfg vo.FallbackConfig) {
	c.fallbackConfig = cfg
	c.touch()
}

// UpdateStyle replaces the widget style.
func (c *SiteConfiguration) UpdateStyle(style vo.StickyStyle) {
	c.style = style
	c.touch()
}

// UpdateStoreOwnerEmail sets or clears the owner contact address.
func (c *SiteConfiguration) UpdateStoreOwnerEmail(email string) {
	c.storeOwnerEmail = strings.TrimSpace(email)
	c.touch()
}

// Enable turns the widget on.
func (c *SiteConfiguration) Enable() {
	if !c.enabled {
		c.enabled = true
		c.touch()
	}
}

// Disable turns the widget off without touching the rest of the configuration.
func (c *SiteConfiguration) Disable() {
	if c.enabled {
		c.enabled = false
		c.touch()
	}
}

// EnforceEntitlements normalizes paid settings against the current plan and
// returns human-readable warnings for every setting it had to downgrade.
// It runs as a single pass after any mutation so the invariants hold on
// every write, not just at creation.
func (c *SiteConfiguration) EnforceEntitlements() []string {
	var warnings []string

	if !vo.FeatureEnabled(c.plan, vo.FeatureMultipleReviewProviders) {
		if c.preferredProvider != vo.ProviderManual {
			warnings = append(warnings, "Multiple providers are not enabled for this site; primary provider was forced to Manual.")
			c.preferredProvider = vo.ProviderManual
			c.touch()
		}
	}

	if !vo.FeatureEnabled(c.plan, vo.FeatureManualFallbackText) {
		if c.fallbackText != "" {
			warnings = append(warnings, "Manual fallback text is not enabled for this site; fallback text was cleared.")
			c.fallbackText = ""
			c.touch()
		}
	}

	if !vo.FeatureEnabled(c.plan, vo.FeatureAdvancedStyling) {
		if !c.style.IsDefault() {
			warnings = append(warnings, "Advanced styling is not enabled for this site; styling was reset to default.")
			c.style = vo.DefaultStyle()
			c.touch()
		}
	}

	return warnings
}

// ResolvedStyle returns the stored style when AdvancedStyling is entitled,
// the default style otherwise. Read-path counterpart of EnforceEntitlements.
func (c *SiteConfiguration) ResolvedStyle() vo.StickyStyle {
	if vo.FeatureEnabled(c.plan, vo.FeatureAdvancedStyling) {
		return c.style
	}
	return vo.DefaultStyle()
}
