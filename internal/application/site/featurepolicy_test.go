package site

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainsite "stickybar/internal/domain/site"
	vo "stickybar/internal/domain/site/valueobjects"
	"stickybar/internal/shared/logger"
)

type stubConfigRepo struct {
	config *domainsite.SiteConfiguration
	err    error
}

func (s *stubConfigRepo) Get(_ context.Context, _ vo.SiteID) (*domainsite.SiteConfiguration, error) {
	return s.config, s.err
}

func (s *stubConfigRepo) Upsert(_ context.Context, _ *domainsite.SiteConfiguration) error {
	return nil
}

func testSiteID(t *testing.T) vo.SiteID {
	t.Helper()
	siteID, err := vo.NewSiteID("shop-123.example.com")
	require.NoError(t, err)
	return siteID
}

func TestIsEnabledForSite_UnconfiguredDefaultsToFree(t *testing.T) {
	policy := NewPlanFeaturePolicy(&stubConfigRepo{}, logger.NewLogger())

	enabled, err := policy.IsEnabledForSite(context.Background(), testSiteID(t), vo.FeatureMultipleReviewProviders)

	require.NoError(t, err)
	assert.False(t, enabled)
}

func TestIsEnabledForSite_UsesStoredPlan(t *testing.T) {
	config, err := domainsite.NewSiteConfiguration(testSiteID(t))
	require.NoError(t, err)
	require.NoError(t, config.UpdatePlan(vo.PlanPro))

	policy := NewPlanFeaturePolicy(&stubConfigRepo{config: config}, logger.NewLogger())

	enabled, err := policy.IsEnabledForSite(context.Background(), testSiteID(t), vo.FeatureMultipleReviewProviders)
	require.NoError(t, err)
	assert.True(t, enabled)

	enabled, err = policy.IsEnabledForSite(context.Background(), testSiteID(t), vo.FeatureAdvancedStyling)
	require.NoError(t, err)
	assert.False(t, enabled)
}

func TestIsEnabledForSite_RepoError(t *testing.T) {
	policy := NewPlanFeaturePolicy(&stubConfigRepo{err: errors.New("connection refused")}, logger.NewLogger())

	_, err := policy.IsEnabledForSite(context.Background(), testSiteID(t), vo.FeatureAdvancedStyling)

	assert.Error(t, err)
}

func TestEnabledFeaturesForSite_CoversEveryFeature(t *testing.T) {
	config, err := domainsite.NewSiteConfiguration(testSiteID(t))
	require.NoError(t, err)
	require.NoError(t, config.UpdatePlan(vo.PlanPremium))

	policy := NewPlanFeaturePolicy(&stubConfigRepo{config: config}, logger.NewLogger())

	availability, err := policy.EnabledFeaturesForSite(context.Background(), testSiteID(t))

	require.NoError(t, err)
	assert.Len(t, availability, len(vo.AllFeatures()))
	for feature, enabled := range availability {
		assert.True(t, enabled, "premium should unlock %s", feature)
	}
}

func TestEnabledFeaturesForPlan_DoesNotTouchStore(t *testing.T) {
	policy := NewPlanFeaturePolicy(&stubConfigRepo{err: errors.New("connection refused")}, logger.NewLogger())

	availability := policy.EnabledFeaturesForPlan(vo.PlanPro)

	assert.Len(t, availability, len(vo.AllFeatures()))
	assert.True(t, availability[vo.FeatureMultipleReviewProviders])
	assert.False(t, availability[vo.FeatureAdvancedStyling])
}
