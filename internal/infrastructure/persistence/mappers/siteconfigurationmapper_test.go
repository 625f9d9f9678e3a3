package mappers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stickybar/internal/domain/site"
	vo "stickybar/internal/domain/site/valueobjects"
	"stickybar/internal/infrastructure/persistence/models"
)

func fullConfiguration(t *testing.T) *site.SiteConfiguration {
	t.Helper()

	siteID, err := vo.NewSiteID("shop-123.example.com")
	require.NoError(t, err)

	manual, err := vo.NewManualReview(4.5, "Customers love it")
	require.NoError(t, err)

	fallbackRating := 4.0
	fc, err := vo.NewFallbackConfig(true, &fallbackRating, 25, true, "owner@example.com")
	require.NoError(t, err)

	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	config, err := site.ReconstructSiteConfiguration(
		siteID,
		vo.PlanPremium,
		vo.ProviderJudgeMe,
		&manual,
		"Trusted by thousands",
		fc,
		vo.NewStickyStyle("#000000", "#FFFFFF", "#FF0000"),
		"owner@example.com",
		true,
		now, now,
	)
	require.NoError(t, err)
	return config
}

func TestSiteConfigurationMapper_RoundTrip(t *testing.T) {
	mapper := NewSiteConfigurationMapper()
	original := fullConfiguration(t)

	model, err := mapper.ToModel(original)
	require.NoError(t, err)
	require.NotNil(t, model)

	restored, err := mapper.ToEntity(model)
	require.NoError(t, err)
	require.NotNil(t, restored)

	assert.Equal(t, original.SiteID().Value(), restored.SiteID().Value())
	assert.Equal(t, original.Plan(), restored.Plan())
	assert.Equal(t, original.PreferredProvider(), restored.PreferredProvider())
	assert.Equal(t, original.FallbackText(), restored.FallbackText())
	assert.Equal(t, original.Style(), restored.Style())
	assert.Equal(t, original.StoreOwnerEmail(), restored.StoreOwnerEmail())
	assert.Equal(t, original.Enabled(), restored.Enabled())

	require.NotNil(t, restored.ManualReview())
	assert.Equal(t, 4.5, restored.ManualReview().Rating().Value())
	assert.Equal(t, "Customers love it", restored.ManualReview().Text())

	fc := restored.FallbackConfig()
	assert.True(t, fc.UseManualRatingFallback())
	require.NotNil(t, fc.ManualRating())
	assert.Equal(t, 4.0, fc.ManualRating().Value())
	assert.Equal(t, 25, fc.ManualReviewCount())
	assert.True(t, fc.NotifyOnFailure())
	assert.Equal(t, "owner@example.com", fc.NotificationEmail())
}

func TestSiteConfigurationMapper_MinimalConfiguration(t *testing.T) {
	mapper := NewSiteConfigurationMapper()

	siteID, err := vo.NewSiteID("shop-123.example.com")
	require.NoError(t, err)
	original, err := site.NewSiteConfiguration(siteID)
	require.NoError(t, err)

	model, err := mapper.ToModel(original)
	require.NoError(t, err)

	restored, err := mapper.ToEntity(model)
	require.NoError(t, err)

	assert.Nil(t, restored.ManualReview())
	assert.True(t, restored.Style().IsDefault())
	assert.False(t, restored.FallbackConfig().HasManualRating())
}

func TestSiteConfigurationMapper_EmptyJSONColumns(t *testing.T) {
	mapper := NewSiteConfigurationMapper()

	model := &models.SiteConfigurationModel{
		SiteID:            "shop-123.example.com",
		Plan:              "free",
		PreferredProvider: "manual",
		Enabled:           true,
	}

	restored, err := mapper.ToEntity(model)
	require.NoError(t, err)

	assert.True(t, restored.Style().IsDefault())
	assert.False(t, restored.FallbackConfig().UseManualRatingFallback())
}

func TestSiteConfigurationMapper_NilPassthrough(t *testing.T) {
	mapper := NewSiteConfigurationMapper()

	entity, err := mapper.ToEntity(nil)
	require.NoError(t, err)
	assert.Nil(t, entity)

	model, err := mapper.ToModel(nil)
	require.NoError(t, err)
	assert.Nil(t, model)
}
