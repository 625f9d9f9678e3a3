package valueobjects

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// =====================================================================
// TestPlan_*
// =====================================================================

func TestNewPlan_Valid(t *testing.T) {
	for _, raw := range []string{"free", "pro", "premium"} {
		plan, err := NewPlan(raw)
		require.NoError(t, err)
		assert.Equal(t, raw, plan.String())
	}
}

func TestNewPlan_Invalid(t *testing.T) {
	_, err := NewPlan("enterprise")
	assert.Error(t, err)
}

func TestPlan_AtLeast(t *testing.T) {
	assert.True(t, PlanPremium.AtLeast(PlanFree))
	assert.True(t, PlanPremium.AtLeast(PlanPro))
	assert.True(t, PlanPro.AtLeast(PlanPro))
	assert.False(t, PlanFree.AtLeast(PlanPro))
	assert.False(t, PlanPro.AtLeast(PlanPremium))
}

// =====================================================================
// TestFeatureEnabled_*
// =====================================================================

func TestFeatureEnabled_Matrix(t *testing.T) {
	tests := []struct {
		plan    Plan
		feature Feature
		want    bool
	}{
		{PlanFree, FeatureMultipleReviewProviders, false},
		{PlanFree, FeatureManualFallbackText, false},
		{PlanFree, FeatureEmailNotificationOnFailure, false},
		{PlanFree, FeatureAdvancedStyling, false},
		{PlanPro, FeatureMultipleReviewProviders, true},
		{PlanPro, FeatureManualFallbackText, true},
		{PlanPro, FeatureEmailNotificationOnFailure, false},
		{PlanPro, FeatureAdvancedStyling, false},
		{PlanPremium, FeatureMultipleReviewProviders, true},
		{PlanPremium, FeatureManualFallbackText, true},
		{PlanPremium, FeatureEmailNotificationOnFailure, true},
		{PlanPremium, FeatureAdvancedStyling, true},
	}

	for _, tc := range tests {
		t.Run(tc.plan.String()+"/"+tc.feature.String(), func(t *testing.T) {
			assert.Equal(t, tc.want, FeatureEnabled(tc.plan, tc.feature))
		})
	}
}

// A higher plan never loses a feature the lower plan has.
func TestFeatureEnabled_Monotonic(t *testing.T) {
	plans := AllPlans()
	for i := 1; i < len(plans); i++ {
		lower, higher := plans[i-1], plans[i]
		for _, feature := range AllFeatures() {
			if FeatureEnabled(lower, feature) {
				assert.True(t, FeatureEnabled(higher, feature),
					"plan %s lost feature %s present on %s", higher, feature, lower)
			}
		}
	}
}

func TestFeatureEnabled_UnknownFeature(t *testing.T) {
	assert.False(t, FeatureEnabled(PlanPremium, Feature("unknown")))
}

func TestEnabledFeatures(t *testing.T) {
	assert.Empty(t, EnabledFeatures(PlanFree))
	assert.ElementsMatch(t,
		[]Feature{FeatureMultipleReviewProviders, FeatureManualFallbackText},
		EnabledFeatures(PlanPro))
	assert.ElementsMatch(t, AllFeatures(), EnabledFeatures(PlanPremium))
}
