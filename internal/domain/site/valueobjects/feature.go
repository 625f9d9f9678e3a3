package valueobjects

import "fmt"

// Feature represents a plan-gated capability of the sticky bar
type Feature string

const (
	// FeatureMultipleReviewProviders allows a non-Manual primary provider
	FeatureMultipleReviewProviders Feature = "multiple_review_providers"
	// FeatureManualFallbackText allows a textual fallback when providers fail
	FeatureManualFallbackText Feature = "manual_fallback_text"
	// FeatureEmailNotificationOnFailure emails the store owner on provider failures
	FeatureEmailNotificationOnFailure Feature = "email_notification_on_failure"
	// FeatureAdvancedStyling allows custom widget colors
	FeatureAdvancedStyling Feature = "advanced_styling"
)

// featureMinimumPlan maps each feature to the lowest plan that unlocks it.
// A feature absent from this table is available to every plan.
var featureMinimumPlan = map[Feature]Plan{
	FeatureMultipleReviewProviders:    PlanPro,
	FeatureManualFallbackText:         PlanPro,
	FeatureEmailNotificationOnFailure: PlanPremium,
	FeatureAdvancedStyling:            PlanPremium,
}

// IsValid checks if the feature is valid
func (f Feature) IsValid() bool {
	switch f {
	case FeatureMultipleReviewProviders, FeatureManualFallbackText,
		FeatureEmailNotificationOnFailure, FeatureAdvancedStyling:
		return true
	}
	return false
}

// String returns the string representation of the feature
func (f Feature) String() string {
	return string(f)
}

// NewFeature creates a new Feature from a string
func NewFeature(s string) (Feature, error) {
	f := Feature(s)
	if !f.IsValid() {
		return "", fmt.Errorf("invalid feature: %s", s)
	}
	return f, nil
}

// AllFeatures returns every gated feature in a fixed order.
func AllFeatures() []Feature {
	return []Feature{
		FeatureMultipleReviewProviders,
		FeatureManualFallbackText,
		FeatureEmailNotificationOnFailure,
		FeatureAdvancedStyling,
	}
}

// FeatureEnabled reports whether the feature is unlocked for the plan. A
// feature with no minimum-plan entry is enabled for all plans.
func FeatureEnabled(plan Plan, feature Feature) bool {
	minimum, gated := featureMinimumPlan[feature]
	if !gated {
		return feature.IsValid()
	}
	return plan.AtLeast(minimum)
}

// EnabledFeatures returns the set of features unlocked for the plan.
func EnabledFeatures(plan Plan) []Feature {
	enabled := make([]Feature, 0, 4)
	for _, f := range AllFeatures() {
		if FeatureEnabled(plan, f) {
			enabled = append(enabled, f)
		}
	}
	return enabled
}
