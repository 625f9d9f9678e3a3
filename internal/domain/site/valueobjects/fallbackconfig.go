package valueobjects

import (
	"fmt"
	"strings"
)

// FallbackConfig controls what happens after the primary provider fails:
// an explicit fallback rating and the failure notification settings.
type FallbackConfig struct {
	useManualRatingFallback bool
	manualRating            *StarRating
	manualReviewCount       int
	notifyOnFailure         bool
	notificationEmail       string
}

// NewFallbackConfig validates and builds a fallback configuration. The
// manualRating pointer may be nil when no explicit fallback rating is set.
func NewFallbackConfig(
	useManualRatingFallback bool,
	manualRating *float64,
	manualReviewCount int,
	notifyOnFailure bool,
	notificationEmail string,
) (FallbackConfig, error) {
	if manualReviewCount < 0 {
		return FallbackConfig{}, fmt.Errorf("manual review count cannot be negative")
	}

	var rating *StarRating
	if manualRating != nil {
		r, err := NewStarRating(*manualRating)
		if err != nil {
			return FallbackConfig{}, err
		}
		rating = &r
	}

	return FallbackConfig{
		useManualRatingFallback: useManualRatingFallback,
		manualRating:            rating,
		manualReviewCount:       manualReviewCount,
		notifyOnFailure:         notifyOnFailure,
		notificationEmail:       strings.TrimSpace(notificationEmail),
	}, nil
}

// DefaultFallbackConfig returns a fallback configuration with everything off.
func DefaultFallbackConfig() FallbackConfig {
	return FallbackConfig{}
}

// UseManualRatingFallback reports whether the explicit fallback rating is active
func (f FallbackConfig) UseManualRatingFallback() bool {
	return f.useManualRatingFallback
}

// ManualRating returns the explicit fallback rating, nil when unset
func (f FallbackConfig) ManualRating() *StarRating {
	return f.manualRating
}

// ManualReviewCount returns the advertised review count for the fallback rating
func (f FallbackConfig) ManualReviewCount() int {
	return f.manualReviewCount
}

// NotifyOnFailure reports whether the store owner wants failure emails
func (f FallbackConfig) NotifyOnFailure() bool {
	return f.notifyOnFailure
}

// NotificationEmail returns the failure notification recipient, empty when unset
func (f FallbackConfig) NotificationEmail() string {
	return f.notificationEmail
}

// HasManualRating reports whether the explicit fallback rating can be served.
func (f FallbackConfig) HasManualRating() bool {
	return f.useManualRatingFallback && f.manualRating != nil
}
