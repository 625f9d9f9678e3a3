// Package providers contains the fixed set of review providers: the manual
// provider and the intentionally disabled Judge.me provider.
package providers

import (
	"context"

	"stickybar/internal/domain/review"
	vo "stickybar/internal/domain/site/valueobjects"
)

const manualProviderName = "ManualReviewProvider"

// ManualProvider serves the manual review embedded in the site
// configuration. It handles every Manual-desired context, which guarantees
// the selector always finds a provider when Manual is requested.
type ManualProvider struct{}

// NewManualProvider creates the manual provider.
func NewManualProvider() *ManualProvider {
	return &ManualProvider{}
}

func (p *ManualProvider) Name() string {
	return manualProviderName
}

func (p *ManualProvider) Kind() vo.ProviderType {
	return vo.ProviderManual
}

func (p *ManualProvider) CanHandle(rc review.Context) bool {
	return rc.DesiredProvider == vo.ProviderManual
}

func (p *ManualProvider) Fetch(_ context.Context, rc review.Context) review.Result {
	if rc.ManualReview == nil {
		return review.FailureResult(manualProviderName, "manual review is not configured")
	}
	return review.SuccessResult(rc.ManualReview.Rating(), 0, rc.ManualReview.Text(), manualProviderName)
}
