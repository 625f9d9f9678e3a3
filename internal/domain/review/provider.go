package review

import (
	"context"

	vo "stickybar/internal/domain/site/valueobjects"
)

// Context carries the resolution input for a single widget request.
type Context struct {
	SiteID          vo.SiteID
	ProductID       string
	DesiredProvider vo.ProviderType
	ManualReview    *vo.ManualReview
	Plan            vo.Plan
}

// Result is the outcome of one provider attempt or fallback substitution.
// Provider execution never returns an error to the caller; failures are
// tagged results so the engine can walk the fallback chain.
type Result struct {
	Success       bool
	Rating        *vo.StarRating
	ReviewCount   int
	Text          string
	ProviderName  string
	IsFallback    bool
	FailureReason string
}

// SuccessResult builds a successful primary-provider result.
func SuccessResult(rating vo.StarRating, reviewCount int, text, providerName string) Result {
	return Result{
		Success:      true,
		Rating:       &rating,
		ReviewCount:  reviewCount,
		Text:         text,
		ProviderName: providerName,
	}
}

// FallbackResult builds a successful result produced by the fallback chain.
func FallbackResult(rating vo.StarRating, reviewCount int, text, providerName string) Result {
	r := SuccessResult(rating, reviewCount, text, providerName)
	r.IsFallback = true
	return r
}

// TextFallbackResult builds a textual-only fallback result with no rating.
func TextFallbackResult(text, providerName string) Result {
	return Result{
		Success:      true,
		Text:         text,
		ProviderName: providerName,
		IsFallback:   true,
	}
}

// FailureResult builds a tagged failure carrying the provider name and reason.
func FailureResult(providerName, reason string) Result {
	return Result{
		Success:       false,
		ProviderName:  providerName,
		FailureReason: reason,
	}
}

// Provider is a pluggable source of review data. Implementations report
// whether they can serve a context and never panic out of Fetch; unexpected
// faults are converted to failure results by the engine.
type Provider interface {
	Name() string
	Kind() vo.ProviderType
	CanHandle(rc Context) bool
	Fetch(ctx context.Context, rc Context) Result
}
