// Package widget hosts the review-resolution engine behind the sticky bar:
// provider selection, the fallback chain, and widget-facing DTOs.
package widget

import (
	"stickybar/internal/domain/review"
)

// ProviderSelector picks the provider for a request context. Registration
// order is fixed and acts as the tie-break when the desired provider cannot
// handle the request.
type ProviderSelector struct {
	providers []review.Provider
}

// NewProviderSelector creates a selector over a fixed provider list.
func NewProviderSelector(providers ...review.Provider) *ProviderSelector {
	return &ProviderSelector{providers: providers}
}

// Select returns the provider for the context, or nil when none can handle
// it. A nil return is a valid outcome, not an error; the engine converts it
// into a provider failure.
func (s *ProviderSelector) Select(rc review.Context) review.Provider {
	for _, p := range s.providers {
		if p.Kind() == rc.DesiredProvider && p.CanHandle(rc) {
			return p
		}
	}
	for _, p := range s.providers {
		if p.CanHandle(rc) {
			return p
		}
	}
	return nil
}

// Providers returns the registered providers in selection order.
func (s *ProviderSelector) Providers() []review.Provider {
	return s.providers
}
