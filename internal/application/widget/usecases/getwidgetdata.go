package usecases

import (
	"context"
	"fmt"

	"stickybar/internal/application/widget"
	"stickybar/internal/application/widget/dto"
	"stickybar/internal/domain/review"
	"stickybar/internal/domain/site"
	vo "stickybar/internal/domain/site/valueobjects"
	"stickybar/internal/shared/errors"
	"stickybar/internal/shared/logger"
)

// Provider names reported on results that did not come from a primary
// provider attempt.
const (
	noProviderName     = "NoProvider"
	manualFallbackName = "ManualFallback"
	fallbackTextName   = "FallbackText"
	manualProviderName = "ManualReviewProvider"
)

// GetWidgetDataUseCase resolves the rating and text the sticky bar should
// render for a (site, product) pair. It walks the configured provider, then
// the ordered fallback chain, applying plan entitlements along the way.
type GetWidgetDataUseCase struct {
	configRepo       site.Repository
	manualReviewRepo review.ManualReviewRepository
	failureLogRepo   review.FailureLogRepository
	notifier         review.Notifier
	selector         *widget.ProviderSelector
	logger           logger.Interface
}

// NewGetWidgetDataUseCase wires the resolution engine.
func NewGetWidgetDataUseCase(
	configRepo site.Repository,
	manualReviewRepo review.ManualReviewRepository,
	failureLogRepo review.FailureLogRepository,
	notifier review.Notifier,
	selector *widget.ProviderSelector,
	log logger.Interface,
) *GetWidgetDataUseCase {
	return &GetWidgetDataUseCase{
		configRepo:       configRepo,
		manualReviewRepo: manualReviewRepo,
		failureLogRepo:   failureLogRepo,
		notifier:         notifier,
		selector:         selector,
		logger:           log,
	}
}

// Execute runs the resolution state machine for one widget request.
func (uc *GetWidgetDataUseCase) Execute(ctx context.Context, rawSiteID, productID string) (*dto.WidgetData, error) {
	siteID, err := vo.NewSiteID(rawSiteID)
	if err != nil {
		return nil, errors.NewValidationError("Site ID is required")
	}

	config, err := uc.configRepo.Get(ctx, siteID)
	if err != nil {
		uc.logger.Errorw("failed to load site configuration",
			"error", err,
			"site_id", siteID.Value(),
		)
		return nil, fmt.Errorf("failed to load site configuration: %w", err)
	}

	if config == nil {
		uc.logger.Debugw("site not configured", "site_id", siteID.Value())
		return suppressed("site not configured", false, vo.DefaultStyle()), nil
	}

	if !config.Enabled() {
		uc.logger.Debugw("widget disabled", "site_id", siteID.Value())
		return suppressed("widget is disabled", false, config.ResolvedStyle()), nil
	}

	// Per-request provider forcing; the stored configuration is untouched.
	desired := config.PreferredProvider()
	if desired != vo.ProviderManual && !vo.FeatureEnabled(config.Plan(), vo.FeatureMultipleReviewProviders) {
		uc.logger.Debugw("multiple providers not entitled, forcing manual",
			"site_id", siteID.Value(),
			"requested_provider", desired.String(),
		)
		desired = vo.ProviderManual
	}

	rc := review.Context{
		SiteID:          siteID,
		ProductID:       productID,
		DesiredProvider: desired,
		ManualReview:    config.ManualReview(),
		Plan:            config.Plan(),
	}

	result := uc.attemptProvider(ctx, rc)
	if result.Success {
		return rendered(result, config), nil
	}

	uc.logger.Infow("primary provider failed, walking fallback chain",
		"site_id", siteID.Value(),
		"product_id", productID,
		"provider", result.ProviderName,
		"reason", result.FailureReason,
	)

	uc.appendFailureLog(ctx, config, productID, desired, result.FailureReason)
	uc.notifyOwner(ctx, config, productID, result.ProviderName, result.FailureReason)

	if fallback, ok := uc.resolveFallback(ctx, config, productID); ok {
		return rendered(fallback, config), nil
	}

	data := suppressed(result.FailureReason, true, config.ResolvedStyle())
	return data, nil
}

// attemptProvider selects and executes the provider, converting any panic
// into a tagged failure so faults never escape the engine.
func (uc *GetWidgetDataUseCase) attemptProvider(ctx context.Context, rc review.Context) (result review.Result) {
	provider := uc.selector.Select(rc)
	if provider == nil {
		return review.FailureResult(noProviderName, "no provider could handle the request")
	}

	defer func() {
		if r := recover(); r != nil {
			uc.logger.Errorw("provider panicked",
				"provider", provider.Name(),
				"panic", fmt.Sprintf("%v", r),
			)
			result = review.FailureResult(provider.Name(), fmt.Sprintf("%v", r))
		}
	}()

	return provider.Fetch(ctx, rc)
}

// resolveFallback walks the fallback chain in order, first match wins:
// per-product manual review, embedded manual review, explicit fallback
// rating, entitled fallback text.
func (uc *GetWidgetDataUseCase) resolveFallback(ctx context.Context, config *site.SiteConfiguration, productID string) (review.Result, bool) {
	if productID != "" {
		stored, err := uc.manualReviewRepo.Get(ctx, config.SiteID(), productID)
		if err != nil {
			uc.logger.Warnw("failed to load manual review for fallback",
				"error", err,
				"site_id", config.SiteID().Value(),
				"product_id", productID,
			)
		} else if stored != nil {
			return review.FallbackResult(stored.Rating(), stored.ReviewCount(), stored.DisplayText(), manualProviderName), true
		}
	}

	if embedded := config.ManualReview(); embedded != nil {
		return review.FallbackResult(embedded.Rating(), 0, embedded.Text(), manualProviderName), true
	}

	fc := config.FallbackConfig()
	if fc.HasManualRating() {
		text := config.FallbackText()
		if text == "" {
			text = "Based on customer feedback"
		}
		return review.FallbackResult(*fc.ManualRating(), fc.ManualReviewCount(), text, manualFallbackName), true
	}

	if config.FallbackText() != "" && vo.FeatureEnabled(config.Plan(), vo.FeatureManualFallbackText) {
		return review.TextFallbackResult(config.FallbackText(), fallbackTextName), true
	}

	return review.Result{}, false
}

// appendFailureLog records the failure for operational visibility. The log
// sink is fire-and-forget: a write error never affects the response.
func (uc *GetWidgetDataUseCase) appendFailureLog(ctx context.Context, config *site.SiteConfiguration, productID string, provider vo.ProviderType, reason string) {
	entry, err := review.NewProviderFailureLog(config.SiteID(), productID, provider, reason)
	if err != nil {
		uc.logger.Warnw("failed to build failure log entry", "error", err)
		return
	}
	if err := uc.failureLogRepo.Append(ctx, entry); err != nil {
		uc.logger.Warnw("failed to append provider failure log",
			"error", err,
			"site_id", config.SiteID().Value(),
		)
	}
}

// notifyOwner emails the store owner about the failure when notifications
// are configured and the plan is entitled. Runs once per failed attempt,
// independent of whether a fallback was found; best effort.
func (uc *GetWidgetDataUseCase) notifyOwner(ctx context.Context, config *site.SiteConfiguration, productID, providerName, reason string) {
	fc := config.FallbackConfig()
	if !fc.NotifyOnFailure() || fc.NotificationEmail() == "" {
		return
	}
	if !vo.FeatureEnabled(config.Plan(), vo.FeatureEmailNotificationOnFailure) {
		return
	}

	err := uc.notifier.NotifyFailure(ctx, review.FailureNotification{
		RecipientEmail: fc.NotificationEmail(),
		SiteID:         config.SiteID().Value(),
		ProductID:      productID,
		ProviderName:   providerName,
		ErrorMessage:   reason,
	})
	if err != nil {
		uc.logger.Warnw("failure notification could not be delivered",
			"error", err,
			"site_id", config.SiteID().Value(),
			"recipient", fc.NotificationEmail(),
		)
	}
}

func rendered(result review.Result, config *site.SiteConfiguration) *dto.WidgetData {
	style := config.ResolvedStyle()
	data := &dto.WidgetData{
		ShouldRender:       true,
		IsEnabled:          true,
		ReviewCount:        result.ReviewCount,
		Text:               result.Text,
		ProviderName:       result.ProviderName,
		IsFallback:         result.IsFallback,
		BackgroundColorHex: style.BackgroundColorHex,
		TextColorHex:       style.TextColorHex,
		AccentColorHex:     style.AccentColorHex,
	}
	if result.Rating != nil {
		value := result.Rating.Value()
		data.Rating = &value
	}
	return data
}

func suppressed(reason string, enabled bool, style vo.StickyStyle) *dto.WidgetData {
	return &dto.WidgetData{
		ShouldRender:       false,
		IsEnabled:          enabled,
		BackgroundColorHex: style.BackgroundColorHex,
		TextColorHex:       style.TextColorHex,
		AccentColorHex:     style.AccentColorHex,
		FailureReason:      reason,
	}
}
