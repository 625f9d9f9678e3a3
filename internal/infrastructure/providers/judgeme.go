package providers

import (
	"context"

	"stickybar/internal/domain/review"
	vo "stickybar/internal/domain/site/valueobjects"
)

const judgeMeProviderName = "JudgeMeReviewProvider"

// JudgeMeProvider is a disabled sentinel: it declares itself capable of
// handling Judge.me contexts but always fails deterministically, without any
// network call. It exists to exercise the fallback chain and must stay that
// way; do not add a real HTTP client here.
type JudgeMeProvider struct{}

// NewJudgeMeProvider creates the disabled Judge.me provider.
func NewJudgeMeProvider() *JudgeMeProvider {
	return &JudgeMeProvider{}
}

func (p *JudgeMeProvider) Name() string {
	return judgeMeProviderName
}

func (p *JudgeMeProvider) Kind() vo.ProviderType {
	return vo.ProviderJudgeMe
}

func (p *JudgeMeProvider) CanHandle(rc review.Context) bool {
	return rc.DesiredProvider == vo.ProviderJudgeMe
}

func (p *JudgeMeProvider) Fetch(_ context.Context, _ review.Context) review.Result {
	return review.FailureResult(judgeMeProviderName, "judge.me integration is disabled; configure a manual review or fallback behavior")
}
