package providers

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stickybar/internal/domain/review"
	vo "stickybar/internal/domain/site/valueobjects"
)

func contextWith(t *testing.T, desired vo.ProviderType, manual *vo.ManualReview) review.Context {
	t.Helper()
	siteID, err := vo.NewSiteID("shop-123.example.com")
	require.NoError(t, err)
	return review.Context{
		SiteID:          siteID,
		ProductID:       "prod-42",
		DesiredProvider: desired,
		ManualReview:    manual,
	}
}

// =====================================================================
// TestManualProvider_*
// =====================================================================

func TestManualProvider_SuccessWithConfiguredReview(t *testing.T) {
	mr, err := vo.NewManualReview(4.5, "Customers love it")
	require.NoError(t, err)

	p := NewManualProvider()
	rc := contextWith(t, vo.ProviderManual, &mr)

	require.True(t, p.CanHandle(rc))
	result := p.Fetch(context.Background(), rc)

	assert.True(t, result.Success)
	require.NotNil(t, result.Rating)
	assert.Equal(t, 4.5, result.Rating.Value())
	assert.Equal(t, "Customers love it", result.Text)
	assert.Equal(t, "ManualReviewProvider", result.ProviderName)
	assert.False(t, result.IsFallback)
}

func TestManualProvider_FailsWithoutConfiguredReview(t *testing.T) {
	p := NewManualProvider()
	rc := contextWith(t, vo.ProviderManual, nil)

	result := p.Fetch(context.Background(), rc)

	assert.False(t, result.Success)
	assert.Equal(t, "ManualReviewProvider", result.ProviderName)
	assert.Contains(t, result.FailureReason, "not configured")
}

func TestManualProvider_OnlyHandlesManualRequests(t *testing.T) {
	p := NewManualProvider()

	assert.True(t, p.CanHandle(contextWith(t, vo.ProviderManual, nil)))
	assert.False(t, p.CanHandle(contextWith(t, vo.ProviderJudgeMe, nil)))
}

// =====================================================================
// TestJudgeMeProvider_*
// =====================================================================

func TestJudgeMeProvider_AlwaysFails(t *testing.T) {
	p := NewJudgeMeProvider()
	rc := contextWith(t, vo.ProviderJudgeMe, nil)

	require.True(t, p.CanHandle(rc))
	result := p.Fetch(context.Background(), rc)

	assert.False(t, result.Success)
	assert.Equal(t, "JudgeMeReviewProvider", result.ProviderName)
	assert.NotEmpty(t, result.FailureReason)
}

func TestJudgeMeProvider_OnlyHandlesJudgeMeRequests(t *testing.T) {
	p := NewJudgeMeProvider()

	assert.False(t, p.CanHandle(contextWith(t, vo.ProviderManual, nil)))
}
