package widget

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stickybar/internal/domain/review"
	vo "stickybar/internal/domain/site/valueobjects"
)

type fakeProvider struct {
	name    string
	kind    vo.ProviderType
	handles bool
}

func (p *fakeProvider) Name() string                    { return p.name }
func (p *fakeProvider) Kind() vo.ProviderType           { return p.kind }
func (p *fakeProvider) CanHandle(_ review.Context) bool { return p.handles }
func (p *fakeProvider) Fetch(_ context.Context, _ review.Context) review.Result {
	return review.FailureResult(p.name, "unused")
}

func requestFor(t *testing.T, desired vo.ProviderType) review.Context {
	t.Helper()
	siteID, err := vo.NewSiteID("shop-123.example.com")
	require.NoError(t, err)
	return review.Context{SiteID: siteID, ProductID: "prod-42", DesiredProvider: desired}
}

func TestSelect_PrefersDesiredKind(t *testing.T) {
	manual := &fakeProvider{name: "manual", kind: vo.ProviderManual, handles: true}
	judgeme := &fakeProvider{name: "judgeme", kind: vo.ProviderJudgeMe, handles: true}
	selector := NewProviderSelector(manual, judgeme)

	picked := selector.Select(requestFor(t, vo.ProviderJudgeMe))

	require.NotNil(t, picked)
	assert.Equal(t, "judgeme", picked.Name())
}

func TestSelect_FallsBackToAnyCapableProvider(t *testing.T) {
	manual := &fakeProvider{name: "manual", kind: vo.ProviderManual, handles: true}
	judgeme := &fakeProvider{name: "judgeme", kind: vo.ProviderJudgeMe, handles: false}
	selector := NewProviderSelector(manual, judgeme)

	picked := selector.Select(requestFor(t, vo.ProviderJudgeMe))

	require.NotNil(t, picked)
	assert.Equal(t, "manual", picked.Name())
}

func TestSelect_NilWhenNoneCanHandle(t *testing.T) {
	manual := &fakeProvider{name: "manual", kind: vo.ProviderManual, handles: false}
	selector := NewProviderSelector(manual)

	assert.Nil(t, selector.Select(requestFor(t, vo.ProviderManual)))
}

func TestSelect_EmptySelector(t *testing.T) {
	selector := NewProviderSelector()

	assert.Nil(t, selector.Select(requestFor(t, vo.ProviderManual)))
	assert.Empty(t, selector.Providers())
}

func TestSelect_RegistrationOrderBreaksTies(t *testing.T) {
	first := &fakeProvider{name: "first", kind: vo.ProviderManual, handles: true}
	second := &fakeProvider{name: "second", kind: vo.ProviderManual, handles: true}
	selector := NewProviderSelector(first, second)

	picked := selector.Select(requestFor(t, vo.ProviderManual))

	require.NotNil(t, picked)
	assert.Equal(t, "first", picked.Name())
}
