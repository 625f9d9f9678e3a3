package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stickybar/internal/domain/review"
	"stickybar/internal/domain/site"
	vo "stickybar/internal/domain/site/valueobjects"
	"stickybar/internal/shared/logger"
)

// --- mocks ---

type mockFailureLogRepo struct {
	unnotified []*review.ProviderFailureLog
	marked     []uint
	listErr    error
}

func (m *mockFailureLogRepo) Append(_ context.Context, _ *review.ProviderFailureLog) error {
	return nil
}

func (m *mockFailureLogRepo) ListBySite(_ context.Context, _ vo.SiteID, _ int) ([]*review.ProviderFailureLog, error) {
	return nil, nil
}

func (m *mockFailureLogRepo) ListUnnotified(_ context.Context, _ int) ([]*review.ProviderFailureLog, error) {
	return m.unnotified, m.listErr
}

func (m *mockFailureLogRepo) MarkNotified(_ context.Context, id uint) error {
	m.marked = append(m.marked, id)
	return nil
}

type mockConfigRepo struct {
	configs map[string]*site.SiteConfiguration
}

func (m *mockConfigRepo) Get(_ context.Context, siteID vo.SiteID) (*site.SiteConfiguration, error) {
	return m.configs[siteID.Value()], nil
}

func (m *mockConfigRepo) Upsert(_ context.Context, _ *site.SiteConfiguration) error { return nil }

type spyNotifier struct {
	calls []review.FailureNotification
	err   error
}

func (s *spyNotifier) NotifyFailure(_ context.Context, n review.FailureNotification) error {
	s.calls = append(s.calls, n)
	return s.err
}

// --- helpers ---

func pendingEntry(t *testing.T, id uint, rawSiteID string) *review.ProviderFailureLog {
	t.Helper()
	siteID, err := vo.NewSiteID(rawSiteID)
	require.NoError(t, err)
	entry, err := review.ReconstructProviderFailureLog(
		id, siteID, "prod-42", vo.ProviderManual, "upstream unavailable", false, time.Now())
	require.NoError(t, err)
	return entry
}

func notifyingConfig(t *testing.T, rawSiteID string, plan vo.Plan) *site.SiteConfiguration {
	t.Helper()
	siteID, err := vo.NewSiteID(rawSiteID)
	require.NoError(t, err)
	config, err := site.NewSiteConfiguration(siteID)
	require.NoError(t, err)
	require.NoError(t, config.UpdatePlan(plan))
	fc, err := vo.NewFallbackConfig(false, nil, 0, true, "owner@example.com")
	require.NoError(t, err)
	config.UpdateFallbackConfig(fc)
	return config
}

func newSweeper(failureLogRepo review.FailureLogRepository, configRepo site.Repository, notifier review.Notifier) *NotificationSweeper {
	return NewNotificationSweeper(failureLogRepo, configRepo, notifier, time.Minute, 10, logger.NewLogger())
}

// =====================================================================
// TestSweep_*
// =====================================================================

func TestSweep_NotifiesAndMarksEntitledSites(t *testing.T) {
	const siteA = "premium.example.com"

	failureLogRepo := &mockFailureLogRepo{unnotified: []*review.ProviderFailureLog{pendingEntry(t, 1, siteA)}}
	configRepo := &mockConfigRepo{configs: map[string]*site.SiteConfiguration{
		siteA: notifyingConfig(t, siteA, vo.PlanPremium),
	}}
	notifier := &spyNotifier{}

	newSweeper(failureLogRepo, configRepo, notifier).Sweep(context.Background())

	require.Len(t, notifier.calls, 1)
	assert.Equal(t, "owner@example.com", notifier.calls[0].RecipientEmail)
	assert.Equal(t, siteA, notifier.calls[0].SiteID)
	assert.Equal(t, []uint{1}, failureLogRepo.marked)
}

func TestSweep_MarksWithoutNotifyingWhenNotEntitled(t *testing.T) {
	const siteA = "free.example.com"

	failureLogRepo := &mockFailureLogRepo{unnotified: []*review.ProviderFailureLog{pendingEntry(t, 3, siteA)}}
	configRepo := &mockConfigRepo{configs: map[string]*site.SiteConfiguration{
		siteA: notifyingConfig(t, siteA, vo.PlanFree),
	}}
	notifier := &spyNotifier{}

	newSweeper(failureLogRepo, configRepo, notifier).Sweep(context.Background())

	assert.Empty(t, notifier.calls)
	assert.Equal(t, []uint{3}, failureLogRepo.marked, "ineligible entries are retired from the queue")
}

func TestSweep_MarksWhenSiteNoLongerConfigured(t *testing.T) {
	failureLogRepo := &mockFailureLogRepo{unnotified: []*review.ProviderFailureLog{pendingEntry(t, 5, "gone.example.com")}}
	configRepo := &mockConfigRepo{configs: map[string]*site.SiteConfiguration{}}
	notifier := &spyNotifier{}

	newSweeper(failureLogRepo, configRepo, notifier).Sweep(context.Background())

	assert.Empty(t, notifier.calls)
	assert.Equal(t, []uint{5}, failureLogRepo.marked)
}

func TestSweep_KeepsEntryWhenDeliveryFails(t *testing.T) {
	const siteA = "premium.example.com"

	failureLogRepo := &mockFailureLogRepo{unnotified: []*review.ProviderFailureLog{pendingEntry(t, 7, siteA)}}
	configRepo := &mockConfigRepo{configs: map[string]*site.SiteConfiguration{
		siteA: notifyingConfig(t, siteA, vo.PlanPremium),
	}}
	notifier := &spyNotifier{err: errors.New("smtp timeout")}

	newSweeper(failureLogRepo, configRepo, notifier).Sweep(context.Background())

	require.Len(t, notifier.calls, 1)
	assert.Empty(t, failureLogRepo.marked, "failed deliveries stay queued for the next sweep")
}

func TestSweep_ListErrorIsSwallowed(t *testing.T) {
	failureLogRepo := &mockFailureLogRepo{listErr: errors.New("connection refused")}
	notifier := &spyNotifier{}

	newSweeper(failureLogRepo, &mockConfigRepo{}, notifier).Sweep(context.Background())

	assert.Empty(t, notifier.calls)
}
