package usecases

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stickybar/internal/domain/review"
	vo "stickybar/internal/domain/site/valueobjects"
	apperrors "stickybar/internal/shared/errors"
	"stickybar/internal/shared/logger"
)

// --- mocks ---

type mockManualReviewRepo struct {
	stored  *review.ManualReview
	getErr  error
	created *review.ManualReview
	updated *review.ManualReview
}

func (m *mockManualReviewRepo) Get(_ context.Context, _ vo.SiteID, _ string) (*review.ManualReview, error) {
	return m.stored, m.getErr
}

func (m *mockManualReviewRepo) Create(_ context.Context, r *review.ManualReview) error {
	m.created = r
	return nil
}

func (m *mockManualReviewRepo) Update(_ context.Context, r *review.ManualReview) error {
	m.updated = r
	return nil
}

func (m *mockManualReviewRepo) Delete(_ context.Context, _ vo.SiteID, _ string) error {
	if m.stored == nil {
		return apperrors.NewNotFoundError("manual review not found")
	}
	m.stored = nil
	return nil
}

// --- helpers ---

func testNow() time.Time {
	return time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
}

func validCommand() SaveManualReviewCommand {
	return SaveManualReviewCommand{
		SiteID:      "shop-123.example.com",
		ProductID:   "prod-42",
		Rating:      4.5,
		ReviewCount: 10,
		DisplayText: "Great product",
	}
}

func storedReview(t *testing.T) *review.ManualReview {
	t.Helper()
	siteID, err := vo.NewSiteID("shop-123.example.com")
	require.NoError(t, err)
	rating, err := vo.NewStarRating(3.0)
	require.NoError(t, err)
	r, err := review.ReconstructManualReview(7, siteID, "prod-42", rating, 2, "old", testNow(), testNow())
	require.NoError(t, err)
	return r
}

// =====================================================================
// TestSaveManualReview_*
// =====================================================================

func TestSaveManualReview_CreatesWhenAbsent(t *testing.T) {
	repo := &mockManualReviewRepo{}
	uc := NewSaveManualReviewUseCase(repo, logger.NewLogger())

	result, err := uc.Execute(context.Background(), validCommand())

	require.NoError(t, err)
	assert.True(t, result.IsNew)
	require.NotNil(t, repo.created)
	assert.Equal(t, 4.5, result.Review.Rating)
	assert.Equal(t, 10, result.Review.ReviewCount)
	assert.Equal(t, "Great product", result.Review.DisplayText)
}

func TestSaveManualReview_UpdatesWhenPresent(t *testing.T) {
	repo := &mockManualReviewRepo{stored: storedReview(t)}
	uc := NewSaveManualReviewUseCase(repo, logger.NewLogger())

	result, err := uc.Execute(context.Background(), validCommand())

	require.NoError(t, err)
	assert.False(t, result.IsNew)
	require.NotNil(t, repo.updated)
	assert.Nil(t, repo.created)
	assert.Equal(t, 4.5, result.Review.Rating)
}

func TestSaveManualReview_Validation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*SaveManualReviewCommand)
	}{
		{"empty site", func(c *SaveManualReviewCommand) { c.SiteID = " " }},
		{"empty product", func(c *SaveManualReviewCommand) { c.ProductID = "" }},
		{"rating too low", func(c *SaveManualReviewCommand) { c.Rating = -0.5 }},
		{"rating too high", func(c *SaveManualReviewCommand) { c.Rating = 5.5 }},
		{"negative count", func(c *SaveManualReviewCommand) { c.ReviewCount = -1 }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			repo := &mockManualReviewRepo{}
			uc := NewSaveManualReviewUseCase(repo, logger.NewLogger())

			cmd := validCommand()
			tc.mutate(&cmd)

			_, err := uc.Execute(context.Background(), cmd)

			require.Error(t, err)
			assert.True(t, apperrors.IsValidation(err))
			assert.Nil(t, repo.created, "validation failures must not persist anything")
			assert.Nil(t, repo.updated)
		})
	}
}

func TestSaveManualReview_RepoError(t *testing.T) {
	repo := &mockManualReviewRepo{getErr: errors.New("connection refused")}
	uc := NewSaveManualReviewUseCase(repo, logger.NewLogger())

	_, err := uc.Execute(context.Background(), validCommand())

	assert.Error(t, err)
}

// =====================================================================
// TestGetManualReview_*
// =====================================================================

func TestGetManualReview_Found(t *testing.T) {
	repo := &mockManualReviewRepo{stored: storedReview(t)}
	uc := NewGetManualReviewUseCase(repo, logger.NewLogger())

	result, err := uc.Execute(context.Background(), "shop-123.example.com", "prod-42")

	require.NoError(t, err)
	assert.Equal(t, 3.0, result.Rating)
	assert.Equal(t, "prod-42", result.ProductID)
}

func TestGetManualReview_NotFound(t *testing.T) {
	repo := &mockManualReviewRepo{}
	uc := NewGetManualReviewUseCase(repo, logger.NewLogger())

	_, err := uc.Execute(context.Background(), "shop-123.example.com", "prod-42")

	require.Error(t, err)
	assert.True(t, apperrors.IsNotFound(err))
}

// =====================================================================
// TestDeleteManualReview_*
// =====================================================================

func TestDeleteManualReview_Found(t *testing.T) {
	repo := &mockManualReviewRepo{stored: storedReview(t)}
	uc := NewDeleteManualReviewUseCase(repo, logger.NewLogger())

	err := uc.Execute(context.Background(), "shop-123.example.com", "prod-42")

	require.NoError(t, err)
	assert.Nil(t, repo.stored)
}

func TestDeleteManualReview_NotFound(t *testing.T) {
	repo := &mockManualReviewRepo{}
	uc := NewDeleteManualReviewUseCase(repo, logger.NewLogger())

	err := uc.Execute(context.Background(), "shop-123.example.com", "prod-42")

	require.Error(t, err)
	assert.True(t, apperrors.IsNotFound(err))
}
