package valueobjects

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// =====================================================================
// TestNewStarRating_*
// =====================================================================

func TestNewStarRating_ValidInput(t *testing.T) {
	rating, err := NewStarRating(4.5)

	require.NoError(t, err)
	assert.Equal(t, 4.5, rating.Value())
}

func TestNewStarRating_Bounds(t *testing.T) {
	tests := []struct {
		name    string
		value   float64
		wantErr bool
	}{
		{"zero", 0, false},
		{"five", 5, false},
		{"just below zero", -0.01, true},
		{"just above five", 5.01, true},
		{"negative", -3, true},
		{"far above", 10, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewStarRating(tc.value)
			if tc.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestNewStarRating_RoundsToTwoDecimals(t *testing.T) {
	tests := []struct {
		name  string
		value float64
		want  float64
	}{
		{"no rounding needed", 4.25, 4.25},
		{"rounds down", 4.254, 4.25},
		{"rounds half away from zero", 4.125, 4.13},
		{"rounds up", 4.999, 5.0},
		{"long tail", 3.333333, 3.33},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rating, err := NewStarRating(tc.value)
			require.NoError(t, err)
			assert.InDelta(t, tc.want, rating.Value(), 1e-9)
		})
	}
}

func TestStarRating_String(t *testing.T) {
	rating, err := NewStarRating(4.5)
	require.NoError(t, err)

	assert.Equal(t, "4.5", rating.String())
}
