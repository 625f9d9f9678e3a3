package valueobjects

import (
	"fmt"
	"math"
	"strconv"
)

// StarRating is a review rating between 0.0 and 5.0 inclusive, stored
// rounded to two decimals.
type StarRating struct {
	value float64
}

// NewStarRating validates and rounds a raw rating value. Rounding is
// half-away-from-zero to two decimal places, matching how ratings are
// displayed on the widget.
func NewStarRating(value float64) (StarRating, error) {
	if value < 0 || value > 5 {
		return StarRating{}, fmt.Errorf("star rating must be between 0.0 and 5.0, got %v", value)
	}
	return StarRating{value: roundTwoDecimals(value)}, nil
}

// roundTwoDecimals rounds half away from zero, which is what math.Round does.
func roundTwoDecimals(v float64) float64 {
	return math.Round(v*100) / 100
}

// Value returns the rounded rating
func (r StarRating) Value() float64 {
	return r.value
}

// String formats the rating with up to two decimals, no trailing zeros.
func (r StarRating) String() string {
	return strconv.FormatFloat(r.value, 'f', -1, 64)
}
