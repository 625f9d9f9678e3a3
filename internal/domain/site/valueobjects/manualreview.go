package valueobjects

import "strings"

// ManualReview is a site-level manual rating embedded in the configuration,
// served by the Manual provider and used as the first fallback.
type ManualReview struct {
	rating StarRating
	text   string
}

// NewManualReview validates the rating and trims the optional display text.
func NewManualReview(rating float64, text string) (ManualReview, error) {
	r, err := NewStarRating(rating)
	if err != nil {
		return ManualReview{}, err
	}
	return ManualReview{rating: r, text: strings.TrimSpace(text)}, nil
}

// Rating returns the star rating
func (m ManualReview) Rating() StarRating {
	return m.rating
}

// Text returns the optional display text, empty when not set
func (m ManualReview) Text() string {
	return m.text
}
