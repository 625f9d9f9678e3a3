package valueobjects

import (
	"fmt"
	"strings"
)

// SiteID identifies a site, trimmed and never empty
type SiteID struct {
	value string
}

// NewSiteID creates a SiteID from a raw string, trimming surrounding whitespace.
func NewSiteID(value string) (SiteID, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return SiteID{}, fmt.Errorf("site ID cannot be empty")
	}
	return SiteID{value: trimmed}, nil
}

// Value returns the underlying identifier
func (s SiteID) Value() string {
	return s.value
}

// IsZero reports whether the SiteID is the zero value.
func (s SiteID) IsZero() bool {
	return s.value == ""
}

// String returns the string representation of the site ID
func (s SiteID) String() string {
	return s.value
}
