package valueobjects

import "fmt"

// ProviderType identifies a review data source
type ProviderType string

const (
	// ProviderJudgeMe is the external Judge.me provider (intentionally disabled)
	ProviderJudgeMe ProviderType = "judgeme"
	// ProviderManual serves manually entered reviews
	ProviderManual ProviderType = "manual"
)

// IsValid checks if the provider type is valid
func (p ProviderType) IsValid() bool {
	return p == ProviderJudgeMe || p == ProviderManual
}

// String returns the string representation of the provider type
func (p ProviderType) String() string {
	return string(p)
}

// NewProviderType creates a new ProviderType from a string
func NewProviderType(s string) (ProviderType, error) {
	p := ProviderType(s)
	if !p.IsValid() {
		return "", fmt.Errorf("invalid provider type: %s, must be 'judgeme' or 'manual'", s)
	}
	return p, nil
}
