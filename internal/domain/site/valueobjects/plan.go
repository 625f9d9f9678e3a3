package valueobjects

import "fmt"

// Plan represents the subscription tier of a site
type Plan string

const (
	// PlanFree is the default tier with no paid features
	PlanFree Plan = "free"
	// PlanPro unlocks multiple providers and manual fallback text
	PlanPro Plan = "pro"
	// PlanPremium unlocks every feature
	PlanPremium Plan = "premium"
)

// planRank orders plans Free < Pro < Premium for entitlement checks.
var planRank = map[Plan]int{
	PlanFree:    0,
	PlanPro:     1,
	PlanPremium: 2,
}

// IsValid checks if the plan is valid
func (p Plan) IsValid() bool {
	_, ok := planRank[p]
	return ok
}

// String returns the string representation of the plan
func (p Plan) String() string {
	return string(p)
}

// AtLeast reports whether p is greater than or equal to other under the
// Free < Pro < Premium total order.
func (p Plan) AtLeast(other Plan) bool {
	return planRank[p] >= planRank[other]
}

// NewPlan creates a new Plan from a string
func NewPlan(s string) (Plan, error) {
	p := Plan(s)
	if !p.IsValid() {
		return "", fmt.Errorf("invalid plan: %s, must be 'free', 'pro', or 'premium'", s)
	}
	return p, nil
}

// AllPlans returns every plan ordered Free to Premium.
func AllPlans() []Plan {
	return []Plan{PlanFree, PlanPro, PlanPremium}
}
