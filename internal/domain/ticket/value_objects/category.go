package value_objects

import "fmt"

// Category classifies support requests by the kind of help sought.
type Category string

const (
	CategoryRecoverySupport Category = "recovery_support"
	CategoryMentalHealth    Category = "mental_health"
	CategoryCyberSafety     Category = "cyber_safety"
	CategoryEmergencyCrisis Category = "emergency_crisis"
	CategoryAccountPrivacy  Category = "account_privacy"
	CategoryTechnical       Category = "technical"
	CategoryResources       Category = "resources"
	CategoryCommunity       Category = "community"
	CategoryOther           Category = "other"
)

var validCategories = map[Category]bool{
	CategoryRecoverySupport: true,
	CategoryMentalHealth:    true,
	CategoryCyberSafety:     true,
	CategoryEmergencyCrisis: true,
	CategoryAccountPrivacy:  true,
	CategoryTechnical:       true,
	CategoryResources:       true,
	CategoryCommunity:       true,
	CategoryOther:           true,
}

func (c Category) String() string {
	return string(c)
}

func (c Category) IsValid() bool {
	return validCategories[c]
}

func NewCategory(s string) (Category, error) {
	c := Category(s)
	if !c.IsValid() {
		return "", fmt.Errorf("invalid ticket category: %s", s)
	}
	return c, nil
}
