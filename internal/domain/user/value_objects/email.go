package value_objects

import (
	"fmt"
	"regexp"
	"strings"
)

// emailRegex is a pragmatic format check; deliverability is not our problem.
var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// Email represents a validated, normalized email address. Email is the
// identity key for users and must be unique.
type Email struct {
	value string
}

// NewEmail creates an Email value object with validation and normalization.
func NewEmail(value string) (*Email, error) {
	normalized := strings.ToLower(strings.TrimSpace(value))

	if normalized == "" {
		return nil, fmt.Errorf("email cannot be empty")
	}
	if len(normalized) > 255 {
		return nil, fmt.Errorf("email cannot exceed 255 characters")
	}
	if !emailRegex.MatchString(normalized) {
		return nil, fmt.Errorf("invalid email format: %s", value)
	}

	return &Email{value: normalized}, nil
}

func (e *Email) String() string {
	return e.value
}

func (e *Email) Equals(other *Email) bool {
	if other == nil {
		return false
	}
	return e.value == other.value
}
