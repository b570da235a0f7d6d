package value_objects

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEmail(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{"valid email", "user@example.com", "user@example.com", false},
		{"normalized to lowercase", "User@Example.COM", "user@example.com", false},
		{"surrounding whitespace trimmed", "  user@example.com ", "user@example.com", false},
		{"plus addressing", "user+tag@example.com", "user+tag@example.com", false},
		{"empty", "", "", true},
		{"missing at sign", "userexample.com", "", true},
		{"missing domain", "user@", "", true},
		{"missing tld", "user@example", "", true},
		{"too long", strings.Repeat("a", 250) + "@example.com", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			email, err := NewEmail(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, email.String())
		})
	}
}

func TestEmail_Equals(t *testing.T) {
	a, err := NewEmail("user@example.com")
	require.NoError(t, err)
	b, err := NewEmail("USER@example.com")
	require.NoError(t, err)

	assert.True(t, a.Equals(b))
	assert.False(t, a.Equals(nil))
}
