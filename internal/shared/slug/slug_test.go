package slug

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMake(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"simple title", "Hello World", "hello-world"},
		{"punctuation stripped", "Hello, World! 2026", "hello-world-2026"},
		{"surrounding whitespace", "  Trimmed Title  ", "trimmed-title"},
		{"consecutive separators", "a -- b   c", "a-b-c"},
		{"accents folded", "Café Récovery", "cafe-recovery"},
		{"already a slug", "already-a-slug", "already-a-slug"},
		{"empty input", "", ""},
		{"only punctuation", "!!!", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Make(tt.input))
		})
	}
}

func TestIsValid(t *testing.T) {
	assert.True(t, IsValid("my-recovery-story"))
	assert.True(t, IsValid("week-12"))

	assert.False(t, IsValid(""))
	assert.False(t, IsValid("Has Spaces"))
	assert.False(t, IsValid("UPPER-case"))
	assert.False(t, IsValid("trailing-"))
}
