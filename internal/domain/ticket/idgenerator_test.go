package ticket

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIDGenerator_Generate(t *testing.T) {
	gen := NewIDGenerator()
	pattern := regexp.MustCompile(`^TK\d{8}$`)

	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id, err := gen.Generate()
		require.NoError(t, err)
		assert.Regexp(t, pattern, id)
		seen[id] = true
	}

	// 100 draws from 10^8 values colliding down to a handful would
	// indicate a broken source.
	assert.Greater(t, len(seen), 90)
}
