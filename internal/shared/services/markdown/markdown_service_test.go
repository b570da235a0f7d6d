package markdown

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToHTMLSanitized(t *testing.T) {
	svc := NewService()

	t.Run("renders basic markdown", func(t *testing.T) {
		out, err := svc.ToHTMLSanitized("# Heading\n\nsome **bold** text")
		require.NoError(t, err)
		assert.Contains(t, out, "<h1")
		assert.Contains(t, out, "<strong>bold</strong>")
	})

	t.Run("strips script tags", func(t *testing.T) {
		out, err := svc.ToHTMLSanitized("hello <script>alert(1)</script> world")
		require.NoError(t, err)
		assert.NotContains(t, out, "<script>")
		assert.Contains(t, out, "hello")
	})

	t.Run("strips event handlers", func(t *testing.T) {
		out := svc.Sanitize(`<a href="https://example.com" onclick="steal()">link</a>`)
		assert.NotContains(t, out, "onclick")
		assert.Contains(t, out, "link")
	})
}
