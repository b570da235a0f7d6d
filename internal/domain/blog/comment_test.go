package blog

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewComment(t *testing.T) {
	t.Run("top-level comment", func(t *testing.T) {
		c, err := NewComment(1, 10, "nice post", nil)
		require.NoError(t, err)
		assert.True(t, c.Approved())
		assert.False(t, c.IsReply())
	})

	t.Run("reply carries parent", func(t *testing.T) {
		parentID := uint(5)
		c, err := NewComment(1, 10, "agreed", &parentID)
		require.NoError(t, err)
		assert.True(t, c.IsReply())
	})

	t.Run("rejects empty content", func(t *testing.T) {
		_, err := NewComment(1, 10, "", nil)
		assert.Error(t, err)
	})

	t.Run("rejects oversized content", func(t *testing.T) {
		_, err := NewComment(1, 10, strings.Repeat("x", 2001), nil)
		assert.Error(t, err)
	})
}

func TestComment_CanParent(t *testing.T) {
	reconstruct := func(postID uint, parentID *uint, approved bool) *Comment {
		c, err := ReconstructComment(9, postID, 10, "content", parentID, approved, time.Now())
		require.NoError(t, err)
		return c
	}

	t.Run("approved top-level comment of same post", func(t *testing.T) {
		assert.True(t, reconstruct(1, nil, true).CanParent(1))
	})

	t.Run("comment on another post cannot parent", func(t *testing.T) {
		assert.False(t, reconstruct(2, nil, true).CanParent(1))
	})

	t.Run("a reply cannot parent", func(t *testing.T) {
		parentID := uint(3)
		assert.False(t, reconstruct(1, &parentID, true).CanParent(1))
	})

	t.Run("unapproved comment cannot parent", func(t *testing.T) {
		assert.False(t, reconstruct(1, nil, false).CanParent(1))
	})
}
