package blog

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vo "novita/internal/domain/blog/value_objects"
)

func newTestPost(t *testing.T, status vo.PostStatus) *Post {
	t.Helper()
	p, err := NewPost("Hello World", "hello-world", 10, 1, "a short excerpt", "some content here", status)
	require.NoError(t, err)
	return p
}

func TestNewPost(t *testing.T) {
	t.Run("defaults to draft", func(t *testing.T) {
		p, err := NewPost("Hello", "hello", 1, 1, "", "content", "")
		require.NoError(t, err)
		assert.Equal(t, vo.StatusDraft, p.Status())
		assert.Nil(t, p.PublishedAt())
	})

	t.Run("publishing at creation stamps publishedAt", func(t *testing.T) {
		p := newTestPost(t, vo.StatusPublished)
		require.NotNil(t, p.PublishedAt())
	})

	t.Run("validation failures", func(t *testing.T) {
		cases := []struct {
			name  string
			title string
			slug  string
			body  string
		}{
			{"empty title", "", "slug", "content"},
			{"title too long", strings.Repeat("x", 201), "slug", "content"},
			{"empty slug", "Title", "", "content"},
			{"empty content", "Title", "slug", ""},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := NewPost(tc.title, tc.slug, 1, 1, "", tc.body, "")
				assert.Error(t, err)
			})
		}
	})
}

func TestPost_VisibleTo(t *testing.T) {
	const authorID = uint(10)
	const otherID = uint(20)

	tests := []struct {
		name     string
		status   vo.PostStatus
		viewerID uint
		want     bool
	}{
		{"published visible to anyone", vo.StatusPublished, otherID, true},
		{"published visible to anonymous", vo.StatusPublished, 0, true},
		{"draft visible to author", vo.StatusDraft, authorID, true},
		{"draft hidden from others", vo.StatusDraft, otherID, false},
		{"draft hidden from anonymous", vo.StatusDraft, 0, false},
		{"archived hidden from author", vo.StatusArchived, authorID, false},
		{"archived hidden from others", vo.StatusArchived, otherID, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := newTestPost(t, tt.status)
			assert.Equal(t, tt.want, p.VisibleTo(tt.viewerID))
		})
	}
}

func TestPost_ChangeStatus(t *testing.T) {
	t.Run("first publish stamps publishedAt once", func(t *testing.T) {
		p := newTestPost(t, vo.StatusDraft)
		require.NoError(t, p.ChangeStatus(vo.StatusPublished))
		require.NotNil(t, p.PublishedAt())
		first := *p.PublishedAt()

		require.NoError(t, p.ChangeStatus(vo.StatusArchived))
		require.NoError(t, p.ChangeStatus(vo.StatusPublished))
		assert.Equal(t, first, *p.PublishedAt(), "re-publish keeps the original timestamp")
	})

	t.Run("same status is a no-op", func(t *testing.T) {
		p := newTestPost(t, vo.StatusDraft)
		before := p.UpdatedAt()
		require.NoError(t, p.ChangeStatus(vo.StatusDraft))
		assert.Equal(t, before, p.UpdatedAt())
	})

	t.Run("invalid status rejected", func(t *testing.T) {
		p := newTestPost(t, vo.StatusDraft)
		assert.Error(t, p.ChangeStatus("deleted"))
	})
}

func TestPost_Update(t *testing.T) {
	p := newTestPost(t, vo.StatusPublished)

	title := "New Title"
	require.NoError(t, p.Update(PostUpdate{Title: &title}))
	assert.Equal(t, "New Title", p.Title())
	assert.Equal(t, "hello-world", p.Slug(), "slug does not follow title edits")

	empty := ""
	assert.Error(t, p.Update(PostUpdate{Title: &empty}))
	assert.Error(t, p.Update(PostUpdate{Content: &empty}))
}

func TestPost_ReadingTime(t *testing.T) {
	t.Run("short content rounds up to one minute", func(t *testing.T) {
		p := newTestPost(t, vo.StatusDraft)
		assert.Equal(t, 1, p.ReadingTime())
	})

	t.Run("long content scales with word count", func(t *testing.T) {
		longContent := strings.TrimSpace(strings.Repeat("word ", 450))
		p, err := NewPost("Long", "long", 1, 1, "", longContent, "")
		require.NoError(t, err)
		assert.Equal(t, 3, p.ReadingTime())
	})
}

func TestReconstructPost(t *testing.T) {
	now := time.Now()
	p, err := ReconstructPost(5, "Title", "title", 10, 1, "", "content",
		vo.StatusPublished, true, 42, 7, now, now, &now)
	require.NoError(t, err)
	assert.Equal(t, 42, p.ViewsCount())
	assert.Equal(t, 7, p.LikesCount())
	assert.True(t, p.Featured())

	_, err = ReconstructPost(0, "Title", "title", 10, 1, "", "content",
		vo.StatusPublished, false, 0, 0, now, now, nil)
	assert.Error(t, err)
}
