package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"novita/internal/domain/blog"
	vo "novita/internal/domain/blog/value_objects"
	"novita/internal/shared/errors"
	"novita/internal/shared/logger"
	"novita/internal/shared/services/markdown"
)

func newAddCommentUseCase(postRepo *mockPostRepo, commentRepo *mockCommentRepo) *AddCommentUseCase {
	return NewAddCommentUseCase(postRepo, commentRepo, markdown.NewService(), logger.NewLogger())
}

func TestAddCommentUseCase_Execute(t *testing.T) {
	publishedPost := func(t *testing.T) *mockPostRepo {
		post := reconstructTestPost(t, 1, 7, vo.StatusPublished)
		return &mockPostRepo{
			getByIDFn: func(ctx context.Context, id uint) (*blog.Post, error) {
				return post, nil
			},
		}
	}

	t.Run("comment on published post", func(t *testing.T) {
		var saved *blog.Comment
		commentRepo := &mockCommentRepo{
			saveFn: func(ctx context.Context, comment *blog.Comment) error {
				saved = comment
				return comment.SetID(5)
			},
		}
		uc := newAddCommentUseCase(publishedPost(t), commentRepo)

		result, err := uc.Execute(context.Background(), AddCommentCommand{
			PostID:   1,
			AuthorID: 9,
			Content:  "thanks for sharing",
		})
		require.NoError(t, err)
		assert.Equal(t, uint(5), result.CommentID)
		require.NotNil(t, saved)
		assert.True(t, saved.Approved())
	})

	t.Run("rejected on draft post", func(t *testing.T) {
		post := reconstructTestPost(t, 1, 7, vo.StatusDraft)
		postRepo := &mockPostRepo{
			getByIDFn: func(ctx context.Context, id uint) (*blog.Post, error) {
				return post, nil
			},
		}
		uc := newAddCommentUseCase(postRepo, &mockCommentRepo{})

		_, err := uc.Execute(context.Background(), AddCommentCommand{
			PostID:   1,
			AuthorID: 9,
			Content:  "hello",
		})
		assert.True(t, errors.IsValidationError(err))
	})

	t.Run("reply to comment on another post rejected", func(t *testing.T) {
		parent, err := blog.ReconstructComment(3, 2, 8, "other post comment", nil, true, time.Now())
		require.NoError(t, err)
		commentRepo := &mockCommentRepo{
			getByIDFn: func(ctx context.Context, id uint) (*blog.Comment, error) {
				return parent, nil
			},
		}
		uc := newAddCommentUseCase(publishedPost(t), commentRepo)

		parentID := uint(3)
		_, err = uc.Execute(context.Background(), AddCommentCommand{
			PostID:   1,
			AuthorID: 9,
			Content:  "reply",
			ParentID: &parentID,
		})
		assert.True(t, errors.IsValidationError(err))
	})

	t.Run("reply to a reply rejected", func(t *testing.T) {
		grandparent := uint(2)
		parent, err := blog.ReconstructComment(3, 1, 8, "already a reply", &grandparent, true, time.Now())
		require.NoError(t, err)
		commentRepo := &mockCommentRepo{
			getByIDFn: func(ctx context.Context, id uint) (*blog.Comment, error) {
				return parent, nil
			},
		}
		uc := newAddCommentUseCase(publishedPost(t), commentRepo)

		parentID := uint(3)
		_, err = uc.Execute(context.Background(), AddCommentCommand{
			PostID:   1,
			AuthorID: 9,
			Content:  "nested reply",
			ParentID: &parentID,
		})
		assert.True(t, errors.IsValidationError(err))
	})

	t.Run("missing parent rejected", func(t *testing.T) {
		uc := newAddCommentUseCase(publishedPost(t), &mockCommentRepo{})

		parentID := uint(99)
		_, err := uc.Execute(context.Background(), AddCommentCommand{
			PostID:   1,
			AuthorID: 9,
			Content:  "reply",
			ParentID: &parentID,
		})
		assert.True(t, errors.IsValidationError(err))
	})

	t.Run("script content sanitized", func(t *testing.T) {
		var saved *blog.Comment
		commentRepo := &mockCommentRepo{
			saveFn: func(ctx context.Context, comment *blog.Comment) error {
				saved = comment
				return comment.SetID(6)
			},
		}
		uc := newAddCommentUseCase(publishedPost(t), commentRepo)

		_, err := uc.Execute(context.Background(), AddCommentCommand{
			PostID:   1,
			AuthorID: 9,
			Content:  `hello <script>alert("x")</script>world`,
		})
		require.NoError(t, err)
		require.NotNil(t, saved)
		assert.NotContains(t, saved.Content(), "<script>")
		assert.Contains(t, saved.Content(), "hello")
	})
}
