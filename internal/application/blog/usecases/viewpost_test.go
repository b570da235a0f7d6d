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

func newViewPostUseCase(postRepo *mockPostRepo, commentRepo *mockCommentRepo, likeRepo *mockLikeRepo) *ViewPostUseCase {
	return NewViewPostUseCase(postRepo, commentRepo, likeRepo, markdown.NewService(), logger.NewLogger())
}

func TestViewPostUseCase_Execute(t *testing.T) {
	t.Run("published post is visible to anonymous and counted", func(t *testing.T) {
		post := reconstructTestPost(t, 1, 7, vo.StatusPublished)
		incremented := 0
		postRepo := &mockPostRepo{
			getBySlugFn: func(ctx context.Context, slug string) (*blog.Post, error) {
				return post, nil
			},
			incrementViewsFn: func(ctx context.Context, postID uint) error {
				incremented++
				return nil
			},
		}
		uc := newViewPostUseCase(postRepo, &mockCommentRepo{}, &mockLikeRepo{})

		result, err := uc.Execute(context.Background(), ViewPostCommand{Slug: "my-recovery-story"})
		require.NoError(t, err)
		assert.Equal(t, 1, incremented)
		assert.GreaterOrEqual(t, result.ReadingTime, 1)
		assert.NotEmpty(t, result.ContentHTML)
		assert.False(t, result.Liked)
	})

	t.Run("draft visible to author only", func(t *testing.T) {
		post := reconstructTestPost(t, 1, 7, vo.StatusDraft)
		postRepo := &mockPostRepo{
			getBySlugFn: func(ctx context.Context, slug string) (*blog.Post, error) {
				return post, nil
			},
		}
		uc := newViewPostUseCase(postRepo, &mockCommentRepo{}, &mockLikeRepo{})

		_, err := uc.Execute(context.Background(), ViewPostCommand{Slug: "my-recovery-story", ViewerID: 8})
		assert.True(t, errors.IsNotFoundError(err), "stranger gets not found")

		_, err = uc.Execute(context.Background(), ViewPostCommand{Slug: "my-recovery-story"})
		assert.True(t, errors.IsNotFoundError(err), "anonymous gets not found")

		result, err := uc.Execute(context.Background(), ViewPostCommand{Slug: "my-recovery-story", ViewerID: 7})
		require.NoError(t, err)
		assert.Equal(t, post, result.Post)
	})

	t.Run("archived post hidden from its author too", func(t *testing.T) {
		post := reconstructTestPost(t, 1, 7, vo.StatusArchived)
		postRepo := &mockPostRepo{
			getBySlugFn: func(ctx context.Context, slug string) (*blog.Post, error) {
				return post, nil
			},
		}
		uc := newViewPostUseCase(postRepo, &mockCommentRepo{}, &mockLikeRepo{})

		_, err := uc.Execute(context.Background(), ViewPostCommand{Slug: "my-recovery-story", ViewerID: 7})
		assert.True(t, errors.IsNotFoundError(err))
	})

	t.Run("counter failure does not block the read", func(t *testing.T) {
		post := reconstructTestPost(t, 1, 7, vo.StatusPublished)
		postRepo := &mockPostRepo{
			getBySlugFn: func(ctx context.Context, slug string) (*blog.Post, error) {
				return post, nil
			},
			incrementViewsFn: func(ctx context.Context, postID uint) error {
				return errors.NewInternalError("storage hiccup")
			},
		}
		uc := newViewPostUseCase(postRepo, &mockCommentRepo{}, &mockLikeRepo{})

		_, err := uc.Execute(context.Background(), ViewPostCommand{Slug: "my-recovery-story"})
		assert.NoError(t, err)
	})

	t.Run("comments threaded one level", func(t *testing.T) {
		post := reconstructTestPost(t, 1, 7, vo.StatusPublished)
		now := time.Now()
		parentID := uint(1)
		top, err := blog.ReconstructComment(1, 1, 8, "top comment", nil, true, now)
		require.NoError(t, err)
		reply, err := blog.ReconstructComment(2, 1, 9, "a reply", &parentID, true, now)
		require.NoError(t, err)

		postRepo := &mockPostRepo{
			getBySlugFn: func(ctx context.Context, slug string) (*blog.Post, error) {
				return post, nil
			},
		}
		commentRepo := &mockCommentRepo{
			listApprovedByPostFn: func(ctx context.Context, postID uint) ([]*blog.Comment, error) {
				return []*blog.Comment{top, reply}, nil
			},
		}
		uc := newViewPostUseCase(postRepo, commentRepo, &mockLikeRepo{})

		result, err := uc.Execute(context.Background(), ViewPostCommand{Slug: "my-recovery-story"})
		require.NoError(t, err)
		require.Len(t, result.Comments, 1)
		require.Len(t, result.Comments[0].Replies, 1)
		assert.Equal(t, "a reply", result.Comments[0].Replies[0].Content)
	})
}
