package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"novita/internal/domain/blog"
	vo "novita/internal/domain/blog/value_objects"
	"novita/internal/shared/errors"
	"novita/internal/shared/logger"
)

func TestUpdatePostUseCase_Execute(t *testing.T) {
	log := logger.NewLogger()

	t.Run("author edits content, slug untouched", func(t *testing.T) {
		post := reconstructTestPost(t, 1, 7, vo.StatusPublished)
		var saved *blog.Post
		repo := &mockPostRepo{
			getByIDFn: func(ctx context.Context, id uint) (*blog.Post, error) {
				return post, nil
			},
			updateFn: func(ctx context.Context, p *blog.Post) error {
				saved = p
				return nil
			},
		}
		uc := NewUpdatePostUseCase(repo, log)

		title := "A Better Title"
		result, err := uc.Execute(context.Background(), UpdatePostCommand{
			PostID:  1,
			ActorID: 7,
			Title:   &title,
		})
		require.NoError(t, err)
		assert.Equal(t, "A Better Title", result.Post.Title())
		assert.Equal(t, "my-recovery-story", result.Post.Slug())
		require.NotNil(t, saved)
	})

	t.Run("non-author gets not found", func(t *testing.T) {
		post := reconstructTestPost(t, 1, 7, vo.StatusPublished)
		repo := &mockPostRepo{
			getByIDFn: func(ctx context.Context, id uint) (*blog.Post, error) {
				return post, nil
			},
		}
		uc := NewUpdatePostUseCase(repo, log)

		title := "Hijacked"
		_, err := uc.Execute(context.Background(), UpdatePostCommand{PostID: 1, ActorID: 8, Title: &title})
		assert.True(t, errors.IsNotFoundError(err))
	})

	t.Run("re-publish keeps original published time", func(t *testing.T) {
		post := reconstructTestPost(t, 1, 7, vo.StatusPublished)
		original := *post.PublishedAt()
		repo := &mockPostRepo{
			getByIDFn: func(ctx context.Context, id uint) (*blog.Post, error) {
				return post, nil
			},
		}
		uc := NewUpdatePostUseCase(repo, log)

		draft := "draft"
		_, err := uc.Execute(context.Background(), UpdatePostCommand{PostID: 1, ActorID: 7, Status: &draft})
		require.NoError(t, err)

		published := "published"
		result, err := uc.Execute(context.Background(), UpdatePostCommand{PostID: 1, ActorID: 7, Status: &published})
		require.NoError(t, err)
		require.NotNil(t, result.Post.PublishedAt())
		assert.Equal(t, original, *result.Post.PublishedAt())
	})
}

func TestDeletePostUseCase_Execute(t *testing.T) {
	log := logger.NewLogger()

	t.Run("author deletes", func(t *testing.T) {
		post := reconstructTestPost(t, 1, 7, vo.StatusPublished)
		deleted := false
		repo := &mockPostRepo{
			getByIDFn: func(ctx context.Context, id uint) (*blog.Post, error) {
				return post, nil
			},
			deleteFn: func(ctx context.Context, id uint) error {
				deleted = true
				return nil
			},
		}
		uc := NewDeletePostUseCase(repo, log)

		require.NoError(t, uc.Execute(context.Background(), DeletePostCommand{PostID: 1, ActorID: 7}))
		assert.True(t, deleted)
	})

	t.Run("non-author gets not found", func(t *testing.T) {
		post := reconstructTestPost(t, 1, 7, vo.StatusPublished)
		repo := &mockPostRepo{
			getByIDFn: func(ctx context.Context, id uint) (*blog.Post, error) {
				return post, nil
			},
		}
		uc := NewDeletePostUseCase(repo, log)

		err := uc.Execute(context.Background(), DeletePostCommand{PostID: 1, ActorID: 8})
		assert.True(t, errors.IsNotFoundError(err))
	})
}
