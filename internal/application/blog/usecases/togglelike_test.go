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

func TestToggleLikeUseCase_Execute(t *testing.T) {
	log := logger.NewLogger()

	t.Run("liking moves counter up by one", func(t *testing.T) {
		post := reconstructTestPost(t, 1, 7, vo.StatusPublished)
		liked := false
		var deltas []int
		postRepo := &mockPostRepo{
			getByIDFn: func(ctx context.Context, id uint) (*blog.Post, error) {
				return post, nil
			},
			incrementLikesFn: func(ctx context.Context, postID uint, delta int) error {
				deltas = append(deltas, delta)
				return nil
			},
		}
		likeRepo := &mockLikeRepo{
			existsFn: func(ctx context.Context, postID, userID uint) (bool, error) {
				return liked, nil
			},
			createFn: func(ctx context.Context, like *blog.Like) error {
				liked = true
				return nil
			},
		}
		uc := NewToggleLikeUseCase(postRepo, likeRepo, log)

		result, err := uc.Execute(context.Background(), ToggleLikeCommand{PostID: 1, UserID: 9})
		require.NoError(t, err)
		assert.True(t, result.Liked)
		assert.Equal(t, []int{1}, deltas)
	})

	t.Run("unliking moves counter down by one", func(t *testing.T) {
		post := reconstructTestPost(t, 1, 7, vo.StatusPublished)
		liked := true
		var deltas []int
		postRepo := &mockPostRepo{
			getByIDFn: func(ctx context.Context, id uint) (*blog.Post, error) {
				return post, nil
			},
			incrementLikesFn: func(ctx context.Context, postID uint, delta int) error {
				deltas = append(deltas, delta)
				return nil
			},
		}
		likeRepo := &mockLikeRepo{
			existsFn: func(ctx context.Context, postID, userID uint) (bool, error) {
				return liked, nil
			},
			deleteFn: func(ctx context.Context, postID, userID uint) (bool, error) {
				liked = false
				return true, nil
			},
		}
		uc := NewToggleLikeUseCase(postRepo, likeRepo, log)

		result, err := uc.Execute(context.Background(), ToggleLikeCommand{PostID: 1, UserID: 9})
		require.NoError(t, err)
		assert.False(t, result.Liked)
		assert.Equal(t, []int{-1}, deltas)
	})

	t.Run("losing the insert race resolves to liked without failing", func(t *testing.T) {
		post := reconstructTestPost(t, 1, 7, vo.StatusPublished)
		var deltas []int
		calls := 0
		postRepo := &mockPostRepo{
			getByIDFn: func(ctx context.Context, id uint) (*blog.Post, error) {
				return post, nil
			},
			incrementLikesFn: func(ctx context.Context, postID uint, delta int) error {
				deltas = append(deltas, delta)
				return nil
			},
		}
		likeRepo := &mockLikeRepo{
			existsFn: func(ctx context.Context, postID, userID uint) (bool, error) {
				// Not liked at check time, liked by the time the
				// state is refetched.
				calls++
				return calls > 1, nil
			},
			createFn: func(ctx context.Context, like *blog.Like) error {
				return errors.NewConflictError("Duplicate entry '1-9'")
			},
		}
		uc := NewToggleLikeUseCase(postRepo, likeRepo, log)

		result, err := uc.Execute(context.Background(), ToggleLikeCommand{PostID: 1, UserID: 9})
		require.NoError(t, err)
		assert.True(t, result.Liked)
		assert.Empty(t, deltas, "the losing toggle must not move the counter")
	})

	t.Run("lost delete race must not move the counter", func(t *testing.T) {
		post := reconstructTestPost(t, 1, 7, vo.StatusPublished)
		var deltas []int
		postRepo := &mockPostRepo{
			getByIDFn: func(ctx context.Context, id uint) (*blog.Post, error) {
				return post, nil
			},
			incrementLikesFn: func(ctx context.Context, postID uint, delta int) error {
				deltas = append(deltas, delta)
				return nil
			},
		}
		likeRepo := &mockLikeRepo{
			existsFn: func(ctx context.Context, postID, userID uint) (bool, error) {
				return true, nil
			},
			deleteFn: func(ctx context.Context, postID, userID uint) (bool, error) {
				return false, nil
			},
		}
		uc := NewToggleLikeUseCase(postRepo, likeRepo, log)

		_, err := uc.Execute(context.Background(), ToggleLikeCommand{PostID: 1, UserID: 9})
		require.NoError(t, err)
		assert.Empty(t, deltas)
	})

	t.Run("invisible post is not found", func(t *testing.T) {
		post := reconstructTestPost(t, 1, 7, vo.StatusDraft)
		postRepo := &mockPostRepo{
			getByIDFn: func(ctx context.Context, id uint) (*blog.Post, error) {
				return post, nil
			},
		}
		uc := NewToggleLikeUseCase(postRepo, &mockLikeRepo{}, log)

		_, err := uc.Execute(context.Background(), ToggleLikeCommand{PostID: 1, UserID: 9})
		assert.True(t, errors.IsNotFoundError(err))
	})
}
