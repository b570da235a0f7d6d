package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"novita/internal/domain/blog"
	"novita/internal/shared/errors"
	"novita/internal/shared/logger"
)

func TestListPostsUseCase_Execute(t *testing.T) {
	log := logger.NewLogger()

	t.Run("public listing is published-only", func(t *testing.T) {
		var captured blog.PostFilter
		repo := &mockPostRepo{
			listFn: func(ctx context.Context, filter blog.PostFilter) ([]*blog.Post, int64, error) {
				captured = filter
				return nil, 0, nil
			},
		}
		uc := NewListPostsUseCase(repo, log)

		_, err := uc.Execute(context.Background(), ListPostsCommand{Search: "recovery"})
		require.NoError(t, err)
		require.NotNil(t, captured.Status)
		assert.True(t, captured.Status.IsPublished())
		assert.False(t, captured.AllStatuses)
		assert.Equal(t, "recovery", captured.Search)
	})

	t.Run("my posts includes every status", func(t *testing.T) {
		var captured blog.PostFilter
		repo := &mockPostRepo{
			listFn: func(ctx context.Context, filter blog.PostFilter) ([]*blog.Post, int64, error) {
				captured = filter
				return nil, 0, nil
			},
		}
		uc := NewListPostsUseCase(repo, log)

		_, err := uc.Execute(context.Background(), ListPostsCommand{AuthorID: 7, Mine: true})
		require.NoError(t, err)
		assert.True(t, captured.AllStatuses)
		require.NotNil(t, captured.AuthorID)
		assert.Equal(t, uint(7), *captured.AuthorID)
	})

	t.Run("my posts requires an author", func(t *testing.T) {
		uc := NewListPostsUseCase(&mockPostRepo{}, log)
		_, err := uc.Execute(context.Background(), ListPostsCommand{Mine: true})
		assert.True(t, errors.IsValidationError(err))
	})

	t.Run("pagination normalized", func(t *testing.T) {
		var captured blog.PostFilter
		repo := &mockPostRepo{
			listFn: func(ctx context.Context, filter blog.PostFilter) ([]*blog.Post, int64, error) {
				captured = filter
				return nil, 0, nil
			},
		}
		uc := NewListPostsUseCase(repo, log)

		_, err := uc.Execute(context.Background(), ListPostsCommand{Page: -1, PageSize: 9999})
		require.NoError(t, err)
		assert.Equal(t, 1, captured.Page)
		assert.LessOrEqual(t, captured.PageSize, 100)
	})
}
