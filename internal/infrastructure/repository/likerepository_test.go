package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"novita/internal/domain/blog"
	apperrors "novita/internal/shared/errors"
)

func TestLikeRepository_Create(t *testing.T) {
	gdb := setupTestDB(t)
	repo := NewLikeRepository(gdb)
	ctx := context.Background()

	t.Run("insert and exists", func(t *testing.T) {
		like, err := blog.NewLike(1, 10)
		require.NoError(t, err)
		require.NoError(t, repo.Create(ctx, like))

		exists, err := repo.Exists(ctx, 1, 10)
		require.NoError(t, err)
		assert.True(t, exists)
	})

	t.Run("second insert of same pair yields conflict", func(t *testing.T) {
		like, err := blog.NewLike(2, 20)
		require.NoError(t, err)
		require.NoError(t, repo.Create(ctx, like))

		dup, err := blog.NewLike(2, 20)
		require.NoError(t, err)
		err = repo.Create(ctx, dup)
		assert.True(t, apperrors.IsConflictError(err))
	})

	t.Run("same user may like different posts", func(t *testing.T) {
		first, err := blog.NewLike(3, 30)
		require.NoError(t, err)
		require.NoError(t, repo.Create(ctx, first))

		second, err := blog.NewLike(4, 30)
		require.NoError(t, err)
		assert.NoError(t, repo.Create(ctx, second))
	})
}

func TestLikeRepository_Delete(t *testing.T) {
	gdb := setupTestDB(t)
	repo := NewLikeRepository(gdb)
	ctx := context.Background()

	like, err := blog.NewLike(5, 50)
	require.NoError(t, err)
	require.NoError(t, repo.Create(ctx, like))

	t.Run("delete existing pair reports removal", func(t *testing.T) {
		removed, err := repo.Delete(ctx, 5, 50)
		require.NoError(t, err)
		assert.True(t, removed)

		exists, err := repo.Exists(ctx, 5, 50)
		require.NoError(t, err)
		assert.False(t, exists)
	})

	t.Run("delete of missing pair reports no removal", func(t *testing.T) {
		removed, err := repo.Delete(ctx, 5, 50)
		require.NoError(t, err)
		assert.False(t, removed)
	})
}
