package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"novita/internal/domain/blog"
	"novita/internal/infrastructure/persistence/mappers"
	"novita/internal/infrastructure/persistence/models"
	"novita/internal/shared/db"
	apperrors "novita/internal/shared/errors"
)

// LikeRepository relies on the composite unique index over (post_id,
// user_id) to arbitrate concurrent toggles; it never checks-then-inserts.
type LikeRepository struct {
	db     *gorm.DB
	mapper mappers.BlogMapper
}

func NewLikeRepository(gdb *gorm.DB) *LikeRepository {
	return &LikeRepository{
		db:     gdb,
		mapper: mappers.NewBlogMapper(),
	}
}

func (r *LikeRepository) Create(ctx context.Context, like *blog.Like) error {
	model := r.mapper.LikeToModel(like)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		if apperrors.IsDuplicateError(err) {
			return apperrors.NewConflictError("post already liked")
		}
		return fmt.Errorf("failed to create like: %w", err)
	}

	return nil
}

func (r *LikeRepository) Delete(ctx context.Context, postID, userID uint) (bool, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Where("post_id = ? AND user_id = ?", postID, userID).
		Delete(&models.PostLikeModel{})

	if result.Error != nil {
		return false, fmt.Errorf("failed to delete like: %w", result.Error)
	}

	return result.RowsAffected > 0, nil
}

func (r *LikeRepository) Exists(ctx context.Context, postID, userID uint) (bool, error) {
	var count int64
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Model(&models.PostLikeModel{}).
		Where("post_id = ? AND user_id = ?", postID, userID).
		Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check like existence: %w", err)
	}

	return count > 0, nil
}
