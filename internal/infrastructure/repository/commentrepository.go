package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"novita/internal/domain/blog"
	"novita/internal/infrastructure/persistence/mappers"
	"novita/internal/infrastructure/persistence/models"
	"novita/internal/shared/db"
	apperrors "novita/internal/shared/errors"
)

type CommentRepository struct {
	db     *gorm.DB
	mapper mappers.BlogMapper
}

func NewCommentRepository(gdb *gorm.DB) *CommentRepository {
	return &CommentRepository{
		db:     gdb,
		mapper: mappers.NewBlogMapper(),
	}
}

func (r *CommentRepository) Save(ctx context.Context, comment *blog.Comment) error {
	model := r.mapper.CommentToModel(comment)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save comment: %w", err)
	}

	return comment.SetID(model.ID)
}

func (r *CommentRepository) GetByID(ctx context.Context, id uint) (*blog.Comment, error) {
	var model models.CommentModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where("id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("comment not found")
		}
		return nil, fmt.Errorf("failed to get comment: %w", err)
	}

	return r.mapper.CommentToDomain(&model)
}

func (r *CommentRepository) ListApprovedByPost(ctx context.Context, postID uint) ([]*blog.Comment, error) {
	var rows []models.CommentModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("post_id = ? AND approved = ?", postID, true).
		Order("created_at ASC").
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}

	comments := make([]*blog.Comment, 0, len(rows))
	for i := range rows {
		comment, err := r.mapper.CommentToDomain(&rows[i])
		if err != nil {
			return nil, fmt.Errorf("failed to map comment %d: %w", rows[i].ID, err)
		}
		comments = append(comments, comment)
	}

	return comments, nil
}
