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

type PostRepository struct {
	db     *gorm.DB
	mapper mappers.BlogMapper
}

func NewPostRepository(gdb *gorm.DB) *PostRepository {
	return &PostRepository{
		db:     gdb,
		mapper: mappers.NewBlogMapper(),
	}
}

func (r *PostRepository) Save(ctx context.Context, post *blog.Post) error {
	model := r.mapper.PostToModel(post)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		if apperrors.IsDuplicateError(err) {
			return apperrors.NewConflictError("a post with this slug already exists")
		}
		return fmt.Errorf("failed to save post: %w", err)
	}

	return post.SetID(model.ID)
}

func (r *PostRepository) Update(ctx context.Context, post *blog.Post) error {
	model := r.mapper.PostToModel(post)
	tx := db.GetTxFromContext(ctx, r.db)

	// Select lists columns explicitly so zero values (featured=false,
	// cleared excerpt) are written too. Counters are excluded; they only
	// move through the increment methods.
	result := tx.
		Model(&models.PostModel{}).
		Where("id = ?", model.ID).
		Select("title", "slug", "category_id", "excerpt", "content", "status", "featured", "published_at", "updated_at").
		Updates(model)

	if result.Error != nil {
		if apperrors.IsDuplicateError(result.Error) {
			return apperrors.NewConflictError("a post with this slug already exists")
		}
		return fmt.Errorf("failed to update post: %w", result.Error)
	}

	return nil
}

func (r *PostRepository) Delete(ctx context.Context, id uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	return tx.Transaction(func(inner *gorm.DB) error {
		if err := inner.Where("post_id = ?", id).Delete(&models.CommentModel{}).Error; err != nil {
			return fmt.Errorf("failed to delete post comments: %w", err)
		}
		if err := inner.Where("post_id = ?", id).Delete(&models.PostLikeModel{}).Error; err != nil {
			return fmt.Errorf("failed to delete post likes: %w", err)
		}

		result := inner.Where("id = ?", id).Delete(&models.PostModel{})
		if result.Error != nil {
			return fmt.Errorf("failed to delete post: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return apperrors.NewNotFoundError("post not found")
		}
		return nil
	})
}

func (r *PostRepository) GetByID(ctx context.Context, id uint) (*blog.Post, error) {
	var model models.PostModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where("id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("post not found")
		}
		return nil, fmt.Errorf("failed to get post: %w", err)
	}

	return r.mapper.PostToDomain(&model)
}

func (r *PostRepository) GetBySlug(ctx context.Context, slug string) (*blog.Post, error) {
	var model models.PostModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where("slug = ?", slug).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("post not found")
		}
		return nil, fmt.Errorf("failed to get post by slug: %w", err)
	}

	return r.mapper.PostToDomain(&model)
}

func (r *PostRepository) ExistsBySlug(ctx context.Context, slug string) (bool, error) {
	var count int64
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Model(&models.PostModel{}).Where("slug = ?", slug).Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check slug existence: %w", err)
	}

	return count > 0, nil
}

func (r *PostRepository) List(ctx context.Context, filter blog.PostFilter) ([]*blog.Post, int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	query := tx.Model(&models.PostModel{})

	if filter.Status != nil {
		query = query.Where("status = ?", filter.Status.String())
	}
	if filter.CategoryID != nil {
		query = query.Where("category_id = ?", *filter.CategoryID)
	}
	if filter.AuthorID != nil {
		query = query.Where("author_id = ?", *filter.AuthorID)
	}
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where("title LIKE ? OR excerpt LIKE ? OR content LIKE ?", pattern, pattern, pattern)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count posts: %w", err)
	}

	var rows []models.PostModel
	offset := (filter.Page - 1) * filter.PageSize
	if err := query.
		Order("created_at DESC").
		Offset(offset).
		Limit(filter.PageSize).
		Find(&rows).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list posts: %w", err)
	}

	posts := make([]*blog.Post, 0, len(rows))
	for i := range rows {
		post, err := r.mapper.PostToDomain(&rows[i])
		if err != nil {
			return nil, 0, fmt.Errorf("failed to map post %d: %w", rows[i].ID, err)
		}
		posts = append(posts, post)
	}

	return posts, total, nil
}

func (r *PostRepository) IncrementViews(ctx context.Context, postID uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.PostModel{}).
		Where("id = ?", postID).
		UpdateColumn("views_count", gorm.Expr("views_count + 1"))

	if result.Error != nil {
		return fmt.Errorf("failed to increment views: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError("post not found")
	}

	return nil
}

func (r *PostRepository) IncrementLikes(ctx context.Context, postID uint, delta int) error {
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.PostModel{}).
		Where("id = ?", postID).
		UpdateColumn("likes_count", gorm.Expr("likes_count + ?", delta))

	if result.Error != nil {
		return fmt.Errorf("failed to adjust like count: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError("post not found")
	}

	return nil
}
