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

type CategoryRepository struct {
	db     *gorm.DB
	mapper mappers.BlogMapper
}

func NewCategoryRepository(gdb *gorm.DB) *CategoryRepository {
	return &CategoryRepository{
		db:     gdb,
		mapper: mappers.NewBlogMapper(),
	}
}

func (r *CategoryRepository) Save(ctx context.Context, category *blog.Category) error {
	model := r.mapper.CategoryToModel(category)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		if apperrors.IsDuplicateError(err) {
			return apperrors.NewConflictError("category already exists")
		}
		return fmt.Errorf("failed to save category: %w", err)
	}

	return category.SetID(model.ID)
}

func (r *CategoryRepository) GetByID(ctx context.Context, id uint) (*blog.Category, error) {
	var model models.CategoryModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where("id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("category not found")
		}
		return nil, fmt.Errorf("failed to get category: %w", err)
	}

	return r.mapper.CategoryToDomain(&model)
}

func (r *CategoryRepository) GetBySlug(ctx context.Context, slug string) (*blog.Category, error) {
	var model models.CategoryModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where("slug = ?", slug).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("category not found")
		}
		return nil, fmt.Errorf("failed to get category by slug: %w", err)
	}

	return r.mapper.CategoryToDomain(&model)
}

func (r *CategoryRepository) List(ctx context.Context) ([]*blog.Category, error) {
	var rows []models.CategoryModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Order("name ASC").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}

	categories := make([]*blog.Category, 0, len(rows))
	for i := range rows {
		category, err := r.mapper.CategoryToDomain(&rows[i])
		if err != nil {
			return nil, fmt.Errorf("failed to map category %d: %w", rows[i].ID, err)
		}
		categories = append(categories, category)
	}

	return categories, nil
}
