package usecases

import (
	"context"

	"novita/internal/domain/blog"
	"novita/internal/shared/errors"
)

type mockPostRepo struct {
	saveFn           func(ctx context.Context, post *blog.Post) error
	updateFn         func(ctx context.Context, post *blog.Post) error
	deleteFn         func(ctx context.Context, id uint) error
	getByIDFn        func(ctx context.Context, id uint) (*blog.Post, error)
	getBySlugFn      func(ctx context.Context, slug string) (*blog.Post, error)
	existsBySlugFn   func(ctx context.Context, slug string) (bool, error)
	listFn           func(ctx context.Context, filter blog.PostFilter) ([]*blog.Post, int64, error)
	incrementViewsFn func(ctx context.Context, postID uint) error
	incrementLikesFn func(ctx context.Context, postID uint, delta int) error
}

func (m *mockPostRepo) Save(ctx context.Context, post *blog.Post) error {
	if m.saveFn != nil {
		return m.saveFn(ctx, post)
	}
	return nil
}

func (m *mockPostRepo) Update(ctx context.Context, post *blog.Post) error {
	if m.updateFn != nil {
		return m.updateFn(ctx, post)
	}
	return nil
}

func (m *mockPostRepo) Delete(ctx context.Context, id uint) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return nil
}

func (m *mockPostRepo) GetByID(ctx context.Context, id uint) (*blog.Post, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, id)
	}
	return nil, errors.NewNotFoundError("post not found")
}

func (m *mockPostRepo) GetBySlug(ctx context.Context, slug string) (*blog.Post, error) {
	if m.getBySlugFn != nil {
		return m.getBySlugFn(ctx, slug)
	}
	return nil, errors.NewNotFoundError("post not found")
}

func (m *mockPostRepo) ExistsBySlug(ctx context.Context, slug string) (bool, error) {
	if m.existsBySlugFn != nil {
		return m.existsBySlugFn(ctx, slug)
	}
	return false, nil
}

func (m *mockPostRepo) List(ctx context.Context, filter blog.PostFilter) ([]*blog.Post, int64, error) {
	if m.listFn != nil {
		return m.listFn(ctx, filter)
	}
	return nil, 0, nil
}

func (m *mockPostRepo) IncrementViews(ctx context.Context, postID uint) error {
	if m.incrementViewsFn != nil {
		return m.incrementViewsFn(ctx, postID)
	}
	return nil
}

func (m *mockPostRepo) IncrementLikes(ctx context.Context, postID uint, delta int) error {
	if m.incrementLikesFn != nil {
		return m.incrementLikesFn(ctx, postID, delta)
	}
	return nil
}

type mockCommentRepo struct {
	saveFn               func(ctx context.Context, comment *blog.Comment) error
	getByIDFn            func(ctx context.Context, id uint) (*blog.Comment, error)
	listApprovedByPostFn func(ctx context.Context, postID uint) ([]*blog.Comment, error)
}

func (m *mockCommentRepo) Save(ctx context.Context, comment *blog.Comment) error {
	if m.saveFn != nil {
		return m.saveFn(ctx, comment)
	}
	return comment.SetID(1)
}

func (m *mockCommentRepo) GetByID(ctx context.Context, id uint) (*blog.Comment, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, id)
	}
	return nil, errors.NewNotFoundError("comment not found")
}

func (m *mockCommentRepo) ListApprovedByPost(ctx context.Context, postID uint) ([]*blog.Comment, error) {
	if m.listApprovedByPostFn != nil {
		return m.listApprovedByPostFn(ctx, postID)
	}
	return nil, nil
}

type mockLikeRepo struct {
	createFn func(ctx context.Context, like *blog.Like) error
	deleteFn func(ctx context.Context, postID, userID uint) (bool, error)
	existsFn func(ctx context.Context, postID, userID uint) (bool, error)
}

func (m *mockLikeRepo) Create(ctx context.Context, like *blog.Like) error {
	if m.createFn != nil {
		return m.createFn(ctx, like)
	}
	return nil
}

func (m *mockLikeRepo) Delete(ctx context.Context, postID, userID uint) (bool, error) {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, postID, userID)
	}
	return true, nil
}

func (m *mockLikeRepo) Exists(ctx context.Context, postID, userID uint) (bool, error) {
	if m.existsFn != nil {
		return m.existsFn(ctx, postID, userID)
	}
	return false, nil
}

type mockCategoryRepo struct {
	saveFn      func(ctx context.Context, category *blog.Category) error
	getByIDFn   func(ctx context.Context, id uint) (*blog.Category, error)
	getBySlugFn func(ctx context.Context, slug string) (*blog.Category, error)
	listFn      func(ctx context.Context) ([]*blog.Category, error)
}

func (m *mockCategoryRepo) Save(ctx context.Context, category *blog.Category) error {
	if m.saveFn != nil {
		return m.saveFn(ctx, category)
	}
	return nil
}

func (m *mockCategoryRepo) GetByID(ctx context.Context, id uint) (*blog.Category, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, id)
	}
	return blog.ReconstructCategory(id, "General", "general", "", testNow())
}

func (m *mockCategoryRepo) GetBySlug(ctx context.Context, slug string) (*blog.Category, error) {
	if m.getBySlugFn != nil {
		return m.getBySlugFn(ctx, slug)
	}
	return nil, errors.NewNotFoundError("category not found")
}

func (m *mockCategoryRepo) List(ctx context.Context) ([]*blog.Category, error) {
	if m.listFn != nil {
		return m.listFn(ctx)
	}
	return nil, nil
}
