package usecases

import (
	"context"
	"time"

	"novita/internal/domain/blog"
	vo "novita/internal/domain/blog/value_objects"
	"novita/internal/shared/errors"
	"novita/internal/shared/logger"
	"novita/internal/shared/slug"
)

type CreatePostCommand struct {
	Title      string
	Slug       string
	AuthorID   uint
	CategoryID uint
	Excerpt    string
	Content    string
	Status     string
	Featured   bool
}

type CreatePostResult struct {
	PostID    uint
	Slug      string
	Status    string
	CreatedAt time.Time
}

type CreatePostUseCase struct {
	postRepo     blog.PostRepository
	categoryRepo blog.CategoryRepository
	logger       logger.Interface
}

func NewCreatePostUseCase(
	postRepo blog.PostRepository,
	categoryRepo blog.CategoryRepository,
	logger logger.Interface,
) *CreatePostUseCase {
	return &CreatePostUseCase{
		postRepo:     postRepo,
		categoryRepo: categoryRepo,
		logger:       logger,
	}
}

func (uc *CreatePostUseCase) Execute(ctx context.Context, cmd CreatePostCommand) (*CreatePostResult, error) {
	if err := uc.validateCommand(cmd); err != nil {
		return nil, err
	}

	status := vo.StatusDraft
	if cmd.Status != "" {
		parsed, err := vo.NewPostStatus(cmd.Status)
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		status = parsed
	}

	postSlug := cmd.Slug
	if postSlug == "" {
		postSlug = slug.Make(cmd.Title)
	}
	if postSlug == "" {
		return nil, errors.NewValidationError("title does not yield a usable slug")
	}

	if cmd.CategoryID != 0 {
		if _, err := uc.categoryRepo.GetByID(ctx, cmd.CategoryID); err != nil {
			if errors.IsNotFoundError(err) {
				return nil, errors.NewValidationError("category does not exist")
			}
			uc.logger.Errorw("failed to look up category", "error", err, "category_id", cmd.CategoryID)
			return nil, errors.NewInternalError("failed to create post")
		}
	}

	// Slug collisions are rejected rather than suffixed; the caller picks
	// a new title or slug.
	exists, err := uc.postRepo.ExistsBySlug(ctx, postSlug)
	if err != nil {
		uc.logger.Errorw("failed to check slug", "error", err, "slug", postSlug)
		return nil, errors.NewInternalError("failed to create post")
	}
	if exists {
		return nil, errors.NewConflictError("a post with this slug already exists")
	}

	post, err := blog.NewPost(cmd.Title, postSlug, cmd.AuthorID, cmd.CategoryID, cmd.Excerpt, cmd.Content, status)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	if cmd.Featured {
		featured := true
		if err := post.Update(blog.PostUpdate{Featured: &featured}); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}

	if err := uc.postRepo.Save(ctx, post); err != nil {
		if errors.IsDuplicateError(err) {
			return nil, errors.NewConflictError("a post with this slug already exists")
		}
		uc.logger.Errorw("failed to save post", "error", err)
		return nil, errors.NewInternalError("failed to create post")
	}

	uc.logger.Infow("post created", "post_id", post.ID(), "slug", post.Slug(), "status", post.Status().String())

	return &CreatePostResult{
		PostID:    post.ID(),
		Slug:      post.Slug(),
		Status:    post.Status().String(),
		CreatedAt: post.CreatedAt(),
	}, nil
}

func (uc *CreatePostUseCase) validateCommand(cmd CreatePostCommand) error {
	if cmd.AuthorID == 0 {
		return errors.NewValidationError("author ID is required")
	}
	if len(cmd.Title) == 0 {
		return errors.NewValidationError("title is required")
	}
	if len(cmd.Title) > 200 {
		return errors.NewValidationError("title exceeds maximum length of 200 characters")
	}
	if len(cmd.Content) == 0 {
		return errors.NewValidationError("content is required")
	}
	return nil
}
