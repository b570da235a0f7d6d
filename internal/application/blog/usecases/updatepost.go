package usecases

import (
	"context"

	"novita/internal/domain/blog"
	"novita/internal/shared/errors"
	"novita/internal/shared/logger"
)

type UpdatePostCommand struct {
	PostID     uint
	ActorID    uint
	Title      *string
	Excerpt    *string
	Content    *string
	CategoryID *uint
	Featured   *bool
	Status     *string
}

type UpdatePostResult struct {
	Post *blog.Post
}

type UpdatePostUseCase struct {
	postRepo blog.PostRepository
	logger   logger.Interface
}

func NewUpdatePostUseCase(postRepo blog.PostRepository, logger logger.Interface) *UpdatePostUseCase {
	return &UpdatePostUseCase{
		postRepo: postRepo,
		logger:   logger,
	}
}

func (uc *UpdatePostUseCase) Execute(ctx context.Context, cmd UpdatePostCommand) (*UpdatePostResult, error) {
	if cmd.PostID == 0 || cmd.ActorID == 0 {
		return nil, errors.NewValidationError("post ID and actor ID are required")
	}

	post, err := uc.postRepo.GetByID(ctx, cmd.PostID)
	if err != nil {
		if errors.IsNotFoundError(err) {
			return nil, err
		}
		uc.logger.Errorw("failed to get post", "error", err, "post_id", cmd.PostID)
		return nil, errors.NewInternalError("failed to update post")
	}

	// Non-authors get not-found, never forbidden.
	if !post.IsAuthoredBy(cmd.ActorID) {
		return nil, errors.NewNotFoundError("post not found")
	}

	update := blog.PostUpdate{
		Title:    cmd.Title,
		Excerpt:  cmd.Excerpt,
		Content:  cmd.Content,
		Category: cmd.CategoryID,
		Featured: cmd.Featured,
	}
	if err := post.Update(update); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if cmd.Status != nil {
		status, err := blogStatus(*cmd.Status)
		if err != nil {
			return nil, err
		}
		if err := post.ChangeStatus(status); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}

	if err := uc.postRepo.Update(ctx, post); err != nil {
		uc.logger.Errorw("failed to save post", "error", err, "post_id", cmd.PostID)
		return nil, errors.NewInternalError("failed to update post")
	}

	uc.logger.Infow("post updated", "post_id", post.ID())

	return &UpdatePostResult{Post: post}, nil
}
