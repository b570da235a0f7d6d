package usecases

import (
	"context"

	"novita/internal/domain/blog"
	vo "novita/internal/domain/blog/value_objects"
	"novita/internal/shared/errors"
	"novita/internal/shared/logger"
)

func blogStatus(s string) (vo.PostStatus, error) {
	status, err := vo.NewPostStatus(s)
	if err != nil {
		return "", errors.NewValidationError(err.Error())
	}
	return status, nil
}

type DeletePostCommand struct {
	PostID  uint
	ActorID uint
}

type DeletePostUseCase struct {
	postRepo blog.PostRepository
	logger   logger.Interface
}

func NewDeletePostUseCase(postRepo blog.PostRepository, logger logger.Interface) *DeletePostUseCase {
	return &DeletePostUseCase{
		postRepo: postRepo,
		logger:   logger,
	}
}

func (uc *DeletePostUseCase) Execute(ctx context.Context, cmd DeletePostCommand) error {
	if cmd.PostID == 0 || cmd.ActorID == 0 {
		return errors.NewValidationError("post ID and actor ID are required")
	}

	post, err := uc.postRepo.GetByID(ctx, cmd.PostID)
	if err != nil {
		if errors.IsNotFoundError(err) {
			return err
		}
		uc.logger.Errorw("failed to get post", "error", err, "post_id", cmd.PostID)
		return errors.NewInternalError("failed to delete post")
	}

	if !post.IsAuthoredBy(cmd.ActorID) {
		return errors.NewNotFoundError("post not found")
	}

	// Comments and likes go with the post via storage-level cascade.
	if err := uc.postRepo.Delete(ctx, cmd.PostID); err != nil {
		uc.logger.Errorw("failed to delete post", "error", err, "post_id", cmd.PostID)
		return errors.NewInternalError("failed to delete post")
	}

	uc.logger.Infow("post deleted", "post_id", cmd.PostID)
	return nil
}
