package usecases

import (
	"context"

	"novita/internal/domain/blog"
	"novita/internal/shared/errors"
	"novita/internal/shared/logger"
)

type ToggleLikeCommand struct {
	PostID uint
	UserID uint
}

type ToggleLikeResult struct {
	Liked      bool
	LikesCount int
}

// ToggleLikeUseCase flips the (post, user) like pair. The unique index is
// the arbiter under concurrency: a duplicate insert means a concurrent
// toggle already liked the post, so the state is refetched instead of
// failing the request.
type ToggleLikeUseCase struct {
	postRepo blog.PostRepository
	likeRepo blog.LikeRepository
	logger   logger.Interface
}

func NewToggleLikeUseCase(
	postRepo blog.PostRepository,
	likeRepo blog.LikeRepository,
	logger logger.Interface,
) *ToggleLikeUseCase {
	return &ToggleLikeUseCase{
		postRepo: postRepo,
		likeRepo: likeRepo,
		logger:   logger,
	}
}

func (uc *ToggleLikeUseCase) Execute(ctx context.Context, cmd ToggleLikeCommand) (*ToggleLikeResult, error) {
	if cmd.PostID == 0 || cmd.UserID == 0 {
		return nil, errors.NewValidationError("post ID and user ID are required")
	}

	post, err := uc.postRepo.GetByID(ctx, cmd.PostID)
	if err != nil {
		if errors.IsNotFoundError(err) {
			return nil, err
		}
		uc.logger.Errorw("failed to get post", "error", err, "post_id", cmd.PostID)
		return nil, errors.NewInternalError("failed to toggle like")
	}
	if !post.VisibleTo(cmd.UserID) {
		return nil, errors.NewNotFoundError("post not found")
	}

	liked, err := uc.likeRepo.Exists(ctx, cmd.PostID, cmd.UserID)
	if err != nil {
		uc.logger.Errorw("failed to check like state", "error", err, "post_id", cmd.PostID)
		return nil, errors.NewInternalError("failed to toggle like")
	}

	if liked {
		removed, err := uc.likeRepo.Delete(ctx, cmd.PostID, cmd.UserID)
		if err != nil {
			uc.logger.Errorw("failed to remove like", "error", err, "post_id", cmd.PostID)
			return nil, errors.NewInternalError("failed to toggle like")
		}
		// removed == false means a concurrent toggle got there first;
		// the counter must only move when a row actually went away.
		if removed {
			if err := uc.postRepo.IncrementLikes(ctx, cmd.PostID, -1); err != nil {
				uc.logger.Errorw("failed to decrement like counter", "error", err, "post_id", cmd.PostID)
				return nil, errors.NewInternalError("failed to toggle like")
			}
		}
		return uc.currentState(ctx, cmd)
	}

	like, err := blog.NewLike(cmd.PostID, cmd.UserID)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	if err := uc.likeRepo.Create(ctx, like); err != nil {
		if errors.IsConflictError(err) || errors.IsDuplicateError(err) {
			// The other toggle won the race; report the state it produced.
			return uc.currentState(ctx, cmd)
		}
		uc.logger.Errorw("failed to create like", "error", err, "post_id", cmd.PostID)
		return nil, errors.NewInternalError("failed to toggle like")
	}
	if err := uc.postRepo.IncrementLikes(ctx, cmd.PostID, 1); err != nil {
		uc.logger.Errorw("failed to increment like counter", "error", err, "post_id", cmd.PostID)
		return nil, errors.NewInternalError("failed to toggle like")
	}

	return uc.currentState(ctx, cmd)
}

func (uc *ToggleLikeUseCase) currentState(ctx context.Context, cmd ToggleLikeCommand) (*ToggleLikeResult, error) {
	liked, err := uc.likeRepo.Exists(ctx, cmd.PostID, cmd.UserID)
	if err != nil {
		uc.logger.Errorw("failed to read like state", "error", err, "post_id", cmd.PostID)
		return nil, errors.NewInternalError("failed to toggle like")
	}
	post, err := uc.postRepo.GetByID(ctx, cmd.PostID)
	if err != nil {
		uc.logger.Errorw("failed to reload post", "error", err, "post_id", cmd.PostID)
		return nil, errors.NewInternalError("failed to toggle like")
	}
	return &ToggleLikeResult{Liked: liked, LikesCount: post.LikesCount()}, nil
}
