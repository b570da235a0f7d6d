package usecases

import (
	"context"
	"time"

	"novita/internal/domain/blog"
	"novita/internal/shared/errors"
	"novita/internal/shared/logger"
	"novita/internal/shared/services/markdown"
)

type AddCommentCommand struct {
	PostID   uint
	AuthorID uint
	Content  string
	ParentID *uint
}

type AddCommentResult struct {
	CommentID uint
	PostID    uint
	ParentID  *uint
	CreatedAt time.Time
}

type AddCommentUseCase struct {
	postRepo    blog.PostRepository
	commentRepo blog.CommentRepository
	markdown    markdown.Service
	logger      logger.Interface
}

func NewAddCommentUseCase(
	postRepo blog.PostRepository,
	commentRepo blog.CommentRepository,
	markdownService markdown.Service,
	logger logger.Interface,
) *AddCommentUseCase {
	return &AddCommentUseCase{
		postRepo:    postRepo,
		commentRepo: commentRepo,
		markdown:    markdownService,
		logger:      logger,
	}
}

func (uc *AddCommentUseCase) Execute(ctx context.Context, cmd AddCommentCommand) (*AddCommentResult, error) {
	if cmd.PostID == 0 || cmd.AuthorID == 0 {
		return nil, errors.NewValidationError("post ID and author ID are required")
	}
	if len(cmd.Content) == 0 {
		return nil, errors.NewValidationError("content is required")
	}

	post, err := uc.postRepo.GetByID(ctx, cmd.PostID)
	if err != nil {
		if errors.IsNotFoundError(err) {
			return nil, err
		}
		uc.logger.Errorw("failed to get post", "error", err, "post_id", cmd.PostID)
		return nil, errors.NewInternalError("failed to add comment")
	}

	if !post.Status().IsPublished() {
		return nil, errors.NewValidationError("comments are only allowed on published posts")
	}

	if cmd.ParentID != nil {
		parent, err := uc.commentRepo.GetByID(ctx, *cmd.ParentID)
		if err != nil {
			if errors.IsNotFoundError(err) {
				return nil, errors.NewValidationError("parent comment does not exist")
			}
			uc.logger.Errorw("failed to get parent comment", "error", err, "comment_id", *cmd.ParentID)
			return nil, errors.NewInternalError("failed to add comment")
		}
		// Threading is one level deep and never crosses posts.
		if !parent.CanParent(cmd.PostID) {
			return nil, errors.NewValidationError("parent comment cannot be replied to")
		}
	}

	content := uc.markdown.Sanitize(cmd.Content)

	comment, err := blog.NewComment(cmd.PostID, cmd.AuthorID, content, cmd.ParentID)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.commentRepo.Save(ctx, comment); err != nil {
		uc.logger.Errorw("failed to save comment", "error", err, "post_id", cmd.PostID)
		return nil, errors.NewInternalError("failed to add comment")
	}

	uc.logger.Infow("comment added", "comment_id", comment.ID(), "post_id", cmd.PostID)

	return &AddCommentResult{
		CommentID: comment.ID(),
		PostID:    comment.PostID(),
		ParentID:  comment.ParentID(),
		CreatedAt: comment.CreatedAt(),
	}, nil
}
