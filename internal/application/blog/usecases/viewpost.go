package usecases

import (
	"context"
	"time"

	"novita/internal/domain/blog"
	"novita/internal/shared/errors"
	"novita/internal/shared/logger"
	"novita/internal/shared/services/markdown"
)

type ViewPostCommand struct {
	Slug string
	// ViewerID is zero for anonymous readers.
	ViewerID uint
}

type CommentView struct {
	ID        uint
	AuthorID  uint
	Content   string
	CreatedAt time.Time
	Replies   []CommentView
}

type ViewPostResult struct {
	Post        *blog.Post
	ContentHTML string
	ReadingTime int
	Liked       bool
	Comments    []CommentView
}

// ViewPostUseCase reads a post through the visibility rules, bumps the view
// counter, and assembles the derived fields of the view model.
type ViewPostUseCase struct {
	postRepo    blog.PostRepository
	commentRepo blog.CommentRepository
	likeRepo    blog.LikeRepository
	markdown    markdown.Service
	logger      logger.Interface
}

func NewViewPostUseCase(
	postRepo blog.PostRepository,
	commentRepo blog.CommentRepository,
	likeRepo blog.LikeRepository,
	markdownService markdown.Service,
	logger logger.Interface,
) *ViewPostUseCase {
	return &ViewPostUseCase{
		postRepo:    postRepo,
		commentRepo: commentRepo,
		likeRepo:    likeRepo,
		markdown:    markdownService,
		logger:      logger,
	}
}

func (uc *ViewPostUseCase) Execute(ctx context.Context, cmd ViewPostCommand) (*ViewPostResult, error) {
	if len(cmd.Slug) == 0 {
		return nil, errors.NewValidationError("slug is required")
	}

	post, err := uc.postRepo.GetBySlug(ctx, cmd.Slug)
	if err != nil {
		if errors.IsNotFoundError(err) {
			return nil, err
		}
		uc.logger.Errorw("failed to get post", "error", err, "slug", cmd.Slug)
		return nil, errors.NewInternalError("failed to load post")
	}

	// Invisible posts are indistinguishable from missing ones.
	if !post.VisibleTo(cmd.ViewerID) {
		return nil, errors.NewNotFoundError("post not found")
	}

	// Server-side atomic increment; every successful view counts, repeat
	// views included. A counter failure does not block the read.
	if err := uc.postRepo.IncrementViews(ctx, post.ID()); err != nil {
		uc.logger.Warnw("failed to increment view counter", "error", err, "post_id", post.ID())
	}

	contentHTML, err := uc.markdown.ToHTMLSanitized(post.Content())
	if err != nil {
		uc.logger.Errorw("failed to render post content", "error", err, "post_id", post.ID())
		return nil, errors.NewInternalError("failed to load post")
	}

	liked := false
	if cmd.ViewerID != 0 {
		liked, err = uc.likeRepo.Exists(ctx, post.ID(), cmd.ViewerID)
		if err != nil {
			uc.logger.Warnw("failed to check like state", "error", err, "post_id", post.ID())
			liked = false
		}
	}

	comments, err := uc.commentRepo.ListApprovedByPost(ctx, post.ID())
	if err != nil {
		uc.logger.Errorw("failed to load comments", "error", err, "post_id", post.ID())
		return nil, errors.NewInternalError("failed to load post")
	}

	return &ViewPostResult{
		Post:        post,
		ContentHTML: contentHTML,
		ReadingTime: post.ReadingTime(),
		Liked:       liked,
		Comments:    buildCommentThread(comments),
	}, nil
}

// buildCommentThread arranges approved comments into top-level entries with
// one level of replies, both oldest first.
func buildCommentThread(comments []*blog.Comment) []CommentView {
	thread := make([]CommentView, 0, len(comments))
	index := make(map[uint]int)

	for _, c := range comments {
		if c.IsReply() {
			continue
		}
		index[c.ID()] = len(thread)
		thread = append(thread, CommentView{
			ID:        c.ID(),
			AuthorID:  c.AuthorID(),
			Content:   c.Content(),
			CreatedAt: c.CreatedAt(),
		})
	}

	for _, c := range comments {
		if !c.IsReply() {
			continue
		}
		pos, ok := index[*c.ParentID()]
		if !ok {
			continue
		}
		thread[pos].Replies = append(thread[pos].Replies, CommentView{
			ID:        c.ID(),
			AuthorID:  c.AuthorID(),
			Content:   c.Content(),
			CreatedAt: c.CreatedAt(),
		})
	}

	return thread
}
