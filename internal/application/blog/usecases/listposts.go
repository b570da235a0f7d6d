package usecases

import (
	"context"

	"novita/internal/domain/blog"
	vo "novita/internal/domain/blog/value_objects"
	"novita/internal/shared/errors"
	"novita/internal/shared/logger"
	"novita/internal/shared/utils"
)

type ListPostsCommand struct {
	Search     string
	CategoryID *uint
	Page       int
	PageSize   int

	// AuthorID with Mine lists the author's own posts, drafts and
	// archived included.
	AuthorID uint
	Mine     bool
}

type ListPostsResult struct {
	Posts []*blog.Post
	Total int64
	Page  int
}

type ListPostsUseCase struct {
	postRepo blog.PostRepository
	logger   logger.Interface
}

func NewListPostsUseCase(postRepo blog.PostRepository, logger logger.Interface) *ListPostsUseCase {
	return &ListPostsUseCase{
		postRepo: postRepo,
		logger:   logger,
	}
}

func (uc *ListPostsUseCase) Execute(ctx context.Context, cmd ListPostsCommand) (*ListPostsResult, error) {
	pagination := utils.ValidatePagination(cmd.Page, cmd.PageSize)

	filter := blog.PostFilter{
		Search:     cmd.Search,
		CategoryID: cmd.CategoryID,
		Page:       pagination.Page,
		PageSize:   pagination.PageSize,
	}

	if cmd.Mine {
		if cmd.AuthorID == 0 {
			return nil, errors.NewValidationError("author ID is required")
		}
		authorID := cmd.AuthorID
		filter.AuthorID = &authorID
		filter.AllStatuses = true
	} else {
		published := vo.StatusPublished
		filter.Status = &published
	}

	posts, total, err := uc.postRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list posts", "error", err)
		return nil, errors.NewInternalError("failed to list posts")
	}

	return &ListPostsResult{
		Posts: posts,
		Total: total,
		Page:  pagination.Page,
	}, nil
}
