package usecases

import "context"

type CreatePostExecutor interface {
	Execute(ctx context.Context, cmd CreatePostCommand) (*CreatePostResult, error)
}

type UpdatePostExecutor interface {
	Execute(ctx context.Context, cmd UpdatePostCommand) (*UpdatePostResult, error)
}

type DeletePostExecutor interface {
	Execute(ctx context.Context, cmd DeletePostCommand) error
}

type ViewPostExecutor interface {
	Execute(ctx context.Context, cmd ViewPostCommand) (*ViewPostResult, error)
}

type ToggleLikeExecutor interface {
	Execute(ctx context.Context, cmd ToggleLikeCommand) (*ToggleLikeResult, error)
}

type AddCommentExecutor interface {
	Execute(ctx context.Context, cmd AddCommentCommand) (*AddCommentResult, error)
}

type ListPostsExecutor interface {
	Execute(ctx context.Context, cmd ListPostsCommand) (*ListPostsResult, error)
}
