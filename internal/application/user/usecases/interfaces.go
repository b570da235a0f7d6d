package usecases

import "context"

// Executor interfaces consumed by the HTTP layer. Handlers depend on these
// rather than on concrete use cases so tests can substitute fakes.

type RegisterExecutor interface {
	Execute(ctx context.Context, cmd RegisterCommand) (*RegisterResult, error)
}

type LoginExecutor interface {
	Execute(ctx context.Context, cmd LoginCommand) (*LoginResult, error)
}

type UpdateProfileExecutor interface {
	Execute(ctx context.Context, cmd UpdateProfileCommand) (*UpdateProfileResult, error)
}

type GetUserExecutor interface {
	Execute(ctx context.Context, cmd GetUserCommand) (*GetUserResult, error)
}
