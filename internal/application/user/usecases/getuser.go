package usecases

import (
	"context"

	"novita/internal/domain/user"
	"novita/internal/shared/errors"
	"novita/internal/shared/logger"
)

type GetUserCommand struct {
	UserID uint
}

type GetUserResult struct {
	User *user.User
}

type GetUserUseCase struct {
	userRepo user.Repository
	logger   logger.Interface
}

func NewGetUserUseCase(userRepo user.Repository, logger logger.Interface) *GetUserUseCase {
	return &GetUserUseCase{
		userRepo: userRepo,
		logger:   logger,
	}
}

func (uc *GetUserUseCase) Execute(ctx context.Context, cmd GetUserCommand) (*GetUserResult, error) {
	if cmd.UserID == 0 {
		return nil, errors.NewValidationError("user ID is required")
	}

	existingUser, err := uc.userRepo.GetByID(ctx, cmd.UserID)
	if err != nil {
		if errors.IsNotFoundError(err) {
			return nil, err
		}
		uc.logger.Errorw("failed to get user", "error", err, "user_id", cmd.UserID)
		return nil, errors.NewInternalError("failed to get user")
	}

	return &GetUserResult{User: existingUser}, nil
}
